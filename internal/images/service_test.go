package images

import (
	"errors"
	"mime/multipart"
	"net/textproto"
	"testing"

	"property-listings-api/internal/models"
)

func fileHeader(name, contentType string, size int64) *multipart.FileHeader {
	header := textproto.MIMEHeader{}
	header.Set("Content-Type", contentType)
	return &multipart.FileHeader{
		Filename: name,
		Header:   header,
		Size:     size,
	}
}

func TestValidateFile(t *testing.T) {
	tests := []struct {
		name    string
		file    *multipart.FileHeader
		wantErr error
	}{
		{"nil file", nil, ErrEmptyFile},
		{"empty file", fileHeader("a.jpg", "image/jpeg", 0), ErrEmptyFile},
		{"jpeg accepted", fileHeader("a.jpg", "image/jpeg", 1024), nil},
		{"png accepted", fileHeader("a.png", "image/png", 1024), nil},
		{"webp accepted", fileHeader("a.webp", "image/webp", 1024), nil},
		{"gif accepted", fileHeader("a.gif", "image/gif", 1024), nil},
		{"at size cap", fileHeader("a.jpg", "image/jpeg", models.MaxImageSizeBytes), nil},
		{"over size cap", fileHeader("a.jpg", "image/jpeg", models.MaxImageSizeBytes + 1), ErrFileTooLarge},
		{"pdf rejected", fileHeader("a.pdf", "application/pdf", 1024), ErrUnsupportedType},
		{"svg rejected", fileHeader("a.svg", "image/svg+xml", 1024), ErrUnsupportedType},
		{"missing content type", fileHeader("a.jpg", "", 1024), ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFile(tt.file)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateFile() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateFile() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
