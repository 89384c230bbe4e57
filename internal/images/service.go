package images

import (
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"property-listings-api/internal/models"
	"property-listings-api/internal/property"
)

var (
	// ErrEmptyFile is returned for a zero-byte upload.
	ErrEmptyFile = errors.New("file is empty")
	// ErrFileTooLarge is returned when the upload exceeds the size cap.
	ErrFileTooLarge = errors.New("file exceeds the maximum allowed size")
	// ErrUnsupportedType is returned for a content type outside the image allow-list.
	ErrUnsupportedType = errors.New("unsupported image content type")
	// ErrWrongProperty is returned when an image does not belong to the
	// listing named in the request.
	ErrWrongProperty = errors.New("image does not belong to this listing")
)

// Store is the storage boundary for image records.
type Store interface {
	GetPropertyByID(id uint) (*models.Property, error)
	CreateImage(img *models.PropertyImage) error
	GetImageByID(id uint) (*models.PropertyImage, error)
	DeleteImage(id uint) error
	GetImagesByProperty(propertyID uint) ([]models.PropertyImage, error)
}

// Service stores uploaded listing images on disk and their records in the store.
type Service struct {
	store     Store
	uploadDir string
	baseURL   string
}

// NewService creates an image service writing files under uploadDir and
// exposing them under baseURL.
func NewService(store Store, uploadDir, baseURL string) *Service {
	return &Service{
		store:     store,
		uploadDir: uploadDir,
		baseURL:   strings.TrimRight(baseURL, "/"),
	}
}

// Upload validates and stores one image for a listing. Only the listing owner
// or an admin may upload.
func (s *Service) Upload(propertyID uint, file *multipart.FileHeader, displayOrder int, user *models.User) (*models.PropertyImage, error) {
	prop, err := s.store.GetPropertyByID(propertyID)
	if err != nil {
		return nil, err
	}
	if !property.CanModify(user, prop) {
		return nil, property.ErrForbidden
	}

	if err := ValidateFile(file); err != nil {
		return nil, err
	}
	if displayOrder < 0 {
		displayOrder = 0
	}

	fileName, err := s.saveFile(file)
	if err != nil {
		return nil, err
	}

	img := &models.PropertyImage{
		PropertyID:       propertyID,
		FileName:         fileName,
		FileUrl:          s.baseURL + "/" + fileName,
		OriginalFileName: file.Filename,
		ContentType:      file.Header.Get("Content-Type"),
		FileSize:         file.Size,
		DisplayOrder:     displayOrder,
	}

	if err := s.store.CreateImage(img); err != nil {
		// Keep the disk in sync with the store.
		s.removeFile(fileName)
		return nil, err
	}

	log.Printf("Image saved: id=%d property=%d file=%s", img.ID, propertyID, fileName)
	return img, nil
}

// List returns a listing's images ordered for display.
func (s *Service) List(propertyID uint) ([]models.PropertyImage, error) {
	if _, err := s.store.GetPropertyByID(propertyID); err != nil {
		return nil, err
	}
	return s.store.GetImagesByProperty(propertyID)
}

// Delete removes one image record and its file. The image must belong to the
// listing, and the caller must be allowed to modify the listing.
func (s *Service) Delete(propertyID, imageID uint, user *models.User) error {
	img, err := s.store.GetImageByID(imageID)
	if err != nil {
		return err
	}
	if img.PropertyID != propertyID {
		return ErrWrongProperty
	}

	prop, err := s.store.GetPropertyByID(propertyID)
	if err != nil {
		return err
	}
	if !property.CanModify(user, prop) {
		return property.ErrForbidden
	}

	if err := s.store.DeleteImage(imageID); err != nil {
		return err
	}
	s.removeFile(img.FileName)

	log.Printf("Image deleted: id=%d property=%d", imageID, propertyID)
	return nil
}

// RemoveFiles deletes the on-disk files for a set of image records. Used by
// the cleanup job when listings are purged.
func (s *Service) RemoveFiles(images []models.PropertyImage) {
	for _, img := range images {
		s.removeFile(img.FileName)
	}
}

// ValidateFile checks the upload against the content-type allow-list and the
// size cap.
func ValidateFile(file *multipart.FileHeader) error {
	if file == nil || file.Size == 0 {
		return ErrEmptyFile
	}
	if file.Size > models.MaxImageSizeBytes {
		return ErrFileTooLarge
	}

	contentType := file.Header.Get("Content-Type")
	if !models.AllowedImageTypes[contentType] {
		return fmt.Errorf("%w: %s", ErrUnsupportedType, contentType)
	}
	return nil
}

func (s *Service) saveFile(file *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload dir: %w", err)
	}

	ext := filepath.Ext(file.Filename)
	if ext == "" {
		ext = ".jpg"
	}
	fileName := uuid.NewString() + ext

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.uploadDir, fileName))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return fileName, nil
}

func (s *Service) removeFile(fileName string) {
	path := filepath.Join(s.uploadDir, fileName)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: failed to remove file %s: %v", path, err)
	}
}
