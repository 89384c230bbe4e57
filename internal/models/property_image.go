package models

import "time"

// MaxImageSizeBytes is the upload size cap for a single image (5 MiB).
const MaxImageSizeBytes = 5_242_880

// AllowedImageTypes is the set of accepted image content types.
var AllowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// PropertyImage represents an image attached to a property
type PropertyImage struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	PropertyID       uint      `gorm:"not null;index" json:"property_id"`
	FileName         string    `gorm:"type:varchar(255);not null" json:"file_name"`
	FileUrl          string    `gorm:"type:text;not null" json:"file_url"`
	OriginalFileName string    `gorm:"type:varchar(255)" json:"original_file_name,omitempty"`
	ContentType      string    `gorm:"type:varchar(100)" json:"content_type,omitempty"`
	FileSize         int64     `gorm:"not null;default:0" json:"file_size"`
	DisplayOrder     int       `gorm:"not null;default:0;index" json:"display_order"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for PropertyImage
func (PropertyImage) TableName() string {
	return "property_images"
}
