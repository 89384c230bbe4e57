package database

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"property-listings-api/internal/models"
	"property-listings-api/internal/search"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// CreateProperty inserts a new listing with its images.
func (gdb *GormDB) CreateProperty(p *models.Property) error {
	return gdb.db.Create(p).Error
}

// GetPropertyByID retrieves a listing with its owner and images.
func (gdb *GormDB) GetPropertyByID(id uint) (*models.Property, error) {
	var property models.Property
	err := gdb.db.
		Preload("Owner").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC")
		}).
		First(&property, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &property, nil
}

// SaveProperty persists changes to an existing listing.
func (gdb *GormDB) SaveProperty(p *models.Property) error {
	return gdb.db.Save(p).Error
}

// DeleteProperty removes a listing; its images cascade at the database level.
func (gdb *GormDB) DeleteProperty(id uint) error {
	result := gdb.db.Select("Images").Delete(&models.Property{ID: id})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListProperties runs the composed filter with validated paging and sort.
// Equal sort keys break ties on id ascending so pages stay stable across calls.
func (gdb *GormDB) ListProperties(filter search.Filter, req search.PageRequest) ([]models.Property, int64, error) {
	var total int64
	base := gdb.db.Model(&models.Property{}).Scopes(filter.Scope())
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := fmt.Sprintf("%s %s", search.SortColumn(req.SortBy), req.Direction)

	var properties []models.Property
	err := gdb.db.Model(&models.Property{}).
		Scopes(filter.Scope()).
		Preload("Owner").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC")
		}).
		Order(order).
		Order("id ASC").
		Limit(req.Size).
		Offset(req.Offset()).
		Find(&properties).Error
	if err != nil {
		return nil, 0, err
	}

	return properties, total, nil
}

// CreateImage attaches an uploaded image record to a listing.
func (gdb *GormDB) CreateImage(img *models.PropertyImage) error {
	return gdb.db.Create(img).Error
}

// GetImageByID retrieves a single image record.
func (gdb *GormDB) GetImageByID(id uint) (*models.PropertyImage, error) {
	var img models.PropertyImage
	err := gdb.db.First(&img, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &img, nil
}

// DeleteImage removes an image record.
func (gdb *GormDB) DeleteImage(id uint) error {
	result := gdb.db.Delete(&models.PropertyImage{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// GetImagesByProperty lists a listing's images ordered for display.
func (gdb *GormDB) GetImagesByProperty(propertyID uint) ([]models.PropertyImage, error) {
	var images []models.PropertyImage
	err := gdb.db.
		Where("property_id = ?", propertyID).
		Order("display_order ASC").
		Find(&images).Error
	return images, err
}
