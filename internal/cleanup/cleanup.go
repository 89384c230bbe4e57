package cleanup

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"property-listings-api/internal/models"
)

// FileRemover deletes the on-disk files behind purged image records.
type FileRemover interface {
	RemoveFiles(images []models.PropertyImage)
}

// IndexRemover drops purged listings from the search index.
type IndexRemover interface {
	RemoveProperty(id uint) error
}

// Service handles physical deletion of listings that have been inactive for
// longer than the retention window. Inactive listings stay stored (soft
// visibility), but not forever.
type Service struct {
	db      *gorm.DB
	files   FileRemover  // nil skips file deletion
	indexer IndexRemover // nil when search is disabled
}

// NewService creates a new cleanup service
func NewService(db *gorm.DB, files FileRemover, indexer IndexRemover) *Service {
	return &Service{db: db, files: files, indexer: indexer}
}

// Config holds configuration for cleanup operations
type Config struct {
	RetentionDays    int  // Days an inactive listing is kept before physical deletion
	MaxDeletionCount int  // Maximum number of listings to delete in one run (safety limit)
	DryRun           bool // If true, only log what would be deleted
}

// DefaultConfig returns default cleanup configuration
func DefaultConfig() Config {
	return Config{
		RetentionDays:    90,
		MaxDeletionCount: 10000,
		DryRun:           false,
	}
}

// Result holds the outcome of a cleanup run
type Result struct {
	TargetCount     int       `json:"target_count"`
	DeletedCount    int       `json:"deleted_count"`
	ErrorCount      int       `json:"error_count"`
	DryRun          bool      `json:"dry_run"`
	ExecutedAt      time.Time `json:"executed_at"`
	DeletedListings []uint    `json:"deleted_listings"`
	Errors          []string  `json:"errors,omitempty"`
}

// FindExpired finds listings eligible for physical deletion: inactive, and
// untouched since before the retention cutoff.
func (s *Service) FindExpired(retentionDays int) ([]models.Property, error) {
	var properties []models.Property

	cutoff := time.Now().AddDate(0, 0, -retentionDays)

	err := s.db.
		Preload("Images").
		Where("is_active = ? AND updated_at < ?", false, cutoff).
		Find(&properties).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find expired listings: %w", err)
	}

	log.Printf("Cleanup: found %d listings inactive since before %s", len(properties), cutoff.Format("2006-01-02"))
	return properties, nil
}

// Run performs physical deletion of expired listings.
func (s *Service) Run(cfg Config) (*Result, error) {
	result := &Result{
		DryRun:     cfg.DryRun,
		ExecutedAt: time.Now(),
	}

	expired, err := s.FindExpired(cfg.RetentionDays)
	if err != nil {
		return nil, err
	}

	result.TargetCount = len(expired)
	if result.TargetCount == 0 {
		log.Println("Cleanup: no expired listings found")
		return result, nil
	}

	// Safety check: abort if too many listings would be deleted
	if result.TargetCount > cfg.MaxDeletionCount {
		return nil, fmt.Errorf("safety check failed: %d listings exceed max deletion limit of %d",
			result.TargetCount, cfg.MaxDeletionCount)
	}

	log.Printf("Cleanup: starting, %d listings to delete (retention: %d days, dry-run: %v)",
		result.TargetCount, cfg.RetentionDays, cfg.DryRun)

	for _, prop := range expired {
		if cfg.DryRun {
			log.Printf("Cleanup: [DRY-RUN] would delete listing %d (title: %s, last updated: %s)",
				prop.ID, prop.Title, prop.UpdatedAt.Format("2006-01-02"))
			result.DeletedListings = append(result.DeletedListings, prop.ID)
			result.DeletedCount++
			continue
		}

		if err := s.deleteOne(&prop); err != nil {
			errMsg := fmt.Sprintf("failed to delete listing %d: %v", prop.ID, err)
			log.Printf("Cleanup: ERROR: %s", errMsg)
			result.Errors = append(result.Errors, errMsg)
			result.ErrorCount++
			continue
		}

		result.DeletedListings = append(result.DeletedListings, prop.ID)
		result.DeletedCount++
	}

	log.Printf("Cleanup: finished, deleted=%d errors=%d", result.DeletedCount, result.ErrorCount)
	return result, nil
}

// deleteOne removes a single listing, its image rows and the audit log entry
// atomically, then cleans up the files and the search document.
func (s *Service) deleteOne(prop *models.Property) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		deleteLog := models.DeleteLog{
			PropertyID:    prop.ID,
			Title:         prop.Title,
			OwnerID:       prop.OwnerID,
			DeactivatedAt: prop.UpdatedAt,
			Reason:        models.DeleteReasonExpired,
		}
		if err := tx.Create(&deleteLog).Error; err != nil {
			return err
		}

		if err := tx.Where("property_id = ?", prop.ID).Delete(&models.PropertyImage{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Property{}, prop.ID).Error
	})
	if err != nil {
		return err
	}

	// Row is gone; file and index cleanup failures are logged, not fatal.
	if s.files != nil {
		s.files.RemoveFiles(prop.Images)
	}
	if s.indexer != nil {
		if err := s.indexer.RemoveProperty(prop.ID); err != nil {
			log.Printf("Cleanup: warning: failed to remove listing %d from search index: %v", prop.ID, err)
		}
	}
	return nil
}

// RecentLogs returns the latest purge audit entries.
func (s *Service) RecentLogs(limit int) ([]models.DeleteLog, error) {
	if limit <= 0 {
		limit = 100
	}
	var logs []models.DeleteLog
	err := s.db.Order("deleted_at DESC").Limit(limit).Find(&logs).Error
	return logs, err
}
