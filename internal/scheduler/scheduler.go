package scheduler

import (
	"fmt"
	"log"
	"strings"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"property-listings-api/internal/cleanup"
	"property-listings-api/internal/config"
	"property-listings-api/internal/models"
	"property-listings-api/internal/search"
)

// Scheduler runs the nightly maintenance: cleanup of expired inactive
// listings followed by a search reindex.
type Scheduler struct {
	cron      *cron.Cron
	db        *gorm.DB
	cleanup   *cleanup.Service
	searchCli *search.Client // nil when search is disabled
	config    *config.Config
	isRunning bool
}

// NewScheduler creates a new scheduler
func NewScheduler(db *gorm.DB, cleanupSvc *cleanup.Service, searchCli *search.Client, cfg *config.Config) *Scheduler {
	return &Scheduler{
		cron:      cron.New(),
		db:        db,
		cleanup:   cleanupSvc,
		searchCli: searchCli,
		config:    cfg,
	}
}

// Start starts the scheduler
func (s *Scheduler) Start() error {
	if !s.config.Cleanup.Enabled {
		log.Println("Scheduler: nightly maintenance is disabled in configuration")
		return nil
	}

	cronSpec := s.parseDailyRunTime(s.config.Cleanup.DailyRunTime)

	_, err := s.cron.AddFunc(cronSpec, func() {
		log.Println("Scheduler: starting nightly maintenance...")
		if err := s.RunNow(); err != nil {
			log.Printf("Scheduler: nightly maintenance failed: %v", err)
		} else {
			log.Println("Scheduler: nightly maintenance completed")
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	s.isRunning = true
	log.Printf("Scheduler: started with daily run at %s (cron: %s)", s.config.Cleanup.DailyRunTime, cronSpec)

	return nil
}

// Stop stops the scheduler
func (s *Scheduler) Stop() {
	if s.isRunning {
		s.cron.Stop()
		s.isRunning = false
		log.Println("Scheduler: stopped")
	}
}

// RunNow executes the maintenance routine immediately.
func (s *Scheduler) RunNow() error {
	cfg := cleanup.Config{
		RetentionDays:    s.config.Cleanup.RetentionDays,
		MaxDeletionCount: s.config.Cleanup.MaxDeletionCount,
		DryRun:           s.config.Cleanup.DryRun,
	}
	if cfg.RetentionDays <= 0 {
		cfg = cleanup.DefaultConfig()
	}

	if _, err := s.cleanup.Run(cfg); err != nil {
		return err
	}

	return s.Reindex()
}

// Reindex pushes all active listings into the search index.
func (s *Scheduler) Reindex() error {
	if s.searchCli == nil {
		return nil
	}

	var properties []models.Property
	if err := s.db.Where("is_active = ?", true).Find(&properties).Error; err != nil {
		return err
	}

	if err := s.searchCli.IndexProperties(properties); err != nil {
		return fmt.Errorf("reindex failed: %w", err)
	}

	log.Printf("Scheduler: reindexed %d active listings", len(properties))
	return nil
}

// parseDailyRunTime converts an "HH:MM" daily time into a cron spec,
// falling back to 03:00 on malformed input.
func (s *Scheduler) parseDailyRunTime(runTime string) string {
	parts := strings.Split(runTime, ":")
	if len(parts) != 2 {
		return "0 3 * * *"
	}

	var hour, minute int
	if _, err := fmt.Sscanf(runTime, "%d:%d", &hour, &minute); err != nil {
		return "0 3 * * *"
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return "0 3 * * *"
	}

	return fmt.Sprintf("%d %d * * *", minute, hour)
}
