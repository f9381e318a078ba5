package service

import (
	"fmt"
	"time"

	"github.com/stagefolio/internal/db"
	"gorm.io/gorm"
)

// AnalyticsService aggregates collection counts for the admin dashboard.
type AnalyticsService struct {
	db *gorm.DB
}

// NewAnalyticsService returns a new AnalyticsService instance.
func NewAnalyticsService(gdb *gorm.DB) *AnalyticsService {
	return &AnalyticsService{db: gdb}
}

// Overview holds the aggregate counts served by the analytics endpoint.
type Overview struct {
	TotalContacts int64     `json:"total_contacts"`
	TotalSections int64     `json:"total_sections"`
	TotalStages   int64     `json:"total_stages"`
	TotalImages   int64     `json:"total_images"`
	LastUpdated   time.Time `json:"last_updated"`
}

// Overview counts each collection in one pass. Counts are independent reads,
// not a snapshot; a write racing the endpoint can skew one counter.
func (s *AnalyticsService) Overview() (Overview, error) {
	overview := Overview{LastUpdated: time.Now()}

	counts := []struct {
		model interface{}
		dest  *int64
	}{
		{&db.ContactMessage{}, &overview.TotalContacts},
		{&db.ContentSection{}, &overview.TotalSections},
		{&db.Stage{}, &overview.TotalStages},
		{&db.UploadedImage{}, &overview.TotalImages},
	}

	for _, c := range counts {
		if err := s.db.Model(c.model).Count(c.dest).Error; err != nil {
			return Overview{}, fmt.Errorf("count collection: %w", err)
		}
	}

	return overview, nil
}
