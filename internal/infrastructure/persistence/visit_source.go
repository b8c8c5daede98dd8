package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/tradeconsole/backend/internal/domain/report"
	"github.com/tradeconsole/backend/internal/domain/trading"
)

// VisitSource loads the rep visit projection.
type VisitSource struct {
	db *gorm.DB
}

// NewVisitSource creates a new rep visit record source
func NewVisitSource(db *gorm.DB) *VisitSource {
	return &VisitSource{db: db}
}

// Load returns every rep visit as a report record.
func (s *VisitSource) Load(ctx context.Context) ([]report.Record, error) {
	var visits []trading.RepVisit
	err := s.db.WithContext(ctx).
		Preload("Rep").
		Preload("Customer").
		Order("visit_date").
		Find(&visits).Error
	if err != nil {
		return nil, fmt.Errorf("load rep visits: %w", err)
	}

	records := make([]report.Record, len(visits))
	for i := range visits {
		records[i] = visits[i].ToRecord()
	}
	return records, nil
}
