package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/tradeconsole/backend/internal/domain/report"
	"github.com/tradeconsole/backend/internal/domain/trading"
)

// ReturnSource loads the sales return projection.
type ReturnSource struct {
	db *gorm.DB
}

// NewReturnSource creates a new sales return record source
func NewReturnSource(db *gorm.DB) *ReturnSource {
	return &ReturnSource{db: db}
}

// Load returns every sales return as a report record.
func (s *ReturnSource) Load(ctx context.Context) ([]report.Record, error) {
	var returns []trading.SalesReturn
	err := s.db.WithContext(ctx).
		Preload("Customer").
		Preload("Rep").
		Preload("Currency").
		Order("return_date, return_number").
		Find(&returns).Error
	if err != nil {
		return nil, fmt.Errorf("load sales returns: %w", err)
	}

	records := make([]report.Record, len(returns))
	for i := range returns {
		records[i] = returns[i].ToRecord()
	}
	return records, nil
}
