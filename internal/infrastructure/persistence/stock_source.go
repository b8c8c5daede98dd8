package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/tradeconsole/backend/internal/domain/report"
	"github.com/tradeconsole/backend/internal/domain/trading"
)

// StockSource loads the per-warehouse stock projection.
type StockSource struct {
	db *gorm.DB
}

// NewStockSource creates a new stock record source
func NewStockSource(db *gorm.DB) *StockSource {
	return &StockSource{db: db}
}

// Load returns every stock line as a report record.
func (s *StockSource) Load(ctx context.Context) ([]report.Record, error) {
	var lines []trading.StockLine
	err := s.db.WithContext(ctx).
		Preload("Product").
		Preload("Warehouse").
		Joins("JOIN products ON products.id = stock_lines.product_id").
		Order("products.sku").
		Find(&lines).Error
	if err != nil {
		return nil, fmt.Errorf("load stock lines: %w", err)
	}

	records := make([]report.Record, len(lines))
	for i := range lines {
		records[i] = lines[i].ToRecord()
	}
	return records, nil
}
