package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/tradeconsole/backend/internal/domain/report"
	"github.com/tradeconsole/backend/internal/domain/trading"
)

// PriceListSource loads products with their full price lists for the
// dynamic price report.
type PriceListSource struct {
	db *gorm.DB
}

// NewPriceListSource creates a new price list record source
func NewPriceListSource(db *gorm.DB) *PriceListSource {
	return &PriceListSource{db: db}
}

// Load returns every product as a report record carrying its nested
// price array.
func (s *PriceListSource) Load(ctx context.Context) ([]report.Record, error) {
	var products []trading.Product
	err := s.db.WithContext(ctx).
		Preload("Prices.Currency").
		Order("sku").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("load price list: %w", err)
	}

	records := make([]report.Record, len(products))
	for i := range products {
		records[i] = products[i].ToRecord()
	}
	return records, nil
}
