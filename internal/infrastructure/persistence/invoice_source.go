package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/tradeconsole/backend/internal/domain/report"
	"github.com/tradeconsole/backend/internal/domain/trading"
)

// InvoiceSource loads the invoice projection for sales reports.
type InvoiceSource struct {
	db *gorm.DB
}

// NewInvoiceSource creates a new invoice record source
func NewInvoiceSource(db *gorm.DB) *InvoiceSource {
	return &InvoiceSource{db: db}
}

// Load returns every invoice as a report record, ordered by document
// date so downstream views stay stable.
func (s *InvoiceSource) Load(ctx context.Context) ([]report.Record, error) {
	var invoices []trading.Invoice
	err := s.db.WithContext(ctx).
		Preload("Customer").
		Preload("Rep").
		Preload("Warehouse").
		Preload("Currency").
		Order("invoice_date, invoice_number").
		Find(&invoices).Error
	if err != nil {
		return nil, fmt.Errorf("load invoices: %w", err)
	}

	records := make([]report.Record, len(invoices))
	for i := range invoices {
		records[i] = invoices[i].ToRecord()
	}
	return records, nil
}
