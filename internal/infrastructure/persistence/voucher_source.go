package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/tradeconsole/backend/internal/domain/report"
	"github.com/tradeconsole/backend/internal/domain/trading"
)

// VoucherSource loads the payment voucher projection.
type VoucherSource struct {
	db *gorm.DB
}

// NewVoucherSource creates a new payment voucher record source
func NewVoucherSource(db *gorm.DB) *VoucherSource {
	return &VoucherSource{db: db}
}

// Load returns every payment voucher as a report record.
func (s *VoucherSource) Load(ctx context.Context) ([]report.Record, error) {
	var vouchers []trading.PaymentVoucher
	err := s.db.WithContext(ctx).
		Preload("Customer").
		Preload("Rep").
		Preload("Currency").
		Order("voucher_date, voucher_number").
		Find(&vouchers).Error
	if err != nil {
		return nil, fmt.Errorf("load payment vouchers: %w", err)
	}

	records := make([]report.Record, len(vouchers))
	for i := range vouchers {
		records[i] = vouchers[i].ToRecord()
	}
	return records, nil
}
