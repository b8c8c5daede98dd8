package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/tradeconsole/backend/internal/domain/report"
	"github.com/tradeconsole/backend/internal/domain/trading"
)

// AccountSource loads the ledger account projection.
type AccountSource struct {
	db *gorm.DB
}

// NewAccountSource creates a new account record source
func NewAccountSource(db *gorm.DB) *AccountSource {
	return &AccountSource{db: db}
}

// Load returns every ledger account as a report record.
func (s *AccountSource) Load(ctx context.Context) ([]report.Record, error) {
	var accounts []trading.Account
	err := s.db.WithContext(ctx).
		Preload("Currency").
		Order("code").
		Find(&accounts).Error
	if err != nil {
		return nil, fmt.Errorf("load accounts: %w", err)
	}

	records := make([]report.Record, len(accounts))
	for i := range accounts {
		records[i] = accounts[i].ToRecord()
	}
	return records, nil
}
