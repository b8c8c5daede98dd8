package trading

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tradeconsole/backend/internal/domain/report"
)

// Account is a ledger account projection used by the statement report.
type Account struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key"`
	Code       string          `gorm:"type:varchar(20);not null;uniqueIndex"`
	Name       string          `gorm:"type:varchar(200);not null"`
	Type       string          `gorm:"type:varchar(30);not null"`
	Balance    decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	CurrencyID uuid.UUID       `gorm:"type:uuid;index"`
	Currency   Currency        `gorm:"foreignKey:CurrencyID"`
}

// TableName returns the table name for GORM
func (Account) TableName() string {
	return "accounts"
}

// ToRecord projects the account into the generic row shape the report
// engine consumes.
func (a *Account) ToRecord() report.Record {
	return report.Record{
		"id":       a.ID.String(),
		"code":     a.Code,
		"name":     a.Name,
		"type":     a.Type,
		"balance":  a.Balance.InexactFloat64(),
		"currency": currencyValue(a.Currency),
	}
}
