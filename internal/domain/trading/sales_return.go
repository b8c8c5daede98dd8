package trading

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tradeconsole/backend/internal/domain/report"
)

// SalesReturn is a goods-return projection.
type SalesReturn struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key"`
	ReturnNumber string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	CustomerID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Customer     Customer        `gorm:"foreignKey:CustomerID"`
	RepID        uuid.UUID       `gorm:"type:uuid;index"`
	Rep          Rep             `gorm:"foreignKey:RepID"`
	CurrencyID   uuid.UUID       `gorm:"type:uuid;index"`
	Currency     Currency        `gorm:"foreignKey:CurrencyID"`
	ReturnDate   time.Time       `gorm:"not null;index"`
	Reason       string          `gorm:"type:varchar(500)"`
	TotalValue   decimal.Decimal `gorm:"type:decimal(18,4);not null"`
}

// TableName returns the table name for GORM
func (SalesReturn) TableName() string {
	return "sales_returns"
}

// ToRecord projects the return into the generic row shape the report
// engine consumes.
func (sr *SalesReturn) ToRecord() report.Record {
	return report.Record{
		"id":          sr.ID.String(),
		"return_no":   sr.ReturnNumber,
		"customer":    refValue(sr.CustomerID, sr.Customer.Name),
		"rep":         refValue(sr.RepID, sr.Rep.Name),
		"currency":    currencyValue(sr.Currency),
		"return_date": dayValue(sr.ReturnDate),
		"reason":      sr.Reason,
		"total_value": sr.TotalValue.InexactFloat64(),
	}
}
