package trading

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tradeconsole/backend/internal/domain/report"
)

// PaymentVoucher is a collected-payment projection. Vouchers are
// collected by a rep from a customer, which is why both references are
// carried denormalized.
type PaymentVoucher struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key"`
	VoucherNumber string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	CustomerID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Customer      Customer        `gorm:"foreignKey:CustomerID"`
	RepID         uuid.UUID       `gorm:"type:uuid;index"`
	Rep           Rep             `gorm:"foreignKey:RepID"`
	CurrencyID    uuid.UUID       `gorm:"type:uuid;index"`
	Currency      Currency        `gorm:"foreignKey:CurrencyID"`
	VoucherDate   time.Time       `gorm:"not null;index"`
	Method        string          `gorm:"type:varchar(30);not null"`
	Amount        decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Remark        string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (PaymentVoucher) TableName() string {
	return "payment_vouchers"
}

// ToRecord projects the voucher into the generic row shape the report
// engine consumes.
func (pv *PaymentVoucher) ToRecord() report.Record {
	return report.Record{
		"id":           pv.ID.String(),
		"voucher_no":   pv.VoucherNumber,
		"customer":     refValue(pv.CustomerID, pv.Customer.Name),
		"rep":          refValue(pv.RepID, pv.Rep.Name),
		"currency":     currencyValue(pv.Currency),
		"voucher_date": dayValue(pv.VoucherDate),
		"method":       pv.Method,
		"amount":       pv.Amount.InexactFloat64(),
		"remark":       pv.Remark,
	}
}
