package trading

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tradeconsole/backend/internal/domain/report"
)

// Invoice is a sales invoice projection.
type Invoice struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key"`
	InvoiceNumber string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	CustomerID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Customer      Customer        `gorm:"foreignKey:CustomerID"`
	RepID         uuid.UUID       `gorm:"type:uuid;index"`
	Rep           Rep             `gorm:"foreignKey:RepID"`
	WarehouseID   uuid.UUID       `gorm:"type:uuid;index"`
	Warehouse     Warehouse       `gorm:"foreignKey:WarehouseID"`
	CurrencyID    uuid.UUID       `gorm:"type:uuid;index"`
	Currency      Currency        `gorm:"foreignKey:CurrencyID"`
	InvoiceDate   time.Time       `gorm:"not null;index"`
	Status        string          `gorm:"type:varchar(20);not null"`
	NetTotal      decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Discount      decimal.Decimal `gorm:"type:decimal(18,4)"`
	Remark        string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Invoice) TableName() string {
	return "invoices"
}

// ToRecord projects the invoice into the generic row shape the report
// engine consumes.
func (inv *Invoice) ToRecord() report.Record {
	return report.Record{
		"id":           inv.ID.String(),
		"invoice_no":   inv.InvoiceNumber,
		"customer":     refValue(inv.CustomerID, inv.Customer.Name),
		"rep":          refValue(inv.RepID, inv.Rep.Name),
		"warehouse":    refValue(inv.WarehouseID, inv.Warehouse.Name),
		"currency":     currencyValue(inv.Currency),
		"invoice_date": dayValue(inv.InvoiceDate),
		"status":       inv.Status,
		"net_total":    inv.NetTotal.InexactFloat64(),
		"discount":     inv.Discount.InexactFloat64(),
		"remark":       inv.Remark,
	}
}
