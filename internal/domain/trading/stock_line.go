package trading

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tradeconsole/backend/internal/domain/report"
)

// StockLine is a per-warehouse product stock projection.
type StockLine struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Product     Product         `gorm:"foreignKey:ProductID"`
	WarehouseID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Warehouse   Warehouse       `gorm:"foreignKey:WarehouseID"`
	Quantity    decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	UnitCost    decimal.Decimal `gorm:"type:decimal(18,4)"`
	LastMovedAt time.Time       `gorm:"index"`
}

// TableName returns the table name for GORM
func (StockLine) TableName() string {
	return "stock_lines"
}

// ToRecord projects the stock line into the generic row shape the
// report engine consumes. Stock value is derived here so inventory
// reports can total it like any other numeric field.
func (sl *StockLine) ToRecord() report.Record {
	return report.Record{
		"id": sl.ID.String(),
		"product": map[string]any{
			"id":   sl.ProductID.String(),
			"sku":  sl.Product.SKU,
			"name": sl.Product.Name,
			"unit": sl.Product.Unit,
		},
		"warehouse":     refValue(sl.WarehouseID, sl.Warehouse.Name),
		"quantity":      sl.Quantity.InexactFloat64(),
		"unit_cost":     sl.UnitCost.InexactFloat64(),
		"stock_value":   sl.Quantity.Mul(sl.UnitCost).InexactFloat64(),
		"last_moved_at": dayValue(sl.LastMovedAt),
	}
}
