package trading

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tradeconsole/backend/internal/domain/report"
)

// Product is a catalog item with its price list.
type Product struct {
	ID     uuid.UUID      `gorm:"type:uuid;primary_key"`
	SKU    string         `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name   string         `gorm:"type:varchar(200);not null"`
	Unit   string         `gorm:"type:varchar(30)"`
	Prices []ProductPrice `gorm:"foreignKey:ProductID"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// ProductPrice is one priced entry of a product: a price type in a
// currency. A product may legitimately carry several entries for the
// same (currency, type) pair, for example tiered wholesale prices, and
// the price list report widens its columns to fit.
type ProductPrice struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key"`
	ProductID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	CurrencyID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Currency   Currency        `gorm:"foreignKey:CurrencyID"`
	PriceType  string          `gorm:"type:varchar(30);not null"`
	Value      decimal.Decimal `gorm:"type:decimal(18,4);not null"`
}

// TableName returns the table name for GORM
func (ProductPrice) TableName() string {
	return "product_prices"
}

// ToRecord projects the product and its price list into the generic
// row shape the dynamic price report consumes: prices become the
// nested value array columns are discovered from.
func (p *Product) ToRecord() report.Record {
	prices := make([]any, 0, len(p.Prices))
	for _, pp := range p.Prices {
		prices = append(prices, map[string]any{
			"currency":   currencyValue(pp.Currency),
			"price_type": pp.PriceType,
			"value":      pp.Value.InexactFloat64(),
		})
	}
	return report.Record{
		"id":     p.ID.String(),
		"sku":    p.SKU,
		"name":   p.Name,
		"unit":   p.Unit,
		"prices": prices,
	}
}
