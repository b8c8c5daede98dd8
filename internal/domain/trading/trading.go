// Package trading holds the read models the report console is built
// over. These are projections of documents owned by the upstream
// trading system; the console reads them and derives views, it never
// writes them back.
package trading

import (
	"time"

	"github.com/google/uuid"

	"github.com/tradeconsole/backend/internal/domain/report"
)

// Currency is a reference currency a document is denominated in.
type Currency struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key"`
	Code string    `gorm:"type:varchar(10);not null;uniqueIndex"`
	Name string    `gorm:"type:varchar(100);not null"`
}

// TableName returns the table name for GORM
func (Currency) TableName() string {
	return "currencies"
}

// Customer is a trading partner documents are issued to.
type Customer struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key"`
	Name   string    `gorm:"type:varchar(200);not null"`
	Phone  string    `gorm:"type:varchar(50)"`
	Region string    `gorm:"type:varchar(100)"`
}

// TableName returns the table name for GORM
func (Customer) TableName() string {
	return "customers"
}

// Rep is a sales representative.
type Rep struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key"`
	Name string    `gorm:"type:varchar(200);not null"`
}

// TableName returns the table name for GORM
func (Rep) TableName() string {
	return "reps"
}

// Warehouse is a stock location.
type Warehouse struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key"`
	Name string    `gorm:"type:varchar(200);not null"`
}

// TableName returns the table name for GORM
func (Warehouse) TableName() string {
	return "warehouses"
}

// refValue builds the nested {id, name} object the report engine
// filters and labels by.
func refValue(id uuid.UUID, name string) map[string]any {
	if id == uuid.Nil && name == "" {
		return nil
	}
	return map[string]any{"id": id.String(), "name": name}
}

func currencyValue(c Currency) map[string]any {
	if c.Code == "" {
		return nil
	}
	return map[string]any{"code": c.Code, "name": c.Name}
}

// dayValue renders a document date as a calendar day, or nil for the
// zero time so absent dates degrade instead of reading as year 1.
func dayValue(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.Format(report.DayFormat)
}
