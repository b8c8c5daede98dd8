package trading

import (
	"time"

	"github.com/google/uuid"

	"github.com/tradeconsole/backend/internal/domain/report"
)

// RepVisit is a customer-visit projection from the field activity log.
type RepVisit struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key"`
	RepID           uuid.UUID `gorm:"type:uuid;not null;index"`
	Rep             Rep       `gorm:"foreignKey:RepID"`
	CustomerID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Customer        Customer  `gorm:"foreignKey:CustomerID"`
	VisitDate       time.Time `gorm:"not null;index"`
	Purpose         string    `gorm:"type:varchar(200)"`
	Outcome         string    `gorm:"type:varchar(500)"`
	DurationMinutes int
}

// TableName returns the table name for GORM
func (RepVisit) TableName() string {
	return "rep_visits"
}

// ToRecord projects the visit into the generic row shape the report
// engine consumes.
func (rv *RepVisit) ToRecord() report.Record {
	return report.Record{
		"id":               rv.ID.String(),
		"rep":              refValue(rv.RepID, rv.Rep.Name),
		"customer":         refValue(rv.CustomerID, rv.Customer.Name),
		"visit_date":       dayValue(rv.VisitDate),
		"purpose":          rv.Purpose,
		"outcome":          rv.Outcome,
		"duration_minutes": rv.DurationMinutes,
	}
}
