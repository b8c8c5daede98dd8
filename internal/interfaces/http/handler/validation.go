package handler

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/tradeconsole/backend/internal/domain/report"
	"github.com/tradeconsole/backend/internal/interfaces/http/dto"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterStructValidation(validateReportRange, dto.ReportRangeQuery{})
	}
}

// validateReportRange rejects inverted date bounds before they reach
// the filter engine. Format errors are left to the datetime tag on the
// individual fields.
func validateReportRange(sl validator.StructLevel) {
	q := sl.Current().Interface().(dto.ReportRangeQuery)
	if q.FromDate == "" || q.ToDate == "" {
		return
	}
	from, errFrom := time.Parse(report.DayFormat, q.FromDate)
	to, errTo := time.Parse(report.DayFormat, q.ToDate)
	if errFrom != nil || errTo != nil {
		return
	}
	if to.Before(from) {
		sl.ReportError(q.ToDate, "ToDate", "to_date", "gtefield", "from_date")
	}
}
