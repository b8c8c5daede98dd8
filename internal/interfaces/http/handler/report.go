package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	appreport "github.com/tradeconsole/backend/internal/application/report"
	"github.com/tradeconsole/backend/internal/domain/report"
	"github.com/tradeconsole/backend/internal/interfaces/http/dto"
)

// ReportRunner is the application surface the report endpoints depend on.
type ReportRunner interface {
	Definitions() []appreport.Definition
	Options(ctx context.Context, name string) (map[string][]report.FilterOption, error)
	DefaultRange(ctx context.Context, name string) (report.DateRange, error)
	Run(ctx context.Context, name string, state report.FilterState) (*report.ReportResult, error)
}

// ReportHandler serves the admin report console endpoints
type ReportHandler struct {
	BaseHandler
	runner ReportRunner
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(runner ReportRunner) *ReportHandler {
	return &ReportHandler{runner: runner}
}

// RegisterRoutes registers report routes under the admin group
func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reports := rg.Group("/admin/reports")
	{
		reports.GET("", h.ListReports)
		reports.GET("/:name", h.RunReport)
		reports.GET("/:name/options", h.GetOptions)
		reports.GET("/:name/range", h.GetDefaultRange)
	}
}

// ListReports returns the report catalog in display order.
func (h *ReportHandler) ListReports(c *gin.Context) {
	defs := h.runner.Definitions()

	summaries := make([]dto.ReportSummary, 0, len(defs))
	for _, def := range defs {
		filters := make([]dto.FilterSlotInfo, 0, len(def.OptionSlots))
		for _, slot := range def.OptionSlots {
			filters = append(filters, dto.FilterSlotInfo{Slot: slot.Slot, Label: slot.Label})
		}
		summaries = append(summaries, dto.ReportSummary{
			Name:      def.Name,
			Title:     def.Title,
			Filters:   filters,
			DateRange: def.DatePath != "",
			Dynamic:   def.Dynamic != nil,
		})
	}

	h.Success(c, summaries)
}

// GetOptions returns the filter dropdown contents for one report,
// keyed by slot.
func (h *ReportHandler) GetOptions(c *gin.Context) {
	options, err := h.runner.Options(c.Request.Context(), c.Param("name"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, options)
}

// GetDefaultRange returns the default date filter seed for one report.
func (h *ReportHandler) GetDefaultRange(c *gin.Context) {
	rng, err := h.runner.DefaultRange(c.Request.Context(), c.Param("name"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, rng)
}

// RunReport executes one report with the filter selections passed as
// query parameters. Unknown parameters are ignored; only the slots the
// report declares become part of the filter state.
func (h *ReportHandler) RunReport(c *gin.Context) {
	name := c.Param("name")

	def, ok := h.definition(name)
	if !ok {
		h.NotFound(c, "Report not found")
		return
	}

	var rangeQuery dto.ReportRangeQuery
	if err := c.ShouldBindQuery(&rangeQuery); err != nil {
		h.Error(c, http.StatusBadRequest, dto.ErrCodeValidation, "Date bounds must be YYYY-MM-DD with from_date not after to_date")
		return
	}

	state := buildFilterState(c, def, rangeQuery)

	result, err := h.runner.Run(c.Request.Context(), name, state)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

func (h *ReportHandler) definition(name string) (appreport.Definition, bool) {
	for _, def := range h.runner.Definitions() {
		if def.Name == name {
			return def, true
		}
	}
	return appreport.Definition{}, false
}

// buildFilterState translates query parameters into the report's filter
// state, admitting only declared slots plus the reserved date bounds.
func buildFilterState(c *gin.Context, def appreport.Definition, rangeQuery dto.ReportRangeQuery) report.FilterState {
	state := make(report.FilterState)

	for slot, rule := range def.Fields {
		if rule.Kind != report.MatchExact {
			continue
		}
		if value, ok := c.GetQuery(slot); ok && value != "" {
			state[slot] = value
		}
	}

	if rangeQuery.FromDate != "" {
		state[report.SlotFromDate] = rangeQuery.FromDate
	}
	if rangeQuery.ToDate != "" {
		state[report.SlotToDate] = rangeQuery.ToDate
	}

	return state
}
