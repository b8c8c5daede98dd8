package persistence

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm"

	appreport "github.com/tradeconsole/backend/internal/application/report"
	"github.com/tradeconsole/backend/internal/domain/report"
	"github.com/tradeconsole/backend/internal/infrastructure/telemetry"
)

// tracedSource wraps a record source with a load span so slow
// projections show up in traces. With no tracer provider registered the
// spans are no-ops.
type tracedSource struct {
	name  string
	inner appreport.RecordSource
}

func (s tracedSource) Load(ctx context.Context) ([]report.Record, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "source", s.name,
		attribute.String(telemetry.SpanAttrSource, s.name))
	defer span.End()

	records, err := s.inner.Load(ctx)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	span.SetAttributes(attribute.Int(telemetry.SpanAttrRows, len(records)))
	return records, nil
}

// NewSources wires every report record source against one database
// connection, keyed the way the report catalog expects.
func NewSources(db *gorm.DB) map[string]appreport.RecordSource {
	sources := map[string]appreport.RecordSource{
		appreport.SourceInvoices:       NewInvoiceSource(db),
		appreport.SourceStock:          NewStockSource(db),
		appreport.SourceVouchers:       NewVoucherSource(db),
		appreport.SourceReturns:        NewReturnSource(db),
		appreport.SourceVisits:         NewVisitSource(db),
		appreport.SourceAccounts:       NewAccountSource(db),
		appreport.SourcePriceList:      NewPriceListSource(db),
		appreport.SourceRepPerformance: NewRepPerformanceSource(db),
	}
	for name, source := range sources {
		sources[name] = tracedSource{name: name, inner: source}
	}
	return sources
}
