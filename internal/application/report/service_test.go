package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradeconsole/backend/internal/domain/report"
	"github.com/tradeconsole/backend/internal/domain/shared"
)

type memorySource struct {
	records []report.Record
	err     error
	loads   int
}

func (m *memorySource) Load(ctx context.Context) ([]report.Record, error) {
	m.loads++
	if m.err != nil {
		return nil, m.err
	}
	return m.records, nil
}

type memoryCache struct {
	entries map[string]*report.ReportResult
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string]*report.ReportResult)}
}

func (m *memoryCache) Get(ctx context.Context, key string) (*report.ReportResult, bool) {
	r, ok := m.entries[key]
	return r, ok
}

func (m *memoryCache) Set(ctx context.Context, key string, result *report.ReportResult) {
	m.entries[key] = result
}

func voucherRecords() []report.Record {
	return []report.Record{
		{
			"id": "v-1", "voucher_no": "PV-1",
			"rep":          map[string]any{"id": "rep-a", "name": "Rep A"},
			"customer":     map[string]any{"id": "c-1", "name": "Acme Traders"},
			"currency":     map[string]any{"code": "USD", "name": "US Dollar"},
			"voucher_date": "2024-01-10", "method": "cash", "amount": float64(100),
		},
		{
			"id": "v-2", "voucher_no": "PV-2",
			"rep":          map[string]any{"id": "rep-b", "name": "Rep B"},
			"customer":     map[string]any{"id": "c-2", "name": "Beta Goods"},
			"currency":     map[string]any{"code": "USD", "name": "US Dollar"},
			"voucher_date": "2024-02-15", "method": "bank", "amount": float64(250),
		},
		{
			"id": "v-3", "voucher_no": "PV-3",
			"rep":          map[string]any{"id": "rep-a", "name": "Rep A"},
			"customer":     map[string]any{"id": "c-1", "name": "Acme Traders"},
			"currency":     map[string]any{"code": "LBP", "name": "Lebanese Pound"},
			"voucher_date": "2024-03-20", "method": "cash", "amount": float64(75),
		},
	}
}

func fixedClock() func() time.Time {
	return func() time.Time {
		return time.Date(2024, time.June, 10, 12, 0, 0, 0, time.UTC)
	}
}

func TestServiceDefinitions(t *testing.T) {
	svc := NewService(nil)

	defs := svc.Definitions()
	require.NotEmpty(t, defs)
	assert.Equal(t, "sales", defs[0].Name)

	names := make(map[string]bool)
	for _, def := range defs {
		assert.True(t, def.Static != nil || def.Dynamic != nil, def.Name)
		assert.False(t, names[def.Name], "duplicate report name %s", def.Name)
		names[def.Name] = true
	}
	assert.True(t, names["price-list"])
	assert.True(t, names["rep-performance"])
}

func TestServiceOptions(t *testing.T) {
	svc := NewService(map[string]RecordSource{
		SourceVouchers: &memorySource{records: voucherRecords()},
	})

	t.Run("per slot option lists", func(t *testing.T) {
		options, err := svc.Options(context.Background(), "vouchers")
		require.NoError(t, err)

		require.Len(t, options["rep"], 2)
		assert.Equal(t, "Rep A", options["rep"][0].Label)
		assert.Equal(t, "rep-a", options["rep"][0].Value)

		require.Len(t, options["customer"], 2)
		require.Len(t, options["method"], 2)
		assert.Equal(t, "cash", options["method"][0].Label)
	})

	t.Run("unknown report", func(t *testing.T) {
		_, err := svc.Options(context.Background(), "nope")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestServiceDefaultRange(t *testing.T) {
	svc := NewService(map[string]RecordSource{
		SourceVouchers: &memorySource{records: voucherRecords()},
	}, WithClock(fixedClock()))

	r, err := svc.DefaultRange(context.Background(), "vouchers")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-10", r.From.Format(report.DayFormat))
	assert.Equal(t, "2024-06-10", r.To.Format(report.DayFormat))
}

func TestServiceRun(t *testing.T) {
	newSvc := func(opts ...Option) *Service {
		return NewService(map[string]RecordSource{
			SourceVouchers: &memorySource{records: voucherRecords()},
		}, append([]Option{WithClock(fixedClock())}, opts...)...)
	}

	t.Run("unfiltered run shapes every record", func(t *testing.T) {
		result, err := newSvc().Run(context.Background(), "vouchers", nil)
		require.NoError(t, err)
		assert.Len(t, result.Rows, 3)
		assert.Len(t, result.Columns, 7)
		assert.InDelta(t, 425, result.GrandTotal, 1e-9)
		assert.InDelta(t, 350, result.TotalsByCurrency["USD"], 1e-9)
		assert.InDelta(t, 75, result.TotalsByCurrency["LBP"], 1e-9)
	})

	t.Run("rows are keyed by column key", func(t *testing.T) {
		result, err := newSvc().Run(context.Background(), "vouchers", nil)
		require.NoError(t, err)
		assert.Equal(t, "Acme Traders", result.Rows[0]["customer.name"])
		assert.Equal(t, float64(100), result.Rows[0]["amount"])
	})

	t.Run("rep and date filters combine", func(t *testing.T) {
		state := report.FilterState{
			"rep":               "rep-a",
			report.SlotFromDate: "2024-02-01",
			report.SlotToDate:   "2024-12-31",
		}
		result, err := newSvc().Run(context.Background(), "vouchers", state)
		require.NoError(t, err)
		require.Len(t, result.Rows, 1)
		assert.Equal(t, "PV-3", result.Rows[0]["voucher_no"])
		assert.InDelta(t, 75, result.GrandTotal, 1e-9)
	})

	t.Run("unknown report", func(t *testing.T) {
		_, err := newSvc().Run(context.Background(), "nope", nil)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("source failure propagates", func(t *testing.T) {
		svc := NewService(map[string]RecordSource{
			SourceVouchers: &memorySource{err: errors.New("db down")},
		})
		_, err := svc.Run(context.Background(), "vouchers", nil)
		assert.Error(t, err)
	})

	t.Run("unwired source answers unavailable", func(t *testing.T) {
		_, err := newSvc().Run(context.Background(), "sales", nil)
		require.Error(t, err)
		var derr *shared.DomainError
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, "SOURCE_UNAVAILABLE", derr.Code)
	})

	t.Run("cache short-circuits the second run", func(t *testing.T) {
		source := &memorySource{records: voucherRecords()}
		svc := NewService(map[string]RecordSource{SourceVouchers: source},
			WithCache(newMemoryCache()))

		_, err := svc.Run(context.Background(), "vouchers", report.FilterState{"rep": "rep-a"})
		require.NoError(t, err)
		_, err = svc.Run(context.Background(), "vouchers", report.FilterState{"rep": "rep-a"})
		require.NoError(t, err)
		assert.Equal(t, 1, source.loads)
	})
}

func TestServiceRunDynamic(t *testing.T) {
	products := []report.Record{
		{
			"id": "p-1", "sku": "SKU-1", "name": "Widget",
			"prices": []any{
				map[string]any{"currency": map[string]any{"code": "USD", "name": "US Dollar"}, "price_type": "general", "value": float64(10)},
				map[string]any{"currency": map[string]any{"code": "USD", "name": "US Dollar"}, "price_type": "wholesale", "value": float64(8)},
			},
		},
		{
			"id": "p-2", "sku": "SKU-2", "name": "Gadget",
			"prices": []any{
				map[string]any{"currency": map[string]any{"code": "LBP", "name": "Lebanese Pound"}, "price_type": "general", "value": float64(900000)},
			},
		},
	}
	svc := NewService(map[string]RecordSource{
		SourcePriceList: &memorySource{records: products},
	})

	result, err := svc.Run(context.Background(), "price-list", nil)
	require.NoError(t, err)

	require.Len(t, result.Columns, 3)
	assert.Equal(t, "General (US Dollar)", result.Columns[0].Label)

	require.Len(t, result.Rows, 2)
	widget := result.Rows[0]
	assert.Equal(t, "Widget", widget["name"])
	assert.Equal(t, float64(10), widget[result.Columns[0].Key])
	assert.Equal(t, report.NotApplicable, widget[result.Columns[2].Key])
	assert.NotContains(t, widget, "prices")
}

func TestCacheKey(t *testing.T) {
	t.Run("order independent", func(t *testing.T) {
		a := cacheKey("vouchers", report.FilterState{"rep": "rep-a", "method": "cash"})
		b := cacheKey("vouchers", report.FilterState{"method": "cash", "rep": "rep-a"})
		assert.Equal(t, a, b)
	})

	t.Run("distinct states distinct keys", func(t *testing.T) {
		a := cacheKey("vouchers", report.FilterState{"rep": "rep-a"})
		b := cacheKey("vouchers", report.FilterState{"rep": "rep-b"})
		assert.NotEqual(t, a, b)
	})

	t.Run("empty state is just the name", func(t *testing.T) {
		assert.Equal(t, "vouchers", cacheKey("vouchers", nil))
	})
}
