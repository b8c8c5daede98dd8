package trading

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradeconsole/backend/internal/domain/report"
)

func TestInvoiceToRecord(t *testing.T) {
	custID := uuid.New()
	inv := Invoice{
		ID:            uuid.New(),
		InvoiceNumber: "INV-100",
		CustomerID:    custID,
		Customer:      Customer{ID: custID, Name: "Acme Traders"},
		Currency:      Currency{Code: "USD", Name: "US Dollar"},
		InvoiceDate:   time.Date(2024, time.March, 5, 11, 30, 0, 0, time.UTC),
		Status:        "paid",
		NetTotal:      decimal.NewFromFloat(150.25),
	}

	rec := inv.ToRecord()

	t.Run("engine paths resolve", func(t *testing.T) {
		assert.Equal(t, "Acme Traders", report.FieldAt(rec, "customer.name"))
		assert.Equal(t, custID.String(), report.FieldAt(rec, "customer.id"))
		assert.Equal(t, "USD", report.FieldAt(rec, "currency.code"))
		assert.Equal(t, "2024-03-05", rec["invoice_date"])
	})

	t.Run("amounts are plain floats", func(t *testing.T) {
		assert.InDelta(t, 150.25, report.Numeric(rec["net_total"]), 1e-9)
	})

	t.Run("date parses back as a day", func(t *testing.T) {
		d, ok := report.ParseDate(rec["invoice_date"])
		require.True(t, ok)
		assert.Equal(t, time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC), d)
	})

	t.Run("absent rep reference is nil", func(t *testing.T) {
		assert.Nil(t, rec["rep"])
		assert.Nil(t, report.FieldAt(rec, "rep.id"))
	})
}

func TestPaymentVoucherToRecord(t *testing.T) {
	repID := uuid.New()
	pv := PaymentVoucher{
		ID:            uuid.New(),
		VoucherNumber: "PV-7",
		RepID:         repID,
		Rep:           Rep{ID: repID, Name: "Rep A"},
		VoucherDate:   time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC),
		Amount:        decimal.NewFromInt(250),
	}

	rec := pv.ToRecord()
	assert.Equal(t, repID.String(), report.FieldAt(rec, "rep.id"))
	assert.Equal(t, "2024-01-10", rec["voucher_date"])
	assert.InDelta(t, 250, report.Numeric(rec["amount"]), 1e-9)
}

func TestStockLineToRecord(t *testing.T) {
	sl := StockLine{
		ID:       uuid.New(),
		Product:  Product{SKU: "SKU-1", Name: "Widget", Unit: "pc"},
		Quantity: decimal.NewFromInt(12),
		UnitCost: decimal.NewFromFloat(2.5),
	}

	rec := sl.ToRecord()
	assert.Equal(t, "Widget", report.FieldAt(rec, "product.name"))
	assert.InDelta(t, 30, report.Numeric(rec["stock_value"]), 1e-9)
	assert.Nil(t, rec["last_moved_at"])
}

func TestProductToRecord(t *testing.T) {
	p := Product{
		ID:   uuid.New(),
		SKU:  "SKU-2",
		Name: "Gadget",
		Prices: []ProductPrice{
			{Currency: Currency{Code: "USD", Name: "US Dollar"}, PriceType: "general", Value: decimal.NewFromInt(10)},
			{Currency: Currency{Code: "LBP", Name: "Lebanese Pound"}, PriceType: "wholesale", Value: decimal.NewFromInt(800000)},
		},
	}

	rec := p.ToRecord()
	prices, ok := rec["prices"].([]any)
	require.True(t, ok)
	require.Len(t, prices, 2)

	first, ok := prices[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "general", first["price_type"])
	assert.Equal(t, "USD", report.FieldAt(report.Record(first), "currency.code"))

	t.Run("dynamic shaper discovers the price columns", func(t *testing.T) {
		spec := report.DimensionSpec{
			ValuesPath:     "prices",
			BucketPath:     "currency.code",
			BucketNamePath: "currency.name",
			TypePath:       "price_type",
			AmountPath:     "value",
			Types: []report.TypeSpec{
				{Value: "general", Display: "General"},
				{Value: "wholesale", Display: "Wholesale"},
			},
		}
		result := report.ShapeDynamic([]report.Record{rec}, spec)
		require.Len(t, result.Columns, 2)
		assert.Equal(t, "General (US Dollar)", result.Columns[0].Label)
		assert.Equal(t, "Wholesale (Lebanese Pound)", result.Columns[1].Label)
	})
}

func TestAccountToRecord(t *testing.T) {
	a := Account{
		ID:       uuid.New(),
		Code:     "1010",
		Name:     "Cash",
		Type:     "asset",
		Balance:  decimal.NewFromFloat(1234.5),
		Currency: Currency{Code: "USD", Name: "US Dollar"},
	}

	rec := a.ToRecord()
	assert.Equal(t, "1010", rec["code"])
	assert.InDelta(t, 1234.5, report.Numeric(rec["balance"]), 1e-9)
	assert.Equal(t, "USD", report.FieldAt(rec, "currency.code"))
}
