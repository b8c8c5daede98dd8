package persistence

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tradeconsole/backend/internal/domain/report"
	"github.com/tradeconsole/backend/internal/domain/trading"
)

// RepPerformanceSource aggregates invoices, payment vouchers and sales
// returns into one record per rep, with a per-currency metric array the
// dynamic shaper derives columns from.
type RepPerformanceSource struct {
	db *gorm.DB
}

// NewRepPerformanceSource creates a new rep performance record source
func NewRepPerformanceSource(db *gorm.DB) *RepPerformanceSource {
	return &RepPerformanceSource{db: db}
}

type repTotals struct {
	name       string
	currencies map[string]*currencyTotals
}

type currencyTotals struct {
	currencyName string
	sales        float64
	collections  float64
	returns      float64
}

// Load aggregates the three document projections per (rep, currency).
func (s *RepPerformanceSource) Load(ctx context.Context) ([]report.Record, error) {
	totals := make(map[string]*repTotals)

	bucket := func(repID, repName, code, currencyName string) *currencyTotals {
		rt, ok := totals[repID]
		if !ok {
			rt = &repTotals{name: repName, currencies: make(map[string]*currencyTotals)}
			totals[repID] = rt
		}
		if code == "" {
			code = "unknown"
		}
		ct, ok := rt.currencies[code]
		if !ok {
			ct = &currencyTotals{currencyName: currencyName}
			rt.currencies[code] = ct
		}
		return ct
	}

	var invoices []trading.Invoice
	if err := s.db.WithContext(ctx).Preload("Rep").Preload("Currency").Find(&invoices).Error; err != nil {
		return nil, fmt.Errorf("load invoices for rep performance: %w", err)
	}
	for i := range invoices {
		inv := &invoices[i]
		if inv.RepID == uuid.Nil {
			continue
		}
		ct := bucket(inv.RepID.String(), inv.Rep.Name, inv.Currency.Code, inv.Currency.Name)
		ct.sales += inv.NetTotal.InexactFloat64()
	}

	var vouchers []trading.PaymentVoucher
	if err := s.db.WithContext(ctx).Preload("Rep").Preload("Currency").Find(&vouchers).Error; err != nil {
		return nil, fmt.Errorf("load vouchers for rep performance: %w", err)
	}
	for i := range vouchers {
		pv := &vouchers[i]
		if pv.RepID == uuid.Nil {
			continue
		}
		ct := bucket(pv.RepID.String(), pv.Rep.Name, pv.Currency.Code, pv.Currency.Name)
		ct.collections += pv.Amount.InexactFloat64()
	}

	var returns []trading.SalesReturn
	if err := s.db.WithContext(ctx).Preload("Rep").Preload("Currency").Find(&returns).Error; err != nil {
		return nil, fmt.Errorf("load returns for rep performance: %w", err)
	}
	for i := range returns {
		sr := &returns[i]
		if sr.RepID == uuid.Nil {
			continue
		}
		ct := bucket(sr.RepID.String(), sr.Rep.Name, sr.Currency.Code, sr.Currency.Name)
		ct.returns += sr.TotalValue.InexactFloat64()
	}

	return buildRepRecords(totals), nil
}

// buildRepRecords renders the aggregation in rep-name order with
// per-currency metric entries sorted by currency code.
func buildRepRecords(totals map[string]*repTotals) []report.Record {
	repIDs := make([]string, 0, len(totals))
	for id := range totals {
		repIDs = append(repIDs, id)
	}
	sort.Slice(repIDs, func(i, j int) bool {
		a, b := totals[repIDs[i]], totals[repIDs[j]]
		if a.name != b.name {
			return a.name < b.name
		}
		return repIDs[i] < repIDs[j]
	})

	records := make([]report.Record, 0, len(repIDs))
	for _, repID := range repIDs {
		rt := totals[repID]

		codes := make([]string, 0, len(rt.currencies))
		for code := range rt.currencies {
			codes = append(codes, code)
		}
		sort.Strings(codes)

		metrics := make([]any, 0, len(codes)*3)
		for _, code := range codes {
			ct := rt.currencies[code]
			currency := map[string]any{"code": code, "name": ct.currencyName}
			metrics = append(metrics,
				map[string]any{"currency": currency, "metric": "sales", "value": ct.sales},
				map[string]any{"currency": currency, "metric": "collections", "value": ct.collections},
				map[string]any{"currency": currency, "metric": "returns", "value": ct.returns},
			)
		}

		records = append(records, report.Record{
			"rep":     map[string]any{"id": repID, "name": rt.name},
			"metrics": metrics,
		})
	}
	return records
}
