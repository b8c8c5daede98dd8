package report

import (
	"github.com/tradeconsole/backend/internal/domain/report"
)

// Source names bind report definitions to the record sources wired in
// at startup.
const (
	SourceInvoices       = "invoices"
	SourceStock          = "stock"
	SourceVouchers       = "vouchers"
	SourceReturns        = "returns"
	SourceVisits         = "visits"
	SourceAccounts       = "accounts"
	SourcePriceList      = "price_list"
	SourceRepPerformance = "rep_performance"
)

// OptionSlot declares one filter dropdown of a report: the slot the
// selection is posted under and the record paths its options are
// extracted from.
type OptionSlot struct {
	Slot      string `json:"slot"`
	Label     string `json:"label"`
	KeyPath   string `json:"-"`
	LabelPath string `json:"-"`
}

// Definition is one report of the catalog, declared as data: which
// source feeds it, how it filters and how it is shaped. Exactly one of
// Static and Dynamic is set.
type Definition struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Source      string `json:"-"`
	DatePath    string `json:"-"`
	OptionSlots []OptionSlot
	Fields      report.FieldMap
	Static      *report.StaticSpec
	Dynamic     *report.DimensionSpec
}

// Catalog returns every report the console offers, in display order.
func Catalog() []Definition {
	return []Definition{
		{
			Name:     "sales",
			Title:    "Sales Report",
			Source:   SourceInvoices,
			DatePath: "invoice_date",
			OptionSlots: []OptionSlot{
				{Slot: "customer", Label: "Customer", KeyPath: "customer.id", LabelPath: "customer.name"},
				{Slot: "rep", Label: "Rep", KeyPath: "rep.id", LabelPath: "rep.name"},
				{Slot: "warehouse", Label: "Warehouse", KeyPath: "warehouse.id", LabelPath: "warehouse.name"},
				{Slot: "status", Label: "Status", KeyPath: "status"},
			},
			Fields: report.FieldMap{
				"customer":  {Path: "customer.id", Kind: report.MatchExact},
				"rep":       {Path: "rep.id", Kind: report.MatchExact},
				"warehouse": {Path: "warehouse.id", Kind: report.MatchExact},
				"status":    {Path: "status", Kind: report.MatchExact},
				"dates":     {Path: "invoice_date", Kind: report.MatchDateRange},
			},
			Static: &report.StaticSpec{
				Headers: []report.Header{
					{Key: "invoice_no", Label: "Invoice #"},
					{Key: "invoice_date", Label: "Date"},
					{Key: "customer.name", Label: "Customer"},
					{Key: "rep.name", Label: "Rep"},
					{Key: "warehouse.name", Label: "Warehouse"},
					{Key: "status", Label: "Status"},
					{Key: "currency.code", Label: "Currency"},
					{Key: "net_total", Label: "Net Total"},
				},
				TotalPath:    "net_total",
				CurrencyPath: "currency.code",
			},
		},
		{
			Name:     "inventory",
			Title:    "Inventory Report",
			Source:   SourceStock,
			DatePath: "last_moved_at",
			OptionSlots: []OptionSlot{
				{Slot: "warehouse", Label: "Warehouse", KeyPath: "warehouse.id", LabelPath: "warehouse.name"},
				{Slot: "product", Label: "Product", KeyPath: "product.id", LabelPath: "product.name"},
			},
			Fields: report.FieldMap{
				"warehouse": {Path: "warehouse.id", Kind: report.MatchExact},
				"product":   {Path: "product.id", Kind: report.MatchExact},
				"dates":     {Path: "last_moved_at", Kind: report.MatchDateRange},
			},
			Static: &report.StaticSpec{
				Headers: []report.Header{
					{Key: "product.sku", Label: "SKU"},
					{Key: "product.name", Label: "Product"},
					{Key: "warehouse.name", Label: "Warehouse"},
					{Key: "quantity", Label: "Qty"},
					{Key: "unit_cost", Label: "Unit Cost"},
					{Key: "stock_value", Label: "Stock Value"},
					{Key: "last_moved_at", Label: "Last Movement"},
				},
				TotalPath: "stock_value",
			},
		},
		{
			Name:     "rep-performance",
			Title:    "Rep Performance",
			Source:   SourceRepPerformance,
			DatePath: "",
			OptionSlots: []OptionSlot{
				{Slot: "rep", Label: "Rep", KeyPath: "rep.id", LabelPath: "rep.name"},
			},
			Fields: report.FieldMap{
				"rep": {Path: "rep.id", Kind: report.MatchExact},
			},
			Dynamic: &report.DimensionSpec{
				ValuesPath:     "metrics",
				BucketPath:     "currency.code",
				BucketNamePath: "currency.name",
				TypePath:       "metric",
				AmountPath:     "value",
				Types: []report.TypeSpec{
					{Value: "sales", Display: "Sales"},
					{Value: "collections", Display: "Collections"},
					{Value: "returns", Display: "Returns"},
				},
			},
		},
		{
			Name:   "price-list",
			Title:  "Price List",
			Source: SourcePriceList,
			Dynamic: &report.DimensionSpec{
				ValuesPath:     "prices",
				BucketPath:     "currency.code",
				BucketNamePath: "currency.name",
				TypePath:       "price_type",
				AmountPath:     "value",
				Types: []report.TypeSpec{
					{Value: "general", Display: "General"},
					{Value: "wholesale", Display: "Wholesale"},
					{Value: "retail", Display: "Retail"},
				},
			},
		},
		{
			Name:     "visits",
			Title:    "Rep Visits",
			Source:   SourceVisits,
			DatePath: "visit_date",
			OptionSlots: []OptionSlot{
				{Slot: "rep", Label: "Rep", KeyPath: "rep.id", LabelPath: "rep.name"},
				{Slot: "customer", Label: "Customer", KeyPath: "customer.id", LabelPath: "customer.name"},
			},
			Fields: report.FieldMap{
				"rep":      {Path: "rep.id", Kind: report.MatchExact},
				"customer": {Path: "customer.id", Kind: report.MatchExact},
				"dates":    {Path: "visit_date", Kind: report.MatchDateRange},
			},
			Static: &report.StaticSpec{
				Headers: []report.Header{
					{Key: "visit_date", Label: "Date"},
					{Key: "rep.name", Label: "Rep"},
					{Key: "customer.name", Label: "Customer"},
					{Key: "purpose", Label: "Purpose"},
					{Key: "outcome", Label: "Outcome"},
					{Key: "duration_minutes", Label: "Duration (min)"},
				},
			},
		},
		{
			Name:     "returns",
			Title:    "Sales Returns",
			Source:   SourceReturns,
			DatePath: "return_date",
			OptionSlots: []OptionSlot{
				{Slot: "customer", Label: "Customer", KeyPath: "customer.id", LabelPath: "customer.name"},
				{Slot: "rep", Label: "Rep", KeyPath: "rep.id", LabelPath: "rep.name"},
			},
			Fields: report.FieldMap{
				"customer": {Path: "customer.id", Kind: report.MatchExact},
				"rep":      {Path: "rep.id", Kind: report.MatchExact},
				"dates":    {Path: "return_date", Kind: report.MatchDateRange},
			},
			Static: &report.StaticSpec{
				Headers: []report.Header{
					{Key: "return_no", Label: "Return #"},
					{Key: "return_date", Label: "Date"},
					{Key: "customer.name", Label: "Customer"},
					{Key: "rep.name", Label: "Rep"},
					{Key: "reason", Label: "Reason"},
					{Key: "currency.code", Label: "Currency"},
					{Key: "total_value", Label: "Total Value"},
				},
				TotalPath:    "total_value",
				CurrencyPath: "currency.code",
			},
		},
		{
			Name:     "vouchers",
			Title:    "Payment Vouchers",
			Source:   SourceVouchers,
			DatePath: "voucher_date",
			OptionSlots: []OptionSlot{
				{Slot: "customer", Label: "Customer", KeyPath: "customer.id", LabelPath: "customer.name"},
				{Slot: "rep", Label: "Rep", KeyPath: "rep.id", LabelPath: "rep.name"},
				{Slot: "method", Label: "Method", KeyPath: "method"},
			},
			Fields: report.FieldMap{
				"customer": {Path: "customer.id", Kind: report.MatchExact},
				"rep":      {Path: "rep.id", Kind: report.MatchExact},
				"method":   {Path: "method", Kind: report.MatchExact},
				"dates":    {Path: "voucher_date", Kind: report.MatchDateRange},
			},
			Static: &report.StaticSpec{
				Headers: []report.Header{
					{Key: "voucher_no", Label: "Voucher #"},
					{Key: "voucher_date", Label: "Date"},
					{Key: "customer.name", Label: "Customer"},
					{Key: "rep.name", Label: "Rep"},
					{Key: "method", Label: "Method"},
					{Key: "currency.code", Label: "Currency"},
					{Key: "amount", Label: "Amount"},
				},
				TotalPath:    "amount",
				CurrencyPath: "currency.code",
			},
		},
		{
			Name:   "accounts-statement",
			Title:  "Accounts Statement",
			Source: SourceAccounts,
			OptionSlots: []OptionSlot{
				{Slot: "type", Label: "Account Type", KeyPath: "type"},
				{Slot: "currency", Label: "Currency", KeyPath: "currency.code", LabelPath: "currency.name"},
			},
			Fields: report.FieldMap{
				"type":     {Path: "type", Kind: report.MatchExact},
				"currency": {Path: "currency.code", Kind: report.MatchExact},
			},
			Static: &report.StaticSpec{
				Headers: []report.Header{
					{Key: "code", Label: "Code"},
					{Key: "name", Label: "Account"},
					{Key: "type", Label: "Type"},
					{Key: "currency.code", Label: "Currency"},
					{Key: "balance", Label: "Balance"},
				},
				TotalPath:    "balance",
				CurrencyPath: "currency.code",
			},
		},
		{
			Name:     "vouchers-by-rep",
			Title:    "Collections by Rep",
			Source:   SourceVouchers,
			DatePath: "voucher_date",
			OptionSlots: []OptionSlot{
				{Slot: "rep", Label: "Rep", KeyPath: "rep.id", LabelPath: "rep.name"},
			},
			Fields: report.FieldMap{
				"rep":   {Path: "rep.id", Kind: report.MatchExact},
				"dates": {Path: "voucher_date", Kind: report.MatchDateRange},
			},
			Static: &report.StaticSpec{
				Headers: []report.Header{
					{Key: "rep.name", Label: "Rep"},
					{Key: "voucher_date", Label: "Date"},
					{Key: "customer.name", Label: "Customer"},
					{Key: "method", Label: "Method"},
					{Key: "currency.code", Label: "Currency"},
					{Key: "amount", Label: "Amount"},
				},
				TotalPath:    "amount",
				CurrencyPath: "currency.code",
			},
		},
		{
			Name:     "returns-by-customer",
			Title:    "Returns by Customer",
			Source:   SourceReturns,
			DatePath: "return_date",
			OptionSlots: []OptionSlot{
				{Slot: "customer", Label: "Customer", KeyPath: "customer.id", LabelPath: "customer.name"},
			},
			Fields: report.FieldMap{
				"customer": {Path: "customer.id", Kind: report.MatchExact},
				"dates":    {Path: "return_date", Kind: report.MatchDateRange},
			},
			Static: &report.StaticSpec{
				Headers: []report.Header{
					{Key: "customer.name", Label: "Customer"},
					{Key: "return_date", Label: "Date"},
					{Key: "return_no", Label: "Return #"},
					{Key: "reason", Label: "Reason"},
					{Key: "currency.code", Label: "Currency"},
					{Key: "total_value", Label: "Total Value"},
				},
				TotalPath:    "total_value",
				CurrencyPath: "currency.code",
			},
		},
	}
}
