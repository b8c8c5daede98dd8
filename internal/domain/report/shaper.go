package report

import "fmt"

// Header is one fixed column of a static report: Key is a dot-path read
// off each record, Label the display text.
type Header struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// ColumnDescriptor describes one rendered column. Static columns carry
// only Key and Label. Dynamic columns additionally carry the bucket
// (e.g. a currency code), the type (e.g. a price type) and the 0-based
// repeat index, so the cell accessor needs no further parsing of the
// key.
type ColumnDescriptor struct {
	Key    string `json:"key"`
	Label  string `json:"label"`
	Bucket string `json:"bucket,omitempty"`
	Type   string `json:"type,omitempty"`
	Index  int    `json:"index"`
}

// ReportResult is a derived view over a filtered record set. It is
// recomputed on demand and never persisted.
//
// GrandTotal sums the designated numeric field across all rows with no
// currency grouping, so callers must ensure the filtered set is
// currency-homogeneous before trusting it. TotalsByCurrency is the
// per-currency breakdown offered alongside.
type ReportResult struct {
	Rows             []Record           `json:"rows"`
	Columns          []ColumnDescriptor `json:"columns"`
	GrandTotal       float64            `json:"grand_total"`
	TotalsByCurrency map[string]float64 `json:"totals_by_currency,omitempty"`
}

// StaticSpec configures a fixed-column report.
type StaticSpec struct {
	Headers      []Header
	TotalPath    string // numeric field summed into GrandTotal
	CurrencyPath string // optional; enables TotalsByCurrency
}

// ShapeStatic renders a filtered record set under a fixed header list.
// Rows keep their filtered order; the shaper never sorts.
func ShapeStatic(records []Record, spec StaticSpec) ReportResult {
	if records == nil {
		records = []Record{}
	}
	columns := make([]ColumnDescriptor, len(spec.Headers))
	for i, h := range spec.Headers {
		columns[i] = ColumnDescriptor{Key: h.Key, Label: h.Label}
	}
	return ReportResult{
		Rows:             records,
		Columns:          columns,
		GrandTotal:       sumPath(records, spec.TotalPath),
		TotalsByCurrency: totalsByCurrency(records, spec.TotalPath, spec.CurrencyPath),
	}
}

// StaticCell resolves a static column's cell: a dot-path read with the
// NotApplicable placeholder for absent values.
func StaticCell(rec Record, col ColumnDescriptor) any {
	if v := FieldAt(rec, col.Key); v != nil {
		return v
	}
	return NotApplicable
}

// TypeSpec names one value type of interest for a dynamic report,
// e.g. a wholesale/retail/general price type.
type TypeSpec struct {
	Value   string
	Display string
}

// DimensionSpec configures a dynamic multi-dimensional report: each
// record carries an array of values (at ValuesPath), and columns are
// derived per (bucket, type) pair actually present in the data, repeated
// up to the maximum count any single record carries for that pair.
type DimensionSpec struct {
	ValuesPath     string     // record path to the per-record value array
	BucketPath     string     // value path to the bucket code (e.g. "currency.code")
	BucketNamePath string     // value path to the bucket display name
	TypePath       string     // value path to the type value
	AmountPath     string     // value path to the cell number
	Types          []TypeSpec // type values of interest, in column order
	TotalPath      string     // record-level numeric field for GrandTotal
	CurrencyPath   string     // optional record-level currency code
}

// ShapeDynamic renders a dynamic report in two passes: the first scans
// every record to discover the buckets present, their display names and
// the per-(bucket,type) repeat counts; the second emits one column per
// (bucket, type, index) triple. Columns are data-dependent, so they
// must be recomputed whenever the record set changes.
func ShapeDynamic(records []Record, spec DimensionSpec) ReportResult {
	if records == nil {
		records = []Record{}
	}

	type pair struct{ bucket, typ string }
	counts := make(map[pair]int)
	bucketOrder := make([]string, 0)
	bucketNames := make(map[string]string)

	for _, rec := range records {
		perRecord := make(map[pair]int)
		for _, value := range valuesOf(rec, spec.ValuesPath) {
			bucket := Stringify(FieldAt(value, spec.BucketPath))
			if bucket == "" {
				continue
			}
			if _, known := bucketNames[bucket]; !known {
				bucketOrder = append(bucketOrder, bucket)
				bucketNames[bucket] = ""
			}
			if bucketNames[bucket] == "" {
				bucketNames[bucket] = Stringify(FieldAt(value, spec.BucketNamePath))
			}
			perRecord[pair{bucket, Stringify(FieldAt(value, spec.TypePath))}]++
		}
		for p, n := range perRecord {
			if n > counts[p] {
				counts[p] = n
			}
		}
	}

	columns := make([]ColumnDescriptor, 0)
	for _, bucket := range bucketOrder {
		display := bucketNames[bucket]
		if display == "" {
			display = bucket
		}
		for _, ts := range spec.Types {
			count := counts[pair{bucket, ts.Value}]
			for i := 0; i < count; i++ {
				label := ts.Display
				if count > 1 {
					label = fmt.Sprintf("%s %d", ts.Display, i+1)
				}
				columns = append(columns, ColumnDescriptor{
					Key:    fmt.Sprintf("%s:%s:%d", ts.Value, bucket, i),
					Label:  fmt.Sprintf("%s (%s)", label, display),
					Bucket: bucket,
					Type:   ts.Value,
					Index:  i,
				})
			}
		}
	}

	return ReportResult{
		Rows:             records,
		Columns:          columns,
		GrandTotal:       sumPath(records, spec.TotalPath),
		TotalsByCurrency: totalsByCurrency(records, spec.TotalPath, spec.CurrencyPath),
	}
}

// CellValue resolves a dynamic column's cell for one record: the
// record's values are filtered to the column's bucket and type, and the
// Index-th match is selected. Absent cells render the NotApplicable
// placeholder instead of failing.
func (spec DimensionSpec) CellValue(rec Record, col ColumnDescriptor) any {
	idx := 0
	for _, value := range valuesOf(rec, spec.ValuesPath) {
		if Stringify(FieldAt(value, spec.BucketPath)) != col.Bucket {
			continue
		}
		if Stringify(FieldAt(value, spec.TypePath)) != col.Type {
			continue
		}
		if idx == col.Index {
			if cell := FieldAt(value, spec.AmountPath); cell != nil {
				return cell
			}
			return NotApplicable
		}
		idx++
	}
	return NotApplicable
}

// valuesOf reads the value array a dynamic report iterates per record.
// Non-array fields and non-object elements yield nothing.
func valuesOf(rec Record, path string) []Record {
	list, ok := FieldAt(rec, path).([]any)
	if !ok {
		return nil
	}
	values := make([]Record, 0, len(list))
	for _, item := range list {
		if obj, ok := item.(map[string]any); ok {
			values = append(values, Record(obj))
		}
	}
	return values
}

func sumPath(records []Record, path string) float64 {
	if path == "" {
		return 0
	}
	var total float64
	for _, rec := range records {
		total += Numeric(FieldAt(rec, path))
	}
	return total
}

func totalsByCurrency(records []Record, totalPath, currencyPath string) map[string]float64 {
	if totalPath == "" || currencyPath == "" || len(records) == 0 {
		return nil
	}
	totals := make(map[string]float64)
	for _, rec := range records {
		code := Stringify(FieldAt(rec, currencyPath))
		if code == "" {
			code = "unknown"
		}
		totals[code] += Numeric(FieldAt(rec, totalPath))
	}
	return totals
}
