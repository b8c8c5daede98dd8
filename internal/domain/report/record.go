package report

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Record is one externally sourced row (an invoice, payment voucher,
// sales return, stock line or rep visit) in the shape JSON
// deserialization produces. The engine only reads records; it never
// creates, mutates or destroys them.
type Record map[string]any

// NotApplicable is the placeholder rendered for cells that have no value.
const NotApplicable = "N/A"

// FieldAt resolves a dot-path (e.g. "customer.name") against a record,
// traversing nested objects. Any missing or non-object segment yields
// nil; absence is never an error.
func FieldAt(rec Record, path string) any {
	if rec == nil || path == "" {
		return nil
	}

	var current any = map[string]any(rec)
	for _, segment := range strings.Split(path, ".") {
		obj, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		current, ok = obj[segment]
		if !ok {
			return nil
		}
	}
	return current
}

// Stringify renders a field value the way the console compares and keys
// values: nil becomes the empty string, numbers drop trailing zeros so a
// JSON 5 and a literal "5" key the same option.
func Stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	case json.Number:
		return t.String()
	default:
		return fmt.Sprintf("%v", t)
	}
}

// Numeric coerces a field value to float64 for summation. Absent,
// non-numeric and null values count as zero so malformed rows degrade
// silently instead of failing a report.
func Numeric(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case float32:
		return float64(t)
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return 0
		}
		return f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
