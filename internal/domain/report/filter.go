package report

// MatchKind selects how a filter slot compares against a record field.
type MatchKind int

const (
	// MatchExact passes when the slot is unset or the record field
	// equals the selected value.
	MatchExact MatchKind = iota
	// MatchDateRange compares the record field against the reserved
	// SlotFromDate / SlotToDate bounds, inclusive on both ends.
	MatchDateRange
)

// Reserved filter slots holding the date-range bounds.
const (
	SlotFromDate = "from_date"
	SlotToDate   = "to_date"
)

// AllValue is the conventional "no constraint" selection for exact
// filters, alongside nil and the empty string.
const AllValue = "all"

// FieldRule declares, for one named filter slot, which record field to
// compare and how.
type FieldRule struct {
	Path string
	Kind MatchKind
}

// FieldMap declares a report's filterable slots.
type FieldMap map[string]FieldRule

// FilterState is the user's current selection per slot. It lives only
// as long as the report view; the engine never retains it.
type FilterState map[string]any

// IsUnset reports whether a filter selection places no constraint.
func IsUnset(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && (s == "" || s == AllValue)
}

// FilterRecords applies every declared predicate, combined with logical
// AND, and returns the surviving records as a stable subsequence of the
// input. Exact slots compare stringified values (ids and codes, not
// display labels). For the date range, a record whose date field cannot
// be parsed fails the predicate whenever either bound is active; the
// malformed row is silently dropped rather than surfaced, matching the
// console's behavior. The input slice is never mutated.
func FilterRecords(records []Record, state FilterState, fields FieldMap) []Record {
	out := make([]Record, 0, len(records))
	for _, rec := range records {
		if matches(rec, state, fields) {
			out = append(out, rec)
		}
	}
	return out
}

func matches(rec Record, state FilterState, fields FieldMap) bool {
	for slot, rule := range fields {
		switch rule.Kind {
		case MatchExact:
			selected := state[slot]
			if IsUnset(selected) {
				continue
			}
			if Stringify(FieldAt(rec, rule.Path)) != Stringify(selected) {
				return false
			}
		case MatchDateRange:
			from, fromSet := ParseDate(state[SlotFromDate])
			to, toSet := ParseDate(state[SlotToDate])
			if !fromSet && !toSet {
				continue
			}
			d, ok := ParseDate(FieldAt(rec, rule.Path))
			if !ok {
				return false
			}
			if fromSet && d.Before(from) {
				return false
			}
			if toSet && d.After(to) {
				return false
			}
		}
	}
	return true
}
