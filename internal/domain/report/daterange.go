package report

import (
	"strings"
	"time"
)

// DayFormat is the calendar-day representation used for filter defaults.
const DayFormat = "2006-01-02"

// dateLayouts are the encodings record date fields arrive in.
var dateLayouts = []string{
	DayFormat,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// DateRange is an inclusive calendar-day range seeding a report's date
// filters.
type DateRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// ParseDate interprets a record field as a calendar date. Time-of-day is
// discarded. The second return is false for absent or unparseable
// values; callers decide whether that excludes the record or simply
// skips it.
func ParseDate(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return dayOf(t), true
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return time.Time{}, false
		}
		for _, layout := range dateLayouts {
			if parsed, err := time.Parse(layout, s); err == nil {
				return dayOf(parsed), true
			}
		}
	}
	return time.Time{}, false
}

// DetectDefaultRange scans the date field of every record and returns
// the default filter range [earliest record date, today]. Unparseable
// dates are ignored; with no valid dates at all, From is today as well.
// The upper bound is always "today", never the latest record date. The
// clock is passed in explicitly so the engine itself stays clock-free.
func DetectDefaultRange(records []Record, datePath string, now time.Time) DateRange {
	today := dayOf(now)
	from := today
	found := false

	for _, rec := range records {
		d, ok := ParseDate(FieldAt(rec, datePath))
		if !ok {
			continue
		}
		if !found || d.Before(from) {
			from = d
			found = true
		}
	}
	return DateRange{From: from, To: today}
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
