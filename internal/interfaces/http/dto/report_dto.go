package dto

// ReportRangeQuery carries the optional date-range bounds of a report
// request. Both bounds are day-resolution and inclusive.
type ReportRangeQuery struct {
	FromDate string `form:"from_date" binding:"omitempty,datetime=2006-01-02"`
	ToDate   string `form:"to_date" binding:"omitempty,datetime=2006-01-02"`
}

// FilterSlotInfo describes one filter dropdown of a report
type FilterSlotInfo struct {
	Slot  string `json:"slot"`
	Label string `json:"label"`
}

// ReportSummary is a catalog entry as listed to the console
type ReportSummary struct {
	Name      string           `json:"name"`
	Title     string           `json:"title"`
	Filters   []FilterSlotInfo `json:"filters"`
	DateRange bool             `json:"date_range"`
	Dynamic   bool             `json:"dynamic"`
}
