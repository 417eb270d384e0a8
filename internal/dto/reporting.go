package dto

import "time"

// ReportPeriodParams captures the date range for reporting queries.
// When From/To are omitted the current calendar month is used.
type ReportPeriodParams struct {
	From *time.Time `form:"from" time_format:"2006-01-02"`
	To   *time.Time `form:"to" time_format:"2006-01-02"`
}
