package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID Reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID Reference
}

// DateRange is an inclusive [Start, End] date interval used to parameterize
// report generation and transaction filtering. Only the date portions of
// Start and End are significant.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t falls within the range, comparing dates only.
func (r DateRange) Contains(t time.Time) bool {
	d := DateOnly(t)
	return !d.Before(DateOnly(r.Start)) && !d.After(DateOnly(r.End))
}

// SingleYear reports whether the range is confined to one calendar year.
func (r DateRange) SingleYear() bool {
	return r.Start.Year() == r.End.Year()
}

// DateOnly truncates a time to midnight UTC so that date comparisons are not
// affected by the time-of-day component carried by parsed timestamps.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
