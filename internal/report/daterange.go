package report

import (
	"time"

	"vosul/internal/calendar"
)

// DateRange is an inclusive range of calendar days. A range built from an
// unparseable boundary contains nothing.
type DateRange struct {
	Start time.Time
	End   time.Time
	valid bool
}

// NewDateRange converts two Jalali boundary strings into a DateRange.
func NewDateRange(startDate, endDate string) DateRange {
	start, okStart := calendar.Parse(startDate)
	end, okEnd := calendar.Parse(endDate)
	return DateRange{Start: start, End: end, valid: okStart && okEnd}
}

// Valid reports whether both boundaries parsed.
func (r DateRange) Valid() bool {
	return r.valid
}

// Contains reports whether t is present and falls inside the range.
func (r DateRange) Contains(t *time.Time) bool {
	if !r.valid || t == nil {
		return false
	}
	return !t.Before(r.Start) && !t.After(r.End)
}

// collectedIn reports whether a record's collection happened inside the
// range: by collection date when known, otherwise by its last status date.
func (r DateRange) collectedIn(collection, lastStatus *time.Time) bool {
	if collection != nil {
		return r.Contains(collection)
	}
	return r.Contains(lastStatus)
}

// returnedIn reports whether a return was documented inside the range, or,
// when it was never documented, received inside the range.
func (r DateRange) returnedIn(created, received *time.Time) bool {
	if created != nil {
		return r.Contains(created)
	}
	return r.Contains(received)
}
