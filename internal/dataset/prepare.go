// Package dataset turns raw ledger rows into the prepared Dataset and keeps
// the currently published snapshot.
package dataset

import (
	"math"
	"strconv"
	"strings"
	"time"

	"vosul/internal/calendar"
	"vosul/internal/domain"
)

// Options controls dataset preparation.
type Options struct {
	// MinCode is the exclusive lower bound on kept record codes.
	MinCode int64
	// Now stamps the prepared Dataset; defaults to time.Now.
	Now func() time.Time
}

// nullPlaceholders are the cell values the source sheet uses for "no date".
var nullPlaceholders = map[string]bool{
	"":      true,
	"0":     true,
	"0/0/0": true,
}

// Prepare cleans raw rows, drops records whose code is not above MinCode and
// assigns the follow-up responsible party of every kept record.
func Prepare(raw []domain.RawRecord, opts Options) *domain.Dataset {
	if opts.MinCode == 0 {
		opts.MinCode = domain.DefaultMinCode
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	recs := make([]domain.Record, 0, len(raw))
	for i := range raw {
		rec, ok := prepareRecord(&raw[i])
		if !ok || rec.Code <= opts.MinCode {
			continue
		}
		AssignFollowUp(&rec)
		recs = append(recs, rec)
	}
	return &domain.Dataset{Records: recs, LoadedAt: opts.Now()}
}

func prepareRecord(raw *domain.RawRecord) (domain.Record, bool) {
	code, ok := ParseCode(raw.Code)
	if !ok {
		return domain.Record{}, false
	}
	return domain.Record{
		Code:            code,
		CheckNumber:     strings.TrimSpace(raw.CheckNumber),
		DueDate:         ParseDate(raw.DueDate),
		Amount:          ParseAmount(raw.Amount),
		CheckLocation:   strings.TrimSpace(raw.CheckLocation),
		Status:          strings.TrimSpace(raw.Status),
		Enforcement:     strings.TrimSpace(raw.Enforcement),
		LastStatusDate:  ParseDate(raw.LastStatusDate),
		CollectionDate:  ParseDate(raw.CollectionDate),
		ReceivedDate:    ParseDate(raw.ReceivedDate),
		Bank:            strings.TrimSpace(raw.Bank),
		Province:        strings.TrimSpace(raw.Province),
		CreatedDate:     ParseDate(raw.CreatedDate),
		LastFaxDate:     ParseDate(raw.LastFaxDate),
		FaxResponse:     strings.TrimSpace(raw.FaxResponse),
		FinalStatus:     strings.TrimSpace(raw.FinalStatus),
		Collector:       strings.TrimSpace(raw.Collector),
		CollectionOwner: strings.TrimSpace(raw.CollectionOwner),
		CollectionType:  strings.TrimSpace(raw.CollectionType),
		RequestType:     strings.TrimSpace(raw.RequestType),
		FollowUpDate:    ParseDate(raw.FollowUpDate),
	}, true
}

// ParseDate converts a Jalali cell into a Gregorian date. Null placeholders
// and unparseable values yield nil.
func ParseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if nullPlaceholders[s] {
		return nil
	}
	t, ok := calendar.Parse(s)
	if !ok {
		return nil
	}
	return &t
}

// ParseAmount converts an amount cell to a number. Non-numeric and
// non-finite values become 0; negative values are kept as given.
func ParseAmount(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// ParseCode converts a record code cell. Workbooks sometimes store integral
// codes as "60001.0", which is accepted.
func ParseCode(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return int64(v), true
}

// AssignFollowUp derives the follow-up responsible party and the number of
// days between the follow-up and the collection (or last status) date. Within
// the follow-up window the record belongs to its collection owner.
func AssignFollowUp(rec *domain.Record) {
	if rec.FollowUpDate == nil {
		zero := 0
		rec.FollowUpResponsible = domain.CentralFund
		rec.FollowUpToCollectionDays = &zero
		return
	}

	effective := rec.CollectionDate
	if effective == nil {
		effective = rec.LastStatusDate
	}
	if effective == nil {
		rec.FollowUpResponsible = domain.CentralFund
		rec.FollowUpToCollectionDays = nil
		return
	}

	delta := calendar.DaysBetween(*rec.FollowUpDate, *effective)
	rec.FollowUpToCollectionDays = &delta
	if delta >= -domain.FollowUpWindowDays && delta <= domain.FollowUpWindowDays {
		rec.FollowUpResponsible = rec.CollectionOwner
		return
	}
	rec.FollowUpResponsible = domain.CentralFund
}
