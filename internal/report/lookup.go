package report

import (
	"sort"
	"time"

	"vosul/internal/domain"
)

// CountByStatus counts records per final status, most frequent first. Ties
// keep the order in which statuses first appear. Records without a final
// status are not counted.
func CountByStatus(ds *domain.Dataset) []domain.StatusCount {
	index := make(map[string]int)
	var out []domain.StatusCount
	for _, rec := range records(ds) {
		if rec.FinalStatus == "" {
			continue
		}
		i, ok := index[rec.FinalStatus]
		if !ok {
			i = len(out)
			index[rec.FinalStatus] = i
			out = append(out, domain.StatusCount{FinalStatus: rec.FinalStatus})
		}
		out[i].Count++
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].Count > out[b].Count })
	return out
}

// FilterByDate returns the records whose col date falls on day.
func FilterByDate(ds *domain.Dataset, col domain.DateColumn, day time.Time) []domain.Record {
	want := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	out := make([]domain.Record, 0)
	recs := records(ds)
	for i := range recs {
		if d := recs[i].Date(col); d != nil && d.Equal(want) {
			out = append(out, recs[i])
		}
	}
	return out
}
