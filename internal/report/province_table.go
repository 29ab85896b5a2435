package report

import "vosul/internal/domain"

// ProvinceTable builds one row per province, in order of first appearance,
// followed by the total row. Records without a province are skipped.
func (e *Engine) ProvinceTable(ds *domain.Dataset, q domain.ReportQuery) []domain.ProvinceRow {
	r := NewDateRange(q.StartDate, q.EndDate)
	recs := records(ds)

	var rows []domain.ProvinceRow
	index := make(map[string]int)
	for i := range recs {
		rec := &recs[i]
		if rec.Province == "" {
			continue
		}
		pos, ok := index[rec.Province]
		if !ok {
			pos = len(rows)
			index[rec.Province] = pos
			rows = append(rows, domain.ProvinceRow{Province: rec.Province})
		}
		row := &rows[pos]

		collected := rec.FinalStatus == domain.FinalStatusCollected
		if r.returnedIn(rec.CreatedDate, rec.ReceivedDate) {
			row.ReturnsCreated += rec.Amount
		}
		if collected && r.collectedIn(rec.CollectionDate, rec.LastStatusDate) {
			row.Collected += rec.Amount
		}
		if r.Contains(rec.DueDate) {
			row.ReturnsDue += rec.Amount
			switch rec.FinalStatus {
			case domain.FinalStatusCollected:
				row.CollectedDue += rec.Amount
			case domain.FinalStatusNotCollected:
				row.RemainingDue += rec.Amount
			}
		}
	}

	total := domain.ProvinceRow{Province: domain.TotalRowLabel, IsTotal: true}
	for i := range rows {
		deriveProvinceRatios(&rows[i])
		total.ReturnsCreated += rows[i].ReturnsCreated
		total.Collected += rows[i].Collected
		total.ReturnsDue += rows[i].ReturnsDue
		total.CollectedDue += rows[i].CollectedDue
		total.RemainingDue += rows[i].RemainingDue
	}
	deriveProvinceRatios(&total)
	return append(rows, total)
}

func deriveProvinceRatios(row *domain.ProvinceRow) {
	row.CollectedToCreatedRatio = percent(row.Collected, row.ReturnsCreated)
	row.CollectedDueRate = percent(row.CollectedDue, row.ReturnsDue)
	row.RemainingDueRate = percent(row.RemainingDue, row.ReturnsDue)
}
