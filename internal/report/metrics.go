package report

import "vosul/internal/domain"

// Metrics computes the organization-wide KPIs for the query's date range.
// When q.Province is set only that province's records are counted.
func (e *Engine) Metrics(ds *domain.Dataset, q domain.ReportQuery) domain.Metrics {
	r := NewDateRange(q.StartDate, q.EndDate)

	var m domain.Metrics
	recs := records(ds)
	for i := range recs {
		rec := &recs[i]
		if q.Province != "" && rec.Province != q.Province {
			continue
		}

		if rec.FinalStatus == domain.FinalStatusCollected {
			if r.Contains(rec.CollectionDate) {
				m.DocumentedCollection += rec.Amount
			} else if rec.CollectionDate == nil && r.Contains(rec.LastStatusDate) {
				m.UndocumentedCollection += rec.Amount
			}
		}

		if r.Contains(rec.CreatedDate) {
			m.DocumentedReturns += rec.Amount
		} else if rec.CreatedDate == nil && r.Contains(rec.ReceivedDate) {
			m.UndocumentedReturns += rec.Amount
		}
	}

	m.TotalCollection = m.DocumentedCollection + m.UndocumentedCollection
	m.TotalReturns = m.DocumentedReturns + m.UndocumentedReturns
	m.PerformanceDocumented = percent(m.DocumentedCollection, m.TotalReturns)
	m.PerformanceUndocumented = percent(m.UndocumentedCollection, m.TotalReturns)
	m.PerformanceTarget = percent(e.rules.Targets[domain.OrganizationTargetKey], m.TotalReturns)
	return m
}
