package report

import "vosul/internal/domain"

// ResponsibleTable builds one row per follow-up responsible party, in order
// of first appearance, followed by the total row.
//
// Collection columns use the party's own records. Return columns use every
// record from the provinces the party is accountable for, whoever follows
// those records up.
func (e *Engine) ResponsibleTable(ds *domain.Dataset, q domain.ReportQuery) []domain.ResponsiblePartyRow {
	r := NewDateRange(q.StartDate, q.EndDate)
	recs := records(ds)

	var parties []string
	byParty := make(map[string][]int)
	for i := range recs {
		party := recs[i].FollowUpResponsible
		if party == "" {
			continue
		}
		if _, seen := byParty[party]; !seen {
			parties = append(parties, party)
		}
		byParty[party] = append(byParty[party], i)
	}

	rows := make([]domain.ResponsiblePartyRow, 0, len(parties)+1)
	for _, party := range parties {
		row := domain.ResponsiblePartyRow{Responsible: party}
		for _, i := range byParty[party] {
			rec := &recs[i]
			if rec.RequestType == domain.RequestTypeAdvanceSettlement && r.Contains(rec.FollowUpDate) {
				row.AdvanceSettlementRequested += rec.Amount
			}
			if r.collectedIn(rec.CollectionDate, rec.LastStatusDate) {
				switch rec.CollectionType {
				case domain.CollectionTypeAdvanceSettlement:
					row.AdvanceSettlementCollected += rec.Amount
				case domain.CollectionTypeCashDeposit:
					row.CashCollected += rec.Amount
				}
			}
			if rec.FinalStatus == domain.FinalStatusCollected {
				if r.Contains(rec.CollectionDate) {
					row.CollectedDocumented += rec.Amount
				} else if rec.CollectionDate == nil && r.Contains(rec.LastStatusDate) {
					row.CollectedUndocumented += rec.Amount
				}
			}
		}
		// The central fund never issues advance-settlement requests.
		if party == domain.CentralFund {
			row.AdvanceSettlementRequested = 0
		}
		row.Target = e.rules.Targets[party]

		provinces := e.rules.ProvincesOf(party)
		if len(provinces) > 0 {
			for i := range recs {
				rec := &recs[i]
				if !provinces[rec.Province] {
					continue
				}
				if rec.CreatedDate == nil && r.Contains(rec.ReceivedDate) {
					row.ReturnsUndocumented += rec.Amount
				}
				if r.Contains(rec.CreatedDate) {
					row.ReturnsDocumented += rec.Amount
				}
			}
		}

		row.TotalCollected = row.AdvanceSettlementCollected + row.CashCollected
		row.TotalReturns = row.ReturnsUndocumented + row.ReturnsDocumented
		deriveResponsibleRatios(&row)
		rows = append(rows, row)
	}

	total := domain.ResponsiblePartyRow{Responsible: domain.TotalRowLabel, IsTotal: true}
	for i := range rows {
		row := &rows[i]
		total.AdvanceSettlementRequested += row.AdvanceSettlementRequested
		total.AdvanceSettlementCollected += row.AdvanceSettlementCollected
		total.CashCollected += row.CashCollected
		total.TotalCollected += row.TotalCollected
		total.CollectedDocumented += row.CollectedDocumented
		total.CollectedUndocumented += row.CollectedUndocumented
		total.Target += row.Target
		total.ReturnsUndocumented += row.ReturnsUndocumented
		total.ReturnsDocumented += row.ReturnsDocumented
		total.TotalReturns += row.TotalReturns
	}
	deriveResponsibleRatios(&total)
	rows = append(rows, total)

	for i := range rows {
		rows[i].CollectionShare = percent(rows[i].TotalCollected, total.TotalCollected)
	}
	return rows
}

// deriveResponsibleRatios recomputes the percentage columns from the row's
// own numerators and denominators.
func deriveResponsibleRatios(row *domain.ResponsiblePartyRow) {
	row.SuccessRate = percent(row.AdvanceSettlementCollected, row.AdvanceSettlementRequested)
	row.AdvanceSettlementShare = percent(row.AdvanceSettlementCollected, row.TotalCollected)
	row.CashShare = percent(row.CashCollected, row.TotalCollected)
	row.TargetAchievement = percent(row.TotalCollected, row.Target)
	row.ReturnToCollectionRatio = percent(row.TotalCollected, row.TotalReturns)
}
