package domain

// Semantic column names of the responsible-party table, in display order.
var ResponsibleColumns = []string{
	"advance_settlement_requested",
	"advance_settlement_collected",
	"cash_collected",
	"total_collected",
	"success_rate",
	"advance_settlement_share",
	"cash_share",
	"collected_documented",
	"collected_undocumented",
	"target",
	"target_achievement",
	"returns_undocumented",
	"returns_documented",
	"total_returns",
	"return_to_collection_ratio",
	"collection_share",
}

// Semantic column names of the province table, in display order.
var ProvinceColumns = []string{
	"returns_created",
	"collected",
	"collected_to_created_ratio",
	"returns_due",
	"collected_due",
	"remaining_due",
	"collected_due_rate",
	"remaining_due_rate",
}

// Table is a presentation-neutral view of a breakdown table: one label per
// row plus one numeric value per column.
type Table struct {
	Kind       TableKind
	LabelField string
	Columns    []string
	Labels     []string
	Values     [][]float64
}

// NewResponsibleTable flattens responsible-party rows into a Table.
func NewResponsibleTable(rows []ResponsiblePartyRow) Table {
	t := Table{
		Kind:       TableResponsible,
		LabelField: "responsible",
		Columns:    ResponsibleColumns,
		Labels:     make([]string, 0, len(rows)),
		Values:     make([][]float64, 0, len(rows)),
	}
	for i := range rows {
		r := &rows[i]
		t.Labels = append(t.Labels, r.Responsible)
		t.Values = append(t.Values, []float64{
			r.AdvanceSettlementRequested,
			r.AdvanceSettlementCollected,
			r.CashCollected,
			r.TotalCollected,
			r.SuccessRate,
			r.AdvanceSettlementShare,
			r.CashShare,
			r.CollectedDocumented,
			r.CollectedUndocumented,
			r.Target,
			r.TargetAchievement,
			r.ReturnsUndocumented,
			r.ReturnsDocumented,
			r.TotalReturns,
			r.ReturnToCollectionRatio,
			r.CollectionShare,
		})
	}
	return t
}

// NewProvinceTable flattens province rows into a Table.
func NewProvinceTable(rows []ProvinceRow) Table {
	t := Table{
		Kind:       TableProvince,
		LabelField: "province",
		Columns:    ProvinceColumns,
		Labels:     make([]string, 0, len(rows)),
		Values:     make([][]float64, 0, len(rows)),
	}
	for i := range rows {
		r := &rows[i]
		t.Labels = append(t.Labels, r.Province)
		t.Values = append(t.Values, []float64{
			r.ReturnsCreated,
			r.Collected,
			r.CollectedToCreatedRatio,
			r.ReturnsDue,
			r.CollectedDue,
			r.RemainingDue,
			r.CollectedDueRate,
			r.RemainingDueRate,
		})
	}
	return t
}

// Records returns the table as one map per row keyed by semantic field name.
func (t Table) Records() []map[string]any {
	out := make([]map[string]any, 0, len(t.Labels))
	for i, label := range t.Labels {
		rec := make(map[string]any, len(t.Columns)+1)
		rec[t.LabelField] = label
		for j, col := range t.Columns {
			if j < len(t.Values[i]) {
				rec[col] = t.Values[i][j]
			}
		}
		out = append(out, rec)
	}
	return out
}

// Column returns the values of the named column, or nil if the table has no
// such column.
func (t Table) Column(name string) []float64 {
	idx := -1
	for j, col := range t.Columns {
		if col == name {
			idx = j
			break
		}
	}
	if idx < 0 {
		return nil
	}
	out := make([]float64, len(t.Values))
	for i, row := range t.Values {
		if idx < len(row) {
			out[i] = row[idx]
		}
	}
	return out
}
