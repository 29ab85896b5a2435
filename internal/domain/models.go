package domain

import "time"

// RawRecord is one unvalidated row of the source sheet. Every cell is kept as
// the text the workbook stores.
type RawRecord struct {
	Code            string
	CheckNumber     string
	DueDate         string
	Amount          string
	CheckLocation   string
	Status          string
	Enforcement     string
	LastStatusDate  string
	CollectionDate  string
	ReceivedDate    string
	Bank            string
	Province        string
	CreatedDate     string
	LastFaxDate     string
	FaxResponse     string
	FinalStatus     string
	Collector       string
	CollectionOwner string
	CollectionType  string
	RequestType     string
	FollowUpDate    string
}

// Record is one check tracked through its collection lifecycle. Optional
// dates are nil when absent; optional strings are empty.
type Record struct {
	Code            int64
	CheckNumber     string
	DueDate         *time.Time
	Amount          float64
	CheckLocation   string
	Status          string
	Enforcement     string
	LastStatusDate  *time.Time
	CollectionDate  *time.Time
	ReceivedDate    *time.Time
	Bank            string
	Province        string
	CreatedDate     *time.Time
	LastFaxDate     *time.Time
	FaxResponse     string
	FinalStatus     string
	Collector       string
	CollectionOwner string
	CollectionType  string
	RequestType     string
	FollowUpDate    *time.Time

	FollowUpResponsible      string
	FollowUpToCollectionDays *int
}

// Date returns the value of the given date column.
func (r *Record) Date(col DateColumn) *time.Time {
	switch col {
	case DateColumnDue:
		return r.DueDate
	case DateColumnLastStatus:
		return r.LastStatusDate
	case DateColumnCollection:
		return r.CollectionDate
	case DateColumnReceived:
		return r.ReceivedDate
	case DateColumnCreated:
		return r.CreatedDate
	case DateColumnLastFax:
		return r.LastFaxDate
	case DateColumnFollowUp:
		return r.FollowUpDate
	}
	return nil
}

// Dataset is the prepared, read-only table every aggregation runs over.
type Dataset struct {
	Records  []Record
	LoadedAt time.Time
}

// Len returns the number of retained records.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Records)
}

// BusinessRules is the static configuration consumed by the aggregators.
type BusinessRules struct {
	// Targets maps a responsible party to its monthly collection target.
	Targets map[string]float64
	// ProvinceResponsible maps a province to the party accountable for its returns.
	ProvinceResponsible map[string]string
}

// ProvincesOf returns every province mapped to the given party.
func (b BusinessRules) ProvincesOf(party string) map[string]bool {
	out := make(map[string]bool)
	for province, r := range b.ProvinceResponsible {
		if r == party {
			out[province] = true
		}
	}
	return out
}

// ReportQuery carries the parameters shared by every report operation.
type ReportQuery struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`

	// Province optionally restricts the metrics to one province.
	Province string `json:"province,omitempty"`

	// OutPath optionally overrides the export file name of a table.
	OutPath string `json:"out_path,omitempty"`
}

// Metrics holds the organization-wide KPIs for a date range.
type Metrics struct {
	TotalCollection         float64 `json:"total_collection"`
	DocumentedCollection    float64 `json:"documented_collection"`
	UndocumentedCollection  float64 `json:"undocumented_collection"`
	TotalReturns            float64 `json:"total_returns"`
	DocumentedReturns       float64 `json:"documented_returns"`
	UndocumentedReturns     float64 `json:"undocumented_returns"`
	PerformanceUndocumented float64 `json:"performance_undocumented"`
	PerformanceDocumented   float64 `json:"performance_documented"`
	PerformanceTarget       float64 `json:"performance_target"`
}

// ResponsiblePartyRow is one row of the per-responsible-party breakdown.
type ResponsiblePartyRow struct {
	Responsible string `json:"responsible"`
	IsTotal     bool   `json:"is_total"`

	AdvanceSettlementRequested float64 `json:"advance_settlement_requested"`
	AdvanceSettlementCollected float64 `json:"advance_settlement_collected"`
	CashCollected              float64 `json:"cash_collected"`
	TotalCollected             float64 `json:"total_collected"`
	SuccessRate                float64 `json:"success_rate"`
	AdvanceSettlementShare     float64 `json:"advance_settlement_share"`
	CashShare                  float64 `json:"cash_share"`
	CollectedDocumented        float64 `json:"collected_documented"`
	CollectedUndocumented      float64 `json:"collected_undocumented"`
	Target                     float64 `json:"target"`
	TargetAchievement          float64 `json:"target_achievement"`
	ReturnsUndocumented        float64 `json:"returns_undocumented"`
	ReturnsDocumented          float64 `json:"returns_documented"`
	TotalReturns               float64 `json:"total_returns"`
	ReturnToCollectionRatio    float64 `json:"return_to_collection_ratio"`
	CollectionShare            float64 `json:"collection_share"`
}

// ProvinceRow is one row of the per-province breakdown.
type ProvinceRow struct {
	Province string `json:"province"`
	IsTotal  bool   `json:"is_total"`

	ReturnsCreated          float64 `json:"returns_created"`
	Collected               float64 `json:"collected"`
	CollectedToCreatedRatio float64 `json:"collected_to_created_ratio"`
	ReturnsDue              float64 `json:"returns_due"`
	CollectedDue            float64 `json:"collected_due"`
	RemainingDue            float64 `json:"remaining_due"`
	CollectedDueRate        float64 `json:"collected_due_rate"`
	RemainingDueRate        float64 `json:"remaining_due_rate"`
}

// Dashboard is the combined payload of the three aggregators.
type Dashboard struct {
	Metrics               Metrics               `json:"metrics"`
	ResponsiblePartyTable []ResponsiblePartyRow `json:"responsible_party_table"`
	ProvinceTable         []ProvinceRow         `json:"province_table"`
}

// StatusCount is the number of records sharing a final status.
type StatusCount struct {
	FinalStatus string `json:"final_status"`
	Count       int    `json:"count"`
}
