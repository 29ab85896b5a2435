package domain

// Values that appear in the source sheet's status and type columns.
const (
	FinalStatusCollected    = "وصول"
	FinalStatusNotCollected = "وصول نشده"

	CollectionTypeAdvanceSettlement = "سرحساب"
	CollectionTypeCashDeposit       = "واریز نقدی"

	RequestTypeAdvanceSettlement = "سرحساب"
)

// CentralFund is the responsible party assigned to every record without an
// in-window follow-up.
const CentralFund = "صندوق"

// TotalRowLabel labels the synthetic summary row of every breakdown table.
const TotalRowLabel = "جمع کل"

// OrganizationTargetKey is the Target Map entry holding the organization-wide
// collection target.
const OrganizationTargetKey = "وصول مطالبات"

// FollowUpWindowDays bounds the distance between a follow-up and the
// collection (or last status) date for the collection owner to keep the record.
const FollowUpWindowDays = 30

// DefaultMinCode is the exclusive lower bound on record codes kept by the
// dataset preparer.
const DefaultMinCode = 60000

// DateColumn identifies one of the date fields of a Record.
type DateColumn string

const (
	DateColumnDue        DateColumn = "due_date"
	DateColumnLastStatus DateColumn = "last_status_date"
	DateColumnCollection DateColumn = "collection_date"
	DateColumnReceived   DateColumn = "received_date"
	DateColumnCreated    DateColumn = "created_date"
	DateColumnLastFax    DateColumn = "last_fax_date"
	DateColumnFollowUp   DateColumn = "follow_up_date"
)

// DateColumnHeaders maps each DateColumn to its header in the source sheet.
var DateColumnHeaders = map[DateColumn]string{
	DateColumnDue:        "تاریخ سررسید",
	DateColumnLastStatus: "تاریخ آخرین وضعیت",
	DateColumnCollection: "تاریخ وصول",
	DateColumnReceived:   "تاریخ دریافت",
	DateColumnCreated:    "تاریخ ایجاد",
	DateColumnLastFax:    "تاریخ آخرین نماچک",
	DateColumnFollowUp:   "تاریخ پیگیری",
}

// ParseDateColumn accepts either the semantic name or the sheet header of a
// date column.
func ParseDateColumn(s string) (DateColumn, bool) {
	if _, ok := DateColumnHeaders[DateColumn(s)]; ok {
		return DateColumn(s), true
	}
	for col, header := range DateColumnHeaders {
		if header == s {
			return col, true
		}
	}
	return "", false
}

// TableKind names a breakdown table.
type TableKind string

const (
	TableResponsible TableKind = "responsible"
	TableProvince    TableKind = "province"
)
