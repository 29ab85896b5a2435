package xlsx

import "vosul/internal/domain"

// column binds a header of the ledger sheet to a RawRecord field.
type column struct {
	header string
	field  func(r *domain.RawRecord) *string
}

// columns lists every header read from the ledger sheet. All of them must be
// present in the header row.
var columns = []column{
	{"کد", func(r *domain.RawRecord) *string { return &r.Code }},
	{"شماره چک", func(r *domain.RawRecord) *string { return &r.CheckNumber }},
	{domain.DateColumnHeaders[domain.DateColumnDue], func(r *domain.RawRecord) *string { return &r.DueDate }},
	{"مبلغ", func(r *domain.RawRecord) *string { return &r.Amount }},
	{"موقعیت جغرافیایی چک", func(r *domain.RawRecord) *string { return &r.CheckLocation }},
	{"وضعیت 1", func(r *domain.RawRecord) *string { return &r.Status }},
	{"اجرائیات", func(r *domain.RawRecord) *string { return &r.Enforcement }},
	{domain.DateColumnHeaders[domain.DateColumnLastStatus], func(r *domain.RawRecord) *string { return &r.LastStatusDate }},
	{domain.DateColumnHeaders[domain.DateColumnCollection], func(r *domain.RawRecord) *string { return &r.CollectionDate }},
	{domain.DateColumnHeaders[domain.DateColumnReceived], func(r *domain.RawRecord) *string { return &r.ReceivedDate }},
	{"بانک", func(r *domain.RawRecord) *string { return &r.Bank }},
	{"استان", func(r *domain.RawRecord) *string { return &r.Province }},
	{domain.DateColumnHeaders[domain.DateColumnCreated], func(r *domain.RawRecord) *string { return &r.CreatedDate }},
	{domain.DateColumnHeaders[domain.DateColumnLastFax], func(r *domain.RawRecord) *string { return &r.LastFaxDate }},
	{"پاسخ نماچک", func(r *domain.RawRecord) *string { return &r.FaxResponse }},
	{"وضعیت نهایی", func(r *domain.RawRecord) *string { return &r.FinalStatus }},
	{"وصول کننده", func(r *domain.RawRecord) *string { return &r.Collector }},
	{"مسئول وصول", func(r *domain.RawRecord) *string { return &r.CollectionOwner }},
	{"نوع وصول", func(r *domain.RawRecord) *string { return &r.CollectionType }},
	{"نوع درخواست", func(r *domain.RawRecord) *string { return &r.RequestType }},
	{domain.DateColumnHeaders[domain.DateColumnFollowUp], func(r *domain.RawRecord) *string { return &r.FollowUpDate }},
}

// Headers returns the ledger sheet headers in their canonical order.
func Headers() []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = c.header
	}
	return out
}
