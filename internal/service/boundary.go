package service

import (
	"time"

	"vosul/internal/domain"
)

const isoDate = "2006-01-02"

// RecordValues converts a record into plain JSON-safe values keyed by field
// name. Absent dates and day counts become nil.
func RecordValues(rec *domain.Record) map[string]any {
	out := map[string]any{
		"code":                         rec.Code,
		"check_number":                 rec.CheckNumber,
		"amount":                       rec.Amount,
		"check_location":               rec.CheckLocation,
		"status":                       rec.Status,
		"enforcement":                  rec.Enforcement,
		"bank":                         rec.Bank,
		"province":                     rec.Province,
		"fax_response":                 rec.FaxResponse,
		"final_status":                 rec.FinalStatus,
		"collector":                    rec.Collector,
		"collection_owner":             rec.CollectionOwner,
		"collection_type":              rec.CollectionType,
		"request_type":                 rec.RequestType,
		"follow_up_responsible":        rec.FollowUpResponsible,
		"follow_up_to_collection_days": nil,
	}
	for col := range domain.DateColumnHeaders {
		out[string(col)] = dateValue(rec.Date(col))
	}
	if rec.FollowUpToCollectionDays != nil {
		out["follow_up_to_collection_days"] = *rec.FollowUpToCollectionDays
	}
	return out
}

func dateValue(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format(isoDate)
}
