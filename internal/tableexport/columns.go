// Package tableexport renders report tables and the prepared dataset as
// spreadsheet and CSV files with their Persian display headers.
package tableexport

import (
	"fmt"

	"vosul/internal/domain"
)

// Display headers of the label column of each table kind.
const (
	ResponsibleLabelHeader = "مسئول پیگیری"
	ProvinceLabelHeader    = "استان"
)

var responsibleHeaders = map[string]string{
	"advance_settlement_requested": "درخواست سرحسابی",
	"advance_settlement_collected": "وصول سرحسابی",
	"cash_collected":               "وصول واریز نقدی",
	"total_collected":              "وصول کل",
	"success_rate":                 "درصد موفقیت وصول سرحسابی",
	"advance_settlement_share":     "درصد وصول سرحسابی",
	"cash_share":                   "درصد وصول واریز نقدی",
	"collected_documented":         "وصول سند شده",
	"collected_undocumented":       "وصول سند نشده",
	"target":                       "پلن",
	"target_achievement":           "درصد تحقق پلن",
	"returns_undocumented":         "برگشتی سند نشده",
	"returns_documented":           "برگشتی سند شده",
	"total_returns":                "برگشتی کل",
	"return_to_collection_ratio":   "نسبت وصول به برگشتی",
	"collection_share":             "توزیع وصول",
}

var provinceHeaders = map[string]string{
	"returns_created":            "ایجاد برگشتی",
	"collected":                  "وصول",
	"collected_to_created_ratio": "نسبت وصول به ایجاد برگشتی",
	"returns_due":                "برگشتی بر اساس سررسید",
	"collected_due":              "وصول بر اساس سررسید",
	"remaining_due":              "مانده برگشتی بر اساس سررسید",
	"collected_due_rate":         "درصد وصول بر اساس سررسید",
	"remaining_due_rate":         "درصد مانده برگشتی بر اساس سررسید",
}

// layout describes the display form of one table kind.
type layout struct {
	kind        domain.TableKind
	labelField  string
	labelHeader string
	columns     []string
	headers     map[string]string
}

var layouts = []layout{
	{domain.TableResponsible, "responsible", ResponsibleLabelHeader, domain.ResponsibleColumns, responsibleHeaders},
	{domain.TableProvince, "province", ProvinceLabelHeader, domain.ProvinceColumns, provinceHeaders},
}

func layoutFor(kind domain.TableKind) (layout, error) {
	for _, l := range layouts {
		if l.kind == kind {
			return l, nil
		}
	}
	return layout{}, fmt.Errorf("%w: %q", domain.ErrUnknownTable, kind)
}

// layoutForLabel finds the layout whose label column carries header.
func layoutForLabel(header string) (layout, bool) {
	for _, l := range layouts {
		if l.labelHeader == header {
			return l, true
		}
	}
	return layout{}, false
}

// DisplayHeaders returns the header row of a table: the label column
// followed by every value column.
func DisplayHeaders(kind domain.TableKind) ([]string, error) {
	l, err := layoutFor(kind)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(l.columns)+1)
	out = append(out, l.labelHeader)
	for _, c := range l.columns {
		out = append(out, l.headers[c])
	}
	return out, nil
}

// SemanticName maps a display header of the given table kind back to its
// semantic field name.
func SemanticName(kind domain.TableKind, header string) (string, bool) {
	l, err := layoutFor(kind)
	if err != nil {
		return "", false
	}
	if header == l.labelHeader {
		return l.labelField, true
	}
	for field, h := range l.headers {
		if h == header {
			return field, true
		}
	}
	return "", false
}
