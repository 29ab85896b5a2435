package tableexport

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"vosul/internal/domain"
)

// datasetColumn renders one column of the prepared dataset dump.
type datasetColumn struct {
	header string
	value  func(r *domain.Record) any
}

func dateCell(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format("2006-01-02")
}

func dateColumn(col domain.DateColumn) datasetColumn {
	return datasetColumn{domain.DateColumnHeaders[col], func(r *domain.Record) any { return dateCell(r.Date(col)) }}
}

var datasetColumns = []datasetColumn{
	{"کد", func(r *domain.Record) any { return r.Code }},
	{"شماره چک", func(r *domain.Record) any { return r.CheckNumber }},
	dateColumn(domain.DateColumnDue),
	{"مبلغ", func(r *domain.Record) any { return r.Amount }},
	{"موقعیت جغرافیایی چک", func(r *domain.Record) any { return r.CheckLocation }},
	{"وضعیت 1", func(r *domain.Record) any { return r.Status }},
	{"اجرائیات", func(r *domain.Record) any { return r.Enforcement }},
	dateColumn(domain.DateColumnLastStatus),
	dateColumn(domain.DateColumnCollection),
	dateColumn(domain.DateColumnReceived),
	{"بانک", func(r *domain.Record) any { return r.Bank }},
	{"استان", func(r *domain.Record) any { return r.Province }},
	dateColumn(domain.DateColumnCreated),
	dateColumn(domain.DateColumnLastFax),
	{"پاسخ نماچک", func(r *domain.Record) any { return r.FaxResponse }},
	{"وضعیت نهایی", func(r *domain.Record) any { return r.FinalStatus }},
	{"وصول کننده", func(r *domain.Record) any { return r.Collector }},
	{"مسئول وصول", func(r *domain.Record) any { return r.CollectionOwner }},
	{"نوع وصول", func(r *domain.Record) any { return r.CollectionType }},
	{"نوع درخواست", func(r *domain.Record) any { return r.RequestType }},
	dateColumn(domain.DateColumnFollowUp),
	{ResponsibleLabelHeader, func(r *domain.Record) any { return r.FollowUpResponsible }},
	{"تاریخ پیگیری تا وصول", func(r *domain.Record) any {
		if r.FollowUpToCollectionDays == nil {
			return nil
		}
		return *r.FollowUpToCollectionDays
	}},
}

// WriteDatasetXLSX dumps every prepared record to a workbook at path. Dates
// are written in ISO form; absent values are left blank.
func WriteDatasetXLSX(path string, ds *domain.Dataset) error {
	f, err := datasetWorkbook(ds)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %s: %w", path, err)
	}
	return nil
}

// WriteDatasetXLSXTo streams the dataset workbook to w.
func WriteDatasetXLSXTo(w io.Writer, ds *domain.Dataset) error {
	f, err := datasetWorkbook(ds)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func datasetWorkbook(ds *domain.Dataset) (*excelize.File, error) {
	f := excelize.NewFile()
	sw, err := f.NewStreamWriter(SheetName)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("open sheet writer: %w", err)
	}

	hdr := make([]any, len(datasetColumns))
	for i, c := range datasetColumns {
		hdr[i] = c.header
	}
	if err := sw.SetRow("A1", hdr); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("write header: %w", err)
	}

	if ds != nil {
		for i := range ds.Records {
			rec := &ds.Records[i]
			row := make([]any, len(datasetColumns))
			for j, c := range datasetColumns {
				row[j] = c.value(rec)
			}
			cell, _ := excelize.CoordinatesToCellName(1, i+2)
			if err := sw.SetRow(cell, row); err != nil {
				_ = f.Close()
				return nil, fmt.Errorf("write record %d: %w", rec.Code, err)
			}
		}
	}
	if err := sw.Flush(); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("flush sheet: %w", err)
	}
	return f, nil
}
