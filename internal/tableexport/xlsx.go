package tableexport

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"vosul/internal/domain"
)

// SheetName is the sheet every exported workbook is written to.
const SheetName = "Sheet1"

// WriteXLSX writes table to a new workbook at path.
func WriteXLSX(path string, table domain.Table) error {
	f, err := tableWorkbook(table)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %s: %w", path, err)
	}
	return nil
}

// WriteXLSXTo streams table as a workbook to w.
func WriteXLSXTo(w io.Writer, table domain.Table) error {
	f, err := tableWorkbook(table)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func tableWorkbook(table domain.Table) (*excelize.File, error) {
	headers, err := DisplayHeaders(table.Kind)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sw, err := f.NewStreamWriter(SheetName)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("open sheet writer: %w", err)
	}

	hdr := make([]any, len(headers))
	for i, h := range headers {
		hdr[i] = h
	}
	if err := sw.SetRow("A1", hdr); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i, label := range table.Labels {
		row := make([]any, 0, len(table.Columns)+1)
		row = append(row, label)
		for _, v := range table.Values[i] {
			row = append(row, v)
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := sw.SetRow(cell, row); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	if err := sw.Flush(); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("flush sheet: %w", err)
	}
	return f, nil
}

// ReadXLSX reads a table written by WriteXLSX, mapping display headers back
// to semantic column names.
func ReadXLSX(path string) (domain.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return domain.Table{}, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()
	return readTable(f)
}

// ReadXLSXFrom reads a table workbook from r.
func ReadXLSXFrom(r io.Reader) (domain.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return domain.Table{}, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()
	return readTable(f)
}

func readTable(f *excelize.File) (domain.Table, error) {
	rows, err := f.GetRows(f.GetSheetName(0), excelize.Options{RawCellValue: true})
	if err != nil {
		return domain.Table{}, fmt.Errorf("read sheet: %w", err)
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return domain.Table{}, fmt.Errorf("%w: workbook has no header row", domain.ErrUnknownTable)
	}

	l, ok := layoutForLabel(strings.TrimSpace(rows[0][0]))
	if !ok {
		return domain.Table{}, fmt.Errorf("%w: label header %q", domain.ErrUnknownTable, rows[0][0])
	}

	// position of each semantic column within the sheet
	pos := make([]int, len(l.columns))
	for j, col := range l.columns {
		pos[j] = -1
		for i, h := range rows[0] {
			if field, ok := SemanticName(l.kind, strings.TrimSpace(h)); ok && field == col {
				pos[j] = i
				break
			}
		}
		if pos[j] < 0 {
			return domain.Table{}, fmt.Errorf("%w: %s", domain.ErrMissingColumn, l.headers[col])
		}
	}

	table := domain.Table{
		Kind:       l.kind,
		LabelField: l.labelField,
		Columns:    l.columns,
		Labels:     make([]string, 0, len(rows)-1),
		Values:     make([][]float64, 0, len(rows)-1),
	}
	for n, row := range rows[1:] {
		if len(row) == 0 {
			continue
		}
		values := make([]float64, len(l.columns))
		for j, p := range pos {
			if p >= len(row) || strings.TrimSpace(row[p]) == "" {
				continue
			}
			v, err := strconv.ParseFloat(strings.TrimSpace(row[p]), 64)
			if err != nil {
				return domain.Table{}, fmt.Errorf("row %d column %s: %w", n+2, l.headers[l.columns[j]], err)
			}
			values[j] = v
		}
		table.Labels = append(table.Labels, row[0])
		table.Values = append(table.Values, values)
	}
	return table, nil
}
