// Package xlsx reads the check ledger from an Excel workbook, either from the
// local filesystem or from object storage.
package xlsx

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"vosul/internal/domain"
	"vosul/internal/port"
)

// Source is a port.RecordSource backed by one sheet of an Excel workbook.
type Source struct {
	sheet   string
	path    string
	storage port.ObjectStorage
	bucket  string
	key     string
}

// NewFileSource reads sheet from the workbook at path.
func NewFileSource(path, sheet string) *Source {
	return &Source{path: path, sheet: sheet}
}

// NewS3Source downloads the workbook from bucket/key on every fetch.
func NewS3Source(storage port.ObjectStorage, bucket, key, sheet string) *Source {
	return &Source{storage: storage, bucket: bucket, key: key, sheet: sheet}
}

// Fetch opens the workbook and returns every data row of the sheet.
func (s *Source) Fetch(ctx context.Context) ([]domain.RawRecord, error) {
	f, err := s.open(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	return ReadRecords(f, s.sheet)
}

func (s *Source) open(ctx context.Context) (*excelize.File, error) {
	if s.storage == nil {
		f, err := excelize.OpenFile(s.path)
		if err != nil {
			return nil, fmt.Errorf("open workbook %s: %w", s.path, err)
		}
		return f, nil
	}

	data, err := s.storage.Download(ctx, s.bucket, s.key)
	if err != nil {
		return nil, fmt.Errorf("download workbook s3://%s/%s: %w", s.bucket, s.key, err)
	}
	return OpenReader(bytes.NewReader(data))
}

// OpenReader opens a workbook from an in-memory stream.
func OpenReader(r io.Reader) (*excelize.File, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	return f, nil
}

// ReadRecords reads the ledger rows of sheet from an opened workbook. An
// empty sheet name selects the first sheet. Fully blank rows are skipped.
func ReadRecords(f *excelize.File, sheet string) ([]domain.RawRecord, error) {
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: sheet %q is empty", domain.ErrMissingColumn, sheet)
	}

	index, err := headerIndex(rows[0])
	if err != nil {
		return nil, err
	}

	records := make([]domain.RawRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if blank(row) {
			continue
		}
		var rec domain.RawRecord
		for i, c := range columns {
			*c.field(&rec) = cellVal(row, index[i])
		}
		records = append(records, rec)
	}
	return records, nil
}

// headerIndex returns, for every entry of columns, its position in the
// header row.
func headerIndex(header []string) ([]int, error) {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(h)
		if _, dup := pos[h]; !dup {
			pos[h] = i
		}
	}

	index := make([]int, len(columns))
	var missing []string
	for i, c := range columns {
		p, ok := pos[c.header]
		if !ok {
			missing = append(missing, c.header)
			continue
		}
		index[i] = p
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrMissingColumn, strings.Join(missing, ", "))
	}
	return index, nil
}

func cellVal(row []string, idx int) string {
	if idx < len(row) {
		return strings.TrimSpace(row[idx])
	}
	return ""
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
