package tableexport

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"vosul/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVWriter wraps csv.Writer for exporting report tables as CSV.
type CSVWriter struct {
	csv *csv.Writer
}

// NewCSVWriter creates a CSVWriter that writes CSV to w.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{csv: csv.NewWriter(w)}
}

// WriteTable writes the display header row followed by one row per table
// row. Values are rendered with two decimals.
func (w *CSVWriter) WriteTable(table domain.Table) error {
	headers, err := DisplayHeaders(table.Kind)
	if err != nil {
		return err
	}
	if err := w.csv.Write(headers); err != nil {
		return err
	}
	for i, label := range table.Labels {
		row := make([]string, 0, len(table.Columns)+1)
		row = append(row, label)
		for _, v := range table.Values[i] {
			row = append(row, formatAmount(v))
		}
		if err := w.csv.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *CSVWriter) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *CSVWriter) Error() error {
	return w.csv.Error()
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a name for use in a file path or
// Content-Disposition. Replaces non-alphanumeric chars (except - _) with _,
// collapses consecutive underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns a sanitized download filename.
// Format: {table}_{start}_{end}.{ext}, with Jalali dates made path safe.
func BuildFilename(kind domain.TableKind, startDate, endDate, ext string) string {
	name := SanitizeFilename(fmt.Sprintf("%s_%s_%s", kind, startDate, endDate))
	if name == "" {
		name = SanitizeFilename(string(kind)) + "_" + time.Now().Format("2006-01-02")
	}
	return name + "." + ext
}
