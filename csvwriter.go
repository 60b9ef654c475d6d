package xbrl

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CSVHeader is the fixed column order written by NewCSVWriter: the five
// core columns, every general column, period_start/period_end, every
// periodic column, then error and zip_url (spec §6).
func CSVHeader() []string {
	header := []string{"run_code", "company_id", "date", "file_type", "taxonomy"}
	header = append(header, GeneralColumnNames()...)
	header = append(header, "period_start", "period_end")
	header = append(header, PeriodicColumnNames()...)
	header = append(header, "error", "zip_url")
	return header
}

// CSVWriter serialises Rows to CSV, quoting every non-numeric field so a
// downstream loader never has to guess a column's type from its formatting
// (spec §6's "quote non-numerics" convention). Unlike encoding/csv.Writer,
// which only quotes a field when its content happens to need it (a comma, a
// quote, a newline), quoting here is driven by the Go type the cell came
// from: decimal.Decimal, time.Time and bool are written bare, everything
// else — including null cells, since null isn't a decimal/date/bool either
// — is wrapped in quotes regardless of content.
type CSVWriter struct {
	w   io.Writer
	err error
}

// NewCSVWriter wraps w, writing the fixed header immediately.
func NewCSVWriter(w io.Writer) (*CSVWriter, error) {
	cw := &CSVWriter{w: w}
	if err := cw.writeRecord(quoteAll(CSVHeader())); err != nil {
		return nil, err
	}
	return cw, nil
}

// Write appends one Row as a CSV record.
func (cw *CSVWriter) Write(row Row) error {
	record := make([]string, 0, len(CSVHeader()))
	record = append(record, quoteCSVField(row.RunCode), quoteCSVField(row.CompanyID), formatDate(row.Date), quoteCSVField(row.FileType), quoteCSVField(row.Taxonomy))
	for _, name := range GeneralColumnNames() {
		record = append(record, formatCell(row.General[name]))
	}
	record = append(record, formatDatePtr(row.PeriodStart), formatDatePtr(row.PeriodEnd))
	for _, name := range PeriodicColumnNames() {
		record = append(record, formatCell(row.Periodic[name]))
	}
	record = append(record, quoteCSVField(row.Error), quoteCSVField(row.ZipURL))
	return cw.writeRecord(record)
}

// Flush reports the first write error encountered, mirroring
// encoding/csv.Writer's sticky-error convention.
func (cw *CSVWriter) Flush() error {
	return cw.err
}

func (cw *CSVWriter) writeRecord(fields []string) error {
	if cw.err != nil {
		return cw.err
	}
	_, err := io.WriteString(cw.w, strings.Join(fields, ",")+"\n")
	if err != nil {
		cw.err = err
	}
	return err
}

func quoteAll(fields []string) []string {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = quoteCSVField(f)
	}
	return quoted
}

// quoteCSVField wraps s in double quotes, doubling any embedded quote per
// RFC4180, regardless of whether s actually contains a delimiter.
func quoteCSVField(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

func formatDatePtr(t *time.Time) string {
	if t == nil {
		return quoteCSVField("")
	}
	return formatDate(*t)
}

// formatCell renders a General/Periodic cell, quoting it unless its Go type
// is one of the three bare-written kinds.
func formatCell(v any) string {
	s, bare := formatValue(v)
	if bare {
		return s
	}
	return quoteCSVField(s)
}

// formatValue renders v and reports whether it belongs to one of the
// decimal/date/bool kinds the "quote non-numerics" convention writes bare.
func formatValue(v any) (string, bool) {
	switch val := v.(type) {
	case nil:
		return "", false
	case bool:
		return strconv.FormatBool(val), true
	case time.Time:
		return formatDate(val), true
	case decimal.Decimal:
		return val.String(), true
	case string:
		return val, false
	case fmt.Stringer:
		return val.String(), false
	default:
		return "", false
	}
}
