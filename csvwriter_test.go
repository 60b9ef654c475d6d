package xbrl

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVHeader_FixedOrder(t *testing.T) {
	header := CSVHeader()
	require.True(t, len(header) > 5)
	assert.Equal(t, []string{"run_code", "company_id", "date", "file_type", "taxonomy"}, header[:5])
	assert.Equal(t, "error", header[len(header)-2])
	assert.Equal(t, "zip_url", header[len(header)-1])
}

func TestCSVWriter_WritesHeaderAndRow(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewCSVWriter(&buf)
	require.NoError(t, err)

	date := time.Date(2020, 12, 31, 0, 0, 0, 0, time.UTC)
	row := Row{
		RunCode:   "Prod224_3082",
		CompanyID: "09355500",
		Date:      date,
		FileType:  "html",
		Taxonomy:  "some-taxonomy",
		General:   map[string]any{"company_dormant": false},
		Periodic:  map[string]any{"debtors": decimal.NewFromInt(1000)},
		ZipURL:    "http://example.com/a.zip",
	}
	require.NoError(t, w.Write(row))
	require.NoError(t, w.Flush())

	reader := csv.NewReader(bytes.NewReader(buf.Bytes()))
	records, err := reader.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	header := records[0]
	data := records[1]
	indexOf := func(name string) int {
		for i, h := range header {
			if h == name {
				return i
			}
		}
		return -1
	}
	assert.Equal(t, "2020-12-31", data[indexOf("date")])
	assert.Equal(t, "false", data[indexOf("company_dormant")])
	assert.Equal(t, "1000", data[indexOf("debtors")])
	assert.Equal(t, "http://example.com/a.zip", data[indexOf("zip_url")])
}

func TestFormatValue_NilAndTypes(t *testing.T) {
	s, bare := formatValue(nil)
	assert.Equal(t, "", s)
	assert.False(t, bare)

	s, bare = formatValue("abc")
	assert.Equal(t, "abc", s)
	assert.False(t, bare)

	s, bare = formatValue(true)
	assert.Equal(t, "true", s)
	assert.True(t, bare)

	s, bare = formatValue(decimal.NewFromInt(42))
	assert.Equal(t, "42", s)
	assert.True(t, bare)
}

func TestCSVWriter_QuotesNonNumericFieldsOnly(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewCSVWriter(&buf)
	require.NoError(t, err)

	date := time.Date(2020, 12, 31, 0, 0, 0, 0, time.UTC)
	row := Row{
		RunCode:   "Prod224_3082",
		CompanyID: "09355500",
		Date:      date,
		FileType:  "html",
		Taxonomy:  "some-taxonomy",
		General:   map[string]any{"company_dormant": false},
		Periodic:  map[string]any{"debtors": decimal.NewFromInt(1000)},
		ZipURL:    "http://example.com/a.zip",
	}
	require.NoError(t, w.Write(row))
	require.NoError(t, w.Flush())

	out := buf.String()
	assert.Contains(t, out, `"09355500"`)
	assert.Contains(t, out, `"html"`)
	assert.Contains(t, out, `"Prod224_3082"`)
	// Decimal, date and bool cells are written bare, with no surrounding quotes.
	assert.Contains(t, out, ",2020-12-31,")
	assert.Contains(t, out, ",false,")
	assert.Contains(t, out, ",1000,")
}
