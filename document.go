package xbrl

import (
	"bytes"
	"fmt"
	"regexp"
	"time"
)

// filenamePattern matches Prod<d>_<d>_<companyId>_<yyyymmdd>.(html|xml|zip),
// the fixed naming convention for Companies House accounts documents.
var filenamePattern = regexp.MustCompile(`^Prod(\d+)_(\d+)_([^_]+)_(\d{8})\.(html|xml|zip)$`)

// FilenameMeta holds the core attributes derivable solely from a document's
// filename: run_code, company_id, date and file_type (spec §3, §6).
type FilenameMeta struct {
	RunCode   string
	CompanyID string
	Date      time.Time
	FileType  string
}

// ParseFilename parses an accounts document's filename against the fixed
// grammar. It is the one unrecoverable failure mode of the engine: without
// run_code/company_id/date no row at all can be produced.
func ParseFilename(filename string) (FilenameMeta, error) {
	m := filenamePattern.FindStringSubmatch(filename)
	if m == nil {
		return FilenameMeta{}, &BadFilenameError{Filename: filename}
	}
	d, err := time.Parse("20060102", m[4])
	if err != nil {
		return FilenameMeta{}, &BadFilenameError{Filename: filename}
	}
	return FilenameMeta{
		RunCode:   fmt.Sprintf("Prod%s_%s", m[1], m[2]),
		CompanyID: m[3],
		Date:      d,
		FileType:  m[5],
	}, nil
}

var bom = []byte{0xEF, 0xBB, 0xBF}

// stripPreamble discards a leading UTF-8 byte-order mark and any bytes
// preceding the first '<', so a document beginning with a BOM parses
// identically to the same document with the BOM stripped (spec §3, §8).
func stripPreamble(data []byte) []byte {
	data = bytes.TrimPrefix(data, bom)
	if i := bytes.IndexByte(data, '<'); i > 0 {
		data = data[i:]
	}
	return data
}
