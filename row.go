package xbrl

import (
	"sort"
	"time"
)

// Row is one output record: the five core attributes (four derived from the
// filename, taxonomy from the document's declared namespaces), the
// resolved general attributes, one period's start/end dates, and that
// period's resolved balance-sheet/income-statement attributes (spec §3,
// §6). A document with no resolvable periods yields exactly one Row with
// PeriodStart, PeriodEnd and every periodic value nil (spec §4.5).
type Row struct {
	RunCode     string
	CompanyID   string
	Date        time.Time
	FileType    string
	Taxonomy    string
	General     map[string]any
	PeriodStart *time.Time
	PeriodEnd   *time.Time
	Periodic    map[string]any
	ZipURL      string
	Error       string
}

// AssembleRows turns one document's filename metadata, resolved taxonomy
// string and Extraction into its final output rows, applying the period
// sort and single-row fallback of spec §4.5. A period whose dates fail
// ISO-8601 conversion is a BadValue condition (spec §7): the error
// propagates so the caller can fall back to the single error-envelope row.
func AssembleRows(meta FilenameMeta, taxonomy string, ex *Extraction) ([]Row, error) {
	general := snapshotGeneral(ex.General)

	periods := ex.Periodic.periods()
	sort.Slice(periods, func(i, j int) bool {
		return periodLess(periods[j], periods[i])
	})

	if len(periods) == 0 {
		return []Row{{
			RunCode:   meta.RunCode,
			CompanyID: meta.CompanyID,
			Date:      meta.Date,
			FileType:  meta.FileType,
			Taxonomy:  taxonomy,
			General:   general,
		}}, nil
	}

	rows := make([]Row, 0, len(periods))
	for _, p := range periods {
		start, end, err := parsePeriodBounds(p)
		if err != nil {
			return nil, err
		}
		rows = append(rows, Row{
			RunCode:     meta.RunCode,
			CompanyID:   meta.CompanyID,
			Date:        meta.Date,
			FileType:    meta.FileType,
			Taxonomy:    taxonomy,
			General:     general,
			PeriodStart: start,
			PeriodEnd:   end,
			Periodic:    snapshotPeriodic(ex.Periodic, p),
		})
	}
	return rows, nil
}

func snapshotGeneral(store GeneralStore) map[string]any {
	out := make(map[string]any, len(GeneralColumnNames()))
	for _, name := range GeneralColumnNames() {
		out[name] = store.value(name)
	}
	return out
}

func snapshotPeriodic(store PeriodicStore, p Period) map[string]any {
	out := make(map[string]any, len(PeriodicColumnNames()))
	for _, name := range PeriodicColumnNames() {
		out[name] = store.value(p, name)
	}
	return out
}

func periodLess(a, b Period) bool {
	if a.Start != b.Start {
		return a.Start < b.Start
	}
	return a.End < b.End
}

// parsePeriodBounds parses a period's ISO-8601 start/end strings. Both
// strings were already confirmed non-empty by BuildContextTable; a format
// failure here is a genuine BadValue (spec §4.5, §7), grounded on
// stream_read_xbrl.py's datetime.date.fromisoformat calls during period
// assembly, which raise ValueError on malformed dates.
func parsePeriodBounds(p Period) (*time.Time, *time.Time, error) {
	start, err := time.Parse("2006-01-02", p.Start)
	if err != nil {
		return nil, nil, &BadValueError{Column: "period_start", Raw: p.Start, Err: err}
	}
	end, err := time.Parse("2006-01-02", p.End)
	if err != nil {
		return nil, nil, &BadValueError{Column: "period_end", Raw: p.End, Err: err}
	}
	return &start, &end, nil
}
