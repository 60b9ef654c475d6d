package xbrl

import (
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/net/html"
)

// Extract runs the full pipeline for one accounts document: filename
// parsing, lenient HTML/XBRL parsing, context resolution, the single-pass
// walk, and row assembly (spec §3). Only BadFilename returns an error —
// every other failure mode is encoded as a row so the caller's stream
// never has to special-case a single document (spec §7).
func Extract(filename string, data []byte) ([]Row, error) {
	meta, err := ParseFilename(filename)
	if err != nil {
		return nil, err
	}

	clean := stripPreamble(NormalizeText(data))
	root, parseErr := html.Parse(strings.NewReader(string(clean)))
	if parseErr != nil {
		log.Warn().Err(parseErr).Str("filename", filename).Msg("xbrl: document failed to parse, substituting empty tree")
		root = emptyDocument()
	}

	contexts := BuildContextTable(root)
	ex, walkErr := Walk(root, DefaultRegistry, contexts)
	if walkErr != nil {
		return []Row{errorRow(meta, walkErr)}, nil
	}

	taxonomy := resolveTaxonomy(root)
	rows, assembleErr := AssembleRows(meta, taxonomy, ex)
	if assembleErr != nil {
		return []Row{errorRow(meta, assembleErr)}, nil
	}
	return rows, nil
}

func emptyDocument() *html.Node {
	return &html.Node{Type: html.DocumentNode}
}

// resolveTaxonomy intersects the document's declared namespace URIs with
// AllowedTaxonomies, joined in AllowedTaxonomies' fixed order for
// deterministic output (spec §4.5, §9 — the original's Python set
// intersection has no defined ordering).
func resolveTaxonomy(root *html.Node) string {
	declared := make(map[string]bool)
	for _, ns := range DocumentNamespaces(root) {
		declared[ns] = true
	}
	var matched []string
	for _, ns := range AllowedTaxonomies {
		if declared[ns] {
			matched = append(matched, ns)
		}
	}
	return strings.Join(matched, ";")
}

// errorRow builds the BadValue error envelope: core attributes,
// nulls everywhere else, and the error string in the trailing error field
// (spec §7).
func errorRow(meta FilenameMeta, err error) Row {
	return Row{
		RunCode:   meta.RunCode,
		CompanyID: meta.CompanyID,
		Date:      meta.Date,
		FileType:  meta.FileType,
		Error:     err.Error(),
	}
}
