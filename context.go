package xbrl

import (
	"strings"

	"golang.org/x/net/html"
)

// Period is a context's temporal span: an instant has Start == End.
type Period struct {
	Start string
	End   string
}

// Resolvable reports whether both ends of the period are non-empty.
func (p Period) Resolvable() bool {
	return p.Start != "" && p.End != ""
}

// ContextTable indexes every context element of a document by id, mapping
// each to its resolved period (spec §3, §4.3). A context whose dates cannot
// be resolved is simply absent from the table.
type ContextTable map[string]Period

// BuildContextTable pre-scans every <context> element in the document,
// reading its first <period> child: an <instant> yields Start == End; a
// startDate/endDate pair yields the range. Contexts with missing or empty
// dates are omitted (spec §4.3).
func BuildContextTable(root *html.Node) ContextTable {
	table := make(ContextTable)
	forEachElement(root, func(n *html.Node) {
		if localName(n) != "context" {
			return
		}
		id := attrValue(n, "id")
		if id == "" {
			return
		}
		period, ok := contextPeriod(n)
		if !ok {
			return
		}
		table[id] = period
	})
	return table
}

func contextPeriod(contextNode *html.Node) (Period, bool) {
	periodNode := firstChildByLocalName(contextNode, "period")
	if periodNode == nil {
		return Period{}, false
	}
	if instant := firstChildByLocalName(periodNode, "instant"); instant != nil {
		text := strings.TrimSpace(textContent(instant))
		if text == "" {
			return Period{}, false
		}
		return Period{Start: text, End: text}, true
	}
	startNode := firstChildByLocalName(periodNode, "startDate")
	endNode := firstChildByLocalName(periodNode, "endDate")
	if startNode == nil || endNode == nil {
		return Period{}, false
	}
	start := strings.TrimSpace(textContent(startNode))
	end := strings.TrimSpace(textContent(endNode))
	if start == "" || end == "" {
		return Period{}, false
	}
	return Period{Start: start, End: end}, true
}
