package xbrl

import (
	"strings"

	"golang.org/x/net/html"
)

// Extraction is the raw result of one document traversal: a resolved
// general store and a resolved periodic store, ready for row assembly
// (spec §3, §4.4).
type Extraction struct {
	General  GeneralStore
	Periodic PeriodicStore
}

// Walk performs the engine's single depth-first pass over root, dispatching
// every element through reg and updating the two accumulators in place.
// An UnresolvableContext is silently skipped (spec §4.3, §7), but any
// parser error is a BadValue condition: the walk stops immediately and
// returns the error, since the caller abandons all data accumulated for
// the document rather than partially trusting it (spec §7).
func Walk(root *html.Node, reg *Registry, contexts ContextTable) (*Extraction, error) {
	ex := &Extraction{
		General:  newGeneralStore(),
		Periodic: newPeriodicStore(),
	}
	var walkErr error
	forEachElement(root, func(el *html.Node) {
		if walkErr != nil {
			return
		}
		if localName(el) == "exclude" {
			return
		}
		local := localName(el)
		nameSuffix := nameAttrSuffix(el)
		contextRef := attrValue(el, "contextref")

		for _, m := range reg.candidates(el, local, nameSuffix, contextRef) {
			if err := dispatch(ex, m, contextRef, contexts); err != nil {
				walkErr = err
				return
			}
		}
	})
	if walkErr != nil {
		return nil, walkErr
	}
	return ex, nil
}

func dispatch(ex *Extraction, m matchedRule, contextRef string, contexts ContextTable) error {
	rule := m.rule
	switch rule.Kind {
	case General:
		if !ex.General.accepts(rule.Column, rule.Priority) {
			return nil
		}
		value, ok, err := parseFirstNonNull(rule, m.elements, contextRef)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		ex.General.store(rule.Column, rule.Priority, value)
	case Periodic:
		if contextRef == "" {
			return nil
		}
		period, resolved := contexts[contextRef]
		if !resolved || !period.Resolvable() {
			return nil
		}
		if !ex.Periodic.accepts(period, rule.Column, rule.Priority) {
			return nil
		}
		value, ok, err := parseFirstNonNull(rule, m.elements, contextRef)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		ex.Periodic.store(period, rule.Column, rule.Priority, value)
	}
	return nil
}

// parseFirstNonNull walks a rule's search-expansion element sequence in
// order, parsing each element's text, and stops at the first non-null
// result (spec §4.2 — "break out of the search expansion loop"). A parser
// error aborts immediately rather than falling through to the next
// expansion element: it is a BadValue condition, not a non-match.
func parseFirstNonNull(rule *Rule, elements []*html.Node, contextRef string) (any, bool, error) {
	parser := nullable(rule.Parser)
	for _, el := range elements {
		meta := ElementMeta{
			Sign:       attrValue(el, "sign"),
			Scale:      attrValue(el, "scale"),
			Format:     attrValue(el, "format"),
			ContextRef: contextRef,
			Name:       attrValue(el, "name"),
		}
		raw := textContent(el)
		value, err := parser(meta, raw)
		if err != nil {
			return nil, false, err
		}
		if value != nil {
			return value, true, nil
		}
	}
	return nil, false, nil
}

// DocumentNamespaces collects every xmlns declaration's URI found anywhere
// in the document, used to compute the taxonomy column (spec §4.5).
func DocumentNamespaces(root *html.Node) []string {
	var namespaces []string
	forEachElement(root, func(n *html.Node) {
		for _, a := range n.Attr {
			if a.Key == "xmlns" || strings.HasPrefix(a.Key, "xmlns:") {
				namespaces = append(namespaces, a.Val)
			}
		}
	})
	return namespaces
}
