package xbrl

import "golang.org/x/net/html"

// ColumnKind distinguishes the engine's two accumulator shapes: a general
// column is resolved once per document, a periodic column once per period
// (spec §3, §4.4).
type ColumnKind int

const (
	General ColumnKind = iota
	Periodic
)

// MatcherKind is the matcher head a Rule dispatches through (spec §4.2).
type MatcherKind int

const (
	// MatchTagLocalName fires when an element's local name equals Literal,
	// compared case-insensitively (the HTML parser lowercases tag names).
	MatchTagLocalName MatcherKind = iota
	// MatchNameAttrSuffix fires when an element's name attribute, taken
	// after its last ':', equals Literal exactly (attribute values keep
	// their original case).
	MatchNameAttrSuffix
	// MatchCustom fires when Predicate returns a non-empty element
	// sequence; that sequence is used directly as the search-expansion
	// result, bypassing Expand.
	MatchCustom
)

// CustomPredicate inspects a candidate element and returns the sequence of
// elements to extract text from, or nil if the element does not match.
type CustomPredicate func(el *html.Node, localName, nameSuffix, contextRef string) []*html.Node

// SearchExpansion maps a matched element to the set of elements whose text
// should be concatenated and parsed. The default expansion is the matched
// element alone; some columns (e.g. entity_current_legal_name) widen this
// to also include a nested element (spec §4.2, §9).
type SearchExpansion func(el *html.Node) []*html.Node

func defaultExpansion(el *html.Node) []*html.Node {
	return []*html.Node{el}
}

// Rule binds one matcher head to one column, at one priority. Priority is
// the rule's index within its column's ordered rule list: lower wins
// (spec §4.2, §4.4).
type Rule struct {
	Column    string
	Kind      ColumnKind
	Priority  int
	Matcher   MatcherKind
	Literal   string
	Predicate CustomPredicate
	Parser    Parser
	Expand    SearchExpansion
}

func (r *Rule) expand(el *html.Node) []*html.Node {
	if r.Expand != nil {
		return r.Expand(el)
	}
	return defaultExpansion(el)
}

// ColumnDef is one output column's identity plus its ordered, priority-
// ranked list of candidate rules (spec §4.1, §6).
type ColumnDef struct {
	Name  string
	Kind  ColumnKind
	Rules []RuleSpec
}

// RuleSpec is a ColumnDef's rule before its column is assigned by
// CompileRegistry; it is the literal, human-authored form used in
// columns.go. Priority is explicit rather than inferred from slice
// position, because a single conceptual tier of the original mapping
// tables (spec §9 — "tag-local-name OR name-attribute-suffix") often
// compiles to two RuleSpecs that must share one priority.
type RuleSpec struct {
	Priority  int
	Matcher   MatcherKind
	Literal   string
	Predicate CustomPredicate
	Parser    Parser
	Expand    SearchExpansion
}

// Registry is the compiled, hash-indexed form of every ColumnDef: an O(1)
// lookup by tag local name, an O(1) lookup by name-attribute suffix, and a
// linear list of custom predicates evaluated against every element (spec
// §3, §4.2 — "a single traversal, not one XPath query per column").
type Registry struct {
	tagNameIndex    map[string][]*Rule
	nameSuffixIndex map[string][]*Rule
	customRules     []*Rule
	columns         map[string]ColumnDef
}

// CompileRegistry builds a Registry from a set of column definitions. It
// runs once per process, not once per document.
func CompileRegistry(defs []ColumnDef) *Registry {
	reg := &Registry{
		tagNameIndex:    make(map[string][]*Rule),
		nameSuffixIndex: make(map[string][]*Rule),
		columns:         make(map[string]ColumnDef, len(defs)),
	}
	for _, def := range defs {
		reg.columns[def.Name] = def
		for _, spec := range def.Rules {
			rule := &Rule{
				Column:    def.Name,
				Kind:      def.Kind,
				Priority:  spec.Priority,
				Matcher:   spec.Matcher,
				Literal:   spec.Literal,
				Predicate: spec.Predicate,
				Parser:    spec.Parser,
				Expand:    spec.Expand,
			}
			switch spec.Matcher {
			case MatchTagLocalName:
				key := lowerASCII(spec.Literal)
				reg.tagNameIndex[key] = append(reg.tagNameIndex[key], rule)
			case MatchNameAttrSuffix:
				reg.nameSuffixIndex[spec.Literal] = append(reg.nameSuffixIndex[spec.Literal], rule)
			case MatchCustom:
				reg.customRules = append(reg.customRules, rule)
			}
		}
	}
	return reg
}

// candidates returns every rule that fires for the given element, in no
// particular order: tag-local-name matches, name-attribute-suffix matches,
// and custom predicate matches, the latter paired with their predicate's
// own element sequence in place of the rule's Expand.
func (reg *Registry) candidates(el *html.Node, local, nameSuffix, contextRef string) []matchedRule {
	var out []matchedRule
	for _, r := range reg.tagNameIndex[lowerASCII(local)] {
		out = append(out, matchedRule{rule: r, elements: r.expand(el)})
	}
	if nameSuffix != "" {
		for _, r := range reg.nameSuffixIndex[nameSuffix] {
			out = append(out, matchedRule{rule: r, elements: r.expand(el)})
		}
	}
	for _, r := range reg.customRules {
		if els := r.Predicate(el, local, nameSuffix, contextRef); len(els) > 0 {
			out = append(out, matchedRule{rule: r, elements: els})
		}
	}
	return out
}

type matchedRule struct {
	rule     *Rule
	elements []*html.Node
}

func lowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
