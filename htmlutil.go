package xbrl

import (
	"strings"

	"golang.org/x/net/html"
)

// localName strips any namespace prefix from an element's tag, the Go
// equivalent of XBRL's local-name() XPath function. golang.org/x/net/html
// lowercases tag names per the HTML5 tokenizer, so comparisons against this
// value must themselves be lowercase (spec §4.2's tag-local-name matcher).
func localName(n *html.Node) string {
	if n == nil {
		return ""
	}
	data := n.Data
	if i := strings.LastIndexByte(data, ':'); i >= 0 {
		return data[i+1:]
	}
	return data
}

// nameAttrSuffix returns the substring of an element's name attribute after
// its last ':', e.g. name="uk-gaap:TurnoverGrossOperatingRevenue" ->
// "TurnoverGrossOperatingRevenue". Attribute values are not case-folded by
// the HTML parser, so this preserves the taxonomy's original casing.
func nameAttrSuffix(n *html.Node) string {
	name := attrValue(n, "name")
	if name == "" {
		return ""
	}
	if i := strings.LastIndexByte(name, ':'); i >= 0 {
		return name[i+1:]
	}
	return name
}

// attrValue returns an attribute's value by key (lowercase, as the HTML
// parser folds attribute keys), or "" if absent.
func attrValue(n *html.Node, key string) string {
	if n == nil {
		return ""
	}
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// forEachElement visits every element node in the tree, document order,
// depth-first.
func forEachElement(n *html.Node, visit func(*html.Node)) {
	if n == nil {
		return
	}
	if n.Type == html.ElementNode {
		visit(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		forEachElement(c, visit)
	}
}

// firstChildByLocalName returns the first direct child element whose local
// name matches name, case-insensitively.
func firstChildByLocalName(n *html.Node, name string) *html.Node {
	if n == nil {
		return nil
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && strings.EqualFold(localName(c), name) {
			return c
		}
	}
	return nil
}

// firstDescendantByLocalName returns the first descendant element (any
// depth) whose local name matches name, case-insensitively, document order.
func firstDescendantByLocalName(n *html.Node, name string) *html.Node {
	var found *html.Node
	forEachElement(n, func(el *html.Node) {
		if found != nil {
			return
		}
		if strings.EqualFold(localName(el), name) {
			found = el
		}
	})
	return found
}

// textContent concatenates the text of all descendant text nodes, excluding
// any subtree whose local name is "exclude" regardless of namespace (spec
// §4.4/§9): this mirrors iXBRL's practice of wrapping presentation-only
// punctuation inside <exclude>.
func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && localName(n) == "exclude" {
			return
		}
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
