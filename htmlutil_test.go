package xbrl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func parseFragment(t *testing.T, s string) *html.Node {
	t.Helper()
	root, err := html.Parse(strings.NewReader(s))
	require.NoError(t, err)
	return root
}

func TestLocalName_StripsNamespacePrefix(t *testing.T) {
	n := &html.Node{Type: html.ElementNode, Data: "uk-gaap:turnover"}
	assert.Equal(t, "turnover", localName(n))
}

func TestLocalName_NilNode(t *testing.T) {
	assert.Equal(t, "", localName(nil))
}

func TestNameAttrSuffix_TakesTailAfterColon(t *testing.T) {
	n := &html.Node{
		Type: html.ElementNode,
		Attr: []html.Attribute{{Key: "name", Val: "uk-gaap:TurnoverGrossOperatingRevenue"}},
	}
	assert.Equal(t, "TurnoverGrossOperatingRevenue", nameAttrSuffix(n))
}

func TestNameAttrSuffix_NoNameAttr(t *testing.T) {
	n := &html.Node{Type: html.ElementNode}
	assert.Equal(t, "", nameAttrSuffix(n))
}

func TestTextContent_ExcludesExcludeSubtree(t *testing.T) {
	root := parseFragment(t, `<div>before<exclude>DROPPED</exclude>after</div>`)
	div := firstDescendantByLocalName(root, "div")
	require.NotNil(t, div)
	assert.Equal(t, "beforeafter", textContent(div))
}

func TestFirstChildByLocalName_DirectChildOnly(t *testing.T) {
	root := parseFragment(t, `<outer><inner><target/></inner></outer>`)
	outer := firstDescendantByLocalName(root, "outer")
	require.NotNil(t, outer)
	assert.Nil(t, firstChildByLocalName(outer, "target"))
	assert.NotNil(t, firstChildByLocalName(outer, "inner"))
}

func TestFirstDescendantByLocalName_AnyDepth(t *testing.T) {
	root := parseFragment(t, `<outer><inner><target/></inner></outer>`)
	assert.NotNil(t, firstDescendantByLocalName(root, "target"))
}
