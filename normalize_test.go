package xbrl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeText_HTMLEntities(t *testing.T) {
	out := NormalizeText([]byte("Fish &amp; Chips Ltd&nbsp;&mdash;&nbsp;Accounts"))
	assert.Equal(t, "Fish & Chips Ltd — Accounts", string(out))
}

func TestNormalizeText_NonBreakingSpaceAndNumericEntity(t *testing.T) {
	out := NormalizeText([]byte("1,000&#160;units"))
	assert.Equal(t, "1,000 units", string(out))
}

func TestNormalizeText_RemovesZeroWidthSpace(t *testing.T) {
	out := NormalizeText([]byte("turn​over"))
	assert.Equal(t, "turnover", string(out))
}

func TestNormalizeText_CRLFNormalized(t *testing.T) {
	out := NormalizeText([]byte("line1\r\nline2\rline3"))
	assert.Equal(t, "line1\nline2\nline3", string(out))
}
