package xbrl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeneralStore_TieOverwritesLastInDocument(t *testing.T) {
	s := newGeneralStore()

	assert.True(t, s.accepts("col", 1))
	s.store("col", 1, "first")

	// Same priority: still accepted, overwrites (last-in-document wins).
	assert.True(t, s.accepts("col", 1))
	s.store("col", 1, "second")
	assert.Equal(t, "second", s.value("col"))

	// Worse (higher) priority: rejected, value unchanged.
	assert.False(t, s.accepts("col", 2))

	// Better (lower) priority: accepted, overwrites.
	assert.True(t, s.accepts("col", 0))
	s.store("col", 0, "best")
	assert.Equal(t, "best", s.value("col"))
}

func TestGeneralStore_UnsetColumnIsNil(t *testing.T) {
	s := newGeneralStore()
	assert.Nil(t, s.value("missing"))
	assert.True(t, s.accepts("missing", 5))
}

func TestPeriodicStore_StrictImprovementFirstInDocumentWins(t *testing.T) {
	s := newPeriodicStore()
	p := Period{Start: "2021-01-01", End: "2021-12-31"}

	assert.True(t, s.accepts(p, "col", 1))
	s.store(p, "col", 1, "first")

	// Same priority: rejected, first-in-document value survives.
	assert.False(t, s.accepts(p, "col", 1))
	assert.Equal(t, "first", s.value(p, "col"))

	// Worse priority: rejected.
	assert.False(t, s.accepts(p, "col", 2))

	// Strictly better priority: accepted, overwrites.
	assert.True(t, s.accepts(p, "col", 0))
	s.store(p, "col", 0, "best")
	assert.Equal(t, "best", s.value(p, "col"))
}

func TestPeriodicStore_PeriodsIsolated(t *testing.T) {
	s := newPeriodicStore()
	p1 := Period{Start: "2020-01-01", End: "2020-12-31"}
	p2 := Period{Start: "2021-01-01", End: "2021-12-31"}

	s.store(p1, "col", 0, "p1-value")
	s.store(p2, "col", 0, "p2-value")

	assert.Equal(t, "p1-value", s.value(p1, "col"))
	assert.Equal(t, "p2-value", s.value(p2, "col"))
	assert.ElementsMatch(t, []Period{p1, p2}, s.periods())
}
