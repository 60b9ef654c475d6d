package xbrl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/net/html"
)

func TestBuildContextTable_Instant(t *testing.T) {
	root, _ := html.Parse(strings.NewReader(`
		<context id="c1"><period><instant>2021-03-31</instant></period></context>
	`))
	table := BuildContextTable(root)
	p, ok := table["c1"]
	assert.True(t, ok)
	assert.Equal(t, Period{Start: "2021-03-31", End: "2021-03-31"}, p)
	assert.True(t, p.Resolvable())
}

func TestBuildContextTable_StartEndRange(t *testing.T) {
	root, _ := html.Parse(strings.NewReader(`
		<context id="c2"><period>
			<startDate>2020-04-01</startDate>
			<endDate>2021-03-31</endDate>
		</period></context>
	`))
	table := BuildContextTable(root)
	p, ok := table["c2"]
	assert.True(t, ok)
	assert.Equal(t, Period{Start: "2020-04-01", End: "2021-03-31"}, p)
}

func TestBuildContextTable_MissingPeriodOmitted(t *testing.T) {
	root, _ := html.Parse(strings.NewReader(`<context id="c3"></context>`))
	table := BuildContextTable(root)
	_, ok := table["c3"]
	assert.False(t, ok)
}

func TestBuildContextTable_EmptyDatesOmitted(t *testing.T) {
	root, _ := html.Parse(strings.NewReader(`
		<context id="c4"><period><instant></instant></period></context>
	`))
	table := BuildContextTable(root)
	_, ok := table["c4"]
	assert.False(t, ok)
}

func TestBuildContextTable_NoIdSkipped(t *testing.T) {
	root, _ := html.Parse(strings.NewReader(`
		<context><period><instant>2021-01-01</instant></period></context>
	`))
	table := BuildContextTable(root)
	assert.Empty(t, table)
}

func TestPeriod_Resolvable(t *testing.T) {
	assert.True(t, Period{Start: "a", End: "b"}.Resolvable())
	assert.False(t, Period{Start: "", End: "b"}.Resolvable())
	assert.False(t, Period{Start: "a", End: ""}.Resolvable())
}
