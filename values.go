package xbrl

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ElementMeta carries the string-valued attributes a value parser may need:
// sign, scale, format, contextRef and name (spec §4.1).
type ElementMeta struct {
	Sign       string
	Scale      string
	Format     string
	ContextRef string
	Name       string
}

// Parser coerces an element's concatenated text to a typed value. It returns
// (nil, nil) when the text is null (empty, "-", or the specific parser finds
// nothing meaningful), and a non-nil error only for BadValue conditions that
// should abort the whole document (spec §4.6, §7).
type Parser func(meta ElementMeta, raw string) (any, error)

// nullable wraps a Parser with the universal null-mapping rule: empty text
// and the literal "-" map to null before any parser runs; text is trimmed
// first (spec §4.1).
func nullable(p Parser) Parser {
	return func(meta ElementMeta, raw string) (any, error) {
		text := strings.TrimSpace(raw)
		if text == "" || text == "-" {
			return nil, nil
		}
		return p(meta, text)
	}
}

var formatSuffixPattern = regexp.MustCompile(`:([^:]+)$`)

// formatSuffix returns the substring of the format attribute after its last
// ':', e.g. "ixt2:numdotcomma" -> "numdotcomma".
func formatSuffix(format string) string {
	m := formatSuffixPattern.FindStringSubmatch(format)
	if m == nil {
		return format
	}
	return m[1]
}

// ParseDecimal implements spec §4.1's decimal parser: thousands-separator
// stripping per the format suffix, multi-summand space-joined text, and
// sign/scale re-basing via exact decimal arithmetic.
func ParseDecimal(meta ElementMeta, raw string) (any, error) {
	return parseDecimalText(meta, raw)
}

func parseDecimalText(meta ElementMeta, text string) (decimal.Decimal, error) {
	switch formatSuffix(meta.Format) {
	case "numdotcomma":
		text = strings.ReplaceAll(text, ".", "")
		text = strings.ReplaceAll(text, ",", ".")
	case "numspacedot":
		text = strings.ReplaceAll(text, " ", "")
	default:
		text = strings.ReplaceAll(text, ",", "")
	}

	sum := decimal.Zero
	fields := strings.Fields(text)
	if len(fields) == 0 {
		fields = []string{text}
	}
	for _, f := range fields {
		d, err := decimal.NewFromString(f)
		if err != nil {
			return decimal.Decimal{}, &BadValueError{Column: "decimal", Raw: text, Err: err}
		}
		sum = sum.Add(d)
	}

	sign := decimal.NewFromInt(1)
	if meta.Sign == "-" {
		sign = decimal.NewFromInt(-1)
	}

	scale := 0
	if meta.Scale != "" {
		s, err := strconv.Atoi(meta.Scale)
		if err != nil {
			return decimal.Decimal{}, &BadValueError{Column: "decimal", Raw: meta.Scale, Err: err}
		}
		scale = s
	}

	return sign.Mul(sum).Mul(decimal.New(1, int32(scale))), nil
}

var decimalWithPrefixPattern = regexp.MustCompile(`^(?:.*:|.+- )\s*`)

// ParseDecimalWithPrefix implements spec §4.1's employee-count parser:
// strips a `.*:` or `.+- ` prefix (observed malformed inputs such as
// "2017 - 2" or "FY: 3"), applies ParseDecimal, then takes the absolute
// value — a sign spuriously attached to an employee count is discarded.
func ParseDecimalWithPrefix(meta ElementMeta, raw string) (any, error) {
	stripped := decimalWithPrefixPattern.ReplaceAllString(raw, "")
	stripped = strings.TrimSpace(stripped)
	if stripped == "" {
		stripped = raw
	}
	d, err := parseDecimalText(meta, stripped)
	if err != nil {
		return nil, err
	}
	return d.Abs(), nil
}

var dayFirstFormats = map[string]bool{
	"datedaymonthyear":   true,
	"dateslasheu":        true,
	"datedoteu":          true,
	"datedaymonthyearen": true,
}

var ordinalSuffixPattern = regexp.MustCompile(`(?i)(\d)(st|nd|rd|th)`)

// candidateDateLayouts lists layouts tried for a date string, in day-first
// or month-first order depending on the format suffix.
func candidateDateLayouts(dayFirst bool) []string {
	if dayFirst {
		return []string{
			"2.1.2006", "2/1/2006", "2-1-2006", "2 January 2006",
			"2 Jan 2006", "02/01/2006", "02-01-2006", "2006-01-02",
			"2.1.06", "2/1/06", "2-1-06", "02/01/06", "02-01-06",
			"2January2006", "2Jan2006",
		}
	}
	return []string{
		"1/2/2006", "1-2-2006", "January 2 2006", "Jan 2 2006",
		"01/02/2006", "01-02-2006", "2006-01-02", "January 2, 2006", "Jan 2, 2006",
		"1/2/06", "1-2-06", "01/02/06", "01-02-06",
	}
}

// ParseDate implements spec §4.1's tolerant date parser: format-suffix-driven
// day-first detection, ordinal-suffix stripping, and a truncate-to-three
// retry pass when the first pass fails.
func ParseDate(meta ElementMeta, raw string) (any, error) {
	suffix := formatSuffix(meta.Format)
	dayFirst := dayFirstFormats[suffix]

	text := raw
	if suffix == "datedaymonthyearen" {
		text = strings.ReplaceAll(text, " ", "")
	}
	text = ordinalSuffixPattern.ReplaceAllString(text, "$1")

	if d, ok := tryParseDate(text, dayFirst); ok {
		return d, nil
	}

	truncated := truncateAlphabeticRuns(text)
	if d, ok := tryParseDate(truncated, dayFirst); ok {
		return d, nil
	}

	return nil, &BadValueError{Column: "date", Raw: raw, Err: &BadDateError{Raw: raw}}
}

func tryParseDate(text string, dayFirst bool) (time.Time, bool) {
	for _, layout := range candidateDateLayouts(dayFirst) {
		if d, err := time.Parse(layout, text); err == nil {
			return d, true
		}
	}
	if d, err := time.Parse("2006-01-02", text); err == nil {
		return d, true
	}
	return time.Time{}, false
}

var alphaRunPattern = regexp.MustCompile(`[A-Za-z]+`)

// truncateAlphabeticRuns truncates every alphabetic run in text to its first
// three characters ("January" -> "Jan"), the tolerant retry pass of ParseDate.
func truncateAlphabeticRuns(text string) string {
	return alphaRunPattern.ReplaceAllStringFunc(text, func(run string) string {
		if len(run) <= 3 {
			return run
		}
		return run[:3]
	})
}

// ParseBool implements spec §4.1: accepts exactly "true"/"false" (case
// sensitive); anything else is null.
func ParseBool(meta ElementMeta, raw string) (any, error) {
	switch raw {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return nil, nil
	}
}

// ParseReversedBool implements spec §4.1's polarity-swapped boolean, used for
// columns whose natural source polarity is the negation of the target (e.g.
// "not dormant" -> company_dormant).
func ParseReversedBool(meta ElementMeta, raw string) (any, error) {
	switch raw {
	case "true":
		return false, nil
	case "false":
		return true, nil
	default:
		return nil, nil
	}
}

// ParseString implements spec §4.1: newlines become spaces, double quotes
// are deleted, nothing else changes.
func ParseString(meta ElementMeta, raw string) (any, error) {
	s := strings.ReplaceAll(raw, "\n", " ")
	s = strings.ReplaceAll(s, "\"", "")
	return s, nil
}
