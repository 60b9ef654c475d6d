package xbrl

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// NormalizeText normalizes various Unicode and HTML entity issues that appear
// in bulk-downloaded Companies House accounts documents. A large share of the
// corpus is iXBRL-in-HTML produced by small accountancy filing packages
// rather than a single validated toolchain, so the same punctuation or
// currency glyph turns up encoded half a dozen different ways across filers.
// Called early in Extract, before stripPreamble and html.Parse, so every
// downstream tag and text comparison in walker.go sees consistent characters.
//
// Normalizations performed:
// - HTML entities (&nbsp;, &mdash;, &pound;, etc.) -> Unicode equivalents
// - Non-breaking spaces (U+00A0) -> regular spaces
// - Various Unicode whitespace -> regular spaces
// - Zero-width characters -> removed
// - Normalize newlines (CRLF -> LF)
func NormalizeText(data []byte) []byte {
	text := string(data)

	// 1. HTML entities to Unicode (common in accounts exported from a
	// word processor or a small filing package rather than validated XBRL)
	text = normalizeHTMLEntities(text)

	// 2. Unicode whitespace normalization
	text = normalizeWhitespace(text)

	// 3. Remove zero-width and invisible characters
	text = removeInvisibleChars(text)

	// 4. Normalize line endings (CRLF -> LF)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	return []byte(text)
}

// namedEntityRunes maps the HTML named entities seen in Companies House
// accounts documents to their Unicode code point. Most are punctuation
// carried over from a word processor; pound and euro come from currency
// figures in accounts reporting in GBP or, for overseas subsidiaries, EUR.
var namedEntityRunes = map[string]rune{
	"nbsp":   ' ',
	"mdash":  '—',
	"ndash":  '–',
	"ldquo":  '“',
	"rdquo":  '”',
	"lsquo":  '‘',
	"rsquo":  '’',
	"amp":    '&',
	"lt":     '<',
	"gt":     '>',
	"quot":   '"',
	"apos":   '\'',
	"hellip": '…',
	"bull":   '•',
	"trade":  '™',
	"reg":    '®',
	"copy":   '©',
	"sect":   '§',
	"para":   '¶',
	"pound":  '£',
	"euro":   '€',
}

var namedEntityPattern = regexp.MustCompile(`&([a-zA-Z]+);`)
var numericEntityPattern = regexp.MustCompile(`&#(\d+);`)

// normalizeHTMLEntities converts named and numeric HTML entities to their
// Unicode equivalents: named entities are looked up in namedEntityRunes,
// numeric entities are converted directly from their decimal code point.
// Entity names the table doesn't recognize are left untouched rather than
// dropped.
func normalizeHTMLEntities(text string) string {
	text = namedEntityPattern.ReplaceAllStringFunc(text, func(match string) string {
		name := match[1 : len(match)-1]
		if r, ok := namedEntityRunes[name]; ok {
			return string(r)
		}
		return match
	})

	text = numericEntityPattern.ReplaceAllStringFunc(text, func(match string) string {
		var code int
		if _, err := fmt.Sscanf(match, "&#%d;", &code); err == nil && code < 0x110000 {
			return string(rune(code))
		}
		return match // Leave unchanged if we can't parse
	})

	return text
}

// normalizeWhitespace converts various Unicode whitespace characters to
// regular spaces. U+00A0 (non-breaking space) is by far the most common,
// carried into filings through copy-pasted balance sheet figures.
func normalizeWhitespace(text string) string {
	var result strings.Builder
	result.Grow(len(text))

	for _, r := range text {
		switch r {
		case ' ': // Non-breaking space (NBSP)
			result.WriteRune(' ')
		case ' ', ' ', ' ', ' ', ' ', ' ': // En quad, Em quad, etc.
			result.WriteRune(' ')
		case ' ', ' ', ' ', ' ', ' ': // Figure space, etc.
			result.WriteRune(' ')
		case ' ': // Narrow no-break space
			result.WriteRune(' ')
		case ' ': // Medium mathematical space
			result.WriteRune(' ')
		case '　': // Ideographic space
			result.WriteRune(' ')
		default:
			result.WriteRune(r)
		}
	}

	return result.String()
}

// removeInvisibleChars removes zero-width and other invisible characters,
// a recurring artifact of accounts documents round-tripped through Word
// before being wrapped in iXBRL tags.
func removeInvisibleChars(text string) string {
	var result strings.Builder
	result.Grow(len(text))

	for _, r := range text {
		switch r {
		case '​': // Zero-width space
			continue
		case '‌': // Zero-width non-joiner
			continue
		case '‍': // Zero-width joiner
			continue
		case 0xFEFF: // Zero-width no-break space (BOM)
			continue
		case '᠎': // Mongolian vowel separator
			continue
		default:
			if unicode.Is(unicode.Cf, r) && r != '\t' && r != '\n' && r != '\r' {
				continue
			}
			result.WriteRune(r)
		}
	}

	return result.String()
}
