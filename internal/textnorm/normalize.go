// Package textnorm provides the text normalization views and the fuzzy token
// matcher the validation rules are built on. All functions are pure and
// total: they never fail, and identical input always yields identical output.
package textnorm

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	nonLoose      = regexp.MustCompile(`[^a-z0-9 ]`)
	nonAlnum      = regexp.MustCompile(`[^A-Za-z0-9]`)
)

// quoteReplacer maps unicode curly quotes/apostrophes to ASCII equivalents.
// OCR engines produce these variants inconsistently.
var quoteReplacer = strings.NewReplacer(
	"‘", "'",
	"’", "'",
	"“", `"`,
	"”", `"`,
)

// NormalizeLoose produces the lenient view used for case-insensitive
// containment checks (brand name, designation, name/address): lowercased,
// whitespace collapsed, everything but ASCII letters, digits and spaces
// stripped. Idempotent.
func NormalizeLoose(text string) string {
	text = strings.ToLower(text)
	text = quoteReplacer.Replace(text)
	text = whitespaceRun.ReplaceAllString(text, " ")
	text = nonLoose.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// NormalizeStrict preserves case and punctuation, applies NFC unicode
// normalization and collapses whitespace runs to single spaces.
func NormalizeStrict(text string) string {
	text = norm.NFC.String(text)
	text = whitespaceRun.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// NormalizeForWarning strips all whitespace and punctuation but keeps case.
// Used only for the government warning containment check: OCR garbles spacing
// and punctuation but gets the actual letters mostly right, and the warning
// header must stay uppercase.
func NormalizeForWarning(text string) string {
	text = whitespaceRun.ReplaceAllString(text, "")
	return nonAlnum.ReplaceAllString(text, "")
}
