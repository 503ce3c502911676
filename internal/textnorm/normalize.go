// Package textnorm canonicalizes candidate unit text before filtering and
// deduplication.
package textnorm

import (
	"regexp"
	"strings"
)

var wsRE = regexp.MustCompile(`\s+`)

var quoteReplacer = strings.NewReplacer(
	"‘", "'",
	"’", "'",
	"“", `"`,
	"”", `"`,
)

// Normalize trims the text, replaces curly quotes with their straight
// equivalents, and collapses every whitespace run (newlines and tabs
// included) to a single space. Normalize is idempotent.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = quoteReplacer.Replace(s)
	return wsRE.ReplaceAllString(s, " ")
}
