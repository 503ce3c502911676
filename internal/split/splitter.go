// Package split decomposes segmenter sentences into shorter sentence-like
// units. Splitting is text-only: the label computed for the parent sentence
// is carried by the caller onto every fragment.
package split

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/fintext/bratsent/internal/textnorm"
)

// subSplitRE finds the separators for extra-split mode: whitespace following
// one of ; : — – -- (the delimiter stays attached to the preceding fragment),
// or a newline run.
var subSplitRE = regexp.MustCompile(`(;|:|—|–|--)\s+|\n+`)

// Splitter turns one sentence's text into zero or more bounded fragments.
type Splitter struct {
	MinLen   int  // minimum fragment length, characters
	MaxChars int  // maximum fragment length, characters
	Extra    bool // enable delimiter-based sub-splitting
}

// NewSplitter creates a splitter with the given bounds.
func NewSplitter(minLen, maxChars int, extra bool) *Splitter {
	return &Splitter{MinLen: minLen, MaxChars: maxChars, Extra: extra}
}

// Split returns the normalized fragments of one sentence.
//
// Without extra-split the whole sentence is the only candidate, kept iff its
// normalized length is within bounds. With extra-split the sentence is cut
// after ; : — – -- or at newline runs; fragments below MinLen are dropped,
// and fragments above MaxChars get one last-resort split on ", " whose
// in-bounds sub-fragments are kept. No further recursion.
func (s *Splitter) Split(text string) []string {
	if !s.Extra {
		t := textnorm.Normalize(text)
		if n := utf8.RuneCountInString(t); n >= s.MinLen && n <= s.MaxChars {
			return []string{t}
		}
		return nil
	}

	var out []string
	for _, part := range splitAtDelimiters(text) {
		p := textnorm.Normalize(part)
		n := utf8.RuneCountInString(p)
		if n < s.MinLen {
			continue
		}
		if n > s.MaxChars {
			for _, sub := range splitCommaSpace(p) {
				if m := utf8.RuneCountInString(sub); m >= s.MinLen && m <= s.MaxChars {
					out = append(out, sub)
				}
			}
			continue
		}
		out = append(out, p)
	}
	return out
}

// splitAtDelimiters cuts text at the subSplitRE separators, discarding
// empty and whitespace-only pieces.
func splitAtDelimiters(text string) []string {
	var parts []string
	last := 0
	for _, m := range subSplitRE.FindAllStringSubmatchIndex(text, -1) {
		cut, next := m[0], m[1]
		if m[2] >= 0 {
			// Delimiter matched: cut after it so it stays with the
			// preceding fragment.
			cut = m[3]
		}
		appendNonBlank(&parts, text[last:cut])
		last = next
	}
	appendNonBlank(&parts, text[last:])
	return parts
}

// splitCommaSpace is the last-resort split for oversized fragments. The
// ", " separator is consumed, matching a plain split.
func splitCommaSpace(p string) []string {
	var subs []string
	for _, x := range strings.Split(p, ", ") {
		if x != "" {
			subs = append(subs, textnorm.Normalize(x))
		}
	}
	return subs
}

func appendNonBlank(dst *[]string, s string) {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			*dst = append(*dst, s)
			return
		}
	}
}
