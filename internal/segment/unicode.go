package segment

import (
	"unicode"
	"unicode/utf8"

	"github.com/clipperhouse/uax29/v2/sentences"
)

// UnicodeSegmenter detects sentence boundaries with the UAX #29 sentence
// rules. It needs no model files, which makes it the default.
type UnicodeSegmenter struct{}

// Segment splits text into sentence spans. The UAX #29 segments tile the
// whole input, so spans are derived from a running character offset; each
// span is then shrunk to exclude leading and trailing whitespace, and
// whitespace-only segments are dropped.
func (s *UnicodeSegmenter) Segment(text string) ([]Span, error) {
	if text == "" {
		return nil, nil
	}

	var spans []Span
	pos := 0
	iter := sentences.FromString(text)
	for iter.Next() {
		seg := iter.Value()
		start := pos
		pos += utf8.RuneCountInString(seg)

		if trimmed, ok := trimSpan(seg, start); ok {
			spans = append(spans, trimmed)
		}
	}
	return spans, nil
}

// trimSpan narrows a segment's span to its non-whitespace core. Returns
// false when the segment is entirely whitespace.
func trimSpan(seg string, start int) (Span, bool) {
	runes := []rune(seg)
	lo, hi := 0, len(runes)
	for lo < hi && unicode.IsSpace(runes[lo]) {
		lo++
	}
	for hi > lo && unicode.IsSpace(runes[hi-1]) {
		hi--
	}
	if lo == hi {
		return Span{}, false
	}
	return Span{Start: start + lo, End: start + hi}, true
}
