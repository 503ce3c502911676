package pipeline

import (
	"sort"

	"github.com/fintext/bratsent/internal/model"
)

// Overlaps reports whether the half-open intervals [a0,a1) and [b0,b1)
// share at least one position. Touching endpoints do not overlap and a
// zero-length interval overlaps nothing, even when it falls strictly
// inside the other interval.
func Overlaps(a0, a1, b0, b1 int) bool {
	return a0 < a1 && b0 < b1 && a0 < b1 && b0 < a1
}

// OverlappingTypes collects the event types whose entity spans overlap the
// sentence interval [s0,s1), sorted and without duplicates. The interval is
// the original, unsplit sentence: evidence anywhere within the sentence
// labels every sub-unit later derived from it.
func OverlappingTypes(s0, s1 int, spans []model.EntitySpan) []model.EventType {
	hit := make(map[model.EventType]bool)
	for _, e := range spans {
		if Overlaps(s0, s1, e.Start, e.End) {
			hit[e.Type] = true
		}
	}
	if len(hit) == 0 {
		return nil
	}
	types := make([]model.EventType, 0, len(hit))
	for t := range hit {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}
