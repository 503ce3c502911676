package model

import "sort"

// BuildStats accumulates counters for one build run.
type BuildStats struct {
	Docs      int // document pairs processed
	Sentences int // segmenter sentences considered
	Rows      int // output rows written
}

// CleanStats accumulates counters for one clean run.
type CleanStats struct {
	InputRows   int // total rows read, header included
	AfterFilter int // rows surviving the filter cascade
	AfterDedupe int // rows surviving deduplication (rows written)
	Duplicates  int // rows dropped as duplicates
	Reasons     map[Reason]int
}

// NewCleanStats returns a zeroed stats value with an initialized histogram.
func NewCleanStats() *CleanStats {
	return &CleanStats{Reasons: make(map[Reason]int)}
}

// Count attributes one row to the given filter reason.
func (s *CleanStats) Count(r Reason) {
	s.Reasons[r]++
}

// KeptFraction is rows kept after dedupe over data rows read (header excluded).
func (s *CleanStats) KeptFraction() float64 {
	if s.InputRows <= 1 {
		return 0.0
	}
	return float64(s.AfterDedupe) / float64(s.InputRows-1)
}

// ReasonCounts returns the histogram ordered by descending count, ties broken
// by reason name so summaries are deterministic.
func (s *CleanStats) ReasonCounts() []ReasonCount {
	out := make([]ReasonCount, 0, len(s.Reasons))
	for r, n := range s.Reasons {
		out = append(out, ReasonCount{Reason: r, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Reason < out[j].Reason
	})
	return out
}

// ReasonCount is one histogram entry.
type ReasonCount struct {
	Reason Reason
	Count  int
}
