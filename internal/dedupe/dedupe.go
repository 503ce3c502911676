// Package dedupe suppresses duplicate output rows across one pipeline run.
package dedupe

import (
	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/text/cases"
)

// Deduplicator tracks previously seen keys. Keys are the normalized unit
// text, case-folded unless case-sensitive mode is selected. The set grows
// for the lifetime of one run; there is no eviction.
type Deduplicator struct {
	seen          *gocache.Cache
	caseSensitive bool
	folder        cases.Caser
}

// New creates a deduplicator.
func New(caseSensitive bool) *Deduplicator {
	return &Deduplicator{
		seen:          gocache.New(gocache.NoExpiration, 0),
		caseSensitive: caseSensitive,
		folder:        cases.Fold(),
	}
}

// Key derives the dedupe key for already-normalized text.
func (d *Deduplicator) Key(norm string) string {
	if d.caseSensitive {
		return norm
	}
	return d.folder.String(norm)
}

// Seen records the key for norm and reports whether it was already present.
// First occurrence wins: the first call for a given key returns false and
// every later call returns true.
func (d *Deduplicator) Seen(norm string) bool {
	err := d.seen.Add(d.Key(norm), struct{}{}, gocache.NoExpiration)
	return err != nil
}

// Len returns the number of distinct keys recorded so far.
func (d *Deduplicator) Len() int {
	return d.seen.ItemCount()
}
