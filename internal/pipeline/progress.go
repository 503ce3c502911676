package pipeline

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/time/rate"
)

// progress reports throughput to stderr at most once per second, so large
// corpora give periodic feedback without a line per row.
type progress struct {
	enabled bool
	every   rate.Sometimes
	count   int
	unit    string
}

func newProgress(enabled bool, unit string) *progress {
	return &progress{
		enabled: enabled,
		every:   rate.Sometimes{Interval: time.Second},
		unit:    unit,
	}
}

func (p *progress) Tick() {
	p.count++
	if !p.enabled {
		return
	}
	p.every.Do(func() {
		fmt.Fprintf(os.Stderr, "processed %d %s\n", p.count, p.unit)
	})
}
