// Package pipeline drives the two dataset stages: build (segment, align,
// split) and clean (filter, dedupe). Documents are processed strictly
// sequentially; the orchestrator owns all mutable state.
package pipeline

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fintext/bratsent/internal/brat"
	"github.com/fintext/bratsent/internal/model"
	"github.com/fintext/bratsent/internal/segment"
	"github.com/fintext/bratsent/internal/split"
)

// Builder turns a directory of document/annotation pairs into the raw
// labeled sentence table.
type Builder struct {
	segmenter segment.Segmenter
	splitter  *split.Splitter
	verbose   bool
}

// NewBuilder creates a builder for the given configuration and segmenter.
func NewBuilder(cfg model.BuildConfig, seg segment.Segmenter, verbose bool) *Builder {
	return &Builder{
		segmenter: seg,
		splitter:  split.NewSplitter(cfg.MinLen, cfg.MaxChars, cfg.ExtraSplit),
		verbose:   verbose,
	}
}

// Run processes every pair under inputDir and writes the output table to
// outputPath. A document that cannot be read or segmented is skipped; only
// output-stream failures abort the run.
func (b *Builder) Run(inputDir, outputPath string) (*model.BuildStats, error) {
	pairs, err := DiscoverPairs(inputDir)
	if err != nil {
		return nil, fmt.Errorf("discover pairs: %w", err)
	}
	if b.verbose {
		fmt.Fprintf(os.Stderr, "paired docs: %d\n", len(pairs))
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return nil, fmt.Errorf("create output: %w", err)
	}
	defer out.Close()

	w := newTSVWriter(out)
	if err := w.Write(OutputHeader); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	stats := &model.BuildStats{}
	prog := newProgress(b.verbose, "pairs")
	for _, pair := range pairs {
		if err := b.processDoc(pair, w, stats); err != nil {
			return nil, fmt.Errorf("document %s: %w", pair.ID, err)
		}
		prog.Tick()
	}

	if err := out.Sync(); err != nil {
		return nil, fmt.Errorf("sync output: %w", err)
	}
	return stats, nil
}

// processDoc segments one document, labels each sentence against the
// annotation spans, splits it into units, and emits the rows.
func (b *Builder) processDoc(pair DocPair, w *tsvWriter, stats *model.BuildStats) error {
	raw, err := readDocument(pair.TextPath)
	if err != nil {
		b.warnf("skipping %s: %v", pair.ID, err)
		return nil
	}
	entSpans, err := brat.ParseAnnotationFile(pair.AnnPath)
	if err != nil {
		b.warnf("skipping %s: %v", pair.ID, err)
		return nil
	}
	sents, err := b.segmenter.Segment(raw)
	if err != nil {
		b.warnf("skipping %s: segment: %v", pair.ID, err)
		return nil
	}

	stats.Docs++
	runes := []rune(raw)
	sentID := 0
	for _, ss := range sents {
		stats.Sentences++

		// The label belongs to the original sentence span: evidence has
		// to occur within the sentence, not within a specific sub-unit.
		types := OverlappingTypes(ss.Start, ss.End, entSpans)
		label := "0"
		if len(types) > 0 {
			label = "1"
		}
		typesStr := model.TypesString(types)

		for _, piece := range b.splitter.Split(string(runes[ss.Start:ss.End])) {
			row := []string{pair.ID, strconv.Itoa(sentID), piece, label, typesStr}
			if err := w.Write(row); err != nil {
				return fmt.Errorf("write row: %w", err)
			}
			sentID++
			stats.Rows++
		}
	}
	return nil
}

func (b *Builder) warnf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Warning: "+format+"\n", args...)
}

// readDocument reads a raw document, replacing undecodable bytes instead of
// failing the pair.
func readDocument(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.ToValidUTF8(string(data), "�"), nil
}
