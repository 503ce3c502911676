package pipeline

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fintext/bratsent/internal/dedupe"
	"github.com/fintext/bratsent/internal/filter"
	"github.com/fintext/bratsent/internal/model"
)

// ErrNoTextColumn is returned when the input table's header lacks the
// required "text" column. This is the only condition that aborts a clean
// run; it is detected before any output is written.
var ErrNoTextColumn = errors.New(`required "text" column not found in header`)

// textColumn is the header name the cleaner keys on.
const textColumn = "text"

// Cleaner filters and deduplicates a raw sentence table.
type Cleaner struct {
	filter  *filter.Filter
	dedupe  *dedupe.Deduplicator
	verbose bool
}

// NewCleaner creates a cleaner for the given configuration.
func NewCleaner(cfg model.CleanConfig, verbose bool) *Cleaner {
	return &Cleaner{
		filter: filter.New(filter.Options{
			MinTokens:  cfg.MinTokens,
			MinChars:   cfg.MinChars,
			MaxTokens:  cfg.MaxTokens,
			DigitHeavy: cfg.DigitHeavy,
		}),
		dedupe:  dedupe.New(cfg.DedupeCaseSensitive),
		verbose: verbose,
	}
}

// Run streams inPath through the filter cascade and the deduplicator,
// writing surviving rows (with normalized text) to outPath. An empty input
// yields an all-zero summary and no output file.
//
// Rows are parsed one physical line at a time. The build stage normalizes
// whitespace out of every field, so a record never spans lines; per-line
// parsing lets blank and malformed lines be counted instead of silently
// skipped by the reader.
func (c *Cleaner) Run(inPath, outPath string) (*model.CleanStats, error) {
	in, err := os.Open(inPath)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	stats := model.NewCleanStats()

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("read header: %w", err)
		}
		return stats, nil
	}
	header, err := parseRow(sc.Text())
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	stats.InputRows++ // header is counted in the input total

	textCol := -1
	for i, name := range header {
		if name == textColumn {
			textCol = i
			break
		}
	}
	if textCol < 0 {
		return nil, ErrNoTextColumn
	}

	out, err := os.Create(outPath)
	if err != nil {
		return nil, fmt.Errorf("create output: %w", err)
	}
	defer out.Close()

	w := newTSVWriter(out)
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	prog := newProgress(c.verbose, "rows")
	for sc.Scan() {
		stats.InputRows++
		prog.Tick()

		row, err := parseRow(sc.Text())
		if err != nil {
			// A malformed row is a row-level defect; the run continues.
			continue
		}
		if textCol >= len(row) {
			// Blank lines land here too: they parse to an empty row.
			stats.Count(model.ReasonMissingTextCol)
			continue
		}

		norm, verdict := c.filter.Check(row[textCol])
		stats.Count(verdict.Reason)
		if !verdict.Accept {
			continue
		}
		stats.AfterFilter++

		if c.dedupe.Seen(norm) {
			stats.Duplicates++
			continue
		}
		stats.AfterDedupe++

		row[textCol] = norm
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write row: %w", err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}

	if err := out.Sync(); err != nil {
		return nil, fmt.Errorf("sync output: %w", err)
	}
	return stats, nil
}

// parseRow parses one physical line as a single tab-separated record.
// A blank line yields an empty row.
func parseRow(line string) ([]string, error) {
	r := csv.NewReader(strings.NewReader(line))
	r.Comma = '\t'
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	row, err := r.Read()
	if err == io.EOF {
		return nil, nil
	}
	return row, err
}
