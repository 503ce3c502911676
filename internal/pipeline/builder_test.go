package pipeline

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/fintext/bratsent/internal/model"
	"github.com/fintext/bratsent/internal/segment"
)

// segmenterFunc adapts a function to the segment.Segmenter interface, giving
// tests exact control over sentence boundaries.
type segmenterFunc func(text string) ([]segment.Span, error)

func (f segmenterFunc) Segment(text string) ([]segment.Span, error) { return f(text) }

func fixedSpans(spans ...segment.Span) segment.Segmenter {
	return segmenterFunc(func(string) ([]segment.Span, error) { return spans, nil })
}

func readTSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = '\t'
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	return rows
}

func TestBuilder_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	doc := "Profits rose sharply last year. By Jane Doe and John Smith"
	writeFile(t, dir, "doc1.txt", doc)
	writeFile(t, dir, "doc1.ann", "T1\tProfit 0 20\tProfits rose sharply\n")

	seg := fixedSpans(
		segment.Span{Start: 0, End: 31},
		segment.Span{Start: 32, End: 58},
	)

	out := filepath.Join(dir, "out.tsv")
	b := NewBuilder(model.BuildConfig{MinLen: 5, MaxChars: 500}, seg, false)
	stats, err := b.Run(dir, out)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if stats.Docs != 1 || stats.Sentences != 2 || stats.Rows != 2 {
		t.Errorf("Unexpected stats: %+v", stats)
	}

	rows := readTSV(t, out)
	want := [][]string{
		{"doc", "sent_id", "text", "y_any_event", "types"},
		{"doc1", "0", "Profits rose sharply last year.", "1", "Profit"},
		{"doc1", "1", "By Jane Doe and John Smith", "0", ""},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("Output rows = %v, want %v", rows, want)
	}
}

func TestBuilder_LabelInheritedBySubUnits(t *testing.T) {
	dir := t.TempDir()
	doc := "Profits rose strongly; turnover fell badly today."
	writeFile(t, dir, "d.txt", doc)
	// Entity overlaps only the first half of the sentence.
	writeFile(t, dir, "d.ann", "T1\tProfit 0 7\tProfits\n")

	seg := fixedSpans(segment.Span{Start: 0, End: len(doc)})

	out := filepath.Join(dir, "out.tsv")
	b := NewBuilder(model.BuildConfig{MinLen: 5, MaxChars: 500, ExtraSplit: true}, seg, false)
	if _, err := b.Run(dir, out); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	rows := readTSV(t, out)
	if len(rows) != 3 {
		t.Fatalf("Expected header plus 2 fragments, got %d rows", len(rows))
	}
	for _, row := range rows[1:] {
		if row[3] != "1" || row[4] != "Profit" {
			t.Errorf("Fragment %q should inherit label 1/Profit, got %s/%s", row[2], row[3], row[4])
		}
	}
	if rows[1][2] != "Profits rose strongly;" || rows[2][2] != "turnover fell badly today." {
		t.Errorf("Unexpected fragments: %q, %q", rows[1][2], rows[2][2])
	}
}

func TestBuilder_SentIDCountsEmittedUnits(t *testing.T) {
	dir := t.TempDir()
	doc := "Tiny. A much longer second sentence follows here."
	writeFile(t, dir, "d.txt", doc)
	writeFile(t, dir, "d.ann", "")

	// First sentence is below MinLen and produces no unit; the second
	// must still get index 0 because sent_id counts emitted rows.
	seg := fixedSpans(
		segment.Span{Start: 0, End: 5},
		segment.Span{Start: 6, End: len(doc)},
	)

	out := filepath.Join(dir, "out.tsv")
	b := NewBuilder(model.BuildConfig{MinLen: 10, MaxChars: 500}, seg, false)
	stats, err := b.Run(dir, out)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if stats.Sentences != 2 || stats.Rows != 1 {
		t.Errorf("Unexpected stats: %+v", stats)
	}

	rows := readTSV(t, out)
	if len(rows) != 2 {
		t.Fatalf("Expected header plus 1 row, got %d", len(rows))
	}
	if rows[1][1] != "0" {
		t.Errorf("Expected sent_id 0 for first emitted unit, got %s", rows[1][1])
	}
}

func TestBuilder_MultipleDocsSortedAndIndexedPerDoc(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.txt", "Turnover grew in the second half.")
	writeFile(t, dir, "b.ann", "T1\tTurnover 0 8\tTurnover\n")
	writeFile(t, dir, "a.txt", "Dividends were cut by the board.")
	writeFile(t, dir, "a.ann", "T1\tDividend 0 9\tDividends\n")

	seg := segmenterFunc(func(text string) ([]segment.Span, error) {
		return []segment.Span{{Start: 0, End: len(text)}}, nil
	})

	out := filepath.Join(dir, "out.tsv")
	b := NewBuilder(model.BuildConfig{MinLen: 5, MaxChars: 500}, seg, false)
	if _, err := b.Run(dir, out); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	rows := readTSV(t, out)
	if len(rows) != 3 {
		t.Fatalf("Expected header plus 2 rows, got %d", len(rows))
	}
	if rows[1][0] != "a" || rows[2][0] != "b" {
		t.Errorf("Expected docs in sorted order, got %s then %s", rows[1][0], rows[2][0])
	}
	if rows[1][1] != "0" || rows[2][1] != "0" {
		t.Error("Expected sent_id to restart per document")
	}
	if rows[1][4] != "Dividend" || rows[2][4] != "Turnover" {
		t.Errorf("Unexpected types: %s, %s", rows[1][4], rows[2][4])
	}
}

func TestBuilder_UnicodeSegmenterIntegration(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "d.txt", "Profits rose sharply last year. Turnover also grew strongly.")
	writeFile(t, dir, "d.ann", "T1\tProfit 0 20\tProfits rose sharply\n")

	seg, err := segment.New(segment.ModelUnicode)
	if err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(dir, "out.tsv")
	b := NewBuilder(model.BuildConfig{MinLen: 5, MaxChars: 500}, seg, false)
	stats, err := b.Run(dir, out)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if stats.Rows != 2 {
		t.Fatalf("Expected 2 rows, got %d", stats.Rows)
	}

	rows := readTSV(t, out)
	if rows[1][3] != "1" || rows[1][4] != "Profit" {
		t.Errorf("First sentence should be labeled Profit, got %v", rows[1])
	}
	if rows[2][3] != "0" || rows[2][4] != "" {
		t.Errorf("Second sentence should be unlabeled, got %v", rows[2])
	}
}
