package pipeline

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/fintext/bratsent/internal/model"
)

func defaultCleanConfig() model.CleanConfig {
	return model.CleanConfig{MinTokens: 4, MinChars: 12, MaxTokens: 80, DigitHeavy: true}
}

func writeTSV(t *testing.T, path string, lines ...string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestCleaner_FilterAndBoilerplate(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.tsv")
	out := filepath.Join(dir, "out.tsv")
	writeTSV(t, in,
		"doc\tsent_id\ttext\ty_any_event\ttypes",
		"d1\t0\tProfits rose sharply last year.\t1\tProfit",
		"d1\t1\tBy Jane Doe and John Smith\t0\t",
	)

	c := NewCleaner(defaultCleanConfig(), false)
	stats, err := c.Run(in, out)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if stats.InputRows != 3 {
		t.Errorf("Expected 3 input rows (header included), got %d", stats.InputRows)
	}
	if stats.AfterFilter != 1 || stats.AfterDedupe != 1 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.Reasons[model.ReasonBoilerplate] != 1 {
		t.Errorf("Expected 1 boilerplate rejection, got %d", stats.Reasons[model.ReasonBoilerplate])
	}
	if stats.Reasons[model.ReasonOK] != 1 {
		t.Errorf("Expected 1 ok row, got %d", stats.Reasons[model.ReasonOK])
	}

	rows := readTSV(t, out)
	want := [][]string{
		{"doc", "sent_id", "text", "y_any_event", "types"},
		{"d1", "0", "Profits rose sharply last year.", "1", "Profit"},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("Output rows = %v, want %v", rows, want)
	}
}

func TestCleaner_DedupeAfterNormalization(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.tsv")
	out := filepath.Join(dir, "out.tsv")
	// Rows 1 and 2 normalize to the same text (curly vs straight quotes,
	// extra spaces); only the first survives, attributed to the dedupe
	// counter rather than a filter reason.
	writeTSV(t, in,
		"doc\tsent_id\ttext\ty_any_event\ttypes",
		"d1\t0\tProfits “rose” sharply last year.\t1\tProfit",
		"d2\t0\tProfits \"rose\"  sharply last year.\t1\tProfit",
		"d3\t0\tTurnover grew in the second half.\t0\t",
	)

	c := NewCleaner(defaultCleanConfig(), false)
	stats, err := c.Run(in, out)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if stats.AfterFilter != 3 {
		t.Errorf("Expected all 3 rows to pass filters, got %d", stats.AfterFilter)
	}
	if stats.AfterDedupe != 2 || stats.Duplicates != 1 {
		t.Errorf("Expected 2 kept and 1 duplicate, got %+v", stats)
	}
	if stats.Reasons[model.ReasonOK] != 3 {
		t.Errorf("Duplicate should still be counted ok by the filter, got %d", stats.Reasons[model.ReasonOK])
	}

	rows := readTSV(t, out)
	if len(rows) != 3 {
		t.Fatalf("Expected header plus 2 rows, got %d", len(rows))
	}
	if rows[1][0] != "d1" {
		t.Errorf("First-seen row should win, got doc %s", rows[1][0])
	}
	if rows[1][2] != `Profits "rose" sharply last year.` {
		t.Errorf("Expected normalized text in output, got %q", rows[1][2])
	}
}

func TestCleaner_CaseSensitiveDedupe(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.tsv")
	// Mixed-case variants rather than a fully uppercased one: an all-caps
	// duplicate would be rejected as a header before dedupe sees it.
	writeTSV(t, in,
		"doc\tsent_id\ttext\ty_any_event\ttypes",
		"d1\t0\tProfits Rose Sharply Last Year.\t1\tProfit",
		"d2\t0\tprofits rose sharply last year.\t1\tProfit",
	)

	cfg := defaultCleanConfig()
	cfg.DedupeCaseSensitive = true
	c := NewCleaner(cfg, false)
	stats, err := c.Run(in, filepath.Join(dir, "out.tsv"))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if stats.AfterFilter != 2 {
		t.Fatalf("Both case variants should reach dedupe, got %+v", stats)
	}
	if stats.AfterDedupe != 2 || stats.Duplicates != 0 {
		t.Errorf("Case variants should both survive in case-sensitive mode: %+v", stats)
	}

	insensitive := NewCleaner(defaultCleanConfig(), false)
	stats, err = insensitive.Run(in, filepath.Join(dir, "out2.tsv"))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if stats.AfterDedupe != 1 || stats.Duplicates != 1 {
		t.Errorf("Case variants should collide in case-insensitive mode: %+v", stats)
	}
}

func TestCleaner_SecondRunKeepsEverything(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.tsv")
	writeTSV(t, in,
		"doc\tsent_id\ttext\ty_any_event\ttypes",
		"d1\t0\tProfits rose sharply last year.\t1\tProfit",
		"d1\t1\tProfits rose sharply last year.\t1\tProfit",
		"d2\t0\tTurnover grew in the second half.\t0\t",
		"d2\t1\tft.com\t0\t",
	)

	first := filepath.Join(dir, "clean1.tsv")
	c1 := NewCleaner(defaultCleanConfig(), false)
	if _, err := c1.Run(in, first); err != nil {
		t.Fatal(err)
	}

	second := filepath.Join(dir, "clean2.tsv")
	c2 := NewCleaner(defaultCleanConfig(), false)
	stats, err := c2.Run(first, second)
	if err != nil {
		t.Fatal(err)
	}

	if stats.KeptFraction() != 1.0 {
		t.Errorf("Second run of a clean corpus should keep everything, fraction = %.3f", stats.KeptFraction())
	}
	if !reflect.DeepEqual(readTSV(t, first), readTSV(t, second)) {
		t.Error("Second run should reproduce the first run's output")
	}
}

func TestCleaner_MissingTextColumnIsFatal(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.tsv")
	out := filepath.Join(dir, "out.tsv")
	writeTSV(t, in,
		"doc\tsent_id\tbody\ty_any_event\ttypes",
		"d1\t0\tProfits rose sharply last year.\t1\tProfit",
	)

	c := NewCleaner(defaultCleanConfig(), false)
	if _, err := c.Run(in, out); err != ErrNoTextColumn {
		t.Fatalf("Expected ErrNoTextColumn, got %v", err)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Error("No output should be written when the header check fails")
	}
}

func TestCleaner_ShortRowCountedNotFatal(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.tsv")
	out := filepath.Join(dir, "out.tsv")
	writeTSV(t, in,
		"doc\tsent_id\ttext\ty_any_event\ttypes",
		"d1\t0", // row ends before the text column
		"d1\t1\tProfits rose sharply last year.\t1\tProfit",
	)

	c := NewCleaner(defaultCleanConfig(), false)
	stats, err := c.Run(in, out)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if stats.Reasons[model.ReasonMissingTextCol] != 1 {
		t.Errorf("Expected 1 missing_text_col, got %d", stats.Reasons[model.ReasonMissingTextCol])
	}
	if stats.AfterDedupe != 1 {
		t.Errorf("Expected the valid row to survive, got %d", stats.AfterDedupe)
	}
}

func TestCleaner_BlankLineCountedMissingTextCol(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.tsv")
	out := filepath.Join(dir, "out.tsv")
	writeTSV(t, in,
		"doc\tsent_id\ttext\ty_any_event\ttypes",
		"d1\t0\tProfits rose sharply last year.\t1\tProfit",
		"",
		"d1\t1\tTurnover grew in the second half.\t0\t",
	)

	c := NewCleaner(defaultCleanConfig(), false)
	stats, err := c.Run(in, out)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if stats.InputRows != 4 {
		t.Errorf("Blank line should count toward input rows, got %d", stats.InputRows)
	}
	if stats.Reasons[model.ReasonMissingTextCol] != 1 {
		t.Errorf("Blank line should count as missing_text_col, got %d", stats.Reasons[model.ReasonMissingTextCol])
	}
	if stats.AfterDedupe != 2 {
		t.Errorf("Expected both real rows to survive, got %d", stats.AfterDedupe)
	}
}

func TestCleaner_EmptyInput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.tsv")
	out := filepath.Join(dir, "out.tsv")
	if err := os.WriteFile(in, nil, 0644); err != nil {
		t.Fatal(err)
	}

	c := NewCleaner(defaultCleanConfig(), false)
	stats, err := c.Run(in, out)
	if err != nil {
		t.Fatalf("Expected clean exit on empty input, got %v", err)
	}
	if stats.InputRows != 0 || stats.AfterFilter != 0 || stats.AfterDedupe != 0 {
		t.Errorf("Expected all-zero stats, got %+v", stats)
	}
	if stats.KeptFraction() != 0.0 {
		t.Errorf("Expected kept fraction 0.0, got %.3f", stats.KeptFraction())
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Error("No output should be written for empty input")
	}
}

func TestCleanStats_ReasonCountsDeterministic(t *testing.T) {
	stats := model.NewCleanStats()
	stats.Count(model.ReasonTooShort)
	stats.Count(model.ReasonTooShort)
	stats.Count(model.ReasonOK)
	stats.Count(model.ReasonBoilerplate)

	counts := stats.ReasonCounts()
	if counts[0].Reason != model.ReasonTooShort || counts[0].Count != 2 {
		t.Errorf("Expected too_short first, got %+v", counts[0])
	}
	// Ties broken by name.
	if counts[1].Reason != model.ReasonBoilerplate || counts[2].Reason != model.ReasonOK {
		t.Errorf("Expected name-ordered ties, got %+v", counts[1:])
	}
}
