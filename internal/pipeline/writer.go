package pipeline

import (
	"encoding/csv"
	"io"
)

// OutputHeader is the schema of the delimited output table.
var OutputHeader = []string{"doc", "sent_id", "text", "y_any_event", "types"}

// tsvWriter writes tab-separated rows, flushing after every row so an
// interrupted run leaves a valid partial table with no torn rows.
type tsvWriter struct {
	w *csv.Writer
}

func newTSVWriter(out io.Writer) *tsvWriter {
	w := csv.NewWriter(out)
	w.Comma = '\t'
	return &tsvWriter{w: w}
}

func (t *tsvWriter) Write(row []string) error {
	if err := t.w.Write(row); err != nil {
		return err
	}
	t.w.Flush()
	return t.w.Error()
}
