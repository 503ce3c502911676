// Package convert reshapes the delimited sentence table into JSONL, one
// object per row, for downstream training tools.
package convert

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Options select and rename columns during conversion.
type Options struct {
	TextCol   string   // column holding the text field (default "text")
	LabelCol  string   // optional label column, emitted as "label"
	DropCols  []string // columns to omit from the output objects
	KeepEmpty bool     // keep rows whose text is empty
}

// Run converts the TSV at inPath to JSONL at outPath, returning the number
// of objects written. A header without the requested text or label column
// is fatal before any output is written.
func Run(inPath, outPath string, opts Options) (int, error) {
	if opts.TextCol == "" {
		opts.TextCol = "text"
	}

	in, err := os.Open(inPath)
	if err != nil {
		return 0, fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	r := csv.NewReader(in)
	r.Comma = '\t'
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err == io.EOF {
		return 0, fmt.Errorf("no header found in %s", inPath)
	}
	if err != nil {
		return 0, fmt.Errorf("read header: %w", err)
	}

	textCol := indexOf(header, opts.TextCol)
	if textCol < 0 {
		return 0, fmt.Errorf("text column %q not in header %v", opts.TextCol, header)
	}
	labelCol := -1
	if opts.LabelCol != "" {
		labelCol = indexOf(header, opts.LabelCol)
		if labelCol < 0 {
			return 0, fmt.Errorf("label column %q not in header %v", opts.LabelCol, header)
		}
	}

	drop := make(map[string]bool, len(opts.DropCols))
	for _, c := range opts.DropCols {
		if c = strings.TrimSpace(c); c != "" {
			drop[c] = true
		}
	}

	out, err := os.Create(outPath)
	if err != nil {
		return 0, fmt.Errorf("create output: %w", err)
	}
	defer out.Close()

	enc := json.NewEncoder(out)
	wrote := 0
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return wrote, fmt.Errorf("read row: %w", err)
		}

		text := ""
		if textCol < len(row) {
			text = strings.TrimSpace(row[textCol])
		}
		if text == "" && !opts.KeepEmpty {
			continue
		}

		obj := map[string]interface{}{"text": text}
		if labelCol >= 0 {
			raw := ""
			if labelCol < len(row) {
				raw = strings.TrimSpace(row[labelCol])
			}
			// Labels are usually 0/1; anything else passes through verbatim.
			if n, err := strconv.Atoi(raw); err == nil {
				obj["label"] = n
			} else {
				obj["label"] = raw
			}
		}
		for i, name := range header {
			if i == textCol || i == labelCol || drop[name] || i >= len(row) {
				continue
			}
			obj[name] = row[i]
		}

		if err := enc.Encode(obj); err != nil {
			return wrote, fmt.Errorf("write object: %w", err)
		}
		wrote++
	}

	return wrote, nil
}

func indexOf(header []string, name string) int {
	for i, h := range header {
		if h == name {
			return i
		}
	}
	return -1
}
