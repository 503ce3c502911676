// Package brat parses BRAT standoff annotation files into typed entity spans.
package brat

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fintext/bratsent/internal/model"
)

// ParseAnnotations reads a BRAT .ann record set and returns the entity spans
// whose type belongs to the recognized event-type set. Discontinuous mentions
// ("start end;start end") yield one span per offset pair.
//
// Malformed lines are skipped rather than reported: the corpora this format
// comes from carry hand-edited annotation files, and a bad record must not
// sink the document.
func ParseAnnotations(r io.Reader) ([]model.EntitySpan, error) {
	var spans []model.EntitySpan

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		// Entity records carry a T-prefixed id; ignore relations, events, notes.
		if !strings.HasPrefix(line, "T") {
			continue
		}
		parts := strings.Split(line, "\t")
		if len(parts) < 2 {
			continue
		}
		spec := parts[1]
		firstSpace := strings.IndexByte(spec, ' ')
		if firstSpace <= 0 {
			continue
		}
		entType := spec[:firstSpace]
		if !model.KnownEventType(entType) {
			continue
		}
		for _, chunk := range strings.Split(strings.TrimSpace(spec[firstSpace+1:]), ";") {
			nums := strings.Fields(chunk)
			if len(nums) != 2 {
				continue
			}
			start, err := strconv.Atoi(nums[0])
			if err != nil {
				continue
			}
			end, err := strconv.Atoi(nums[1])
			if err != nil {
				continue
			}
			if end > start {
				spans = append(spans, model.EntitySpan{
					Type:  model.EventType(entType),
					Start: start,
					End:   end,
				})
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return spans, nil
}

// ParseAnnotationFile parses the annotation file at path. Bytes that do not
// decode as UTF-8 are replaced rather than treated as fatal.
func ParseAnnotationFile(path string) ([]model.EntitySpan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseAnnotations(strings.NewReader(strings.ToValidUTF8(string(data), "�")))
}
