// Package segment provides sentence-boundary detection over raw document
// text. Implementations produce ordered, non-overlapping character spans;
// everything downstream depends only on that contract, so models can be
// swapped without touching the pipeline.
package segment

import (
	"errors"
	"fmt"
)

// ErrUnknownModel is returned when the requested model identifier is not registered.
var ErrUnknownModel = errors.New("unknown segmentation model")

// Span is a half-open character interval [Start, End) into the segmented
// text. Offsets count characters (runes), matching the annotation offsets.
type Span struct {
	Start int
	End   int
}

// Segmenter splits raw document text into ordered, non-overlapping sentence
// spans covering the sentence-bearing regions of the text.
type Segmenter interface {
	Segment(text string) ([]Span, error)
}

// Model identifiers accepted by New.
const (
	ModelUnicode = "unicode"
)

// New returns the segmenter selected by the model identifier.
func New(modelName string) (Segmenter, error) {
	switch modelName {
	case ModelUnicode, "":
		return &UnicodeSegmenter{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownModel, modelName)
	}
}
