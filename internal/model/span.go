package model

import (
	"sort"
	"strings"
)

// EventType is one label from the closed vocabulary of financial-event
// categories used in the source annotations.
type EventType string

const (
	EventProfit            EventType = "Profit"
	EventTurnover          EventType = "Turnover"
	EventSalesVolume       EventType = "SalesVolume"
	EventShareRepurchase   EventType = "ShareRepurchase"
	EventDebt              EventType = "Debt"
	EventQuarterlyResults  EventType = "QuarterlyResults"
	EventTargetPrice       EventType = "TargetPrice"
	EventBuyRating         EventType = "BuyRating"
	EventDividend          EventType = "Dividend"
	EventMergerAcquisition EventType = "MergerAcquisition"
)

// eventTypes is the closed set; annotation records of any other type are ignored.
var eventTypes = map[EventType]bool{
	EventProfit:            true,
	EventTurnover:          true,
	EventSalesVolume:       true,
	EventShareRepurchase:   true,
	EventDebt:              true,
	EventQuarterlyResults:  true,
	EventTargetPrice:       true,
	EventBuyRating:         true,
	EventDividend:          true,
	EventMergerAcquisition: true,
}

// KnownEventType reports whether s names one of the recognized event types.
func KnownEventType(s string) bool {
	return eventTypes[EventType(s)]
}

// EntitySpan is one annotated entity mention: a half-open character interval
// [Start, End) into the document's raw text. A discontinuous mention
// contributes one EntitySpan per offset pair; spans are never merged.
type EntitySpan struct {
	Type  EventType
	Start int
	End   int
}

// SentenceSpan is one segmenter-produced sentence: a half-open character
// interval [Start, End) into the document identified by Doc.
type SentenceSpan struct {
	Doc   string
	Start int
	End   int
}

// Unit is one output row: a normalized sentence-like text fragment with the
// label inherited from its source sentence. SentID is a per-document counter
// assigned in emission order, not the source sentence index.
type Unit struct {
	Doc    string
	SentID int
	Text   string
	Label  bool
	Types  []EventType
}

// TypesString joins event types as the sorted, pipe-delimited form used in
// the output table ("" when the set is empty).
func TypesString(types []EventType) string {
	if len(types) == 0 {
		return ""
	}
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	sort.Strings(names)
	return strings.Join(names, "|")
}
