// Package filter implements the quality heuristics that decide whether a
// candidate unit looks like a usable training sentence.
package filter

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/fintext/bratsent/internal/model"
	"github.com/fintext/bratsent/internal/textnorm"
)

// Options are the filter thresholds and toggles.
type Options struct {
	MinTokens  int
	MinChars   int
	MaxTokens  int
	DigitHeavy bool // enable the digit-heavy rejection rule
}

// DefaultOptions mirrors model.DefaultConfig().Clean.
func DefaultOptions() Options {
	return Options{MinTokens: 4, MinChars: 12, MaxTokens: 80, DigitHeavy: true}
}

// candidate is one normalized text under evaluation, with its token split
// computed once for the whole cascade.
type candidate struct {
	text   string
	chars  int
	tokens []string
}

// rule is one cascade entry: reject with reason when match returns true.
type rule struct {
	reason model.Reason
	match  func(c candidate) bool
}

// Filter is the ordered rule cascade. Rule order is part of the contract:
// a text failing several rules is attributed to the earliest one.
type Filter struct {
	opts Options

	urlRE           *regexp.Regexp
	emailRE         *regexp.Regexp
	siteLinkRE      *regexp.Regexp
	bylineRE        *regexp.Regexp
	addlReportingRE *regexp.Regexp
	seeLexRE        *regexp.Regexp
	dayRE           *regexp.Regexp
	allCapsRE       *regexp.Regexp

	rules []rule
}

// New compiles a filter with the given options. Each Filter owns its own
// compiled patterns and carries no process-wide state, so independent
// invocations never interfere.
func New(opts Options) *Filter {
	f := &Filter{
		opts:            opts,
		urlRE:           regexp.MustCompile(`(?i)(https?://|www\.)\S+`),
		emailRE:         regexp.MustCompile(`(?i)\b[\w.-]+@[\w.-]+\.\w+\b`),
		siteLinkRE:      regexp.MustCompile(`(?i)\b(ft\.com|www\.ft\.com)\b`),
		bylineRE:        regexp.MustCompile(`(?i)^\s*by\s+[A-Z][A-Za-z.\- ]+(and\s+[A-Z][A-Za-z.\- ]+)?\s*$`),
		addlReportingRE: regexp.MustCompile(`(?i)^\s*additional reporting by\b`),
		seeLexRE:        regexp.MustCompile(`(?i)^\s*see\s+lex\b`),
		dayRE:           regexp.MustCompile(`(?i)^\s*(monday|tuesday|wednesday|thursday|friday|saturday|sunday|tomorrow|today|yesterday)\s*$`),
		allCapsRE:       regexp.MustCompile(`^[A-Z0-9][A-Z0-9 &/\-,'.]{2,}$`),
	}
	f.rules = []rule{
		{model.ReasonEmpty, func(c candidate) bool {
			return c.text == ""
		}},
		{model.ReasonTooShort, func(c candidate) bool {
			return c.chars < f.opts.MinChars
		}},
		{model.ReasonURLOrEmail, func(c candidate) bool {
			return f.urlRE.MatchString(c.text) ||
				f.emailRE.MatchString(c.text) ||
				f.siteLinkRE.MatchString(c.text)
		}},
		{model.ReasonBoilerplate, func(c candidate) bool {
			return f.bylineRE.MatchString(c.text) ||
				f.addlReportingRE.MatchString(c.text) ||
				f.seeLexRE.MatchString(c.text) ||
				f.dayRE.MatchString(c.text)
		}},
		{model.ReasonAllCapsHeader, func(c candidate) bool {
			return f.allCapsRE.MatchString(c.text) && c.text == strings.ToUpper(c.text)
		}},
		{model.ReasonDigitHeavy, func(c candidate) bool {
			return f.opts.DigitHeavy && isDigitHeavy(c.text, c.chars)
		}},
		// Token-count minimum ranks below the character minimum but shares
		// its reason: both describe the same defect.
		{model.ReasonTooShort, func(c candidate) bool {
			return len(c.tokens) < f.opts.MinTokens
		}},
		{model.ReasonTooLong, func(c candidate) bool {
			return len(c.tokens) > f.opts.MaxTokens
		}},
	}
	return f
}

// Check normalizes text and runs it through the cascade, returning the
// normalized form and the verdict.
func (f *Filter) Check(text string) (string, model.Verdict) {
	t := textnorm.Normalize(text)
	c := candidate{text: t, chars: utf8.RuneCountInString(t), tokens: strings.Fields(t)}

	for _, r := range f.rules {
		if r.match(c) {
			return t, model.Verdict{Accept: false, Reason: r.reason}
		}
	}
	return t, model.Verdict{Accept: true, Reason: model.ReasonOK}
}

// isDigitHeavy flags numeric-heavy lines (tables, price listings):
// at least 8 digits and more than a quarter of the characters numeric.
func isDigitHeavy(text string, chars int) bool {
	if chars == 0 {
		return false
	}
	digits := 0
	for _, r := range text {
		if unicode.IsDigit(r) {
			digits++
		}
	}
	if digits < 8 {
		return false
	}
	return float64(digits)/float64(chars) > 0.25
}
