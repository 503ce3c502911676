package model

// Reason classifies why the filter cascade rejected (or accepted) a unit.
type Reason string

const (
	ReasonEmpty          Reason = "empty"
	ReasonTooShort       Reason = "too_short"
	ReasonURLOrEmail     Reason = "url_or_email"
	ReasonBoilerplate    Reason = "boilerplate"
	ReasonAllCapsHeader  Reason = "allcaps_header"
	ReasonDigitHeavy     Reason = "digit_heavy"
	ReasonTooLong        Reason = "too_long"
	ReasonMissingTextCol Reason = "missing_text_col"
	ReasonOK             Reason = "ok"
)

// Verdict is the outcome of running one candidate unit through the filter
// cascade. Exactly one reason is attributed: the first rule that rejects,
// or ReasonOK when every rule passes.
type Verdict struct {
	Accept bool
	Reason Reason
}
