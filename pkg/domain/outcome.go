package domain

// Verdict is the server's classification of a guess.
type Verdict string

const (
	VerdictCorrect  Verdict = "correct"
	VerdictLoss     Verdict = "loss"
	VerdictContinue Verdict = "continue"
)

// ResultWrong is the result string the reference server sends for a wrong,
// non-terminal guess.
const ResultWrong = "wrong"

// ParseVerdict maps a raw result string to a Verdict.
// Anything other than "correct" or "loss" keeps the round going.
func ParseVerdict(raw string) Verdict {
	switch Verdict(raw) {
	case VerdictCorrect:
		return VerdictCorrect
	case VerdictLoss:
		return VerdictLoss
	default:
		return VerdictContinue
	}
}

// Outcome is the decoded answer-check response.
// Every field is populated; absent payload fields take the documented defaults.
type Outcome struct {
	Verdict Verdict

	// RawResult is the result string exactly as the server sent it.
	RawResult string

	// Answer is only sent when the round ends. Empty when absent.
	Answer string

	// WrongCount is meaningful only when HasWrongCount is true.
	// An absent counter leaves the displayed value unchanged.
	WrongCount    int
	HasWrongCount bool

	// GuessesRemaining defaults to 0.
	GuessesRemaining int

	ShowHint bool
	Hint     string
}

// RevealsHint reports whether the outcome asks for the hint to be shown.
func (o Outcome) RevealsHint() bool {
	return o.ShowHint && o.Hint != ""
}

// Recognized reports whether the raw result is one the protocol defines.
func (o Outcome) Recognized() bool {
	switch o.RawResult {
	case string(VerdictCorrect), string(VerdictLoss), string(VerdictContinue), ResultWrong:
		return true
	}
	return false
}
