package domain

// Result is the persisted outcome of a finished round.
type Result string

const (
	ResultWin  Result = "win"
	ResultLoss Result = "loss"
)

// RoundSummary is reported to the scoring endpoint once per round.
type RoundSummary struct {
	Result Result `json:"result"`
}

// ResultOf maps a terminal phase to its persisted result.
// Returns false for PhasePlaying.
func ResultOf(p Phase) (Result, bool) {
	switch p {
	case PhaseWon:
		return ResultWin, true
	case PhaseLost:
		return ResultLoss, true
	}
	return "", false
}
