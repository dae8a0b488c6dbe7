package ports

import (
	"context"

	"github.com/aretw0/guesser/pkg/domain"
)

// AnswerChecker performs the answer-check round-trip.
type AnswerChecker interface {
	// CheckAnswer sends one guess and blocks until the verdict arrives.
	// Transport and decode failures return an error wrapping domain.ErrNetwork,
	// never a partial Outcome. Implementations must not retry.
	CheckAnswer(ctx context.Context, guess string) (domain.Outcome, error)
}

// ScoreReporter records the outcome of a finished round.
type ScoreReporter interface {
	// ReportScore is best-effort: callers log failures and move on.
	ReportScore(ctx context.Context, summary domain.RoundSummary) error
}

// RoundIssuer hands out the location of the next round.
type RoundIssuer interface {
	// NextRound returns the route the host should navigate to.
	NextRound(ctx context.Context) (string, error)
}

// GameAPI groups the three server endpoints a round talks to.
type GameAPI interface {
	AnswerChecker
	ScoreReporter
	RoundIssuer
}
