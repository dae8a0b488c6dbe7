package runtime_test

import (
	"context"
	"sync"

	"github.com/aretw0/guesser/pkg/domain"
)

// fakeAPI implements ports.GameAPI with scripted responses.
type fakeAPI struct {
	mu sync.Mutex

	check     func(ctx context.Context, guess string) (domain.Outcome, error)
	reportErr error
	next      func(ctx context.Context) (string, error)

	guesses   []string
	reports   []domain.RoundSummary
	nextCalls int
}

func (f *fakeAPI) CheckAnswer(ctx context.Context, guess string) (domain.Outcome, error) {
	f.mu.Lock()
	f.guesses = append(f.guesses, guess)
	check := f.check
	f.mu.Unlock()

	if check == nil {
		return domain.Outcome{Verdict: domain.VerdictContinue, RawResult: domain.ResultWrong}, nil
	}
	return check(ctx, guess)
}

func (f *fakeAPI) ReportScore(ctx context.Context, summary domain.RoundSummary) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reports = append(f.reports, summary)
	return f.reportErr
}

func (f *fakeAPI) NextRound(ctx context.Context) (string, error) {
	f.mu.Lock()
	f.nextCalls++
	next := f.next
	f.mu.Unlock()

	if next == nil {
		return "/game", nil
	}
	return next(ctx)
}

func (f *fakeAPI) Guesses() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.guesses...)
}

func (f *fakeAPI) Reports() []domain.RoundSummary {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.RoundSummary(nil), f.reports...)
}

func (f *fakeAPI) NextCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.nextCalls
}

// respond scripts a fixed sequence of outcomes.
func respond(outcomes ...domain.Outcome) func(context.Context, string) (domain.Outcome, error) {
	var mu sync.Mutex
	i := 0
	return func(context.Context, string) (domain.Outcome, error) {
		mu.Lock()
		defer mu.Unlock()
		o := outcomes[i]
		if i < len(outcomes)-1 {
			i++
		}
		return o, nil
	}
}

func wrong(wrongCount, remaining int) domain.Outcome {
	return domain.Outcome{
		Verdict:          domain.VerdictContinue,
		RawResult:        domain.ResultWrong,
		WrongCount:       wrongCount,
		HasWrongCount:    true,
		GuessesRemaining: remaining,
	}
}

func correct(answer string, wrongCount int) domain.Outcome {
	return domain.Outcome{
		Verdict:       domain.VerdictCorrect,
		RawResult:     "correct",
		Answer:        answer,
		WrongCount:    wrongCount,
		HasWrongCount: true,
	}
}
