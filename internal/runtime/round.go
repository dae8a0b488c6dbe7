package runtime

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/guesser/pkg/domain"
	"github.com/aretw0/guesser/pkg/ports"
	"github.com/google/uuid"
)

// Round is the controller of a single guessing round.
// It owns the round state and is the only writer of it; presenters only ever
// receive view updates.
type Round struct {
	id        string
	api       ports.GameAPI
	presenter ports.Presenter
	navigator ports.Navigator
	hooks     domain.LifecycleHooks
	logger    *slog.Logger

	fallbackRoute  string
	menuRoute      string
	persistTimeout time.Duration

	mu          sync.Mutex
	state       *domain.RoundState
	inFlight    bool
	nextPending bool
	wrongShown  int

	pending sync.WaitGroup
}

// NewRound creates the controller of a fresh round.
func NewRound(api ports.GameAPI, presenter ports.Presenter, navigator ports.Navigator, opts ...Option) *Round {
	r := &Round{
		id:             uuid.NewString(),
		api:            api,
		presenter:      presenter,
		navigator:      navigator,
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		fallbackRoute:  DefaultFallbackRoute,
		menuRoute:      DefaultMenuRoute,
		persistTimeout: DefaultPersistTimeout,
		state:          domain.NewRoundState(),
	}

	for _, opt := range opts {
		opt(r)
	}

	r.logger = r.logger.With("round_id", r.id)
	return r
}

// ID returns the round identifier used in logs and events.
func (r *Round) ID() string {
	return r.id
}

// Phase returns the current phase of the round.
func (r *Round) Phase() domain.Phase {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state.Phase()
}

// SubmitGuess sends one guess and applies the verdict.
//
// The guess is rejected without a network call when the round has ended
// (domain.ErrRoundEnded), when the trimmed text is empty (domain.ErrEmptyGuess), or
// while another guess is in flight (domain.ErrGuessInFlight).
//
// A failed round-trip is recovered here: the submit control is re-enabled, a
// retryable message is shown, and the returned error wraps domain.ErrNetwork.
func (r *Round) SubmitGuess(ctx context.Context, text string) (domain.Phase, error) {
	guess := strings.TrimSpace(text)

	r.mu.Lock()
	if r.state.Ended() {
		phase := r.state.Phase()
		r.mu.Unlock()
		return phase, domain.ErrRoundEnded
	}
	if guess == "" {
		r.mu.Unlock()
		return domain.PhasePlaying, domain.ErrEmptyGuess
	}
	if r.inFlight {
		r.mu.Unlock()
		return domain.PhasePlaying, domain.ErrGuessInFlight
	}
	r.inFlight = true
	r.presenter.SetSubmitEnabled(false)
	r.mu.Unlock()

	r.logger.Debug("submitting guess", "guess", guess)
	if r.hooks.OnGuess != nil {
		r.hooks.OnGuess(ctx, &domain.GuessEvent{EventBase: r.event(domain.EventGuess), Guess: guess})
	}

	outcome, err := r.api.CheckAnswer(ctx, guess)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.inFlight = false

	if err != nil {
		if !errors.Is(err, domain.ErrNetwork) {
			err = fmt.Errorf("%w: %v", domain.ErrNetwork, err)
		}
		r.logger.Warn("answer check failed", "error", err)
		r.presenter.SetFeedback(msgNetworkError, domain.SeverityError)
		r.presenter.SetSubmitEnabled(true)
		if r.hooks.OnNetworkError != nil {
			r.hooks.OnNetworkError(ctx, &domain.ErrorEvent{EventBase: r.event(domain.EventNetworkError), Err: err})
		}
		return r.state.Phase(), fmt.Errorf("submit guess: %w", err)
	}

	if r.hooks.OnVerdict != nil {
		r.hooks.OnVerdict(ctx, &domain.VerdictEvent{EventBase: r.event(domain.EventVerdict), Outcome: outcome})
	}
	return r.apply(ctx, outcome), nil
}

// apply runs the plan of an outcome. Caller holds r.mu.
func (r *Round) apply(ctx context.Context, o domain.Outcome) domain.Phase {
	if o.Verdict == domain.VerdictContinue && !o.Recognized() {
		r.logger.Warn("unrecognized verdict, round continues", "result", o.RawResult)
	}

	plan := Interpret(o, r.wrongShown)

	if plan.Hint != "" {
		r.presenter.RevealHint(plan.Hint)
	}

	if plan.UpdateCounter {
		if plan.WrongCount >= r.wrongShown {
			r.wrongShown = plan.WrongCount
			r.presenter.SetWrongCount(plan.WrongCount)
		} else {
			r.logger.Debug("ignoring decreasing wrong count", "shown", r.wrongShown, "received", plan.WrongCount)
		}
	}

	if !plan.Next.Ended() {
		r.presenter.SetFeedback(plan.Feedback, domain.SeverityWrong)
		r.presenter.ResetInput()
		r.presenter.SetSubmitEnabled(true)
		return domain.PhasePlaying
	}

	if err := r.state.End(plan.Next); err != nil {
		// Only reachable if the in-flight guard was bypassed.
		r.logger.Error("round already ended", "error", err)
		return r.state.Phase()
	}

	r.presenter.SetInputEnabled(false)
	r.presenter.SetSubmitEnabled(false)
	r.presenter.ShowResultOverlay(*plan.Overlay)

	r.logger.Info("round ended", "result", plan.Persist, "answer", o.Answer, "wrong_count", r.wrongShown)
	if r.hooks.OnRoundEnd != nil {
		r.hooks.OnRoundEnd(ctx, &domain.RoundEndEvent{
			EventBase:  r.event(domain.EventRoundEnd),
			Result:     plan.Persist,
			WrongCount: r.wrongShown,
		})
	}

	r.persist(ctx, plan.Persist)
	return plan.Next
}

// persist fires the score report in the background.
// It is detached from the caller's cancellation and bounded by its own timeout.
func (r *Round) persist(ctx context.Context, result domain.Result) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.persistTimeout)

	r.pending.Add(1)
	go func() {
		defer r.pending.Done()
		defer cancel()

		if err := r.api.ReportScore(ctx, domain.RoundSummary{Result: result}); err != nil {
			r.logger.Warn("score persistence failed", "result", result, "error", err)
			if r.hooks.OnPersistFailure != nil {
				r.hooks.OnPersistFailure(ctx, &domain.ErrorEvent{EventBase: r.event(domain.EventPersistFailure), Err: err})
			}
			return
		}
		r.logger.Debug("score persisted", "result", result)
	}()
}

// Wait blocks until every best-effort call issued by the round has settled.
func (r *Round) Wait() {
	r.pending.Wait()
}

func (r *Round) event(t domain.EventType) domain.EventBase {
	return domain.EventBase{
		Timestamp: time.Now(),
		Type:      t,
		RoundID:   r.id,
	}
}
