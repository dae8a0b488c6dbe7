package runtime

import "github.com/aretw0/guesser/pkg/domain"

// Plan is the set of view changes produced by a single outcome.
// The controller applies it in a fixed order: hint, counter, feedback or overlay,
// then persistence.
type Plan struct {
	// Next is the phase the round moves to.
	Next domain.Phase

	// Hint is revealed when non-empty.
	Hint string

	// WrongCount is applied to the counter when UpdateCounter is true.
	WrongCount    int
	UpdateCounter bool

	// Feedback is shown only while the round keeps going.
	Feedback string

	// Overlay and Persist are set only for terminal phases.
	Overlay *domain.Overlay
	Persist domain.Result
}

// Interpret maps an outcome onto the round state machine.
// shownWrong is the counter value currently on screen. The overlay never reports
// fewer wrong guesses than that, matching the counter which only moves up.
func Interpret(o domain.Outcome, shownWrong int) Plan {
	plan := Plan{
		WrongCount:    o.WrongCount,
		UpdateCounter: o.HasWrongCount,
	}

	count := shownWrong
	if o.HasWrongCount {
		count = max(shownWrong, o.WrongCount)
	}

	switch o.Verdict {
	case domain.VerdictCorrect:
		plan.Next = domain.PhaseWon
		plan.Overlay = overlayFor(domain.ResultWin, o.Answer, count)
		plan.Persist = domain.ResultWin

	case domain.VerdictLoss:
		plan.Next = domain.PhaseLost
		if o.RevealsHint() {
			plan.Hint = o.Hint
		}
		plan.Overlay = overlayFor(domain.ResultLoss, o.Answer, count)
		plan.Persist = domain.ResultLoss

	default:
		plan.Next = domain.PhasePlaying
		if o.RevealsHint() {
			plan.Hint = o.Hint
		}
		plan.Feedback = RemainingFeedback(o.GuessesRemaining)
	}

	return plan
}

func overlayFor(result domain.Result, answer string, wrongGuesses int) *domain.Overlay {
	overlay := &domain.Overlay{
		Result:     result,
		AnswerLine: AnswerLine(answer, wrongGuesses),
	}
	if result == domain.ResultWin {
		overlay.Icon = "✓"
		overlay.Title = "You got it!"
	} else {
		overlay.Icon = "✗"
		overlay.Title = "Better luck next time!"
	}
	return overlay
}
