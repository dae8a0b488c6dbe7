package ports

import "github.com/aretw0/guesser/pkg/domain"

// Presenter abstracts the visible client state of a round.
// Every operation is idempotent and may be invoked again with the same arguments.
// Hints and overlays are shown, never hidden, until the host navigates away.
type Presenter interface {
	// RevealHint shows the hint panel with the given text.
	RevealHint(text string)

	// SetWrongCount updates the wrong-guess counter.
	SetWrongCount(n int)

	// SetFeedback shows the feedback banner with a severity.
	SetFeedback(text string, severity domain.Severity)

	// SetInputEnabled toggles the guess input.
	SetInputEnabled(enabled bool)

	// SetSubmitEnabled toggles the submit control.
	SetSubmitEnabled(enabled bool)

	// ResetInput clears the guess input and gives it focus.
	ResetInput()

	// ShowResultOverlay shows the end-of-round card.
	ShowResultOverlay(overlay domain.Overlay)

	// SetNextEnabled toggles the next-round control of the overlay.
	SetNextEnabled(enabled bool)
}

// ViewPresenter is a Presenter that can report what it currently shows.
type ViewPresenter interface {
	Presenter
	View() domain.View
}
