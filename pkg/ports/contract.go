package ports

import (
	"testing"

	"github.com/aretw0/guesser/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunPresenterContract runs a suite of tests to verify that a ViewPresenter implementation
// adheres to the defined interface contract. newPresenter must return a fresh presenter
// for every call.
func RunPresenterContract(t *testing.T, newPresenter func() ViewPresenter) {
	t.Run("Initial View", func(t *testing.T) {
		view := newPresenter().View()
		assert.True(t, view.InputEnabled)
		assert.True(t, view.SubmitEnabled)
		assert.True(t, view.NextEnabled)
		assert.False(t, view.HintVisible)
		assert.False(t, view.FeedbackVisible)
		assert.Nil(t, view.Overlay)
	})

	t.Run("Reveal Hint Is Idempotent", func(t *testing.T) {
		p := newPresenter()
		p.RevealHint("starts with P")
		p.RevealHint("starts with P")

		view := p.View()
		assert.True(t, view.HintVisible)
		assert.Equal(t, "starts with P", view.Hint)
	})

	t.Run("Feedback", func(t *testing.T) {
		p := newPresenter()
		p.SetFeedback("Not quite! 2 guesses remaining.", domain.SeverityWrong)

		view := p.View()
		assert.True(t, view.FeedbackVisible)
		assert.Equal(t, "Not quite! 2 guesses remaining.", view.Feedback)
		assert.Equal(t, domain.SeverityWrong, view.FeedbackSeverity)
	})

	t.Run("Controls", func(t *testing.T) {
		p := newPresenter()
		p.SetInputEnabled(false)
		p.SetSubmitEnabled(false)
		p.SetNextEnabled(false)

		view := p.View()
		assert.False(t, view.InputEnabled)
		assert.False(t, view.SubmitEnabled)
		assert.False(t, view.NextEnabled)

		p.SetSubmitEnabled(true)
		assert.True(t, p.View().SubmitEnabled)
	})

	t.Run("Reset Input", func(t *testing.T) {
		p := newPresenter()
		p.ResetInput()
		p.ResetInput()
		assert.Equal(t, 2, p.View().InputResets)
	})

	t.Run("Result Overlay", func(t *testing.T) {
		p := newPresenter()
		overlay := domain.Overlay{
			Result:     domain.ResultWin,
			Icon:       "✓",
			Title:      "You got it!",
			AnswerLine: "The answer was: PARIS  (2 wrong guesses)",
		}
		p.ShowResultOverlay(overlay)
		p.ShowResultOverlay(overlay)

		view := p.View()
		require.NotNil(t, view.Overlay)
		assert.Equal(t, overlay, *view.Overlay)
	})

	t.Run("Wrong Count", func(t *testing.T) {
		p := newPresenter()
		p.SetWrongCount(3)
		assert.Equal(t, 3, p.View().WrongCount)
	})
}
