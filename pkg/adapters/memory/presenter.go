package memory

import (
	"sync"

	"github.com/aretw0/guesser/pkg/domain"
)

// Presenter implements ports.Presenter as an in-memory view model.
// Safe for concurrent use.
type Presenter struct {
	view domain.View
	mu   sync.RWMutex
}

// NewPresenter creates a presenter showing a freshly loaded round.
func NewPresenter() *Presenter {
	return &Presenter{view: domain.NewView()}
}

func (p *Presenter) RevealHint(text string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.view.HintVisible = true
	p.view.Hint = text
}

func (p *Presenter) SetWrongCount(n int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.view.WrongCount = n
}

func (p *Presenter) SetFeedback(text string, severity domain.Severity) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.view.FeedbackVisible = true
	p.view.Feedback = text
	p.view.FeedbackSeverity = severity
}

func (p *Presenter) SetInputEnabled(enabled bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.view.InputEnabled = enabled
}

func (p *Presenter) SetSubmitEnabled(enabled bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.view.SubmitEnabled = enabled
}

func (p *Presenter) ResetInput() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.view.InputResets++
}

func (p *Presenter) ShowResultOverlay(overlay domain.Overlay) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.view.Overlay = &overlay
}

func (p *Presenter) SetNextEnabled(enabled bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.view.NextEnabled = enabled
}

// View returns a copy of the current view, so callers can't mutate it by pointer.
func (p *Presenter) View() domain.View {
	p.mu.RLock()
	defer p.mu.RUnlock()

	ret := p.view
	if p.view.Overlay != nil {
		overlay := *p.view.Overlay
		ret.Overlay = &overlay
	}
	return ret
}
