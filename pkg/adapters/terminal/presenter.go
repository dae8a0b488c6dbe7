// Package terminal renders a round on a character terminal.
package terminal

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/aretw0/guesser/internal/presentation/tui"
	"github.com/aretw0/guesser/pkg/adapters/memory"
	"github.com/aretw0/guesser/pkg/domain"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

const cardWidth = 72

// Presenter implements ports.Presenter by writing changes to an io.Writer.
// It keeps the view model in memory so repeated calls print nothing new.
type Presenter struct {
	view   *memory.Presenter
	w      io.Writer
	out    *termenv.Output
	render func(string) (string, error)
	mu     sync.Mutex
}

// Option configures a Presenter.
type Option func(*Presenter)

// WithRenderer sets the markdown renderer used for the result card.
// Pass nil to print the card as plain text.
func WithRenderer(render func(string) (string, error)) Option {
	return func(p *Presenter) {
		p.render = render
	}
}

// New creates a presenter writing to w. The result card is rendered with glamour
// when w is a terminal.
func New(w io.Writer, opts ...Option) *Presenter {
	p := &Presenter{
		view: memory.NewPresenter(),
		w:    w,
		out:  termenv.NewOutput(w),
	}
	if IsTerminal(w) {
		p.render = tui.NewRenderer(cardWidth)
	}

	for _, opt := range opts {
		opt(p)
	}
	return p
}

// IsTerminal reports whether w is attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}

func (p *Presenter) RevealHint(text string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	before := p.view.View()
	p.view.RevealHint(text)
	if before.HintVisible && before.Hint == text {
		return
	}
	p.println(p.out.String("Hint: " + text).Foreground(p.out.Color("#38bdf8")).String())
}

func (p *Presenter) SetWrongCount(n int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	before := p.view.View()
	p.view.SetWrongCount(n)
	if before.WrongCount == n {
		return
	}
	p.println(p.out.String(fmt.Sprintf("Wrong guesses: %d", n)).Faint().String())
}

func (p *Presenter) SetFeedback(text string, severity domain.Severity) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.view.SetFeedback(text, severity)
	color := "#fbbf24"
	if severity == domain.SeverityError {
		color = "#f87171"
	}
	p.println(p.out.String(text).Foreground(p.out.Color(color)).String())
}

func (p *Presenter) SetInputEnabled(enabled bool) {
	p.view.SetInputEnabled(enabled)
}

func (p *Presenter) SetSubmitEnabled(enabled bool) {
	p.view.SetSubmitEnabled(enabled)
}

// ResetInput has nothing to clear on a line-based terminal; the next prompt is empty.
func (p *Presenter) ResetInput() {
	p.view.ResetInput()
}

func (p *Presenter) ShowResultOverlay(overlay domain.Overlay) {
	p.mu.Lock()
	defer p.mu.Unlock()

	before := p.view.View()
	p.view.ShowResultOverlay(overlay)
	if before.Overlay != nil && *before.Overlay == overlay {
		return
	}

	if p.render != nil {
		md := fmt.Sprintf("## %s %s\n\n%s\n", overlay.Icon, overlay.Title, overlay.AnswerLine)
		if rendered, err := p.render(md); err == nil {
			fmt.Fprint(p.w, rendered)
			return
		}
	}

	color := "#4ade80"
	if overlay.Result == domain.ResultLoss {
		color = "#f87171"
	}
	fmt.Fprintln(p.w)
	p.println(p.out.String(overlay.Icon + " " + overlay.Title).Foreground(p.out.Color(color)).Bold().String())
	p.println(overlay.AnswerLine)
	fmt.Fprintln(p.w)
}

func (p *Presenter) SetNextEnabled(enabled bool) {
	p.view.SetNextEnabled(enabled)
}

// View returns what the terminal currently shows.
func (p *Presenter) View() domain.View {
	return p.view.View()
}

func (p *Presenter) println(s string) {
	fmt.Fprintln(p.w, strings.TrimRight(s, " "))
}
