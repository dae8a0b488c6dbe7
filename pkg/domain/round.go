package domain

import "fmt"

// Phase is the position of a round in its lifecycle.
type Phase string

const (
	PhasePlaying Phase = "playing" // Guesses are accepted
	PhaseWon     Phase = "won"     // Terminal: the answer was found
	PhaseLost    Phase = "lost"    // Terminal: the server declared a loss
)

// Ended reports whether the phase is terminal.
func (p Phase) Ended() bool {
	return p == PhaseWon || p == PhaseLost
}

// RoundState is the "round ended" flag of a single round.
// It starts in PhasePlaying and moves to a terminal phase at most once.
// The zero value is a playing round.
type RoundState struct {
	phase Phase
}

// NewRoundState creates the state of a fresh round.
func NewRoundState() *RoundState {
	return &RoundState{phase: PhasePlaying}
}

// Phase returns the current phase.
func (s *RoundState) Phase() Phase {
	if s.phase == "" {
		return PhasePlaying
	}
	return s.phase
}

// Ended reports whether the round reached a terminal phase.
func (s *RoundState) Ended() bool {
	return s.Phase().Ended()
}

// End moves the round to a terminal phase.
// Returns ErrAlreadyEnded if the round already ended; the state is left untouched.
func (s *RoundState) End(p Phase) error {
	if !p.Ended() {
		return fmt.Errorf("%w: %q", ErrInvalidPhase, p)
	}
	if s.Ended() {
		return ErrAlreadyEnded
	}
	s.phase = p
	return nil
}
