package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventGuess          EventType = "guess"
	EventVerdict        EventType = "verdict"
	EventNetworkError   EventType = "network_error"
	EventRoundEnd       EventType = "round_end"
	EventPersistFailure EventType = "persist_failure"
	EventNavigate       EventType = "navigate"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	RoundID   string    `json:"round_id"`
}

// GuessEvent is emitted when a guess is sent to the server.
type GuessEvent struct {
	EventBase
	Guess string `json:"guess"`
}

// VerdictEvent is emitted for every decoded answer-check response.
type VerdictEvent struct {
	EventBase
	Outcome Outcome `json:"outcome"`
}

// ErrorEvent carries a recovered failure.
type ErrorEvent struct {
	EventBase
	Err error `json:"-"`
}

// RoundEndEvent is emitted once, when the round reaches a terminal phase.
type RoundEndEvent struct {
	EventBase
	Result     Result `json:"result"`
	WrongCount int    `json:"wrong_count"`
}

// NavigateEvent is emitted before a redirect.
type NavigateEvent struct {
	EventBase
	Target   string `json:"target"`
	Fallback bool   `json:"fallback,omitempty"`
}

// LifecycleHooks defines callbacks for round observability.
// OnGuess, OnVerdict, OnNetworkError, OnRoundEnd and OnNavigate run synchronously on
// the caller's goroutine; OnVerdict, OnNetworkError and OnRoundEnd run while the round
// holds its lock and must not call back into the round. OnPersistFailure runs
// asynchronously on the background persistence goroutine, without the lock.
type LifecycleHooks struct {
	OnGuess          func(context.Context, *GuessEvent)
	OnVerdict        func(context.Context, *VerdictEvent)
	OnNetworkError   func(context.Context, *ErrorEvent)
	OnRoundEnd       func(context.Context, *RoundEndEvent)
	OnPersistFailure func(context.Context, *ErrorEvent)
	OnNavigate       func(context.Context, *NavigateEvent)
}
