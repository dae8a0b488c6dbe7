package domain

import "errors"

// ErrEmptyGuess is returned when a guess is empty or whitespace-only. Nothing is sent.
var ErrEmptyGuess = errors.New("empty guess")

// ErrRoundEnded is returned when a guess is submitted after the round reached a terminal phase.
var ErrRoundEnded = errors.New("round already ended")

// ErrGuessInFlight is returned while a previous guess is still waiting for its verdict.
var ErrGuessInFlight = errors.New("guess already in flight")

// ErrNetwork marks transport, status, and decode failures of a server round-trip.
var ErrNetwork = errors.New("network error")

// ErrProtocol marks a payload that decodes but violates the wire contract.
var ErrProtocol = errors.New("protocol violation")

// ErrAlreadyEnded is returned by RoundState.End on a second transition.
var ErrAlreadyEnded = errors.New("round state already terminal")

// ErrInvalidPhase is returned when a non-terminal phase is used as an end state.
var ErrInvalidPhase = errors.New("invalid terminal phase")

// ErrNavigationPending is returned while a next-round request is already running.
var ErrNavigationPending = errors.New("navigation already pending")
