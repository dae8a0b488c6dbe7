/*
Package ports defines the driven ports (interfaces) of the round controller.

These interfaces decouple the round state machine from rendering and transport,
allowing the same controller to drive a terminal, an in-memory view model, or any
other front end against any implementation of the game endpoints.

# Key Interfaces

  - Presenter: Stateless view updates (hint, counter, feedback, controls, overlay).
  - AnswerChecker: One answer-check round-trip per guess.
  - ScoreReporter: Best-effort report of a finished round.
  - RoundIssuer: Requests the location of the next round.
  - Navigator: Moves the host to another route.
*/
package ports
