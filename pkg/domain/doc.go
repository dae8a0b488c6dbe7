/*
Package domain contains the core domain models of a guessing round.

It defines the round lifecycle, the decoded server verdict, the summary that is
reported when a round ends, and the view model a presenter renders. This package
is kept pure and free of external dependencies like I/O or transport, following
Hexagonal Architecture principles.

# Key Entities

  - RoundState: The one-way lifecycle of a round (Playing -> Won | Lost).
  - Outcome: A fully-populated verdict decoded from the answer-check payload.
  - RoundSummary: What is reported to the scoring endpoint when a round ends.
  - Overlay: The end-of-round card (icon, title, answer line).
  - View: A snapshot of everything a presenter currently shows.
*/
package domain
