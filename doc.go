/*
Package guesser drives one round of a word-guessing game against a remote game server.

The server owns the secret word and judges every guess. The client owns the view of a
round: it submits guesses, interprets each verdict, reveals the hint, keeps the wrong
guess counter, ends the round on a win or a loss, reports the score in the background
and moves on to the next round.

# Architecture

The round controller lives in internal/runtime and talks to three ports:

  - ports.GameAPI checks answers, records scores and issues the next round.
  - ports.Presenter receives every visible change (hint, counter, feedback, controls, overlay).
  - ports.Navigator moves the host to another route.

pkg/adapters/http implements GameAPI and Navigator over HTTP, keeping the server session
in a cookie jar. pkg/adapters/memory and pkg/adapters/terminal implement Presenter.

# Usage

	package main

	import (
		"context"
		"log"
		"os"

		"github.com/aretw0/guesser"
		"github.com/aretw0/guesser/pkg/adapters/terminal"
	)

	func main() {
		client, err := guesser.New("http://localhost:5000")
		if err != nil {
			log.Fatal(err)
		}

		ctx := context.Background()
		round, err := client.Start(ctx, terminal.New(os.Stdout))
		if err != nil {
			log.Fatal(err)
		}

		phase, err := round.SubmitGuess(ctx, "lisbon")
		if err != nil {
			log.Printf("guess rejected: %v", err)
		}
		if phase.Ended() {
			round.Wait()
		}
	}

# Strict mode

WithStrict validates every answer payload against the OpenAPI contract in package api.
In strict mode an unknown result is a decode failure; otherwise the round continues
and a warning is logged.
*/
package guesser
