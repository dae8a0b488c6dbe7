package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/aretw0/guesser/internal/logging"
	"github.com/aretw0/guesser/pkg/domain"
)

// errInterrupted reports that the player left: EOF on input, quit or a signal.
var errInterrupted = errors.New("interrupted")

// SignalContext wraps a context and captures the signal that cancelled it.
type SignalContext struct {
	context.Context
	Cancel func()
	start  sync.Once
	stop   sync.Once
	sigCh  chan os.Signal
	sigVal os.Signal
	mu     sync.Mutex
}

// NewSignalContext creates a context that is cancelled on SIGINT or SIGTERM.
// It acts as a drop-in replacement for signal.NotifyContext but allows retrieving the signal.
func NewSignalContext(parent context.Context) *SignalContext {
	ctx, cancel := context.WithCancel(parent)
	sc := &SignalContext{
		Context: ctx,
		Cancel:  cancel,
		sigCh:   make(chan os.Signal, 1),
	}

	sc.start.Do(func() {
		signal.Notify(sc.sigCh, os.Interrupt, syscall.SIGTERM)
		go func() {
			select {
			case sig := <-sc.sigCh:
				sc.mu.Lock()
				sc.sigVal = sig
				sc.mu.Unlock()
				sc.Cancel()
			case <-sc.Context.Done():
			}
			sc.stop.Do(func() {
				signal.Stop(sc.sigCh)
			})
		}()
	})

	return sc
}

// Signal returns the signal that caused the context to be cancelled, or nil.
func (sc *SignalContext) Signal() os.Signal {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.sigVal
}

// createLogger configures the application logger.
// Debug mode wins over the configured level.
func createLogger(w io.Writer, level string, debug bool) (*slog.Logger, error) {
	if debug {
		return logging.NewWithWriter(w, slog.LevelDebug), nil
	}
	lvl, err := logging.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return logging.NewWithWriter(w, lvl), nil
}

// printSystemMessage prints a standardized system message.
func printSystemMessage(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, ">>> %s\n", fmt.Sprintf(format, args...))
}

func createDebugHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnGuess: func(ctx context.Context, e *domain.GuessEvent) {
			logger.Debug("Guess", "round_id", e.RoundID, "guess", e.Guess)
		},
		OnVerdict: func(ctx context.Context, e *domain.VerdictEvent) {
			logger.Debug("Verdict", "round_id", e.RoundID, "verdict", e.Outcome.Verdict, "result", e.Outcome.RawResult)
		},
		OnNetworkError: func(ctx context.Context, e *domain.ErrorEvent) {
			logger.Debug("Network Error", "round_id", e.RoundID, "err", e.Err)
		},
		OnRoundEnd: func(ctx context.Context, e *domain.RoundEndEvent) {
			logger.Debug("Round End", "round_id", e.RoundID, "result", e.Result, "wrong_count", e.WrongCount)
		},
		OnPersistFailure: func(ctx context.Context, e *domain.ErrorEvent) {
			logger.Debug("Persist Failure", "round_id", e.RoundID, "err", e.Err)
		},
		OnNavigate: func(ctx context.Context, e *domain.NavigateEvent) {
			logger.Debug("Navigate", "round_id", e.RoundID, "target", e.Target, "fallback", e.Fallback)
		},
	}
}

func isInterrupted(err error) bool {
	return errors.Is(err, errInterrupted) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, io.EOF)
}

func handleExecutionError(err error) error {
	if err == nil || isInterrupted(err) {
		return nil // Exit 0 for interruptions
	}
	return err
}

func logCompletion(w io.Writer, rounds int, err error, sig os.Signal) {
	if err == nil {
		printSystemMessage(w, "Back to the menu after %d round(s).", rounds)
		return
	}
	if !isInterrupted(err) {
		return
	}

	switch {
	case sig == os.Interrupt:
		fmt.Fprintf(w, "[CTRL+C]\n")
		printSystemMessage(w, "Interrupted after %d round(s).", rounds)
	case sig != nil:
		fmt.Fprintf(w, "\n")
		printSystemMessage(w, "Terminated after %d round(s).", rounds)
	default:
		fmt.Fprintf(w, "\n")
		printSystemMessage(w, "Bye after %d round(s).", rounds)
	}
}
