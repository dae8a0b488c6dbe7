package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/aretw0/guesser"
	"github.com/aretw0/guesser/internal/config"
	"github.com/aretw0/guesser/internal/presentation/tui"
	"github.com/aretw0/guesser/pkg/adapters/terminal"
	"github.com/aretw0/guesser/pkg/domain"
	"github.com/aretw0/guesser/pkg/observability"
	"github.com/aretw0/guesser/pkg/ports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PlayOptions contains all the configuration for the play command.
type PlayOptions struct {
	Config config.Config
	Debug  bool
	Quiet  bool // no banner
	In     io.Reader
	Out    io.Writer
	Err    io.Writer
}

// errMenu reports that the player chose the menu.
var errMenu = errors.New("menu requested")

// RunPlay plays rounds on the terminal until the player goes back to the menu,
// closes the input or the context is cancelled.
func RunPlay(ctx context.Context, opts PlayOptions) error {
	cfg := opts.Config
	logger, err := createLogger(opts.Err, cfg.LogLevel, opts.Debug)
	if err != nil {
		return err
	}

	hooks := domain.LifecycleHooks{}
	if opts.Debug {
		hooks = createDebugHooks(logger)
	}
	if cfg.MetricsAddr != "" {
		reg := prometheus.NewRegistry()
		metrics, err := observability.NewMetrics(reg)
		if err != nil {
			return fmt.Errorf("failed to register metrics: %w", err)
		}
		hooks = observability.Chain(hooks, metrics.Hooks())

		stop, err := serveMetrics(cfg.MetricsAddr, reg, logger)
		if err != nil {
			return err
		}
		defer stop()
	}

	// Menu navigation leaves the terminal session without touching the server.
	var client *guesser.Client
	navigator := ports.NavigatorFunc(func(ctx context.Context, target string) error {
		if target == cfg.MenuRoute {
			return nil
		}
		return client.HTTP().Redirect(ctx, target)
	})

	client, err = guesser.New(cfg.BaseURL,
		guesser.WithLogger(logger),
		guesser.WithLifecycleHooks(hooks),
		guesser.WithNavigator(navigator),
		guesser.WithStrict(cfg.Strict),
		guesser.WithTimeout(cfg.Timeout),
		guesser.WithGameRoute(cfg.GameRoute),
		guesser.WithFallbackRoute(cfg.FallbackRoute),
		guesser.WithMenuRoute(cfg.MenuRoute),
		guesser.WithPersistTimeout(cfg.PersistTimeout),
	)
	if err != nil {
		return fmt.Errorf("error initializing guesser: %w", err)
	}

	if !opts.Quiet {
		tui.PrintBanner(opts.Out, guesser.Version)
	}

	lines := pumpLines(opts.In)
	presenter := terminal.New(opts.Out)
	round, err := client.Start(ctx, presenter)
	if err != nil {
		return err
	}

	rounds := 0
	for {
		logger.Debug("round started", "round_id", round.ID())
		err := playRound(ctx, round, lines, opts.Out, cfg.MaxGuessSize)
		rounds++
		if err == nil {
			err = chooseNext(ctx, round, lines, opts.Out)
		}
		round.Wait()

		switch {
		case errors.Is(err, errMenu):
			logCompletion(opts.Out, rounds, nil, nil)
			return nil
		case err != nil:
			logCompletion(opts.Out, rounds, err, signalOf(ctx))
			return handleExecutionError(err)
		}

		presenter = terminal.New(opts.Out)
		round = client.NewRound(presenter)
	}
}

// playRound reads guesses until the round ends.
func playRound(ctx context.Context, round *guesser.Round, lines <-chan string, out io.Writer, maxSize int) error {
	for {
		fmt.Fprint(out, "> ")
		line, err := readLine(ctx, lines)
		if err != nil {
			return err
		}
		if isQuit(line) {
			return errInterrupted
		}
		guess, err := SanitizeGuess(line, maxSize)
		if err != nil {
			printSystemMessage(out, "Guess ignored: %v", err)
			continue
		}

		phase, err := round.SubmitGuess(ctx, guess)
		switch {
		case errors.Is(err, domain.ErrEmptyGuess):
			continue
		case errors.Is(err, domain.ErrNetwork):
			// The presenter already shows the network error; the player may retry.
			continue
		case err != nil:
			return err
		}
		if phase.Ended() {
			return nil
		}
	}
}

// chooseNext asks for the next round or the menu, and navigates accordingly.
func chooseNext(ctx context.Context, round *guesser.Round, lines <-chan string, out io.Writer) error {
	for {
		fmt.Fprint(out, "[n]ext round or [m]enu? ")
		line, err := readLine(ctx, lines)
		if err != nil {
			return err
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "n", "next":
			if _, err := round.GoNext(ctx); err != nil {
				printSystemMessage(out, "Could not open the next round: %v", err)
				continue
			}
			return nil
		case "m", "menu":
			if err := round.GoMenu(ctx); err != nil {
				return err
			}
			return errMenu
		default:
			if isQuit(line) {
				return errInterrupted
			}
		}
	}
}

// pumpLines reads r line by line on its own goroutine. The channel closes on EOF.
func pumpLines(r io.Reader) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()
	return lines
}

func readLine(ctx context.Context, lines <-chan string) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-lines:
		if !ok {
			return "", io.EOF
		}
		return line, nil
	}
}

func isQuit(line string) bool {
	switch strings.TrimSpace(line) {
	case "exit", "quit":
		return true
	}
	return false
}

func signalOf(ctx context.Context) os.Signal {
	if sc, ok := ctx.(*SignalContext); ok {
		return sc.Signal()
	}
	return nil
}

// serveMetrics exposes reg on addr under /metrics. The returned func shuts the server down.
func serveMetrics(addr string, reg *prometheus.Registry, logger *slog.Logger) (func(), error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", "error", err)
		}
	}()
	logger.Info("serving metrics", "addr", ln.Addr().String())

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}, nil
}
