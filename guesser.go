package guesser

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/guesser/api"
	"github.com/aretw0/guesser/internal/runtime"
	httpadapter "github.com/aretw0/guesser/pkg/adapters/http"
	"github.com/aretw0/guesser/pkg/domain"
	"github.com/aretw0/guesser/pkg/ports"
)

// DefaultGameRoute is the page that opens a fresh round on the server.
const DefaultGameRoute = "/game"

// Round is a single round of play. See runtime.Round.
type Round = runtime.Round

// Client is the high-level entry point for the guesser library.
// It wires the game server, the navigator and the round controller together.
type Client struct {
	game           ports.GameAPI
	navigator      ports.Navigator
	http           *httpadapter.Client
	logger         *slog.Logger
	hooks          domain.LifecycleHooks
	gameRoute      string
	fallbackRoute  string
	menuRoute      string
	persistTimeout time.Duration
	timeout        time.Duration
	strict         bool
}

// Option defines a functional option for configuring the Client.
type Option func(*Client)

// WithGameAPI injects a custom game server, bypassing the HTTP adapter.
func WithGameAPI(game ports.GameAPI) Option {
	return func(c *Client) {
		c.game = game
	}
}

// WithNavigator injects a custom navigator.
// By default the HTTP adapter follows redirects itself.
func WithNavigator(n ports.Navigator) Option {
	return func(c *Client) {
		c.navigator = n
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks on every round.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(c *Client) {
		c.hooks = hooks
	}
}

// WithStrict validates every answer payload against the bundled OpenAPI contract.
func WithStrict(strict bool) Option {
	return func(c *Client) {
		c.strict = strict
	}
}

// WithGameRoute sets the page Start visits to open a round.
func WithGameRoute(route string) Option {
	return func(c *Client) {
		c.gameRoute = route
	}
}

// WithFallbackRoute sets where GoNext lands when the server has no next round.
func WithFallbackRoute(route string) Option {
	return func(c *Client) {
		c.fallbackRoute = route
	}
}

// WithMenuRoute sets the GoMenu target.
func WithMenuRoute(route string) Option {
	return func(c *Client) {
		c.menuRoute = route
	}
}

// WithPersistTimeout bounds the background score report.
func WithPersistTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.persistTimeout = d
	}
}

// WithTimeout sets the per-request timeout of the HTTP adapter.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// New initializes a Client for the game server at baseURL.
// If WithGameAPI is provided, baseURL can be empty and no HTTP adapter is built.
func New(baseURL string, opts ...Option) (*Client, error) {
	c := &Client{gameRoute: DefaultGameRoute}
	for _, opt := range opts {
		opt(c)
	}

	// Ensure logger is initialized (so we don't pass nil to the adapters)
	if c.logger == nil {
		c.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	if c.game == nil {
		if baseURL == "" {
			return nil, errors.New("baseURL is required when no custom game API is provided")
		}

		httpOpts := []httpadapter.Option{
			httpadapter.WithLogger(c.logger),
			httpadapter.WithTimeout(c.timeout),
		}
		if c.strict {
			contract, err := api.Load(context.Background())
			if err != nil {
				return nil, fmt.Errorf("failed to load contract: %w", err)
			}
			httpOpts = append(httpOpts, httpadapter.WithContract(contract))
		}

		client, err := httpadapter.New(baseURL, httpOpts...)
		if err != nil {
			return nil, err
		}
		c.http = client
		c.game = client
	}

	if c.navigator == nil {
		if c.http == nil {
			return nil, errors.New("a navigator is required with a custom game API")
		}
		c.navigator = c.http
	}

	return c, nil
}

// NewRound creates a round controller bound to presenter.
func (c *Client) NewRound(presenter ports.Presenter) *Round {
	return runtime.NewRound(c.game, presenter, c.navigator,
		runtime.WithLogger(c.logger),
		runtime.WithLifecycleHooks(c.hooks),
		runtime.WithFallbackRoute(c.fallbackRoute),
		runtime.WithMenuRoute(c.menuRoute),
		runtime.WithPersistTimeout(c.persistTimeout),
	)
}

// Start visits the game route, which opens a round in the server session,
// and returns its controller.
func (c *Client) Start(ctx context.Context, presenter ports.Presenter) (*Round, error) {
	if err := c.navigator.Redirect(ctx, c.gameRoute); err != nil {
		return nil, fmt.Errorf("failed to open round: %w", err)
	}
	return c.NewRound(presenter), nil
}

// HTTP returns the HTTP adapter, or nil when a custom game API was injected.
func (c *Client) HTTP() *httpadapter.Client {
	return c.http
}
