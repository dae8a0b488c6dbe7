package runtime

import (
	"log/slog"
	"time"

	"github.com/aretw0/guesser/pkg/domain"
)

const (
	DefaultFallbackRoute  = "/game"
	DefaultMenuRoute      = "/"
	DefaultPersistTimeout = 5 * time.Second
)

// Option configures a Round.
type Option func(*Round)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Round) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(r *Round) {
		r.hooks = hooks
	}
}

// WithRoundID overrides the generated round identifier.
func WithRoundID(id string) Option {
	return func(r *Round) {
		if id != "" {
			r.id = id
		}
	}
}

// WithFallbackRoute sets where GoNext lands when the next-round call fails.
func WithFallbackRoute(route string) Option {
	return func(r *Round) {
		if route != "" {
			r.fallbackRoute = route
		}
	}
}

// WithMenuRoute sets the GoMenu target.
func WithMenuRoute(route string) Option {
	return func(r *Round) {
		if route != "" {
			r.menuRoute = route
		}
	}
}

// WithPersistTimeout bounds the best-effort score report.
func WithPersistTimeout(d time.Duration) Option {
	return func(r *Round) {
		if d > 0 {
			r.persistTimeout = d
		}
	}
}
