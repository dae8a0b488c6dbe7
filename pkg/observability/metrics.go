package observability

import (
	"context"
	"fmt"

	"github.com/aretw0/guesser/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the prometheus collectors fed by round lifecycle hooks.
type Metrics struct {
	Guesses         prometheus.Counter
	Verdicts        *prometheus.CounterVec
	NetworkErrors   prometheus.Counter
	Rounds          *prometheus.CounterVec
	PersistFailures prometheus.Counter
	Navigations     *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Guesses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "guesser_guesses_total",
			Help: "Total number of guesses sent to the server",
		}),
		Verdicts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "guesser_verdicts_total",
			Help: "Total number of verdicts received, by verdict",
		}, []string{"verdict"}),
		NetworkErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "guesser_network_errors_total",
			Help: "Total number of failed answer-check round-trips",
		}),
		Rounds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "guesser_rounds_total",
			Help: "Total number of finished rounds, by result",
		}, []string{"result"}),
		PersistFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "guesser_persist_failures_total",
			Help: "Total number of score reports that failed",
		}),
		Navigations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "guesser_navigations_total",
			Help: "Total number of redirects, by kind",
		}, []string{"kind"}),
	}

	collectors := []prometheus.Collector{
		m.Guesses, m.Verdicts, m.NetworkErrors, m.Rounds, m.PersistFailures, m.Navigations,
	}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register metric: %w", err)
		}
	}
	return m, nil
}

// Hooks returns lifecycle hooks that record into the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnGuess: func(context.Context, *domain.GuessEvent) {
			m.Guesses.Inc()
		},
		OnVerdict: func(_ context.Context, e *domain.VerdictEvent) {
			m.Verdicts.WithLabelValues(string(e.Outcome.Verdict)).Inc()
		},
		OnNetworkError: func(context.Context, *domain.ErrorEvent) {
			m.NetworkErrors.Inc()
		},
		OnRoundEnd: func(_ context.Context, e *domain.RoundEndEvent) {
			m.Rounds.WithLabelValues(string(e.Result)).Inc()
		},
		OnPersistFailure: func(context.Context, *domain.ErrorEvent) {
			m.PersistFailures.Inc()
		},
		OnNavigate: func(_ context.Context, e *domain.NavigateEvent) {
			kind := "redirect"
			if e.Fallback {
				kind = "fallback"
			}
			m.Navigations.WithLabelValues(kind).Inc()
		},
	}
}
