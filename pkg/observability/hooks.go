package observability

import (
	"context"

	"github.com/aretw0/guesser/pkg/domain"
)

// Chain combines hook sets. Each callback runs the non-nil callbacks of every set, in order.
func Chain(sets ...domain.LifecycleHooks) domain.LifecycleHooks {
	var out domain.LifecycleHooks
	for _, h := range sets {
		out.OnGuess = chain(out.OnGuess, h.OnGuess)
		out.OnVerdict = chain(out.OnVerdict, h.OnVerdict)
		out.OnNetworkError = chain(out.OnNetworkError, h.OnNetworkError)
		out.OnRoundEnd = chain(out.OnRoundEnd, h.OnRoundEnd)
		out.OnPersistFailure = chain(out.OnPersistFailure, h.OnPersistFailure)
		out.OnNavigate = chain(out.OnNavigate, h.OnNavigate)
	}
	return out
}

func chain[E any](a, b func(context.Context, E)) func(context.Context, E) {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return func(ctx context.Context, e E) {
		a(ctx, e)
		b(ctx, e)
	}
}
