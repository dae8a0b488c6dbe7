package runtime

import (
	"context"
	"fmt"

	"github.com/aretw0/guesser/pkg/domain"
)

// GoNext asks the server for the next round and redirects to it.
// The next control is disabled before the call; a second GoNext while the first is
// pending returns domain.ErrNavigationPending. Any failure of the next-round call,
// including an empty redirect, lands on the fallback route instead.
// It returns the target that was navigated to.
func (r *Round) GoNext(ctx context.Context) (string, error) {
	r.mu.Lock()
	if r.nextPending {
		r.mu.Unlock()
		return "", domain.ErrNavigationPending
	}
	r.nextPending = true
	r.presenter.SetNextEnabled(false)
	r.mu.Unlock()

	target, fallback := r.fallbackRoute, true
	redirect, err := r.api.NextRound(ctx)
	switch {
	case err != nil:
		r.logger.Warn("next round request failed, using fallback", "fallback", target, "error", err)
	case redirect == "":
		r.logger.Warn("next round response has no redirect, using fallback", "fallback", target)
	default:
		target, fallback = redirect, false
	}

	if err := r.redirect(ctx, target, fallback); err != nil {
		// The host stayed put, so let the player try again.
		r.mu.Lock()
		r.nextPending = false
		r.presenter.SetNextEnabled(true)
		r.mu.Unlock()
		return target, err
	}
	return target, nil
}

// GoMenu redirects to the menu route. No server call is made.
func (r *Round) GoMenu(ctx context.Context) error {
	return r.redirect(ctx, r.menuRoute, false)
}

func (r *Round) redirect(ctx context.Context, target string, fallback bool) error {
	r.logger.Debug("navigating", "target", target, "fallback", fallback)
	if r.hooks.OnNavigate != nil {
		r.hooks.OnNavigate(ctx, &domain.NavigateEvent{
			EventBase: r.event(domain.EventNavigate),
			Target:    target,
			Fallback:  fallback,
		})
	}

	if err := r.navigator.Redirect(ctx, target); err != nil {
		return fmt.Errorf("redirect to %s: %w", target, err)
	}
	return nil
}
