package memory

import (
	"context"
	"sync"
)

// Navigator implements ports.Navigator by recording every redirect target.
type Navigator struct {
	targets []string
	err     error
	mu      sync.Mutex
}

// NewNavigator creates a recording navigator.
// A non-nil err is returned from every Redirect (after recording the target).
func NewNavigator(err error) *Navigator {
	return &Navigator{err: err}
}

// Redirect records the target.
func (n *Navigator) Redirect(ctx context.Context, target string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.targets = append(n.targets, target)
	return n.err
}

// Targets returns the recorded targets in order.
func (n *Navigator) Targets() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.targets...)
}

// Last returns the most recent target, or "" if none.
func (n *Navigator) Last() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.targets) == 0 {
		return ""
	}
	return n.targets[len(n.targets)-1]
}
