package ports

import "context"

// Navigator moves the host to another route.
type Navigator interface {
	Redirect(ctx context.Context, target string) error
}

// NavigatorFunc adapts a function to the Navigator interface.
type NavigatorFunc func(ctx context.Context, target string) error

// Redirect calls f(ctx, target).
func (f NavigatorFunc) Redirect(ctx context.Context, target string) error {
	return f(ctx, target)
}
