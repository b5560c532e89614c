// Package resilience provides cross-cutting policies applied as decorators
// around operation references. A policy wraps a func(ctx) (T, error) and
// returns another, so the same mechanism can wrap any service operation
// without touching its body.
package resilience

import (
	"context"
	"errors"
	"os"
)

// Operation is a request-scoped operation returning a value of type T.
type Operation[T any] func(ctx context.Context) (T, error)

// Fallback supplies a substitute result when the primary path of a wrapped
// operation cannot complete.
type Fallback[T any] func(ctx context.Context, err error) (T, error)

// StaticFallback returns a Fallback that always yields v.
func StaticFallback[T any](v T) Fallback[T] {
	return func(context.Context, error) (T, error) {
		return v, nil
	}
}

// IsTimeout reports whether err represents a timeout condition.
func IsTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	return os.IsTimeout(err)
}
