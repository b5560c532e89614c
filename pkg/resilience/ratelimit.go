package resilience

import (
	"context"
	"errors"
	"time"

	"golang.org/x/time/rate"
)

// ErrRateLimited is the rejection signal handed to the fallback when the
// admission gate denies a call.
var ErrRateLimited = errors.New("rate limit exceeded")

// RateLimitPolicy bounds the number of admitted calls per window. The
// decision is immediate admit/reject; there is no blocking wait.
type RateLimitPolicy struct {
	MaxRequests int
	Window      time.Duration
}

const (
	defaultMaxRequests = 1
	defaultWindow      = 5 * time.Second
)

// WithRateLimit wraps op with an admission-control gate. Rejected calls
// receive the fallback result; under load callers get a degraded-but-valid
// response rather than an error. A nil fallback propagates ErrRateLimited.
func WithRateLimit[T any](policy RateLimitPolicy, op Operation[T], fallback Fallback[T]) Operation[T] {
	maxRequests := policy.MaxRequests
	if maxRequests <= 0 {
		maxRequests = defaultMaxRequests
	}
	window := policy.Window
	if window <= 0 {
		window = defaultWindow
	}
	limiter := rate.NewLimiter(rate.Limit(float64(maxRequests)/window.Seconds()), maxRequests)

	return func(ctx context.Context) (T, error) {
		if !limiter.Allow() {
			if fallback != nil {
				return fallback(ctx, ErrRateLimited)
			}
			var zero T
			return zero, ErrRateLimited
		}
		return op(ctx)
	}
}
