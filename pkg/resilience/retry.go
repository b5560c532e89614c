package resilience

import (
	"context"
	"time"
)

// RetryPolicy configures bounded sequential retries executed on the calling
// goroutine. Retryable defaults to IsTimeout: non-timeout errors propagate
// immediately without consuming attempts.
type RetryPolicy struct {
	MaxAttempts int
	Delay       time.Duration
	Retryable   func(error) bool
}

const (
	defaultMaxAttempts = 3
	defaultRetryDelay  = 500 * time.Millisecond
)

// WithRetry wraps op with the retry policy. When attempts are exhausted on a
// retryable error, fallback supplies the result instead of the error; the
// caller never sees the underlying timeout once a fallback is configured.
// A nil fallback propagates the last error.
func WithRetry[T any](policy RetryPolicy, op Operation[T], fallback Fallback[T]) Operation[T] {
	attempts := policy.MaxAttempts
	if attempts <= 0 {
		attempts = defaultMaxAttempts
	}
	delay := policy.Delay
	if delay <= 0 {
		delay = defaultRetryDelay
	}
	retryable := policy.Retryable
	if retryable == nil {
		retryable = IsTimeout
	}

	return func(ctx context.Context) (T, error) {
		var zero T
		var lastErr error
		for attempt := 1; attempt <= attempts; attempt++ {
			v, err := op(ctx)
			if err == nil {
				return v, nil
			}
			if !retryable(err) {
				return zero, err
			}
			lastErr = err
			if attempt == attempts {
				break
			}
			select {
			case <-ctx.Done():
				return zero, ctx.Err()
			case <-time.After(delay):
			}
		}
		if fallback != nil {
			return fallback(ctx, lastErr)
		}
		return zero, lastErr
	}
}
