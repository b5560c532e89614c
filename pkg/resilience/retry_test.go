package resilience_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/novabank/accounts/pkg/resilience"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithRetry_PassesThroughSuccess(t *testing.T) {
	t.Parallel()
	op := resilience.WithRetry(
		resilience.RetryPolicy{MaxAttempts: 3, Delay: time.Millisecond},
		func(context.Context) (string, error) { return "3.0", nil },
		resilience.StaticFallback("0.9"),
	)
	v, err := op(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "3.0", v)
}

func TestWithRetry_RecoversWithinAttempts(t *testing.T) {
	t.Parallel()
	var calls atomic.Int32
	op := resilience.WithRetry(
		resilience.RetryPolicy{MaxAttempts: 3, Delay: time.Millisecond},
		func(context.Context) (string, error) {
			if calls.Add(1) < 3 {
				return "", context.DeadlineExceeded
			}
			return "3.0", nil
		},
		resilience.StaticFallback("0.9"),
	)
	v, err := op(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "3.0", v)
	assert.Equal(t, int32(3), calls.Load())
}

func TestWithRetry_FallbackAfterExhaustion(t *testing.T) {
	t.Parallel()
	var calls atomic.Int32
	op := resilience.WithRetry(
		resilience.RetryPolicy{MaxAttempts: 3, Delay: time.Millisecond},
		func(context.Context) (string, error) {
			calls.Add(1)
			return "", context.DeadlineExceeded
		},
		resilience.StaticFallback("0.9"),
	)
	v, err := op(context.Background())
	require.NoError(t, err, "the caller never sees the timeout once a fallback is configured")
	assert.Equal(t, "0.9", v)
	assert.Equal(t, int32(3), calls.Load())
}

func TestWithRetry_NonTimeoutErrorPropagates(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")
	var calls atomic.Int32
	op := resilience.WithRetry(
		resilience.RetryPolicy{MaxAttempts: 3, Delay: time.Millisecond},
		func(context.Context) (string, error) {
			calls.Add(1)
			return "", boom
		},
		resilience.StaticFallback("0.9"),
	)
	_, err := op(context.Background())
	require.ErrorIs(t, err, boom)
	assert.Equal(t, int32(1), calls.Load(), "non-timeout errors do not consume retries")
}

func TestWithRetry_NilFallbackReturnsLastError(t *testing.T) {
	t.Parallel()
	op := resilience.WithRetry(
		resilience.RetryPolicy{MaxAttempts: 2, Delay: time.Millisecond},
		func(context.Context) (string, error) { return "", context.DeadlineExceeded },
		nil,
	)
	_, err := op(context.Background())
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestWithRetry_ContextCancelledBetweenAttempts(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	op := resilience.WithRetry(
		resilience.RetryPolicy{MaxAttempts: 5, Delay: time.Minute},
		func(context.Context) (string, error) {
			cancel()
			return "", context.DeadlineExceeded
		},
		resilience.StaticFallback("0.9"),
	)
	start := time.Now()
	_, err := op(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), time.Second, "cancellation must cut the delay short")
}

func TestWithRetry_CustomClassifier(t *testing.T) {
	t.Parallel()
	flaky := errors.New("flaky")
	var calls atomic.Int32
	op := resilience.WithRetry(
		resilience.RetryPolicy{
			MaxAttempts: 2,
			Delay:       time.Millisecond,
			Retryable:   func(err error) bool { return errors.Is(err, flaky) },
		},
		func(context.Context) (string, error) {
			calls.Add(1)
			return "", flaky
		},
		resilience.StaticFallback("fallback"),
	)
	v, err := op(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "fallback", v)
	assert.Equal(t, int32(2), calls.Load())
}
