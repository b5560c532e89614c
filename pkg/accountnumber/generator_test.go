package accountnumber_test

import (
	"context"
	"sync"
	"testing"

	"github.com/novabank/accounts/pkg/accountnumber"
	"github.com/novabank/accounts/pkg/domain/account"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func neverTaken(context.Context, int64) (bool, error) {
	return false, nil
}

func TestNext_TenDigitRange(t *testing.T) {
	t.Parallel()
	gen := accountnumber.New()
	for i := 0; i < 100; i++ {
		n, err := gen.Next(context.Background(), neverTaken)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, account.MinNumber)
		assert.LessOrEqual(t, n, account.MaxNumber)
	}
}

func TestNext_SkipsTakenNumbers(t *testing.T) {
	t.Parallel()
	gen := accountnumber.New()
	seen := make(map[int64]bool)
	taken := func(_ context.Context, n int64) (bool, error) {
		return seen[n], nil
	}
	for i := 0; i < 1000; i++ {
		n, err := gen.Next(context.Background(), taken)
		require.NoError(t, err)
		require.False(t, seen[n], "generator returned a taken number")
		seen[n] = true
	}
}

func TestNext_ExhaustedKeyspace(t *testing.T) {
	t.Parallel()
	gen := accountnumber.New()
	allTaken := func(context.Context, int64) (bool, error) {
		return true, nil
	}
	_, err := gen.Next(context.Background(), allTaken)
	require.ErrorIs(t, err, accountnumber.ErrKeyspaceExhausted)
}

func TestNext_ContextCancelled(t *testing.T) {
	t.Parallel()
	gen := accountnumber.New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := gen.Next(ctx, neverTaken)
	require.ErrorIs(t, err, context.Canceled)
}

func TestNext_ConcurrentCallsAreDistinct(t *testing.T) {
	t.Parallel()
	gen := accountnumber.New()

	var mu sync.Mutex
	reserved := make(map[int64]bool)
	taken := func(_ context.Context, n int64) (bool, error) {
		mu.Lock()
		defer mu.Unlock()
		if reserved[n] {
			return true, nil
		}
		reserved[n] = true // reserve atomically with the check
		return false, nil
	}

	const workers = 50
	results := make(chan int64, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n, err := gen.Next(context.Background(), taken)
			assert.NoError(t, err)
			results <- n
		}()
	}
	wg.Wait()
	close(results)

	unique := make(map[int64]bool)
	for n := range results {
		require.False(t, unique[n], "two concurrent calls returned the same number")
		unique[n] = true
	}
	assert.Len(t, unique, workers)
}
