// Package accountnumber produces unique 10-digit account numbers.
//
// The generator draws candidates uniformly from the 10-digit space and skips
// values already present in the store. It is safe for concurrent use, but the
// database uniqueness constraint remains the final authority: callers must
// treat a duplicate-key failure on insert as a lost race and request a fresh
// number.
package accountnumber

import (
	"context"
	"errors"
	"math/rand"

	"github.com/novabank/accounts/pkg/domain/account"
)

// ErrKeyspaceExhausted is returned when no free account number could be found
// within the probe budget. Callers treat this as fatal for the request; the
// generator does not retry past its budget.
var ErrKeyspaceExhausted = errors.New("account number keyspace exhausted")

const defaultMaxProbes = 64

// TakenFunc reports whether an account number is already in use.
type TakenFunc func(ctx context.Context, number int64) (bool, error)

// Generator produces fresh account numbers from the 10-digit space.
type Generator struct {
	maxProbes int
	intN      func(n int64) int64
}

// New returns a Generator with the default probe budget.
func New() *Generator {
	return &Generator{
		maxProbes: defaultMaxProbes,
		intN:      rand.Int63n,
	}
}

// Next returns an account number not currently taken. taken is consulted for
// each candidate; two concurrent calls never return the same value as long as
// taken reflects committed and in-flight reservations.
func (g *Generator) Next(ctx context.Context, taken TakenFunc) (int64, error) {
	span := account.MaxNumber - account.MinNumber + 1
	for i := 0; i < g.maxProbes; i++ {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		candidate := account.MinNumber + g.intN(span)
		inUse, err := taken(ctx, candidate)
		if err != nil {
			return 0, err
		}
		if !inUse {
			return candidate, nil
		}
	}
	return 0, ErrKeyspaceExhausted
}
