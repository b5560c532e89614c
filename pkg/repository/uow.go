package repository

import "context"

// UnitOfWork defines the contract for transactional work and repository
// access. Repositories obtained inside Do are bound to the same transaction,
// so multi-record operations on the Customer/Account aggregate are
// all-or-nothing.
type UnitOfWork interface {
	// Do executes fn within a transaction boundary. The UnitOfWork passed to
	// fn hands out transaction-scoped repositories. If fn returns an error,
	// the transaction is rolled back.
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	// CustomerRepository returns a customer repository bound to the current
	// transaction/session.
	CustomerRepository() (CustomerRepository, error)

	// AccountRepository returns an account repository bound to the current
	// transaction/session.
	AccountRepository() (AccountRepository, error)
}
