// Package account holds the Account side of the Customer/Account aggregate.
package account

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrAccountRecordMissing is returned when a customer exists without an
	// owning account. This violates the 1:1 aggregate invariant and is
	// surfaced distinctly from a plain not-found.
	ErrAccountRecordMissing = errors.New("no account record found for customer")
	// ErrInvalidAccountNumber is returned when an account number is outside
	// the 10-digit numeric space.
	ErrInvalidAccountNumber = errors.New("account number must be 10 digits")
)

// Type enumerates the supported bank account types.
type Type string

const (
	TypeSavings Type = "Savings"
	TypeCurrent Type = "Current"
)

// Defaults applied when an account is created alongside a new customer.
const (
	DefaultType          = TypeSavings
	DefaultBranchAddress = "123 Main Street, New York"
)

// Account number space: fixed-width 10-digit values.
const (
	MinNumber int64 = 1_000_000_000
	MaxNumber int64 = 9_999_999_999
)

// ValidateNumber checks that n is a 10-digit account number.
func ValidateNumber(n int64) error {
	if n < MinNumber || n > MaxNumber {
		return ErrInvalidAccountNumber
	}
	return nil
}

// Account represents a bank account owned by exactly one customer.
// AccountNumber is generator-assigned and immutable once persisted.
type Account struct {
	AccountNumber int64     `json:"accountNumber"`
	CustomerID    uuid.UUID `json:"customerId"`
	AccountType   Type      `json:"accountType"`
	BranchAddress string    `json:"branchAddress"`
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	UpdatedAt     time.Time `json:"updatedAt"`
	UpdatedBy     string    `json:"updatedBy"`
}

// New creates an Account for the given customer with the default type and
// branch address.
func New(number int64, customerID uuid.UUID) (*Account, error) {
	if err := ValidateNumber(number); err != nil {
		return nil, err
	}
	if customerID == uuid.Nil {
		return nil, errors.New("customer id cannot be nil")
	}
	return &Account{
		AccountNumber: number,
		CustomerID:    customerID,
		AccountType:   DefaultType,
		BranchAddress: DefaultBranchAddress,
	}, nil
}
