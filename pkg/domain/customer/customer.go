// Package customer holds the Customer side of the Customer/Account aggregate.
// A customer is identified internally by a generated UUID and externally by a
// unique 10-digit mobile number, the business key for all lookups.
package customer

import (
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrCustomerNotFound is returned when no customer matches the given
	// mobile number.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrCustomerAlreadyExists is returned when a customer is already
	// registered with the given mobile number.
	ErrCustomerAlreadyExists = errors.New("customer already registered with given mobile number")
	// ErrCustomerRecordMissing is returned when an account points to a
	// customer that does not exist. This violates the aggregate invariant
	// and is never expected in normal operation.
	ErrCustomerRecordMissing = errors.New("no customer record found for account")
	// ErrInvalidMobileNumber is returned when a mobile number is not empty
	// and not exactly 10 ASCII digits.
	ErrInvalidMobileNumber = errors.New("mobile number must be 10 digits")
)

var mobileNumberRe = regexp.MustCompile(`^(|[0-9]{10})$`)

// ValidateMobileNumber checks the boundary shape of a mobile number:
// empty string or exactly 10 ASCII digits.
func ValidateMobileNumber(mobileNumber string) error {
	if !mobileNumberRe.MatchString(mobileNumber) {
		return ErrInvalidMobileNumber
	}
	return nil
}

// Customer represents the aggregate root of the Customer/Account pair.
type Customer struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	MobileNumber string    `json:"mobileNumber"`
	CreatedAt    time.Time `json:"createdAt"`
	CreatedBy    string    `json:"createdBy"`
	UpdatedAt    time.Time `json:"updatedAt"`
	UpdatedBy    string    `json:"updatedBy"`
}

// New creates a Customer with a generated ID. Audit fields are stamped at the
// persistence boundary, not here.
func New(name, email, mobileNumber string) (*Customer, error) {
	if name == "" {
		return nil, errors.New("name cannot be empty")
	}
	if email == "" {
		return nil, errors.New("email cannot be empty")
	}
	if err := ValidateMobileNumber(mobileNumber); err != nil {
		return nil, err
	}
	return &Customer{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		MobileNumber: mobileNumber,
	}, nil
}
