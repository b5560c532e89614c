package dto

import (
	"time"

	"github.com/google/uuid"
)

// AccountCreate is a DTO for persisting a new account.
type AccountCreate struct {
	AccountNumber int64
	CustomerID    uuid.UUID
	AccountType   string
	BranchAddress string
}

// AccountRead is a read-optimized DTO for account queries.
type AccountRead struct {
	AccountNumber int64
	CustomerID    uuid.UUID
	AccountType   string
	BranchAddress string
	CreatedAt     time.Time
	CreatedBy     string
	UpdatedAt     time.Time
	UpdatedBy     string
}

// AccountUpdate is a DTO for updating mutable account fields. Nil fields are
// left untouched; the account number itself is immutable.
type AccountUpdate struct {
	AccountType   *string
	BranchAddress *string
}

// CustomerAccountView is the composite read model returned by fetch:
// customer fields plus the owned account's fields.
type CustomerAccountView struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	MobileNumber  string `json:"mobileNumber"`
	AccountNumber int64  `json:"accountNumber"`
	AccountType   string `json:"accountType"`
	BranchAddress string `json:"branchAddress"`
}

// CustomerAccountUpdate carries a composite update of customer and account
// fields. AccountNumber identifies the account to update and is required.
type CustomerAccountUpdate struct {
	Name          string
	Email         string
	MobileNumber  string
	AccountNumber int64
	AccountType   string
	BranchAddress string
}
