// Package repository defines the persistence contracts consumed by the
// service layer. Implementations live under infra/repository.
package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/novabank/accounts/pkg/dto"
)

// CustomerRepository defines data access operations for customer records.
// Lookup methods return domain.ErrNotFound (wrapped) when no record matches.
type CustomerRepository interface {
	Create(ctx context.Context, create *dto.CustomerCreate) error
	Get(ctx context.Context, id uuid.UUID) (*dto.CustomerRead, error)
	GetByMobileNumber(ctx context.Context, mobileNumber string) (*dto.CustomerRead, error)
	Update(ctx context.Context, id uuid.UUID, update *dto.CustomerUpdate) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// AccountRepository defines data access operations for account records,
// keyed by account number with lookup by owning customer id.
type AccountRepository interface {
	Create(ctx context.Context, create *dto.AccountCreate) error
	GetByNumber(ctx context.Context, accountNumber int64) (*dto.AccountRead, error)
	GetByCustomerID(ctx context.Context, customerID uuid.UUID) (*dto.AccountRead, error)
	ExistsByNumber(ctx context.Context, accountNumber int64) (bool, error)
	Update(ctx context.Context, accountNumber int64, update *dto.AccountUpdate) error
	DeleteByCustomerID(ctx context.Context, customerID uuid.UUID) error
}
