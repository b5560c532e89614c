// Package accounts provides the business logic for the Customer/Account
// aggregate: creation with account-number generation, lookup by mobile
// number, composite update, and deletion. All multi-record operations run
// inside a unit-of-work transaction so the aggregate is never persisted
// partially.
package accounts

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/novabank/accounts/pkg/accountnumber"
	"github.com/novabank/accounts/pkg/domain"
	"github.com/novabank/accounts/pkg/domain/account"
	"github.com/novabank/accounts/pkg/domain/customer"
	"github.com/novabank/accounts/pkg/dto"
	"github.com/novabank/accounts/pkg/repository"
)

// createAttempts bounds how often a create is re-run when the generated
// account number loses a uniqueness race against a concurrent insert.
const createAttempts = 3

// Service orchestrates the customer and account repositories. It is the only
// place enforcing aggregate-level invariants.
type Service struct {
	uow    repository.UnitOfWork
	gen    *accountnumber.Generator
	logger *slog.Logger
}

// New creates a Service with a UnitOfWork, an account number generator, and
// a logger.
func New(
	uow repository.UnitOfWork,
	gen *accountnumber.Generator,
	logger *slog.Logger,
) *Service {
	return &Service{
		uow:    uow,
		gen:    gen,
		logger: logger,
	}
}

// CreateAccount persists a new customer together with a freshly numbered
// account in one transaction. A mobile number already mapping to a customer
// fails with customer.ErrCustomerAlreadyExists.
//
// The in-transaction existence probe keeps the generator from handing out a
// number that is already committed; the store's unique constraint settles
// concurrent races, in which case the whole transaction is re-run with a
// fresh number.
func (s *Service) CreateAccount(ctx context.Context, create dto.CustomerCreate) error {
	if err := customer.ValidateMobileNumber(create.MobileNumber); err != nil {
		return err
	}

	var err error
	for attempt := 1; attempt <= createAttempts; attempt++ {
		err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
			return s.createAggregate(ctx, uow, create)
		})
		if err == nil {
			return nil
		}
		if errors.Is(err, domain.ErrAlreadyExists) && !errors.Is(err, customer.ErrCustomerAlreadyExists) {
			s.logger.Warn("account number collision, regenerating",
				"mobileNumber", create.MobileNumber, "attempt", attempt)
			continue
		}
		return err
	}
	return err
}

func (s *Service) createAggregate(
	ctx context.Context,
	uow repository.UnitOfWork,
	create dto.CustomerCreate,
) error {
	custRepo, err := uow.CustomerRepository()
	if err != nil {
		return err
	}
	acctRepo, err := uow.AccountRepository()
	if err != nil {
		return err
	}

	existing, err := custRepo.GetByMobileNumber(ctx, create.MobileNumber)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	if existing != nil {
		return fmt.Errorf("%w: %s", customer.ErrCustomerAlreadyExists, create.MobileNumber)
	}

	cust, err := customer.New(create.Name, create.Email, create.MobileNumber)
	if err != nil {
		return err
	}
	if err := custRepo.Create(ctx, &dto.CustomerCreate{
		ID:           cust.ID,
		Name:         cust.Name,
		Email:        cust.Email,
		MobileNumber: cust.MobileNumber,
	}); err != nil {
		return err
	}

	number, err := s.gen.Next(ctx, acctRepo.ExistsByNumber)
	if err != nil {
		return err
	}
	acct, err := account.New(number, cust.ID)
	if err != nil {
		return err
	}
	if err := acctRepo.Create(ctx, &dto.AccountCreate{
		AccountNumber: acct.AccountNumber,
		CustomerID:    acct.CustomerID,
		AccountType:   string(acct.AccountType),
		BranchAddress: acct.BranchAddress,
	}); err != nil {
		return err
	}

	s.logger.Info("account created",
		"accountNumber", acct.AccountNumber, "customerID", cust.ID)
	return nil
}

// FetchAccount returns the composite customer+account view for a mobile
// number. An unknown mobile number fails with customer.ErrCustomerNotFound;
// a customer without an account fails with account.ErrAccountRecordMissing,
// which signals a broken aggregate rather than a user error.
func (s *Service) FetchAccount(
	ctx context.Context,
	mobileNumber string,
) (view *dto.CustomerAccountView, err error) {
	if err = customer.ValidateMobileNumber(mobileNumber); err != nil {
		return nil, err
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		custRepo, err := uow.CustomerRepository()
		if err != nil {
			return err
		}
		acctRepo, err := uow.AccountRepository()
		if err != nil {
			return err
		}

		cust, err := custRepo.GetByMobileNumber(ctx, mobileNumber)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return fmt.Errorf("%w: %s", customer.ErrCustomerNotFound, mobileNumber)
			}
			return err
		}
		acct, err := acctRepo.GetByCustomerID(ctx, cust.ID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return fmt.Errorf("%w: customer %s", account.ErrAccountRecordMissing, cust.ID)
			}
			return err
		}

		view = &dto.CustomerAccountView{
			Name:          cust.Name,
			Email:         cust.Email,
			MobileNumber:  cust.MobileNumber,
			AccountNumber: acct.AccountNumber,
			AccountType:   acct.AccountType,
			BranchAddress: acct.BranchAddress,
		}
		return nil
	})
	if err != nil {
		view = nil
	}
	return
}

// UpdateAccount overwrites the mutable fields of both aggregate records in
// one transaction. An unknown account number reports (false, nil): not
// updated, but not an error, so the caller can answer with a precondition
// failure instead of a server error. A missing owning customer is an
// integrity error and does escalate.
func (s *Service) UpdateAccount(
	ctx context.Context,
	update dto.CustomerAccountUpdate,
) (updated bool, err error) {
	if err = account.ValidateNumber(update.AccountNumber); err != nil {
		return false, err
	}
	if err = customer.ValidateMobileNumber(update.MobileNumber); err != nil {
		return false, err
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		custRepo, err := uow.CustomerRepository()
		if err != nil {
			return err
		}
		acctRepo, err := uow.AccountRepository()
		if err != nil {
			return err
		}

		acct, err := acctRepo.GetByNumber(ctx, update.AccountNumber)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil // not updated, not an error
			}
			return err
		}
		cust, err := custRepo.Get(ctx, acct.CustomerID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return fmt.Errorf("%w: account %d", customer.ErrCustomerRecordMissing, acct.AccountNumber)
			}
			return err
		}

		if err := acctRepo.Update(ctx, acct.AccountNumber, &dto.AccountUpdate{
			AccountType:   &update.AccountType,
			BranchAddress: &update.BranchAddress,
		}); err != nil {
			return err
		}
		if err := custRepo.Update(ctx, cust.ID, &dto.CustomerUpdate{
			Name:         &update.Name,
			Email:        &update.Email,
			MobileNumber: &update.MobileNumber,
		}); err != nil {
			return err
		}
		updated = true
		return nil
	})
	if err != nil {
		updated = false
	}
	return
}

// DeleteAccount removes the account and the customer identified by a mobile
// number as one logical unit. An unknown mobile number reports (false, nil).
func (s *Service) DeleteAccount(
	ctx context.Context,
	mobileNumber string,
) (deleted bool, err error) {
	if err = customer.ValidateMobileNumber(mobileNumber); err != nil {
		return false, err
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		custRepo, err := uow.CustomerRepository()
		if err != nil {
			return err
		}
		acctRepo, err := uow.AccountRepository()
		if err != nil {
			return err
		}

		cust, err := custRepo.GetByMobileNumber(ctx, mobileNumber)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil // not found, not deleted
			}
			return err
		}
		if err := acctRepo.DeleteByCustomerID(ctx, cust.ID); err != nil {
			return err
		}
		if err := custRepo.Delete(ctx, cust.ID); err != nil {
			return err
		}
		deleted = true
		s.logger.Info("account deleted", "customerID", cust.ID)
		return nil
	})
	if err != nil {
		deleted = false
	}
	return
}
