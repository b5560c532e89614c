// Package fixtures provides an in-memory UnitOfWork and repositories for
// service and handler tests. The store serializes transactions with a mutex
// and restores a snapshot on rollback, mirroring the all-or-nothing
// semantics of the real persistence layer, including its audit stamping and
// uniqueness rules.
package fixtures

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/novabank/accounts/pkg/domain"
	"github.com/novabank/accounts/pkg/dto"
	"github.com/novabank/accounts/pkg/repository"
)

const auditor = "ACCOUNTS_MS"

// MemoryStore holds customer and account records with the same uniqueness
// rules as the database schema.
type MemoryStore struct {
	mu            sync.Mutex
	customers     map[uuid.UUID]dto.CustomerRead
	mobileIndex   map[string]uuid.UUID
	accounts      map[int64]dto.AccountRead
	customerIndex map[uuid.UUID]int64
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		customers:     make(map[uuid.UUID]dto.CustomerRead),
		mobileIndex:   make(map[string]uuid.UUID),
		accounts:      make(map[int64]dto.AccountRead),
		customerIndex: make(map[uuid.UUID]int64),
	}
}

// CustomerByMobile returns a copy of the customer record for a mobile
// number.
func (s *MemoryStore) CustomerByMobile(mobileNumber string) (dto.CustomerRead, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.mobileIndex[mobileNumber]
	if !ok {
		return dto.CustomerRead{}, false
	}
	cust, ok := s.customers[id]
	return cust, ok
}

// AccountByNumber returns a copy of the account record for a number.
func (s *MemoryStore) AccountByNumber(number int64) (dto.AccountRead, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	acct, ok := s.accounts[number]
	return acct, ok
}

// Counts returns the number of customer and account records.
func (s *MemoryStore) Counts() (customers, accounts int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.customers), len(s.accounts)
}

func (s *MemoryStore) snapshot() *MemoryStore {
	cp := NewMemoryStore()
	for k, v := range s.customers {
		cp.customers[k] = v
	}
	for k, v := range s.mobileIndex {
		cp.mobileIndex[k] = v
	}
	for k, v := range s.accounts {
		cp.accounts[k] = v
	}
	for k, v := range s.customerIndex {
		cp.customerIndex[k] = v
	}
	return cp
}

func (s *MemoryStore) restore(snap *MemoryStore) {
	s.customers = snap.customers
	s.mobileIndex = snap.mobileIndex
	s.accounts = snap.accounts
	s.customerIndex = snap.customerIndex
}

// MemoryUoW implements repository.UnitOfWork over a MemoryStore.
type MemoryUoW struct {
	store *MemoryStore
}

// NewMemoryUoW creates a UnitOfWork over the given store.
func NewMemoryUoW(store *MemoryStore) *MemoryUoW {
	return &MemoryUoW{store: store}
}

// Do runs fn under the store lock and rolls back on error.
func (u *MemoryUoW) Do(_ context.Context, fn func(uow repository.UnitOfWork) error) error {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()
	snap := u.store.snapshot()
	if err := fn(u); err != nil {
		u.store.restore(snap)
		return err
	}
	return nil
}

// CustomerRepository implements repository.UnitOfWork.
func (u *MemoryUoW) CustomerRepository() (repository.CustomerRepository, error) {
	return &memoryCustomerRepository{store: u.store}, nil
}

// AccountRepository implements repository.UnitOfWork.
func (u *MemoryUoW) AccountRepository() (repository.AccountRepository, error) {
	return &memoryAccountRepository{store: u.store}, nil
}

type memoryCustomerRepository struct {
	store *MemoryStore
}

func (r *memoryCustomerRepository) Create(_ context.Context, create *dto.CustomerCreate) error {
	if _, exists := r.store.mobileIndex[create.MobileNumber]; exists {
		return fmt.Errorf("customers mobile_number: %w", domain.ErrAlreadyExists)
	}
	now := time.Now().UTC()
	r.store.customers[create.ID] = dto.CustomerRead{
		ID:           create.ID,
		Name:         create.Name,
		Email:        create.Email,
		MobileNumber: create.MobileNumber,
		CreatedAt:    now,
		CreatedBy:    auditor,
	}
	r.store.mobileIndex[create.MobileNumber] = create.ID
	return nil
}

func (r *memoryCustomerRepository) Get(_ context.Context, id uuid.UUID) (*dto.CustomerRead, error) {
	cust, ok := r.store.customers[id]
	if !ok {
		return nil, fmt.Errorf("customer %s: %w", id, domain.ErrNotFound)
	}
	return &cust, nil
}

func (r *memoryCustomerRepository) GetByMobileNumber(
	ctx context.Context,
	mobileNumber string,
) (*dto.CustomerRead, error) {
	id, ok := r.store.mobileIndex[mobileNumber]
	if !ok {
		return nil, fmt.Errorf("customer %q: %w", mobileNumber, domain.ErrNotFound)
	}
	return r.Get(ctx, id)
}

func (r *memoryCustomerRepository) Update(
	_ context.Context,
	id uuid.UUID,
	update *dto.CustomerUpdate,
) error {
	cust, ok := r.store.customers[id]
	if !ok {
		return fmt.Errorf("customer %s: %w", id, domain.ErrNotFound)
	}
	if update.Name != nil {
		cust.Name = *update.Name
	}
	if update.Email != nil {
		cust.Email = *update.Email
	}
	if update.MobileNumber != nil && *update.MobileNumber != cust.MobileNumber {
		if _, exists := r.store.mobileIndex[*update.MobileNumber]; exists {
			return fmt.Errorf("customers mobile_number: %w", domain.ErrAlreadyExists)
		}
		delete(r.store.mobileIndex, cust.MobileNumber)
		cust.MobileNumber = *update.MobileNumber
		r.store.mobileIndex[cust.MobileNumber] = id
	}
	cust.UpdatedAt = time.Now().UTC()
	cust.UpdatedBy = auditor
	r.store.customers[id] = cust
	return nil
}

func (r *memoryCustomerRepository) Delete(_ context.Context, id uuid.UUID) error {
	cust, ok := r.store.customers[id]
	if !ok {
		return nil
	}
	delete(r.store.mobileIndex, cust.MobileNumber)
	delete(r.store.customers, id)
	return nil
}

type memoryAccountRepository struct {
	store *MemoryStore
}

func (r *memoryAccountRepository) Create(_ context.Context, create *dto.AccountCreate) error {
	if _, exists := r.store.accounts[create.AccountNumber]; exists {
		return fmt.Errorf("accounts account_number: %w", domain.ErrAlreadyExists)
	}
	if _, exists := r.store.customerIndex[create.CustomerID]; exists {
		return fmt.Errorf("accounts customer_id: %w", domain.ErrAlreadyExists)
	}
	now := time.Now().UTC()
	r.store.accounts[create.AccountNumber] = dto.AccountRead{
		AccountNumber: create.AccountNumber,
		CustomerID:    create.CustomerID,
		AccountType:   create.AccountType,
		BranchAddress: create.BranchAddress,
		CreatedAt:     now,
		CreatedBy:     auditor,
	}
	r.store.customerIndex[create.CustomerID] = create.AccountNumber
	return nil
}

func (r *memoryAccountRepository) GetByNumber(
	_ context.Context,
	accountNumber int64,
) (*dto.AccountRead, error) {
	acct, ok := r.store.accounts[accountNumber]
	if !ok {
		return nil, fmt.Errorf("account %d: %w", accountNumber, domain.ErrNotFound)
	}
	return &acct, nil
}

func (r *memoryAccountRepository) GetByCustomerID(
	ctx context.Context,
	customerID uuid.UUID,
) (*dto.AccountRead, error) {
	number, ok := r.store.customerIndex[customerID]
	if !ok {
		return nil, fmt.Errorf("account for customer %s: %w", customerID, domain.ErrNotFound)
	}
	return r.GetByNumber(ctx, number)
}

func (r *memoryAccountRepository) ExistsByNumber(
	_ context.Context,
	accountNumber int64,
) (bool, error) {
	_, ok := r.store.accounts[accountNumber]
	return ok, nil
}

func (r *memoryAccountRepository) Update(
	_ context.Context,
	accountNumber int64,
	update *dto.AccountUpdate,
) error {
	acct, ok := r.store.accounts[accountNumber]
	if !ok {
		return fmt.Errorf("account %d: %w", accountNumber, domain.ErrNotFound)
	}
	if update.AccountType != nil {
		acct.AccountType = *update.AccountType
	}
	if update.BranchAddress != nil {
		acct.BranchAddress = *update.BranchAddress
	}
	acct.UpdatedAt = time.Now().UTC()
	acct.UpdatedBy = auditor
	r.store.accounts[accountNumber] = acct
	return nil
}

func (r *memoryAccountRepository) DeleteByCustomerID(
	_ context.Context,
	customerID uuid.UUID,
) error {
	number, ok := r.store.customerIndex[customerID]
	if !ok {
		return nil
	}
	delete(r.store.accounts, number)
	delete(r.store.customerIndex, customerID)
	return nil
}
