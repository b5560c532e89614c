package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/novabank/accounts/infra/repository/model"
	"github.com/novabank/accounts/pkg/dto"
	"github.com/novabank/accounts/pkg/repository"
	"gorm.io/gorm"
)

type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates an account repository over the given session.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) Create(ctx context.Context, create *dto.AccountCreate) error {
	acct := &model.Account{
		AccountNumber: create.AccountNumber,
		CustomerID:    create.CustomerID,
		AccountType:   create.AccountType,
		BranchAddress: create.BranchAddress,
	}
	return WrapError(func() error {
		return r.db.WithContext(ctx).Create(acct).Error
	})
}

func (r *accountRepository) GetByNumber(
	ctx context.Context,
	accountNumber int64,
) (*dto.AccountRead, error) {
	var acct model.Account
	if err := WrapError(func() error {
		return r.db.WithContext(ctx).
			First(&acct, "account_number = ?", accountNumber).Error
	}); err != nil {
		return nil, err
	}
	return mapAccountToDTO(&acct), nil
}

func (r *accountRepository) GetByCustomerID(
	ctx context.Context,
	customerID uuid.UUID,
) (*dto.AccountRead, error) {
	var acct model.Account
	if err := WrapError(func() error {
		return r.db.WithContext(ctx).
			Where("customer_id = ?", customerID).
			First(&acct).Error
	}); err != nil {
		return nil, err
	}
	return mapAccountToDTO(&acct), nil
}

func (r *accountRepository) ExistsByNumber(
	ctx context.Context,
	accountNumber int64,
) (bool, error) {
	var count int64
	if err := WrapError(func() error {
		return r.db.WithContext(ctx).Model(&model.Account{}).
			Where("account_number = ?", accountNumber).
			Count(&count).Error
	}); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *accountRepository) Update(
	ctx context.Context,
	accountNumber int64,
	update *dto.AccountUpdate,
) error {
	updates := make(map[string]any)
	if update.AccountType != nil {
		updates["account_type"] = *update.AccountType
	}
	if update.BranchAddress != nil {
		updates["branch_address"] = *update.BranchAddress
	}
	if len(updates) == 0 {
		return nil
	}
	return WrapError(func() error {
		return r.db.WithContext(ctx).Model(&model.Account{}).
			Where("account_number = ?", accountNumber).
			Updates(model.AuditUpdates(updates)).Error
	})
}

func (r *accountRepository) DeleteByCustomerID(ctx context.Context, customerID uuid.UUID) error {
	return WrapError(func() error {
		return r.db.WithContext(ctx).
			Delete(&model.Account{}, "customer_id = ?", customerID).Error
	})
}

func mapAccountToDTO(acct *model.Account) *dto.AccountRead {
	return &dto.AccountRead{
		AccountNumber: acct.AccountNumber,
		CustomerID:    acct.CustomerID,
		AccountType:   acct.AccountType,
		BranchAddress: acct.BranchAddress,
		CreatedAt:     acct.CreatedAt,
		CreatedBy:     acct.CreatedBy,
		UpdatedAt:     acct.UpdatedAt,
		UpdatedBy:     acct.UpdatedBy,
	}
}
