package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/novabank/accounts/infra/repository/model"
	"github.com/novabank/accounts/pkg/dto"
	"github.com/novabank/accounts/pkg/repository"
	"gorm.io/gorm"
)

type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a customer repository over the given session.
func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(ctx context.Context, create *dto.CustomerCreate) error {
	cust := &model.Customer{
		ID:           create.ID,
		Name:         create.Name,
		Email:        create.Email,
		MobileNumber: create.MobileNumber,
	}
	return WrapError(func() error {
		return r.db.WithContext(ctx).Create(cust).Error
	})
}

func (r *customerRepository) Get(ctx context.Context, id uuid.UUID) (*dto.CustomerRead, error) {
	var cust model.Customer
	if err := WrapError(func() error {
		return r.db.WithContext(ctx).First(&cust, "id = ?", id).Error
	}); err != nil {
		return nil, err
	}
	return mapCustomerToDTO(&cust), nil
}

func (r *customerRepository) GetByMobileNumber(
	ctx context.Context,
	mobileNumber string,
) (*dto.CustomerRead, error) {
	var cust model.Customer
	if err := WrapError(func() error {
		return r.db.WithContext(ctx).
			Where("mobile_number = ?", mobileNumber).
			First(&cust).Error
	}); err != nil {
		return nil, err
	}
	return mapCustomerToDTO(&cust), nil
}

func (r *customerRepository) Update(
	ctx context.Context,
	id uuid.UUID,
	update *dto.CustomerUpdate,
) error {
	updates := make(map[string]any)
	if update.Name != nil {
		updates["name"] = *update.Name
	}
	if update.Email != nil {
		updates["email"] = *update.Email
	}
	if update.MobileNumber != nil {
		updates["mobile_number"] = *update.MobileNumber
	}
	if len(updates) == 0 {
		return nil
	}
	return WrapError(func() error {
		return r.db.WithContext(ctx).Model(&model.Customer{}).
			Where("id = ?", id).
			Updates(model.AuditUpdates(updates)).Error
	})
}

func (r *customerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return WrapError(func() error {
		return r.db.WithContext(ctx).Delete(&model.Customer{}, "id = ?", id).Error
	})
}

func mapCustomerToDTO(cust *model.Customer) *dto.CustomerRead {
	return &dto.CustomerRead{
		ID:           cust.ID,
		Name:         cust.Name,
		Email:        cust.Email,
		MobileNumber: cust.MobileNumber,
		CreatedAt:    cust.CreatedAt,
		CreatedBy:    cust.CreatedBy,
		UpdatedAt:    cust.UpdatedAt,
		UpdatedBy:    cust.UpdatedBy,
	}
}
