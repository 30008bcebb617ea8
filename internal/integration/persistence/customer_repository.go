// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lankagrow/backend/internal/application/adapter"
	"github.com/lankagrow/backend/internal/domain/entity"
	domainerror "github.com/lankagrow/backend/internal/domain/error"
	"github.com/lankagrow/backend/internal/integration/persistence/model"
)

// customerRepository implements the adapter.CustomerRepository interface.
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new customer repository instance.
func NewCustomerRepository(db *gorm.DB) adapter.CustomerRepository {
	return &customerRepository{
		db: db,
	}
}

// Create creates a new customer in the database.
func (r *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	customerModel := model.CustomerFromEntity(customer)
	result := r.db.WithContext(ctx).Create(customerModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a customer by its ID, scoped to the owner.
func (r *customerRepository) FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Customer, error) {
	var customerModel model.CustomerModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&customerModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.NewCustomerError(
				domainerror.ErrCodeCustomerNotFound,
				"customer not found",
				domainerror.ErrCustomerNotFound,
			)
		}
		return nil, result.Error
	}
	return customerModel.ToEntity(), nil
}

// FindByFilter retrieves customers based on filter criteria with pagination.
func (r *customerRepository) FindByFilter(ctx context.Context, filter adapter.CustomerFilter, pagination adapter.Pagination) (*adapter.CustomerListResult, error) {
	query := r.db.WithContext(ctx).Model(&model.CustomerModel{}).Where("user_id = ?", filter.UserID)

	if filter.Search != "" {
		search := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR email ILIKE ?", search, search)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var customerModels []model.CustomerModel
	offset := (pagination.Page - 1) * pagination.Limit
	err := query.
		Order("name ASC").
		Limit(pagination.Limit).
		Offset(offset).
		Find(&customerModels).Error
	if err != nil {
		return nil, err
	}

	customers := make([]*entity.Customer, 0, len(customerModels))
	for i := range customerModels {
		customers = append(customers, customerModels[i].ToEntity())
	}

	return &adapter.CustomerListResult{
		Customers:  customers,
		Total:      total,
		Page:       pagination.Page,
		Limit:      pagination.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(pagination.Limit))),
	}, nil
}

// Update updates an existing customer in the database.
func (r *customerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	customer.UpdatedAt = time.Now().UTC()
	customerModel := model.CustomerFromEntity(customer)
	result := r.db.WithContext(ctx).Save(customerModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete soft-deletes a customer from the database.
func (r *customerRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.CustomerModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.NewCustomerError(
			domainerror.ErrCodeCustomerNotFound,
			"customer not found",
			domainerror.ErrCustomerNotFound,
		)
	}
	return nil
}
