// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lankagrow/backend/internal/application/adapter"
	"github.com/lankagrow/backend/internal/domain/entity"
	domainerror "github.com/lankagrow/backend/internal/domain/error"
	"github.com/lankagrow/backend/internal/integration/persistence/model"
)

// supplierRepository implements the adapter.SupplierRepository interface.
type supplierRepository struct {
	db *gorm.DB
}

// NewSupplierRepository creates a new supplier repository instance.
func NewSupplierRepository(db *gorm.DB) adapter.SupplierRepository {
	return &supplierRepository{
		db: db,
	}
}

// Create creates a new supplier in the database.
func (r *supplierRepository) Create(ctx context.Context, supplier *entity.Supplier) error {
	supplierModel := model.SupplierFromEntity(supplier)
	result := r.db.WithContext(ctx).Create(supplierModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a supplier by its ID, scoped to the owner.
func (r *supplierRepository) FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Supplier, error) {
	var supplierModel model.SupplierModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&supplierModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.NewSupplierError(
				domainerror.ErrCodeSupplierNotFound,
				"supplier not found",
				domainerror.ErrSupplierNotFound,
			)
		}
		return nil, result.Error
	}
	return supplierModel.ToEntity(), nil
}

// FindByUser retrieves all suppliers for the owner.
func (r *supplierRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Supplier, error) {
	var supplierModels []model.SupplierModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&supplierModels).Error
	if err != nil {
		return nil, err
	}

	suppliers := make([]*entity.Supplier, 0, len(supplierModels))
	for i := range supplierModels {
		suppliers = append(suppliers, supplierModels[i].ToEntity())
	}
	return suppliers, nil
}

// Update updates an existing supplier in the database.
func (r *supplierRepository) Update(ctx context.Context, supplier *entity.Supplier) error {
	supplier.UpdatedAt = time.Now().UTC()
	supplierModel := model.SupplierFromEntity(supplier)
	result := r.db.WithContext(ctx).Save(supplierModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete soft-deletes a supplier from the database.
func (r *supplierRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.SupplierModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.NewSupplierError(
			domainerror.ErrCodeSupplierNotFound,
			"supplier not found",
			domainerror.ErrSupplierNotFound,
		)
	}
	return nil
}
