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

// productRepository implements the adapter.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository instance.
func NewProductRepository(db *gorm.DB) adapter.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// Create creates a new product in the database.
func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productModel := model.ProductFromEntity(product)
	result := r.db.WithContext(ctx).Create(productModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a product by its ID, scoped to the owner.
func (r *productRepository) FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Product, error) {
	var productModel model.ProductModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&productModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.NewProductError(
				domainerror.ErrCodeProductNotFound,
				"product not found",
				domainerror.ErrProductNotFound,
			)
		}
		return nil, result.Error
	}
	return productModel.ToEntity(), nil
}

// FindByFilter retrieves products based on filter criteria with pagination.
func (r *productRepository) FindByFilter(ctx context.Context, filter adapter.ProductFilter, pagination adapter.Pagination) (*adapter.ProductListResult, error) {
	query := r.db.WithContext(ctx).Model(&model.ProductModel{}).Where("user_id = ?", filter.UserID)

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Search != "" {
		search := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR sku ILIKE ?", search, search)
	}
	if filter.LowStock {
		query = query.Where("current_stock <= min_stock_level")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var productModels []model.ProductModel
	offset := (pagination.Page - 1) * pagination.Limit
	err := query.
		Order("name ASC").
		Limit(pagination.Limit).
		Offset(offset).
		Find(&productModels).Error
	if err != nil {
		return nil, err
	}

	products := make([]*entity.Product, 0, len(productModels))
	for i := range productModels {
		products = append(products, productModels[i].ToEntity())
	}

	return &adapter.ProductListResult{
		Products:   products,
		Total:      total,
		Page:       pagination.Page,
		Limit:      pagination.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(pagination.Limit))),
	}, nil
}

// FindLowStock retrieves the owner's products at or below their minimum stock level.
func (r *productRepository) FindLowStock(ctx context.Context, userID uuid.UUID) ([]*entity.Product, error) {
	var productModels []model.ProductModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND current_stock <= min_stock_level", userID).
		Order("current_stock ASC").
		Find(&productModels).Error
	if err != nil {
		return nil, err
	}

	products := make([]*entity.Product, 0, len(productModels))
	for i := range productModels {
		products = append(products, productModels[i].ToEntity())
	}
	return products, nil
}

// ExistsBySKU checks whether the owner already has a product with the SKU.
func (r *productRepository) ExistsBySKU(ctx context.Context, userID uuid.UUID, sku string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("user_id = ? AND sku = ?", userID, sku).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// Update updates an existing product in the database.
func (r *productRepository) Update(ctx context.Context, product *entity.Product) error {
	product.UpdatedAt = time.Now().UTC()
	productModel := model.ProductFromEntity(product)
	result := r.db.WithContext(ctx).Save(productModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete soft-deletes a product from the database.
func (r *productRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.ProductModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.NewProductError(
			domainerror.ErrCodeProductNotFound,
			"product not found",
			domainerror.ErrProductNotFound,
		)
	}
	return nil
}

// AdjustStock applies a manual stock adjustment atomically. Subtraction below
// zero clamps the stock at zero.
func (r *productRepository) AdjustStock(ctx context.Context, id, userID uuid.UUID, quantity int, adjustment adapter.StockAdjustmentType) (*entity.Product, error) {
	var productModel model.ProductModel

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.
			Where("id = ? AND user_id = ?", id, userID).
			First(&productModel)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return domainerror.NewProductError(
					domainerror.ErrCodeProductNotFound,
					"product not found",
					domainerror.ErrProductNotFound,
				)
			}
			return result.Error
		}

		switch adjustment {
		case adapter.StockAdjustmentAdd:
			productModel.CurrentStock += quantity
		case adapter.StockAdjustmentSubtract:
			productModel.CurrentStock -= quantity
			if productModel.CurrentStock < 0 {
				productModel.CurrentStock = 0
			}
		}
		productModel.UpdatedAt = time.Now().UTC()

		return tx.Model(&model.ProductModel{}).
			Where("id = ?", productModel.ID).
			Updates(map[string]any{
				"current_stock": productModel.CurrentStock,
				"updated_at":    productModel.UpdatedAt,
			}).Error
	})
	if err != nil {
		return nil, err
	}

	return productModel.ToEntity(), nil
}
