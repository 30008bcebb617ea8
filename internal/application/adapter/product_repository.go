// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/lankagrow/backend/internal/domain/entity"
)

// ProductFilter defines filter options for listing products.
type ProductFilter struct {
	UserID   uuid.UUID
	Category string
	Search   string // Case-insensitive name/SKU match
	LowStock bool   // Only products at or below their reorder threshold
}

// Pagination defines page/limit options shared by list queries.
type Pagination struct {
	Page  int
	Limit int
}

// ProductListResult represents the result of listing products.
type ProductListResult struct {
	Products   []*entity.Product
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// StockAdjustmentType distinguishes manual restock from manual correction.
type StockAdjustmentType string

const (
	StockAdjustmentAdd      StockAdjustmentType = "add"
	StockAdjustmentSubtract StockAdjustmentType = "subtract"
)

// ProductRepository defines the interface for product persistence operations.
type ProductRepository interface {
	// Create creates a new product in the database.
	Create(ctx context.Context, product *entity.Product) error

	// FindByID retrieves a product by its ID, scoped to the owner.
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Product, error)

	// FindByFilter retrieves products based on filter criteria with pagination.
	FindByFilter(ctx context.Context, filter ProductFilter, pagination Pagination) (*ProductListResult, error)

	// FindLowStock retrieves products at or below their reorder threshold.
	FindLowStock(ctx context.Context, userID uuid.UUID) ([]*entity.Product, error)

	// ExistsBySKU checks whether the owner already has a product with the SKU.
	ExistsBySKU(ctx context.Context, userID uuid.UUID, sku string) (bool, error)

	// Update updates an existing product in the database.
	Update(ctx context.Context, product *entity.Product) error

	// Delete soft-deletes a product from the database.
	Delete(ctx context.Context, id, userID uuid.UUID) error

	// AdjustStock atomically applies a manual stock adjustment and returns the
	// updated product. Subtractions clamp the resulting stock at zero.
	AdjustStock(ctx context.Context, id, userID uuid.UUID, quantity int, adjustment StockAdjustmentType) (*entity.Product, error)
}
