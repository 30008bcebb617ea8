package product

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lankagrow/backend/internal/application/adapter"
	"github.com/lankagrow/backend/internal/domain/entity"
)

// ListLowStockInput represents the input for listing low stock products.
type ListLowStockInput struct {
	UserID uuid.UUID
}

// ListLowStockOutput represents the output of listing low stock products.
type ListLowStockOutput struct {
	Products []*entity.Product
}

// ListLowStockUseCase lists products at or below their minimum stock level.
type ListLowStockUseCase struct {
	productRepo adapter.ProductRepository
}

// NewListLowStockUseCase creates a new ListLowStockUseCase instance.
func NewListLowStockUseCase(productRepo adapter.ProductRepository) *ListLowStockUseCase {
	return &ListLowStockUseCase{productRepo: productRepo}
}

// Execute lists the user's low stock products.
func (uc *ListLowStockUseCase) Execute(ctx context.Context, input ListLowStockInput) (*ListLowStockOutput, error) {
	products, err := uc.productRepo.FindLowStock(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list low stock products: %w", err)
	}
	return &ListLowStockOutput{Products: products}, nil
}
