package product

import (
	"context"

	"github.com/google/uuid"

	"github.com/lankagrow/backend/internal/application/adapter"
	"github.com/lankagrow/backend/internal/domain/entity"
)

// GetProductInput represents the input for fetching a single product.
type GetProductInput struct {
	ProductID uuid.UUID
	UserID    uuid.UUID
}

// GetProductOutput represents the output of fetching a single product.
type GetProductOutput struct {
	Product *entity.Product
}

// GetProductUseCase handles fetching a single product.
type GetProductUseCase struct {
	productRepo adapter.ProductRepository
}

// NewGetProductUseCase creates a new GetProductUseCase instance.
func NewGetProductUseCase(productRepo adapter.ProductRepository) *GetProductUseCase {
	return &GetProductUseCase{productRepo: productRepo}
}

// Execute fetches a product owned by the given user.
func (uc *GetProductUseCase) Execute(ctx context.Context, input GetProductInput) (*GetProductOutput, error) {
	product, err := uc.productRepo.FindByID(ctx, input.ProductID, input.UserID)
	if err != nil {
		return nil, err
	}
	return &GetProductOutput{Product: product}, nil
}
