package product

import (
	"context"
	"fmt"

	"github.com/lankagrow/backend/internal/application/adapter"
)

// ListProductsInput represents the input for listing products.
type ListProductsInput struct {
	Filter     adapter.ProductFilter
	Pagination adapter.Pagination
}

// ListProductsOutput represents the output of listing products.
type ListProductsOutput struct {
	Result *adapter.ProductListResult
}

// ListProductsUseCase handles listing products with filters.
type ListProductsUseCase struct {
	productRepo adapter.ProductRepository
}

// NewListProductsUseCase creates a new ListProductsUseCase instance.
func NewListProductsUseCase(productRepo adapter.ProductRepository) *ListProductsUseCase {
	return &ListProductsUseCase{productRepo: productRepo}
}

// Execute lists products matching the filter.
func (uc *ListProductsUseCase) Execute(ctx context.Context, input ListProductsInput) (*ListProductsOutput, error) {
	if input.Pagination.Page < 1 {
		input.Pagination.Page = 1
	}
	if input.Pagination.Limit < 1 || input.Pagination.Limit > 100 {
		input.Pagination.Limit = 20
	}

	result, err := uc.productRepo.FindByFilter(ctx, input.Filter, input.Pagination)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return &ListProductsOutput{Result: result}, nil
}
