package product

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lankagrow/backend/internal/application/adapter"
	"github.com/lankagrow/backend/internal/domain/entity"
	domainerror "github.com/lankagrow/backend/internal/domain/error"
)

// UpdateProductInput represents the input for product updates. Nil pointer
// fields are left unchanged.
type UpdateProductInput struct {
	ProductID     uuid.UUID
	UserID        uuid.UUID
	Name          *string
	SKU           *string
	Category      *string
	Description   *string
	PurchasePrice *decimal.Decimal
	SellingPrice  *decimal.Decimal
	MinStockLevel *int
	Unit          *string
	Tags          []string
}

// UpdateProductOutput represents the output of a product update.
type UpdateProductOutput struct {
	Product *entity.Product
}

// UpdateProductUseCase handles product update logic.
type UpdateProductUseCase struct {
	productRepo adapter.ProductRepository
}

// NewUpdateProductUseCase creates a new UpdateProductUseCase instance.
func NewUpdateProductUseCase(productRepo adapter.ProductRepository) *UpdateProductUseCase {
	return &UpdateProductUseCase{productRepo: productRepo}
}

// Execute performs the product update.
func (uc *UpdateProductUseCase) Execute(ctx context.Context, input UpdateProductInput) (*UpdateProductOutput, error) {
	product, err := uc.productRepo.FindByID(ctx, input.ProductID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if len(*input.Name) == 0 || len(*input.Name) > MaxProductNameLength {
			return nil, domainerror.NewProductError(
				domainerror.ErrCodeMissingProductFields,
				fmt.Sprintf("product name must not be empty or exceed %d characters", MaxProductNameLength),
				nil,
			)
		}
		product.Name = *input.Name
	}
	if input.SKU != nil && *input.SKU != product.SKU {
		if len(*input.SKU) == 0 || len(*input.SKU) > MaxSKULength {
			return nil, domainerror.NewProductError(
				domainerror.ErrCodeMissingProductFields,
				fmt.Sprintf("sku must not be empty or exceed %d characters", MaxSKULength),
				nil,
			)
		}
		exists, err := uc.productRepo.ExistsBySKU(ctx, input.UserID, *input.SKU)
		if err != nil {
			return nil, fmt.Errorf("failed to check sku existence: %w", err)
		}
		if exists {
			return nil, domainerror.NewProductError(
				domainerror.ErrCodeSKUAlreadyExists,
				"a product with this sku already exists",
				domainerror.ErrSKUAlreadyExists,
			)
		}
		product.SKU = *input.SKU
	}
	if input.Category != nil {
		product.Category = *input.Category
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.PurchasePrice != nil {
		product.PurchasePrice = *input.PurchasePrice
	}
	if input.SellingPrice != nil {
		product.SellingPrice = *input.SellingPrice
	}
	if input.MinStockLevel != nil {
		if *input.MinStockLevel < 0 {
			return nil, domainerror.NewProductError(
				domainerror.ErrCodeMissingProductFields,
				"minimum stock level must not be negative",
				nil,
			)
		}
		product.MinStockLevel = *input.MinStockLevel
	}
	if input.Unit != nil {
		product.Unit = *input.Unit
	}
	if input.Tags != nil {
		product.Tags = input.Tags
	}

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return &UpdateProductOutput{Product: product}, nil
}
