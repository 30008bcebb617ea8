// Package product contains product catalog and inventory use cases.
package product

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lankagrow/backend/internal/application/adapter"
	"github.com/lankagrow/backend/internal/application/advisor"
	"github.com/lankagrow/backend/internal/domain/entity"
	domainerror "github.com/lankagrow/backend/internal/domain/error"
)

const (
	// MaxProductNameLength is the maximum allowed length for product names.
	MaxProductNameLength = 255
	// MaxSKULength is the maximum allowed length for SKUs.
	MaxSKULength = 64
)

// CreateProductInput represents the input for product creation.
type CreateProductInput struct {
	UserID        uuid.UUID
	Name          string
	SKU           string
	Category      string
	Description   string
	PurchasePrice decimal.Decimal
	SellingPrice  decimal.Decimal
	InitialStock  int
	MinStockLevel int
	Unit          string
}

// CreateProductOutput represents the output of product creation.
type CreateProductOutput struct {
	Product   *entity.Product
	TagSource advisor.Source
}

// CreateProductUseCase handles product creation logic.
type CreateProductUseCase struct {
	productRepo adapter.ProductRepository
	advisor     *advisor.Service
}

// NewCreateProductUseCase creates a new CreateProductUseCase instance.
func NewCreateProductUseCase(productRepo adapter.ProductRepository, advisorService *advisor.Service) *CreateProductUseCase {
	return &CreateProductUseCase{
		productRepo: productRepo,
		advisor:     advisorService,
	}
}

// Execute performs the product creation.
func (uc *CreateProductUseCase) Execute(ctx context.Context, input CreateProductInput) (*CreateProductOutput, error) {
	if len(input.Name) == 0 || len(input.Name) > MaxProductNameLength {
		return nil, domainerror.NewProductError(
			domainerror.ErrCodeMissingProductFields,
			fmt.Sprintf("product name is required and must not exceed %d characters", MaxProductNameLength),
			nil,
		)
	}
	if len(input.SKU) == 0 || len(input.SKU) > MaxSKULength {
		return nil, domainerror.NewProductError(
			domainerror.ErrCodeMissingProductFields,
			fmt.Sprintf("sku is required and must not exceed %d characters", MaxSKULength),
			nil,
		)
	}
	if input.InitialStock < 0 || input.MinStockLevel < 0 {
		return nil, domainerror.NewProductError(
			domainerror.ErrCodeMissingProductFields,
			"stock levels must not be negative",
			nil,
		)
	}

	// SKU must be unique within the owner's catalog
	exists, err := uc.productRepo.ExistsBySKU(ctx, input.UserID, input.SKU)
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

	product := entity.NewProduct(
		input.UserID,
		input.Name,
		input.SKU,
		input.Category,
		input.Description,
		input.PurchasePrice,
		input.SellingPrice,
		input.InitialStock,
		input.MinStockLevel,
		input.Unit,
	)

	// Advisory tag generation; the result never fails and never blocks creation.
	tags := uc.advisor.GenerateProductTags(ctx, input.Name, input.Category, input.Description)
	product.Tags = tags.Tags

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return &CreateProductOutput{Product: product, TagSource: tags.Source}, nil
}
