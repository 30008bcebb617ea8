package product

import (
	"context"

	"github.com/google/uuid"

	"github.com/lankagrow/backend/internal/application/adapter"
	"github.com/lankagrow/backend/internal/application/advisor"
	"github.com/lankagrow/backend/internal/domain/entity"
	domainerror "github.com/lankagrow/backend/internal/domain/error"
)

// AdjustStockInput represents the input for a manual stock adjustment.
type AdjustStockInput struct {
	ProductID  uuid.UUID
	UserID     uuid.UUID
	Quantity   int
	Adjustment adapter.StockAdjustmentType
}

// AdjustStockOutput represents the output of a stock adjustment. When the
// adjusted product sits at or below its minimum stock level, Reorder carries
// a reorder quantity suggestion.
type AdjustStockOutput struct {
	Product *entity.Product
	Reorder *advisor.ReorderResult
}

// AdjustStockUseCase handles manual stock adjustments.
type AdjustStockUseCase struct {
	productRepo adapter.ProductRepository
	advisor     *advisor.Service
}

// NewAdjustStockUseCase creates a new AdjustStockUseCase instance.
func NewAdjustStockUseCase(productRepo adapter.ProductRepository, advisorService *advisor.Service) *AdjustStockUseCase {
	return &AdjustStockUseCase{
		productRepo: productRepo,
		advisor:     advisorService,
	}
}

// Execute applies the adjustment. Manual subtraction clamps at zero rather
// than going negative; only invoice creation may drive stock below zero.
func (uc *AdjustStockUseCase) Execute(ctx context.Context, input AdjustStockInput) (*AdjustStockOutput, error) {
	if input.Quantity <= 0 {
		return nil, domainerror.NewProductError(
			domainerror.ErrCodeInvalidStockAdjustment,
			"adjustment quantity must be positive",
			domainerror.ErrInvalidStockAdjustment,
		)
	}
	if input.Adjustment != adapter.StockAdjustmentAdd && input.Adjustment != adapter.StockAdjustmentSubtract {
		return nil, domainerror.NewProductError(
			domainerror.ErrCodeInvalidStockAdjustment,
			"adjustment type must be add or subtract",
			domainerror.ErrInvalidStockAdjustment,
		)
	}

	product, err := uc.productRepo.AdjustStock(ctx, input.ProductID, input.UserID, input.Quantity, input.Adjustment)
	if err != nil {
		return nil, err
	}

	output := &AdjustStockOutput{Product: product}
	if product.IsLowStock() {
		reorder := uc.advisor.SuggestReorderQuantity(ctx, adapter.ReorderRequest{
			ProductName:   product.Name,
			CurrentStock:  product.CurrentStock,
			MinStockLevel: product.MinStockLevel,
		})
		output.Reorder = &reorder
	}

	return output, nil
}
