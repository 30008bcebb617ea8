package product

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lankagrow/backend/internal/application/adapter"
	domainerror "github.com/lankagrow/backend/internal/domain/error"
)

// DeleteProductInput represents the input for product deletion.
type DeleteProductInput struct {
	ProductID uuid.UUID
	UserID    uuid.UUID
}

// DeleteProductUseCase handles product deletion logic.
type DeleteProductUseCase struct {
	productRepo adapter.ProductRepository
	invoiceRepo adapter.InvoiceRepository
}

// NewDeleteProductUseCase creates a new DeleteProductUseCase instance.
func NewDeleteProductUseCase(productRepo adapter.ProductRepository, invoiceRepo adapter.InvoiceRepository) *DeleteProductUseCase {
	return &DeleteProductUseCase{
		productRepo: productRepo,
		invoiceRepo: invoiceRepo,
	}
}

// Execute soft deletes a product. Products referenced by existing invoice
// line items cannot be deleted; historical invoices must keep rendering.
func (uc *DeleteProductUseCase) Execute(ctx context.Context, input DeleteProductInput) error {
	product, err := uc.productRepo.FindByID(ctx, input.ProductID, input.UserID)
	if err != nil {
		return err
	}

	referenced, err := uc.invoiceRepo.ExistsByProduct(ctx, product.ID, input.UserID)
	if err != nil {
		return fmt.Errorf("failed to check invoice references: %w", err)
	}
	if referenced {
		return domainerror.NewProductError(
			domainerror.ErrCodeProductReferenced,
			"product is referenced by existing invoices and cannot be deleted",
			domainerror.ErrProductReferenced,
		)
	}

	if err := uc.productRepo.Delete(ctx, product.ID, input.UserID); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}
