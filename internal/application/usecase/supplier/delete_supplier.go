package supplier

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lankagrow/backend/internal/application/adapter"
)

// DeleteSupplierInput represents the input for supplier deletion.
type DeleteSupplierInput struct {
	SupplierID uuid.UUID
	UserID     uuid.UUID
}

// DeleteSupplierUseCase handles supplier deletion logic.
type DeleteSupplierUseCase struct {
	supplierRepo adapter.SupplierRepository
}

// NewDeleteSupplierUseCase creates a new DeleteSupplierUseCase instance.
func NewDeleteSupplierUseCase(supplierRepo adapter.SupplierRepository) *DeleteSupplierUseCase {
	return &DeleteSupplierUseCase{supplierRepo: supplierRepo}
}

// Execute soft deletes a supplier.
func (uc *DeleteSupplierUseCase) Execute(ctx context.Context, input DeleteSupplierInput) error {
	supplier, err := uc.supplierRepo.FindByID(ctx, input.SupplierID, input.UserID)
	if err != nil {
		return err
	}

	if err := uc.supplierRepo.Delete(ctx, supplier.ID, input.UserID); err != nil {
		return fmt.Errorf("failed to delete supplier: %w", err)
	}
	return nil
}
