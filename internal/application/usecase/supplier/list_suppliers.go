package supplier

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lankagrow/backend/internal/application/adapter"
	"github.com/lankagrow/backend/internal/domain/entity"
)

// ListSuppliersInput represents the input for listing suppliers.
type ListSuppliersInput struct {
	UserID uuid.UUID
}

// ListSuppliersOutput represents the output of listing suppliers.
type ListSuppliersOutput struct {
	Suppliers []*entity.Supplier
}

// ListSuppliersUseCase handles listing a user's suppliers.
type ListSuppliersUseCase struct {
	supplierRepo adapter.SupplierRepository
}

// NewListSuppliersUseCase creates a new ListSuppliersUseCase instance.
func NewListSuppliersUseCase(supplierRepo adapter.SupplierRepository) *ListSuppliersUseCase {
	return &ListSuppliersUseCase{supplierRepo: supplierRepo}
}

// Execute lists all suppliers for the user.
func (uc *ListSuppliersUseCase) Execute(ctx context.Context, input ListSuppliersInput) (*ListSuppliersOutput, error) {
	suppliers, err := uc.supplierRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list suppliers: %w", err)
	}
	return &ListSuppliersOutput{Suppliers: suppliers}, nil
}
