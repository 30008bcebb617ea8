package supplier

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lankagrow/backend/internal/application/adapter"
	"github.com/lankagrow/backend/internal/domain/entity"
	domainerror "github.com/lankagrow/backend/internal/domain/error"
)

// UpdateSupplierInput represents the input for supplier updates. Nil pointer
// fields are left unchanged.
type UpdateSupplierInput struct {
	SupplierID uuid.UUID
	UserID     uuid.UUID
	Name       *string
	Email      *string
	Phone      *string
	Address    *string
	Notes      *string
}

// UpdateSupplierOutput represents the output of a supplier update.
type UpdateSupplierOutput struct {
	Supplier *entity.Supplier
}

// UpdateSupplierUseCase handles supplier update logic.
type UpdateSupplierUseCase struct {
	supplierRepo adapter.SupplierRepository
}

// NewUpdateSupplierUseCase creates a new UpdateSupplierUseCase instance.
func NewUpdateSupplierUseCase(supplierRepo adapter.SupplierRepository) *UpdateSupplierUseCase {
	return &UpdateSupplierUseCase{supplierRepo: supplierRepo}
}

// Execute performs the supplier update.
func (uc *UpdateSupplierUseCase) Execute(ctx context.Context, input UpdateSupplierInput) (*UpdateSupplierOutput, error) {
	supplier, err := uc.supplierRepo.FindByID(ctx, input.SupplierID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if len(*input.Name) == 0 || len(*input.Name) > MaxSupplierNameLength {
			return nil, domainerror.NewSupplierError(
				domainerror.ErrCodeMissingSupplierFields,
				fmt.Sprintf("supplier name must not be empty or exceed %d characters", MaxSupplierNameLength),
				nil,
			)
		}
		supplier.Name = *input.Name
	}
	if input.Email != nil {
		supplier.Email = *input.Email
	}
	if input.Phone != nil {
		supplier.Phone = *input.Phone
	}
	if input.Address != nil {
		supplier.Address = *input.Address
	}
	if input.Notes != nil {
		supplier.Notes = *input.Notes
	}

	if err := uc.supplierRepo.Update(ctx, supplier); err != nil {
		return nil, fmt.Errorf("failed to update supplier: %w", err)
	}

	return &UpdateSupplierOutput{Supplier: supplier}, nil
}
