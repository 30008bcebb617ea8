// Package supplier contains supplier directory use cases.
package supplier

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lankagrow/backend/internal/application/adapter"
	"github.com/lankagrow/backend/internal/domain/entity"
	domainerror "github.com/lankagrow/backend/internal/domain/error"
)

const (
	// MaxSupplierNameLength is the maximum allowed length for supplier names.
	MaxSupplierNameLength = 255
)

// CreateSupplierInput represents the input for supplier creation.
type CreateSupplierInput struct {
	UserID  uuid.UUID
	Name    string
	Email   string
	Phone   string
	Address string
	Notes   string
}

// CreateSupplierOutput represents the output of supplier creation.
type CreateSupplierOutput struct {
	Supplier *entity.Supplier
}

// CreateSupplierUseCase handles supplier creation logic.
type CreateSupplierUseCase struct {
	supplierRepo adapter.SupplierRepository
}

// NewCreateSupplierUseCase creates a new CreateSupplierUseCase instance.
func NewCreateSupplierUseCase(supplierRepo adapter.SupplierRepository) *CreateSupplierUseCase {
	return &CreateSupplierUseCase{supplierRepo: supplierRepo}
}

// Execute performs the supplier creation.
func (uc *CreateSupplierUseCase) Execute(ctx context.Context, input CreateSupplierInput) (*CreateSupplierOutput, error) {
	if len(input.Name) == 0 || len(input.Name) > MaxSupplierNameLength {
		return nil, domainerror.NewSupplierError(
			domainerror.ErrCodeMissingSupplierFields,
			fmt.Sprintf("supplier name is required and must not exceed %d characters", MaxSupplierNameLength),
			nil,
		)
	}

	supplier := entity.NewSupplier(input.UserID, input.Name, input.Email, input.Phone, input.Address, input.Notes)

	if err := uc.supplierRepo.Create(ctx, supplier); err != nil {
		return nil, fmt.Errorf("failed to create supplier: %w", err)
	}

	return &CreateSupplierOutput{Supplier: supplier}, nil
}
