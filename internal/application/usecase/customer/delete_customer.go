package customer

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lankagrow/backend/internal/application/adapter"
	domainerror "github.com/lankagrow/backend/internal/domain/error"
)

// DeleteCustomerInput represents the input for customer deletion.
type DeleteCustomerInput struct {
	CustomerID uuid.UUID
	UserID     uuid.UUID
}

// DeleteCustomerUseCase handles customer deletion logic.
type DeleteCustomerUseCase struct {
	customerRepo adapter.CustomerRepository
	invoiceRepo  adapter.InvoiceRepository
}

// NewDeleteCustomerUseCase creates a new DeleteCustomerUseCase instance.
func NewDeleteCustomerUseCase(customerRepo adapter.CustomerRepository, invoiceRepo adapter.InvoiceRepository) *DeleteCustomerUseCase {
	return &DeleteCustomerUseCase{
		customerRepo: customerRepo,
		invoiceRepo:  invoiceRepo,
	}
}

// Execute soft deletes a customer. Customers with existing invoices cannot
// be deleted; their history must keep rendering.
func (uc *DeleteCustomerUseCase) Execute(ctx context.Context, input DeleteCustomerInput) error {
	customer, err := uc.customerRepo.FindByID(ctx, input.CustomerID, input.UserID)
	if err != nil {
		return err
	}

	referenced, err := uc.invoiceRepo.ExistsByCustomer(ctx, customer.ID, input.UserID)
	if err != nil {
		return fmt.Errorf("failed to check invoice references: %w", err)
	}
	if referenced {
		return domainerror.NewCustomerError(
			domainerror.ErrCodeCustomerHasInvoices,
			"customer has existing invoices and cannot be deleted",
			domainerror.ErrCustomerHasInvoices,
		)
	}

	if err := uc.customerRepo.Delete(ctx, customer.ID, input.UserID); err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	return nil
}
