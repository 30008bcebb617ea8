package invoice

import (
	"context"

	"github.com/google/uuid"

	"github.com/lankagrow/backend/internal/application/adapter"
	"github.com/lankagrow/backend/internal/domain/entity"
)

// GetInvoiceInput represents the input for fetching a single invoice.
type GetInvoiceInput struct {
	InvoiceID uuid.UUID
	UserID    uuid.UUID
}

// GetInvoiceOutput represents the output of fetching a single invoice.
type GetInvoiceOutput struct {
	Invoice *entity.InvoiceWithCustomer
}

// GetInvoiceUseCase handles fetching a single invoice with its customer.
type GetInvoiceUseCase struct {
	invoiceRepo adapter.InvoiceRepository
}

// NewGetInvoiceUseCase creates a new GetInvoiceUseCase instance.
func NewGetInvoiceUseCase(invoiceRepo adapter.InvoiceRepository) *GetInvoiceUseCase {
	return &GetInvoiceUseCase{invoiceRepo: invoiceRepo}
}

// Execute fetches an invoice owned by the given user.
func (uc *GetInvoiceUseCase) Execute(ctx context.Context, input GetInvoiceInput) (*GetInvoiceOutput, error) {
	inv, err := uc.invoiceRepo.FindByIDWithCustomer(ctx, input.InvoiceID, input.UserID)
	if err != nil {
		return nil, err
	}
	return &GetInvoiceOutput{Invoice: inv}, nil
}
