package invoice

import (
	"context"
	"fmt"

	"github.com/lankagrow/backend/internal/application/adapter"
)

// ListInvoicesInput represents the input for listing invoices.
type ListInvoicesInput struct {
	Filter     adapter.InvoiceFilter
	Pagination adapter.Pagination
}

// ListInvoicesOutput represents the output of listing invoices.
type ListInvoicesOutput struct {
	Result *adapter.InvoiceListResult
}

// ListInvoicesUseCase handles listing invoices with filters.
type ListInvoicesUseCase struct {
	invoiceRepo adapter.InvoiceRepository
}

// NewListInvoicesUseCase creates a new ListInvoicesUseCase instance.
func NewListInvoicesUseCase(invoiceRepo adapter.InvoiceRepository) *ListInvoicesUseCase {
	return &ListInvoicesUseCase{invoiceRepo: invoiceRepo}
}

// Execute lists invoices matching the filter.
func (uc *ListInvoicesUseCase) Execute(ctx context.Context, input ListInvoicesInput) (*ListInvoicesOutput, error) {
	if input.Pagination.Page < 1 {
		input.Pagination.Page = 1
	}
	if input.Pagination.Limit < 1 || input.Pagination.Limit > 100 {
		input.Pagination.Limit = 20
	}

	result, err := uc.invoiceRepo.FindByFilter(ctx, input.Filter, input.Pagination)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	return &ListInvoicesOutput{Result: result}, nil
}
