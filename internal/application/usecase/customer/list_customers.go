package customer

import (
	"context"
	"fmt"

	"github.com/lankagrow/backend/internal/application/adapter"
)

// ListCustomersInput represents the input for listing customers.
type ListCustomersInput struct {
	Filter     adapter.CustomerFilter
	Pagination adapter.Pagination
}

// ListCustomersOutput represents the output of listing customers.
type ListCustomersOutput struct {
	Result *adapter.CustomerListResult
}

// ListCustomersUseCase handles listing customers with filters.
type ListCustomersUseCase struct {
	customerRepo adapter.CustomerRepository
}

// NewListCustomersUseCase creates a new ListCustomersUseCase instance.
func NewListCustomersUseCase(customerRepo adapter.CustomerRepository) *ListCustomersUseCase {
	return &ListCustomersUseCase{customerRepo: customerRepo}
}

// Execute lists customers matching the filter.
func (uc *ListCustomersUseCase) Execute(ctx context.Context, input ListCustomersInput) (*ListCustomersOutput, error) {
	if input.Pagination.Page < 1 {
		input.Pagination.Page = 1
	}
	if input.Pagination.Limit < 1 || input.Pagination.Limit > 100 {
		input.Pagination.Limit = 20
	}

	result, err := uc.customerRepo.FindByFilter(ctx, input.Filter, input.Pagination)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return &ListCustomersOutput{Result: result}, nil
}
