package customer

import (
	"context"

	"github.com/google/uuid"

	"github.com/lankagrow/backend/internal/application/adapter"
	"github.com/lankagrow/backend/internal/domain/entity"
)

// GetCustomerInput represents the input for fetching a single customer.
type GetCustomerInput struct {
	CustomerID uuid.UUID
	UserID     uuid.UUID
}

// GetCustomerOutput represents the output of fetching a single customer.
type GetCustomerOutput struct {
	Customer *entity.Customer
}

// GetCustomerUseCase handles fetching a single customer.
type GetCustomerUseCase struct {
	customerRepo adapter.CustomerRepository
}

// NewGetCustomerUseCase creates a new GetCustomerUseCase instance.
func NewGetCustomerUseCase(customerRepo adapter.CustomerRepository) *GetCustomerUseCase {
	return &GetCustomerUseCase{customerRepo: customerRepo}
}

// Execute fetches a customer owned by the given user.
func (uc *GetCustomerUseCase) Execute(ctx context.Context, input GetCustomerInput) (*GetCustomerOutput, error) {
	customer, err := uc.customerRepo.FindByID(ctx, input.CustomerID, input.UserID)
	if err != nil {
		return nil, err
	}
	return &GetCustomerOutput{Customer: customer}, nil
}
