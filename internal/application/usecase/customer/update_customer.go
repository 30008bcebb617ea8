package customer

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lankagrow/backend/internal/application/adapter"
	"github.com/lankagrow/backend/internal/domain/entity"
	domainerror "github.com/lankagrow/backend/internal/domain/error"
)

// UpdateCustomerInput represents the input for customer updates. Nil pointer
// fields are left unchanged. Purchase aggregates are not updatable here.
type UpdateCustomerInput struct {
	CustomerID uuid.UUID
	UserID     uuid.UUID
	Name       *string
	Email      *string
	Phone      *string
	Address    *string
}

// UpdateCustomerOutput represents the output of a customer update.
type UpdateCustomerOutput struct {
	Customer *entity.Customer
}

// UpdateCustomerUseCase handles customer update logic.
type UpdateCustomerUseCase struct {
	customerRepo adapter.CustomerRepository
}

// NewUpdateCustomerUseCase creates a new UpdateCustomerUseCase instance.
func NewUpdateCustomerUseCase(customerRepo adapter.CustomerRepository) *UpdateCustomerUseCase {
	return &UpdateCustomerUseCase{customerRepo: customerRepo}
}

// Execute performs the customer update.
func (uc *UpdateCustomerUseCase) Execute(ctx context.Context, input UpdateCustomerInput) (*UpdateCustomerOutput, error) {
	customer, err := uc.customerRepo.FindByID(ctx, input.CustomerID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if len(*input.Name) == 0 || len(*input.Name) > MaxCustomerNameLength {
			return nil, domainerror.NewCustomerError(
				domainerror.ErrCodeMissingCustomerFields,
				fmt.Sprintf("customer name must not be empty or exceed %d characters", MaxCustomerNameLength),
				nil,
			)
		}
		customer.Name = *input.Name
	}
	if input.Email != nil {
		if *input.Email != "" && !emailRegex.MatchString(*input.Email) {
			return nil, domainerror.NewCustomerError(
				domainerror.ErrCodeMissingCustomerFields,
				"customer email format is invalid",
				nil,
			)
		}
		customer.Email = *input.Email
	}
	if input.Phone != nil {
		customer.Phone = *input.Phone
	}
	if input.Address != nil {
		customer.Address = *input.Address
	}

	if err := uc.customerRepo.Update(ctx, customer); err != nil {
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}

	return &UpdateCustomerOutput{Customer: customer}, nil
}
