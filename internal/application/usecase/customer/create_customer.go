// Package customer contains customer directory use cases.
package customer

import (
	"context"
	"fmt"
	"regexp"

	"github.com/google/uuid"

	"github.com/lankagrow/backend/internal/application/adapter"
	"github.com/lankagrow/backend/internal/domain/entity"
	domainerror "github.com/lankagrow/backend/internal/domain/error"
)

const (
	// MaxCustomerNameLength is the maximum allowed length for customer names.
	MaxCustomerNameLength = 255
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// CreateCustomerInput represents the input for customer creation.
type CreateCustomerInput struct {
	UserID  uuid.UUID
	Name    string
	Email   string
	Phone   string
	Address string
}

// CreateCustomerOutput represents the output of customer creation.
type CreateCustomerOutput struct {
	Customer *entity.Customer
}

// CreateCustomerUseCase handles customer creation logic.
type CreateCustomerUseCase struct {
	customerRepo adapter.CustomerRepository
}

// NewCreateCustomerUseCase creates a new CreateCustomerUseCase instance.
func NewCreateCustomerUseCase(customerRepo adapter.CustomerRepository) *CreateCustomerUseCase {
	return &CreateCustomerUseCase{customerRepo: customerRepo}
}

// Execute performs the customer creation.
func (uc *CreateCustomerUseCase) Execute(ctx context.Context, input CreateCustomerInput) (*CreateCustomerOutput, error) {
	if len(input.Name) == 0 || len(input.Name) > MaxCustomerNameLength {
		return nil, domainerror.NewCustomerError(
			domainerror.ErrCodeMissingCustomerFields,
			fmt.Sprintf("customer name is required and must not exceed %d characters", MaxCustomerNameLength),
			nil,
		)
	}
	if input.Email != "" && !emailRegex.MatchString(input.Email) {
		return nil, domainerror.NewCustomerError(
			domainerror.ErrCodeMissingCustomerFields,
			"customer email format is invalid",
			nil,
		)
	}

	customer := entity.NewCustomer(input.UserID, input.Name, input.Email, input.Phone, input.Address)

	if err := uc.customerRepo.Create(ctx, customer); err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	return &CreateCustomerOutput{Customer: customer}, nil
}
