package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lankagrow/backend/internal/application/adapter"
	"github.com/lankagrow/backend/internal/domain/entity"
	domainerror "github.com/lankagrow/backend/internal/domain/error"
)

// UpdateExpenseInput represents the input for expense updates. Nil pointer
// fields are left unchanged.
type UpdateExpenseInput struct {
	ExpenseID   uuid.UUID
	UserID      uuid.UUID
	Description *string
	Amount      *decimal.Decimal
	Category    *string
	Date        *time.Time
	Notes       *string
}

// UpdateExpenseOutput represents the output of an expense update.
type UpdateExpenseOutput struct {
	Expense *entity.Expense
}

// UpdateExpenseUseCase handles expense update logic.
type UpdateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewUpdateExpenseUseCase creates a new UpdateExpenseUseCase instance.
func NewUpdateExpenseUseCase(expenseRepo adapter.ExpenseRepository) *UpdateExpenseUseCase {
	return &UpdateExpenseUseCase{expenseRepo: expenseRepo}
}

// Execute performs the expense update. Setting a category manually clears the
// advisory confidence; the value is now the user's own.
func (uc *UpdateExpenseUseCase) Execute(ctx context.Context, input UpdateExpenseInput) (*UpdateExpenseOutput, error) {
	expense, err := uc.expenseRepo.FindByID(ctx, input.ExpenseID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Description != nil {
		if len(*input.Description) == 0 || len(*input.Description) > MaxDescriptionLength {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeMissingExpenseFields,
				fmt.Sprintf("description must not be empty or exceed %d characters", MaxDescriptionLength),
				nil,
			)
		}
		expense.Description = *input.Description
	}
	if input.Amount != nil {
		if !input.Amount.IsPositive() {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeInvalidExpenseAmount,
				"expense amount must be positive",
				domainerror.ErrInvalidExpenseAmount,
			)
		}
		expense.Amount = *input.Amount
	}
	if input.Category != nil {
		expense.Category = *input.Category
		expense.AIConfidence = 0
	}
	if input.Date != nil {
		expense.Date = *input.Date
	}
	if input.Notes != nil {
		expense.Notes = *input.Notes
	}

	if err := uc.expenseRepo.Update(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	return &UpdateExpenseOutput{Expense: expense}, nil
}
