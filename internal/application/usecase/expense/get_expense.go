package expense

import (
	"context"

	"github.com/google/uuid"

	"github.com/lankagrow/backend/internal/application/adapter"
	"github.com/lankagrow/backend/internal/domain/entity"
)

// GetExpenseInput represents the input for fetching a single expense.
type GetExpenseInput struct {
	ExpenseID uuid.UUID
	UserID    uuid.UUID
}

// GetExpenseOutput represents the output of fetching a single expense.
type GetExpenseOutput struct {
	Expense *entity.Expense
}

// GetExpenseUseCase handles fetching a single expense.
type GetExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewGetExpenseUseCase creates a new GetExpenseUseCase instance.
func NewGetExpenseUseCase(expenseRepo adapter.ExpenseRepository) *GetExpenseUseCase {
	return &GetExpenseUseCase{expenseRepo: expenseRepo}
}

// Execute fetches an expense owned by the given user.
func (uc *GetExpenseUseCase) Execute(ctx context.Context, input GetExpenseInput) (*GetExpenseOutput, error) {
	expense, err := uc.expenseRepo.FindByID(ctx, input.ExpenseID, input.UserID)
	if err != nil {
		return nil, err
	}
	return &GetExpenseOutput{Expense: expense}, nil
}
