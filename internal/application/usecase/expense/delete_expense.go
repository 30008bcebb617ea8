package expense

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lankagrow/backend/internal/application/adapter"
)

// DeleteExpenseInput represents the input for expense deletion.
type DeleteExpenseInput struct {
	ExpenseID uuid.UUID
	UserID    uuid.UUID
}

// DeleteExpenseUseCase handles expense deletion logic.
type DeleteExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewDeleteExpenseUseCase creates a new DeleteExpenseUseCase instance.
func NewDeleteExpenseUseCase(expenseRepo adapter.ExpenseRepository) *DeleteExpenseUseCase {
	return &DeleteExpenseUseCase{expenseRepo: expenseRepo}
}

// Execute soft deletes an expense.
func (uc *DeleteExpenseUseCase) Execute(ctx context.Context, input DeleteExpenseInput) error {
	expense, err := uc.expenseRepo.FindByID(ctx, input.ExpenseID, input.UserID)
	if err != nil {
		return err
	}

	if err := uc.expenseRepo.Delete(ctx, expense.ID, input.UserID); err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	return nil
}
