package expense

import (
	"context"
	"fmt"

	"github.com/lankagrow/backend/internal/application/adapter"
)

// ListExpensesInput represents the input for listing expenses.
type ListExpensesInput struct {
	Filter     adapter.ExpenseFilter
	Pagination adapter.Pagination
}

// ListExpensesOutput represents the output of listing expenses.
type ListExpensesOutput struct {
	Result *adapter.ExpenseListResult
}

// ListExpensesUseCase handles listing expenses with filters.
type ListExpensesUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(expenseRepo adapter.ExpenseRepository) *ListExpensesUseCase {
	return &ListExpensesUseCase{expenseRepo: expenseRepo}
}

// Execute lists expenses matching the filter.
func (uc *ListExpensesUseCase) Execute(ctx context.Context, input ListExpensesInput) (*ListExpensesOutput, error) {
	if input.Pagination.Page < 1 {
		input.Pagination.Page = 1
	}
	if input.Pagination.Limit < 1 || input.Pagination.Limit > 100 {
		input.Pagination.Limit = 20
	}

	result, err := uc.expenseRepo.FindByFilter(ctx, input.Filter, input.Pagination)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return &ListExpensesOutput{Result: result}, nil
}
