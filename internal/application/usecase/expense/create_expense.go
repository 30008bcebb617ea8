// Package expense contains expense tracking use cases.
package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lankagrow/backend/internal/application/adapter"
	"github.com/lankagrow/backend/internal/application/advisor"
	"github.com/lankagrow/backend/internal/domain/entity"
	domainerror "github.com/lankagrow/backend/internal/domain/error"
)

const (
	// MaxDescriptionLength is the maximum allowed length for expense descriptions.
	MaxDescriptionLength = 500
)

// CreateExpenseInput represents the input for expense creation. An empty
// Category asks the advisory service to suggest one.
type CreateExpenseInput struct {
	UserID      uuid.UUID
	Description string
	Amount      decimal.Decimal
	Category    string
	Date        time.Time
	Notes       string
}

// CreateExpenseOutput represents the output of expense creation.
type CreateExpenseOutput struct {
	Expense        *entity.Expense
	CategorySource advisor.Source
}

// CreateExpenseUseCase handles expense creation logic.
type CreateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
	advisor     *advisor.Service
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(expenseRepo adapter.ExpenseRepository, advisorService *advisor.Service) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{
		expenseRepo: expenseRepo,
		advisor:     advisorService,
	}
}

// Execute performs the expense creation. Categorization is advisory and never
// blocks the write; a caller-supplied category always wins.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input CreateExpenseInput) (*CreateExpenseOutput, error) {
	if len(input.Description) == 0 || len(input.Description) > MaxDescriptionLength {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeMissingExpenseFields,
			fmt.Sprintf("description is required and must not exceed %d characters", MaxDescriptionLength),
			nil,
		)
	}
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseAmount,
			"expense amount must be positive",
			domainerror.ErrInvalidExpenseAmount,
		)
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}

	expense := entity.NewExpense(input.UserID, input.Description, input.Amount, input.Category, date, input.Notes)

	source := advisor.Source("")
	if input.Category == "" {
		suggestion := uc.advisor.CategorizeExpense(ctx, input.Description, input.Amount)
		expense.Category = suggestion.Category
		expense.AIConfidence = suggestion.Confidence
		source = suggestion.Source
	}

	if err := uc.expenseRepo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	return &CreateExpenseOutput{Expense: expense, CategorySource: source}, nil
}
