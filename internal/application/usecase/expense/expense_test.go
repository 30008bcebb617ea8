package expense

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lankagrow/backend/internal/application/adapter"
	"github.com/lankagrow/backend/internal/application/advisor"
	"github.com/lankagrow/backend/internal/domain/entity"
	domainerror "github.com/lankagrow/backend/internal/domain/error"
)

type fakeExpenseRepo struct {
	expenses map[uuid.UUID]*entity.Expense
}

func newFakeExpenseRepo() *fakeExpenseRepo {
	return &fakeExpenseRepo{expenses: make(map[uuid.UUID]*entity.Expense)}
}

func (f *fakeExpenseRepo) Create(ctx context.Context, e *entity.Expense) error {
	f.expenses[e.ID] = e
	return nil
}

func (f *fakeExpenseRepo) FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Expense, error) {
	e, ok := f.expenses[id]
	if !ok || e.UserID != userID {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseNotFound, "expense not found", domainerror.ErrExpenseNotFound)
	}
	return e, nil
}

func (f *fakeExpenseRepo) FindByFilter(ctx context.Context, filter adapter.ExpenseFilter, pagination adapter.Pagination) (*adapter.ExpenseListResult, error) {
	return &adapter.ExpenseListResult{}, nil
}

func (f *fakeExpenseRepo) Update(ctx context.Context, e *entity.Expense) error {
	f.expenses[e.ID] = e
	return nil
}

func (f *fakeExpenseRepo) Delete(ctx context.Context, id, userID uuid.UUID) error {
	delete(f.expenses, id)
	return nil
}

func expenseErrorCode(t *testing.T, err error) domainerror.ExpenseErrorCode {
	t.Helper()
	var expErr *domainerror.ExpenseError
	if !errors.As(err, &expErr) {
		t.Fatalf("expected ExpenseError, got %v", err)
	}
	return expErr.Code
}

func TestCreateExpenseUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	advisorService := advisor.NewService(nil)

	t.Run("suggests a category when none given", func(t *testing.T) {
		repo := newFakeExpenseRepo()
		uc := NewCreateExpenseUseCase(repo, advisorService)

		output, err := uc.Execute(ctx, CreateExpenseInput{
			UserID:      userID,
			Description: "diesel for delivery van",
			Amount:      decimal.NewFromInt(4500),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Expense.Category != "Transport" {
			t.Errorf("expected suggested category Transport, got %q", output.Expense.Category)
		}
		if output.CategorySource != advisor.SourceFallback {
			t.Errorf("expected fallback source, got %s", output.CategorySource)
		}
		if output.Expense.AIConfidence != 0.6 {
			t.Errorf("expected confidence 0.6, got %v", output.Expense.AIConfidence)
		}
	})

	t.Run("caller category always wins", func(t *testing.T) {
		repo := newFakeExpenseRepo()
		uc := NewCreateExpenseUseCase(repo, advisorService)

		output, err := uc.Execute(ctx, CreateExpenseInput{
			UserID:      userID,
			Description: "diesel for delivery van",
			Amount:      decimal.NewFromInt(4500),
			Category:    "Vehicle",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Expense.Category != "Vehicle" {
			t.Errorf("expected caller category Vehicle, got %q", output.Expense.Category)
		}
		if output.CategorySource != advisor.Source("") {
			t.Errorf("expected no category source, got %s", output.CategorySource)
		}
	})

	t.Run("defaults the date to now", func(t *testing.T) {
		repo := newFakeExpenseRepo()
		uc := NewCreateExpenseUseCase(repo, advisorService)

		before := time.Now().UTC()
		output, err := uc.Execute(ctx, CreateExpenseInput{
			UserID:      userID,
			Description: "shop rent",
			Amount:      decimal.NewFromInt(30000),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Expense.Date.Before(before) {
			t.Errorf("expected date defaulted to now, got %v", output.Expense.Date)
		}
	})

	t.Run("rejects a non-positive amount", func(t *testing.T) {
		repo := newFakeExpenseRepo()
		uc := NewCreateExpenseUseCase(repo, advisorService)

		_, err := uc.Execute(ctx, CreateExpenseInput{
			UserID:      userID,
			Description: "shop rent",
			Amount:      decimal.Zero,
		})
		if code := expenseErrorCode(t, err); code != domainerror.ErrCodeInvalidExpenseAmount {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidExpenseAmount, code)
		}
	})

	t.Run("rejects an empty description", func(t *testing.T) {
		repo := newFakeExpenseRepo()
		uc := NewCreateExpenseUseCase(repo, advisorService)

		_, err := uc.Execute(ctx, CreateExpenseInput{
			UserID: userID,
			Amount: decimal.NewFromInt(100),
		})
		if code := expenseErrorCode(t, err); code != domainerror.ErrCodeMissingExpenseFields {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeMissingExpenseFields, code)
		}
	})
}
