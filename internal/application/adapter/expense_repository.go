// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/lankagrow/backend/internal/domain/entity"
)

// ExpenseFilter defines filter options for listing expenses.
type ExpenseFilter struct {
	UserID    uuid.UUID
	Category  string
	StartDate *time.Time
	EndDate   *time.Time
	Search    string // Case-insensitive description match
}

// ExpenseListResult represents the result of listing expenses.
type ExpenseListResult struct {
	Expenses   []*entity.Expense
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ExpenseRepository defines the interface for expense persistence operations.
type ExpenseRepository interface {
	// Create creates a new expense in the database.
	Create(ctx context.Context, expense *entity.Expense) error

	// FindByID retrieves an expense by its ID, scoped to the owner.
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Expense, error)

	// FindByFilter retrieves expenses based on filter criteria with pagination.
	FindByFilter(ctx context.Context, filter ExpenseFilter, pagination Pagination) (*ExpenseListResult, error)

	// Update updates an existing expense in the database.
	Update(ctx context.Context, expense *entity.Expense) error

	// Delete soft-deletes an expense from the database.
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
