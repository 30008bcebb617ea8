// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/lankagrow/backend/internal/domain/entity"
)

// CreateExpenseRequest represents the request body for expense creation. An
// empty category asks the advisor to categorize from the description.
type CreateExpenseRequest struct {
	Description string  `json:"description" binding:"required,min=1,max=500"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Category    string  `json:"category,omitempty" binding:"omitempty,max=100"`
	Date        string  `json:"date,omitempty"`
	Notes       string  `json:"notes,omitempty" binding:"omitempty,max=1000"`
}

// UpdateExpenseRequest represents the request body for expense update.
type UpdateExpenseRequest struct {
	Description *string  `json:"description,omitempty" binding:"omitempty,min=1,max=500"`
	Amount      *float64 `json:"amount,omitempty" binding:"omitempty,gt=0"`
	Category    *string  `json:"category,omitempty" binding:"omitempty,max=100"`
	Date        *string  `json:"date,omitempty"`
	Notes       *string  `json:"notes,omitempty" binding:"omitempty,max=1000"`
}

// ExpenseResponse represents a single expense in API responses.
type ExpenseResponse struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Description  string    `json:"description"`
	Amount       string    `json:"amount"`
	Category     string    `json:"category"`
	AIConfidence float64   `json:"ai_confidence"`
	Date         string    `json:"date"`
	Notes        string    `json:"notes"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CreateExpenseResponse represents the response for expense creation.
type CreateExpenseResponse struct {
	ExpenseResponse
	CategorySource string `json:"category_source"`
}

// ExpenseListResponse represents the response for listing expenses.
type ExpenseListResponse struct {
	Expenses   []ExpenseResponse  `json:"expenses"`
	Pagination PaginationResponse `json:"pagination"`
}

// ToExpenseResponse converts a domain Expense entity to an ExpenseResponse DTO.
func ToExpenseResponse(expense *entity.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:           expense.ID.String(),
		UserID:       expense.UserID.String(),
		Description:  expense.Description,
		Amount:       expense.Amount.String(),
		Category:     expense.Category,
		AIConfidence: expense.AIConfidence,
		Date:         expense.Date.Format("2006-01-02"),
		Notes:        expense.Notes,
		CreatedAt:    expense.CreatedAt,
		UpdatedAt:    expense.UpdatedAt,
	}
}

// ToExpenseListResponse converts a list of expenses plus pagination metadata.
func ToExpenseListResponse(expenses []*entity.Expense, pagination PaginationResponse) ExpenseListResponse {
	responses := make([]ExpenseResponse, len(expenses))
	for i, expense := range expenses {
		responses[i] = ToExpenseResponse(expense)
	}
	return ExpenseListResponse{
		Expenses:   responses,
		Pagination: pagination,
	}
}
