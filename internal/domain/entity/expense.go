// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense represents a business expense. Category is either caller-supplied or
// suggested by the advisory service; AIConfidence is advisory only and never
// drives control flow.
type Expense struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Description  string
	Amount       decimal.Decimal
	Category     string
	AIConfidence float64 // 0..1, advisory only
	Date         time.Time
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time // Soft-delete support
}

// NewExpense creates a new Expense entity.
func NewExpense(userID uuid.UUID, description string, amount decimal.Decimal, category string, date time.Time, notes string) *Expense {
	now := time.Now().UTC()

	return &Expense{
		ID:          uuid.New(),
		UserID:      userID,
		Description: description,
		Amount:      amount,
		Category:    category,
		Date:        date,
		Notes:       notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
