// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseCategorySuggestion is a suggested category for an expense.
type ExpenseCategorySuggestion struct {
	Category   string
	Confidence float64 // 0..1
}

// FollowUpRequest describes an overdue invoice needing a reminder message.
type FollowUpRequest struct {
	CustomerName  string
	InvoiceNumber string
	TotalAmount   decimal.Decimal
	Currency      string
	DueDate       time.Time
	DaysPastDue   int
}

// ReorderRequest describes a product at or below its reorder threshold.
type ReorderRequest struct {
	ProductName   string
	CurrentStock  int
	MinStockLevel int
	SoldLast30d   int
}

// BusinessSnapshot is the aggregate input for insight generation.
type BusinessSnapshot struct {
	Revenue30d      decimal.Decimal
	Expenses30d     decimal.Decimal
	Outstanding     decimal.Decimal
	Currency        string
	TopProductNames []string
	LowStockCount   int
}

// AIClient is the raw text-generation client behind the advisory service.
// Implementations may fail for any reason (missing credentials, upstream
// outage, unparseable response); the advisory service absorbs every failure
// into a deterministic fallback, so nothing above it ever branches on these
// errors.
type AIClient interface {
	// IsAvailable reports whether the client is configured with credentials.
	IsAvailable() bool

	// CategorizeExpense suggests a category for an expense description.
	CategorizeExpense(ctx context.Context, description string, amount decimal.Decimal) (*ExpenseCategorySuggestion, error)

	// GenerateProductTags suggests search tags for a catalog product.
	GenerateProductTags(ctx context.Context, name, category, description string) ([]string, error)

	// ForecastSales produces a short sales-forecast narrative from monthly revenue history.
	ForecastSales(ctx context.Context, history []MonthlyAmount, currency string) (string, error)

	// GenerateInsight produces a short business-insight narrative from a snapshot.
	GenerateInsight(ctx context.Context, snapshot BusinessSnapshot) (string, error)

	// FollowUpMessage drafts a payment reminder for an overdue invoice.
	FollowUpMessage(ctx context.Context, req FollowUpRequest) (string, error)

	// SuggestReorderQuantity suggests how many units to reorder.
	SuggestReorderQuantity(ctx context.Context, req ReorderRequest) (int, error)
}
