// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MonthlyAmount is one month's aggregated amount (period start is the first
// day of the month).
type MonthlyAmount struct {
	PeriodStart time.Time
	Amount      decimal.Decimal
}

// CategoryAmount is one expense category's aggregated spend.
type CategoryAmount struct {
	Category string
	Amount   decimal.Decimal
}

// ProductSales is one product's sales over a window.
type ProductSales struct {
	ProductID    uuid.UUID
	ProductName  string
	QuantitySold int
	Revenue      decimal.Decimal
}

// CustomerSales is one customer's purchases over a window.
type CustomerSales struct {
	CustomerID   uuid.UUID
	CustomerName string
	InvoiceCount int
	Revenue      decimal.Decimal
}

// InvoiceCounts summarizes invoice lifecycle states over a window.
type InvoiceCounts struct {
	Total     int
	Draft     int
	Sent      int
	Paid      int
	Overdue   int
	Cancelled int
}

// ReportRepository defines read-only aggregation queries over invoices,
// expenses, customers and products. Revenue figures only count paid invoices.
// There is no caching; every call recomputes from raw rows.
type ReportRepository interface {
	// RevenueTotal sums paid invoice totals in the window.
	RevenueTotal(ctx context.Context, userID uuid.UUID, start, end time.Time) (decimal.Decimal, error)

	// ExpenseTotal sums expenses in the window.
	ExpenseTotal(ctx context.Context, userID uuid.UUID, start, end time.Time) (decimal.Decimal, error)

	// ExpensesByCategory groups expense totals by category, largest first.
	ExpensesByCategory(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]CategoryAmount, error)

	// MonthlyRevenue buckets paid invoice totals by calendar month.
	MonthlyRevenue(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]MonthlyAmount, error)

	// MonthlyExpenses buckets expense totals by calendar month.
	MonthlyExpenses(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]MonthlyAmount, error)

	// TopProducts returns the best-selling products by quantity in the window.
	TopProducts(ctx context.Context, userID uuid.UUID, start, end time.Time, limit int) ([]ProductSales, error)

	// TopCustomers returns the highest-revenue customers in the window.
	TopCustomers(ctx context.Context, userID uuid.UUID, start, end time.Time, limit int) ([]CustomerSales, error)

	// OutstandingReceivables sums totals of sent and overdue invoices.
	OutstandingReceivables(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error)

	// InvoiceStatusCounts counts invoices per lifecycle state in the window.
	InvoiceStatusCounts(ctx context.Context, userID uuid.UUID, start, end time.Time) (*InvoiceCounts, error)

	// InventoryValuation sums currentStock x purchasePrice over the catalog.
	InventoryValuation(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error)
}
