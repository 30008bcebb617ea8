// Package report contains read-only reporting use cases. Every figure is
// recomputed from raw rows on each call; nothing here mutates state.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lankagrow/backend/internal/application/adapter"
)

const dashboardWindow = 30 * 24 * time.Hour

// DashboardInput represents the input for the dashboard report.
type DashboardInput struct {
	UserID uuid.UUID
}

// DashboardOutput is the trailing-30-day business summary.
type DashboardOutput struct {
	Revenue       decimal.Decimal
	Expenses      decimal.Decimal
	Net           decimal.Decimal
	Outstanding   decimal.Decimal
	InvoiceCounts *adapter.InvoiceCounts
	TopProducts   []adapter.ProductSales
	LowStockCount int
}

// DashboardUseCase assembles the trailing-30-day dashboard.
type DashboardUseCase struct {
	reportRepo  adapter.ReportRepository
	productRepo adapter.ProductRepository
}

// NewDashboardUseCase creates a new DashboardUseCase instance.
func NewDashboardUseCase(reportRepo adapter.ReportRepository, productRepo adapter.ProductRepository) *DashboardUseCase {
	return &DashboardUseCase{
		reportRepo:  reportRepo,
		productRepo: productRepo,
	}
}

// Execute computes the dashboard figures.
func (uc *DashboardUseCase) Execute(ctx context.Context, input DashboardInput) (*DashboardOutput, error) {
	end := time.Now().UTC()
	start := end.Add(-dashboardWindow)

	revenue, err := uc.reportRepo.RevenueTotal(ctx, input.UserID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to compute revenue: %w", err)
	}
	expenses, err := uc.reportRepo.ExpenseTotal(ctx, input.UserID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to compute expenses: %w", err)
	}
	outstanding, err := uc.reportRepo.OutstandingReceivables(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute outstanding receivables: %w", err)
	}
	counts, err := uc.reportRepo.InvoiceStatusCounts(ctx, input.UserID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to count invoices: %w", err)
	}
	topProducts, err := uc.reportRepo.TopProducts(ctx, input.UserID, start, end, 5)
	if err != nil {
		return nil, fmt.Errorf("failed to rank products: %w", err)
	}
	lowStock, err := uc.productRepo.FindLowStock(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list low stock products: %w", err)
	}

	return &DashboardOutput{
		Revenue:       revenue,
		Expenses:      expenses,
		Net:           revenue.Sub(expenses),
		Outstanding:   outstanding,
		InvoiceCounts: counts,
		TopProducts:   topProducts,
		LowStockCount: len(lowStock),
	}, nil
}
