package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lankagrow/backend/internal/application/adapter"
)

// SalesReportInput represents the input for the sales report.
type SalesReportInput struct {
	UserID    uuid.UUID
	StartDate time.Time
	EndDate   time.Time
}

// SalesReportOutput is the monthly sales breakdown over a window.
type SalesReportOutput struct {
	StartDate      time.Time
	EndDate        time.Time
	MonthlyRevenue []adapter.MonthlyAmount
	TopProducts    []adapter.ProductSales
	TopCustomers   []adapter.CustomerSales
}

// SalesReportUseCase computes monthly revenue and top sellers.
type SalesReportUseCase struct {
	reportRepo adapter.ReportRepository
}

// NewSalesReportUseCase creates a new SalesReportUseCase instance.
func NewSalesReportUseCase(reportRepo adapter.ReportRepository) *SalesReportUseCase {
	return &SalesReportUseCase{reportRepo: reportRepo}
}

// Execute computes the sales report.
func (uc *SalesReportUseCase) Execute(ctx context.Context, input SalesReportInput) (*SalesReportOutput, error) {
	start, end, err := resolveRange(input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}

	monthly, err := uc.reportRepo.MonthlyRevenue(ctx, input.UserID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to bucket revenue: %w", err)
	}
	topProducts, err := uc.reportRepo.TopProducts(ctx, input.UserID, start, end, 10)
	if err != nil {
		return nil, fmt.Errorf("failed to rank products: %w", err)
	}
	topCustomers, err := uc.reportRepo.TopCustomers(ctx, input.UserID, start, end, 10)
	if err != nil {
		return nil, fmt.Errorf("failed to rank customers: %w", err)
	}

	return &SalesReportOutput{
		StartDate:      start,
		EndDate:        end,
		MonthlyRevenue: monthly,
		TopProducts:    topProducts,
		TopCustomers:   topCustomers,
	}, nil
}
