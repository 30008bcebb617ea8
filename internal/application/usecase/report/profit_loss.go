package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lankagrow/backend/internal/application/adapter"
)

// ProfitLossInput represents the input for the profit and loss report.
type ProfitLossInput struct {
	UserID    uuid.UUID
	StartDate time.Time
	EndDate   time.Time
}

// ProfitLossOutput is the profit and loss statement over a window.
type ProfitLossOutput struct {
	StartDate          time.Time
	EndDate            time.Time
	Revenue            decimal.Decimal
	ExpensesByCategory []adapter.CategoryAmount
	TotalExpenses      decimal.Decimal
	Net                decimal.Decimal
}

// ProfitLossUseCase computes revenue against categorized expenses.
type ProfitLossUseCase struct {
	reportRepo adapter.ReportRepository
}

// NewProfitLossUseCase creates a new ProfitLossUseCase instance.
func NewProfitLossUseCase(reportRepo adapter.ReportRepository) *ProfitLossUseCase {
	return &ProfitLossUseCase{reportRepo: reportRepo}
}

// Execute computes the statement. Revenue only counts paid invoices.
func (uc *ProfitLossUseCase) Execute(ctx context.Context, input ProfitLossInput) (*ProfitLossOutput, error) {
	start, end, err := resolveRange(input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}

	revenue, err := uc.reportRepo.RevenueTotal(ctx, input.UserID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to compute revenue: %w", err)
	}
	byCategory, err := uc.reportRepo.ExpensesByCategory(ctx, input.UserID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to group expenses: %w", err)
	}

	total := decimal.Zero
	for _, c := range byCategory {
		total = total.Add(c.Amount)
	}

	return &ProfitLossOutput{
		StartDate:          start,
		EndDate:            end,
		Revenue:            revenue,
		ExpensesByCategory: byCategory,
		TotalExpenses:      total,
		Net:                revenue.Sub(total),
	}, nil
}
