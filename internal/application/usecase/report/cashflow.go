package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lankagrow/backend/internal/application/adapter"
)

// CashflowInput represents the input for the cashflow report.
type CashflowInput struct {
	UserID    uuid.UUID
	StartDate time.Time
	EndDate   time.Time
}

// CashflowMonth is one month's money in versus money out.
type CashflowMonth struct {
	PeriodStart time.Time
	In          decimal.Decimal
	Out         decimal.Decimal
	Net         decimal.Decimal
}

// CashflowOutput is the monthly cashflow over a window.
type CashflowOutput struct {
	StartDate time.Time
	EndDate   time.Time
	Months    []CashflowMonth
}

// CashflowUseCase merges monthly paid-invoice revenue against monthly
// expenses into a single in/out series.
type CashflowUseCase struct {
	reportRepo adapter.ReportRepository
}

// NewCashflowUseCase creates a new CashflowUseCase instance.
func NewCashflowUseCase(reportRepo adapter.ReportRepository) *CashflowUseCase {
	return &CashflowUseCase{reportRepo: reportRepo}
}

// Execute computes the cashflow report.
func (uc *CashflowUseCase) Execute(ctx context.Context, input CashflowInput) (*CashflowOutput, error) {
	start, end, err := resolveRange(input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}

	revenue, err := uc.reportRepo.MonthlyRevenue(ctx, input.UserID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to bucket revenue: %w", err)
	}
	expenses, err := uc.reportRepo.MonthlyExpenses(ctx, input.UserID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to bucket expenses: %w", err)
	}

	return &CashflowOutput{
		StartDate: start,
		EndDate:   end,
		Months:    mergeMonths(revenue, expenses),
	}, nil
}

// mergeMonths zips two sparse monthly series into one ordered series covering
// every month either side mentions.
func mergeMonths(in, out []adapter.MonthlyAmount) []CashflowMonth {
	byPeriod := make(map[time.Time]*CashflowMonth)
	var order []time.Time

	get := func(period time.Time) *CashflowMonth {
		if m, ok := byPeriod[period]; ok {
			return m
		}
		m := &CashflowMonth{PeriodStart: period, In: decimal.Zero, Out: decimal.Zero}
		byPeriod[period] = m
		order = append(order, period)
		return m
	}

	for _, r := range in {
		get(r.PeriodStart).In = r.Amount
	}
	for _, e := range out {
		get(e.PeriodStart).Out = e.Amount
	}

	sort.Slice(order, func(i, j int) bool { return order[i].Before(order[j]) })

	months := make([]CashflowMonth, 0, len(order))
	for _, period := range order {
		m := byPeriod[period]
		m.Net = m.In.Sub(m.Out)
		months = append(months, *m)
	}
	return months
}
