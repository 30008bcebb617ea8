package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lankagrow/backend/internal/application/adapter"
	"github.com/lankagrow/backend/internal/application/advisor"
)

// AIInsightsInput represents the input for the insights report.
type AIInsightsInput struct {
	UserID uuid.UUID
}

// AIInsightsOutput carries the advisory narratives. Source is fallback
// whenever the upstream model is unavailable; the shape never changes.
type AIInsightsOutput struct {
	Forecast       string
	ForecastSource advisor.Source
	Insight        string
	InsightSource  advisor.Source
}

// AIInsightsUseCase assembles the aggregates the advisory service narrates.
type AIInsightsUseCase struct {
	reportRepo  adapter.ReportRepository
	productRepo adapter.ProductRepository
	userRepo    adapter.UserRepository
	advisor     *advisor.Service
}

// NewAIInsightsUseCase creates a new AIInsightsUseCase instance.
func NewAIInsightsUseCase(
	reportRepo adapter.ReportRepository,
	productRepo adapter.ProductRepository,
	userRepo adapter.UserRepository,
	advisorService *advisor.Service,
) *AIInsightsUseCase {
	return &AIInsightsUseCase{
		reportRepo:  reportRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
		advisor:     advisorService,
	}
}

// Execute computes the forecast and insight narratives. Aggregation failures
// are real errors; advisory failures are not observable here.
func (uc *AIInsightsUseCase) Execute(ctx context.Context, input AIInsightsInput) (*AIInsightsOutput, error) {
	now := time.Now().UTC()

	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve user: %w", err)
	}

	history, err := uc.reportRepo.MonthlyRevenue(ctx, input.UserID, now.AddDate(0, -6, 0), now)
	if err != nil {
		return nil, fmt.Errorf("failed to bucket revenue: %w", err)
	}

	windowStart := now.Add(-dashboardWindow)
	revenue, err := uc.reportRepo.RevenueTotal(ctx, input.UserID, windowStart, now)
	if err != nil {
		return nil, fmt.Errorf("failed to compute revenue: %w", err)
	}
	expenses, err := uc.reportRepo.ExpenseTotal(ctx, input.UserID, windowStart, now)
	if err != nil {
		return nil, fmt.Errorf("failed to compute expenses: %w", err)
	}
	outstanding, err := uc.reportRepo.OutstandingReceivables(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute outstanding receivables: %w", err)
	}
	topProducts, err := uc.reportRepo.TopProducts(ctx, input.UserID, windowStart, now, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to rank products: %w", err)
	}
	lowStock, err := uc.productRepo.FindLowStock(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list low stock products: %w", err)
	}

	names := make([]string, 0, len(topProducts))
	for _, p := range topProducts {
		names = append(names, p.ProductName)
	}

	forecast := uc.advisor.ForecastSales(ctx, history, user.Currency)
	insight := uc.advisor.GenerateInsight(ctx, adapter.BusinessSnapshot{
		Revenue30d:      revenue,
		Expenses30d:     expenses,
		Outstanding:     outstanding,
		Currency:        user.Currency,
		TopProductNames: names,
		LowStockCount:   len(lowStock),
	})

	return &AIInsightsOutput{
		Forecast:       forecast.Text,
		ForecastSource: forecast.Source,
		Insight:        insight.Text,
		InsightSource:  insight.Source,
	}, nil
}
