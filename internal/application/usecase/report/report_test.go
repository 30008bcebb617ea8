package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lankagrow/backend/internal/application/adapter"
	"github.com/lankagrow/backend/internal/application/advisor"
	"github.com/lankagrow/backend/internal/domain/entity"
	domainerror "github.com/lankagrow/backend/internal/domain/error"
)

type fakeReportRepo struct {
	revenue     decimal.Decimal
	expenses    decimal.Decimal
	byCategory  []adapter.CategoryAmount
	monthly     []adapter.MonthlyAmount
	outstanding decimal.Decimal
	counts      adapter.InvoiceCounts
	topProducts []adapter.ProductSales
}

func (f *fakeReportRepo) RevenueTotal(ctx context.Context, userID uuid.UUID, start, end time.Time) (decimal.Decimal, error) {
	return f.revenue, nil
}

func (f *fakeReportRepo) ExpenseTotal(ctx context.Context, userID uuid.UUID, start, end time.Time) (decimal.Decimal, error) {
	return f.expenses, nil
}

func (f *fakeReportRepo) ExpensesByCategory(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]adapter.CategoryAmount, error) {
	return f.byCategory, nil
}

func (f *fakeReportRepo) MonthlyRevenue(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]adapter.MonthlyAmount, error) {
	return f.monthly, nil
}

func (f *fakeReportRepo) MonthlyExpenses(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]adapter.MonthlyAmount, error) {
	return nil, nil
}

func (f *fakeReportRepo) TopProducts(ctx context.Context, userID uuid.UUID, start, end time.Time, limit int) ([]adapter.ProductSales, error) {
	return f.topProducts, nil
}

func (f *fakeReportRepo) TopCustomers(ctx context.Context, userID uuid.UUID, start, end time.Time, limit int) ([]adapter.CustomerSales, error) {
	return nil, nil
}

func (f *fakeReportRepo) OutstandingReceivables(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	return f.outstanding, nil
}

func (f *fakeReportRepo) InvoiceStatusCounts(ctx context.Context, userID uuid.UUID, start, end time.Time) (*adapter.InvoiceCounts, error) {
	counts := f.counts
	return &counts, nil
}

func (f *fakeReportRepo) InventoryValuation(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

type fakeProductRepo struct {
	lowStock []*entity.Product
}

func (f *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error { return nil }

func (f *fakeProductRepo) FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Product, error) {
	return nil, domainerror.ErrProductNotFound
}

func (f *fakeProductRepo) FindByFilter(ctx context.Context, filter adapter.ProductFilter, pagination adapter.Pagination) (*adapter.ProductListResult, error) {
	return &adapter.ProductListResult{}, nil
}

func (f *fakeProductRepo) FindLowStock(ctx context.Context, userID uuid.UUID) ([]*entity.Product, error) {
	return f.lowStock, nil
}

func (f *fakeProductRepo) ExistsBySKU(ctx context.Context, userID uuid.UUID, sku string) (bool, error) {
	return false, nil
}

func (f *fakeProductRepo) Update(ctx context.Context, product *entity.Product) error { return nil }

func (f *fakeProductRepo) Delete(ctx context.Context, id, userID uuid.UUID) error { return nil }

func (f *fakeProductRepo) AdjustStock(ctx context.Context, id, userID uuid.UUID, quantity int, adjustment adapter.StockAdjustmentType) (*entity.Product, error) {
	return nil, nil
}

type fakeUserRepo struct {
	user *entity.User
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error { return nil }

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if f.user == nil {
		return nil, domainerror.ErrUserNotFound
	}
	return f.user, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return f.user, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *entity.User) error { return nil }

func (f *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return false, nil
}

func TestResolveRange(t *testing.T) {
	// An explicit valid window passes through unchanged
	t.Run("keeps an explicit window", func(t *testing.T) {
		start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

		gotStart, gotEnd, err := resolveRange(start, end)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !gotStart.Equal(start) || !gotEnd.Equal(end) {
			t.Errorf("expected window unchanged, got %v to %v", gotStart, gotEnd)
		}
	})

	// Zero values default to the trailing year ending now
	t.Run("defaults to the trailing year", func(t *testing.T) {
		before := time.Now().UTC()
		start, end, err := resolveRange(time.Time{}, time.Time{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if end.Before(before) {
			t.Errorf("expected end defaulted to now, got %v", end)
		}
		if got := end.Sub(start); got != defaultWindow {
			t.Errorf("expected a %v window, got %v", defaultWindow, got)
		}
	})

	// A start on or after the end is invalid
	t.Run("rejects an inverted window", func(t *testing.T) {
		start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

		if _, _, err := resolveRange(start, end); !errors.Is(err, domainerror.ErrInvalidDateRange) {
			t.Errorf("expected ErrInvalidDateRange, got %v", err)
		}
	})

	t.Run("rejects an empty window", func(t *testing.T) {
		point := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

		if _, _, err := resolveRange(point, point); !errors.Is(err, domainerror.ErrInvalidDateRange) {
			t.Errorf("expected ErrInvalidDateRange, got %v", err)
		}
	})
}

func TestProfitLossUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("totals expenses and computes the net", func(t *testing.T) {
		repo := &fakeReportRepo{
			revenue: decimal.NewFromInt(10000),
			byCategory: []adapter.CategoryAmount{
				{Category: "Rent", Amount: decimal.NewFromInt(3000)},
				{Category: "Transport", Amount: decimal.NewFromInt(1500)},
			},
		}
		uc := NewProfitLossUseCase(repo)

		output, err := uc.Execute(ctx, ProfitLossInput{
			UserID:    userID,
			StartDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.TotalExpenses.Equal(decimal.NewFromInt(4500)) {
			t.Errorf("expected total expenses 4500, got %s", output.TotalExpenses)
		}
		if !output.Net.Equal(decimal.NewFromInt(5500)) {
			t.Errorf("expected net 5500, got %s", output.Net)
		}
		if len(output.ExpensesByCategory) != 2 {
			t.Errorf("expected 2 categories, got %d", len(output.ExpensesByCategory))
		}
	})

	t.Run("propagates an invalid window", func(t *testing.T) {
		uc := NewProfitLossUseCase(&fakeReportRepo{})

		_, err := uc.Execute(ctx, ProfitLossInput{
			UserID:    userID,
			StartDate: time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		})
		if !errors.Is(err, domainerror.ErrInvalidDateRange) {
			t.Errorf("expected ErrInvalidDateRange, got %v", err)
		}
	})
}

func TestDashboardUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	// The dashboard passes through aggregates and derives the net
	t.Run("assembles the trailing window summary", func(t *testing.T) {
		repo := &fakeReportRepo{
			revenue:     decimal.NewFromInt(25000),
			expenses:    decimal.NewFromInt(9000),
			outstanding: decimal.NewFromInt(4000),
			counts:      adapter.InvoiceCounts{Total: 6, Paid: 4, Sent: 1, Overdue: 1},
			topProducts: []adapter.ProductSales{
				{ProductName: "Ceylon Tea Premium", QuantitySold: 40, Revenue: decimal.NewFromInt(12000)},
			},
		}
		products := &fakeProductRepo{lowStock: []*entity.Product{{}, {}}}
		uc := NewDashboardUseCase(repo, products)

		output, err := uc.Execute(ctx, DashboardInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Net.Equal(decimal.NewFromInt(16000)) {
			t.Errorf("expected net 16000, got %s", output.Net)
		}
		if output.InvoiceCounts.Paid != 4 {
			t.Errorf("expected 4 paid invoices, got %d", output.InvoiceCounts.Paid)
		}
		if output.LowStockCount != 2 {
			t.Errorf("expected 2 low stock products, got %d", output.LowStockCount)
		}
		if len(output.TopProducts) != 1 || output.TopProducts[0].ProductName != "Ceylon Tea Premium" {
			t.Errorf("unexpected top products: %+v", output.TopProducts)
		}
	})
}

func TestAIInsightsUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	// Without an upstream model both narratives come from the fallback
	t.Run("falls back when no model is configured", func(t *testing.T) {
		repo := &fakeReportRepo{
			revenue:  decimal.NewFromInt(18000),
			expenses: decimal.NewFromInt(7000),
			monthly: []adapter.MonthlyAmount{
				{PeriodStart: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC), Amount: decimal.NewFromInt(1000)},
				{PeriodStart: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), Amount: decimal.NewFromInt(1200)},
				{PeriodStart: time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC), Amount: decimal.NewFromInt(1400)},
			},
		}
		users := &fakeUserRepo{user: &entity.User{ID: userID, Currency: "LKR"}}
		uc := NewAIInsightsUseCase(repo, &fakeProductRepo{}, users, advisor.NewService(nil))

		output, err := uc.Execute(ctx, AIInsightsInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.ForecastSource != advisor.SourceFallback {
			t.Errorf("expected fallback forecast source, got %s", output.ForecastSource)
		}
		if output.InsightSource != advisor.SourceFallback {
			t.Errorf("expected fallback insight source, got %s", output.InsightSource)
		}
		if output.Forecast == "" || output.Insight == "" {
			t.Error("expected non-empty narratives")
		}
	})

	t.Run("fails when the user cannot be resolved", func(t *testing.T) {
		uc := NewAIInsightsUseCase(&fakeReportRepo{}, &fakeProductRepo{}, &fakeUserRepo{}, advisor.NewService(nil))

		if _, err := uc.Execute(ctx, AIInsightsInput{UserID: userID}); err == nil {
			t.Error("expected an error for an unknown user")
		}
	})
}
