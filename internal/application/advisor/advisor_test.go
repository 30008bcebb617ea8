package advisor

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lankagrow/backend/internal/application/adapter"
)

// stubClient is a configurable AIClient for exercising the fallback paths.
type stubClient struct {
	available bool
	failAll   bool

	category string
	tags     []string
	text     string
	quantity int
}

func (s *stubClient) IsAvailable() bool { return s.available }

func (s *stubClient) CategorizeExpense(ctx context.Context, description string, amount decimal.Decimal) (*adapter.ExpenseCategorySuggestion, error) {
	if s.failAll {
		return nil, errors.New("upstream unavailable")
	}
	return &adapter.ExpenseCategorySuggestion{Category: s.category, Confidence: 0.9}, nil
}

func (s *stubClient) GenerateProductTags(ctx context.Context, name, category, description string) ([]string, error) {
	if s.failAll {
		return nil, errors.New("upstream unavailable")
	}
	return s.tags, nil
}

func (s *stubClient) ForecastSales(ctx context.Context, history []adapter.MonthlyAmount, currency string) (string, error) {
	if s.failAll {
		return "", errors.New("upstream unavailable")
	}
	return s.text, nil
}

func (s *stubClient) GenerateInsight(ctx context.Context, snapshot adapter.BusinessSnapshot) (string, error) {
	if s.failAll {
		return "", errors.New("upstream unavailable")
	}
	return s.text, nil
}

func (s *stubClient) FollowUpMessage(ctx context.Context, req adapter.FollowUpRequest) (string, error) {
	if s.failAll {
		return "", errors.New("upstream unavailable")
	}
	return s.text, nil
}

func (s *stubClient) SuggestReorderQuantity(ctx context.Context, req adapter.ReorderRequest) (int, error) {
	if s.failAll {
		return 0, errors.New("upstream unavailable")
	}
	return s.quantity, nil
}

func TestCategorizeExpense(t *testing.T) {
	ctx := context.Background()
	amount := decimal.NewFromInt(1000)

	t.Run("uses client suggestion when available", func(t *testing.T) {
		service := NewService(&stubClient{available: true, category: "Utilities"})

		result := service.CategorizeExpense(ctx, "monthly broadband", amount)

		if result.Category != "Utilities" {
			t.Errorf("expected category Utilities, got %s", result.Category)
		}
		if result.Source != SourceGemini {
			t.Errorf("expected source %s, got %s", SourceGemini, result.Source)
		}
	})

	t.Run("falls back when client errors", func(t *testing.T) {
		service := NewService(&stubClient{available: true, failAll: true})

		result := service.CategorizeExpense(ctx, "diesel for delivery van", amount)

		if result.Source != SourceFallback {
			t.Errorf("expected source %s, got %s", SourceFallback, result.Source)
		}
		if result.Category != "Transport" {
			t.Errorf("expected keyword match Transport, got %s", result.Category)
		}
	})

	t.Run("falls back with nil client", func(t *testing.T) {
		service := NewService(nil)

		result := service.CategorizeExpense(ctx, "shop rent for August", amount)

		if result.Source != SourceFallback {
			t.Errorf("expected source %s, got %s", SourceFallback, result.Source)
		}
		if result.Category != "Rent" {
			t.Errorf("expected keyword match Rent, got %s", result.Category)
		}
		if result.Confidence != 0.6 {
			t.Errorf("expected matched confidence 0.6, got %v", result.Confidence)
		}
	})

	t.Run("unmatched description gets Other", func(t *testing.T) {
		service := NewService(nil)

		result := service.CategorizeExpense(ctx, "miscellaneous sundries", amount)

		if result.Category != FallbackCategory {
			t.Errorf("expected category %s, got %s", FallbackCategory, result.Category)
		}
		if result.Confidence != 0.3 {
			t.Errorf("expected unmatched confidence 0.3, got %v", result.Confidence)
		}
	})

	t.Run("keyword matching is case-insensitive", func(t *testing.T) {
		service := NewService(nil)

		result := service.CategorizeExpense(ctx, "STAFF Salary July", amount)

		if result.Category != "Salaries" {
			t.Errorf("expected category Salaries, got %s", result.Category)
		}
	})

	t.Run("confidence is clamped to 0..1", func(t *testing.T) {
		if got := clampConfidence(1.7); got != 1 {
			t.Errorf("expected 1, got %v", got)
		}
		if got := clampConfidence(-0.2); got != 0 {
			t.Errorf("expected 0, got %v", got)
		}
		if got := clampConfidence(0.45); got != 0.45 {
			t.Errorf("expected 0.45, got %v", got)
		}
	})
}

func TestGenerateProductTags(t *testing.T) {
	ctx := context.Background()

	t.Run("uses client tags when available", func(t *testing.T) {
		service := NewService(&stubClient{available: true, tags: []string{"tea", "beverage"}})

		result := service.GenerateProductTags(ctx, "Ceylon Tea 500g", "Beverages", "")

		if result.Source != SourceGemini {
			t.Errorf("expected source %s, got %s", SourceGemini, result.Source)
		}
		if len(result.Tags) != 2 {
			t.Errorf("expected 2 tags, got %d", len(result.Tags))
		}
	})

	t.Run("fallback derives tags from name and category", func(t *testing.T) {
		service := NewService(nil)

		result := service.GenerateProductTags(ctx, "Ceylon Tea Premium", "Beverages", "")

		if result.Source != SourceFallback {
			t.Errorf("expected source %s, got %s", SourceFallback, result.Source)
		}
		want := []string{"ceylon", "tea", "premium", "beverages"}
		if len(result.Tags) != len(want) {
			t.Fatalf("expected tags %v, got %v", want, result.Tags)
		}
		for i, tag := range want {
			if result.Tags[i] != tag {
				t.Errorf("expected tag %s at %d, got %s", tag, i, result.Tags[i])
			}
		}
	})

	t.Run("fallback drops short tokens and duplicates", func(t *testing.T) {
		service := NewService(nil)

		result := service.GenerateProductTags(ctx, "A4 Paper Paper", "Paper", "")

		for i, tag := range result.Tags {
			if tag == "a4" {
				t.Errorf("expected short token to be dropped, got %v", result.Tags)
			}
			for j := i + 1; j < len(result.Tags); j++ {
				if result.Tags[j] == tag {
					t.Errorf("expected no duplicate tags, got %v", result.Tags)
				}
			}
		}
	})

	t.Run("fallback caps tags at five", func(t *testing.T) {
		service := NewService(nil)

		result := service.GenerateProductTags(ctx, "one two three four five six seven", "eight", "")

		if len(result.Tags) > 5 {
			t.Errorf("expected at most 5 tags, got %d", len(result.Tags))
		}
	})
}

func TestForecastSales(t *testing.T) {
	ctx := context.Background()

	month := func(year int, m time.Month, amount int64) adapter.MonthlyAmount {
		return adapter.MonthlyAmount{
			PeriodStart: time.Date(year, m, 1, 0, 0, 0, 0, time.UTC),
			Amount:      decimal.NewFromInt(amount),
		}
	}

	t.Run("empty history explains itself", func(t *testing.T) {
		service := NewService(nil)

		result := service.ForecastSales(ctx, nil, "LKR")

		if result.Source != SourceFallback {
			t.Errorf("expected source %s, got %s", SourceFallback, result.Source)
		}
		if !strings.Contains(result.Text, "Not enough sales history") {
			t.Errorf("expected empty-history message, got %q", result.Text)
		}
	})

	t.Run("growing trend projects average change", func(t *testing.T) {
		service := NewService(nil)
		history := []adapter.MonthlyAmount{
			month(2026, time.May, 1000),
			month(2026, time.June, 1200),
			month(2026, time.July, 1400),
		}

		result := service.ForecastSales(ctx, history, "LKR")

		if !strings.Contains(result.Text, "growing") {
			t.Errorf("expected growing trend, got %q", result.Text)
		}
		if !strings.Contains(result.Text, "1600.00") {
			t.Errorf("expected projection of 1600.00, got %q", result.Text)
		}
	})

	t.Run("declining trend never projects below zero", func(t *testing.T) {
		service := NewService(nil)
		history := []adapter.MonthlyAmount{
			month(2026, time.June, 500),
			month(2026, time.July, 10),
		}

		result := service.ForecastSales(ctx, history, "LKR")

		if !strings.Contains(result.Text, "declining") {
			t.Errorf("expected declining trend, got %q", result.Text)
		}
		if !strings.Contains(result.Text, "0.00") {
			t.Errorf("expected floor at 0.00, got %q", result.Text)
		}
	})

	t.Run("client text wins when available", func(t *testing.T) {
		service := NewService(&stubClient{available: true, text: "Expect a strong month."})

		result := service.ForecastSales(ctx, []adapter.MonthlyAmount{month(2026, time.July, 100)}, "LKR")

		if result.Source != SourceGemini {
			t.Errorf("expected source %s, got %s", SourceGemini, result.Source)
		}
		if result.Text != "Expect a strong month." {
			t.Errorf("unexpected text %q", result.Text)
		}
	})
}

func TestFollowUpMessage(t *testing.T) {
	ctx := context.Background()

	baseReq := adapter.FollowUpRequest{
		CustomerName:  "Nimal",
		InvoiceNumber: "INV-000042",
		TotalAmount:   decimal.NewFromInt(15000),
		Currency:      "LKR",
		DueDate:       time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
	}

	t.Run("friendly tone within a week", func(t *testing.T) {
		service := NewService(nil)
		req := baseReq
		req.DaysPastDue = 3

		result := service.FollowUpMessage(ctx, req)

		if !strings.Contains(result.Text, "friendly reminder") {
			t.Errorf("expected friendly tone, got %q", result.Text)
		}
		if !strings.Contains(result.Text, "INV-000042") {
			t.Errorf("expected invoice number in message, got %q", result.Text)
		}
	})

	t.Run("professional tone within a month", func(t *testing.T) {
		service := NewService(nil)
		req := baseReq
		req.DaysPastDue = 14

		result := service.FollowUpMessage(ctx, req)

		if !strings.Contains(result.Text, "14 days past due") {
			t.Errorf("expected days past due in message, got %q", result.Text)
		}
	})

	t.Run("firm tone beyond thirty days", func(t *testing.T) {
		service := NewService(nil)
		req := baseReq
		req.DaysPastDue = 45

		result := service.FollowUpMessage(ctx, req)

		if !strings.Contains(result.Text, "Immediate payment") {
			t.Errorf("expected firm tone, got %q", result.Text)
		}
	})
}

func TestSuggestReorderQuantity(t *testing.T) {
	ctx := context.Background()

	t.Run("client quantity wins when positive", func(t *testing.T) {
		service := NewService(&stubClient{available: true, quantity: 25})

		result := service.SuggestReorderQuantity(ctx, adapter.ReorderRequest{MinStockLevel: 5})

		if result.Quantity != 25 {
			t.Errorf("expected 25, got %d", result.Quantity)
		}
		if result.Source != SourceGemini {
			t.Errorf("expected source %s, got %s", SourceGemini, result.Source)
		}
	})

	t.Run("fallback is three times the reorder level", func(t *testing.T) {
		service := NewService(nil)

		result := service.SuggestReorderQuantity(ctx, adapter.ReorderRequest{MinStockLevel: 8})

		if result.Quantity != 24 {
			t.Errorf("expected 24, got %d", result.Quantity)
		}
		if result.Source != SourceFallback {
			t.Errorf("expected source %s, got %s", SourceFallback, result.Source)
		}
	})

	t.Run("fallback never suggests fewer than ten units", func(t *testing.T) {
		service := NewService(nil)

		result := service.SuggestReorderQuantity(ctx, adapter.ReorderRequest{MinStockLevel: 1})

		if result.Quantity != 10 {
			t.Errorf("expected 10, got %d", result.Quantity)
		}
	})

	t.Run("zero client quantity falls back", func(t *testing.T) {
		service := NewService(&stubClient{available: true, quantity: 0, failAll: false})

		result := service.SuggestReorderQuantity(ctx, adapter.ReorderRequest{MinStockLevel: 4})

		if result.Source != SourceFallback {
			t.Errorf("expected source %s, got %s", SourceFallback, result.Source)
		}
	})
}
