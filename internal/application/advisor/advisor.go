// Package advisor provides the AI advisory service. It wraps the raw
// text-generation client with deterministic rule-based fallbacks so that
// callers always receive a structured result: upstream unavailability is never
// observable above this package except through the result's Source field and
// a lower confidence.
package advisor

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/lankagrow/backend/internal/application/adapter"
)

// Source identifies where an advisory result came from.
type Source string

const (
	SourceGemini   Source = "gemini"
	SourceFallback Source = "fallback"
)

// ExpenseCategoryResult is a categorization suggestion for an expense.
type ExpenseCategoryResult struct {
	Category   string
	Confidence float64
	Source     Source
}

// TagsResult is a set of suggested product tags.
type TagsResult struct {
	Tags   []string
	Source Source
}

// TextResult is a generated narrative (forecast, insight, follow-up message).
type TextResult struct {
	Text   string
	Source Source
}

// ReorderResult is a suggested reorder quantity for a low-stock product.
type ReorderResult struct {
	Quantity int
	Source   Source
}

// Service is the advisory facade consumed by the product, expense, invoice and
// report flows. It holds no state and is never the source of correctness for
// any business invariant.
type Service struct {
	client adapter.AIClient
}

// NewService creates a new advisory service around the given client.
func NewService(client adapter.AIClient) *Service {
	return &Service{client: client}
}

// CategorizeExpense suggests a category for an expense description.
func (s *Service) CategorizeExpense(ctx context.Context, description string, amount decimal.Decimal) ExpenseCategoryResult {
	if s.client != nil && s.client.IsAvailable() {
		suggestion, err := s.client.CategorizeExpense(ctx, description, amount)
		if err == nil && suggestion != nil && suggestion.Category != "" {
			return ExpenseCategoryResult{
				Category:   suggestion.Category,
				Confidence: clampConfidence(suggestion.Confidence),
				Source:     SourceGemini,
			}
		}
		if err != nil {
			slog.Debug("Expense categorization falling back", "error", err)
		}
	}

	category, confidence := fallbackExpenseCategory(description)
	return ExpenseCategoryResult{Category: category, Confidence: confidence, Source: SourceFallback}
}

// GenerateProductTags suggests search tags for a catalog product.
func (s *Service) GenerateProductTags(ctx context.Context, name, category, description string) TagsResult {
	if s.client != nil && s.client.IsAvailable() {
		tags, err := s.client.GenerateProductTags(ctx, name, category, description)
		if err == nil && len(tags) > 0 {
			return TagsResult{Tags: tags, Source: SourceGemini}
		}
		if err != nil {
			slog.Debug("Product tag generation falling back", "error", err)
		}
	}

	return TagsResult{Tags: fallbackProductTags(name, category), Source: SourceFallback}
}

// ForecastSales produces a short sales-forecast narrative from monthly
// revenue history (oldest first).
func (s *Service) ForecastSales(ctx context.Context, history []adapter.MonthlyAmount, currency string) TextResult {
	if s.client != nil && s.client.IsAvailable() {
		text, err := s.client.ForecastSales(ctx, history, currency)
		if err == nil && text != "" {
			return TextResult{Text: text, Source: SourceGemini}
		}
		if err != nil {
			slog.Debug("Sales forecast falling back", "error", err)
		}
	}

	return TextResult{Text: fallbackForecast(history, currency), Source: SourceFallback}
}

// GenerateInsight produces a short business-insight narrative from a snapshot.
func (s *Service) GenerateInsight(ctx context.Context, snapshot adapter.BusinessSnapshot) TextResult {
	if s.client != nil && s.client.IsAvailable() {
		text, err := s.client.GenerateInsight(ctx, snapshot)
		if err == nil && text != "" {
			return TextResult{Text: text, Source: SourceGemini}
		}
		if err != nil {
			slog.Debug("Insight generation falling back", "error", err)
		}
	}

	return TextResult{Text: fallbackInsight(snapshot), Source: SourceFallback}
}

// FollowUpMessage drafts a payment reminder for an overdue invoice. Tone
// escalates with days past due: friendly through 7 days, professional through
// 30, firm beyond that.
func (s *Service) FollowUpMessage(ctx context.Context, req adapter.FollowUpRequest) TextResult {
	if s.client != nil && s.client.IsAvailable() {
		text, err := s.client.FollowUpMessage(ctx, req)
		if err == nil && text != "" {
			return TextResult{Text: text, Source: SourceGemini}
		}
		if err != nil {
			slog.Debug("Follow-up message falling back", "error", err)
		}
	}

	return TextResult{Text: fallbackFollowUp(req), Source: SourceFallback}
}

// SuggestReorderQuantity suggests how many units of a low-stock product to reorder.
func (s *Service) SuggestReorderQuantity(ctx context.Context, req adapter.ReorderRequest) ReorderResult {
	if s.client != nil && s.client.IsAvailable() {
		qty, err := s.client.SuggestReorderQuantity(ctx, req)
		if err == nil && qty > 0 {
			return ReorderResult{Quantity: qty, Source: SourceGemini}
		}
		if err != nil {
			slog.Debug("Reorder suggestion falling back", "error", err)
		}
	}

	return ReorderResult{Quantity: fallbackReorderQuantity(req), Source: SourceFallback}
}

func clampConfidence(c float64) float64 {
	if c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}
