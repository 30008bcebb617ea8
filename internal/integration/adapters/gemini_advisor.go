// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/shopspring/decimal"
	"google.golang.org/api/option"

	"github.com/lankagrow/backend/internal/application/adapter"
)

// GeminiAdvisor implements adapter.AIClient using Google Gemini. Every call
// opens a short-lived client; callers absorb all errors into fallbacks, so no
// retry logic lives here.
type GeminiAdvisor struct {
	apiKey    string
	modelName string
}

// NewGeminiAdvisor creates a new Gemini advisor instance.
func NewGeminiAdvisor(apiKey, modelName string) *GeminiAdvisor {
	return &GeminiAdvisor{
		apiKey:    apiKey,
		modelName: modelName,
	}
}

// IsAvailable checks if the Gemini advisor is configured with an API key.
func (s *GeminiAdvisor) IsAvailable() bool {
	return s.apiKey != ""
}

// CategorizeExpense suggests a category for an expense description.
func (s *GeminiAdvisor) CategorizeExpense(ctx context.Context, description string, amount decimal.Decimal) (*adapter.ExpenseCategorySuggestion, error) {
	prompt := fmt.Sprintf(`You are a bookkeeping assistant for a small business in Sri Lanka.
Categorize this expense into exactly one of these categories:
Rent, Utilities, Transport, Salaries, Marketing, Office Supplies, Maintenance, Insurance, Taxes, Inventory, Other

Expense description: %q
Amount: %s LKR

Respond with a JSON object: {"category": "string from the list above", "confidence": 0.0-1.0}`,
		description, amount.StringFixed(2))

	var parsed struct {
		Category   string  `json:"category"`
		Confidence float64 `json:"confidence"`
	}
	if err := s.generateJSON(ctx, prompt, &parsed); err != nil {
		return nil, err
	}
	if parsed.Category == "" {
		return nil, fmt.Errorf("empty category in response")
	}

	return &adapter.ExpenseCategorySuggestion{
		Category:   parsed.Category,
		Confidence: parsed.Confidence,
	}, nil
}

// GenerateProductTags suggests search tags for a catalog product.
func (s *GeminiAdvisor) GenerateProductTags(ctx context.Context, name, category, description string) ([]string, error) {
	prompt := fmt.Sprintf(`Generate up to 5 short lowercase search tags for this retail product.

Name: %q
Category: %q
Description: %q

Respond with a JSON object: {"tags": ["tag1", "tag2"]}`, name, category, description)

	var parsed struct {
		Tags []string `json:"tags"`
	}
	if err := s.generateJSON(ctx, prompt, &parsed); err != nil {
		return nil, err
	}
	if len(parsed.Tags) == 0 {
		return nil, fmt.Errorf("no tags in response")
	}
	if len(parsed.Tags) > 5 {
		parsed.Tags = parsed.Tags[:5]
	}
	return parsed.Tags, nil
}

// ForecastSales produces a short sales-forecast narrative from monthly
// revenue history.
func (s *GeminiAdvisor) ForecastSales(ctx context.Context, history []adapter.MonthlyAmount, currency string) (string, error) {
	var sb strings.Builder
	sb.WriteString("You are a business advisor for a small business. Monthly revenue history:\n")
	for _, m := range history {
		sb.WriteString(fmt.Sprintf("- %s: %s %s\n", m.PeriodStart.Format("2006-01"), m.Amount.StringFixed(2), currency))
	}
	sb.WriteString(`
Write a 2-3 sentence sales forecast for next month in plain language.
Respond with a JSON object: {"text": "forecast"}`)

	return s.generateText(ctx, sb.String())
}

// GenerateInsight produces a short business-insight narrative from a snapshot.
func (s *GeminiAdvisor) GenerateInsight(ctx context.Context, snapshot adapter.BusinessSnapshot) (string, error) {
	prompt := fmt.Sprintf(`You are a business advisor for a small business. Last 30 days:
- Revenue: %s %s
- Expenses: %s %s
- Outstanding receivables: %s %s
- Best sellers: %s
- Products low on stock: %d

Write a 2-3 sentence actionable insight in plain language.
Respond with a JSON object: {"text": "insight"}`,
		snapshot.Revenue30d.StringFixed(2), snapshot.Currency,
		snapshot.Expenses30d.StringFixed(2), snapshot.Currency,
		snapshot.Outstanding.StringFixed(2), snapshot.Currency,
		strings.Join(snapshot.TopProductNames, ", "),
		snapshot.LowStockCount)

	return s.generateText(ctx, prompt)
}

// FollowUpMessage drafts a payment reminder for an overdue invoice.
func (s *GeminiAdvisor) FollowUpMessage(ctx context.Context, req adapter.FollowUpRequest) (string, error) {
	tone := "friendly"
	switch {
	case req.DaysPastDue > 30:
		tone = "firm but respectful"
	case req.DaysPastDue > 7:
		tone = "professional"
	}

	prompt := fmt.Sprintf(`Write a short %s payment reminder message (2-3 sentences) for this overdue invoice:
- Customer: %s
- Invoice: %s
- Amount: %s %s
- Due date: %s (%d days overdue)

Respond with a JSON object: {"text": "message"}`,
		tone, req.CustomerName, req.InvoiceNumber,
		req.TotalAmount.StringFixed(2), req.Currency,
		req.DueDate.Format("2006-01-02"), req.DaysPastDue)

	return s.generateText(ctx, prompt)
}

// SuggestReorderQuantity suggests how many units to reorder.
func (s *GeminiAdvisor) SuggestReorderQuantity(ctx context.Context, req adapter.ReorderRequest) (int, error) {
	prompt := fmt.Sprintf(`A retail product is low on stock:
- Product: %s
- Current stock: %d
- Minimum stock level: %d
- Units sold in the last 30 days: %d

Suggest a sensible reorder quantity.
Respond with a JSON object: {"quantity": integer}`,
		req.ProductName, req.CurrentStock, req.MinStockLevel, req.SoldLast30d)

	var parsed struct {
		Quantity int `json:"quantity"`
	}
	if err := s.generateJSON(ctx, prompt, &parsed); err != nil {
		return 0, err
	}
	if parsed.Quantity <= 0 {
		return 0, fmt.Errorf("non-positive quantity in response")
	}
	return parsed.Quantity, nil
}

// generateText runs the prompt and extracts the "text" field of the JSON reply.
func (s *GeminiAdvisor) generateText(ctx context.Context, prompt string) (string, error) {
	var parsed struct {
		Text string `json:"text"`
	}
	if err := s.generateJSON(ctx, prompt, &parsed); err != nil {
		return "", err
	}
	if parsed.Text == "" {
		return "", fmt.Errorf("empty text in response")
	}
	return parsed.Text, nil
}

// generateJSON runs the prompt against the model and unmarshals the JSON
// reply into out.
func (s *GeminiAdvisor) generateJSON(ctx context.Context, prompt string, out any) error {
	if !s.IsAvailable() {
		return fmt.Errorf("gemini advisor is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.3)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return fmt.Errorf("failed to generate content: %w", err)
	}
	if resp == nil || len(resp.Candidates) == 0 {
		return fmt.Errorf("empty response from gemini")
	}

	var textContent string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			textContent = string(text)
			break
		}
	}
	if textContent == "" {
		return fmt.Errorf("no text content in response")
	}

	// Strip markdown code fences if present
	textContent = strings.TrimPrefix(textContent, "```json")
	textContent = strings.TrimPrefix(textContent, "```")
	textContent = strings.TrimSuffix(textContent, "```")
	textContent = strings.TrimSpace(textContent)

	if err := json.Unmarshal([]byte(textContent), out); err != nil {
		return fmt.Errorf("failed to parse JSON response: %w", err)
	}
	return nil
}
