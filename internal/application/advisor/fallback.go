package advisor

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/lankagrow/backend/internal/application/adapter"
)

// FallbackCategory is the category assigned when no keyword rule matches.
const FallbackCategory = "Other"

const (
	matchedConfidence   = 0.6
	unmatchedConfidence = 0.3
)

// expenseKeywords maps description keywords to expense categories. First
// match wins; keys are matched case-insensitively as substrings.
var expenseKeywords = []struct {
	keyword  string
	category string
}{
	{"rent", "Rent"},
	{"lease", "Rent"},
	{"electric", "Utilities"},
	{"water", "Utilities"},
	{"internet", "Utilities"},
	{"phone", "Utilities"},
	{"fuel", "Transport"},
	{"petrol", "Transport"},
	{"diesel", "Transport"},
	{"transport", "Transport"},
	{"delivery", "Transport"},
	{"salary", "Salaries"},
	{"wage", "Salaries"},
	{"staff", "Salaries"},
	{"advert", "Marketing"},
	{"marketing", "Marketing"},
	{"promotion", "Marketing"},
	{"facebook", "Marketing"},
	{"stationery", "Office Supplies"},
	{"paper", "Office Supplies"},
	{"printer", "Office Supplies"},
	{"repair", "Maintenance"},
	{"maintenance", "Maintenance"},
	{"insurance", "Insurance"},
	{"tax", "Taxes"},
	{"license", "Taxes"},
	{"stock", "Inventory"},
	{"supplier", "Inventory"},
	{"purchase", "Inventory"},
}

func fallbackExpenseCategory(description string) (string, float64) {
	lower := strings.ToLower(description)
	for _, rule := range expenseKeywords {
		if strings.Contains(lower, rule.keyword) {
			return rule.category, matchedConfidence
		}
	}
	return FallbackCategory, unmatchedConfidence
}

const maxFallbackTags = 5

func fallbackProductTags(name, category string) []string {
	seen := make(map[string]bool)
	var tags []string

	for _, token := range strings.Fields(strings.ToLower(name + " " + category)) {
		token = strings.Trim(token, ".,-()")
		if len(token) < 3 || seen[token] {
			continue
		}
		seen[token] = true
		tags = append(tags, token)
		if len(tags) == maxFallbackTags {
			break
		}
	}

	return tags
}

// fallbackForecast projects next month from the average month-over-month
// change across the most recent three buckets.
func fallbackForecast(history []adapter.MonthlyAmount, currency string) string {
	if len(history) == 0 {
		return "Not enough sales history to forecast yet. Record a few paid invoices and check back."
	}

	recent := history
	if len(recent) > 3 {
		recent = recent[len(recent)-3:]
	}

	last := recent[len(recent)-1].Amount
	if len(recent) == 1 {
		return fmt.Sprintf("Based on one month of history, expect revenue around %s %s next month.",
			currency, last.StringFixed(2))
	}

	change := decimal.Zero
	for i := 1; i < len(recent); i++ {
		change = change.Add(recent[i].Amount.Sub(recent[i-1].Amount))
	}
	avgChange := change.Div(decimal.NewFromInt(int64(len(recent) - 1)))
	projected := last.Add(avgChange)
	if projected.IsNegative() {
		projected = decimal.Zero
	}

	trend := "steady"
	if avgChange.IsPositive() {
		trend = "growing"
	} else if avgChange.IsNegative() {
		trend = "declining"
	}

	return fmt.Sprintf("Sales are %s. Projecting revenue of about %s %s next month based on the last %d months.",
		trend, currency, projected.StringFixed(2), len(recent))
}

func fallbackInsight(snapshot adapter.BusinessSnapshot) string {
	net := snapshot.Revenue30d.Sub(snapshot.Expenses30d)

	var sb strings.Builder
	if net.IsNegative() {
		sb.WriteString(fmt.Sprintf("Expenses exceeded revenue by %s %s over the last 30 days.",
			snapshot.Currency, net.Neg().StringFixed(2)))
	} else {
		sb.WriteString(fmt.Sprintf("You earned %s %s more than you spent over the last 30 days.",
			snapshot.Currency, net.StringFixed(2)))
	}
	if snapshot.Outstanding.IsPositive() {
		sb.WriteString(fmt.Sprintf(" %s %s is still awaiting payment; following up on overdue invoices would improve cash flow.",
			snapshot.Currency, snapshot.Outstanding.StringFixed(2)))
	}
	if snapshot.LowStockCount > 0 {
		sb.WriteString(fmt.Sprintf(" %d products are at or below their reorder level.", snapshot.LowStockCount))
	}
	if len(snapshot.TopProductNames) > 0 {
		sb.WriteString(fmt.Sprintf(" Best seller: %s.", snapshot.TopProductNames[0]))
	}

	return sb.String()
}

func fallbackFollowUp(req adapter.FollowUpRequest) string {
	amount := fmt.Sprintf("%s %s", req.Currency, req.TotalAmount.StringFixed(2))

	switch {
	case req.DaysPastDue <= 7:
		return fmt.Sprintf("Hi %s, just a friendly reminder that invoice %s for %s was due on %s. Could you arrange payment when convenient? Thank you!",
			req.CustomerName, req.InvoiceNumber, amount, req.DueDate.Format("2 Jan 2006"))
	case req.DaysPastDue <= 30:
		return fmt.Sprintf("Dear %s, invoice %s for %s is now %d days past due. Please settle the outstanding amount at your earliest convenience, or let us know if there is an issue with the invoice.",
			req.CustomerName, req.InvoiceNumber, amount, req.DaysPastDue)
	default:
		return fmt.Sprintf("Dear %s, invoice %s for %s remains unpaid %d days after its due date. Immediate payment is required to avoid suspension of further orders. Please contact us today to resolve this.",
			req.CustomerName, req.InvoiceNumber, amount, req.DaysPastDue)
	}
}

func fallbackReorderQuantity(req adapter.ReorderRequest) int {
	qty := req.MinStockLevel * 3
	if qty < 10 {
		qty = 10
	}
	return qty
}
