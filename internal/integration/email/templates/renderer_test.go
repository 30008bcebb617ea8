package templates

import (
	"strings"
	"testing"
)

func TestRenderer_Render(t *testing.T) {
	renderer, err := NewRenderer()
	if err != nil {
		t.Fatalf("failed to build renderer: %v", err)
	}

	t.Run("renders the invoice notification in both formats", func(t *testing.T) {
		html, text, err := renderer.Render("invoice_sent", InvoiceSentData{
			CustomerName:  "Nimal Perera",
			BusinessName:  "Kamal Traders",
			InvoiceNumber: "INV-000042",
			TotalAmount:   "1610.00",
			Currency:      "LKR",
			DueDate:       "2026-09-14",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, want := range []string{"Nimal Perera", "Kamal Traders", "INV-000042", "LKR 1610.00", "2026-09-14"} {
			if !strings.Contains(html, want) {
				t.Errorf("expected HTML to contain %q", want)
			}
			if !strings.Contains(text, want) {
				t.Errorf("expected text to contain %q", want)
			}
		}
	})

	t.Run("renders the payment reminder with its message", func(t *testing.T) {
		html, text, err := renderer.Render("payment_reminder", PaymentReminderData{
			CustomerName:  "Nimal Perera",
			BusinessName:  "Kamal Traders",
			InvoiceNumber: "INV-000042",
			TotalAmount:   "1610.00",
			Currency:      "LKR",
			DueDate:       "2026-08-01",
			DaysPastDue:   "14",
			Message:       "Invoice INV-000042 is 14 days past due.",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(text, "14 days past due") {
			t.Error("expected the reminder message in the text body")
		}
		if !strings.Contains(html, "INV-000042") {
			t.Error("expected the invoice number in the HTML body")
		}
	})

	t.Run("escapes markup in customer supplied fields", func(t *testing.T) {
		html, _, err := renderer.Render("invoice_sent", InvoiceSentData{
			CustomerName:  "<script>alert(1)</script>",
			BusinessName:  "Kamal Traders",
			InvoiceNumber: "INV-000001",
			TotalAmount:   "100.00",
			Currency:      "LKR",
			DueDate:       "2026-09-01",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.Contains(html, "<script>") {
			t.Error("expected HTML output to escape markup")
		}
	})

	t.Run("fails for an unknown template", func(t *testing.T) {
		if _, err := renderer.RenderHTML("does_not_exist", nil); err == nil {
			t.Error("expected an error for an unknown template")
		}
	})
}
