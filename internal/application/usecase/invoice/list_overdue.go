package invoice

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lankagrow/backend/internal/application/adapter"
	"github.com/lankagrow/backend/internal/application/advisor"
	"github.com/lankagrow/backend/internal/domain/entity"
)

// ListOverdueInput represents the input for listing overdue invoices.
type ListOverdueInput struct {
	UserID uuid.UUID
}

// ListOverdueOutput represents the output of listing overdue invoices.
type ListOverdueOutput struct {
	Invoices []*entity.OverdueInvoice
}

// ListOverdueUseCase lists unpaid invoices past their due date, each with a
// suggested follow-up message for the customer.
type ListOverdueUseCase struct {
	invoiceRepo adapter.InvoiceRepository
	userRepo    adapter.UserRepository
	advisor     *advisor.Service
}

// NewListOverdueUseCase creates a new ListOverdueUseCase instance.
func NewListOverdueUseCase(invoiceRepo adapter.InvoiceRepository, userRepo adapter.UserRepository, advisorService *advisor.Service) *ListOverdueUseCase {
	return &ListOverdueUseCase{
		invoiceRepo: invoiceRepo,
		userRepo:    userRepo,
		advisor:     advisorService,
	}
}

// Execute lists overdue invoices with follow-up advisories attached.
func (uc *ListOverdueUseCase) Execute(ctx context.Context, input ListOverdueInput) (*ListOverdueOutput, error) {
	now := time.Now().UTC()

	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve user: %w", err)
	}

	rows, err := uc.invoiceRepo.FindOverdue(ctx, input.UserID, now)
	if err != nil {
		return nil, fmt.Errorf("failed to list overdue invoices: %w", err)
	}

	overdue := make([]*entity.OverdueInvoice, 0, len(rows))
	for _, row := range rows {
		days := row.Invoice.DaysPastDue(now)
		followUp := uc.advisor.FollowUpMessage(ctx, adapter.FollowUpRequest{
			CustomerName:  row.Customer.Name,
			InvoiceNumber: row.Invoice.InvoiceNumber,
			TotalAmount:   row.Invoice.TotalAmount,
			Currency:      user.Currency,
			DueDate:       row.Invoice.DueDate,
			DaysPastDue:   days,
		})

		overdue = append(overdue, &entity.OverdueInvoice{
			Invoice:         row.Invoice,
			Customer:        row.Customer,
			DaysPastDue:     days,
			FollowUpMessage: followUp.Text,
			FollowUpSource:  string(followUp.Source),
		})
	}

	return &ListOverdueOutput{Invoices: overdue}, nil
}
