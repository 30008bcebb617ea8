package invoice

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lankagrow/backend/internal/application/adapter"
	"github.com/lankagrow/backend/internal/domain/entity"
	domainerror "github.com/lankagrow/backend/internal/domain/error"
)

// MarkPaidInput represents the input for marking an invoice paid.
type MarkPaidInput struct {
	InvoiceID uuid.UUID
	UserID    uuid.UUID
	PaidDate  *time.Time // nil means now
}

// MarkPaidOutput represents the output of marking an invoice paid.
type MarkPaidOutput struct {
	Invoice *entity.Invoice
}

// MarkPaidUseCase transitions an invoice to paid. The status change and the
// customer's outstanding balance reduction commit atomically in the
// repository.
type MarkPaidUseCase struct {
	invoiceRepo adapter.InvoiceRepository
}

// NewMarkPaidUseCase creates a new MarkPaidUseCase instance.
func NewMarkPaidUseCase(invoiceRepo adapter.InvoiceRepository) *MarkPaidUseCase {
	return &MarkPaidUseCase{invoiceRepo: invoiceRepo}
}

// Execute performs the paid transition. Cancelled invoices cannot be paid
// and paying twice is rejected.
func (uc *MarkPaidUseCase) Execute(ctx context.Context, input MarkPaidInput) (*MarkPaidOutput, error) {
	inv, err := uc.invoiceRepo.FindByID(ctx, input.InvoiceID, input.UserID)
	if err != nil {
		return nil, err
	}

	if !inv.CanMarkPaid() {
		return nil, domainerror.NewInvoiceError(
			domainerror.ErrCodeInvalidStatusTransition,
			fmt.Sprintf("a %s invoice cannot be marked as paid", inv.Status),
			domainerror.ErrInvalidStatusTransition,
		)
	}

	paidDate := time.Now().UTC()
	if input.PaidDate != nil {
		paidDate = *input.PaidDate
	}

	inv.Status = entity.InvoiceStatusPaid
	inv.PaidDate = &paidDate
	inv.UpdatedAt = time.Now().UTC()

	if err := uc.invoiceRepo.MarkPaid(ctx, inv); err != nil {
		return nil, fmt.Errorf("failed to mark invoice as paid: %w", err)
	}

	return &MarkPaidOutput{Invoice: inv}, nil
}
