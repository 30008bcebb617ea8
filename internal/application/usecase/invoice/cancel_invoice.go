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

// CancelInvoiceInput represents the input for cancelling an invoice.
type CancelInvoiceInput struct {
	InvoiceID uuid.UUID
	UserID    uuid.UUID
}

// CancelInvoiceOutput represents the output of cancelling an invoice.
type CancelInvoiceOutput struct {
	Invoice *entity.Invoice
}

// CancelInvoiceUseCase transitions an invoice to cancelled. Stock restoration
// and the customer aggregate reversal commit atomically in the repository.
type CancelInvoiceUseCase struct {
	invoiceRepo adapter.InvoiceRepository
}

// NewCancelInvoiceUseCase creates a new CancelInvoiceUseCase instance.
func NewCancelInvoiceUseCase(invoiceRepo adapter.InvoiceRepository) *CancelInvoiceUseCase {
	return &CancelInvoiceUseCase{invoiceRepo: invoiceRepo}
}

// Execute performs the cancel transition. Paid invoices cannot be cancelled.
func (uc *CancelInvoiceUseCase) Execute(ctx context.Context, input CancelInvoiceInput) (*CancelInvoiceOutput, error) {
	inv, err := uc.invoiceRepo.FindByID(ctx, input.InvoiceID, input.UserID)
	if err != nil {
		return nil, err
	}

	if !inv.CanCancel() {
		return nil, domainerror.NewInvoiceError(
			domainerror.ErrCodeInvalidStatusTransition,
			fmt.Sprintf("a %s invoice cannot be cancelled", inv.Status),
			domainerror.ErrInvalidStatusTransition,
		)
	}

	inv.Status = entity.InvoiceStatusCancelled
	inv.UpdatedAt = time.Now().UTC()

	if err := uc.invoiceRepo.Cancel(ctx, inv); err != nil {
		return nil, fmt.Errorf("failed to cancel invoice: %w", err)
	}

	return &CancelInvoiceOutput{Invoice: inv}, nil
}
