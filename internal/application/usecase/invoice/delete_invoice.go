package invoice

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lankagrow/backend/internal/application/adapter"
	"github.com/lankagrow/backend/internal/domain/entity"
	domainerror "github.com/lankagrow/backend/internal/domain/error"
)

// DeleteInvoiceInput represents the input for invoice deletion.
type DeleteInvoiceInput struct {
	InvoiceID uuid.UUID
	UserID    uuid.UUID
}

// DeleteInvoiceUseCase handles invoice deletion. Stock restoration and the
// customer aggregate reversal commit atomically in the repository.
type DeleteInvoiceUseCase struct {
	invoiceRepo adapter.InvoiceRepository
}

// NewDeleteInvoiceUseCase creates a new DeleteInvoiceUseCase instance.
func NewDeleteInvoiceUseCase(invoiceRepo adapter.InvoiceRepository) *DeleteInvoiceUseCase {
	return &DeleteInvoiceUseCase{invoiceRepo: invoiceRepo}
}

// Execute deletes an invoice. Paid invoices are immutable records and cannot
// be deleted.
func (uc *DeleteInvoiceUseCase) Execute(ctx context.Context, input DeleteInvoiceInput) error {
	inv, err := uc.invoiceRepo.FindByID(ctx, input.InvoiceID, input.UserID)
	if err != nil {
		return err
	}

	if inv.Status == entity.InvoiceStatusPaid {
		return domainerror.NewInvoiceError(
			domainerror.ErrCodeInvalidStatusTransition,
			"a paid invoice cannot be deleted",
			domainerror.ErrInvalidStatusTransition,
		)
	}

	if err := uc.invoiceRepo.Delete(ctx, inv.ID, input.UserID); err != nil {
		return fmt.Errorf("failed to delete invoice: %w", err)
	}
	return nil
}
