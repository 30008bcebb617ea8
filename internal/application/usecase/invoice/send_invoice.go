package invoice

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/lankagrow/backend/internal/application/adapter"
	"github.com/lankagrow/backend/internal/domain/entity"
	domainerror "github.com/lankagrow/backend/internal/domain/error"
)

// SendInvoiceInput represents the input for sending an invoice.
type SendInvoiceInput struct {
	InvoiceID uuid.UUID
	UserID    uuid.UUID
}

// SendInvoiceOutput represents the output of sending an invoice.
type SendInvoiceOutput struct {
	Invoice *entity.Invoice
}

// SendInvoiceUseCase transitions an invoice to sent and queues the customer
// notification. Resending an already sent invoice is allowed and queues the
// email again.
type SendInvoiceUseCase struct {
	invoiceRepo  adapter.InvoiceRepository
	customerRepo adapter.CustomerRepository
	userRepo     adapter.UserRepository
	emailService adapter.EmailService
	logger       *slog.Logger
}

// NewSendInvoiceUseCase creates a new SendInvoiceUseCase instance.
func NewSendInvoiceUseCase(
	invoiceRepo adapter.InvoiceRepository,
	customerRepo adapter.CustomerRepository,
	userRepo adapter.UserRepository,
	emailService adapter.EmailService,
	logger *slog.Logger,
) *SendInvoiceUseCase {
	return &SendInvoiceUseCase{
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		userRepo:     userRepo,
		emailService: emailService,
		logger:       logger,
	}
}

// Execute performs the send transition. Email queueing failures are logged
// and do not roll the transition back; delivery is best effort.
func (uc *SendInvoiceUseCase) Execute(ctx context.Context, input SendInvoiceInput) (*SendInvoiceOutput, error) {
	inv, err := uc.invoiceRepo.FindByID(ctx, input.InvoiceID, input.UserID)
	if err != nil {
		return nil, err
	}

	if !inv.CanSend() {
		return nil, domainerror.NewInvoiceError(
			domainerror.ErrCodeInvalidStatusTransition,
			fmt.Sprintf("a %s invoice cannot be sent", inv.Status),
			domainerror.ErrInvalidStatusTransition,
		)
	}

	inv.Status = entity.InvoiceStatusSent
	inv.UpdatedAt = time.Now().UTC()

	if err := uc.invoiceRepo.UpdateStatus(ctx, inv); err != nil {
		return nil, fmt.Errorf("failed to mark invoice as sent: %w", err)
	}

	uc.queueNotification(ctx, inv)

	return &SendInvoiceOutput{Invoice: inv}, nil
}

func (uc *SendInvoiceUseCase) queueNotification(ctx context.Context, inv *entity.Invoice) {
	customer, err := uc.customerRepo.FindByID(ctx, inv.CustomerID, inv.UserID)
	if err != nil {
		uc.logger.Warn("invoice sent but customer could not be resolved for notification",
			"invoice_id", inv.ID, "error", err)
		return
	}
	if customer.Email == "" {
		return
	}

	user, err := uc.userRepo.FindByID(ctx, inv.UserID)
	if err != nil {
		uc.logger.Warn("invoice sent but owner could not be resolved for notification",
			"invoice_id", inv.ID, "error", err)
		return
	}

	err = uc.emailService.QueueInvoiceEmail(ctx, adapter.QueueInvoiceEmailInput{
		CustomerEmail: customer.Email,
		CustomerName:  customer.Name,
		BusinessName:  user.BusinessName,
		InvoiceNumber: inv.InvoiceNumber,
		TotalAmount:   inv.TotalAmount.StringFixed(2),
		Currency:      user.Currency,
		DueDate:       inv.DueDate.Format("2006-01-02"),
	})
	if err != nil {
		uc.logger.Warn("failed to queue invoice notification",
			"invoice_id", inv.ID, "error", err)
	}
}
