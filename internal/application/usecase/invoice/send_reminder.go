package invoice

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lankagrow/backend/internal/application/adapter"
	"github.com/lankagrow/backend/internal/application/advisor"
	"github.com/lankagrow/backend/internal/domain/entity"
	domainerror "github.com/lankagrow/backend/internal/domain/error"
)

// SendReminderInput represents the input for sending a payment reminder.
type SendReminderInput struct {
	InvoiceID uuid.UUID
	UserID    uuid.UUID
}

// SendReminderOutput represents the output of sending a payment reminder.
type SendReminderOutput struct {
	Invoice     *entity.Invoice
	DaysPastDue int
	Message     string
}

// SendReminderUseCase queues a payment reminder email for an unpaid invoice.
// Unlike the send notification, queueing here is the whole operation, so a
// queue failure is returned to the caller instead of being swallowed.
type SendReminderUseCase struct {
	invoiceRepo  adapter.InvoiceRepository
	customerRepo adapter.CustomerRepository
	userRepo     adapter.UserRepository
	emailService adapter.EmailService
	advisor      *advisor.Service
}

// NewSendReminderUseCase creates a new SendReminderUseCase instance.
func NewSendReminderUseCase(
	invoiceRepo adapter.InvoiceRepository,
	customerRepo adapter.CustomerRepository,
	userRepo adapter.UserRepository,
	emailService adapter.EmailService,
	advisorService *advisor.Service,
) *SendReminderUseCase {
	return &SendReminderUseCase{
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		userRepo:     userRepo,
		emailService: emailService,
		advisor:      advisorService,
	}
}

// Execute queues the reminder. Only invoices that have been delivered and are
// still unpaid can be reminded.
func (uc *SendReminderUseCase) Execute(ctx context.Context, input SendReminderInput) (*SendReminderOutput, error) {
	inv, err := uc.invoiceRepo.FindByID(ctx, input.InvoiceID, input.UserID)
	if err != nil {
		return nil, err
	}

	if inv.Status != entity.InvoiceStatusSent && inv.Status != entity.InvoiceStatusOverdue {
		return nil, domainerror.NewInvoiceError(
			domainerror.ErrCodeInvalidStatusTransition,
			fmt.Sprintf("a %s invoice cannot be reminded", inv.Status),
			domainerror.ErrInvalidStatusTransition,
		)
	}

	customer, err := uc.customerRepo.FindByID(ctx, inv.CustomerID, input.UserID)
	if err != nil {
		return nil, domainerror.NewInvoiceError(
			domainerror.ErrCodeInvoiceCustomerNotFound,
			"invoice customer could not be resolved",
			domainerror.ErrInvoiceCustomerNotFound,
		)
	}
	if customer.Email == "" {
		return nil, domainerror.NewInvoiceError(
			domainerror.ErrCodeCustomerEmailMissing,
			fmt.Sprintf("customer %s has no email address", customer.Name),
			domainerror.ErrCustomerEmailMissing,
		)
	}

	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve user: %w", err)
	}

	now := time.Now().UTC()
	days := inv.DaysPastDue(now)
	followUp := uc.advisor.FollowUpMessage(ctx, adapter.FollowUpRequest{
		CustomerName:  customer.Name,
		InvoiceNumber: inv.InvoiceNumber,
		TotalAmount:   inv.TotalAmount,
		Currency:      user.Currency,
		DueDate:       inv.DueDate,
		DaysPastDue:   days,
	})

	err = uc.emailService.QueuePaymentReminderEmail(ctx, adapter.QueuePaymentReminderInput{
		CustomerEmail: customer.Email,
		CustomerName:  customer.Name,
		BusinessName:  user.BusinessName,
		InvoiceNumber: inv.InvoiceNumber,
		TotalAmount:   inv.TotalAmount.StringFixed(2),
		Currency:      user.Currency,
		DueDate:       inv.DueDate.Format("2006-01-02"),
		DaysPastDue:   days,
		Message:       followUp.Text,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to queue payment reminder: %w", err)
	}

	return &SendReminderOutput{
		Invoice:     inv,
		DaysPastDue: days,
		Message:     followUp.Text,
	}, nil
}
