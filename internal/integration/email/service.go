// Package email provides email sending functionality.
package email

import (
	"context"
	"fmt"

	"github.com/lankagrow/backend/internal/application/adapter"
	"github.com/lankagrow/backend/internal/domain/entity"
	domainerror "github.com/lankagrow/backend/internal/domain/error"
)

// Service handles email queueing operations.
type Service struct {
	queue adapter.EmailQueueRepository
}

// NewService creates a new email service.
func NewService(queue adapter.EmailQueueRepository) *Service {
	return &Service{
		queue: queue,
	}
}

// QueueInvoiceEmail queues an invoice notification email to a customer.
func (s *Service) QueueInvoiceEmail(ctx context.Context, input adapter.QueueInvoiceEmailInput) error {
	subject := fmt.Sprintf("Invoice %s from %s", input.InvoiceNumber, input.BusinessName)

	templateData := map[string]interface{}{
		"customer_name":  input.CustomerName,
		"business_name":  input.BusinessName,
		"invoice_number": input.InvoiceNumber,
		"total_amount":   input.TotalAmount,
		"currency":       input.Currency,
		"due_date":       input.DueDate,
	}

	job := entity.NewEmailJob(
		entity.TemplateInvoiceSent,
		input.CustomerEmail,
		input.CustomerName,
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue invoice email",
			err,
		)
	}

	return nil
}

// QueuePaymentReminderEmail queues a payment reminder for an overdue invoice.
func (s *Service) QueuePaymentReminderEmail(ctx context.Context, input adapter.QueuePaymentReminderInput) error {
	subject := fmt.Sprintf("Payment reminder: invoice %s from %s", input.InvoiceNumber, input.BusinessName)

	templateData := map[string]interface{}{
		"customer_name":  input.CustomerName,
		"business_name":  input.BusinessName,
		"invoice_number": input.InvoiceNumber,
		"total_amount":   input.TotalAmount,
		"currency":       input.Currency,
		"due_date":       input.DueDate,
		"days_past_due":  fmt.Sprintf("%d", input.DaysPastDue),
		"message":        input.Message,
	}

	job := entity.NewEmailJob(
		entity.TemplatePaymentReminder,
		input.CustomerEmail,
		input.CustomerName,
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue payment reminder email",
			err,
		)
	}

	return nil
}

// Ensure Service implements adapter.EmailService.
var _ adapter.EmailService = (*Service)(nil)
