// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
)

// SendEmailInput represents the input for sending an email.
type SendEmailInput struct {
	To      string
	Name    string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult represents the result of sending an email.
type SendEmailResult struct {
	ResendID string
}

// EmailSender defines the interface for sending emails via an external provider.
type EmailSender interface {
	// Send sends an email via the email provider (e.g., Resend).
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// QueueInvoiceEmailInput represents the input for queueing an invoice notification.
type QueueInvoiceEmailInput struct {
	CustomerEmail string
	CustomerName  string
	BusinessName  string
	InvoiceNumber string
	TotalAmount   string
	Currency      string
	DueDate       string
}

// QueuePaymentReminderInput represents the input for queueing an overdue reminder.
type QueuePaymentReminderInput struct {
	CustomerEmail string
	CustomerName  string
	BusinessName  string
	InvoiceNumber string
	TotalAmount   string
	Currency      string
	DueDate       string
	DaysPastDue   int
	Message       string
}

// EmailService defines the interface for queueing outbound notifications.
// Queueing is fire-and-forget from the workflow's point of view: delivery is
// handled by the background worker and never blocks a status transition.
type EmailService interface {
	// QueueInvoiceEmail queues an invoice-sent notification to the customer.
	QueueInvoiceEmail(ctx context.Context, input QueueInvoiceEmailInput) error

	// QueuePaymentReminderEmail queues an overdue payment reminder.
	QueuePaymentReminderEmail(ctx context.Context, input QueuePaymentReminderInput) error
}
