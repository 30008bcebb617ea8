// Package error defines domain-specific errors for the LankaGrow application.
package error

import "errors"

// Invoice domain errors.
var (
	// ErrInvoiceNotFound is returned when an invoice is not found in the system.
	ErrInvoiceNotFound = errors.New("invoice not found")

	// ErrInvoiceProductNotFound is returned when a line item references a product that does not resolve.
	ErrInvoiceProductNotFound = errors.New("invoice line product not found")

	// ErrInvoiceCustomerNotFound is returned when the referenced customer does not resolve.
	ErrInvoiceCustomerNotFound = errors.New("invoice customer not found")

	// ErrEmptyInvoiceItems is returned when an invoice is created or updated without line items.
	ErrEmptyInvoiceItems = errors.New("invoice must have at least one item")

	// ErrInvalidLineItem is returned when a line item fails the active pricing policy.
	ErrInvalidLineItem = errors.New("invalid line item")

	// ErrInvalidStatusTransition is returned when a status change is not allowed from the current state.
	ErrInvalidStatusTransition = errors.New("invalid invoice status transition")

	// ErrNotAuthorizedToModifyInvoice is returned when user is not authorized to modify an invoice.
	ErrNotAuthorizedToModifyInvoice = errors.New("not authorized to modify invoice")

	// ErrCustomerEmailMissing is returned when a notification is requested for a customer without an email address.
	ErrCustomerEmailMissing = errors.New("customer has no email address")
)

// InvoiceErrorCode defines error codes for invoice errors.
// Format: INV-XXYYYY where XX is category and YYYY is specific error.
type InvoiceErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvoiceNotFound         InvoiceErrorCode = "INV-010001"
	ErrCodeInvoiceProductNotFound  InvoiceErrorCode = "INV-010002"
	ErrCodeInvoiceCustomerNotFound InvoiceErrorCode = "INV-010003"
	ErrCodeEmptyInvoiceItems       InvoiceErrorCode = "INV-010004"
	ErrCodeInvalidLineItem         InvoiceErrorCode = "INV-010005"
	ErrCodeNotAuthorizedInvoice    InvoiceErrorCode = "INV-010006"
	ErrCodeMissingInvoiceFields    InvoiceErrorCode = "INV-010007"
	ErrCodeCustomerEmailMissing    InvoiceErrorCode = "INV-010008"

	// Lifecycle errors (02XXXX)
	ErrCodeInvalidStatusTransition InvoiceErrorCode = "INV-020001"
)

// InvoiceError represents an invoice error with code and message.
type InvoiceError struct {
	Code    InvoiceErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *InvoiceError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *InvoiceError) Unwrap() error {
	return e.Err
}

// NewInvoiceError creates a new InvoiceError with the given code and message.
func NewInvoiceError(code InvoiceErrorCode, message string, err error) *InvoiceError {
	return &InvoiceError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
