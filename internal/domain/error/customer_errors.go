// Package error defines domain-specific errors for the LankaGrow application.
package error

import "errors"

// Customer domain errors.
var (
	// ErrCustomerNotFound is returned when a customer is not found in the system.
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrCustomerHasInvoices is returned when deleting a customer that invoices reference.
	ErrCustomerHasInvoices = errors.New("customer is referenced by invoices")

	// ErrNotAuthorizedToModifyCustomer is returned when user is not authorized to modify a customer.
	ErrNotAuthorizedToModifyCustomer = errors.New("not authorized to modify customer")
)

// CustomerErrorCode defines error codes for customer errors.
// Format: CUS-XXYYYY where XX is category and YYYY is specific error.
type CustomerErrorCode string

const (
	ErrCodeCustomerNotFound      CustomerErrorCode = "CUS-010001"
	ErrCodeNotAuthorizedCustomer CustomerErrorCode = "CUS-010002"
	ErrCodeMissingCustomerFields CustomerErrorCode = "CUS-010003"
	ErrCodeCustomerHasInvoices   CustomerErrorCode = "CUS-020001"
)

// CustomerError represents a customer error with code and message.
type CustomerError struct {
	Code    CustomerErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CustomerError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CustomerError) Unwrap() error {
	return e.Err
}

// NewCustomerError creates a new CustomerError with the given code and message.
func NewCustomerError(code CustomerErrorCode, message string, err error) *CustomerError {
	return &CustomerError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
