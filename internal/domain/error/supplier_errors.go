// Package error defines domain-specific errors for the LankaGrow application.
package error

import "errors"

// Supplier domain errors.
var (
	// ErrSupplierNotFound is returned when a supplier is not found in the system.
	ErrSupplierNotFound = errors.New("supplier not found")

	// ErrNotAuthorizedToModifySupplier is returned when user is not authorized to modify a supplier.
	ErrNotAuthorizedToModifySupplier = errors.New("not authorized to modify supplier")
)

// SupplierErrorCode defines error codes for supplier errors.
// Format: SUP-XXYYYY where XX is category and YYYY is specific error.
type SupplierErrorCode string

const (
	ErrCodeSupplierNotFound      SupplierErrorCode = "SUP-010001"
	ErrCodeNotAuthorizedSupplier SupplierErrorCode = "SUP-010002"
	ErrCodeMissingSupplierFields SupplierErrorCode = "SUP-010003"
)

// SupplierError represents a supplier error with code and message.
type SupplierError struct {
	Code    SupplierErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SupplierError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SupplierError) Unwrap() error {
	return e.Err
}

// NewSupplierError creates a new SupplierError with the given code and message.
func NewSupplierError(code SupplierErrorCode, message string, err error) *SupplierError {
	return &SupplierError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
