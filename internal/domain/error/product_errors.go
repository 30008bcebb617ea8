// Package error defines domain-specific errors for the LankaGrow application.
package error

import "errors"

// Product domain errors.
var (
	// ErrProductNotFound is returned when a product is not found in the system.
	ErrProductNotFound = errors.New("product not found")

	// ErrSKUAlreadyExists is returned when a product with the same SKU already exists in the catalog.
	ErrSKUAlreadyExists = errors.New("sku already exists")

	// ErrProductReferenced is returned when deleting a product that historical invoices reference.
	ErrProductReferenced = errors.New("product is referenced by invoices")

	// ErrInvalidStockAdjustment is returned when a stock adjustment request is malformed.
	ErrInvalidStockAdjustment = errors.New("invalid stock adjustment")

	// ErrNotAuthorizedToModifyProduct is returned when user is not authorized to modify a product.
	ErrNotAuthorizedToModifyProduct = errors.New("not authorized to modify product")
)

// ProductErrorCode defines error codes for product errors.
// Format: PRD-XXYYYY where XX is category and YYYY is specific error.
type ProductErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeProductNotFound        ProductErrorCode = "PRD-010001"
	ErrCodeSKUAlreadyExists       ProductErrorCode = "PRD-010002"
	ErrCodeInvalidStockAdjustment ProductErrorCode = "PRD-010003"
	ErrCodeNotAuthorizedProduct   ProductErrorCode = "PRD-010004"
	ErrCodeMissingProductFields   ProductErrorCode = "PRD-010005"

	// Conflict errors (02XXXX)
	ErrCodeProductReferenced ProductErrorCode = "PRD-020001"
)

// ProductError represents a product error with code and message.
type ProductError struct {
	Code    ProductErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ProductError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ProductError) Unwrap() error {
	return e.Err
}

// NewProductError creates a new ProductError with the given code and message.
func NewProductError(code ProductErrorCode, message string, err error) *ProductError {
	return &ProductError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
