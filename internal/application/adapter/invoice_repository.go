// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/lankagrow/backend/internal/domain/entity"
)

// InvoiceFilter defines filter options for listing invoices.
type InvoiceFilter struct {
	UserID     uuid.UUID
	CustomerID *uuid.UUID
	Status     *entity.InvoiceStatus
	StartDate  *time.Time
	EndDate    *time.Time
}

// InvoiceListResult represents the result of listing invoices.
type InvoiceListResult struct {
	Invoices   []*entity.InvoiceWithCustomer
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// InvoiceRepository defines the interface for invoice persistence and for the
// stock/customer side effects that must commit atomically with it. Every
// multi-document method runs inside a single database transaction: a failure
// anywhere rolls back the invoice, all stock movements and all customer
// aggregate changes together.
type InvoiceRepository interface {
	// Create persists a draft invoice. In the same transaction it assigns the
	// invoice number from the owner's sequence, decrements each line product's
	// stock (a missing product fails the whole transaction with
	// ErrInvoiceProductNotFound), and raises the customer's lifetime value,
	// outstanding balance and last-purchase timestamp by the invoice total.
	Create(ctx context.Context, invoice *entity.Invoice) error

	// Update replaces the stored invoice with the given one. In the same
	// transaction it reverses stock for the previously persisted line items,
	// applies stock decrements for the new items, and adjusts customer
	// aggregates by the delta (handling a customer change on both sides).
	Update(ctx context.Context, invoice *entity.Invoice) error

	// Delete removes the invoice, reversing stock for every line item and
	// lowering the customer aggregates, in one transaction. Cancelled invoices
	// were already reversed at cancel time and are removed without any side
	// effects.
	Delete(ctx context.Context, id, userID uuid.UUID) error

	// MarkPaid persists the paid status and paid date and lowers the
	// customer's outstanding balance by the invoice total, in one transaction.
	MarkPaid(ctx context.Context, invoice *entity.Invoice) error

	// Cancel persists the cancelled status, reverses stock for every line item
	// and lowers the customer aggregates, in one transaction.
	Cancel(ctx context.Context, invoice *entity.Invoice) error

	// UpdateStatus persists only the lifecycle fields (status, paid date).
	UpdateStatus(ctx context.Context, invoice *entity.Invoice) error

	// FindByID retrieves an invoice with its items, scoped to the owner.
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Invoice, error)

	// FindByIDWithCustomer retrieves an invoice with its customer resolved.
	FindByIDWithCustomer(ctx context.Context, id, userID uuid.UUID) (*entity.InvoiceWithCustomer, error)

	// FindByFilter retrieves invoices based on filter criteria with pagination.
	FindByFilter(ctx context.Context, filter InvoiceFilter, pagination Pagination) (*InvoiceListResult, error)

	// FindOverdue retrieves invoices with status sent or overdue whose due
	// date is strictly before asOf, with customers resolved.
	FindOverdue(ctx context.Context, userID uuid.UUID, asOf time.Time) ([]*entity.InvoiceWithCustomer, error)

	// ExistsByProduct checks whether any invoice line references the product.
	ExistsByProduct(ctx context.Context, productID, userID uuid.UUID) (bool, error)

	// ExistsByCustomer checks whether any invoice references the customer.
	ExistsByCustomer(ctx context.Context, customerID, userID uuid.UUID) (bool, error)
}
