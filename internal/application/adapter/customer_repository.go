// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/lankagrow/backend/internal/domain/entity"
)

// CustomerFilter defines filter options for listing customers.
type CustomerFilter struct {
	UserID uuid.UUID
	Search string // Case-insensitive name/email match
}

// CustomerListResult represents the result of listing customers.
type CustomerListResult struct {
	Customers  []*entity.Customer
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// CustomerRepository defines the interface for customer persistence operations.
// Purchase aggregates (lifetime value, outstanding balance, last purchase) are
// maintained by the invoice workflow, not through this interface.
type CustomerRepository interface {
	// Create creates a new customer in the database.
	Create(ctx context.Context, customer *entity.Customer) error

	// FindByID retrieves a customer by its ID, scoped to the owner.
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Customer, error)

	// FindByFilter retrieves customers based on filter criteria with pagination.
	FindByFilter(ctx context.Context, filter CustomerFilter, pagination Pagination) (*CustomerListResult, error)

	// Update updates an existing customer in the database.
	Update(ctx context.Context, customer *entity.Customer) error

	// Delete soft-deletes a customer from the database.
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

// SupplierRepository defines the interface for supplier persistence operations.
type SupplierRepository interface {
	// Create creates a new supplier in the database.
	Create(ctx context.Context, supplier *entity.Supplier) error

	// FindByID retrieves a supplier by its ID, scoped to the owner.
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Supplier, error)

	// FindByUser retrieves all suppliers for the owner.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Supplier, error)

	// Update updates an existing supplier in the database.
	Update(ctx context.Context, supplier *entity.Supplier) error

	// Delete soft-deletes a supplier from the database.
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
