// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Customer represents a buyer the business invoices.
//
// LifetimeValue and OutstandingBalance are derived aggregates maintained by the
// invoice workflow: lifetime value only ever reflects invoiced totals (adjusted
// symmetrically when an invoice is updated, cancelled or deleted), while the
// outstanding balance additionally decreases when an invoice is paid.
type Customer struct {
	ID                 uuid.UUID
	UserID             uuid.UUID
	Name               string
	Email              string
	Phone              string
	Address            string
	LifetimeValue      decimal.Decimal
	OutstandingBalance decimal.Decimal
	LastPurchase       *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
	DeletedAt          *time.Time // Soft-delete support
}

// NewCustomer creates a new Customer entity.
func NewCustomer(userID uuid.UUID, name, email, phone, address string) *Customer {
	now := time.Now().UTC()

	return &Customer{
		ID:                 uuid.New(),
		UserID:             userID,
		Name:               name,
		Email:              email,
		Phone:              phone,
		Address:            address,
		LifetimeValue:      decimal.Zero,
		OutstandingBalance: decimal.Zero,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}
