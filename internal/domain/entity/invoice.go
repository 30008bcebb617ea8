// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceStatus represents the lifecycle state of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "draft"
	InvoiceStatusSent      InvoiceStatus = "sent"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusOverdue   InvoiceStatus = "overdue"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

// InvoiceItem is one product line within an invoice. ProductName is a
// denormalized snapshot taken at creation time so later catalog renames do not
// alter historical invoices.
type InvoiceItem struct {
	ID          uuid.UUID
	InvoiceID   uuid.UUID
	ProductID   uuid.UUID
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	Discount    decimal.Decimal
	LineTotal   decimal.Decimal
}

// NewInvoiceItem builds a priced line item. lineTotal = quantity*unitPrice - discount.
func NewInvoiceItem(productID uuid.UUID, productName string, quantity int, unitPrice, discount decimal.Decimal) *InvoiceItem {
	lineTotal := unitPrice.Mul(decimal.NewFromInt(int64(quantity))).Sub(discount)

	return &InvoiceItem{
		ID:          uuid.New(),
		ProductID:   productID,
		ProductName: productName,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		Discount:    discount,
		LineTotal:   lineTotal,
	}
}

// Invoice represents a sales invoice. It exclusively owns its item list and
// holds non-owning references to the customer and to each product.
type Invoice struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	CustomerID    uuid.UUID
	InvoiceNumber string
	Items         []*InvoiceItem
	Subtotal      decimal.Decimal
	TaxRate       decimal.Decimal // Percentage, e.g. 15 means 15%
	TaxAmount     decimal.Decimal
	TotalAmount   decimal.Decimal
	Status        InvoiceStatus
	Notes         string
	DueDate       time.Time
	PaidDate      *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewInvoice creates a draft invoice from priced items. The invoice number is
// assigned by the persistence layer at first save and never reassigned.
func NewInvoice(userID, customerID uuid.UUID, items []*InvoiceItem, taxRate decimal.Decimal, dueDate time.Time, notes string) *Invoice {
	now := time.Now().UTC()

	inv := &Invoice{
		ID:         uuid.New(),
		UserID:     userID,
		CustomerID: customerID,
		Items:      items,
		TaxRate:    taxRate,
		Status:     InvoiceStatusDraft,
		Notes:      notes,
		DueDate:    dueDate,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for _, item := range items {
		item.InvoiceID = inv.ID
	}
	inv.Recalculate()

	return inv
}

// Recalculate recomputes subtotal, tax amount and total from the item list.
func (i *Invoice) Recalculate() {
	subtotal := decimal.Zero
	for _, item := range i.Items {
		subtotal = subtotal.Add(item.LineTotal)
	}
	i.Subtotal = subtotal
	i.TaxAmount = subtotal.Mul(i.TaxRate).Div(decimal.NewFromInt(100))
	i.TotalAmount = subtotal.Add(i.TaxAmount)
}

// CanSend reports whether the invoice may transition to sent.
func (i *Invoice) CanSend() bool {
	return i.Status == InvoiceStatusDraft || i.Status == InvoiceStatusSent
}

// CanMarkPaid reports whether the invoice may transition to paid.
// Cancelled invoices cannot be paid; paying twice is rejected.
func (i *Invoice) CanMarkPaid() bool {
	return i.Status != InvoiceStatusCancelled && i.Status != InvoiceStatusPaid
}

// CanCancel reports whether the invoice may transition to cancelled.
func (i *Invoice) CanCancel() bool {
	return i.Status == InvoiceStatusDraft || i.Status == InvoiceStatusSent || i.Status == InvoiceStatusOverdue
}

// DaysPastDue returns the whole number of days the invoice is past its due
// date at the given instant, or 0 if it is not past due.
func (i *Invoice) DaysPastDue(now time.Time) int {
	if !i.DueDate.Before(now) {
		return 0
	}
	return int(now.Sub(i.DueDate).Hours() / 24)
}

// InvoiceWithCustomer pairs an invoice with its resolved customer record.
type InvoiceWithCustomer struct {
	Invoice  *Invoice
	Customer *Customer
}

// OverdueInvoice is an overdue invoice with its follow-up advisory attached.
type OverdueInvoice struct {
	Invoice         *Invoice
	Customer        *Customer
	DaysPastDue     int
	FollowUpMessage string
	FollowUpSource  string
}
