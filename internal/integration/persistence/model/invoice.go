// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lankagrow/backend/internal/domain/entity"
)

// InvoiceModel represents the invoices table in the database. The invoice
// number index carries the owner id so each user has an independent numbering
// space.
type InvoiceModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index;index:idx_invoices_user_number,unique"`
	CustomerID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	InvoiceNumber string          `gorm:"type:varchar(20);not null;index:idx_invoices_user_number,unique"`
	Subtotal      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	TaxRate       decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	TaxAmount     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Status        string          `gorm:"type:varchar(10);not null;index"`
	Notes         string          `gorm:"type:text"`
	DueDate       time.Time       `gorm:"not null;index"`
	PaidDate      *time.Time
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	Items    []InvoiceItemModel `gorm:"foreignKey:InvoiceID;references:ID"`
	Customer *CustomerModel     `gorm:"foreignKey:CustomerID;references:ID"`
}

// TableName returns the table name for the InvoiceModel.
func (InvoiceModel) TableName() string {
	return "invoices"
}

// InvoiceItemModel represents the invoice_items table in the database.
type InvoiceItemModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	InvoiceID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductName string          `gorm:"type:varchar(255);not null"`
	Quantity    int             `gorm:"not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Discount    decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	LineTotal   decimal.Decimal `gorm:"type:decimal(15,2);not null"`
}

// TableName returns the table name for the InvoiceItemModel.
func (InvoiceItemModel) TableName() string {
	return "invoice_items"
}

// InvoiceSequenceModel represents the invoice_sequences table. One row per
// owner holds the last assigned invoice number.
type InvoiceSequenceModel struct {
	UserID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	LastSeq int64     `gorm:"not null;default:0"`
}

// TableName returns the table name for the InvoiceSequenceModel.
func (InvoiceSequenceModel) TableName() string {
	return "invoice_sequences"
}

// ToEntity converts an InvoiceModel to a domain Invoice entity.
func (m *InvoiceModel) ToEntity() *entity.Invoice {
	items := make([]*entity.InvoiceItem, 0, len(m.Items))
	for i := range m.Items {
		items = append(items, m.Items[i].ToEntity())
	}

	return &entity.Invoice{
		ID:            m.ID,
		UserID:        m.UserID,
		CustomerID:    m.CustomerID,
		InvoiceNumber: m.InvoiceNumber,
		Items:         items,
		Subtotal:      m.Subtotal,
		TaxRate:       m.TaxRate,
		TaxAmount:     m.TaxAmount,
		TotalAmount:   m.TotalAmount,
		Status:        entity.InvoiceStatus(m.Status),
		Notes:         m.Notes,
		DueDate:       m.DueDate,
		PaidDate:      m.PaidDate,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// ToEntityWithCustomer converts an InvoiceModel with its Customer to an
// InvoiceWithCustomer entity.
func (m *InvoiceModel) ToEntityWithCustomer() *entity.InvoiceWithCustomer {
	result := &entity.InvoiceWithCustomer{
		Invoice: m.ToEntity(),
	}
	if m.Customer != nil {
		result.Customer = m.Customer.ToEntity()
	}
	return result
}

// ToEntity converts an InvoiceItemModel to a domain InvoiceItem entity.
func (m *InvoiceItemModel) ToEntity() *entity.InvoiceItem {
	return &entity.InvoiceItem{
		ID:          m.ID,
		InvoiceID:   m.InvoiceID,
		ProductID:   m.ProductID,
		ProductName: m.ProductName,
		Quantity:    m.Quantity,
		UnitPrice:   m.UnitPrice,
		Discount:    m.Discount,
		LineTotal:   m.LineTotal,
	}
}

// InvoiceFromEntity creates an InvoiceModel from a domain Invoice entity.
func InvoiceFromEntity(invoice *entity.Invoice) *InvoiceModel {
	items := make([]InvoiceItemModel, 0, len(invoice.Items))
	for _, item := range invoice.Items {
		items = append(items, *InvoiceItemFromEntity(item))
	}

	return &InvoiceModel{
		ID:            invoice.ID,
		UserID:        invoice.UserID,
		CustomerID:    invoice.CustomerID,
		InvoiceNumber: invoice.InvoiceNumber,
		Subtotal:      invoice.Subtotal,
		TaxRate:       invoice.TaxRate,
		TaxAmount:     invoice.TaxAmount,
		TotalAmount:   invoice.TotalAmount,
		Status:        string(invoice.Status),
		Notes:         invoice.Notes,
		DueDate:       invoice.DueDate,
		PaidDate:      invoice.PaidDate,
		CreatedAt:     invoice.CreatedAt,
		UpdatedAt:     invoice.UpdatedAt,
		Items:         items,
	}
}

// InvoiceItemFromEntity creates an InvoiceItemModel from a domain InvoiceItem entity.
func InvoiceItemFromEntity(item *entity.InvoiceItem) *InvoiceItemModel {
	return &InvoiceItemModel{
		ID:          item.ID,
		InvoiceID:   item.InvoiceID,
		ProductID:   item.ProductID,
		ProductName: item.ProductName,
		Quantity:    item.Quantity,
		UnitPrice:   item.UnitPrice,
		Discount:    item.Discount,
		LineTotal:   item.LineTotal,
	}
}
