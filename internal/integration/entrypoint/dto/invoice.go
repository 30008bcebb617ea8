// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/lankagrow/backend/internal/domain/entity"
)

// InvoiceItemRequest represents a line item in invoice requests.
type InvoiceItemRequest struct {
	ProductID string  `json:"product_id" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required,gt=0"`
	UnitPrice float64 `json:"unit_price" binding:"gte=0"`
	Discount  float64 `json:"discount" binding:"gte=0"`
}

// CreateInvoiceRequest represents the request body for invoice creation.
type CreateInvoiceRequest struct {
	CustomerID string               `json:"customer_id" binding:"required"`
	Items      []InvoiceItemRequest `json:"items" binding:"required,min=1,dive"`
	TaxRate    *float64             `json:"tax_rate,omitempty" binding:"omitempty,gte=0,lte=100"`
	DueDate    string               `json:"due_date" binding:"required"`
	Notes      string               `json:"notes,omitempty" binding:"omitempty,max=1000"`
}

// UpdateInvoiceRequest represents the request body for invoice update. A nil
// items field leaves line items unchanged; a non-nil one replaces them.
type UpdateInvoiceRequest struct {
	CustomerID *string              `json:"customer_id,omitempty"`
	Items      []InvoiceItemRequest `json:"items,omitempty" binding:"omitempty,min=1,dive"`
	TaxRate    *float64             `json:"tax_rate,omitempty" binding:"omitempty,gte=0,lte=100"`
	DueDate    *string              `json:"due_date,omitempty"`
	Notes      *string              `json:"notes,omitempty" binding:"omitempty,max=1000"`
}

// MarkPaidRequest represents the request body for marking an invoice paid.
type MarkPaidRequest struct {
	PaidDate *string `json:"paid_date,omitempty"`
}

// InvoiceItemResponse represents a line item in invoice responses.
type InvoiceItemResponse struct {
	ID          string `json:"id"`
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	Discount    string `json:"discount"`
	LineTotal   string `json:"line_total"`
}

// InvoiceResponse represents a single invoice in API responses.
type InvoiceResponse struct {
	ID            string                `json:"id"`
	UserID        string                `json:"user_id"`
	CustomerID    string                `json:"customer_id"`
	InvoiceNumber string                `json:"invoice_number"`
	Items         []InvoiceItemResponse `json:"items"`
	Subtotal      string                `json:"subtotal"`
	TaxRate       string                `json:"tax_rate"`
	TaxAmount     string                `json:"tax_amount"`
	TotalAmount   string                `json:"total_amount"`
	Status        string                `json:"status"`
	Notes         string                `json:"notes"`
	DueDate       string                `json:"due_date"`
	PaidDate      *string               `json:"paid_date,omitempty"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
}

// InvoiceCustomerResponse represents customer summary data attached to an invoice.
type InvoiceCustomerResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// InvoiceWithCustomerResponse represents an invoice with its customer attached.
type InvoiceWithCustomerResponse struct {
	InvoiceResponse
	Customer *InvoiceCustomerResponse `json:"customer,omitempty"`
}

// InvoiceListResponse represents the response for listing invoices.
type InvoiceListResponse struct {
	Invoices   []InvoiceWithCustomerResponse `json:"invoices"`
	Pagination PaginationResponse            `json:"pagination"`
}

// OverdueInvoiceResponse represents an overdue invoice with follow-up text.
type OverdueInvoiceResponse struct {
	InvoiceResponse
	Customer        *InvoiceCustomerResponse `json:"customer,omitempty"`
	DaysPastDue     int                      `json:"days_past_due"`
	FollowUpMessage string                   `json:"follow_up_message"`
	FollowUpSource  string                   `json:"follow_up_source"`
}

// OverdueInvoiceListResponse represents the response for listing overdue invoices.
type OverdueInvoiceListResponse struct {
	Invoices []OverdueInvoiceResponse `json:"invoices"`
}

// ReminderResponse represents the response for queueing a payment reminder.
type ReminderResponse struct {
	InvoiceNumber string `json:"invoice_number"`
	DaysPastDue   int    `json:"days_past_due"`
	Message       string `json:"message"`
}

// ToInvoiceResponse converts a domain Invoice entity to an InvoiceResponse DTO.
func ToInvoiceResponse(invoice *entity.Invoice) InvoiceResponse {
	items := make([]InvoiceItemResponse, len(invoice.Items))
	for i, item := range invoice.Items {
		items[i] = InvoiceItemResponse{
			ID:          item.ID.String(),
			ProductID:   item.ProductID.String(),
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice.String(),
			Discount:    item.Discount.String(),
			LineTotal:   item.LineTotal.String(),
		}
	}

	response := InvoiceResponse{
		ID:            invoice.ID.String(),
		UserID:        invoice.UserID.String(),
		CustomerID:    invoice.CustomerID.String(),
		InvoiceNumber: invoice.InvoiceNumber,
		Items:         items,
		Subtotal:      invoice.Subtotal.String(),
		TaxRate:       invoice.TaxRate.String(),
		TaxAmount:     invoice.TaxAmount.String(),
		TotalAmount:   invoice.TotalAmount.String(),
		Status:        string(invoice.Status),
		Notes:         invoice.Notes,
		DueDate:       invoice.DueDate.Format("2006-01-02"),
		CreatedAt:     invoice.CreatedAt,
		UpdatedAt:     invoice.UpdatedAt,
	}

	if invoice.PaidDate != nil {
		paidDate := invoice.PaidDate.Format("2006-01-02")
		response.PaidDate = &paidDate
	}

	return response
}

// ToInvoiceCustomerResponse converts a customer to its invoice summary form.
func ToInvoiceCustomerResponse(customer *entity.Customer) *InvoiceCustomerResponse {
	if customer == nil {
		return nil
	}
	return &InvoiceCustomerResponse{
		ID:    customer.ID.String(),
		Name:  customer.Name,
		Email: customer.Email,
		Phone: customer.Phone,
	}
}

// ToInvoiceWithCustomerResponse converts an invoice with customer attached.
func ToInvoiceWithCustomerResponse(invoice *entity.InvoiceWithCustomer) InvoiceWithCustomerResponse {
	return InvoiceWithCustomerResponse{
		InvoiceResponse: ToInvoiceResponse(invoice.Invoice),
		Customer:        ToInvoiceCustomerResponse(invoice.Customer),
	}
}

// ToInvoiceListResponse converts a list of invoices plus pagination metadata.
func ToInvoiceListResponse(invoices []*entity.InvoiceWithCustomer, pagination PaginationResponse) InvoiceListResponse {
	responses := make([]InvoiceWithCustomerResponse, len(invoices))
	for i, invoice := range invoices {
		responses[i] = ToInvoiceWithCustomerResponse(invoice)
	}
	return InvoiceListResponse{
		Invoices:   responses,
		Pagination: pagination,
	}
}

// ToOverdueInvoiceListResponse converts overdue invoices with follow-up text.
func ToOverdueInvoiceListResponse(invoices []*entity.OverdueInvoice) OverdueInvoiceListResponse {
	responses := make([]OverdueInvoiceResponse, len(invoices))
	for i, overdue := range invoices {
		responses[i] = OverdueInvoiceResponse{
			InvoiceResponse: ToInvoiceResponse(overdue.Invoice),
			Customer:        ToInvoiceCustomerResponse(overdue.Customer),
			DaysPastDue:     overdue.DaysPastDue,
			FollowUpMessage: overdue.FollowUpMessage,
			FollowUpSource:  overdue.FollowUpSource,
		}
	}
	return OverdueInvoiceListResponse{Invoices: responses}
}
