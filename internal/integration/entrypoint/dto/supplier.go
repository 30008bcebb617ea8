// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/lankagrow/backend/internal/domain/entity"
)

// CreateSupplierRequest represents the request body for supplier creation.
type CreateSupplierRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=255"`
	Email   string `json:"email,omitempty" binding:"omitempty,email"`
	Phone   string `json:"phone,omitempty" binding:"omitempty,max=30"`
	Address string `json:"address,omitempty" binding:"omitempty,max=500"`
	Notes   string `json:"notes,omitempty" binding:"omitempty,max=1000"`
}

// UpdateSupplierRequest represents the request body for supplier update.
type UpdateSupplierRequest struct {
	Name    *string `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	Email   *string `json:"email,omitempty"`
	Phone   *string `json:"phone,omitempty" binding:"omitempty,max=30"`
	Address *string `json:"address,omitempty" binding:"omitempty,max=500"`
	Notes   *string `json:"notes,omitempty" binding:"omitempty,max=1000"`
}

// SupplierResponse represents a single supplier in API responses.
type SupplierResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SupplierListResponse represents the response for listing suppliers.
type SupplierListResponse struct {
	Suppliers []SupplierResponse `json:"suppliers"`
}

// ToSupplierResponse converts a domain Supplier entity to a SupplierResponse DTO.
func ToSupplierResponse(supplier *entity.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:        supplier.ID.String(),
		UserID:    supplier.UserID.String(),
		Name:      supplier.Name,
		Email:     supplier.Email,
		Phone:     supplier.Phone,
		Address:   supplier.Address,
		Notes:     supplier.Notes,
		CreatedAt: supplier.CreatedAt,
		UpdatedAt: supplier.UpdatedAt,
	}
}

// ToSupplierListResponse converts a list of suppliers.
func ToSupplierListResponse(suppliers []*entity.Supplier) SupplierListResponse {
	responses := make([]SupplierResponse, len(suppliers))
	for i, supplier := range suppliers {
		responses[i] = ToSupplierResponse(supplier)
	}
	return SupplierListResponse{Suppliers: responses}
}
