// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/lankagrow/backend/internal/domain/entity"
)

// CreateCustomerRequest represents the request body for customer creation.
type CreateCustomerRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=255"`
	Email   string `json:"email,omitempty" binding:"omitempty,email"`
	Phone   string `json:"phone,omitempty" binding:"omitempty,max=30"`
	Address string `json:"address,omitempty" binding:"omitempty,max=500"`
}

// UpdateCustomerRequest represents the request body for customer update.
type UpdateCustomerRequest struct {
	Name    *string `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	Email   *string `json:"email,omitempty"`
	Phone   *string `json:"phone,omitempty" binding:"omitempty,max=30"`
	Address *string `json:"address,omitempty" binding:"omitempty,max=500"`
}

// CustomerResponse represents a single customer in API responses.
type CustomerResponse struct {
	ID                 string     `json:"id"`
	UserID             string     `json:"user_id"`
	Name               string     `json:"name"`
	Email              string     `json:"email"`
	Phone              string     `json:"phone"`
	Address            string     `json:"address"`
	LifetimeValue      string     `json:"lifetime_value"`
	OutstandingBalance string     `json:"outstanding_balance"`
	LastPurchase       *time.Time `json:"last_purchase,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// CustomerListResponse represents the response for listing customers.
type CustomerListResponse struct {
	Customers  []CustomerResponse `json:"customers"`
	Pagination PaginationResponse `json:"pagination"`
}

// ToCustomerResponse converts a domain Customer entity to a CustomerResponse DTO.
func ToCustomerResponse(customer *entity.Customer) CustomerResponse {
	return CustomerResponse{
		ID:                 customer.ID.String(),
		UserID:             customer.UserID.String(),
		Name:               customer.Name,
		Email:              customer.Email,
		Phone:              customer.Phone,
		Address:            customer.Address,
		LifetimeValue:      customer.LifetimeValue.String(),
		OutstandingBalance: customer.OutstandingBalance.String(),
		LastPurchase:       customer.LastPurchase,
		CreatedAt:          customer.CreatedAt,
		UpdatedAt:          customer.UpdatedAt,
	}
}

// ToCustomerListResponse converts a list of customers plus pagination metadata.
func ToCustomerListResponse(customers []*entity.Customer, pagination PaginationResponse) CustomerListResponse {
	responses := make([]CustomerResponse, len(customers))
	for i, customer := range customers {
		responses[i] = ToCustomerResponse(customer)
	}
	return CustomerListResponse{
		Customers:  responses,
		Pagination: pagination,
	}
}
