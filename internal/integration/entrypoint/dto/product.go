// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/lankagrow/backend/internal/domain/entity"
)

// CreateProductRequest represents the request body for product creation.
type CreateProductRequest struct {
	Name          string  `json:"name" binding:"required,min=1,max=255"`
	SKU           string  `json:"sku" binding:"required,min=1,max=64"`
	Category      string  `json:"category,omitempty" binding:"omitempty,max=100"`
	Description   string  `json:"description,omitempty" binding:"omitempty,max=1000"`
	PurchasePrice float64 `json:"purchase_price" binding:"gte=0"`
	SellingPrice  float64 `json:"selling_price" binding:"gte=0"`
	InitialStock  int     `json:"initial_stock" binding:"gte=0"`
	MinStockLevel int     `json:"min_stock_level" binding:"gte=0"`
	Unit          string  `json:"unit,omitempty" binding:"omitempty,max=20"`
}

// UpdateProductRequest represents the request body for product update.
type UpdateProductRequest struct {
	Name          *string  `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	SKU           *string  `json:"sku,omitempty" binding:"omitempty,min=1,max=64"`
	Category      *string  `json:"category,omitempty" binding:"omitempty,max=100"`
	Description   *string  `json:"description,omitempty" binding:"omitempty,max=1000"`
	PurchasePrice *float64 `json:"purchase_price,omitempty" binding:"omitempty,gte=0"`
	SellingPrice  *float64 `json:"selling_price,omitempty" binding:"omitempty,gte=0"`
	MinStockLevel *int     `json:"min_stock_level,omitempty" binding:"omitempty,gte=0"`
	Unit          *string  `json:"unit,omitempty" binding:"omitempty,max=20"`
	Tags          []string `json:"tags,omitempty"`
}

// AdjustStockRequest represents the request body for manual stock adjustment.
type AdjustStockRequest struct {
	Quantity int    `json:"quantity" binding:"required,gt=0"`
	Type     string `json:"type" binding:"required,oneof=add subtract"`
}

// ProductResponse represents a single product in API responses.
type ProductResponse struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Name          string    `json:"name"`
	SKU           string    `json:"sku"`
	Category      string    `json:"category"`
	Description   string    `json:"description"`
	PurchasePrice string    `json:"purchase_price"`
	SellingPrice  string    `json:"selling_price"`
	CurrentStock  int       `json:"current_stock"`
	MinStockLevel int       `json:"min_stock_level"`
	Unit          string    `json:"unit"`
	Tags          []string  `json:"tags"`
	LowStock      bool      `json:"low_stock"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CreateProductResponse represents the response for product creation.
type CreateProductResponse struct {
	ProductResponse
	TagSource string `json:"tag_source"`
}

// ReorderSuggestionResponse represents an advisory reorder quantity.
type ReorderSuggestionResponse struct {
	Quantity int    `json:"quantity"`
	Source   string `json:"source"`
}

// AdjustStockResponse represents the response for a stock adjustment.
type AdjustStockResponse struct {
	Product      ProductResponse            `json:"product"`
	AISuggestion *ReorderSuggestionResponse `json:"ai_suggestion,omitempty"`
}

// ProductListResponse represents the response for listing products.
type ProductListResponse struct {
	Products   []ProductResponse  `json:"products"`
	Pagination PaginationResponse `json:"pagination"`
}

// LowStockListResponse represents the response for listing low stock products.
type LowStockListResponse struct {
	Products []ProductResponse `json:"products"`
}

// ToProductResponse converts a domain Product entity to a ProductResponse DTO.
func ToProductResponse(product *entity.Product) ProductResponse {
	tags := product.Tags
	if tags == nil {
		tags = []string{}
	}
	return ProductResponse{
		ID:            product.ID.String(),
		UserID:        product.UserID.String(),
		Name:          product.Name,
		SKU:           product.SKU,
		Category:      product.Category,
		Description:   product.Description,
		PurchasePrice: product.PurchasePrice.String(),
		SellingPrice:  product.SellingPrice.String(),
		CurrentStock:  product.CurrentStock,
		MinStockLevel: product.MinStockLevel,
		Unit:          product.Unit,
		Tags:          tags,
		LowStock:      product.IsLowStock(),
		CreatedAt:     product.CreatedAt,
		UpdatedAt:     product.UpdatedAt,
	}
}

// ToProductListResponse converts a list of products plus pagination metadata.
func ToProductListResponse(products []*entity.Product, pagination PaginationResponse) ProductListResponse {
	responses := make([]ProductResponse, len(products))
	for i, product := range products {
		responses[i] = ToProductResponse(product)
	}
	return ProductListResponse{
		Products:   responses,
		Pagination: pagination,
	}
}
