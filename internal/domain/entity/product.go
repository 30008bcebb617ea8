// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product represents an item in a business's catalog.
type Product struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Name          string
	SKU           string
	Category      string
	Description   string
	PurchasePrice decimal.Decimal
	SellingPrice  decimal.Decimal
	CurrentStock  int
	MinStockLevel int
	Unit          string
	Tags          []string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time // Soft-delete support
}

// NewProduct creates a new Product entity.
func NewProduct(
	userID uuid.UUID,
	name, sku, category, description string,
	purchasePrice, sellingPrice decimal.Decimal,
	currentStock, minStockLevel int,
	unit string,
) *Product {
	now := time.Now().UTC()

	return &Product{
		ID:            uuid.New(),
		UserID:        userID,
		Name:          name,
		SKU:           sku,
		Category:      category,
		Description:   description,
		PurchasePrice: purchasePrice,
		SellingPrice:  sellingPrice,
		CurrentStock:  currentStock,
		MinStockLevel: minStockLevel,
		Unit:          unit,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// IsLowStock reports whether the product is at or below its reorder threshold.
func (p *Product) IsLowStock() bool {
	return p.CurrentStock <= p.MinStockLevel
}

// StockValue returns the purchase-price valuation of the current stock.
func (p *Product) StockValue() decimal.Decimal {
	return p.PurchasePrice.Mul(decimal.NewFromInt(int64(p.CurrentStock)))
}
