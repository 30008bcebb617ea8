// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/lankagrow/backend/internal/domain/entity"
)

// ProductModel represents the products table in the database.
type ProductModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index;index:idx_products_user_sku,unique"`
	Name          string          `gorm:"type:varchar(255);not null"`
	SKU           string          `gorm:"type:varchar(64);not null;index:idx_products_user_sku,unique"`
	Category      string          `gorm:"type:varchar(100);index"`
	Description   string          `gorm:"type:text"`
	PurchasePrice decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	SellingPrice  decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CurrentStock  int             `gorm:"not null;default:0"`
	MinStockLevel int             `gorm:"not null;default:0"`
	Unit          string          `gorm:"type:varchar(20)"`
	Tags          []string        `gorm:"type:text;serializer:json"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
	DeletedAt     gorm.DeletedAt  `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the ProductModel.
func (ProductModel) TableName() string {
	return "products"
}

// ToEntity converts a ProductModel to a domain Product entity.
func (m *ProductModel) ToEntity() *entity.Product {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Product{
		ID:            m.ID,
		UserID:        m.UserID,
		Name:          m.Name,
		SKU:           m.SKU,
		Category:      m.Category,
		Description:   m.Description,
		PurchasePrice: m.PurchasePrice,
		SellingPrice:  m.SellingPrice,
		CurrentStock:  m.CurrentStock,
		MinStockLevel: m.MinStockLevel,
		Unit:          m.Unit,
		Tags:          m.Tags,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
		DeletedAt:     deletedAt,
	}
}

// ProductFromEntity creates a ProductModel from a domain Product entity.
func ProductFromEntity(product *entity.Product) *ProductModel {
	var deletedAt gorm.DeletedAt
	if product.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *product.DeletedAt, Valid: true}
	}

	return &ProductModel{
		ID:            product.ID,
		UserID:        product.UserID,
		Name:          product.Name,
		SKU:           product.SKU,
		Category:      product.Category,
		Description:   product.Description,
		PurchasePrice: product.PurchasePrice,
		SellingPrice:  product.SellingPrice,
		CurrentStock:  product.CurrentStock,
		MinStockLevel: product.MinStockLevel,
		Unit:          product.Unit,
		Tags:          product.Tags,
		CreatedAt:     product.CreatedAt,
		UpdatedAt:     product.UpdatedAt,
		DeletedAt:     deletedAt,
	}
}
