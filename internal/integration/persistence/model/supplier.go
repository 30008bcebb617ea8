// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lankagrow/backend/internal/domain/entity"
)

// SupplierModel represents the suppliers table in the database.
type SupplierModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index"`
	Name      string         `gorm:"type:varchar(255);not null"`
	Email     string         `gorm:"type:varchar(255)"`
	Phone     string         `gorm:"type:varchar(30)"`
	Address   string         `gorm:"type:text"`
	Notes     string         `gorm:"type:text"`
	CreatedAt time.Time      `gorm:"not null"`
	UpdatedAt time.Time      `gorm:"not null"`
	DeletedAt gorm.DeletedAt `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the SupplierModel.
func (SupplierModel) TableName() string {
	return "suppliers"
}

// ToEntity converts a SupplierModel to a domain Supplier entity.
func (m *SupplierModel) ToEntity() *entity.Supplier {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Supplier{
		ID:        m.ID,
		UserID:    m.UserID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Address:   m.Address,
		Notes:     m.Notes,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		DeletedAt: deletedAt,
	}
}

// SupplierFromEntity creates a SupplierModel from a domain Supplier entity.
func SupplierFromEntity(supplier *entity.Supplier) *SupplierModel {
	var deletedAt gorm.DeletedAt
	if supplier.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *supplier.DeletedAt, Valid: true}
	}

	return &SupplierModel{
		ID:        supplier.ID,
		UserID:    supplier.UserID,
		Name:      supplier.Name,
		Email:     supplier.Email,
		Phone:     supplier.Phone,
		Address:   supplier.Address,
		Notes:     supplier.Notes,
		CreatedAt: supplier.CreatedAt,
		UpdatedAt: supplier.UpdatedAt,
		DeletedAt: deletedAt,
	}
}
