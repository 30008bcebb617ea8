// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/lankagrow/backend/internal/domain/entity"
)

// CustomerModel represents the customers table in the database.
type CustomerModel struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID             uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name               string          `gorm:"type:varchar(255);not null"`
	Email              string          `gorm:"type:varchar(255)"`
	Phone              string          `gorm:"type:varchar(30)"`
	Address            string          `gorm:"type:text"`
	LifetimeValue      decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	OutstandingBalance decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	LastPurchase       *time.Time
	CreatedAt          time.Time      `gorm:"not null"`
	UpdatedAt          time.Time      `gorm:"not null"`
	DeletedAt          gorm.DeletedAt `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the CustomerModel.
func (CustomerModel) TableName() string {
	return "customers"
}

// ToEntity converts a CustomerModel to a domain Customer entity.
func (m *CustomerModel) ToEntity() *entity.Customer {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Customer{
		ID:                 m.ID,
		UserID:             m.UserID,
		Name:               m.Name,
		Email:              m.Email,
		Phone:              m.Phone,
		Address:            m.Address,
		LifetimeValue:      m.LifetimeValue,
		OutstandingBalance: m.OutstandingBalance,
		LastPurchase:       m.LastPurchase,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
		DeletedAt:          deletedAt,
	}
}

// CustomerFromEntity creates a CustomerModel from a domain Customer entity.
func CustomerFromEntity(customer *entity.Customer) *CustomerModel {
	var deletedAt gorm.DeletedAt
	if customer.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *customer.DeletedAt, Valid: true}
	}

	return &CustomerModel{
		ID:                 customer.ID,
		UserID:             customer.UserID,
		Name:               customer.Name,
		Email:              customer.Email,
		Phone:              customer.Phone,
		Address:            customer.Address,
		LifetimeValue:      customer.LifetimeValue,
		OutstandingBalance: customer.OutstandingBalance,
		LastPurchase:       customer.LastPurchase,
		CreatedAt:          customer.CreatedAt,
		UpdatedAt:          customer.UpdatedAt,
		DeletedAt:          deletedAt,
	}
}
