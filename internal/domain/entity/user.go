// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a business owner account. Every other entity is scoped to a
// user id; no query resolves a document without matching it.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	BusinessName string
	PasswordHash string
	Currency     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a new User with default values.
func NewUser(email, name, businessName, passwordHash string) *User {
	now := time.Now().UTC()
	return &User{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		BusinessName: businessName,
		PasswordHash: passwordHash,
		Currency:     "LKR",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
