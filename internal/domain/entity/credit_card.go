// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CreditCard identifies a card expenses can be charged to.
type CreditCard struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Name       string
	LastDigits string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewCreditCard creates a new CreditCard entity.
func NewCreditCard(userID uuid.UUID, name, lastDigits string) *CreditCard {
	now := time.Now().UTC()

	return &CreditCard{
		ID:         uuid.New(),
		UserID:     userID,
		Name:       name,
		LastDigits: lastDigits,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
