// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Income represents money received by the user.
type Income struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Category  string
	Amount    decimal.Decimal
	Date      time.Time
	Source    string
	Note      string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // Soft-delete support
}

// NewIncome creates a new Income entity.
func NewIncome(userID uuid.UUID, category string, amount decimal.Decimal, date time.Time, source, note string) *Income {
	now := time.Now().UTC()

	return &Income{
		ID:        uuid.New(),
		UserID:    userID,
		Category:  category,
		Amount:    amount,
		Date:      date,
		Source:    source,
		Note:      note,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Replace overwrites every mutable field.
func (i *Income) Replace(category string, amount decimal.Decimal, date time.Time, source, note string) {
	i.Category = category
	i.Amount = amount
	i.Date = date
	i.Source = source
	i.Note = note
	i.UpdatedAt = time.Now().UTC()
}
