// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Investment represents an amount the user put into an asset.
type Investment struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Type        string
	Name        string
	Amount      decimal.Decimal
	Date        time.Time
	IsCrypto    bool
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewInvestment creates a new Investment entity.
func NewInvestment(userID uuid.UUID, investmentType, name string, amount decimal.Decimal, date time.Time, isCrypto bool, description string) *Investment {
	now := time.Now().UTC()

	return &Investment{
		ID:          uuid.New(),
		UserID:      userID,
		Type:        investmentType,
		Name:        name,
		Amount:      amount,
		Date:        date,
		IsCrypto:    isCrypto,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// CryptoQuote is the current market price of a crypto asset.
type CryptoQuote struct {
	CoinID    string
	PriceBRL  decimal.Decimal
	Change24h decimal.Decimal
}

// Replace overwrites every mutable field.
func (i *Investment) Replace(investmentType, name string, amount decimal.Decimal, date time.Time, isCrypto bool, description string) {
	i.Type = investmentType
	i.Name = name
	i.Amount = amount
	i.Date = date
	i.IsCrypto = isCrypto
	i.Description = description
	i.UpdatedAt = time.Now().UTC()
}
