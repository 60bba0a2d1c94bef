// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecurringExpense is a fixed-expense template materialized into one
// expense per remaining month of its start year.
type RecurringExpense struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Category      string
	Subcategory   string
	Amount        decimal.Decimal
	DayOfMonth    int
	PaymentMethod PaymentMethod
	Installments  *int
	CreditCardID  *uuid.UUID
	Note          string
	StartDate     time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewRecurringExpense creates a new template. The day of month is taken from startDate.
func NewRecurringExpense(
	userID uuid.UUID,
	category string,
	subcategory string,
	amount decimal.Decimal,
	paymentMethod PaymentMethod,
	installments *int,
	creditCardID *uuid.UUID,
	note string,
	startDate time.Time,
) *RecurringExpense {
	now := time.Now().UTC()

	r := &RecurringExpense{
		ID:            uuid.New(),
		UserID:        userID,
		Category:      category,
		Subcategory:   subcategory,
		Amount:        amount,
		DayOfMonth:    startDate.Day(),
		PaymentMethod: paymentMethod,
		Installments:  installments,
		CreditCardID:  creditCardID,
		Note:          note,
		StartDate:     startDate,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if paymentMethod != PaymentMethodCredit {
		r.Installments = nil
		r.CreditCardID = nil
	}

	return r
}
