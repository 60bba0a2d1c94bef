// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentMethod represents how an expense was paid.
type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "cash"
	PaymentMethodDebit    PaymentMethod = "debit"
	PaymentMethodCredit   PaymentMethod = "credit"
	PaymentMethodPix      PaymentMethod = "pix"
	PaymentMethodBoleto   PaymentMethod = "boleto"
	PaymentMethodTransfer PaymentMethod = "transfer"
	PaymentMethodOther    PaymentMethod = "other"
)

// PaymentMethods lists every accepted payment method.
var PaymentMethods = []PaymentMethod{
	PaymentMethodCash,
	PaymentMethodDebit,
	PaymentMethodCredit,
	PaymentMethodPix,
	PaymentMethodBoleto,
	PaymentMethodTransfer,
	PaymentMethodOther,
}

// IsValid reports whether the payment method is one of the known values.
func (p PaymentMethod) IsValid() bool {
	for _, m := range PaymentMethods {
		if p == m {
			return true
		}
	}
	return false
}

// Expense represents a single spending record.
type Expense struct {
	ID                 uuid.UUID
	UserID             uuid.UUID
	Category           string
	Subcategory        string
	Amount             decimal.Decimal
	PaymentMethod      PaymentMethod
	Installments       *int // Only meaningful for credit payments
	InstallmentNumber  *int // Position within an installment plan, 1-based
	CreditCardID       *uuid.UUID
	Note               string
	Fixed              bool       // Generated from a recurring template
	RecurringExpenseID *uuid.UUID // Template the record was materialized from
	Date               time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
	DeletedAt          *time.Time // Soft-delete support
}

// NewExpense creates a new Expense entity.
// Installments and credit card are dropped unless the payment method is credit.
func NewExpense(
	userID uuid.UUID,
	category string,
	subcategory string,
	amount decimal.Decimal,
	paymentMethod PaymentMethod,
	installments *int,
	creditCardID *uuid.UUID,
	note string,
	date time.Time,
) *Expense {
	now := time.Now().UTC()

	e := &Expense{
		ID:            uuid.New(),
		UserID:        userID,
		Category:      category,
		Subcategory:   subcategory,
		Amount:        amount,
		PaymentMethod: paymentMethod,
		Installments:  installments,
		CreditCardID:  creditCardID,
		Note:          note,
		Date:          date,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	e.normalizeCreditFields()
	return e
}

// Replace overwrites every mutable field, keeping identity and ownership.
func (e *Expense) Replace(
	category string,
	subcategory string,
	amount decimal.Decimal,
	paymentMethod PaymentMethod,
	installments *int,
	creditCardID *uuid.UUID,
	note string,
	date time.Time,
) {
	e.Category = category
	e.Subcategory = subcategory
	e.Amount = amount
	e.PaymentMethod = paymentMethod
	e.Installments = installments
	e.CreditCardID = creditCardID
	e.Note = note
	e.Date = date
	e.UpdatedAt = time.Now().UTC()
	e.normalizeCreditFields()
}

func (e *Expense) normalizeCreditFields() {
	if e.PaymentMethod != PaymentMethodCredit {
		e.Installments = nil
		e.InstallmentNumber = nil
		e.CreditCardID = nil
	}
}

// IsInstallmentPlan reports whether the expense should be split across months.
func (e *Expense) IsInstallmentPlan() bool {
	return e.PaymentMethod == PaymentMethodCredit && e.Installments != nil && *e.Installments > 1
}
