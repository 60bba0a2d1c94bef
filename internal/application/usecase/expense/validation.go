// Package expense contains expense and recurring expense use cases.
package expense

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
	"github.com/finance-dashboard/backend/internal/domain/valueobject"
)

const (
	// MaxInstallments is the longest installment plan accepted for credit purchases.
	MaxInstallments = 48
	// MaxNoteLength is the maximum allowed length for notes, in characters.
	MaxNoteLength = 500
	// MaxCategoryLength is the maximum allowed length for category names.
	MaxCategoryLength = 50
)

// fields is the editable part of an expense or recurring template.
type fields struct {
	UserID        uuid.UUID
	Category      string
	Subcategory   string
	Amount        decimal.Decimal
	PaymentMethod entity.PaymentMethod
	Installments  *int
	CreditCardID  *uuid.UUID
	Note          string
	Date          time.Time
}

// validate checks the fields and normalises them in place.
func validate(ctx context.Context, cards adapter.CreditCardRepository, f *fields) error {
	f.Category = strings.TrimSpace(f.Category)
	f.Subcategory = strings.TrimSpace(f.Subcategory)
	f.Note = strings.TrimSpace(f.Note)

	if f.Category == "" {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseCategoryRequired,
			"category is required",
			domainerror.ErrExpenseCategoryRequired,
		)
	}
	if utf8.RuneCountInString(f.Category) > MaxCategoryLength || utf8.RuneCountInString(f.Subcategory) > MaxCategoryLength {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseCategoryRequired,
			fmt.Sprintf("category and subcategory must not exceed %d characters", MaxCategoryLength),
			domainerror.ErrExpenseCategoryRequired,
		)
	}

	if !f.Amount.IsPositive() {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidExpenseAmount,
		)
	}
	f.Amount = f.Amount.Round(2)

	if !f.PaymentMethod.IsValid() {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidPaymentMethod,
			"payment method must be one of cash, debit, credit, pix, boleto, transfer, other",
			domainerror.ErrInvalidPaymentMethod,
		)
	}

	if f.Date.IsZero() {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseDate,
			"date is required",
			nil,
		)
	}
	f.Date = f.Date.UTC()

	if utf8.RuneCountInString(f.Note) > MaxNoteLength {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseNoteTooLong,
			fmt.Sprintf("note must not exceed %d characters", MaxNoteLength),
			domainerror.ErrExpenseNoteTooLong,
		)
	}

	if f.PaymentMethod != entity.PaymentMethodCredit {
		f.Installments = nil
		f.CreditCardID = nil
		return nil
	}

	if f.Installments == nil {
		one := 1
		f.Installments = &one
	}
	if *f.Installments < 1 || *f.Installments > MaxInstallments {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidInstallments,
			fmt.Sprintf("installments must be between 1 and %d", MaxInstallments),
			domainerror.ErrInvalidInstallments,
		)
	}

	if f.CreditCardID != nil {
		card, err := cards.FindByID(ctx, *f.CreditCardID)
		if err != nil && !errors.Is(err, domainerror.ErrCreditCardNotFound) {
			return fmt.Errorf("failed to load credit card: %w", err)
		}
		if card == nil || card.UserID != f.UserID {
			return domainerror.NewExpenseError(
				domainerror.ErrCodeExpenseCardNotFound,
				"credit card not found",
				domainerror.ErrExpenseCreditCardNotFound,
			)
		}
	}

	return nil
}

// findOwned loads an expense and hides ones owned by other users.
func findOwned(ctx context.Context, repo adapter.ExpenseRepository, id, userID uuid.UUID) (*entity.Expense, error) {
	expense, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrExpenseNotFound) {
			return nil, notFound()
		}
		return nil, fmt.Errorf("failed to load expense: %w", err)
	}
	if expense.UserID != userID {
		return nil, notFound()
	}
	return expense, nil
}

func notFound() error {
	return domainerror.NewExpenseError(
		domainerror.ErrCodeExpenseNotFound,
		"expense not found",
		domainerror.ErrExpenseNotFound,
	)
}

// periodsOf returns the distinct months touched by the expenses, in order of appearance.
func periodsOf(expenses ...*entity.Expense) []valueobject.Period {
	seen := make(map[valueobject.Period]bool)
	var periods []valueobject.Period
	for _, e := range expenses {
		p := valueobject.PeriodOf(e.Date)
		if !seen[p] {
			seen[p] = true
			periods = append(periods, p)
		}
	}
	return periods
}
