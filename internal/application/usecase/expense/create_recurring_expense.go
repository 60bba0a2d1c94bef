package expense

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
	"github.com/finance-dashboard/backend/internal/domain/ledger"
)

// CreateRecurringExpenseInput represents the input for a fixed expense template.
type CreateRecurringExpenseInput struct {
	UserID        uuid.UUID
	Category      string
	Subcategory   string
	Amount        decimal.Decimal
	PaymentMethod entity.PaymentMethod
	Installments  *int
	CreditCardID  *uuid.UUID
	Note          string
	StartDate     time.Time
	DayOfMonth    int // Optional, defaults to the start date's day
}

// CreateRecurringExpenseOutput holds the template and the expenses stored for it.
type CreateRecurringExpenseOutput struct {
	Template *entity.RecurringExpense
	Expenses []*entity.Expense
}

// CreateRecurringExpenseUseCase stores a template and materializes it
// from the start month through December.
type CreateRecurringExpenseUseCase struct {
	recurringRepo adapter.RecurringExpenseRepository
	expenseRepo   adapter.ExpenseRepository
	cardRepo      adapter.CreditCardRepository
	observer      adapter.ExpenseObserver
}

// NewCreateRecurringExpenseUseCase creates a new CreateRecurringExpenseUseCase instance.
func NewCreateRecurringExpenseUseCase(
	recurringRepo adapter.RecurringExpenseRepository,
	expenseRepo adapter.ExpenseRepository,
	cardRepo adapter.CreditCardRepository,
	observer adapter.ExpenseObserver,
) *CreateRecurringExpenseUseCase {
	return &CreateRecurringExpenseUseCase{
		recurringRepo: recurringRepo,
		expenseRepo:   expenseRepo,
		cardRepo:      cardRepo,
		observer:      observer,
	}
}

// Execute stores the template, then each materialized expense one by one.
// Records are not rolled back when a later one fails: the output then holds
// the expenses stored so far and the error carries ErrCodePartialMaterialization.
func (uc *CreateRecurringExpenseUseCase) Execute(ctx context.Context, input CreateRecurringExpenseInput) (*CreateRecurringExpenseOutput, error) {
	f := fields{
		UserID:        input.UserID,
		Category:      input.Category,
		Subcategory:   input.Subcategory,
		Amount:        input.Amount,
		PaymentMethod: input.PaymentMethod,
		Installments:  input.Installments,
		CreditCardID:  input.CreditCardID,
		Note:          input.Note,
		Date:          input.StartDate,
	}
	if err := validate(ctx, uc.cardRepo, &f); err != nil {
		return nil, err
	}
	if f.Installments != nil && *f.Installments > 1 {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidInstallments,
			"a fixed expense cannot be split into installments",
			domainerror.ErrInvalidInstallments,
		)
	}

	if input.DayOfMonth < 0 || input.DayOfMonth > 31 {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidDayOfMonth,
			"day of month must be between 1 and 31",
			domainerror.ErrInvalidDayOfMonth,
		)
	}

	tpl := entity.NewRecurringExpense(
		f.UserID,
		f.Category,
		f.Subcategory,
		f.Amount,
		f.PaymentMethod,
		f.Installments,
		f.CreditCardID,
		f.Note,
		f.Date,
	)
	if input.DayOfMonth > 0 {
		tpl.DayOfMonth = input.DayOfMonth
	}

	if err := uc.recurringRepo.Create(ctx, tpl); err != nil {
		return nil, fmt.Errorf("failed to create recurring expense: %w", err)
	}

	records := ledger.Materialize(tpl, tpl.StartDate.Year(), tpl.StartDate.Month())
	stored := make([]*entity.Expense, 0, len(records))

	for _, record := range records {
		if err := uc.expenseRepo.Create(ctx, record); err != nil {
			slog.Error("Failed to store materialized expense",
				"recurring_expense_id", tpl.ID,
				"date", record.Date,
				"stored", len(stored),
				"total", len(records),
				"error", err,
			)
			uc.observer.ExpensesChanged(ctx, input.UserID, periodsOf(stored...))

			return &CreateRecurringExpenseOutput{Template: tpl, Expenses: stored}, domainerror.NewExpenseError(
				domainerror.ErrCodePartialMaterialization,
				fmt.Sprintf("stored %d of %d monthly expenses", len(stored), len(records)),
				fmt.Errorf("%w: %v", domainerror.ErrPartialMaterialization, err),
			)
		}
		stored = append(stored, record)
	}

	uc.observer.ExpensesChanged(ctx, input.UserID, periodsOf(stored...))

	return &CreateRecurringExpenseOutput{
		Template: tpl,
		Expenses: stored,
	}, nil
}
