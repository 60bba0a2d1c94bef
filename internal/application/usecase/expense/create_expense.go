package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
	"github.com/finance-dashboard/backend/internal/domain/ledger"
)

// CreateExpenseInput represents the input for expense creation.
type CreateExpenseInput struct {
	UserID        uuid.UUID
	Category      string
	Subcategory   string
	Amount        decimal.Decimal
	PaymentMethod entity.PaymentMethod
	Installments  *int
	CreditCardID  *uuid.UUID
	Note          string
	Date          time.Time
	Fixed         bool // Store as a recurring template and fill the rest of the year
}

// CreateExpenseOutput represents the output of expense creation.
// A single purchase yields one expense, an installment plan one per month
// and a fixed expense one per remaining month of the year.
type CreateExpenseOutput struct {
	Expenses []*entity.Expense
	Template *entity.RecurringExpense
}

// CreateExpenseUseCase handles expense creation logic.
type CreateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
	cardRepo    adapter.CreditCardRepository
	recurring   *CreateRecurringExpenseUseCase
	observer    adapter.ExpenseObserver
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(
	expenseRepo adapter.ExpenseRepository,
	cardRepo adapter.CreditCardRepository,
	recurring *CreateRecurringExpenseUseCase,
	observer adapter.ExpenseObserver,
) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{
		expenseRepo: expenseRepo,
		cardRepo:    cardRepo,
		recurring:   recurring,
		observer:    observer,
	}
}

// Execute performs the expense creation.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input CreateExpenseInput) (*CreateExpenseOutput, error) {
	if input.Fixed {
		out, err := uc.recurring.Execute(ctx, CreateRecurringExpenseInput{
			UserID:        input.UserID,
			Category:      input.Category,
			Subcategory:   input.Subcategory,
			Amount:        input.Amount,
			PaymentMethod: input.PaymentMethod,
			Installments:  input.Installments,
			CreditCardID:  input.CreditCardID,
			Note:          input.Note,
			StartDate:     input.Date,
		})
		if out == nil {
			return nil, err
		}
		return &CreateExpenseOutput{Expenses: out.Expenses, Template: out.Template}, err
	}

	f := fields{
		UserID:        input.UserID,
		Category:      input.Category,
		Subcategory:   input.Subcategory,
		Amount:        input.Amount,
		PaymentMethod: input.PaymentMethod,
		Installments:  input.Installments,
		CreditCardID:  input.CreditCardID,
		Note:          input.Note,
		Date:          input.Date,
	}
	if err := validate(ctx, uc.cardRepo, &f); err != nil {
		return nil, err
	}

	purchase := entity.NewExpense(
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

	expenses := ledger.SplitInstallments(purchase)
	if len(expenses) == 1 {
		if err := uc.expenseRepo.Create(ctx, expenses[0]); err != nil {
			return nil, fmt.Errorf("failed to create expense: %w", err)
		}
	} else if err := uc.expenseRepo.CreateMany(ctx, expenses); err != nil {
		return nil, fmt.Errorf("failed to create installments: %w", err)
	}

	uc.observer.ExpensesChanged(ctx, input.UserID, periodsOf(expenses...))

	return &CreateExpenseOutput{
		Expenses: expenses,
	}, nil
}
