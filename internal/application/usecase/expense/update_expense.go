package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// UpdateExpenseInput represents a full replacement of an expense.
type UpdateExpenseInput struct {
	ID            uuid.UUID
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

// UpdateExpenseOutput represents the output of an expense update.
type UpdateExpenseOutput struct {
	Expense *entity.Expense
}

// UpdateExpenseUseCase handles expense replacement logic.
// Editing one installment or one materialized month never touches its siblings.
type UpdateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
	cardRepo    adapter.CreditCardRepository
	observer    adapter.ExpenseObserver
}

// NewUpdateExpenseUseCase creates a new UpdateExpenseUseCase instance.
func NewUpdateExpenseUseCase(
	expenseRepo adapter.ExpenseRepository,
	cardRepo adapter.CreditCardRepository,
	observer adapter.ExpenseObserver,
) *UpdateExpenseUseCase {
	return &UpdateExpenseUseCase{
		expenseRepo: expenseRepo,
		cardRepo:    cardRepo,
		observer:    observer,
	}
}

// Execute performs the expense update.
func (uc *UpdateExpenseUseCase) Execute(ctx context.Context, input UpdateExpenseInput) (*UpdateExpenseOutput, error) {
	expense, err := findOwned(ctx, uc.expenseRepo, input.ID, input.UserID)
	if err != nil {
		return nil, err
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

	before := *expense
	expense.Replace(
		f.Category,
		f.Subcategory,
		f.Amount,
		f.PaymentMethod,
		f.Installments,
		f.CreditCardID,
		f.Note,
		f.Date,
	)

	if err := uc.expenseRepo.Update(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	uc.observer.ExpensesChanged(ctx, input.UserID, periodsOf(&before, expense))

	return &UpdateExpenseOutput{Expense: expense}, nil
}
