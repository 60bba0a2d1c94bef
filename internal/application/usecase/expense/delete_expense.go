package expense

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-dashboard/backend/internal/application/adapter"
)

// DeleteExpenseInput represents the input for expense deletion.
type DeleteExpenseInput struct {
	ID     uuid.UUID
	UserID uuid.UUID
}

// DeleteExpenseUseCase handles expense deletion logic.
type DeleteExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
	observer    adapter.ExpenseObserver
}

// NewDeleteExpenseUseCase creates a new DeleteExpenseUseCase instance.
func NewDeleteExpenseUseCase(expenseRepo adapter.ExpenseRepository, observer adapter.ExpenseObserver) *DeleteExpenseUseCase {
	return &DeleteExpenseUseCase{
		expenseRepo: expenseRepo,
		observer:    observer,
	}
}

// Execute soft-deletes the expense.
func (uc *DeleteExpenseUseCase) Execute(ctx context.Context, input DeleteExpenseInput) error {
	expense, err := findOwned(ctx, uc.expenseRepo, input.ID, input.UserID)
	if err != nil {
		return err
	}

	if err := uc.expenseRepo.Delete(ctx, expense.ID); err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	uc.observer.ExpensesChanged(ctx, input.UserID, periodsOf(expense))
	return nil
}
