package expense

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
	"github.com/finance-dashboard/backend/internal/domain/valueobject"
)

// ListExpensesInput represents the input for listing expenses.
type ListExpensesInput struct {
	UserID   uuid.UUID
	Period   *valueobject.Period // Optional month filter
	Category string              // Optional category filter
}

// ListExpensesOutput represents the output of listing expenses.
type ListExpensesOutput struct {
	Expenses []*entity.Expense
	Total    decimal.Decimal
}

// ListExpensesUseCase handles expense listing logic.
type ListExpensesUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(expenseRepo adapter.ExpenseRepository) *ListExpensesUseCase {
	return &ListExpensesUseCase{expenseRepo: expenseRepo}
}

// Execute lists the user's expenses, newest first.
func (uc *ListExpensesUseCase) Execute(ctx context.Context, input ListExpensesInput) (*ListExpensesOutput, error) {
	filter := adapter.ExpenseFilter{Category: input.Category}
	if input.Period != nil {
		start, end := input.Period.Start(), input.Period.End()
		filter.StartDate = &start
		filter.EndDate = &end
	}

	expenses, err := uc.expenseRepo.FindByUser(ctx, input.UserID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}

	return &ListExpensesOutput{
		Expenses: expenses,
		Total:    total,
	}, nil
}
