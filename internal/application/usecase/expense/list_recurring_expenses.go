package expense

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// ListRecurringExpensesInput represents the input for listing templates.
type ListRecurringExpensesInput struct {
	UserID uuid.UUID
}

// ListRecurringExpensesOutput represents the output of listing templates.
type ListRecurringExpensesOutput struct {
	Templates []*entity.RecurringExpense
}

// ListRecurringExpensesUseCase lists the user's fixed expense templates.
type ListRecurringExpensesUseCase struct {
	recurringRepo adapter.RecurringExpenseRepository
}

// NewListRecurringExpensesUseCase creates a new ListRecurringExpensesUseCase instance.
func NewListRecurringExpensesUseCase(recurringRepo adapter.RecurringExpenseRepository) *ListRecurringExpensesUseCase {
	return &ListRecurringExpensesUseCase{recurringRepo: recurringRepo}
}

// Execute lists the templates.
func (uc *ListRecurringExpensesUseCase) Execute(ctx context.Context, input ListRecurringExpensesInput) (*ListRecurringExpensesOutput, error) {
	templates, err := uc.recurringRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list recurring expenses: %w", err)
	}
	return &ListRecurringExpensesOutput{Templates: templates}, nil
}
