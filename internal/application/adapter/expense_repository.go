// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// ExpenseFilter narrows an expense listing. Zero values mean no filter.
type ExpenseFilter struct {
	StartDate *time.Time // Inclusive
	EndDate   *time.Time // Exclusive
	Category  string
}

// ExpenseRepository defines the interface for expense persistence operations.
type ExpenseRepository interface {
	// Create creates a new expense in the database.
	Create(ctx context.Context, expense *entity.Expense) error

	// CreateMany stores several expenses in a single transaction.
	CreateMany(ctx context.Context, expenses []*entity.Expense) error

	// FindByID retrieves an expense by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error)

	// FindByUser retrieves the user's expenses ordered by date descending.
	FindByUser(ctx context.Context, userID uuid.UUID, filter ExpenseFilter) ([]*entity.Expense, error)

	// Update updates an existing expense in the database.
	Update(ctx context.Context, expense *entity.Expense) error

	// Delete soft-deletes an expense.
	Delete(ctx context.Context, id uuid.UUID) error
}

// RecurringExpenseRepository defines the interface for recurring expense templates.
type RecurringExpenseRepository interface {
	// Create stores a new template.
	Create(ctx context.Context, tpl *entity.RecurringExpense) error

	// FindByUser retrieves all templates for a user, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.RecurringExpense, error)
}
