// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-dashboard/backend/internal/domain/valueobject"
)

// ExpenseObserver is told which months of a user's expenses were written.
// Implementations must not fail the write that triggered them.
type ExpenseObserver interface {
	ExpensesChanged(ctx context.Context, userID uuid.UUID, periods []valueobject.Period)
}
