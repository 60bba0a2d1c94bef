// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// IncomeFilter narrows an income listing. Zero values mean no filter.
type IncomeFilter struct {
	StartDate *time.Time // Inclusive
	EndDate   *time.Time // Exclusive
}

// IncomeRepository defines the interface for income persistence operations.
type IncomeRepository interface {
	Create(ctx context.Context, income *entity.Income) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Income, error)
	FindByUser(ctx context.Context, userID uuid.UUID, filter IncomeFilter) ([]*entity.Income, error)
	Update(ctx context.Context, income *entity.Income) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// InvestmentRepository defines the interface for investment persistence operations.
type InvestmentRepository interface {
	Create(ctx context.Context, investment *entity.Investment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Investment, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Investment, error)
	Update(ctx context.Context, investment *entity.Investment) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CreditCardRepository defines the interface for credit card persistence operations.
type CreditCardRepository interface {
	Create(ctx context.Context, card *entity.CreditCard) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CreditCard, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CreditCard, error)

	// ExistsByNameAndDigits checks if the user already registered the same card.
	ExistsByNameAndDigits(ctx context.Context, userID uuid.UUID, name, lastDigits string) (bool, error)

	Delete(ctx context.Context, id uuid.UUID) error
}
