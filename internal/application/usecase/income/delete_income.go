package income

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-dashboard/backend/internal/application/adapter"
)

// DeleteIncomeInput represents the input for income deletion.
type DeleteIncomeInput struct {
	ID     uuid.UUID
	UserID uuid.UUID
}

// DeleteIncomeUseCase handles income deletion logic.
type DeleteIncomeUseCase struct {
	incomeRepo adapter.IncomeRepository
	cache      adapter.SummaryCache
}

// NewDeleteIncomeUseCase creates a new DeleteIncomeUseCase instance.
func NewDeleteIncomeUseCase(incomeRepo adapter.IncomeRepository, cache adapter.SummaryCache) *DeleteIncomeUseCase {
	return &DeleteIncomeUseCase{
		incomeRepo: incomeRepo,
		cache:      cache,
	}
}

// Execute soft-deletes the income.
func (uc *DeleteIncomeUseCase) Execute(ctx context.Context, input DeleteIncomeInput) error {
	income, err := findOwned(ctx, uc.incomeRepo, input.ID, input.UserID)
	if err != nil {
		return err
	}

	if err := uc.incomeRepo.Delete(ctx, income.ID); err != nil {
		return fmt.Errorf("failed to delete income: %w", err)
	}

	invalidate(ctx, uc.cache, input.UserID)
	return nil
}
