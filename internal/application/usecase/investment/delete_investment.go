package investment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-dashboard/backend/internal/application/adapter"
)

// DeleteInvestmentInput represents the input for investment deletion.
type DeleteInvestmentInput struct {
	ID     uuid.UUID
	UserID uuid.UUID
}

// DeleteInvestmentUseCase handles investment deletion logic.
type DeleteInvestmentUseCase struct {
	investmentRepo adapter.InvestmentRepository
}

// NewDeleteInvestmentUseCase creates a new DeleteInvestmentUseCase instance.
func NewDeleteInvestmentUseCase(investmentRepo adapter.InvestmentRepository) *DeleteInvestmentUseCase {
	return &DeleteInvestmentUseCase{investmentRepo: investmentRepo}
}

// Execute deletes the investment.
func (uc *DeleteInvestmentUseCase) Execute(ctx context.Context, input DeleteInvestmentInput) error {
	investment, err := findOwned(ctx, uc.investmentRepo, input.ID, input.UserID)
	if err != nil {
		return err
	}

	if err := uc.investmentRepo.Delete(ctx, investment.ID); err != nil {
		return fmt.Errorf("failed to delete investment: %w", err)
	}
	return nil
}
