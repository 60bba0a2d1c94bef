package investment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// UpdateInvestmentInput represents the input for a full investment replacement.
type UpdateInvestmentInput struct {
	ID     uuid.UUID
	UserID uuid.UUID
	Fields
}

// UpdateInvestmentOutput represents the output of investment update.
type UpdateInvestmentOutput struct {
	Investment *entity.Investment
}

// UpdateInvestmentUseCase handles investment update logic.
type UpdateInvestmentUseCase struct {
	investmentRepo adapter.InvestmentRepository
}

// NewUpdateInvestmentUseCase creates a new UpdateInvestmentUseCase instance.
func NewUpdateInvestmentUseCase(investmentRepo adapter.InvestmentRepository) *UpdateInvestmentUseCase {
	return &UpdateInvestmentUseCase{investmentRepo: investmentRepo}
}

// Execute replaces every editable field of the investment.
func (uc *UpdateInvestmentUseCase) Execute(ctx context.Context, input UpdateInvestmentInput) (*UpdateInvestmentOutput, error) {
	if err := input.Fields.normalize(); err != nil {
		return nil, err
	}

	investment, err := findOwned(ctx, uc.investmentRepo, input.ID, input.UserID)
	if err != nil {
		return nil, err
	}

	f := input.Fields
	investment.Replace(f.Type, f.Name, f.Amount, f.Date, f.IsCrypto, f.Description)
	if err := uc.investmentRepo.Update(ctx, investment); err != nil {
		return nil, fmt.Errorf("failed to update investment: %w", err)
	}

	return &UpdateInvestmentOutput{Investment: investment}, nil
}
