package investment

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// ListInvestmentsInput represents the input for listing investments.
type ListInvestmentsInput struct {
	UserID uuid.UUID
}

// ListInvestmentsOutput holds the portfolio and its totals.
type ListInvestmentsOutput struct {
	Investments []*entity.Investment
	Total       decimal.Decimal
	CryptoTotal decimal.Decimal
}

// ListInvestmentsUseCase handles investment listing logic.
type ListInvestmentsUseCase struct {
	investmentRepo adapter.InvestmentRepository
}

// NewListInvestmentsUseCase creates a new ListInvestmentsUseCase instance.
func NewListInvestmentsUseCase(investmentRepo adapter.InvestmentRepository) *ListInvestmentsUseCase {
	return &ListInvestmentsUseCase{investmentRepo: investmentRepo}
}

// Execute lists the user's investments with the invested totals.
func (uc *ListInvestmentsUseCase) Execute(ctx context.Context, input ListInvestmentsInput) (*ListInvestmentsOutput, error) {
	investments, err := uc.investmentRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list investments: %w", err)
	}

	out := &ListInvestmentsOutput{
		Investments: investments,
		Total:       decimal.Zero,
		CryptoTotal: decimal.Zero,
	}
	for _, inv := range investments {
		out.Total = out.Total.Add(inv.Amount)
		if inv.IsCrypto {
			out.CryptoTotal = out.CryptoTotal.Add(inv.Amount)
		}
	}
	return out, nil
}
