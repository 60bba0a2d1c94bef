package income

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
	"github.com/finance-dashboard/backend/internal/domain/valueobject"
)

// ListIncomesInput represents the input for listing incomes.
type ListIncomesInput struct {
	UserID uuid.UUID
	Period *valueobject.Period // Optional month filter
}

// ListIncomesOutput represents the output of listing incomes.
type ListIncomesOutput struct {
	Incomes []*entity.Income
	Total   decimal.Decimal
}

// ListIncomesUseCase handles income listing logic.
type ListIncomesUseCase struct {
	incomeRepo adapter.IncomeRepository
}

// NewListIncomesUseCase creates a new ListIncomesUseCase instance.
func NewListIncomesUseCase(incomeRepo adapter.IncomeRepository) *ListIncomesUseCase {
	return &ListIncomesUseCase{incomeRepo: incomeRepo}
}

// Execute lists the user's incomes, newest first.
func (uc *ListIncomesUseCase) Execute(ctx context.Context, input ListIncomesInput) (*ListIncomesOutput, error) {
	var filter adapter.IncomeFilter
	if input.Period != nil {
		start, end := input.Period.Start(), input.Period.End()
		filter.StartDate = &start
		filter.EndDate = &end
	}

	incomes, err := uc.incomeRepo.FindByUser(ctx, input.UserID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list incomes: %w", err)
	}

	total := decimal.Zero
	for _, i := range incomes {
		total = total.Add(i.Amount)
	}

	return &ListIncomesOutput{Incomes: incomes, Total: total}, nil
}
