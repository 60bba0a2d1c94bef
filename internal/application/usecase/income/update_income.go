package income

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// UpdateIncomeInput represents the input for a full income replacement.
type UpdateIncomeInput struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	Category string
	Amount   decimal.Decimal
	Date     time.Time
	Source   string
	Note     string
}

// UpdateIncomeOutput represents the output of income update.
type UpdateIncomeOutput struct {
	Income *entity.Income
}

// UpdateIncomeUseCase handles income update logic.
type UpdateIncomeUseCase struct {
	incomeRepo adapter.IncomeRepository
	cache      adapter.SummaryCache
}

// NewUpdateIncomeUseCase creates a new UpdateIncomeUseCase instance.
func NewUpdateIncomeUseCase(incomeRepo adapter.IncomeRepository, cache adapter.SummaryCache) *UpdateIncomeUseCase {
	return &UpdateIncomeUseCase{
		incomeRepo: incomeRepo,
		cache:      cache,
	}
}

// Execute replaces every editable field of the income.
func (uc *UpdateIncomeUseCase) Execute(ctx context.Context, input UpdateIncomeInput) (*UpdateIncomeOutput, error) {
	fields := CreateIncomeInput{
		UserID:   input.UserID,
		Category: input.Category,
		Amount:   input.Amount,
		Date:     input.Date,
		Source:   input.Source,
		Note:     input.Note,
	}
	if err := normalize(&fields); err != nil {
		return nil, err
	}

	income, err := findOwned(ctx, uc.incomeRepo, input.ID, input.UserID)
	if err != nil {
		return nil, err
	}

	income.Replace(fields.Category, fields.Amount, fields.Date, fields.Source, fields.Note)
	if err := uc.incomeRepo.Update(ctx, income); err != nil {
		return nil, fmt.Errorf("failed to update income: %w", err)
	}

	invalidate(ctx, uc.cache, input.UserID)

	return &UpdateIncomeOutput{Income: income}, nil
}
