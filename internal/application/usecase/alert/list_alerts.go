package alert

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/ledger"
	"github.com/finance-dashboard/backend/internal/domain/valueobject"
)

// ListAlertsInput represents the input for listing alerts of a month.
type ListAlertsInput struct {
	UserID uuid.UUID
	Period valueobject.Period
}

// ListAlertsOutput represents the alerting categories of a month.
type ListAlertsOutput struct {
	Period string
	Policy string
	Alerts []ledger.Alert
}

// ListAlertsUseCase evaluates the configured policy over a month of expenses.
type ListAlertsUseCase struct {
	expenseRepo   adapter.ExpenseRepository
	thresholdRepo adapter.ThresholdRepository
	cache         adapter.SummaryCache
	evaluator     ledger.Evaluator
	ttl           time.Duration
}

// NewListAlertsUseCase creates a new ListAlertsUseCase instance.
func NewListAlertsUseCase(
	expenseRepo adapter.ExpenseRepository,
	thresholdRepo adapter.ThresholdRepository,
	cache adapter.SummaryCache,
	evaluator ledger.Evaluator,
	ttl time.Duration,
) *ListAlertsUseCase {
	return &ListAlertsUseCase{
		expenseRepo:   expenseRepo,
		thresholdRepo: thresholdRepo,
		cache:         cache,
		evaluator:     evaluator,
		ttl:           ttl,
	}
}

// Execute lists the month's alerts sorted by category.
func (uc *ListAlertsUseCase) Execute(ctx context.Context, input ListAlertsInput) (*ListAlertsOutput, error) {
	key := adapter.CacheKey(adapter.CacheResourceAlerts, input.UserID, input.Period.String())

	var cached ListAlertsOutput
	if hit, err := uc.cache.Get(ctx, key, &cached); err != nil {
		slog.Warn("Failed to read cached alerts", "error", err)
	} else if hit {
		return &cached, nil
	}

	thresholds, err := uc.thresholdRepo.Get(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load thresholds: %w", err)
	}

	start, end := input.Period.Start(), input.Period.End()
	expenses, err := uc.expenseRepo.FindByUser(ctx, input.UserID, adapter.ExpenseFilter{StartDate: &start, EndDate: &end})
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	out := &ListAlertsOutput{
		Period: input.Period.String(),
		Policy: string(uc.evaluator.Policy()),
		Alerts: uc.evaluator.Evaluate(expenses, thresholds),
	}

	if err := uc.cache.Set(ctx, key, out, uc.ttl); err != nil {
		slog.Warn("Failed to cache alerts", "error", err)
	}
	return out, nil
}
