package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
	"github.com/finance-dashboard/backend/internal/domain/ledger"
)

// GetAnnualBalanceInput represents the input for the yearly balance.
type GetAnnualBalanceInput struct {
	UserID uuid.UUID
	Year   int
}

// GetAnnualBalanceOutput represents the yearly balance.
type GetAnnualBalanceOutput struct {
	Balance ledger.AnnualBalance
}

// GetAnnualBalanceUseCase computes income, expense and net per month of a year.
type GetAnnualBalanceUseCase struct {
	expenseRepo adapter.ExpenseRepository
	incomeRepo  adapter.IncomeRepository
	cache       adapter.SummaryCache
	ttl         time.Duration
}

// NewGetAnnualBalanceUseCase creates a new GetAnnualBalanceUseCase instance.
func NewGetAnnualBalanceUseCase(
	expenseRepo adapter.ExpenseRepository,
	incomeRepo adapter.IncomeRepository,
	cache adapter.SummaryCache,
	ttl time.Duration,
) *GetAnnualBalanceUseCase {
	return &GetAnnualBalanceUseCase{
		expenseRepo: expenseRepo,
		incomeRepo:  incomeRepo,
		cache:       cache,
		ttl:         ttl,
	}
}

// Execute computes the balance, serving it from cache when possible.
func (uc *GetAnnualBalanceUseCase) Execute(ctx context.Context, input GetAnnualBalanceInput) (*GetAnnualBalanceOutput, error) {
	if input.Year < 1 || input.Year > 9999 {
		return nil, domainerror.NewDashboardError(domainerror.ErrCodeInvalidYear, domainerror.ErrInvalidYear.Error(), domainerror.ErrInvalidYear)
	}

	key := adapter.CacheKey(adapter.CacheResourceAnnual, input.UserID, strconv.Itoa(input.Year))

	var cached GetAnnualBalanceOutput
	if hit, err := uc.cache.Get(ctx, key, &cached); err != nil {
		slog.Warn("Failed to read cached annual balance", "error", err)
	} else if hit {
		return &cached, nil
	}

	start := time.Date(input.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)

	var (
		expenses []*entity.Expense
		incomes  []*entity.Income
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		expenses, err = uc.expenseRepo.FindByUser(gctx, input.UserID, adapter.ExpenseFilter{StartDate: &start, EndDate: &end})
		if err != nil {
			return fmt.Errorf("failed to load expenses: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		incomes, err = uc.incomeRepo.FindByUser(gctx, input.UserID, adapter.IncomeFilter{StartDate: &start, EndDate: &end})
		if err != nil {
			return fmt.Errorf("failed to load incomes: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, domainerror.NewDashboardError(domainerror.ErrCodeDashboardInternalError, "failed to load annual balance", err)
	}

	out := &GetAnnualBalanceOutput{
		Balance: ledger.YearBalance(ledger.ExpenseEntries(expenses), ledger.IncomeEntries(incomes), input.Year),
	}

	if err := uc.cache.Set(ctx, key, out, uc.ttl); err != nil {
		slog.Warn("Failed to cache annual balance", "error", err)
	}
	return out, nil
}
