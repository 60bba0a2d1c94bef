// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
	"github.com/finance-dashboard/backend/internal/domain/ledger"
	"github.com/finance-dashboard/backend/internal/domain/valueobject"
)

// Settings holds the dashboard knobs read from configuration.
type Settings struct {
	ForecastDays      int
	IncomeMonthlyGoal decimal.Decimal
	CacheTTL          time.Duration
}

// GetSummaryInput represents the input for the monthly dashboard.
type GetSummaryInput struct {
	UserID uuid.UUID
	Period valueobject.Period
}

// GetSummaryOutput is everything the dashboard shows for one month.
type GetSummaryOutput struct {
	Period             valueobject.Period
	Expenses           ledger.Stats
	Incomes            ledger.Stats
	IncomeGoal         ledger.GoalProgress
	Balance            ledger.Balance
	Policy             string
	Alerts             []ledger.Alert
	ExpensesByCategory []ledger.CategoryTotal
	IncomesByCategory  []ledger.CategoryTotal
	ExpensesByCard     []CardSpending
}

// CardSpending is the month's credit spending on one card. Name and
// LastDigits are empty when the card has since been deleted.
type CardSpending struct {
	CardID     uuid.UUID
	Name       string
	LastDigits string
	Total      decimal.Decimal
	Count      int
}

// GetSummaryUseCase builds the monthly dashboard.
type GetSummaryUseCase struct {
	expenseRepo   adapter.ExpenseRepository
	incomeRepo    adapter.IncomeRepository
	thresholdRepo adapter.ThresholdRepository
	cardRepo      adapter.CreditCardRepository
	cache         adapter.SummaryCache
	evaluator     ledger.Evaluator
	settings      Settings
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(
	expenseRepo adapter.ExpenseRepository,
	incomeRepo adapter.IncomeRepository,
	thresholdRepo adapter.ThresholdRepository,
	cardRepo adapter.CreditCardRepository,
	cache adapter.SummaryCache,
	evaluator ledger.Evaluator,
	settings Settings,
) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		expenseRepo:   expenseRepo,
		incomeRepo:    incomeRepo,
		thresholdRepo: thresholdRepo,
		cardRepo:      cardRepo,
		cache:         cache,
		evaluator:     evaluator,
		settings:      settings,
	}
}

// Execute computes the summary, serving it from cache when possible.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	if !input.Period.Valid() {
		return nil, domainerror.NewDashboardError(domainerror.ErrCodeInvalidPeriod, domainerror.ErrInvalidPeriod.Error(), domainerror.ErrInvalidPeriod)
	}

	key := adapter.CacheKey(adapter.CacheResourceSummary, input.UserID, input.Period.String())

	var cached GetSummaryOutput
	if hit, err := uc.cache.Get(ctx, key, &cached); err != nil {
		slog.Warn("Failed to read cached summary", "error", err)
	} else if hit {
		return &cached, nil
	}

	// The previous month is only looked up inside the same year.
	start := input.Period.PreviousInYear().Start()
	if input.Period.Month == time.January {
		start = input.Period.Start()
	}
	end := input.Period.End()

	var (
		expenses   []*entity.Expense
		incomes    []*entity.Income
		thresholds entity.Thresholds
		cards      []*entity.CreditCard
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
	g.Go(func() error {
		var err error
		thresholds, err = uc.thresholdRepo.Get(gctx, input.UserID)
		if err != nil {
			return fmt.Errorf("failed to load thresholds: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		cards, err = uc.cardRepo.FindByUser(gctx, input.UserID)
		if err != nil {
			return fmt.Errorf("failed to load credit cards: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, domainerror.NewDashboardError(domainerror.ErrCodeDashboardInternalError, "failed to load dashboard data", err)
	}

	expenseEntries := ledger.ExpenseEntries(expenses)
	incomeEntries := ledger.IncomeEntries(incomes)
	monthExpenses := ledger.FilterExpenses(expenses, input.Period)
	incomeStats := ledger.Aggregate(incomeEntries, input.Period, uc.settings.ForecastDays)

	out := &GetSummaryOutput{
		Period:             input.Period,
		Expenses:           ledger.Aggregate(expenseEntries, input.Period, uc.settings.ForecastDays),
		Incomes:            incomeStats,
		IncomeGoal:         ledger.IncomeGoal(incomeStats.TotalCurrent, uc.settings.IncomeMonthlyGoal),
		Balance:            ledger.MonthlyBalance(expenseEntries, incomeEntries, input.Period),
		Policy:             string(uc.evaluator.Policy()),
		Alerts:             uc.evaluator.Evaluate(monthExpenses, thresholds),
		ExpensesByCategory: ledger.ByCategory(ledger.FilterEntries(expenseEntries, input.Period)),
		IncomesByCategory:  ledger.ByCategory(ledger.FilterEntries(incomeEntries, input.Period)),
		ExpensesByCard:     nameCards(ledger.ByCard(monthExpenses), cards),
	}

	if err := uc.cache.Set(ctx, key, out, uc.settings.CacheTTL); err != nil {
		slog.Warn("Failed to cache summary", "error", err)
	}
	return out, nil
}

func nameCards(totals []ledger.CardTotal, cards []*entity.CreditCard) []CardSpending {
	byID := make(map[uuid.UUID]*entity.CreditCard, len(cards))
	for _, c := range cards {
		byID[c.ID] = c
	}

	spending := make([]CardSpending, 0, len(totals))
	for _, t := range totals {
		s := CardSpending{CardID: t.CardID, Total: t.Total, Count: t.Count}
		if card, ok := byID[t.CardID]; ok {
			s.Name = card.Name
			s.LastDigits = card.LastDigits
		}
		spending = append(spending, s)
	}
	return spending
}
