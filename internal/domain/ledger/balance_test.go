package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-dashboard/backend/internal/domain/valueobject"
)

func TestMonthlyBalance(t *testing.T) {
	expenses := []Entry{
		entry("food", "120.50", day(time.March, 2)),
		entry("rent", "1000", day(time.March, 5)),
		entry("rent", "1000", day(time.April, 5)),
	}
	incomes := []Entry{
		entry("salary", "3000", day(time.March, 1)),
	}

	b := MonthlyBalance(expenses, incomes, valueobject.NewPeriod(2025, time.March))
	assert.Equal(t, "3000", b.Income.String())
	assert.Equal(t, "1120.5", b.Expense.String())
	assert.Equal(t, "1879.5", b.Net.String())

	b = MonthlyBalance(expenses, incomes, valueobject.NewPeriod(2025, time.April))
	assert.Equal(t, "-1000", b.Net.String())
}

func TestYearBalance(t *testing.T) {
	expenses := []Entry{
		entry("rent", "1000", day(time.January, 5)),
		entry("rent", "1000", day(time.December, 5)),
		entry("rent", "1000", time.Date(2024, time.December, 5, 0, 0, 0, 0, time.UTC)),
	}
	incomes := []Entry{
		entry("salary", "2500", day(time.January, 1)),
	}

	got := YearBalance(expenses, incomes, 2025)
	require.Len(t, got.Months, 12)
	assert.Equal(t, "2500", got.Total.Income.String())
	assert.Equal(t, "2000", got.Total.Expense.String())
	assert.Equal(t, "500", got.Total.Net.String())
	assert.Equal(t, "1500", got.Months[0].Balance.Net.String())
	assert.Equal(t, "-1000", got.Months[11].Balance.Net.String())
	assert.True(t, got.Months[5].Balance.Net.IsZero())
}

func TestIncomeGoal(t *testing.T) {
	goal := decimal.NewFromInt(6000)

	tests := []struct {
		name          string
		total         int64
		wantReached   bool
		wantRemaining string
	}{
		{name: "below goal", total: 4500, wantReached: false, wantRemaining: "1500"},
		{name: "exactly the goal", total: 6000, wantReached: true, wantRemaining: "0"},
		{name: "above goal", total: 7000, wantReached: true, wantRemaining: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IncomeGoal(decimal.NewFromInt(tt.total), goal)
			assert.Equal(t, tt.wantReached, got.Reached)
			assert.Equal(t, tt.wantRemaining, got.Remaining.String())
		})
	}
}
