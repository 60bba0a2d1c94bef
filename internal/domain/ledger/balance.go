package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/domain/valueobject"
)

// Balance is income minus expense over some span.
type Balance struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Net     decimal.Decimal
}

// MonthlyBalance computes the balance of a single month.
func MonthlyBalance(expenses, incomes []Entry, period valueobject.Period) Balance {
	return newBalance(
		sumEntries(FilterEntries(incomes, period)),
		sumEntries(FilterEntries(expenses, period)),
	)
}

// AnnualBalance is the yearly balance with a breakdown per month.
type AnnualBalance struct {
	Year   int
	Total  Balance
	Months []MonthBalance
}

// MonthBalance is one row of an AnnualBalance.
type MonthBalance struct {
	Period  valueobject.Period
	Balance Balance
}

// YearBalance computes the annual balance for year, always returning twelve months.
func YearBalance(expenses, incomes []Entry, year int) AnnualBalance {
	result := AnnualBalance{
		Year:   year,
		Months: make([]MonthBalance, 0, 12),
	}

	totalIncome := decimal.Zero
	totalExpense := decimal.Zero
	for m := time.January; m <= time.December; m++ {
		p := valueobject.NewPeriod(year, m)
		b := MonthlyBalance(expenses, incomes, p)
		totalIncome = totalIncome.Add(b.Income)
		totalExpense = totalExpense.Add(b.Expense)
		result.Months = append(result.Months, MonthBalance{Period: p, Balance: b})
	}
	result.Total = newBalance(totalIncome, totalExpense)

	return result
}

// GoalProgress tracks a monthly income target.
type GoalProgress struct {
	Goal      decimal.Decimal
	Reached   bool
	Remaining decimal.Decimal // never negative
}

// IncomeGoal compares the month's income total against goal.
func IncomeGoal(total, goal decimal.Decimal) GoalProgress {
	remaining := goal.Sub(total)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}
	return GoalProgress{
		Goal:      goal,
		Reached:   total.GreaterThanOrEqual(goal),
		Remaining: remaining,
	}
}

func newBalance(income, expense decimal.Decimal) Balance {
	return Balance{Income: income, Expense: expense, Net: income.Sub(expense)}
}

func sumEntries(entries []Entry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.Amount)
	}
	return total
}
