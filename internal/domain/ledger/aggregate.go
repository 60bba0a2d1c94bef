package ledger

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/domain/entity"
	"github.com/finance-dashboard/backend/internal/domain/valueobject"
)

// DefaultForecastDays is the flat month length used for forecasts.
const DefaultForecastDays = 31

// Entry is the common shape of expenses and incomes for aggregation.
type Entry struct {
	ID       uuid.UUID
	Category string
	Amount   decimal.Decimal
	Date     time.Time
}

// IsZero reports whether e is the empty-period sentinel.
func (e Entry) IsZero() bool {
	return e.ID == uuid.Nil && e.Amount.IsZero()
}

// ExpenseEntries converts expenses to entries.
func ExpenseEntries(expenses []*entity.Expense) []Entry {
	entries := make([]Entry, len(expenses))
	for i, e := range expenses {
		entries[i] = Entry{ID: e.ID, Category: e.Category, Amount: e.Amount, Date: e.Date}
	}
	return entries
}

// IncomeEntries converts incomes to entries.
func IncomeEntries(incomes []*entity.Income) []Entry {
	entries := make([]Entry, len(incomes))
	for i, in := range incomes {
		entries[i] = Entry{ID: in.ID, Category: in.Category, Amount: in.Amount, Date: in.Date}
	}
	return entries
}

// Stats summarises one period of entries.
type Stats struct {
	TotalCurrent     decimal.Decimal
	TotalPrevious    decimal.Decimal
	PercentChange    *decimal.Decimal // nil when TotalPrevious is zero
	DailyMean        decimal.Decimal
	Forecast         decimal.Decimal
	MaxEntry         Entry // zero Entry when the period is empty
	DaysWithActivity int
	Count            int
}

// Aggregate computes the period statistics shown on the dashboard.
//
// TotalPrevious covers the previous month of the same year, so January is
// compared against nothing. DailyMean divides by the number of distinct
// days with at least one entry, and Forecast is DailyMean times
// forecastDays (31 when forecastDays is not positive).
func Aggregate(entries []Entry, period valueobject.Period, forecastDays int) Stats {
	if forecastDays <= 0 {
		forecastDays = DefaultForecastDays
	}

	previous := period.PreviousInYear()
	stats := Stats{
		TotalCurrent:  decimal.Zero,
		TotalPrevious: decimal.Zero,
		DailyMean:     decimal.Zero,
		Forecast:      decimal.Zero,
	}
	daily := make(map[int]decimal.Decimal)

	for _, e := range entries {
		switch {
		case period.Contains(e.Date):
			stats.TotalCurrent = stats.TotalCurrent.Add(e.Amount)
			stats.Count++
			daily[e.Date.Day()] = daily[e.Date.Day()].Add(e.Amount)
			if e.Amount.GreaterThan(stats.MaxEntry.Amount) {
				stats.MaxEntry = e
			}
		case previous.Contains(e.Date):
			stats.TotalPrevious = stats.TotalPrevious.Add(e.Amount)
		}
	}

	if !stats.TotalPrevious.IsZero() {
		change := stats.TotalCurrent.Sub(stats.TotalPrevious).
			Div(stats.TotalPrevious).
			Mul(hundred)
		stats.PercentChange = &change
	}

	stats.DaysWithActivity = len(daily)
	if stats.DaysWithActivity > 0 {
		sum := decimal.Zero
		for _, total := range daily {
			sum = sum.Add(total)
		}
		stats.DailyMean = sum.Div(decimal.NewFromInt(int64(stats.DaysWithActivity)))
		stats.Forecast = stats.DailyMean.Mul(decimal.NewFromInt(int64(forecastDays)))
	}

	return stats
}

// CategoryTotal is the amount spent or received in one category.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// ByCategory totals entries per category, largest first, ties by name.
func ByCategory(entries []Entry) []CategoryTotal {
	totals := make(map[string]decimal.Decimal)
	for _, e := range entries {
		totals[e.Category] = totals[e.Category].Add(e.Amount)
	}

	result := make([]CategoryTotal, 0, len(totals))
	for category, total := range totals {
		result = append(result, CategoryTotal{Category: category, Total: total})
	}

	sort.Slice(result, func(i, j int) bool {
		if cmp := result[i].Total.Cmp(result[j].Total); cmp != 0 {
			return cmp > 0
		}
		return result[i].Category < result[j].Category
	})

	return result
}

// FilterEntries returns the entries dated inside period.
func FilterEntries(entries []Entry, period valueobject.Period) []Entry {
	filtered := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if period.Contains(e.Date) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
