package ledger

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-dashboard/backend/internal/domain/valueobject"
)

func entry(category string, amount string, date time.Time) Entry {
	return Entry{
		ID:       uuid.New(),
		Category: category,
		Amount:   decimal.RequireFromString(amount),
		Date:     date,
	}
}

func day(month time.Month, d int) time.Time {
	return time.Date(2025, month, d, 12, 0, 0, 0, time.UTC)
}

func TestAggregateSingleEntry(t *testing.T) {
	stats := Aggregate([]Entry{entry("food", "100", day(time.March, 4))}, valueobject.NewPeriod(2025, time.March), 0)

	assert.Equal(t, "100", stats.TotalCurrent.String())
	assert.Equal(t, "100", stats.DailyMean.String())
	assert.Equal(t, "3100", stats.Forecast.String())
	assert.Equal(t, 1, stats.DaysWithActivity)
	assert.Equal(t, 1, stats.Count)
	assert.Nil(t, stats.PercentChange)
}

func TestAggregateTotalsAndChange(t *testing.T) {
	entries := []Entry{
		entry("food", "200", day(time.February, 1)),
		entry("food", "100", day(time.March, 1)),
		entry("rent", "150", day(time.March, 1)),
		entry("food", "50", day(time.March, 20)),
		entry("food", "999", day(time.April, 1)),
	}

	stats := Aggregate(entries, valueobject.NewPeriod(2025, time.March), 31)

	assert.Equal(t, "300", stats.TotalCurrent.String())
	assert.Equal(t, "200", stats.TotalPrevious.String())
	require.NotNil(t, stats.PercentChange)
	assert.Equal(t, "50", stats.PercentChange.String())
	assert.Equal(t, 2, stats.DaysWithActivity)
	assert.Equal(t, 3, stats.Count)
	assert.Equal(t, "150", stats.DailyMean.String())
	assert.Equal(t, "4650", stats.Forecast.String())
	assert.Equal(t, "150", stats.MaxEntry.Amount.String())
	assert.Equal(t, "rent", stats.MaxEntry.Category)
}

func TestAggregatePercentChangeGuard(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
		period  valueobject.Period
	}{
		{
			name:    "no previous entries",
			entries: []Entry{entry("food", "10", day(time.May, 2))},
			period:  valueobject.NewPeriod(2025, time.May),
		},
		{
			name:    "empty collections",
			entries: nil,
			period:  valueobject.NewPeriod(2025, time.May),
		},
		{
			name: "january never sees december",
			entries: []Entry{
				entry("food", "10", time.Date(2024, time.December, 15, 0, 0, 0, 0, time.UTC)),
				entry("food", "30", day(time.January, 2)),
			},
			period: valueobject.NewPeriod(2025, time.January),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := Aggregate(tt.entries, tt.period, 31)
			assert.Nil(t, stats.PercentChange)
			assert.True(t, stats.TotalPrevious.IsZero())
		})
	}
}

func TestAggregateEmptyPeriod(t *testing.T) {
	stats := Aggregate([]Entry{entry("food", "10", day(time.May, 2))}, valueobject.NewPeriod(2025, time.June), 31)

	assert.True(t, stats.TotalCurrent.IsZero())
	assert.True(t, stats.DailyMean.IsZero())
	assert.True(t, stats.Forecast.IsZero())
	assert.True(t, stats.MaxEntry.IsZero())
	assert.Equal(t, 0, stats.DaysWithActivity)
	require.NotNil(t, stats.PercentChange)
	assert.Equal(t, "-100", stats.PercentChange.String())
}

func TestAggregateFirstMaxWins(t *testing.T) {
	first := entry("a", "80", day(time.March, 1))
	second := entry("b", "80", day(time.March, 2))

	stats := Aggregate([]Entry{first, second}, valueobject.NewPeriod(2025, time.March), 31)
	assert.Equal(t, first.ID, stats.MaxEntry.ID)
}

func TestByCategory(t *testing.T) {
	got := ByCategory([]Entry{
		entry("food", "10", day(time.March, 1)),
		entry("rent", "100", day(time.March, 1)),
		entry("food", "15", day(time.March, 2)),
		entry("bar", "25", day(time.March, 2)),
	})

	require.Len(t, got, 3)
	assert.Equal(t, "rent", got[0].Category)
	assert.Equal(t, "bar", got[1].Category)
	assert.Equal(t, "food", got[2].Category)
	assert.Equal(t, "25", got[2].Total.String())
}
