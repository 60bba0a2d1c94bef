package ledger

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-dashboard/backend/internal/domain/entity"
	"github.com/finance-dashboard/backend/internal/domain/valueobject"
)

func expense(category string, amount int64, date time.Time) *entity.Expense {
	return entity.NewExpense(uuid.Nil, category, "", decimal.NewFromInt(amount), entity.PaymentMethodCash, nil, nil, "", date)
}

func march(day int) time.Time {
	return time.Date(2025, time.March, day, 0, 0, 0, 0, time.UTC)
}

func TestEvaluatePolicies(t *testing.T) {
	limits := entity.Thresholds{"food": decimal.NewFromInt(500)}

	tests := []struct {
		name       string
		expenses   []*entity.Expense
		policy     Policy
		wantFlags  []string
		wantExcess string
	}{
		{
			name:      "450 of 500 flags near limit",
			expenses:  []*entity.Expense{expense("food", 450, march(3))},
			policy:    PolicyNearLimit,
			wantFlags: []string{"food"},
		},
		{
			name:      "450 of 500 does not exceed",
			expenses:  []*entity.Expense{expense("food", 450, march(3))},
			policy:    PolicyExceeded,
			wantFlags: []string{},
		},
		{
			name:       "600 of 500 flags near limit",
			expenses:   []*entity.Expense{expense("food", 600, march(3))},
			policy:     PolicyNearLimit,
			wantFlags:  []string{"food"},
			wantExcess: "100",
		},
		{
			name:       "600 of 500 exceeds by 100",
			expenses:   []*entity.Expense{expense("food", 600, march(3))},
			policy:     PolicyExceeded,
			wantFlags:  []string{"food"},
			wantExcess: "100",
		},
		{
			name:      "exactly the limit does not exceed",
			expenses:  []*entity.Expense{expense("food", 500, march(3))},
			policy:    PolicyExceeded,
			wantFlags: []string{},
		},
		{
			name: "sums several expenses",
			expenses: []*entity.Expense{
				expense("food", 300, march(3)),
				expense("food", 250, march(9)),
			},
			policy:     PolicyExceeded,
			wantFlags:  []string{"food"},
			wantExcess: "50",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alerts := Evaluate(tt.expenses, limits, tt.policy)
			assert.Equal(t, tt.wantFlags, Categories(alerts))
			if tt.wantExcess != "" {
				require.Len(t, alerts, 1)
				assert.Equal(t, tt.wantExcess, alerts[0].Excess.String())
			}
		})
	}
}

func TestEvaluateIgnoresCategoriesWithoutThreshold(t *testing.T) {
	expenses := []*entity.Expense{
		expense("food", 10000, march(1)),
		expense("travel", 10000, march(2)),
		expense("health", 10, march(2)),
	}
	limits := entity.Thresholds{"health": decimal.NewFromInt(5)}

	for _, policy := range []Policy{PolicyNearLimit, PolicyExceeded} {
		t.Run(string(policy), func(t *testing.T) {
			assert.Equal(t, []string{"health"}, Categories(Evaluate(expenses, limits, policy)))
		})
	}
}

func TestEvaluateCategoriesWithoutExpenses(t *testing.T) {
	limits := entity.Thresholds{
		"food":  decimal.NewFromInt(500),
		"gifts": decimal.Zero,
	}

	assert.Equal(t, []string{"gifts"}, Categories(Evaluate(nil, limits, PolicyNearLimit)))
	assert.Empty(t, Evaluate(nil, limits, PolicyExceeded))
}

func TestEvaluatorCustomRatio(t *testing.T) {
	limits := entity.Thresholds{"food": decimal.NewFromInt(100)}
	expenses := []*entity.Expense{expense("food", 75, march(1))}

	assert.Empty(t, NewEvaluator(PolicyNearLimit, decimal.NewFromFloat(0.8)).Evaluate(expenses, limits))
	assert.Len(t, NewEvaluator(PolicyNearLimit, decimal.NewFromFloat(0.75)).Evaluate(expenses, limits), 1)
	assert.Len(t, NewEvaluator(PolicyNearLimit, decimal.Zero).Evaluate([]*entity.Expense{expense("food", 90, march(1))}, limits), 1)
}

func TestEvaluateSortsAndReportsPercent(t *testing.T) {
	limits := entity.Thresholds{
		"lazer":       decimal.NewFromInt(200),
		"alimentação": decimal.NewFromInt(500),
	}
	expenses := []*entity.Expense{
		expense("lazer", 250, march(1)),
		expense("alimentação", 750, march(1)),
	}

	alerts := Evaluate(expenses, limits, PolicyExceeded)
	require.Len(t, alerts, 2)
	assert.Equal(t, "alimentação", alerts[0].Category)
	assert.Equal(t, "150", alerts[0].Percent.String())
	assert.Equal(t, "lazer", alerts[1].Category)
	assert.Equal(t, "125", alerts[1].Percent.String())
}

func TestParsePolicy(t *testing.T) {
	p, err := ParsePolicy("near_limit")
	require.NoError(t, err)
	assert.Equal(t, PolicyNearLimit, p)

	_, err = ParsePolicy("loose")
	assert.Error(t, err)
}

func TestFilterExpenses(t *testing.T) {
	expenses := []*entity.Expense{
		expense("food", 1, march(1)),
		expense("food", 2, time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)),
		expense("food", 3, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)),
	}

	got := FilterExpenses(expenses, valueobject.NewPeriod(2025, time.March))
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].Amount.String())
}
