package ledger

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-dashboard/backend/internal/domain/entity"
)

func creditPurchase(amount string, installments int, date time.Time) *entity.Expense {
	cardID := uuid.New()
	return entity.NewExpense(
		uuid.New(),
		"eletrônicos",
		"",
		decimal.RequireFromString(amount),
		entity.PaymentMethodCredit,
		&installments,
		&cardID,
		"notebook",
		date,
	)
}

func TestSplitInstallments(t *testing.T) {
	tests := []struct {
		name        string
		amount      string
		n           int
		date        time.Time
		wantAmounts []string
		wantMonths  []time.Month
		wantDays    []int
	}{
		{
			name:        "even split",
			amount:      "300",
			n:           3,
			date:        time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
			wantAmounts: []string{"100", "100", "100"},
			wantMonths:  []time.Month{time.March, time.April, time.May},
			wantDays:    []int{10, 10, 10},
		},
		{
			name:        "remainder goes to the last installment",
			amount:      "100",
			n:           3,
			date:        time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
			wantAmounts: []string{"33.33", "33.33", "33.34"},
			wantMonths:  []time.Month{time.March, time.April, time.May},
			wantDays:    []int{10, 10, 10},
		},
		{
			name:        "crosses the year and clamps the day",
			amount:      "90",
			n:           3,
			date:        time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC),
			wantAmounts: []string{"30", "30", "30"},
			wantMonths:  []time.Month{time.December, time.January, time.February},
			wantDays:    []int{31, 31, 28},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			purchase := creditPurchase(tt.amount, tt.n, tt.date)
			parts := SplitInstallments(purchase)
			require.Len(t, parts, tt.n)

			sum := decimal.Zero
			for i, p := range parts {
				assert.Equal(t, tt.wantAmounts[i], p.Amount.String())
				assert.Equal(t, tt.wantMonths[i], p.Date.Month())
				assert.Equal(t, tt.wantDays[i], p.Date.Day())
				require.NotNil(t, p.InstallmentNumber)
				assert.Equal(t, i+1, *p.InstallmentNumber)
				assert.Equal(t, *purchase.CreditCardID, *p.CreditCardID)
				sum = sum.Add(p.Amount)
			}
			assert.True(t, sum.Equal(purchase.Amount))
		})
	}
}

func TestSplitInstallmentsSinglePayment(t *testing.T) {
	purchase := creditPurchase("50", 1, time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC))
	parts := SplitInstallments(purchase)
	require.Len(t, parts, 1)
	assert.Same(t, purchase, parts[0])

	cash := entity.NewExpense(uuid.New(), "food", "", decimal.NewFromInt(5), entity.PaymentMethodCash, nil, nil, "", time.Now())
	assert.Len(t, SplitInstallments(cash), 1)
	assert.Nil(t, SplitInstallments(nil))
}
