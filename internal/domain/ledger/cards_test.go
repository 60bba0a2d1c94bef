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

func creditExpense(card *uuid.UUID, amount string) *entity.Expense {
	return entity.NewExpense(uuid.Nil, "compras", "", decimal.RequireFromString(amount), entity.PaymentMethodCredit, nil, card, "", march(3))
}

func TestByCard(t *testing.T) {
	nubank := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	inter := uuid.MustParse("00000000-0000-0000-0000-000000000002")
	c6 := uuid.MustParse("00000000-0000-0000-0000-000000000003")

	pix := expense("compras", 500, march(3))
	withoutCard := creditExpense(nil, "700")

	got := ByCard([]*entity.Expense{
		creditExpense(&nubank, "120.50"),
		pix,
		creditExpense(&inter, "300"),
		withoutCard,
		creditExpense(&nubank, "79.50"),
		creditExpense(&c6, "200"),
	})

	require.Len(t, got, 3)
	assert.Equal(t, inter, got[0].CardID)
	assert.Equal(t, "300", got[0].Total.String())

	assert.Equal(t, nubank, got[1].CardID, "ties are ordered by card id")
	assert.Equal(t, "200", got[1].Total.String())
	assert.Equal(t, 2, got[1].Count)
	assert.Equal(t, c6, got[2].CardID)
}

func TestByCardEmpty(t *testing.T) {
	got := ByCard(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	got = ByCard([]*entity.Expense{expense("lazer", 10, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC))})
	assert.Empty(t, got)
}
