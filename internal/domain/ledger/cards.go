package ledger

import (
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// CardTotal is the credit spending charged to one card.
type CardTotal struct {
	CardID uuid.UUID
	Total  decimal.Decimal
	Count  int
}

// ByCard totals credit expenses per card, largest first, ties by card id.
// Expenses paid otherwise or without a card are skipped. Callers filter by
// period first.
func ByCard(expenses []*entity.Expense) []CardTotal {
	index := make(map[uuid.UUID]int)
	var result []CardTotal

	for _, e := range expenses {
		if e.PaymentMethod != entity.PaymentMethodCredit || e.CreditCardID == nil {
			continue
		}
		i, ok := index[*e.CreditCardID]
		if !ok {
			i = len(result)
			index[*e.CreditCardID] = i
			result = append(result, CardTotal{CardID: *e.CreditCardID, Total: decimal.Zero})
		}
		result[i].Total = result[i].Total.Add(e.Amount)
		result[i].Count++
	}

	sort.Slice(result, func(i, j int) bool {
		if cmp := result[i].Total.Cmp(result[j].Total); cmp != 0 {
			return cmp > 0
		}
		return result[i].CardID.String() < result[j].CardID.String()
	})

	if result == nil {
		return []CardTotal{}
	}
	return result
}
