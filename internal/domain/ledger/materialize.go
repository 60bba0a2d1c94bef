// Package ledger holds the pure calculations behind the dashboard: recurring
// expense materialization, threshold evaluation and period aggregation.
// Nothing in this package performs I/O or returns errors; callers validate
// input at the request boundary.
package ledger

import (
	"time"

	"github.com/finance-dashboard/backend/internal/domain/entity"
	"github.com/finance-dashboard/backend/internal/domain/valueobject"
)

// Materialize expands a recurring template into one fixed expense per month
// from startMonth through December of year.
//
// Days that do not exist in a month are clamped to the month's last day
// (a template on the 31st lands on April 30). Out-of-range months are
// clamped into January..December.
func Materialize(tpl *entity.RecurringExpense, year int, startMonth time.Month) []*entity.Expense {
	if tpl == nil {
		return nil
	}

	startMonth = clampMonth(startMonth)
	expenses := make([]*entity.Expense, 0, int(time.December-startMonth)+1)

	for m := startMonth; m <= time.December; m++ {
		expense := entity.NewExpense(
			tpl.UserID,
			tpl.Category,
			tpl.Subcategory,
			tpl.Amount,
			tpl.PaymentMethod,
			copyInt(tpl.Installments),
			copyUUID(tpl.CreditCardID),
			tpl.Note,
			valueobject.ClampDay(year, m, tpl.DayOfMonth),
		)
		expense.Fixed = true
		templateID := tpl.ID
		expense.RecurringExpenseID = &templateID

		expenses = append(expenses, expense)
	}

	return expenses
}

func clampMonth(m time.Month) time.Month {
	if m < time.January {
		return time.January
	}
	if m > time.December {
		return time.December
	}
	return m
}
