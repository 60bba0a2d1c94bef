package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/domain/entity"
	"github.com/finance-dashboard/backend/internal/domain/valueobject"
)

// SplitInstallments turns a credit purchase with n > 1 installments into n
// monthly expenses starting at the purchase date. Each share is the amount
// divided by n rounded to cents; the last one takes the rounding remainder
// so the shares always add up to the purchase amount. Expenses that are not
// installment plans are returned unchanged as a single element.
func SplitInstallments(purchase *entity.Expense) []*entity.Expense {
	if purchase == nil {
		return nil
	}
	if !purchase.IsInstallmentPlan() {
		return []*entity.Expense{purchase}
	}

	n := *purchase.Installments
	share := purchase.Amount.DivRound(decimal.NewFromInt(int64(n)), 2)
	remainder := purchase.Amount.Sub(share.Mul(decimal.NewFromInt(int64(n - 1))))

	year, month, day := purchase.Date.Date()
	parts := make([]*entity.Expense, 0, n)

	for i := 0; i < n; i++ {
		amount := share
		if i == n-1 {
			amount = remainder
		}

		first := time.Date(year, month+time.Month(i), 1, 0, 0, 0, 0, time.UTC)
		part := entity.NewExpense(
			purchase.UserID,
			purchase.Category,
			purchase.Subcategory,
			amount,
			purchase.PaymentMethod,
			copyInt(purchase.Installments),
			copyUUID(purchase.CreditCardID),
			purchase.Note,
			valueobject.ClampDay(first.Year(), first.Month(), day),
		)
		number := i + 1
		part.InstallmentNumber = &number

		parts = append(parts, part)
	}

	return parts
}
