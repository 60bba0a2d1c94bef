package ledger

import "github.com/shopspring/decimal"

// MaxProjectionMonths is the longest horizon Project compounds over.
const MaxProjectionMonths = 600

var twelve = decimal.NewFromInt(12)

// Projection is the outcome of compounding a principal monthly.
type Projection struct {
	Principal   decimal.Decimal
	AnnualRate  decimal.Decimal // percent per year
	MonthlyRate decimal.Decimal // percent per month, AnnualRate / 12
	Months      int
	Final       decimal.Decimal
	Gain        decimal.Decimal
}

// Project compounds principal monthly at annualRate/12 percent for months
// months: principal * (1 + annualRate/100/12)^months, rounded to cents.
// Months below zero count as zero and the horizon is capped at
// MaxProjectionMonths. A negative rate shrinks the principal.
func Project(principal, annualRate decimal.Decimal, months int) Projection {
	if months < 0 {
		months = 0
	}
	if months > MaxProjectionMonths {
		months = MaxProjectionMonths
	}

	monthly := annualRate.Div(twelve)
	factor := decimal.NewFromInt(1).Add(monthly.Div(hundred))

	value := principal
	for i := 0; i < months; i++ {
		value = value.Mul(factor).Round(12)
	}
	final := value.Round(2)

	return Projection{
		Principal:   principal,
		AnnualRate:  annualRate,
		MonthlyRate: monthly,
		Months:      months,
		Final:       final,
		Gain:        final.Sub(principal),
	}
}
