package ledger

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/domain/entity"
	"github.com/finance-dashboard/backend/internal/domain/valueobject"
)

// Policy decides when a category's monthly spending is in alert state.
type Policy string

const (
	// PolicyExceeded flags a category once spending is strictly above its limit.
	PolicyExceeded Policy = "exceeded"
	// PolicyNearLimit flags a category once spending reaches a ratio of its limit.
	PolicyNearLimit Policy = "near_limit"
)

// DefaultNearLimitRatio is the share of the limit that triggers PolicyNearLimit.
var DefaultNearLimitRatio = decimal.NewFromFloat(0.9)

// ParsePolicy converts a configuration value into a Policy.
func ParsePolicy(value string) (Policy, error) {
	switch Policy(value) {
	case PolicyExceeded, PolicyNearLimit:
		return Policy(value), nil
	default:
		return "", fmt.Errorf("unknown alert policy %q", value)
	}
}

// Alert describes a category in alert state for a period.
type Alert struct {
	Category string
	Total    decimal.Decimal
	Limit    decimal.Decimal
	Excess   decimal.Decimal // Total - Limit when positive, zero otherwise
	Percent  decimal.Decimal // Total as a percentage of Limit, zero when Limit is zero
}

// Evaluator applies a single policy to every evaluation.
type Evaluator struct {
	policy Policy
	ratio  decimal.Decimal
}

// NewEvaluator creates an Evaluator. A non-positive ratio falls back to DefaultNearLimitRatio.
func NewEvaluator(policy Policy, nearLimitRatio decimal.Decimal) Evaluator {
	if !nearLimitRatio.IsPositive() {
		nearLimitRatio = DefaultNearLimitRatio
	}
	if policy != PolicyNearLimit {
		policy = PolicyExceeded
	}
	return Evaluator{policy: policy, ratio: nearLimitRatio}
}

// Policy returns the policy the evaluator applies.
func (e Evaluator) Policy() Policy {
	return e.policy
}

// Evaluate returns the categories of thresholds in alert state given the
// expenses of one month. periodExpenses must already be filtered to the
// month. Categories without a threshold are never reported. The result is
// sorted by category name.
func (e Evaluator) Evaluate(periodExpenses []*entity.Expense, thresholds entity.Thresholds) []Alert {
	totals := SumByCategory(periodExpenses)

	alerts := make([]Alert, 0)
	for category, limit := range thresholds {
		total := totals[category]
		if !e.flags(total, limit) {
			continue
		}

		alert := Alert{
			Category: category,
			Total:    total,
			Limit:    limit,
			Excess:   decimal.Zero,
			Percent:  decimal.Zero,
		}
		if total.GreaterThan(limit) {
			alert.Excess = total.Sub(limit)
		}
		if limit.IsPositive() {
			alert.Percent = total.Div(limit).Mul(hundred).Round(2)
		}
		alerts = append(alerts, alert)
	}

	sort.Slice(alerts, func(i, j int) bool {
		return alerts[i].Category < alerts[j].Category
	})

	return alerts
}

func (e Evaluator) flags(total, limit decimal.Decimal) bool {
	if e.policy == PolicyNearLimit {
		return total.GreaterThanOrEqual(limit.Mul(e.ratio))
	}
	return total.GreaterThan(limit)
}

// Evaluate applies policy with the default near-limit ratio.
func Evaluate(periodExpenses []*entity.Expense, thresholds entity.Thresholds, policy Policy) []Alert {
	return NewEvaluator(policy, DefaultNearLimitRatio).Evaluate(periodExpenses, thresholds)
}

// Categories returns the category names of alerts, preserving order.
func Categories(alerts []Alert) []string {
	names := make([]string, len(alerts))
	for i, a := range alerts {
		names[i] = a.Category
	}
	return names
}

// SumByCategory totals expense amounts per category.
func SumByCategory(expenses []*entity.Expense) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, e := range expenses {
		totals[e.Category] = totals[e.Category].Add(e.Amount)
	}
	return totals
}

// FilterExpenses returns the expenses dated inside period.
func FilterExpenses(expenses []*entity.Expense, period valueobject.Period) []*entity.Expense {
	filtered := make([]*entity.Expense, 0, len(expenses))
	for _, e := range expenses {
		if period.Contains(e.Date) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
