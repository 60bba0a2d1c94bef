// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/finance-dashboard/backend/internal/application/usecase/alert"
	"github.com/finance-dashboard/backend/internal/application/usecase/dashboard"
	"github.com/finance-dashboard/backend/internal/domain/ledger"
)

// StatsResponse summarises one month of expenses or incomes.
type StatsResponse struct {
	Total            string             `json:"total"`
	PreviousTotal    string             `json:"previous_total"`
	PercentChange    *string            `json:"percent_change"` // null when the previous month had nothing
	DailyMean        string             `json:"daily_mean"`
	Forecast         string             `json:"forecast"`
	Largest          *EntryResponse     `json:"largest"`
	DaysWithActivity int                `json:"days_with_activity"`
	Count            int                `json:"count"`
	ByCategory       []CategoryTotalDTO `json:"by_category"`
}

// EntryResponse identifies a single expense or income.
type EntryResponse struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Amount   string `json:"amount"`
	Date     string `json:"date"`
}

// CategoryTotalDTO is the total of one category.
type CategoryTotalDTO struct {
	Category string `json:"category"`
	Total    string `json:"total"`
}

// CardSpendingResponse is one card's credit spending in the month. Name
// and last digits are null once the card was deleted.
type CardSpendingResponse struct {
	CardID     string  `json:"credit_card_id"`
	Name       *string `json:"name"`
	LastDigits *string `json:"last_digits"`
	Total      string  `json:"total"`
	Count      int     `json:"count"`
}

// GoalResponse tracks the monthly income goal.
type GoalResponse struct {
	Goal      string `json:"goal"`
	Reached   bool   `json:"reached"`
	Remaining string `json:"remaining"`
}

// BalanceResponse is income minus expense.
type BalanceResponse struct {
	Income  string `json:"income"`
	Expense string `json:"expense"`
	Net     string `json:"net"`
}

// AlertResponse describes a category in alert state.
type AlertResponse struct {
	Category string `json:"category"`
	Total    string `json:"total"`
	Limit    string `json:"limit"`
	Excess   string `json:"excess"`
	Percent  string `json:"percent"`
}

// AlertListResponse represents the response for GET /alerts.
type AlertListResponse struct {
	Period string          `json:"period"`
	Policy string          `json:"policy"`
	Alerts []AlertResponse `json:"alerts"`
}

// SummaryResponse represents the response for GET /dashboard/summary.
type SummaryResponse struct {
	Period     string                 `json:"period"`
	Expenses   StatsResponse          `json:"expenses"`
	Incomes    StatsResponse          `json:"incomes"`
	IncomeGoal GoalResponse           `json:"income_goal"`
	Balance    BalanceResponse        `json:"balance"`
	Policy     string                 `json:"alert_policy"`
	Alerts     []AlertResponse        `json:"alerts"`
	ByCard     []CardSpendingResponse `json:"expenses_by_card"`
}

// MonthBalanceResponse is one month of the annual balance.
type MonthBalanceResponse struct {
	Period string `json:"period"`
	BalanceResponse
}

// AnnualBalanceResponse represents the response for GET /dashboard/annual.
type AnnualBalanceResponse struct {
	Year   int                    `json:"year"`
	Total  BalanceResponse        `json:"total"`
	Months []MonthBalanceResponse `json:"months"`
}

// ToSummaryResponse converts the monthly dashboard.
func ToSummaryResponse(output *dashboard.GetSummaryOutput) SummaryResponse {
	return SummaryResponse{
		Period:   output.Period.String(),
		Expenses: toStatsResponse(output.Expenses, output.ExpensesByCategory),
		Incomes:  toStatsResponse(output.Incomes, output.IncomesByCategory),
		IncomeGoal: GoalResponse{
			Goal:      formatAmount(output.IncomeGoal.Goal),
			Reached:   output.IncomeGoal.Reached,
			Remaining: formatAmount(output.IncomeGoal.Remaining),
		},
		Balance: toBalanceResponse(output.Balance),
		Policy:  output.Policy,
		Alerts:  toAlertResponses(output.Alerts),
		ByCard:  toCardSpendingResponses(output.ExpensesByCard),
	}
}

func toCardSpendingResponses(spending []dashboard.CardSpending) []CardSpendingResponse {
	responses := make([]CardSpendingResponse, 0, len(spending))
	for _, s := range spending {
		r := CardSpendingResponse{
			CardID: s.CardID.String(),
			Total:  formatAmount(s.Total),
			Count:  s.Count,
		}
		if s.Name != "" {
			name, digits := s.Name, s.LastDigits
			r.Name, r.LastDigits = &name, &digits
		}
		responses = append(responses, r)
	}
	return responses
}

// ToAnnualBalanceResponse converts the annual balance.
func ToAnnualBalanceResponse(output *dashboard.GetAnnualBalanceOutput) AnnualBalanceResponse {
	response := AnnualBalanceResponse{
		Year:   output.Balance.Year,
		Total:  toBalanceResponse(output.Balance.Total),
		Months: make([]MonthBalanceResponse, 0, len(output.Balance.Months)),
	}
	for _, m := range output.Balance.Months {
		response.Months = append(response.Months, MonthBalanceResponse{
			Period:          m.Period.String(),
			BalanceResponse: toBalanceResponse(m.Balance),
		})
	}
	return response
}

// ToAlertListResponse converts the alert list of a month.
func ToAlertListResponse(output *alert.ListAlertsOutput) AlertListResponse {
	return AlertListResponse{
		Period: output.Period,
		Policy: output.Policy,
		Alerts: toAlertResponses(output.Alerts),
	}
}

func toStatsResponse(stats ledger.Stats, byCategory []ledger.CategoryTotal) StatsResponse {
	response := StatsResponse{
		Total:            formatAmount(stats.TotalCurrent),
		PreviousTotal:    formatAmount(stats.TotalPrevious),
		PercentChange:    optionalAmount(stats.PercentChange),
		DailyMean:        formatAmount(stats.DailyMean),
		Forecast:         formatAmount(stats.Forecast),
		DaysWithActivity: stats.DaysWithActivity,
		Count:            stats.Count,
		ByCategory:       make([]CategoryTotalDTO, 0, len(byCategory)),
	}
	if !stats.MaxEntry.IsZero() {
		response.Largest = &EntryResponse{
			ID:       stats.MaxEntry.ID.String(),
			Category: stats.MaxEntry.Category,
			Amount:   formatAmount(stats.MaxEntry.Amount),
			Date:     formatDate(stats.MaxEntry.Date),
		}
	}
	for _, c := range byCategory {
		response.ByCategory = append(response.ByCategory, CategoryTotalDTO{
			Category: c.Category,
			Total:    formatAmount(c.Total),
		})
	}
	return response
}

func toBalanceResponse(b ledger.Balance) BalanceResponse {
	return BalanceResponse{
		Income:  formatAmount(b.Income),
		Expense: formatAmount(b.Expense),
		Net:     formatAmount(b.Net),
	}
}

func toAlertResponses(alerts []ledger.Alert) []AlertResponse {
	responses := make([]AlertResponse, 0, len(alerts))
	for _, a := range alerts {
		responses = append(responses, AlertResponse{
			Category: a.Category,
			Total:    formatAmount(a.Total),
			Limit:    formatAmount(a.Limit),
			Excess:   formatAmount(a.Excess),
			Percent:  formatAmount(a.Percent),
		})
	}
	return responses
}
