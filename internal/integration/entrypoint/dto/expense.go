// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// ExpenseRequest represents the request body for expense creation and replacement.
type ExpenseRequest struct {
	Category      string  `json:"category" binding:"required"`
	Subcategory   string  `json:"subcategory,omitempty" binding:"omitempty,max=50"`
	Amount        float64 `json:"amount" binding:"required"`
	PaymentMethod string  `json:"payment_method" binding:"required"`
	Installments  *int    `json:"installments,omitempty"`
	CreditCardID  *string `json:"credit_card_id,omitempty"`
	Note          string  `json:"note,omitempty"`
	Date          string  `json:"date" binding:"required"`
	Fixed         bool    `json:"fixed,omitempty"`
}

// RecurringExpenseRequest represents the request body for template creation.
type RecurringExpenseRequest struct {
	Category      string  `json:"category" binding:"required"`
	Subcategory   string  `json:"subcategory,omitempty" binding:"omitempty,max=50"`
	Amount        float64 `json:"amount" binding:"required"`
	PaymentMethod string  `json:"payment_method" binding:"required"`
	Installments  *int    `json:"installments,omitempty"`
	CreditCardID  *string `json:"credit_card_id,omitempty"`
	Note          string  `json:"note,omitempty"`
	StartDate     string  `json:"start_date" binding:"required"`
	DayOfMonth    int     `json:"day_of_month,omitempty"`
}

// ExpenseResponse represents a single expense in API responses.
type ExpenseResponse struct {
	ID                 string    `json:"id"`
	Category           string    `json:"category"`
	Subcategory        string    `json:"subcategory"`
	Amount             string    `json:"amount"`
	PaymentMethod      string    `json:"payment_method"`
	Installments       *int      `json:"installments,omitempty"`
	InstallmentNumber  *int      `json:"installment_number,omitempty"`
	CreditCardID       *string   `json:"credit_card_id,omitempty"`
	Note               string    `json:"note"`
	Fixed              bool      `json:"fixed"`
	RecurringExpenseID *string   `json:"recurring_expense_id,omitempty"`
	Date               string    `json:"date"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// ExpenseListResponse represents the response for listing expenses.
type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
	Total    string            `json:"total"`
}

// RecurringExpenseResponse represents a fixed expense template.
type RecurringExpenseResponse struct {
	ID            string    `json:"id"`
	Category      string    `json:"category"`
	Subcategory   string    `json:"subcategory"`
	Amount        string    `json:"amount"`
	DayOfMonth    int       `json:"day_of_month"`
	PaymentMethod string    `json:"payment_method"`
	Installments  *int      `json:"installments,omitempty"`
	CreditCardID  *string   `json:"credit_card_id,omitempty"`
	Note          string    `json:"note"`
	StartDate     string    `json:"start_date"`
	CreatedAt     time.Time `json:"created_at"`
}

// CreateExpenseResponse lists every record created by one request.
// Installment plans and fixed expenses create more than one.
type CreateExpenseResponse struct {
	Expenses []ExpenseResponse         `json:"expenses"`
	Template *RecurringExpenseResponse `json:"recurring_expense,omitempty"`
}

// RecurringExpenseListResponse represents the response for listing templates.
type RecurringExpenseListResponse struct {
	RecurringExpenses []RecurringExpenseResponse `json:"recurring_expenses"`
}

// ToExpenseResponse converts a domain Expense entity to an ExpenseResponse DTO.
func ToExpenseResponse(e *entity.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:                 e.ID.String(),
		Category:           e.Category,
		Subcategory:        e.Subcategory,
		Amount:             formatAmount(e.Amount),
		PaymentMethod:      string(e.PaymentMethod),
		Installments:       e.Installments,
		InstallmentNumber:  e.InstallmentNumber,
		CreditCardID:       optionalUUID(e.CreditCardID),
		Note:               e.Note,
		Fixed:              e.Fixed,
		RecurringExpenseID: optionalUUID(e.RecurringExpenseID),
		Date:               formatDate(e.Date),
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          e.UpdatedAt,
	}
}

// ToExpenseResponses converts a list of expenses.
func ToExpenseResponses(expenses []*entity.Expense) []ExpenseResponse {
	responses := make([]ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		responses = append(responses, ToExpenseResponse(e))
	}
	return responses
}

// ToRecurringExpenseResponse converts a template to its DTO.
func ToRecurringExpenseResponse(r *entity.RecurringExpense) RecurringExpenseResponse {
	return RecurringExpenseResponse{
		ID:            r.ID.String(),
		Category:      r.Category,
		Subcategory:   r.Subcategory,
		Amount:        formatAmount(r.Amount),
		DayOfMonth:    r.DayOfMonth,
		PaymentMethod: string(r.PaymentMethod),
		Installments:  r.Installments,
		CreditCardID:  optionalUUID(r.CreditCardID),
		Note:          r.Note,
		StartDate:     formatDate(r.StartDate),
		CreatedAt:     r.CreatedAt,
	}
}

// ToCreateExpenseResponse converts the records created by one request.
func ToCreateExpenseResponse(expenses []*entity.Expense, template *entity.RecurringExpense) CreateExpenseResponse {
	response := CreateExpenseResponse{
		Expenses: ToExpenseResponses(expenses),
	}
	if template != nil {
		t := ToRecurringExpenseResponse(template)
		response.Template = &t
	}
	return response
}

// ToRecurringExpenseListResponse converts a list of templates.
func ToRecurringExpenseListResponse(templates []*entity.RecurringExpense) RecurringExpenseListResponse {
	response := RecurringExpenseListResponse{
		RecurringExpenses: make([]RecurringExpenseResponse, 0, len(templates)),
	}
	for _, t := range templates {
		response.RecurringExpenses = append(response.RecurringExpenses, ToRecurringExpenseResponse(t))
	}
	return response
}
