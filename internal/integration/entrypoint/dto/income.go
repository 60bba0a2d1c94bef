// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// IncomeRequest represents the request body for income creation and replacement.
type IncomeRequest struct {
	Category string  `json:"category" binding:"required"`
	Amount   float64 `json:"amount" binding:"required"`
	Date     string  `json:"date" binding:"required"`
	Source   string  `json:"source,omitempty"`
	Note     string  `json:"note,omitempty"`
}

// IncomeResponse represents a single income in API responses.
type IncomeResponse struct {
	ID        string    `json:"id"`
	Category  string    `json:"category"`
	Amount    string    `json:"amount"`
	Date      string    `json:"date"`
	Source    string    `json:"source"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IncomeListResponse represents the response for listing incomes.
type IncomeListResponse struct {
	Incomes []IncomeResponse `json:"incomes"`
	Total   string           `json:"total"`
}

// ToIncomeResponse converts a domain Income entity to an IncomeResponse DTO.
func ToIncomeResponse(in *entity.Income) IncomeResponse {
	return IncomeResponse{
		ID:        in.ID.String(),
		Category:  in.Category,
		Amount:    formatAmount(in.Amount),
		Date:      formatDate(in.Date),
		Source:    in.Source,
		Note:      in.Note,
		CreatedAt: in.CreatedAt,
		UpdatedAt: in.UpdatedAt,
	}
}

// ToIncomeListResponse converts a list of incomes and their total.
func ToIncomeListResponse(incomes []*entity.Income, total decimal.Decimal) IncomeListResponse {
	response := IncomeListResponse{
		Incomes: make([]IncomeResponse, 0, len(incomes)),
		Total:   formatAmount(total),
	}
	for _, in := range incomes {
		response.Incomes = append(response.Incomes, ToIncomeResponse(in))
	}
	return response
}
