// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// CreateCreditCardRequest represents the request body for card registration.
type CreateCreditCardRequest struct {
	Name       string `json:"name" binding:"required"`
	LastDigits string `json:"last_digits" binding:"required"`
}

// CreditCardResponse represents a single card in API responses.
type CreditCardResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	LastDigits string    `json:"last_digits"`
	CreatedAt  time.Time `json:"created_at"`
}

// CreditCardListResponse represents the response for listing cards.
type CreditCardListResponse struct {
	CreditCards []CreditCardResponse `json:"credit_cards"`
}

// ToCreditCardResponse converts a domain CreditCard entity to a CreditCardResponse DTO.
func ToCreditCardResponse(card *entity.CreditCard) CreditCardResponse {
	return CreditCardResponse{
		ID:         card.ID.String(),
		Name:       card.Name,
		LastDigits: card.LastDigits,
		CreatedAt:  card.CreatedAt,
	}
}

// ToCreditCardListResponse converts a list of cards.
func ToCreditCardListResponse(cards []*entity.CreditCard) CreditCardListResponse {
	response := CreditCardListResponse{
		CreditCards: make([]CreditCardResponse, 0, len(cards)),
	}
	for _, card := range cards {
		response.CreditCards = append(response.CreditCards, ToCreditCardResponse(card))
	}
	return response
}
