// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/domain/entity"
	"github.com/finance-dashboard/backend/internal/domain/ledger"
)

// InvestmentRequest represents the request body for investment creation and replacement.
type InvestmentRequest struct {
	Type        string  `json:"type" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
	Date        string  `json:"date" binding:"required"`
	IsCrypto    bool    `json:"is_crypto"`
	Description string  `json:"description,omitempty"`
}

// InvestmentResponse represents a single investment in API responses.
type InvestmentResponse struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Name        string    `json:"name"`
	Amount      string    `json:"amount"`
	Date        string    `json:"date"`
	IsCrypto    bool      `json:"is_crypto"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// InvestmentListResponse represents the portfolio with its totals.
type InvestmentListResponse struct {
	Investments []InvestmentResponse `json:"investments"`
	Total       string               `json:"total"`
	CryptoTotal string               `json:"crypto_total"`
}

// QuoteResponse represents the current BRL price of a coin.
type QuoteResponse struct {
	CoinID    string `json:"coin_id"`
	PriceBRL  string `json:"price_brl"`
	Change24h string `json:"change_24h"`
}

// QuoteListResponse represents the response for GET /investments/quotes.
type QuoteListResponse struct {
	Quotes []QuoteResponse `json:"quotes"`
}

// ToInvestmentResponse converts a domain Investment entity to an InvestmentResponse DTO.
func ToInvestmentResponse(inv *entity.Investment) InvestmentResponse {
	return InvestmentResponse{
		ID:          inv.ID.String(),
		Type:        inv.Type,
		Name:        inv.Name,
		Amount:      formatAmount(inv.Amount),
		Date:        formatDate(inv.Date),
		IsCrypto:    inv.IsCrypto,
		Description: inv.Description,
		CreatedAt:   inv.CreatedAt,
		UpdatedAt:   inv.UpdatedAt,
	}
}

// ToInvestmentListResponse converts the portfolio and its totals.
func ToInvestmentListResponse(investments []*entity.Investment, total, cryptoTotal decimal.Decimal) InvestmentListResponse {
	response := InvestmentListResponse{
		Investments: make([]InvestmentResponse, 0, len(investments)),
		Total:       formatAmount(total),
		CryptoTotal: formatAmount(cryptoTotal),
	}
	for _, inv := range investments {
		response.Investments = append(response.Investments, ToInvestmentResponse(inv))
	}
	return response
}

// ToQuoteListResponse converts provider quotes.
func ToQuoteListResponse(quotes []entity.CryptoQuote) QuoteListResponse {
	response := QuoteListResponse{
		Quotes: make([]QuoteResponse, 0, len(quotes)),
	}
	for _, q := range quotes {
		response.Quotes = append(response.Quotes, QuoteResponse{
			CoinID:    q.CoinID,
			PriceBRL:  q.PriceBRL.String(),
			Change24h: q.Change24h.StringFixed(2),
		})
	}
	return response
}

// SimulationResponse represents the response for GET /investments/simulate.
// Rates are percentages.
type SimulationResponse struct {
	Index       string `json:"index"`
	AnnualRate  string `json:"annual_rate"`
	MonthlyRate string `json:"monthly_rate"`
	Months      int    `json:"months"`
	Amount      string `json:"amount"`
	Final       string `json:"final_amount"`
	Gain        string `json:"gain"`
}

// ToSimulationResponse converts a projection.
func ToSimulationResponse(index string, p ledger.Projection) SimulationResponse {
	return SimulationResponse{
		Index:       index,
		AnnualRate:  p.AnnualRate.StringFixed(2),
		MonthlyRate: p.MonthlyRate.StringFixed(4),
		Months:      p.Months,
		Amount:      formatAmount(p.Principal),
		Final:       formatAmount(p.Final),
		Gain:        formatAmount(p.Gain),
	}
}
