// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// QuoteProvider fetches current crypto prices.
type QuoteProvider interface {
	// Quotes returns the BRL price and 24h change for each coin id it knows.
	// Unknown ids are omitted from the result.
	Quotes(ctx context.Context, coinIDs []string) ([]entity.CryptoQuote, error)
}

// RateProvider fetches published benchmark interest rates.
type RateProvider interface {
	// AnnualRate returns the latest annualised rate of index ("selic" or
	// "cdi"), in percent per year.
	AnnualRate(ctx context.Context, index string) (decimal.Decimal, error)
}
