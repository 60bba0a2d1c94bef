// Package pricing fetches crypto quotes from CoinGecko and benchmark
// interest rates from the Banco Central do Brasil.
package pricing

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// DefaultBaseURL is the public CoinGecko API.
const DefaultBaseURL = "https://api.coingecko.com"

// CoinGeckoClient implements adapter.QuoteProvider using the simple/price endpoint.
type CoinGeckoClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewCoinGeckoClient creates a client with the given base URL and request timeout.
func NewCoinGeckoClient(baseURL string, timeout time.Duration) *CoinGeckoClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &CoinGeckoClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

type simplePrice struct {
	BRL       decimal.Decimal `json:"brl"`
	Change24h decimal.Decimal `json:"brl_24h_change"`
}

// Quotes returns BRL prices for the requested coins, sorted by coin id.
func (c *CoinGeckoClient) Quotes(ctx context.Context, coinIDs []string) ([]entity.CryptoQuote, error) {
	if len(coinIDs) == 0 {
		return []entity.CryptoQuote{}, nil
	}

	query := url.Values{}
	query.Set("ids", strings.Join(coinIDs, ","))
	query.Set("vs_currencies", "brl")
	query.Set("include_24hr_change", "true")
	endpoint := c.baseURL + "/api/v3/simple/price?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build quote request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch quotes: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("quote provider returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload map[string]simplePrice
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode quotes: %w", err)
	}

	quotes := make([]entity.CryptoQuote, 0, len(payload))
	for id, p := range payload {
		quotes = append(quotes, entity.CryptoQuote{
			CoinID:    id,
			PriceBRL:  p.BRL,
			Change24h: p.Change24h.Round(2),
		})
	}
	sort.Slice(quotes, func(i, j int) bool { return quotes[i].CoinID < quotes[j].CoinID })
	return quotes, nil
}

var _ adapter.QuoteProvider = (*CoinGeckoClient)(nil)
