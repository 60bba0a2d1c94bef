package pricing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/application/adapter"
)

// DefaultBCBBaseURL is the Banco Central do Brasil open data API.
const DefaultBCBBaseURL = "https://api.bcb.gov.br"

// ErrUnknownRateIndex is returned for an index without a published series.
var ErrUnknownRateIndex = errors.New("unknown rate index")

// bcbSeries maps an index to its SGS series of annualised rates.
var bcbSeries = map[string]int{
	"selic": 4189, // Selic accumulated in the month, annualised (252 days)
	"cdi":   4389, // CDI annualised (252 days)
}

// BCBClient implements adapter.RateProvider over the SGS time series API.
type BCBClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewBCBClient creates a client with the given base URL and request timeout.
func NewBCBClient(baseURL string, timeout time.Duration) *BCBClient {
	if baseURL == "" {
		baseURL = DefaultBCBBaseURL
	}
	return &BCBClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// SeriesPath returns the request path serving the latest value of index.
func SeriesPath(index string) (string, bool) {
	series, ok := bcbSeries[index]
	if !ok {
		return "", false
	}
	return fmt.Sprintf("/dados/serie/bcdata.sgs.%d/dados/ultimos/1", series), true
}

type sgsPoint struct {
	Date  string `json:"data"`
	Value string `json:"valor"`
}

// AnnualRate returns the most recent published value of index.
func (c *BCBClient) AnnualRate(ctx context.Context, index string) (decimal.Decimal, error) {
	path, ok := SeriesPath(index)
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrUnknownRateIndex, index)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?formato=json", nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to build rate request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to fetch %s rate: %w", index, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return decimal.Zero, fmt.Errorf("rate provider returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var points []sgsPoint
	if err := json.NewDecoder(resp.Body).Decode(&points); err != nil {
		return decimal.Zero, fmt.Errorf("failed to decode %s rate: %w", index, err)
	}
	if len(points) == 0 {
		return decimal.Zero, fmt.Errorf("rate provider returned no %s value", index)
	}

	rate, err := decimal.NewFromString(strings.TrimSpace(points[len(points)-1].Value))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s rate %q: %w", index, points[len(points)-1].Value, err)
	}
	return rate, nil
}

var _ adapter.RateProvider = (*BCBClient)(nil)
