package investment

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-dashboard/backend/internal/domain/entity"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
)

type stubRates struct {
	rates map[string]decimal.Decimal
	asked []string
	err   error
}

func (s *stubRates) AnnualRate(_ context.Context, index string) (decimal.Decimal, error) {
	s.asked = append(s.asked, index)
	if s.err != nil {
		return decimal.Zero, s.err
	}
	return s.rates[index], nil
}

type fixedQuotes []entity.CryptoQuote

func (q fixedQuotes) Quotes(context.Context, []string) ([]entity.CryptoQuote, error) {
	return q, nil
}

func ratePtr(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

func TestSimulate(t *testing.T) {
	rates := &stubRates{rates: map[string]decimal.Decimal{
		IndexSelic: decimal.NewFromInt(12),
		IndexCDI:   decimal.RequireFromString("14.4"),
	}}
	quotes := fixedQuotes{{CoinID: "bitcoin", PriceBRL: decimal.NewFromInt(350000), Change24h: decimal.RequireFromString("0.4")}}
	uc := NewSimulateUseCase(rates, quotes)

	tests := []struct {
		name      string
		input     SimulateInput
		wantIndex string
		wantRate  string
		wantFinal string
	}{
		{name: "selic by default", input: SimulateInput{Amount: decimal.NewFromInt(1000), Months: 12}, wantIndex: "selic", wantRate: "12", wantFinal: "1126.83"},
		{name: "cdi", input: SimulateInput{Amount: decimal.NewFromInt(1000), Months: 1, Index: " CDI "}, wantIndex: "cdi", wantRate: "14.4", wantFinal: "1012"},
		{name: "bitcoin momentum", input: SimulateInput{Amount: decimal.NewFromInt(1000), Months: 12, Index: "bitcoin"}, wantIndex: "bitcoin", wantRate: "12", wantFinal: "1126.83"},
		{name: "explicit rate wins", input: SimulateInput{Amount: decimal.NewFromInt(1000), Months: 12, Index: "cdi", Rate: ratePtr("0")}, wantIndex: "custom", wantRate: "0", wantFinal: "1000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := uc.Execute(context.Background(), tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.wantIndex, out.Index)
			assert.Equal(t, tt.wantRate, out.Projection.AnnualRate.String())
			assert.Equal(t, tt.wantFinal, out.Projection.Final.String())
		})
	}
}

func TestSimulateValidation(t *testing.T) {
	rates := &stubRates{}
	uc := NewSimulateUseCase(rates, fixedQuotes{})

	tests := []struct {
		name     string
		input    SimulateInput
		wantCode domainerror.InvestmentErrorCode
	}{
		{name: "zero amount", input: SimulateInput{Months: 12}, wantCode: domainerror.ErrCodeInvalidInvestmentAmount},
		{name: "no months", input: SimulateInput{Amount: decimal.NewFromInt(10)}, wantCode: domainerror.ErrCodeInvalidSimulation},
		{name: "too many months", input: SimulateInput{Amount: decimal.NewFromInt(10), Months: 601}, wantCode: domainerror.ErrCodeInvalidSimulation},
		{name: "unknown index", input: SimulateInput{Amount: decimal.NewFromInt(10), Months: 3, Index: "ipca"}, wantCode: domainerror.ErrCodeInvalidSimulation},
		{name: "total loss rate", input: SimulateInput{Amount: decimal.NewFromInt(10), Months: 3, Rate: ratePtr("-100")}, wantCode: domainerror.ErrCodeInvalidSimulation},
		{name: "bitcoin missing from quotes", input: SimulateInput{Amount: decimal.NewFromInt(10), Months: 3, Index: "bitcoin"}, wantCode: domainerror.ErrCodeQuoteProviderUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.input)
			assert.Equal(t, tt.wantCode, investmentCode(t, err))
		})
	}
	assert.Empty(t, rates.asked, "invalid requests never reach the rate provider")
}

func TestSimulateRateProviderFailure(t *testing.T) {
	upstream := errors.New("bcb returned 503")
	_, err := NewSimulateUseCase(&stubRates{err: upstream}, fixedQuotes{}).Execute(context.Background(), SimulateInput{
		Amount: decimal.NewFromInt(1000),
		Months: 6,
		Index:  "selic",
	})
	assert.Equal(t, domainerror.ErrCodeRateProviderUnavailable, investmentCode(t, err))
	assert.ErrorIs(t, err, domainerror.ErrRateProviderUnavailable)
}
