package investment

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
	"github.com/finance-dashboard/backend/internal/domain/ledger"
)

// Simulation indexes.
const (
	IndexSelic   = "selic"
	IndexCDI     = "cdi"
	IndexBitcoin = "bitcoin"
	IndexCustom  = "custom"
)

// bitcoinRateFactor scales the bitcoin 24h change (percent) into the yearly
// rate used for the bitcoin index. It is a momentum figure, not a forecast.
var bitcoinRateFactor = decimal.NewFromInt(30)

// SimulateInput describes a projection request. A non-nil Rate overrides
// the index and is used as is.
type SimulateInput struct {
	Amount decimal.Decimal
	Months int
	Index  string
	Rate   *decimal.Decimal // percent per year
}

// SimulateOutput is the projection together with the index it used.
type SimulateOutput struct {
	Index      string
	Projection ledger.Projection
}

// SimulateUseCase projects compound growth of an amount at a benchmark rate.
type SimulateUseCase struct {
	rates  adapter.RateProvider
	quotes adapter.QuoteProvider
}

// NewSimulateUseCase creates a new SimulateUseCase instance.
func NewSimulateUseCase(rates adapter.RateProvider, quotes adapter.QuoteProvider) *SimulateUseCase {
	return &SimulateUseCase{rates: rates, quotes: quotes}
}

// Execute resolves the annual rate and compounds Amount monthly over Months.
// Without an index the Selic rate is used.
func (uc *SimulateUseCase) Execute(ctx context.Context, input SimulateInput) (*SimulateOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewInvestmentError(
			domainerror.ErrCodeInvalidInvestmentAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidInvestmentAmount,
		)
	}
	if input.Months < 1 || input.Months > ledger.MaxProjectionMonths {
		return nil, invalidSimulation(fmt.Sprintf("months must be between 1 and %d", ledger.MaxProjectionMonths))
	}

	index, rate, err := uc.resolveRate(ctx, input)
	if err != nil {
		return nil, err
	}

	return &SimulateOutput{
		Index:      index,
		Projection: ledger.Project(input.Amount.Round(2), rate, input.Months),
	}, nil
}

func (uc *SimulateUseCase) resolveRate(ctx context.Context, input SimulateInput) (string, decimal.Decimal, error) {
	if input.Rate != nil {
		if input.Rate.LessThanOrEqual(decimal.NewFromInt(-100)) {
			return "", decimal.Zero, invalidSimulation("rate must be greater than -100")
		}
		return IndexCustom, *input.Rate, nil
	}

	index := strings.ToLower(strings.TrimSpace(input.Index))
	switch index {
	case "", IndexSelic:
		return uc.published(ctx, IndexSelic)
	case IndexCDI:
		return uc.published(ctx, IndexCDI)
	case IndexBitcoin:
		quotes, err := uc.quotes.Quotes(ctx, []string{IndexBitcoin})
		if err != nil {
			return "", decimal.Zero, domainerror.NewInvestmentError(
				domainerror.ErrCodeQuoteProviderUnavailable,
				"quote provider is unavailable, try again later",
				err,
			)
		}
		for _, q := range quotes {
			if q.CoinID == IndexBitcoin {
				return IndexBitcoin, q.Change24h.Mul(bitcoinRateFactor), nil
			}
		}
		return "", decimal.Zero, domainerror.NewInvestmentError(
			domainerror.ErrCodeQuoteProviderUnavailable,
			"quote provider has no bitcoin price",
			domainerror.ErrQuoteProviderUnavailable,
		)
	default:
		return "", decimal.Zero, invalidSimulation("index must be one of selic, cdi, bitcoin")
	}
}

func (uc *SimulateUseCase) published(ctx context.Context, index string) (string, decimal.Decimal, error) {
	rate, err := uc.rates.AnnualRate(ctx, index)
	if err != nil {
		return "", decimal.Zero, domainerror.NewInvestmentError(
			domainerror.ErrCodeRateProviderUnavailable,
			"rate provider is unavailable, try again later",
			fmt.Errorf("%w: %v", domainerror.ErrRateProviderUnavailable, err),
		)
	}
	return index, rate, nil
}

func invalidSimulation(message string) error {
	return domainerror.NewInvestmentError(domainerror.ErrCodeInvalidSimulation, message, nil)
}
