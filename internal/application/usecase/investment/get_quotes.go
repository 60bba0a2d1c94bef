package investment

import (
	"context"
	"regexp"
	"sort"
	"strings"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
)

// MaxCoinIDs caps how many coins one quote request may ask for.
const MaxCoinIDs = 25

var coinIDRegex = regexp.MustCompile(`^[a-z0-9-]{1,64}$`)

// GetQuotesInput represents the input for a quote lookup.
type GetQuotesInput struct {
	CoinIDs []string
}

// GetQuotesOutput holds BRL quotes sorted by coin id.
type GetQuotesOutput struct {
	Quotes []entity.CryptoQuote
}

// GetQuotesUseCase looks up current crypto prices.
type GetQuotesUseCase struct {
	provider adapter.QuoteProvider
}

// NewGetQuotesUseCase creates a new GetQuotesUseCase instance.
func NewGetQuotesUseCase(provider adapter.QuoteProvider) *GetQuotesUseCase {
	return &GetQuotesUseCase{provider: provider}
}

// Execute validates the coin ids and asks the provider for their quotes.
func (uc *GetQuotesUseCase) Execute(ctx context.Context, input GetQuotesInput) (*GetQuotesOutput, error) {
	ids, err := normalizeCoinIDs(input.CoinIDs)
	if err != nil {
		return nil, err
	}

	quotes, err := uc.provider.Quotes(ctx, ids)
	if err != nil {
		return nil, domainerror.NewInvestmentError(
			domainerror.ErrCodeQuoteProviderUnavailable,
			"quote provider is unavailable, try again later",
			err,
		)
	}

	return &GetQuotesOutput{Quotes: quotes}, nil
}

// normalizeCoinIDs lowercases, dedupes and sorts the ids.
func normalizeCoinIDs(raw []string) ([]string, error) {
	seen := make(map[string]bool)
	ids := make([]string, 0, len(raw))
	for _, id := range raw {
		id = strings.ToLower(strings.TrimSpace(id))
		if id == "" || seen[id] {
			continue
		}
		if !coinIDRegex.MatchString(id) {
			return nil, domainerror.NewInvestmentError(
				domainerror.ErrCodeInvalidCoinIDs,
				"invalid coin id: "+id,
				nil,
			)
		}
		seen[id] = true
		ids = append(ids, id)
	}

	if len(ids) == 0 {
		return nil, domainerror.NewInvestmentError(
			domainerror.ErrCodeInvalidCoinIDs,
			"at least one coin id is required",
			nil,
		)
	}
	if len(ids) > MaxCoinIDs {
		return nil, domainerror.NewInvestmentError(
			domainerror.ErrCodeInvalidCoinIDs,
			"too many coin ids",
			domainerror.ErrTooManyCoins,
		)
	}

	sort.Strings(ids)
	return ids, nil
}
