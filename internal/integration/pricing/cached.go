package pricing

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// CachedProvider serves repeated quote requests from the summary cache.
type CachedProvider struct {
	next  adapter.QuoteProvider
	cache adapter.SummaryCache
	ttl   time.Duration
}

// NewCachedProvider wraps next with a cache of the given ttl.
func NewCachedProvider(next adapter.QuoteProvider, cache adapter.SummaryCache, ttl time.Duration) *CachedProvider {
	return &CachedProvider{next: next, cache: cache, ttl: ttl}
}

// Quotes returns cached quotes when available, otherwise fetches and stores them.
func (p *CachedProvider) Quotes(ctx context.Context, coinIDs []string) ([]entity.CryptoQuote, error) {
	ids := append([]string(nil), coinIDs...)
	sort.Strings(ids)
	key := adapter.CacheKey(adapter.CacheResourceQuotes, uuid.Nil, strings.Join(ids, ","))

	var cached []entity.CryptoQuote
	hit, err := p.cache.Get(ctx, key, &cached)
	if err != nil {
		slog.Warn("Failed to read cached quotes", "error", err)
	}
	if hit {
		return cached, nil
	}

	quotes, err := p.next.Quotes(ctx, ids)
	if err != nil {
		return nil, err
	}

	if err := p.cache.Set(ctx, key, quotes, p.ttl); err != nil {
		slog.Warn("Failed to cache quotes", "error", err)
	}
	return quotes, nil
}

// CachedRates serves benchmark rates from the summary cache. Rates are
// published once a day, so the ttl is usually hours.
type CachedRates struct {
	next  adapter.RateProvider
	cache adapter.SummaryCache
	ttl   time.Duration
}

// NewCachedRates wraps next with a cache of the given ttl.
func NewCachedRates(next adapter.RateProvider, cache adapter.SummaryCache, ttl time.Duration) *CachedRates {
	return &CachedRates{next: next, cache: cache, ttl: ttl}
}

func (r *CachedRates) AnnualRate(ctx context.Context, index string) (decimal.Decimal, error) {
	key := adapter.CacheKey(adapter.CacheResourceRates, uuid.Nil, index)

	var cached decimal.Decimal
	hit, err := r.cache.Get(ctx, key, &cached)
	if err != nil {
		slog.Warn("Failed to read cached rate", "index", index, "error", err)
	}
	if hit {
		return cached, nil
	}

	rate, err := r.next.AnnualRate(ctx, index)
	if err != nil {
		return decimal.Zero, err
	}
	if err := r.cache.Set(ctx, key, rate, r.ttl); err != nil {
		slog.Warn("Failed to cache rate", "index", index, "error", err)
	}
	return rate, nil
}

var (
	_ adapter.QuoteProvider = (*CachedProvider)(nil)
	_ adapter.RateProvider  = (*CachedRates)(nil)
)
