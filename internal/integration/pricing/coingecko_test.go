package pricing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-dashboard/backend/internal/integration/cache"
)

func newQuoteServer(t *testing.T, status int, body string, hits *int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits != nil {
			atomic.AddInt32(hits, 1)
		}
		assert.Equal(t, "/api/v3/simple/price", r.URL.Path)
		assert.Equal(t, "brl", r.URL.Query().Get("vs_currencies"))
		assert.Equal(t, "true", r.URL.Query().Get("include_24hr_change"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestCoinGeckoQuotes(t *testing.T) {
	srv := newQuoteServer(t, http.StatusOK, `{
		"ethereum": {"brl": 18000.5, "brl_24h_change": -1.234},
		"bitcoin": {"brl": 350000, "brl_24h_change": 2.5}
	}`, nil)

	quotes, err := NewCoinGeckoClient(srv.URL, time.Second).Quotes(context.Background(), []string{"bitcoin", "ethereum", "unknown"})
	require.NoError(t, err)
	require.Len(t, quotes, 2)
	assert.Equal(t, "bitcoin", quotes[0].CoinID)
	assert.Equal(t, "350000", quotes[0].PriceBRL.String())
	assert.Equal(t, "2.5", quotes[0].Change24h.String())
	assert.Equal(t, "ethereum", quotes[1].CoinID)
	assert.Equal(t, "-1.23", quotes[1].Change24h.String())
}

func TestCoinGeckoErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "rate limited", status: http.StatusTooManyRequests, body: `{"status":{"error_code":429}}`},
		{name: "malformed body", status: http.StatusOK, body: `[1,2`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newQuoteServer(t, tt.status, tt.body, nil)
			_, err := NewCoinGeckoClient(srv.URL, time.Second).Quotes(context.Background(), []string{"bitcoin"})
			assert.Error(t, err)
		})
	}
}

func TestCoinGeckoNoIDs(t *testing.T) {
	quotes, err := NewCoinGeckoClient("http://127.0.0.1:1", time.Second).Quotes(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, quotes)
}

func TestCachedProvider(t *testing.T) {
	var hits int32
	srv := newQuoteServer(t, http.StatusOK, `{"bitcoin": {"brl": 350000, "brl_24h_change": 2.5}}`, &hits)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	provider := NewCachedProvider(NewCoinGeckoClient(srv.URL, time.Second), cache.NewRedisCache(client), time.Minute)

	for i := 0; i < 3; i++ {
		quotes, err := provider.Quotes(context.Background(), []string{"bitcoin"})
		require.NoError(t, err)
		require.Len(t, quotes, 1)
		assert.Equal(t, "350000", quotes[0].PriceBRL.String())
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))

	mr.FastForward(2 * time.Minute)
	_, err := provider.Quotes(context.Background(), []string{"bitcoin"})
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&hits))
}
