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

func newRateServer(t *testing.T, wantPath string, status int, body string, hits *int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits != nil {
			atomic.AddInt32(hits, 1)
		}
		assert.Equal(t, wantPath, r.URL.Path)
		assert.Equal(t, "json", r.URL.Query().Get("formato"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestBCBAnnualRate(t *testing.T) {
	tests := []struct {
		index string
		path  string
	}{
		{index: "selic", path: "/dados/serie/bcdata.sgs.4189/dados/ultimos/1"},
		{index: "cdi", path: "/dados/serie/bcdata.sgs.4389/dados/ultimos/1"},
	}

	for _, tt := range tests {
		t.Run(tt.index, func(t *testing.T) {
			srv := newRateServer(t, tt.path, http.StatusOK, `[{"data":"01/09/2025","valor":"14.90"}]`, nil)
			rate, err := NewBCBClient(srv.URL, time.Second).AnnualRate(context.Background(), tt.index)
			require.NoError(t, err)
			assert.Equal(t, "14.9", rate.String())
		})
	}
}

func TestBCBErrors(t *testing.T) {
	path := "/dados/serie/bcdata.sgs.4189/dados/ultimos/1"
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "server error", status: http.StatusInternalServerError, body: `oops`},
		{name: "empty series", status: http.StatusOK, body: `[]`},
		{name: "not a number", status: http.StatusOK, body: `[{"data":"01/09/2025","valor":"n/d"}]`},
		{name: "malformed body", status: http.StatusOK, body: `{"valor":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newRateServer(t, path, tt.status, tt.body, nil)
			_, err := NewBCBClient(srv.URL, time.Second).AnnualRate(context.Background(), "selic")
			assert.Error(t, err)
		})
	}
}

func TestBCBUnknownIndex(t *testing.T) {
	_, err := NewBCBClient("http://127.0.0.1:1", time.Second).AnnualRate(context.Background(), "ipca")
	assert.ErrorIs(t, err, ErrUnknownRateIndex)
}

func TestCachedRates(t *testing.T) {
	var hits int32
	srv := newRateServer(t, "/dados/serie/bcdata.sgs.4389/dados/ultimos/1", http.StatusOK, `[{"data":"01/09/2025","valor":"14.15"}]`, &hits)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	rates := NewCachedRates(NewBCBClient(srv.URL, time.Second), cache.NewRedisCache(client), time.Hour)

	for i := 0; i < 3; i++ {
		rate, err := rates.AnnualRate(context.Background(), "cdi")
		require.NoError(t, err)
		assert.Equal(t, "14.15", rate.String())
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))

	mr.FastForward(2 * time.Hour)
	_, err := rates.AnnualRate(context.Background(), "cdi")
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&hits))
}
