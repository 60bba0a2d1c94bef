package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck(t *testing.T) {
	up := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("dial tcp: refused") }

	tests := []struct {
		name       string
		database   HealthChecker
		cache      HealthChecker
		wantStatus int
		want       HealthResponse
	}{
		{"all up", up, up, http.StatusOK, HealthResponse{Status: "ok", Database: "connected", Cache: "connected"}},
		{"cache disabled", up, nil, http.StatusOK, HealthResponse{Status: "ok", Database: "connected", Cache: "disabled"}},
		{"cache down", up, down, http.StatusOK, HealthResponse{Status: "ok", Database: "connected", Cache: "disconnected"}},
		{"database down", down, up, http.StatusServiceUnavailable, HealthResponse{Status: "degraded", Database: "disconnected", Cache: "connected"}},
		{"no database probe", nil, nil, http.StatusServiceUnavailable, HealthResponse{Status: "degraded", Database: "disconnected", Cache: "disabled"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, rec := newTestContext("")
			NewHealthController(tt.database, tt.cache).Check(ctx)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var got HealthResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.NotEmpty(t, got.Timestamp)
			got.Timestamp = ""
			assert.Equal(t, tt.want, got)
		})
	}
}
