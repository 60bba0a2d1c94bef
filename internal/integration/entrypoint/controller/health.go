package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

const healthProbeTimeout = 2 * time.Second

// HealthChecker reports whether a dependency is reachable.
type HealthChecker func(ctx context.Context) error

// HealthController serves GET /health.
type HealthController struct {
	database HealthChecker
	cache    HealthChecker
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Cache     string `json:"cache"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController wires the probes. A nil cache probe reports the cache
// as disabled.
func NewHealthController(database, cache HealthChecker) *HealthController {
	return &HealthController{database: database, cache: cache}
}

// probe runs check and names the outcome. A nil check is "disabled".
func probe(ctx context.Context, check HealthChecker) string {
	if check == nil {
		return "disabled"
	}
	if err := check(ctx); err != nil {
		return "disconnected"
	}
	return "connected"
}

// Check probes the database and the cache concurrently. Only the database
// decides the overall status; reads fall back to it when the cache is down.
func (h *HealthController) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthProbeTimeout)
	defer cancel()

	resp := HealthResponse{Status: "ok"}
	var g errgroup.Group
	g.Go(func() error {
		resp.Database = probe(ctx, h.database)
		return nil
	})
	g.Go(func() error {
		resp.Cache = probe(ctx, h.cache)
		return nil
	})
	_ = g.Wait()

	code := http.StatusOK
	if resp.Database != "connected" {
		// A missing database probe counts as down.
		resp.Database = "disconnected"
		resp.Status = "degraded"
		code = http.StatusServiceUnavailable
	}
	resp.Timestamp = time.Now().UTC().Format(time.RFC3339)
	c.JSON(code, resp)
}
