// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Cache resources. Keys are namespaced per resource and user so a user's
// entries can be dropped together.
const (
	CacheResourceSummary = "summary"
	CacheResourceAnnual  = "annual"
	CacheResourceAlerts  = "alerts"
	CacheResourceQuotes  = "quotes"
	CacheResourceRates   = "rates"
)

// CacheKey builds the key for a user scoped cache entry.
func CacheKey(resource string, userID uuid.UUID, scope string) string {
	return fmt.Sprintf("fd:%s:%s:%s", resource, userID, scope)
}

// SummaryCache stores derived read models such as dashboard summaries.
type SummaryCache interface {
	// Get loads the value stored at key into dest. It reports false on a miss.
	Get(ctx context.Context, key string, dest any) (bool, error)

	// Set stores value at key for ttl.
	Set(ctx context.Context, key string, value any, ttl time.Duration) error

	// InvalidateUser drops every entry cached for the user.
	InvalidateUser(ctx context.Context, userID uuid.UUID) error

	// Ping reports whether the cache backend is reachable.
	Ping(ctx context.Context) error
}
