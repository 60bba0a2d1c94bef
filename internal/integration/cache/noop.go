package cache

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/finance-dashboard/backend/internal/application/adapter"
)

// ErrCacheDisabled is reported by Noop.Ping.
var ErrCacheDisabled = errors.New("cache disabled")

// Noop is used when caching is turned off. Every read misses.
type Noop struct{}

// NewNoop creates a disabled cache.
func NewNoop() Noop {
	return Noop{}
}

func (Noop) Get(context.Context, string, any) (bool, error)        { return false, nil }
func (Noop) Set(context.Context, string, any, time.Duration) error { return nil }
func (Noop) InvalidateUser(context.Context, uuid.UUID) error       { return nil }
func (Noop) Ping(context.Context) error                            { return ErrCacheDisabled }

var _ adapter.SummaryCache = Noop{}
