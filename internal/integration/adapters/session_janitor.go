package adapters

import (
	"context"
	"log/slog"
	"time"

	"github.com/finance-dashboard/backend/internal/application/adapter"
)

// SessionJanitor periodically deletes expired sessions and reset grants.
type SessionJanitor struct {
	sessions adapter.SessionRepository
	every    time.Duration
	now      func() time.Time
}

// NewSessionJanitor creates a janitor running every interval, hourly by default.
func NewSessionJanitor(sessions adapter.SessionRepository, every time.Duration) *SessionJanitor {
	if every <= 0 {
		every = time.Hour
	}
	return &SessionJanitor{
		sessions: sessions,
		every:    every,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Run purges once, then on every tick until ctx is cancelled.
func (j *SessionJanitor) Run(ctx context.Context) {
	ticker := time.NewTicker(j.every)
	defer ticker.Stop()

	for {
		j.Purge(ctx)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// Purge removes everything that expired before now.
func (j *SessionJanitor) Purge(ctx context.Context) int64 {
	purged, err := j.sessions.PurgeExpired(ctx, j.now())
	if err != nil {
		if ctx.Err() == nil {
			slog.Error("Failed to purge expired sessions", "error", err)
		}
		return 0
	}
	if purged > 0 {
		slog.Info("Purged expired sessions", "count", purged)
	}
	return purged
}
