package middleware

import (
	"context"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
	"github.com/finance-dashboard/backend/internal/integration/entrypoint/dto"
)

const (
	defaultMaxAttempts    = 5
	defaultWindowDuration = time.Minute
)

// counter counts hits per key in fixed windows. hit returns the count in
// the current window and the time left until it resets.
type counter interface {
	hit(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error)
	reset(ctx context.Context) error
}

// RateLimiter throttles requests per client IP with a fixed window.
type RateLimiter struct {
	counter     counter
	maxAttempts int64
	window      time.Duration
}

// NewRateLimiter keeps counts in process memory. Non-positive values fall
// back to 5 attempts per minute.
func NewRateLimiter(maxAttempts int, window time.Duration) *RateLimiter {
	return newRateLimiter(&memoryCounter{windows: map[string]fixedWindow{}, now: time.Now}, maxAttempts, window)
}

// NewRedisRateLimiter shares counts between instances through Redis.
func NewRedisRateLimiter(client *redis.Client, prefix string, maxAttempts int, window time.Duration) *RateLimiter {
	return newRateLimiter(&redisCounter{client: client, prefix: prefix}, maxAttempts, window)
}

func newRateLimiter(c counter, maxAttempts int, window time.Duration) *RateLimiter {
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	if window <= 0 {
		window = defaultWindowDuration
	}
	return &RateLimiter{counter: c, maxAttempts: int64(maxAttempts), window: window}
}

// Middleware rejects a client with 429 once it used up its attempts. When the
// counter store fails the request is let through.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		n, resetIn, err := rl.counter.hit(c.Request.Context(), c.ClientIP(), rl.window)
		if err != nil {
			slog.Warn("Rate limit counter unavailable", "error", err)
			c.Next()
			return
		}
		if n > rl.maxAttempts {
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(resetIn.Seconds()))))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many requests. Please try again later.",
				Code:  string(domainerror.ErrCodeRateLimited),
			})
			return
		}
		c.Next()
	}
}

// Reset forgets every count.
func (rl *RateLimiter) Reset() {
	if err := rl.counter.reset(context.Background()); err != nil {
		slog.Warn("Failed to reset rate limits", "error", err)
	}
}

// RunCleanup drops expired in-memory windows once per window until ctx is
// cancelled. Redis expires its keys by itself.
func (rl *RateLimiter) RunCleanup(ctx context.Context) {
	mem, ok := rl.counter.(*memoryCounter)
	if !ok {
		return
	}
	ticker := time.NewTicker(rl.window)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			mem.sweep()
		}
	}
}

type fixedWindow struct {
	hits  int64
	until time.Time
}

type memoryCounter struct {
	mu      sync.Mutex
	windows map[string]fixedWindow
	now     func() time.Time
}

func (m *memoryCounter) hit(_ context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	w, ok := m.windows[key]
	if !ok || !now.Before(w.until) {
		w = fixedWindow{until: now.Add(window)}
	}
	w.hits++
	m.windows[key] = w
	return w.hits, w.until.Sub(now), nil
}

func (m *memoryCounter) reset(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.windows = map[string]fixedWindow{}
	return nil
}

func (m *memoryCounter) sweep() {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	for key, w := range m.windows {
		if !now.Before(w.until) {
			delete(m.windows, key)
		}
	}
}

func (m *memoryCounter) size() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.windows)
}

// redisCounter keeps one INCR key per client, expiring with its window.
type redisCounter struct {
	client *redis.Client
	prefix string
}

func (r *redisCounter) hit(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	key = r.prefix + key
	pipe := r.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	ttl := pipe.PTTL(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, 0, err
	}

	left := ttl.Val()
	if left < 0 {
		// First hit of the window, or a key that lost its expiry.
		if err := r.client.PExpire(ctx, key, window).Err(); err != nil {
			return 0, 0, err
		}
		left = window
	}
	return incr.Val(), left, nil
}

func (r *redisCounter) reset(ctx context.Context) error {
	iter := r.client.Scan(ctx, 0, r.prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := r.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
