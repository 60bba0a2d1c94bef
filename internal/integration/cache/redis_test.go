package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-dashboard/backend/internal/application/adapter"
)

type summary struct {
	Total string `json:"total"`
	Count int    `json:"count"`
}

func newTestCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisCache(client), mr
}

func TestRedisCacheGetSet(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestCache(t)
	key := adapter.CacheKey(adapter.CacheResourceSummary, uuid.New(), "2025-03")

	var got summary
	hit, err := c.Get(ctx, key, &got)
	require.NoError(t, err)
	assert.False(t, hit)

	require.NoError(t, c.Set(ctx, key, summary{Total: "120.50", Count: 3}, time.Minute))

	hit, err = c.Get(ctx, key, &got)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, summary{Total: "120.50", Count: 3}, got)

	mr.FastForward(2 * time.Minute)
	hit, err = c.Get(ctx, key, &got)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestRedisCacheCorruptValueIsAMiss(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestCache(t)
	key := adapter.CacheKey(adapter.CacheResourceAnnual, uuid.New(), "2025")
	require.NoError(t, mr.Set(key, "{not json"))

	var got summary
	hit, err := c.Get(ctx, key, &got)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.False(t, mr.Exists(key))
}

func TestRedisCacheInvalidateUser(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestCache(t)
	user := uuid.New()
	other := uuid.New()

	keys := []string{
		adapter.CacheKey(adapter.CacheResourceSummary, user, "2025-03"),
		adapter.CacheKey(adapter.CacheResourceSummary, user, "2025-04"),
		adapter.CacheKey(adapter.CacheResourceAnnual, user, "2025"),
		adapter.CacheKey(adapter.CacheResourceAlerts, user, "2025-03"),
	}
	for _, k := range keys {
		require.NoError(t, c.Set(ctx, k, summary{Count: 1}, time.Hour))
	}
	otherKey := adapter.CacheKey(adapter.CacheResourceSummary, other, "2025-03")
	require.NoError(t, c.Set(ctx, otherKey, summary{Count: 2}, time.Hour))

	require.NoError(t, c.InvalidateUser(ctx, user))

	for _, k := range keys {
		assert.False(t, mr.Exists(k), k)
	}
	assert.True(t, mr.Exists(otherKey))

	require.NoError(t, c.InvalidateUser(ctx, user))
}

func TestRedisCachePing(t *testing.T) {
	c, mr := newTestCache(t)
	require.NoError(t, c.Ping(context.Background()))

	mr.Close()
	assert.Error(t, c.Ping(context.Background()))
}

func TestNoop(t *testing.T) {
	ctx := context.Background()
	var c adapter.SummaryCache = NewNoop()

	require.NoError(t, c.Set(ctx, "k", 1, time.Minute))
	var v int
	hit, err := c.Get(ctx, "k", &v)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.ErrorIs(t, c.Ping(ctx), ErrCacheDisabled)
}

func TestNewRedisClient(t *testing.T) {
	client, err := NewRedisClient("redis://localhost:6379/2", "secret", 0)
	require.NoError(t, err)
	assert.Equal(t, "secret", client.Options().Password)
	assert.Equal(t, 2, client.Options().DB)
	_ = client.Close()

	_, err = NewRedisClient("://bad", "", 0)
	assert.Error(t, err)
}
