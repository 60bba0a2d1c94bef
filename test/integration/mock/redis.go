package mock

import (
	"sync"

	"github.com/alicebob/miniredis/v2"
)

var redisOnce sync.Once
var redisServer *miniredis.Miniredis

// Redis wraps an in-process Redis server shared by the suite.
type Redis struct {
	server *miniredis.Miniredis
}

// NewRedis starts miniredis on first use.
func NewRedis() *Redis {
	redisOnce.Do(func() {
		srv, err := miniredis.Run()
		if err != nil {
			panic(err)
		}
		redisServer = srv
	})
	return &Redis{server: redisServer}
}

// URL returns a redis:// URL pointing at the server.
func (r *Redis) URL() string {
	return "redis://" + r.server.Addr()
}

// Keys lists the stored keys.
func (r *Redis) Keys() []string {
	return r.server.Keys()
}

// Clear drops every key.
func (r *Redis) Clear() {
	r.server.FlushAll()
}

// Close stops the server.
func (r *Redis) Close() {
	r.server.Close()
}
