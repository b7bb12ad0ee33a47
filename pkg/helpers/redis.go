package helpers

import (
	"github.com/redis/go-redis/v9"
)

// NewRedisClient initializes a redis client; addr may be empty, in which
// case callers should treat rate limiting as disabled.
func NewRedisClient(addr, password string, db int) *redis.Client {
	if addr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}
