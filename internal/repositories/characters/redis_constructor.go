package characters

import (
	"github.com/redis/go-redis/v9"

	"github.com/leohylee/tes-companion/internal/clock"
)

// NewRedis creates a new Redis-backed character repository
func NewRedis(client redis.UniversalClient) Repository {
	return NewRedisRepository(&RedisRepoConfig{
		Client:       client,
		TimeProvider: clock.System{},
	})
}
