package characters

import (
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/dying-condition/internal/uuid"
)

// NewRedis creates a new Redis-backed character repository with UUID IDs
func NewRedis(client redis.UniversalClient) Repository {
	return NewRedisRepository(&RedisRepoConfig{
		Client:        client,
		UUIDGenerator: uuid.NewGoogleUUIDGenerator(),
	})
}
