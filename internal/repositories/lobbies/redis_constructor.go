package lobbies

import (
	"time"

	"github.com/KirkDiggler/civ-draft-bot/internal/catalog"
	"github.com/redis/go-redis/v9"
)

// NewRedis creates a new Redis-backed lobby repository with default configuration
func NewRedis(client redis.UniversalClient, ttl time.Duration) Repository {
	return NewRedisRepository(&RedisRepoConfig{
		Client:   client,
		Catalog:  catalog.Default(),
		LobbyTTL: ttl,
	})
}
