package session

import (
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/leeway-ai/store-assistant/internal/config"
)

// NewStore builds the session store named by the config driver.
func NewStore(cfg config.SessionConfig) (Store, error) {
	switch cfg.Driver {
	case "memory", "":
		return NewMemoryStore(), nil
	case "redis":
		if cfg.RedisURL == "" {
			return nil, fmt.Errorf("%w: redis driver requires REDIS_URL", ErrInvalidConfig)
		}
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		return NewRedisStore(redis.NewClient(opts), cfg.TTL), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidDriver, cfg.Driver)
	}
}
