package redis

import (
	"fmt"

	"autocare-service/config"

	"github.com/redis/go-redis/v9"
)

// SetupClient builds the redis client shared by the sequence counter and
// the redsync lock pool.
func SetupClient(cfg *config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}
