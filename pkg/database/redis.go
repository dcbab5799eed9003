package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"career_path_backend/internal/config"

	"github.com/go-redis/redis/v8"
)

const redisDialTimeout = 3 * time.Second

// InitRedis connects the leaderboard cache. The caller treats a failure
// here as a degraded mode, not a fatal one, so the dial fails fast.
func InitRedis(cfg *config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  redisDialTimeout,
		PoolSize:     50,
		MinIdleConns: 5,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisDialTimeout)
	defer cancel()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		return nil, err
	}

	log.Println("Redis connection established")
	return rdb, nil
}
