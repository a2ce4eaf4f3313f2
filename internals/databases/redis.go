package database

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"exeat_backend/internals/configs"
)

var Redis *redis.Client

// ConnectRedis is optional: without REDIS_URL the service keeps token
// revocation in Postgres.
func ConnectRedis() *redis.Client {
	if configs.RedisURL == "" {
		configs.Log().Info("REDIS_URL not set, token blacklist stays in the database")
		return nil
	}
	opts, err := redis.ParseURL(configs.RedisURL)
	if err != nil {
		configs.Log().Error("invalid REDIS_URL, falling back to database blacklist", zap.Error(err))
		return nil
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		configs.Log().Error("redis ping failed, falling back to database blacklist", zap.Error(err))
		_ = client.Close()
		return nil
	}
	Redis = client
	configs.Log().Info("✅ Redis connected.")
	return client
}

func CloseRedis() {
	if Redis != nil {
		_ = Redis.Close()
	}
}
