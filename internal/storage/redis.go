package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"example/storefront/internal/logger"
)

// Redis persists the state blob under a single Redis key
type Redis struct {
	client *redis.Client
	ctx    context.Context
}

func NewRedis(addr, password string, db int) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %v", err)
	}

	logger.Log.Infow("Redis connection established", "addr", addr, "db", db)
	return &Redis{client: client, ctx: ctx}, nil
}

func (r *Redis) Get(key string) (string, bool, error) {
	value, err := r.client.Get(r.ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		logger.Log.Errorw("Failed to read key from Redis", "key", key, "error", err)
		return "", false, err
	}
	return value, true, nil
}

func (r *Redis) Set(key, value string) error {
	if err := r.client.Set(r.ctx, key, value, 0).Err(); err != nil {
		logger.Log.Errorw("Failed to write key to Redis", "key", key, "error", err)
		return err
	}
	return nil
}

func (r *Redis) Close() error {
	return r.client.Close()
}
