package utils

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// NewCacheClient builds the optional Redis read cache. A missing address or
// an unreachable server disables caching rather than failing startup; callers
// must tolerate a nil client.
func NewCacheClient(addr, password string, db int) *redis.Client {
	if addr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		GetLogger().Warn("Redis unavailable, caching disabled", zap.String("addr", addr), zap.Error(err))
		return nil
	}
	return client
}
