package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"fnf/internal/platform/config"
)

// Connect returns nil without an error when REDIS_ADDR is unset; callers treat a nil client
// as "no cache".
func Connect(ctx context.Context, cfg config.Config, logger *zap.Logger, maxRetries int) (*redis.Client, error) {
	if cfg.RedisAddr == "" {
		return nil, nil
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxRetries < 1 {
		maxRetries = 1
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	var err error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		err = client.Ping(pingCtx).Err()
		cancel()
		if err == nil {
			logger.Info("redis connected", zap.String("addr", cfg.RedisAddr))
			return client, nil
		}
		logger.Warn("redis not ready", zap.Int("attempt", attempt), zap.Error(err))
		if attempt < maxRetries {
			select {
			case <-ctx.Done():
				_ = client.Close()
				return nil, ctx.Err()
			case <-time.After(time.Duration(attempt) * 500 * time.Millisecond):
			}
		}
	}
	_ = client.Close()
	return nil, fmt.Errorf("connect redis %s: %w", cfg.RedisAddr, err)
}
