package utils

import (
	"context"
	"net"
	"strconv"
	"time"

	"github.com/cppla/inkpost/config"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NewRedis connects to the configured Redis. It returns nil when REDIS_HOST is empty
// or the server is unreachable, and callers fall back to in-process behaviour.
func NewRedis(cfg config.AppConfig, lg *zap.Logger) *redis.Client {
	if cfg.RedisHost == "" {
		return nil
	}
	rc := redis.NewClient(&redis.Options{
		Addr:         net.JoinHostPort(cfg.RedisHost, strconv.Itoa(cfg.RedisPort)),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		DialTimeout:  3 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := rc.Ping(ctx).Err(); err != nil {
		lg.Warn("redis unavailable, caching disabled", zap.String("addr", rc.Options().Addr), zap.Error(err))
		_ = rc.Close()
		return nil
	}
	return rc
}
