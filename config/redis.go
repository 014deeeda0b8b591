package config

import (
	"context"
	"strings"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis dials the cache. Accepts either a bare host:port or a
// redis:// URL.
func ConnectRedis(cfg Config) (*redis.Client, error) {
	var client *redis.Client
	if strings.HasPrefix(cfg.RedisAddr, "redis://") || strings.HasPrefix(cfg.RedisAddr, "rediss://") {
		opt, err := redis.ParseURL(cfg.RedisAddr)
		if err != nil {
			return nil, err
		}
		client = redis.NewClient(opt)
	} else {
		client = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	}

	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return nil, err
	}
	return client, nil
}
