package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// Config carries all process-wide settings. It is resolved once at startup
// and injected where needed; nothing reads the environment after Load.
type Config struct {
	Port      string
	MongoURI  string
	MongoDB   string
	RedisAddr string
	JWTSecret string
	TokenTTL  time.Duration
}

func Load() (Config, error) {
	cfg := Config{
		Port:      getenv("PORT", "8080"),
		MongoURI:  os.Getenv("MONGO_URI"),
		MongoDB:   getenv("MONGO_DB", "devfolio"),
		RedisAddr: os.Getenv("REDIS_ADDR"),
		JWTSecret: os.Getenv("JWT_SECRET"),
		TokenTTL:  time.Hour,
	}

	if cfg.MongoURI == "" {
		return cfg, errors.New("MONGO_URI environment variable is not set")
	}
	if cfg.JWTSecret == "" {
		return cfg, errors.New("JWT_SECRET environment variable is not set")
	}
	if v := os.Getenv("TOKEN_TTL_SECONDS"); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil || secs <= 0 {
			return cfg, errors.New("TOKEN_TTL_SECONDS must be a positive integer")
		}
		cfg.TokenTTL = time.Duration(secs) * time.Second
	}
	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
