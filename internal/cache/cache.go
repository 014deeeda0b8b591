package cache

import (
	"context"
	"time"
)

// Cache fronts the public profile read paths. Implementations must treat
// corrupt entries as misses, never as errors.
type Cache interface {
	GetJSON(ctx context.Context, key string, dst any) (hit bool, err error)
	SetJSON(ctx context.Context, key string, val any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

// Key layout for cached profile reads. Every profile write invalidates the
// list key plus the touched handle key.
const KeyAllProfiles = "profiles:all"

func KeyHandle(handle string) string {
	return "profiles:handle:" + handle
}
