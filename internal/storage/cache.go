package storage

import (
	"context"
	"time"
)

type CacheType string

const (
	CacheRedis  CacheType = "redis"
	CacheMemory CacheType = "memory"
	CacheNone   CacheType = "none"
)

// ResponseCache is a key/value store with per-entry expiry.
type ResponseCache interface {
	// Get reports false when the key is absent or expired.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
