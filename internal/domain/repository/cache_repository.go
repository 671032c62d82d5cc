package repository

import (
	"context"
	"time"
)

// CacheRepository is a byte-level cache used for computed blackspot and stats
// payloads, keyed by a hash of the request that produced them.
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
