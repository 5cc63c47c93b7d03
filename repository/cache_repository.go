package repository

import (
	"context"
	"time"
)

// CacheRepository stores rendered artifacts (charts, PDFs) keyed by a hash
// of the input that produced them.
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
