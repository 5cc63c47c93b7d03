package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"

	"gcc-tools/logger"
	"gcc-tools/metrics"
	"gcc-tools/repository"
)

// renderCache memoizes rendered bytes (PNG, PDF) by a hash of what produced
// them. A nil repository disables caching. Cache errors never fail a render.
type renderCache struct {
	repo repository.CacheRepository
	ttl  time.Duration
}

func cacheKey(kind string, input any) (string, error) {
	data, err := json.Marshal(input)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s:%016x", kind, xxhash.Sum64(data)), nil
}

func (c renderCache) fetch(
	ctx context.Context,
	kind string,
	input any,
	render func() ([]byte, error),
) ([]byte, error) {
	if c.repo == nil {
		return render()
	}

	key, err := cacheKey(kind, input)
	if err != nil {
		logger.Warn("render cache key failed", zap.String("kind", kind), zap.Error(err))
		return render()
	}

	if b, ok := c.repo.Get(ctx, key); ok {
		metrics.ObserveCacheLookup(kind, true)
		return b, nil
	}
	metrics.ObserveCacheLookup(kind, false)

	b, err := render()
	if err != nil {
		return nil, err
	}

	if err := c.repo.Set(ctx, key, b, c.ttl); err != nil {
		logger.Warn("render cache store failed", zap.String("key", key), zap.Error(err))
	}
	return b, nil
}
