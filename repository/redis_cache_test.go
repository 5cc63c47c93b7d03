package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRedisCache connects to GCCTOOLS_CACHE_REDIS_ADDR and skips the test
// when it is unset.
func newTestRedisCache(t *testing.T) (*RedisCache, *redis.Client) {
	t.Helper()

	addr := os.Getenv("GCCTOOLS_CACHE_REDIS_ADDR")
	if addr == "" {
		t.Skip("GCCTOOLS_CACHE_REDIS_ADDR not set")
	}

	cache := NewRedisCache(addr, os.Getenv("GCCTOOLS_CACHE_REDIS_PASSWORD"), 0)
	t.Cleanup(func() { _ = cache.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, cache.Ping(ctx))

	raw := redis.NewClient(&redis.Options{Addr: addr, Password: os.Getenv("GCCTOOLS_CACHE_REDIS_PASSWORD")})
	t.Cleanup(func() { _ = raw.Close() })
	return cache, raw
}

func TestRedisCache_SetGet(t *testing.T) {
	cache, raw := newTestRedisCache(t)
	ctx := context.Background()

	key := "test:" + uuid.NewString()
	t.Cleanup(func() { raw.Del(ctx, redisKeyPrefix+key) })

	_, ok := cache.Get(ctx, key)
	assert.False(t, ok)

	require.NoError(t, cache.Set(ctx, key, []byte("png-bytes"), time.Minute))

	v, ok := cache.Get(ctx, key)
	require.True(t, ok)
	assert.Equal(t, []byte("png-bytes"), v)

	stored, err := raw.Get(ctx, redisKeyPrefix+key).Bytes()
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), stored)

	ttl, err := raw.TTL(ctx, redisKeyPrefix+key).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, time.Minute)
}

func TestRedisCache_Expires(t *testing.T) {
	cache, _ := newTestRedisCache(t)
	ctx := context.Background()

	key := "test:" + uuid.NewString()
	require.NoError(t, cache.Set(ctx, key, []byte("pdf"), 50*time.Millisecond))

	assert.Eventually(t, func() bool {
		_, ok := cache.Get(ctx, key)
		return !ok
	}, 2*time.Second, 20*time.Millisecond)
}
