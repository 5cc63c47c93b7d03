package repository

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// MemoryCache is an in-process CacheRepository. Expired entries are dropped
// lazily on read and in bulk once the map grows past maxEntries.
type MemoryCache struct {
	mu         sync.Mutex
	data       map[string]memoryEntry
	maxEntries int
	now        func() time.Time
}

const defaultMaxEntries = 1024

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		data:       make(map[string]memoryEntry),
		maxEntries: defaultMaxEntries,
		now:        time.Now,
	}
}

func (m *MemoryCache) Get(_ context.Context, key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.data[key]
	if !ok {
		return nil, false
	}
	if !e.expiresAt.IsZero() && m.now().After(e.expiresAt) {
		delete(m.data, key)
		return nil, false
	}
	return e.value, true
}

func (m *MemoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.data) >= m.maxEntries {
		m.evict()
	}

	e := memoryEntry{value: value}
	if ttl > 0 {
		e.expiresAt = m.now().Add(ttl)
	}
	m.data[key] = e
	return nil
}

// evict removes expired entries, and everything if that was not enough.
// Callers hold mu.
func (m *MemoryCache) evict() {
	now := m.now()
	for k, e := range m.data {
		if !e.expiresAt.IsZero() && now.After(e.expiresAt) {
			delete(m.data, k)
		}
	}
	if len(m.data) >= m.maxEntries {
		clear(m.data)
	}
}

// Len reports the number of stored entries, expired or not.
func (m *MemoryCache) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.data)
}
