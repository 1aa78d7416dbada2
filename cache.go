package main

import (
	"context"
	"sync"
	"time"
)

// Cache stores raw METAR text keyed by station code. Get returns the cached
// text if present and not expired; Set stores it with a TTL.
type Cache interface {
	Get(ctx context.Context, station string) (string, bool, error)
	Set(ctx context.Context, station string, raw string, ttl time.Duration) error
}

// cacheEntry stores cached text with its expiration timestamp.
type cacheEntry struct {
	raw       string
	expiresAt time.Time
}

// InMemoryCache implements Cache with a mutex-guarded map. Expired entries
// are removed on access.
type InMemoryCache struct {
	mu   sync.RWMutex
	data map[string]cacheEntry
}

// NewInMemoryCache creates a new in-memory cache instance.
func NewInMemoryCache() *InMemoryCache {
	return &InMemoryCache{
		data: make(map[string]cacheEntry),
	}
}

// Get retrieves cached text for the station if present and not expired.
func (c *InMemoryCache) Get(ctx context.Context, station string) (string, bool, error) {
	c.mu.RLock()
	entry, ok := c.data[station]
	c.mu.RUnlock()
	if !ok {
		return "", false, nil
	}

	if time.Now().After(entry.expiresAt) {
		c.mu.Lock()
		delete(c.data, station)
		c.mu.Unlock()
		return "", false, nil
	}

	return entry.raw, true, nil
}

// Set stores text in cache for the station with the specified TTL.
func (c *InMemoryCache) Set(ctx context.Context, station string, raw string, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[station] = cacheEntry{
		raw:       raw,
		expiresAt: time.Now().Add(ttl),
	}
	return nil
}
