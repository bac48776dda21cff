package cache

import (
	"sync"
	"time"

	"github.com/Maxim4ik118/genesis-weather-api/models"
)

type cacheEntry struct {
	weather   models.WeatherResponse
	expiresAt time.Time
}

// MemoryCache is an in-process TTL cache for weather responses
type MemoryCache struct {
	data   map[string]cacheEntry
	mutex  sync.RWMutex
	ticker *time.Ticker
	stopCh chan struct{}
}

// NewMemoryCache creates a memory cache with a background cleanup loop
func NewMemoryCache() *MemoryCache {
	cache := &MemoryCache{
		data:   make(map[string]cacheEntry),
		ticker: time.NewTicker(5 * time.Minute),
		stopCh: make(chan struct{}),
	}

	go cache.cleanup()
	return cache
}

func (c *MemoryCache) Get(key string) (*models.WeatherResponse, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	entry, exists := c.data[key]
	if !exists {
		return nil, false
	}

	if time.Now().After(entry.expiresAt) {
		return nil, false
	}

	weather := entry.weather
	return &weather, true
}

func (c *MemoryCache) Set(key string, value *models.WeatherResponse, ttl time.Duration) {
	if value == nil {
		return
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.data[key] = cacheEntry{
		weather:   *value,
		expiresAt: time.Now().Add(ttl),
	}
}

func (c *MemoryCache) Delete(key string) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	delete(c.data, key)
}

func (c *MemoryCache) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.data = make(map[string]cacheEntry)
}

// Stop terminates the background cleanup loop
func (c *MemoryCache) Stop() {
	close(c.stopCh)
}

func (c *MemoryCache) cleanup() {
	for {
		select {
		case <-c.ticker.C:
			c.removeExpiredEntries()
		case <-c.stopCh:
			c.ticker.Stop()
			return
		}
	}
}

func (c *MemoryCache) removeExpiredEntries() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	now := time.Now()
	for key, entry := range c.data {
		if now.After(entry.expiresAt) {
			delete(c.data, key)
		}
	}
}
