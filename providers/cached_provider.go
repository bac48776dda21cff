package providers

import (
	"log/slog"
	"strings"
	"time"

	"github.com/Maxim4ik118/genesis-weather-api/metrics"
	"github.com/Maxim4ik118/genesis-weather-api/models"
)

// CachedWeatherProvider decorates a WeatherProvider with a TTL cache. It is
// used only on the public weather read path; signup validation and the
// notification dispatcher always hit the live provider.
type CachedWeatherProvider struct {
	provider  WeatherProvider
	cache     Cache
	cacheType string
	ttl       time.Duration
}

// NewCachedWeatherProvider wraps provider with the given cache
func NewCachedWeatherProvider(provider WeatherProvider, cache Cache, cacheType string, ttl time.Duration) *CachedWeatherProvider {
	return &CachedWeatherProvider{
		provider:  provider,
		cache:     cache,
		cacheType: cacheType,
		ttl:       ttl,
	}
}

// GetCurrentWeather returns a cached reading when fresh, otherwise fetches
// from the underlying provider and caches the result
func (p *CachedWeatherProvider) GetCurrentWeather(city string) (*models.WeatherResponse, error) {
	key := cacheKey(city)

	if weather, found := p.cache.Get(key); found {
		metrics.RecordCacheHit(p.cacheType)
		slog.Debug("weather cache hit", "city", city)
		return weather, nil
	}
	metrics.RecordCacheMiss(p.cacheType)

	weather, err := p.provider.GetCurrentWeather(city)
	if err != nil {
		return nil, err
	}

	p.cache.Set(key, weather, p.ttl)
	return weather, nil
}

func cacheKey(city string) string {
	return "weather:" + strings.ToLower(strings.TrimSpace(city))
}
