package providers

import (
	"time"

	"github.com/Maxim4ik118/genesis-weather-api/config"
	"github.com/Maxim4ik118/genesis-weather-api/errors"
	"github.com/Maxim4ik118/genesis-weather-api/providers/cache"
)

// NewWeatherProvider builds the configured primary weather provider
func NewWeatherProvider(cfg *config.WeatherConfig) (WeatherProvider, error) {
	switch cfg.Provider {
	case "weatherapi":
		return NewWeatherAPIProvider(cfg), nil
	case "openweathermap":
		return NewOpenWeatherMapProvider(cfg), nil
	default:
		return nil, errors.NewConfigurationError("unknown weather provider: "+cfg.Provider, nil)
	}
}

// NewWeatherCache builds the configured cache backend, or nil when caching
// is disabled
func NewWeatherCache(cfg *config.CacheConfig) (Cache, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	switch cfg.Type {
	case "memory":
		return cache.NewMemoryCache(), nil
	case "redis":
		redisCache, err := cache.NewRedisCache(&cache.RedisCacheConfig{
			Addr:         cfg.RedisAddr,
			Password:     cfg.RedisPassword,
			DB:           cfg.RedisDB,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		})
		if err != nil {
			return nil, errors.NewConfigurationError("connect to redis cache", err)
		}
		return redisCache, nil
	default:
		return nil, errors.NewConfigurationError("unknown cache type: "+cfg.Type, nil)
	}
}
