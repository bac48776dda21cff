// Package cache implements TTL caches for weather responses
package cache

import (
	"time"

	"github.com/Maxim4ik118/genesis-weather-api/models"
)

// Cache defines the interface for weather caching operations
type Cache interface {
	Get(key string) (*models.WeatherResponse, bool)
	Set(key string, value *models.WeatherResponse, ttl time.Duration)
	Delete(key string)
	Clear()
}
