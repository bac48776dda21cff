package providers

import (
	"github.com/Maxim4ik118/genesis-weather-api/models"
	"github.com/Maxim4ik118/genesis-weather-api/providers/cache"
)

// WeatherProvider defines the interface for weather data providers
type WeatherProvider interface {
	GetCurrentWeather(city string) (*models.WeatherResponse, error)
}

// EmailProvider defines the interface for email providers
type EmailProvider interface {
	SendEmail(to, subject, body string, isHTML bool) error
}

// Cache is an alias to avoid circular imports
type Cache = cache.Cache
