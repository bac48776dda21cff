package providers

import (
	"testing"
	"time"

	apperrors "github.com/Maxim4ik118/genesis-weather-api/errors"
	"github.com/Maxim4ik118/genesis-weather-api/models"
	"github.com/Maxim4ik118/genesis-weather-api/providers/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingProvider struct {
	calls   int
	weather *models.WeatherResponse
	err     error
}

func (p *countingProvider) GetCurrentWeather(city string) (*models.WeatherResponse, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	return p.weather, nil
}

func TestCachedWeatherProvider(t *testing.T) {
	weather := &models.WeatherResponse{Temperature: 15.0, Humidity: 76.0, Description: "Partly cloudy"}

	t.Run("SecondLookupServedFromCache", func(t *testing.T) {
		upstream := &countingProvider{weather: weather}
		memCache := cache.NewMemoryCache()
		defer memCache.Stop()
		cached := NewCachedWeatherProvider(upstream, memCache, "memory", 5*time.Minute)

		first, err := cached.GetCurrentWeather("London")
		require.NoError(t, err)
		second, err := cached.GetCurrentWeather("London")
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, 1, upstream.calls)
	})

	t.Run("KeyNormalization", func(t *testing.T) {
		upstream := &countingProvider{weather: weather}
		memCache := cache.NewMemoryCache()
		defer memCache.Stop()
		cached := NewCachedWeatherProvider(upstream, memCache, "memory", 5*time.Minute)

		_, err := cached.GetCurrentWeather("London")
		require.NoError(t, err)
		_, err = cached.GetCurrentWeather("  LONDON ")
		require.NoError(t, err)

		assert.Equal(t, 1, upstream.calls)
	})

	t.Run("ErrorsAreNotCached", func(t *testing.T) {
		upstream := &countingProvider{err: apperrors.NewExternalAPIError("down", nil)}
		memCache := cache.NewMemoryCache()
		defer memCache.Stop()
		cached := NewCachedWeatherProvider(upstream, memCache, "memory", 5*time.Minute)

		_, err := cached.GetCurrentWeather("London")
		assert.Error(t, err)
		_, err = cached.GetCurrentWeather("London")
		assert.Error(t, err)

		assert.Equal(t, 2, upstream.calls)
	})
}
