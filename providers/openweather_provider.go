package providers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/Maxim4ik118/genesis-weather-api/config"
	"github.com/Maxim4ik118/genesis-weather-api/errors"
	"github.com/Maxim4ik118/genesis-weather-api/models"
)

// OpenWeatherMapProvider implements WeatherProvider for OpenWeatherMap
type OpenWeatherMapProvider struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

type openWeatherMapResponse struct {
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity float64 `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
}

// NewOpenWeatherMapProvider creates a new OpenWeatherMap provider
func NewOpenWeatherMapProvider(config *config.WeatherConfig) *OpenWeatherMapProvider {
	return &OpenWeatherMapProvider{
		apiKey:  config.OpenWeatherMapKey,
		baseURL: config.OpenWeatherMapURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// GetCurrentWeather retrieves weather data from OpenWeatherMap
func (p *OpenWeatherMapProvider) GetCurrentWeather(city string) (*models.WeatherResponse, error) {
	if city == "" {
		return nil, errors.NewValidationError("city cannot be empty")
	}

	reqURL := fmt.Sprintf("%s?q=%s&appid=%s&units=metric", p.baseURL, url.QueryEscape(city), p.apiKey)

	resp, err := p.client.Get(reqURL)
	if err != nil {
		return nil, errors.NewExternalAPIError("failed to get weather data", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusNotFound {
		return nil, errors.NewNotFoundError("city not found")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewExternalAPIError(fmt.Sprintf("openweathermap returned status code %d", resp.StatusCode), nil)
	}

	var result openWeatherMapResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, errors.NewExternalAPIError("failed to decode weather data", err)
	}

	description := "No description"
	if len(result.Weather) > 0 {
		description = result.Weather[0].Description
	}

	return &models.WeatherResponse{
		Temperature: result.Main.Temp,
		Humidity:    result.Main.Humidity,
		Description: description,
	}, nil
}
