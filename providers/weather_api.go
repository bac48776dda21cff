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

// WeatherAPIProvider implements WeatherProvider for WeatherAPI.com
type WeatherAPIProvider struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

type weatherAPIResponse struct {
	Current struct {
		TempC     float64 `json:"temp_c"`
		Humidity  float64 `json:"humidity"`
		Condition struct {
			Text string `json:"text"`
		} `json:"condition"`
	} `json:"current"`
}

// NewWeatherAPIProvider creates a new WeatherAPI.com provider
func NewWeatherAPIProvider(config *config.WeatherConfig) *WeatherAPIProvider {
	return &WeatherAPIProvider{
		apiKey:  config.APIKey,
		baseURL: config.BaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// GetCurrentWeather retrieves weather data from WeatherAPI.com
func (p *WeatherAPIProvider) GetCurrentWeather(city string) (*models.WeatherResponse, error) {
	if city == "" {
		return nil, errors.NewValidationError("city cannot be empty")
	}

	reqURL := fmt.Sprintf("%s/current.json?key=%s&q=%s&aqi=no", p.baseURL, p.apiKey, url.QueryEscape(city))

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
		return nil, errors.NewExternalAPIError(fmt.Sprintf("weather API returned status code %d", resp.StatusCode), nil)
	}

	var result weatherAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, errors.NewExternalAPIError("failed to decode weather data", err)
	}

	return &models.WeatherResponse{
		Temperature: result.Current.TempC,
		Humidity:    result.Current.Humidity,
		Description: result.Current.Condition.Text,
	}, nil
}
