package service

import (
	"github.com/Maxim4ik118/genesis-weather-api/models"
)

// SubscriptionRepositoryInterface defines the persistence operations the
// subscription service depends on
type SubscriptionRepositoryInterface interface {
	FindByEmailAndCity(email, city string) (*models.Subscription, error)
	FindByToken(token string) (*models.Subscription, error)
	FindConfirmedByFrequency(frequency string) ([]models.Subscription, error)
	Create(subscription *models.Subscription) error
	Confirm(token string) error
	Delete(subscription *models.Subscription) error
}

// WeatherRecordRepositoryInterface defines the persistence operations for the
// weather history log
type WeatherRecordRepositoryInterface interface {
	Create(city string, weather *models.WeatherResponse) error
	RecentByCity(city string, limit int) ([]models.WeatherRecord, error)
}

// WeatherServiceInterface defines the interface for weather operations
type WeatherServiceInterface interface {
	GetWeather(city string) (*models.WeatherResponse, error)
}

// EmailServiceInterface defines the interface for outbound email operations
type EmailServiceInterface interface {
	SendConfirmationEmail(email, city, token string) error
	SendWeatherUpdateEmail(email, city string, weather *models.WeatherResponse, token string) error
	SendUnsubscribeConfirmationEmail(email, city string) error
}

// SubscriptionManagerInterface handles subscription creation and removal
type SubscriptionManagerInterface interface {
	Subscribe(req *models.SubscriptionRequest) (string, error)
	Unsubscribe(token string) (string, error)
}

// ConfirmationServiceInterface handles subscription confirmations
type ConfirmationServiceInterface interface {
	ConfirmSubscription(token string) (string, error)
}

// NotificationServiceInterface handles sending periodic notifications
type NotificationServiceInterface interface {
	SendWeatherUpdate(frequency string) error
}

// SubscriptionServiceInterface is the combined surface consumed by the API
// server and the scheduler
type SubscriptionServiceInterface interface {
	SubscriptionManagerInterface
	ConfirmationServiceInterface
	NotificationServiceInterface
}
