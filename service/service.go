package service

import (
	"log"

	"github.com/Maxim4ik118/genesis-weather-api/errors"
	"github.com/Maxim4ik118/genesis-weather-api/metrics"
	"github.com/Maxim4ik118/genesis-weather-api/models"
	"github.com/Maxim4ik118/genesis-weather-api/providers"
)

// Subscription endpoint messages
const (
	MsgSubscriptionCreated = "Subscription created. Please check your email to confirm."
	MsgAlreadyConfirmed    = "Subscription already confirmed"
	MsgConfirmed           = "Subscription confirmed successfully"
	MsgUnsubscribed        = "Unsubscribed successfully"
)

// WeatherService handles weather-related operations
type WeatherService struct {
	provider providers.WeatherProvider
}

// NewWeatherService creates a new weather service with the specified provider
func NewWeatherService(provider providers.WeatherProvider) *WeatherService {
	return &WeatherService{
		provider: provider,
	}
}

// GetWeather retrieves current weather information for a specific city
func (s *WeatherService) GetWeather(city string) (*models.WeatherResponse, error) {
	if city == "" {
		return nil, errors.NewValidationError("city cannot be empty")
	}

	weather, err := s.provider.GetCurrentWeather(city)
	if err != nil {
		log.Printf("[ERROR] Weather provider error: %v\n", err)
		return nil, err
	}

	return weather, nil
}

// SubscriptionService handles subscription lifecycle and periodic dispatch
type SubscriptionService struct {
	subscriptionRepo SubscriptionRepositoryInterface
	weatherRecords   WeatherRecordRepositoryInterface
	emailService     EmailServiceInterface
	weatherService   WeatherServiceInterface
}

// NewSubscriptionService creates a new subscription service
func NewSubscriptionService(
	subscriptionRepo SubscriptionRepositoryInterface,
	weatherRecords WeatherRecordRepositoryInterface,
	emailService EmailServiceInterface,
	weatherService WeatherServiceInterface,
) *SubscriptionService {
	return &SubscriptionService{
		subscriptionRepo: subscriptionRepo,
		weatherRecords:   weatherRecords,
		emailService:     emailService,
		weatherService:   weatherService,
	}
}

// Subscribe creates a new unconfirmed subscription and sends a confirmation
// email. An existing confirmed subscription for the same email and city is a
// conflict; an unconfirmed one is superseded by the new signup. When the
// confirmation email cannot be sent the just-created record is deleted again
// so no subscription persists without the user having been notified of it.
func (s *SubscriptionService) Subscribe(req *models.SubscriptionRequest) (string, error) {
	log.Printf("[DEBUG] SubscriptionService.Subscribe: email=%s, city=%s, frequency=%s\n",
		req.Email, req.City, req.Frequency)

	if err := s.validateSubscriptionRequest(req); err != nil {
		return "", err
	}

	// A failed lookup means the city cannot be subscribed to, whatever the
	// underlying cause
	if _, err := s.weatherService.GetWeather(req.City); err != nil {
		return "", errors.NewValidationError("invalid city: unable to fetch weather data")
	}

	existing, err := s.subscriptionRepo.FindByEmailAndCity(req.Email, req.City)
	if err != nil {
		return "", errors.NewDatabaseError("failed to check existing subscription", err)
	}

	if existing != nil {
		if existing.Confirmed {
			return "", errors.NewAlreadyExistsError("email already subscribed for this city")
		}
		if err := s.subscriptionRepo.Delete(existing); err != nil {
			return "", errors.NewDatabaseError("failed to supersede unconfirmed subscription", err)
		}
	}

	subscription := &models.Subscription{
		Email:     req.Email,
		City:      req.City,
		Frequency: req.Frequency,
		Confirmed: false,
	}
	if err := s.subscriptionRepo.Create(subscription); err != nil {
		return "", errors.NewDatabaseError("failed to create subscription", err)
	}

	if err := s.emailService.SendConfirmationEmail(subscription.Email, subscription.City, subscription.Token); err != nil {
		// Compensating delete: the subscription must not outlive a failed
		// confirmation email
		if delErr := s.subscriptionRepo.Delete(subscription); delErr != nil {
			log.Printf("[ERROR] Failed to roll back subscription after email failure: %v\n", delErr)
		}
		return "", errors.NewEmailError("failed to send confirmation email", err)
	}

	return MsgSubscriptionCreated, nil
}

func (s *SubscriptionService) validateSubscriptionRequest(req *models.SubscriptionRequest) error {
	if req.Email == "" {
		return errors.NewValidationError("email is required")
	}
	if req.City == "" {
		return errors.NewValidationError("city is required")
	}
	if req.Frequency != models.FrequencyHourly && req.Frequency != models.FrequencyDaily {
		return errors.NewValidationError("frequency must be either 'hourly' or 'daily'")
	}
	return nil
}

// ConfirmSubscription confirms a subscription by its token. Confirming an
// already-confirmed subscription is a no-op success.
func (s *SubscriptionService) ConfirmSubscription(token string) (string, error) {
	log.Printf("[DEBUG] ConfirmSubscription called with token: %s\n", token)

	if token == "" {
		return "", errors.NewValidationError("token cannot be empty")
	}

	subscription, err := s.subscriptionRepo.FindByToken(token)
	if err != nil {
		return "", errors.NewDatabaseError("failed to find subscription", err)
	}
	if subscription == nil {
		return "", errors.NewNotFoundError("token not found")
	}

	if subscription.Confirmed {
		return MsgAlreadyConfirmed, nil
	}

	if err := s.subscriptionRepo.Confirm(token); err != nil {
		return "", errors.NewDatabaseError("failed to confirm subscription", err)
	}

	return MsgConfirmed, nil
}

// Unsubscribe removes a subscription by its token, regardless of its
// confirmation state
func (s *SubscriptionService) Unsubscribe(token string) (string, error) {
	log.Printf("[DEBUG] Unsubscribe called with token: %s\n", token)

	if token == "" {
		return "", errors.NewValidationError("token cannot be empty")
	}

	subscription, err := s.subscriptionRepo.FindByToken(token)
	if err != nil {
		return "", errors.NewDatabaseError("failed to find subscription", err)
	}
	if subscription == nil {
		return "", errors.NewNotFoundError("token not found")
	}

	if err := s.subscriptionRepo.Delete(subscription); err != nil {
		return "", errors.NewDatabaseError("failed to delete subscription", err)
	}

	// Best effort only; the unsubscribe itself already succeeded
	if err := s.emailService.SendUnsubscribeConfirmationEmail(subscription.Email, subscription.City); err != nil {
		log.Printf("[WARNING] Failed to send unsubscribe confirmation email: %v\n", err)
	}

	return MsgUnsubscribed, nil
}

// SendWeatherUpdate sends weather updates to all confirmed subscribers of the
// specified frequency. Each subscriber is handled independently: a failed
// weather lookup or email send is logged and skipped without affecting the
// rest of the batch, and the history record is written only after a
// successful send.
func (s *SubscriptionService) SendWeatherUpdate(frequency string) error {
	log.Printf("[DEBUG] SendWeatherUpdate called for frequency: %s\n", frequency)

	if frequency != models.FrequencyHourly && frequency != models.FrequencyDaily {
		return errors.NewValidationError("frequency must be either 'hourly' or 'daily'")
	}

	subscriptions, err := s.subscriptionRepo.FindConfirmedByFrequency(frequency)
	if err != nil {
		return errors.NewDatabaseError("failed to get subscriptions for updates", err)
	}

	metrics.RecordDispatchRun(frequency)
	log.Printf("[DEBUG] Found %d subscriptions for frequency: %s\n", len(subscriptions), frequency)

	for _, subscription := range subscriptions {
		s.sendWeatherUpdateToSubscriber(subscription, frequency)
	}

	return nil
}

func (s *SubscriptionService) sendWeatherUpdateToSubscriber(subscription models.Subscription, frequency string) {
	weather, err := s.weatherService.GetWeather(subscription.City)
	if err != nil {
		log.Printf("[WARNING] Failed to get weather for %s (%s): %v\n",
			subscription.City, subscription.Email, err)
		metrics.RecordDispatchFailure(frequency, metrics.StageWeather)
		return
	}

	if err := s.emailService.SendWeatherUpdateEmail(subscription.Email, subscription.City, weather, subscription.Token); err != nil {
		log.Printf("[WARNING] Failed to send weather update to %s: %v\n", subscription.Email, err)
		metrics.RecordDispatchFailure(frequency, metrics.StageEmail)
		return
	}

	metrics.RecordUpdateSent(frequency)

	if err := s.weatherRecords.Create(subscription.City, weather); err != nil {
		log.Printf("[WARNING] Failed to store weather record for %s: %v\n", subscription.City, err)
		metrics.RecordDispatchFailure(frequency, metrics.StageHistory)
	}
}
