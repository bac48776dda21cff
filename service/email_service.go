package service

import (
	"fmt"
	"log"

	"github.com/Maxim4ik118/genesis-weather-api/errors"
	"github.com/Maxim4ik118/genesis-weather-api/models"
	"github.com/Maxim4ik118/genesis-weather-api/providers"
)

// EmailService handles email operations using a provider. Confirmation and
// unsubscribe links are built from the configured base URL; their shapes are
// a contract with the HTTP layer that serves them.
type EmailService struct {
	provider providers.EmailProvider
	baseURL  string
}

// NewEmailService creates a new email service with the specified provider
func NewEmailService(provider providers.EmailProvider, baseURL string) *EmailService {
	return &EmailService{
		provider: provider,
		baseURL:  baseURL,
	}
}

func (s *EmailService) confirmURL(token string) string {
	return fmt.Sprintf("%s/confirm/%s", s.baseURL, token)
}

func (s *EmailService) unsubscribeURL(token string) string {
	return fmt.Sprintf("%s/unsubscribe/%s", s.baseURL, token)
}

// SendConfirmationEmail sends an email with confirmation and unsubscribe links
func (s *EmailService) SendConfirmationEmail(email, city, token string) error {
	log.Printf("[DEBUG] SendConfirmationEmail called for: %s, city: %s\n", email, city)

	if email == "" {
		return errors.NewValidationError("email cannot be empty")
	}
	if city == "" {
		return errors.NewValidationError("city cannot be empty")
	}
	if token == "" {
		return errors.NewValidationError("token cannot be empty")
	}

	subject := "Confirm your weather subscription"
	htmlContent := fmt.Sprintf(
		"<h2>Weather Subscription Confirmation</h2>"+
			"<p>Thank you for subscribing to weather updates for %s!</p>"+
			"<p>Please click the link below to confirm your subscription:</p>"+
			"<p><a href=\"%s\">Confirm Subscription</a></p>"+
			"<p>If you did not request this subscription, you can ignore this email or click below to unsubscribe:</p>"+
			"<p><a href=\"%s\">Unsubscribe</a></p>",
		city, s.confirmURL(token), s.unsubscribeURL(token),
	)

	return s.provider.SendEmail(email, subject, htmlContent, true)
}

// SendWeatherUpdateEmail sends a weather update email to a subscriber
func (s *EmailService) SendWeatherUpdateEmail(email, city string, weather *models.WeatherResponse, token string) error {
	log.Printf("[DEBUG] SendWeatherUpdateEmail called for: %s, city: %s\n", email, city)

	if email == "" {
		return errors.NewValidationError("email cannot be empty")
	}
	if city == "" {
		return errors.NewValidationError("city cannot be empty")
	}
	if weather == nil {
		return errors.NewValidationError("weather data cannot be nil")
	}
	if token == "" {
		return errors.NewValidationError("token cannot be empty")
	}

	subject := fmt.Sprintf("Weather Update for %s", city)
	htmlContent := fmt.Sprintf(
		"<h2>Weather Update for %s</h2>"+
			"<p><strong>Temperature:</strong> %.1f°C</p>"+
			"<p><strong>Humidity:</strong> %.1f%%</p>"+
			"<p><strong>Description:</strong> %s</p>"+
			"<p><small>To unsubscribe from these updates, <a href=\"%s\">click here</a>.</small></p>",
		city, weather.Temperature, weather.Humidity, weather.Description, s.unsubscribeURL(token),
	)

	err := s.provider.SendEmail(email, subject, htmlContent, true)
	if err != nil {
		log.Printf("[ERROR] Failed to send weather update email: %v\n", err)
		return err
	}

	return nil
}

// SendUnsubscribeConfirmationEmail sends a farewell email after unsubscribing
func (s *EmailService) SendUnsubscribeConfirmationEmail(email, city string) error {
	log.Printf("[DEBUG] SendUnsubscribeConfirmationEmail called for: %s, city: %s\n", email, city)

	if email == "" {
		return errors.NewValidationError("email cannot be empty")
	}
	if city == "" {
		return errors.NewValidationError("city cannot be empty")
	}

	subject := fmt.Sprintf("You have unsubscribed from weather updates for %s", city)
	htmlContent := fmt.Sprintf(
		"<p>You have successfully unsubscribed from weather updates for %s.</p>",
		city,
	)

	return s.provider.SendEmail(email, subject, htmlContent, true)
}
