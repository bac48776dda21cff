package service

import (
	"errors"
	"strings"
	"testing"

	apperrors "github.com/Maxim4ik118/genesis-weather-api/errors"
	"github.com/Maxim4ik118/genesis-weather-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock email provider for testing
type mockEmailProvider struct {
	mock.Mock
}

func (m *mockEmailProvider) SendEmail(to, subject, body string, isHTML bool) error {
	args := m.Called(to, subject, body, isHTML)
	return args.Error(0)
}

const testBaseURL = "http://localhost:8080/api"

func TestEmailService_SendConfirmationEmail(t *testing.T) {
	t.Run("BuildsConfirmAndUnsubscribeLinks", func(t *testing.T) {
		provider := new(mockEmailProvider)
		emailService := NewEmailService(provider, testBaseURL)

		provider.On("SendEmail", "test@example.com", "Confirm your weather subscription",
			mock.MatchedBy(func(body string) bool {
				return strings.Contains(body, testBaseURL+"/confirm/abc-123") &&
					strings.Contains(body, testBaseURL+"/unsubscribe/abc-123")
			}), true).Return(nil)

		err := emailService.SendConfirmationEmail("test@example.com", "London", "abc-123")

		assert.NoError(t, err)
		provider.AssertExpectations(t)
	})

	t.Run("EmptyEmail", func(t *testing.T) {
		provider := new(mockEmailProvider)
		emailService := NewEmailService(provider, testBaseURL)

		err := emailService.SendConfirmationEmail("", "London", "abc-123")

		assert.Error(t, err)
		var appErr *apperrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperrors.ValidationError, appErr.Type)
	})

	t.Run("EmptyToken", func(t *testing.T) {
		provider := new(mockEmailProvider)
		emailService := NewEmailService(provider, testBaseURL)

		err := emailService.SendConfirmationEmail("test@example.com", "London", "")

		assert.Error(t, err)
	})
}

func TestEmailService_SendWeatherUpdateEmail(t *testing.T) {
	t.Run("IncludesWeatherAndUnsubscribeLink", func(t *testing.T) {
		provider := new(mockEmailProvider)
		emailService := NewEmailService(provider, testBaseURL)

		weather := &models.WeatherResponse{Temperature: 15.0, Humidity: 76.0, Description: "Partly cloudy"}

		provider.On("SendEmail", "test@example.com", "Weather Update for London",
			mock.MatchedBy(func(body string) bool {
				return strings.Contains(body, "15.0") &&
					strings.Contains(body, "76.0") &&
					strings.Contains(body, "Partly cloudy") &&
					strings.Contains(body, testBaseURL+"/unsubscribe/abc-123")
			}), true).Return(nil)

		err := emailService.SendWeatherUpdateEmail("test@example.com", "London", weather, "abc-123")

		assert.NoError(t, err)
		provider.AssertExpectations(t)
	})

	t.Run("NilWeather", func(t *testing.T) {
		provider := new(mockEmailProvider)
		emailService := NewEmailService(provider, testBaseURL)

		err := emailService.SendWeatherUpdateEmail("test@example.com", "London", nil, "abc-123")

		assert.Error(t, err)
	})

	t.Run("ProviderFailurePropagates", func(t *testing.T) {
		provider := new(mockEmailProvider)
		emailService := NewEmailService(provider, testBaseURL)

		provider.On("SendEmail", mock.Anything, mock.Anything, mock.Anything, true).
			Return(apperrors.NewEmailError("smtp unreachable", nil))

		weather := &models.WeatherResponse{Temperature: 15.0, Humidity: 76.0, Description: "Partly cloudy"}
		err := emailService.SendWeatherUpdateEmail("test@example.com", "London", weather, "abc-123")

		assert.Error(t, err)
		var appErr *apperrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperrors.EmailError, appErr.Type)
	})
}

func TestEmailService_SendUnsubscribeConfirmationEmail(t *testing.T) {
	provider := new(mockEmailProvider)
	emailService := NewEmailService(provider, testBaseURL)

	provider.On("SendEmail", "test@example.com",
		"You have unsubscribed from weather updates for London",
		mock.AnythingOfType("string"), true).Return(nil)

	err := emailService.SendUnsubscribeConfirmationEmail("test@example.com", "London")

	assert.NoError(t, err)
	provider.AssertExpectations(t)
}

