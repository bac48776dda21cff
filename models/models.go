// Package models defines data structures used throughout the application
package models

import "time"

// Subscription frequencies accepted by the API
const (
	FrequencyHourly = "hourly"
	FrequencyDaily  = "daily"
)

// Subscription represents a user's weather notification subscription.
// The token doubles as the credential for confirm/unsubscribe links and
// never changes for the life of the record.
type Subscription struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"index;not null"`
	City      string    `json:"city" gorm:"not null"`
	Frequency string    `json:"frequency" gorm:"not null"`
	Confirmed bool      `json:"confirmed" gorm:"default:false"`
	Token     string    `json:"-" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// WeatherRecord is one entry of the weather history log, appended after a
// successfully delivered update. Append-only, no uniqueness constraint.
type WeatherRecord struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	City        string    `json:"city" gorm:"index;not null"`
	Temperature float64   `json:"temperature"`
	Humidity    float64   `json:"humidity"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// WeatherResponse represents weather data returned from a provider
type WeatherResponse struct {
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
	Description string  `json:"description"`
}

// SubscriptionRequest represents data required to create a subscription
type SubscriptionRequest struct {
	Email     string `json:"email" form:"email" binding:"required,email"`
	City      string `json:"city" form:"city" binding:"required"`
	Frequency string `json:"frequency" form:"frequency" binding:"required,oneof=hourly daily"`
}

// MessageResponse is the success payload of the subscription endpoints
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error message structure for API responses
type ErrorResponse struct {
	Error string `json:"error"`
}
