// Package repository implements data access layer for the application
package repository

import (
	"errors"
	"log"

	"github.com/Maxim4ik118/genesis-weather-api/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubscriptionRepository handles data access operations for subscriptions
type SubscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository creates a new repository for subscription data
func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

// FindByEmailAndCity retrieves a subscription by email and city
func (r *SubscriptionRepository) FindByEmailAndCity(email, city string) (*models.Subscription, error) {
	log.Printf("[DEBUG] SubscriptionRepository.FindByEmailAndCity: email=%s, city=%s\n", email, city)

	var subscription models.Subscription
	result := r.db.Where("email = ? AND city = ?", email, city).First(&subscription)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			log.Println("[DEBUG] No subscription found")
			return nil, nil
		}
		log.Printf("[ERROR] Database error when finding subscription: %v\n", result.Error)
		return nil, result.Error
	}

	return &subscription, nil
}

// FindByToken retrieves a subscription by its token
func (r *SubscriptionRepository) FindByToken(token string) (*models.Subscription, error) {
	log.Printf("[DEBUG] SubscriptionRepository.FindByToken: token=%s\n", token)

	var subscription models.Subscription
	result := r.db.Where("token = ?", token).First(&subscription)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			log.Println("[DEBUG] No subscription found for token")
			return nil, nil
		}
		log.Printf("[ERROR] Database error when finding subscription by token: %v\n", result.Error)
		return nil, result.Error
	}

	return &subscription, nil
}

// Create persists a new subscription with a freshly generated token
func (r *SubscriptionRepository) Create(subscription *models.Subscription) error {
	if subscription.Token == "" {
		subscription.Token = uuid.New().String()
	}
	log.Printf("[DEBUG] SubscriptionRepository.Create: email=%s, city=%s, frequency=%s\n",
		subscription.Email, subscription.City, subscription.Frequency)

	result := r.db.Create(subscription)
	if result.Error != nil {
		log.Printf("[ERROR] Database error when creating subscription: %v\n", result.Error)
		return result.Error
	}

	log.Printf("[DEBUG] Created subscription with ID: %d\n", subscription.ID)
	return nil
}

// Confirm marks the subscription with the given token as confirmed
func (r *SubscriptionRepository) Confirm(token string) error {
	log.Printf("[DEBUG] SubscriptionRepository.Confirm: token=%s\n", token)

	result := r.db.Model(&models.Subscription{}).Where("token = ?", token).Update("confirmed", true)
	if result.Error != nil {
		log.Printf("[ERROR] Database error when confirming subscription: %v\n", result.Error)
		return result.Error
	}

	return nil
}

// Delete removes a subscription from the database
func (r *SubscriptionRepository) Delete(subscription *models.Subscription) error {
	log.Printf("[DEBUG] SubscriptionRepository.Delete: id=%d, email=%s\n", subscription.ID, subscription.Email)

	result := r.db.Delete(subscription)
	if result.Error != nil {
		log.Printf("[ERROR] Database error when deleting subscription: %v\n", result.Error)
		return result.Error
	}

	return nil
}

// FindConfirmedByFrequency retrieves all confirmed subscriptions for a specific frequency
func (r *SubscriptionRepository) FindConfirmedByFrequency(frequency string) ([]models.Subscription, error) {
	log.Printf("[DEBUG] SubscriptionRepository.FindConfirmedByFrequency: frequency=%s\n", frequency)

	var subscriptions []models.Subscription
	result := r.db.Where("frequency = ? AND confirmed = ?", frequency, true).Find(&subscriptions)
	if result.Error != nil {
		log.Printf("[ERROR] Database error when getting subscriptions for updates: %v\n", result.Error)
		return nil, result.Error
	}

	log.Printf("[DEBUG] Found %d subscriptions for frequency: %s\n", len(subscriptions), frequency)
	return subscriptions, nil
}

// WeatherRecordRepository handles data access operations for the weather history log
type WeatherRecordRepository struct {
	db *gorm.DB
}

// NewWeatherRecordRepository creates a new repository for weather history records
func NewWeatherRecordRepository(db *gorm.DB) *WeatherRecordRepository {
	return &WeatherRecordRepository{db: db}
}

// Create appends a weather record for a city to the history log
func (r *WeatherRecordRepository) Create(city string, weather *models.WeatherResponse) error {
	log.Printf("[DEBUG] WeatherRecordRepository.Create: city=%s\n", city)

	record := &models.WeatherRecord{
		City:        city,
		Temperature: weather.Temperature,
		Humidity:    weather.Humidity,
		Description: weather.Description,
	}

	result := r.db.Create(record)
	if result.Error != nil {
		log.Printf("[ERROR] Database error when creating weather record: %v\n", result.Error)
		return result.Error
	}

	return nil
}

// RecentByCity retrieves the most recent weather records for a city, newest first
func (r *WeatherRecordRepository) RecentByCity(city string, limit int) ([]models.WeatherRecord, error) {
	log.Printf("[DEBUG] WeatherRecordRepository.RecentByCity: city=%s, limit=%d\n", city, limit)

	var records []models.WeatherRecord
	result := r.db.Where("city = ?", city).Order("created_at DESC").Limit(limit).Find(&records)
	if result.Error != nil {
		log.Printf("[ERROR] Database error when getting weather records: %v\n", result.Error)
		return nil, result.Error
	}

	return records, nil
}
