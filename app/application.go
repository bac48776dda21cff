// Package app wires the application's dependencies together
package app

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/Maxim4ik118/genesis-weather-api/api"
	"github.com/Maxim4ik118/genesis-weather-api/config"
	"github.com/Maxim4ik118/genesis-weather-api/database"
	"github.com/Maxim4ik118/genesis-weather-api/providers"
	"github.com/Maxim4ik118/genesis-weather-api/repository"
	"github.com/Maxim4ik118/genesis-weather-api/scheduler"
	"github.com/Maxim4ik118/genesis-weather-api/service"
	"gorm.io/gorm"
)

// Application represents the main application with all its dependencies
type Application struct {
	config    *config.Config
	db        *gorm.DB
	server    *api.Server
	scheduler *scheduler.Scheduler
}

// NewApplication creates and initializes a new application instance
func NewApplication() (*Application, error) {
	app := &Application{}

	if err := app.loadConfiguration(); err != nil {
		return nil, err
	}

	if err := app.initializeDatabase(); err != nil {
		return nil, err
	}

	if err := app.initializeServices(); err != nil {
		return nil, err
	}

	return app, nil
}

// Config returns the loaded application configuration
func (app *Application) Config() *config.Config {
	return app.config
}

func (app *Application) loadConfiguration() error {
	slog.Info("Loading configuration...")

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		return fmt.Errorf("load application configuration: %w", err)
	}

	app.config = cfg
	return nil
}

func (app *Application) initializeDatabase() error {
	slog.Info("Initializing database...")

	db, err := database.InitDB(app.config.Database)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		return fmt.Errorf("initialize database connection: %w", err)
	}

	if err := database.RunMigrations(db); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		return fmt.Errorf("run database migrations: %w", err)
	}

	app.db = db
	return nil
}

func (app *Application) initializeServices() error {
	slog.Info("Initializing services...")

	weatherProvider, err := providers.NewWeatherProvider(&app.config.Weather)
	if err != nil {
		return fmt.Errorf("create weather provider: %w", err)
	}
	emailProvider := providers.NewSMTPEmailProvider(&app.config.Email)

	// The lifecycle manager and the dispatcher validate and fetch against
	// the live provider; only the public weather endpoint reads through
	// the cache
	weatherService := service.NewWeatherService(weatherProvider)
	cachedWeatherService := weatherService
	if app.config.Cache.Enabled {
		weatherCache, err := providers.NewWeatherCache(&app.config.Cache)
		if err != nil {
			return fmt.Errorf("create weather cache: %w", err)
		}
		cachedProvider := providers.NewCachedWeatherProvider(
			weatherProvider,
			weatherCache,
			app.config.Cache.Type,
			time.Duration(app.config.Cache.TTLMinutes)*time.Minute,
		)
		cachedWeatherService = service.NewWeatherService(cachedProvider)
	}

	emailService := service.NewEmailService(emailProvider, app.config.AppBaseURL)

	subscriptionRepo := repository.NewSubscriptionRepository(app.db)
	weatherRecordRepo := repository.NewWeatherRecordRepository(app.db)

	subscriptionService := service.NewSubscriptionService(
		subscriptionRepo,
		weatherRecordRepo,
		emailService,
		weatherService,
	)

	app.server = api.NewServer(app.config, cachedWeatherService, subscriptionService, weatherRecordRepo)
	app.scheduler = scheduler.NewScheduler(&app.config.Scheduler, subscriptionService)

	return nil
}

// Start launches the scheduler and the HTTP server
func (app *Application) Start() error {
	slog.Info("Starting scheduler...")
	app.scheduler.Start()

	slog.Info("Starting HTTP server...", "port", app.config.Server.Port)
	return app.server.Start()
}

// Shutdown releases the application's resources
func (app *Application) Shutdown() error {
	slog.Info("Shutting down application...")

	if app.db != nil {
		if err := database.CloseDB(app.db); err != nil {
			return fmt.Errorf("close database connection: %w", err)
		}
	}

	return nil
}
