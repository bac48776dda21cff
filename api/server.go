package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/Maxim4ik118/genesis-weather-api/config"
	weathererr "github.com/Maxim4ik118/genesis-weather-api/errors"
	"github.com/Maxim4ik118/genesis-weather-api/models"
	"github.com/Maxim4ik118/genesis-weather-api/service"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// historyLimit caps the number of records returned by the history endpoint
const historyLimit = 24

// Server represents the HTTP server and API handler
type Server struct {
	router              *gin.Engine
	config              *config.Config
	weatherService      service.WeatherServiceInterface
	subscriptionService service.SubscriptionServiceInterface
	weatherRecords      service.WeatherRecordRepositoryInterface
}

// NewServer creates and configures a new HTTP server
func NewServer(
	config *config.Config,
	weatherService service.WeatherServiceInterface,
	subscriptionService service.SubscriptionServiceInterface,
	weatherRecords service.WeatherRecordRepositoryInterface,
) *Server {
	router := gin.Default()

	server := &Server{
		router:              router,
		config:              config,
		weatherService:      weatherService,
		subscriptionService: subscriptionService,
		weatherRecords:      weatherRecords,
	}

	server.setupRoutes()
	return server
}

func (s *Server) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.GET("/weather", s.getWeather)
		api.GET("/history", s.getHistory)
		api.POST("/subscribe", s.subscribe)
		api.GET("/confirm/:token", s.confirmSubscription)
		api.GET("/unsubscribe/:token", s.unsubscribe)
	}

	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// Start begins the HTTP server
func (s *Server) Start() error {
	return s.router.Run(fmt.Sprintf(":%d", s.config.Server.Port))
}

// GetRouter returns the router for testing purposes
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}

func (s *Server) getWeather(c *gin.Context) {
	city := c.Query("city")
	if city == "" {
		s.handleError(c, weathererr.NewValidationError("city parameter is required"))
		return
	}

	weather, err := s.weatherService.GetWeather(city)
	if err != nil {
		slog.Error("Weather service error", "error", err, "city", city)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, weather)
}

func (s *Server) getHistory(c *gin.Context) {
	city := c.Query("city")
	if city == "" {
		s.handleError(c, weathererr.NewValidationError("city parameter is required"))
		return
	}

	records, err := s.weatherRecords.RecentByCity(city, historyLimit)
	if err != nil {
		slog.Error("Weather history error", "error", err, "city", city)
		s.handleError(c, weathererr.NewDatabaseError("failed to get weather history", err))
		return
	}

	c.JSON(http.StatusOK, records)
}

func (s *Server) subscribe(c *gin.Context) {
	var req models.SubscriptionRequest

	if err := c.ShouldBind(&req); err != nil {
		slog.Error("Request binding error", "error", err)
		s.handleError(c, weathererr.NewValidationError("invalid request format"))
		return
	}

	message, err := s.subscriptionService.Subscribe(&req)
	if err != nil {
		slog.Error("Subscription error", "error", err, "email", req.Email, "city", req.City)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: message})
}

func (s *Server) confirmSubscription(c *gin.Context) {
	token := c.Param("token")
	if token == "" {
		s.handleError(c, weathererr.NewValidationError("token parameter is required"))
		return
	}

	message, err := s.subscriptionService.ConfirmSubscription(token)
	if err != nil {
		slog.Error("Confirmation error", "error", err, "token", token)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: message})
}

func (s *Server) unsubscribe(c *gin.Context) {
	token := c.Param("token")
	if token == "" {
		s.handleError(c, weathererr.NewValidationError("token parameter is required"))
		return
	}

	message, err := s.subscriptionService.Unsubscribe(token)
	if err != nil {
		slog.Error("Unsubscribe error", "error", err, "token", token)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: message})
}

// handleError maps application errors onto HTTP status codes
func (s *Server) handleError(c *gin.Context, err error) {
	var appErr *weathererr.AppError
	var statusCode int
	var message string

	if errors.As(err, &appErr) {
		switch appErr.Type {
		case weathererr.ValidationError:
			statusCode = http.StatusBadRequest
			message = appErr.Message
		case weathererr.NotFoundError:
			statusCode = http.StatusNotFound
			message = appErr.Message
		case weathererr.AlreadyExistsError:
			statusCode = http.StatusConflict
			message = appErr.Message
		case weathererr.ExternalAPIError:
			statusCode = http.StatusServiceUnavailable
			message = "External service unavailable"
		case weathererr.DatabaseError:
			statusCode = http.StatusInternalServerError
			message = "Internal server error"
		case weathererr.EmailError:
			statusCode = http.StatusServiceUnavailable
			message = "Unable to send email"
		default:
			statusCode = http.StatusInternalServerError
			message = "Internal server error"
		}
	} else {
		statusCode = http.StatusInternalServerError
		message = "Internal server error"
	}

	c.JSON(statusCode, models.ErrorResponse{Error: message})
}
