// Package scheduler implements background notification dispatch scheduling
package scheduler

import (
	"log"
	"time"

	"github.com/Maxim4ik118/genesis-weather-api/config"
	"github.com/Maxim4ik118/genesis-weather-api/models"
	"github.com/Maxim4ik118/genesis-weather-api/service"
)

// Scheduler drives the periodic weather update dispatch. Each frequency gets
// its own timer loop; both fire once immediately at startup so subscribers do
// not wait for the first natural tick. A run of one frequency never blocks
// the other's timer, and a dispatch run finishes before the same timer can
// fire again.
type Scheduler struct {
	config       *config.SchedulerConfig
	notification service.NotificationServiceInterface
}

// NewScheduler creates a scheduler over the notification service
func NewScheduler(config *config.SchedulerConfig, notification service.NotificationServiceInterface) *Scheduler {
	return &Scheduler{
		config:       config,
		notification: notification,
	}
}

// Start launches the timer loops. They run for the lifetime of the process;
// shutdown simply abandons them and the next start resets cadence from zero.
func (s *Scheduler) Start() {
	go s.scheduleInterval(time.Duration(s.config.HourlyInterval)*time.Minute, func() {
		if err := s.notification.SendWeatherUpdate(models.FrequencyHourly); err != nil {
			log.Printf("Error sending hourly weather updates: %v\n", err)
		}
	})

	go s.scheduleInterval(time.Duration(s.config.DailyInterval)*time.Minute, func() {
		if err := s.notification.SendWeatherUpdate(models.FrequencyDaily); err != nil {
			log.Printf("Error sending daily weather updates: %v\n", err)
		}
	})
}

func (s *Scheduler) scheduleInterval(interval time.Duration, job func()) {
	job()

	ticker := time.NewTicker(interval)
	for range ticker.C {
		job()
	}
}
