package scheduler

import (
	"sync"
	"testing"
	"time"

	"github.com/Maxim4ik118/genesis-weather-api/config"
	"github.com/Maxim4ik118/genesis-weather-api/models"
	"github.com/stretchr/testify/assert"
)

type recordingNotifier struct {
	mu    sync.Mutex
	calls []string
	err   error
}

func (n *recordingNotifier) SendWeatherUpdate(frequency string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = append(n.calls, frequency)
	return n.err
}

func (n *recordingNotifier) callsFor(frequency string) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	count := 0
	for _, call := range n.calls {
		if call == frequency {
			count++
		}
	}
	return count
}

func TestScheduler_RunsBothFrequenciesImmediately(t *testing.T) {
	notifier := &recordingNotifier{}
	s := NewScheduler(&config.SchedulerConfig{HourlyInterval: 60, DailyInterval: 1440}, notifier)

	s.Start()

	// Both loops fire once at startup, before their first tick
	assert.Eventually(t, func() bool {
		return notifier.callsFor(models.FrequencyHourly) >= 1 &&
			notifier.callsFor(models.FrequencyDaily) >= 1
	}, time.Second, 10*time.Millisecond)
}

func TestScheduler_DispatchErrorDoesNotStopTimers(t *testing.T) {
	notifier := &recordingNotifier{err: assert.AnError}
	s := NewScheduler(&config.SchedulerConfig{HourlyInterval: 60, DailyInterval: 1440}, notifier)

	s.Start()

	assert.Eventually(t, func() bool {
		return notifier.callsFor(models.FrequencyHourly) >= 1 &&
			notifier.callsFor(models.FrequencyDaily) >= 1
	}, time.Second, 10*time.Millisecond)
}
