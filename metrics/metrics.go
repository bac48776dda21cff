// Package metrics exposes prometheus instrumentation for the application
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Dispatch failure stages
const (
	StageWeather = "weather"
	StageEmail   = "email"
	StageHistory = "history"
)

var (
	updatesSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weather_updates_sent_total",
			Help: "The total number of weather update emails sent",
		},
		[]string{"frequency"},
	)

	dispatchFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weather_dispatch_failures_total",
			Help: "The total number of per-subscriber dispatch failures by stage",
		},
		[]string{"frequency", "stage"},
	)

	dispatchRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weather_dispatch_runs_total",
			Help: "The total number of dispatch runs per frequency",
		},
		[]string{"frequency"},
	)

	cacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weather_cache_hits_total",
			Help: "The total number of weather cache hits",
		},
		[]string{"cache_type"},
	)

	cacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weather_cache_misses_total",
			Help: "The total number of weather cache misses",
		},
		[]string{"cache_type"},
	)
)

// RecordUpdateSent counts one successfully sent weather update
func RecordUpdateSent(frequency string) {
	updatesSent.WithLabelValues(frequency).Inc()
}

// RecordDispatchFailure counts one skipped subscriber and the stage that failed
func RecordDispatchFailure(frequency, stage string) {
	dispatchFailures.WithLabelValues(frequency, stage).Inc()
}

// RecordDispatchRun counts one dispatch run for a frequency
func RecordDispatchRun(frequency string) {
	dispatchRuns.WithLabelValues(frequency).Inc()
}

// RecordCacheHit counts one weather cache hit
func RecordCacheHit(cacheType string) {
	cacheHits.WithLabelValues(cacheType).Inc()
}

// RecordCacheMiss counts one weather cache miss
func RecordCacheMiss(cacheType string) {
	cacheMisses.WithLabelValues(cacheType).Inc()
}
