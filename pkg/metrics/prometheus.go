// Package metrics provides Prometheus metrics for the activities service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Manager owns all Prometheus collectors for the service. It registers them
// on its own registry so exposition stays independent of the default one.
type Manager struct {
	namespace    string
	subsystem    string
	buckets      []float64
	enabled      bool
	customLabels map[string]string
	registry     *prometheus.Registry

	// HTTP performance
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Roster activity
	signupsTotal      prometheus.Counter
	unregistersTotal  prometheus.Counter
	rosterSize        *prometheus.GaugeVec
	totalActivities   prometheus.Gauge
	totalParticipants prometheus.Gauge

	// Error tracking
	errorsByEndpoint *prometheus.CounterVec
	errorsByType     *prometheus.CounterVec

	// Process health
	systemMemoryBytes prometheus.Gauge
	systemGoroutines  prometheus.Gauge
	gcPauseMs         prometheus.Histogram
}

// NewManager builds a Manager and registers all collectors.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace: "activities",
		subsystem: "registry",
		buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
		enabled:   true,
		registry:  prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(m)
	}

	factory := func(name, help string) prometheus.Opts {
		return prometheus.Opts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        name,
			Help:        help,
			ConstLabels: m.customLabels,
		}
	}

	m.httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts(factory("http_requests_total", "HTTP requests by endpoint, method and status.")),
		[]string{"endpoint", "method", "status"},
	)
	m.httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        "http_request_duration_ms",
			Help:        "HTTP request latency in milliseconds.",
			Buckets:     m.buckets,
			ConstLabels: m.customLabels,
		},
		[]string{"endpoint", "method", "status"},
	)
	m.signupsTotal = prometheus.NewCounter(
		prometheus.CounterOpts(factory("signups_total", "Successful participant sign-ups.")),
	)
	m.unregistersTotal = prometheus.NewCounter(
		prometheus.CounterOpts(factory("unregisters_total", "Successful participant removals.")),
	)
	m.rosterSize = prometheus.NewGaugeVec(
		prometheus.GaugeOpts(factory("roster_size", "Current participant count per activity.")),
		[]string{"activity"},
	)
	m.totalActivities = prometheus.NewGauge(
		prometheus.GaugeOpts(factory("activities_total", "Number of activities in the registry.")),
	)
	m.totalParticipants = prometheus.NewGauge(
		prometheus.GaugeOpts(factory("participants_total", "Participants across all activities.")),
	)
	m.errorsByEndpoint = prometheus.NewCounterVec(
		prometheus.CounterOpts(factory("errors_by_endpoint_total", "Request errors by endpoint and type.")),
		[]string{"endpoint", "method", "type"},
	)
	m.errorsByType = prometheus.NewCounterVec(
		prometheus.CounterOpts(factory("errors_by_type_total", "Request errors by type and severity.")),
		[]string{"type", "severity"},
	)
	m.systemMemoryBytes = prometheus.NewGauge(
		prometheus.GaugeOpts(factory("system_memory_bytes", "Heap bytes currently allocated.")),
	)
	m.systemGoroutines = prometheus.NewGauge(
		prometheus.GaugeOpts(factory("system_goroutines", "Current goroutine count.")),
	)
	m.gcPauseMs = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        "gc_pause_ms",
			Help:        "Average GC pause time in milliseconds.",
			Buckets:     m.buckets,
			ConstLabels: m.customLabels,
		},
	)

	m.registry.MustRegister(
		m.httpRequests,
		m.httpRequestDuration,
		m.signupsTotal,
		m.unregistersTotal,
		m.rosterSize,
		m.totalActivities,
		m.totalParticipants,
		m.errorsByEndpoint,
		m.errorsByType,
		m.systemMemoryBytes,
		m.systemGoroutines,
		m.gcPauseMs,
	)
	return m
}

// Registry returns the manager's Prometheus registry for exposition.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Manager) RecordHTTPRequest(endpoint, method, status string) {
	if !m.enabled {
		return
	}
	m.httpRequests.WithLabelValues(endpoint, method, status).Inc()
}

func (m *Manager) RecordHTTPRequestDuration(endpoint, method, status string, durationMs float64) {
	if !m.enabled {
		return
	}
	m.httpRequestDuration.WithLabelValues(endpoint, method, status).Observe(durationMs)
}

func (m *Manager) RecordSignup() {
	if !m.enabled {
		return
	}
	m.signupsTotal.Inc()
}

func (m *Manager) RecordUnregister() {
	if !m.enabled {
		return
	}
	m.unregistersTotal.Inc()
}

func (m *Manager) UpdateRosterSize(activity string, size int) {
	if !m.enabled {
		return
	}
	m.rosterSize.WithLabelValues(activity).Set(float64(size))
}

func (m *Manager) UpdateTotalActivities(n int) {
	if !m.enabled {
		return
	}
	m.totalActivities.Set(float64(n))
}

func (m *Manager) UpdateTotalParticipants(n int) {
	if !m.enabled {
		return
	}
	m.totalParticipants.Set(float64(n))
}

func (m *Manager) RecordErrorByEndpoint(endpoint, method, errorType string) {
	if !m.enabled {
		return
	}
	m.errorsByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

func (m *Manager) RecordErrorByType(errorType, severity string) {
	if !m.enabled {
		return
	}
	m.errorsByType.WithLabelValues(errorType, severity).Inc()
}

func (m *Manager) UpdateSystemMemoryUsage(bytes uint64) {
	if !m.enabled {
		return
	}
	m.systemMemoryBytes.Set(float64(bytes))
}

func (m *Manager) UpdateSystemGoroutineCount(n int) {
	if !m.enabled {
		return
	}
	m.systemGoroutines.Set(float64(n))
}

func (m *Manager) RecordSystemGCPauseTime(ms float64) {
	if !m.enabled {
		return
	}
	m.gcPauseMs.Observe(ms)
}

// defaultManager backs the package-level helpers used by handlers and main.
var defaultManager = NewManager()

// GetRegistry returns the registry of the default manager.
func GetRegistry() *prometheus.Registry { return defaultManager.Registry() }

// Package-level helpers delegating to the default manager.
func RecordHTTPRequest(endpoint, method, status string) {
	defaultManager.RecordHTTPRequest(endpoint, method, status)
}

func RecordHTTPRequestDuration(endpoint, method, status string, durationMs float64) {
	defaultManager.RecordHTTPRequestDuration(endpoint, method, status, durationMs)
}

func RecordSignup()     { defaultManager.RecordSignup() }
func RecordUnregister() { defaultManager.RecordUnregister() }

func UpdateRosterSize(activity string, size int) { defaultManager.UpdateRosterSize(activity, size) }
func UpdateTotalActivities(n int)                { defaultManager.UpdateTotalActivities(n) }
func UpdateTotalParticipants(n int)              { defaultManager.UpdateTotalParticipants(n) }

func RecordErrorByEndpoint(endpoint, method, errorType string) {
	defaultManager.RecordErrorByEndpoint(endpoint, method, errorType)
}

func RecordErrorByType(errorType, severity string) {
	defaultManager.RecordErrorByType(errorType, severity)
}

func UpdateSystemMemoryUsage(bytes uint64) { defaultManager.UpdateSystemMemoryUsage(bytes) }
func UpdateSystemGoroutineCount(n int)     { defaultManager.UpdateSystemGoroutineCount(n) }
func RecordSystemGCPauseTime(ms float64)   { defaultManager.RecordSystemGCPauseTime(ms) }
