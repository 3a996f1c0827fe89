// Package metrics holds the prometheus collectors of the service.
package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "influence_nexus"

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method", "route"},
	)

	applicationTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "applications",
			Name:      "transitions_total",
			Help:      "Application lifecycle transitions by resulting status.",
		},
		[]string{"status"},
	)

	campaignsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "campaigns",
			Name:      "created_total",
			Help:      "Campaigns created by brands.",
		},
	)

	eventRegistrations = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "events",
			Name:      "registrations_total",
			Help:      "Event registrations recorded.",
		},
	)

	scriptGenerations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scripts",
			Name:      "generations_total",
			Help:      "Script generation requests by result.",
		},
		[]string{"result"},
	)

	scriptDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "scripts",
			Name:      "completion_duration_seconds",
			Help:      "Duration of completion endpoint calls.",
			Buckets:   prometheus.ExponentialBuckets(0.1, 2, 10), // 100ms to ~50s
		},
	)
)

func init() {
	Registry.MustRegister(
		httpInFlight,
		httpRequests,
		httpDuration,
		applicationTransitions,
		campaignsCreated,
		eventRegistrations,
		scriptGenerations,
		scriptDuration,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered Prometheus metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// InstrumentHandler wraps next with request metrics. The route label is the
// chi route pattern so path parameters do not explode cardinality.
func InstrumentHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		httpInFlight.Inc()
		defer httpInFlight.Dec()

		next.ServeHTTP(rec, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}
		method := strings.ToUpper(r.Method)
		httpRequests.WithLabelValues(method, route, strconv.Itoa(rec.status)).Inc()
		httpDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	})
}

// RecordTransition counts an application entering status.
func RecordTransition(status string) {
	applicationTransitions.WithLabelValues(status).Inc()
}

func RecordCampaignCreated() {
	campaignsCreated.Inc()
}

func RecordEventRegistration() {
	eventRegistrations.Inc()
}

// RecordScript counts a script request. Duration is only observed when the
// completion endpoint was actually called.
func RecordScript(result string, duration time.Duration) {
	scriptGenerations.WithLabelValues(result).Inc()
	if duration > 0 {
		scriptDuration.Observe(duration.Seconds())
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
