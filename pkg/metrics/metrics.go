package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dskvich/healthy-real-ai/pkg/domain"
)

const namespace = "healthy_real_ai"

type Metrics struct {
	registry         *prometheus.Registry
	upstreamCalls    *prometheus.CounterVec
	upstreamDuration *prometheus.HistogramVec
	httpRequests     *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		upstreamCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_calls_total",
			Help:      "Outbound calls to third-party services by outcome.",
		}, []string{"service", "operation", "outcome"}),
		upstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_call_duration_seconds",
			Help:      "Latency of outbound calls to third-party services.",
			Buckets:   []float64{.1, .25, .5, 1, 2.5, 5, 10, 30, 60},
		}, []string{"service", "operation"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Handled HTTP requests by route and status.",
		}, []string{"route", "method", "status"}),
	}

	m.registry.MustRegister(
		m.upstreamCalls,
		m.upstreamDuration,
		m.httpRequests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveUpstream records one outbound call started at start.
// A nil receiver is a no-op so clients can run without metrics.
func (m *Metrics) ObserveUpstream(service, operation string, start time.Time, err error) {
	if m == nil {
		return
	}
	m.upstreamDuration.WithLabelValues(service, operation).Observe(time.Since(start).Seconds())
	m.upstreamCalls.WithLabelValues(service, operation, Outcome(err)).Inc()
}

func (m *Metrics) ObserveHTTP(route, method string, status int) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Outcome labels an upstream result with its error class.
func Outcome(err error) string {
	var (
		netErr  *domain.NetworkError
		authErr *domain.AuthError
		malErr  *domain.MalformedResponseError
	)
	switch {
	case err == nil:
		return "success"
	case errors.As(err, &authErr):
		return "auth_error"
	case errors.As(err, &malErr):
		return "malformed_response"
	case errors.As(err, &netErr):
		return "network_error"
	default:
		return "error"
	}
}
