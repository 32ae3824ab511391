// Package metrics registers the Prometheus collectors of the gateway:
// inbound HTTP traffic and outbound calls to the remote API.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors. All collectors carry the
// service name as a constant label.
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	apiCallsTotal       *prometheus.CounterVec
	apiCallDuration     *prometheus.HistogramVec
	searchesSuperseded  prometheus.Counter
}

// New creates and registers the collectors on the default registry.
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Number of processed HTTP requests.",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),
		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency.",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		}, []string{"method", "path"}),
		apiCallsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "holidaze_api_calls_total",
			Help:        "Number of outbound Holidaze API calls.",
			ConstLabels: constLabels,
		}, []string{"operation", "status"}),
		apiCallDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "holidaze_api_call_duration_seconds",
			Help:        "Outbound Holidaze API call latency.",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		}, []string{"operation"}),
		searchesSuperseded: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "venue_searches_superseded_total",
			Help:        "Number of venue search results discarded by a newer query.",
			ConstLabels: constLabels,
		}),
	}
}

// ObserveHTTPRequest records one inbound HTTP request.
func (m *Metrics) ObserveHTTPRequest(method, path string, statusCode int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(statusCode)).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObserveAPICall records one outbound Holidaze API call. A statusCode of
// zero means the request never produced a response.
func (m *Metrics) ObserveAPICall(operation string, statusCode int, duration time.Duration) {
	m.apiCallsTotal.WithLabelValues(operation, strconv.Itoa(statusCode)).Inc()
	m.apiCallDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// ObserveSearchSuperseded records one search result discarded because a
// newer query replaced it.
func (m *Metrics) ObserveSearchSuperseded() {
	m.searchesSuperseded.Inc()
}
