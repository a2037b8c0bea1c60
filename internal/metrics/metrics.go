// Package metrics exposes Prometheus metrics for HTTP traffic and catalogue queries.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	namespace = "alloy_catalog"

	labelMethod    = "method"
	labelPath      = "path"
	labelStatus    = "status"
	labelOperation = "operation"
	labelOutcome   = "outcome"
)

// Metrics holds the collectors registered for the service.
type Metrics struct {
	Requests     *prometheus.CounterVec
	Latency      *prometheus.HistogramVec
	Queries      *prometheus.CounterVec
	QueryLatency *prometheus.HistogramVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total HTTP requests",
			},
			[]string{labelMethod, labelPath, labelStatus},
		),
		Latency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP latency",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{labelMethod, labelPath},
		),
		Queries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "queries_total",
				Help:      "Finished catalogue queries by operation and outcome",
			},
			[]string{labelOperation, labelOutcome},
		),
		QueryLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "query_duration_seconds",
				Help:      "Catalogue query latency",
				Buckets:   []float64{.0005, .001, .005, .01, .05, .1, .5, 1, 5, 30},
			},
			[]string{labelOperation},
		),
	}

	reg.MustRegister(m.Requests, m.Latency, m.Queries, m.QueryLatency)
	return m
}

// ObserveQuery records a finished catalogue query.
func (m *Metrics) ObserveQuery(operation, outcome string, duration time.Duration) {
	m.Queries.WithLabelValues(operation, outcome).Inc()
	m.QueryLatency.WithLabelValues(operation).Observe(duration.Seconds())
}

// Middleware records request counts and latency labelled by route pattern.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		start := time.Now()
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		path := RoutePattern(r)
		m.Latency.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())
		m.Requests.WithLabelValues(r.Method, path, strconv.Itoa(status)).Inc()
	})
}

// UnmatchedRoute labels requests that matched no route.
const UnmatchedRoute = "unmatched"

// RoutePattern returns the matched chi route pattern, or UnmatchedRoute
// so that arbitrary paths never become label values.
func RoutePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if rp := rctx.RoutePattern(); rp != "" {
			return rp
		}
	}
	return UnmatchedRoute
}

// Handler serves the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
