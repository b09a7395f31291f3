// Package monitoring provides Prometheus metrics for the shopping engine
package monitoring

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsCollector holds all Prometheus metrics for the application
type MetricsCollector struct {
	// HTTP metrics
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Business metrics
	listsGeneratedTotal   prometheus.Counter
	listItemsPerGenerate  prometheus.Histogram
	itemsMatchedTotal     *prometheus.CounterVec
	checkoutsTotal        *prometheus.CounterVec
	checkoutEstimatedCost prometheus.Histogram

	// Cache metrics
	cacheOperations *prometheus.CounterVec
}

// NewMetricsCollector creates and registers all metrics
func NewMetricsCollector() *MetricsCollector {
	return &MetricsCollector{
		httpRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		httpRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		listsGeneratedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "shopping_lists_generated_total",
				Help: "Total number of shopping lists generated from meal plans",
			},
		),
		listItemsPerGenerate: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "shopping_list_items",
				Help:    "Number of aggregated items per generated list",
				Buckets: []float64{1, 5, 10, 20, 40, 80},
			},
		),
		itemsMatchedTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "shopping_items_matched_total",
				Help: "Total number of ingredient-to-product match attempts",
			},
			[]string{"outcome"},
		),
		checkoutsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "shopping_checkouts_total",
				Help: "Total number of checkout dispatches",
			},
			[]string{"vendor", "artifact"},
		),
		checkoutEstimatedCost: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "shopping_checkout_estimated_cost",
				Help:    "Estimated cart totals at checkout dispatch",
				Buckets: []float64{10, 25, 50, 100, 200, 500},
			},
		),
		cacheOperations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cache_operations_total",
				Help: "Total number of cache operations",
			},
			[]string{"operation", "status"},
		),
	}
}

// HTTPMiddleware creates a Chi-compatible middleware for HTTP metrics collection
func (m *MetricsCollector) HTTPMiddleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			wrapped := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(wrapped, r)

			duration := time.Since(start).Seconds()
			status := strconv.Itoa(wrapped.status)

			m.httpRequestsTotal.WithLabelValues(r.Method, r.URL.Path, status).Inc()
			m.httpRequestDuration.WithLabelValues(r.Method, r.URL.Path, status).Observe(duration)
		})
	}
}

// Handler returns the Prometheus scrape endpoint handler
func (m *MetricsCollector) Handler() http.Handler {
	return promhttp.Handler()
}

// ListGenerated records one list generation and its item count
func (m *MetricsCollector) ListGenerated(itemCount int) {
	m.listsGeneratedTotal.Inc()
	m.listItemsPerGenerate.Observe(float64(itemCount))
}

// ItemMatched records a match attempt outcome: matched, substitution or unmatched
func (m *MetricsCollector) ItemMatched(outcome string) {
	m.itemsMatchedTotal.WithLabelValues(outcome).Inc()
}

// CheckoutDispatched records a checkout and its estimated total
func (m *MetricsCollector) CheckoutDispatched(vendor, artifact string, estimatedTotal float64) {
	m.checkoutsTotal.WithLabelValues(vendor, artifact).Inc()
	m.checkoutEstimatedCost.Observe(estimatedTotal)
}

// CacheOperation records a cache hit, miss or error
func (m *MetricsCollector) CacheOperation(operation, status string) {
	m.cacheOperations.WithLabelValues(operation, status).Inc()
}

// statusRecorder wraps http.ResponseWriter to capture the status code
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
