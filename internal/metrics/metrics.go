// Package metrics provides Prometheus metrics collection for the packlist service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// PacklistGenerationsTotal tracks total packing list generations.
	PacklistGenerationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "packlist_generations_total",
			Help: "Total number of packing list generations",
		},
		[]string{"status"},
	)

	// PacklistGenerationDuration tracks packing list generation duration.
	PacklistGenerationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "packlist_generation_duration_seconds",
			Help:    "Packing list generation duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
		},
	)

	// PacklistItemsGenerated tracks the number of items in generated lists.
	PacklistItemsGenerated = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "packlist_items_generated",
			Help:    "Number of items in generated packing lists",
			Buckets: []float64{10, 20, 30, 40, 50, 75, 100},
		},
	)

	// WeatherLookupsTotal tracks total external weather lookups.
	WeatherLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weather_lookups_total",
			Help: "Total number of external weather lookups",
		},
		[]string{"status"},
	)

	// WeatherLookupDuration tracks external weather lookup duration.
	WeatherLookupDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "weather_lookup_duration_seconds",
			Help:    "External weather lookup duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0},
		},
	)

	// CacheOperationsTotal tracks cache operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"operation", "result"},
	)

	// CacheSize tracks current cache size.
	CacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Current cache size",
		},
	)

	// CacheCapacity tracks cache capacity.
	CacheCapacity = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_capacity",
			Help: "Cache capacity",
		},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordGeneration records metrics for a packing list generation.
func RecordGeneration(duration time.Duration, status string, itemCount int) {
	PacklistGenerationDuration.Observe(duration.Seconds())
	PacklistGenerationsTotal.WithLabelValues(status).Inc()
	if itemCount > 0 {
		PacklistItemsGenerated.Observe(float64(itemCount))
	}
}

// RecordWeatherLookup records metrics for an external weather lookup.
func RecordWeatherLookup(duration time.Duration, status string) {
	WeatherLookupDuration.Observe(duration.Seconds())
	WeatherLookupsTotal.WithLabelValues(status).Inc()
}

// RecordCacheOperation records metrics for a cache operation.
func RecordCacheOperation(operation, result string) {
	CacheOperationsTotal.WithLabelValues(operation, result).Inc()
}

// UpdateCacheMetrics updates cache size and capacity metrics.
func UpdateCacheMetrics(size, capacity int) {
	CacheSize.Set(float64(size))
	CacheCapacity.Set(float64(capacity))
}
