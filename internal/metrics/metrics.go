// Package metrics provides Prometheus metrics collection for the colis service.
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

	// StampLookupsTotal tracks availability lookups by outcome (found or empty).
	StampLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stamp_lookups_total",
			Help: "Total number of stamp availability lookups",
		},
		[]string{"result"},
	)

	// StampsImportedTotal counts stamps inserted through bulk imports.
	StampsImportedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "stamps_imported_total",
			Help: "Total number of stamps inserted by bulk imports",
		},
	)

	// StampsSkippedTotal counts import entries skipped as duplicates.
	StampsSkippedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "stamps_import_skipped_total",
			Help: "Total number of import entries skipped as duplicates",
		},
	)

	// ParcelReconciliationsTotal tracks parcel writes by operation and status.
	ParcelReconciliationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parcel_reconciliations_total",
			Help: "Total number of parcel create/update/delete reconciliations",
		},
		[]string{"operation", "status"},
	)

	// ParcelReconciliationDuration tracks reconciliation transaction duration.
	ParcelReconciliationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "parcel_reconciliation_duration_seconds",
			Help:    "Parcel reconciliation duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
		},
	)

	// NegativeStockWarningsTotal counts product lines that drove stock below zero.
	NegativeStockWarningsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "negative_stock_warnings_total",
			Help: "Total number of negative-stock warnings raised by reconciliations",
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

// RecordStampLookup records an availability lookup outcome.
func RecordStampLookup(found bool) {
	result := "empty"
	if found {
		result = "found"
	}
	StampLookupsTotal.WithLabelValues(result).Inc()
}

// RecordStampImport records a bulk import outcome.
func RecordStampImport(inserted, skipped int) {
	StampsImportedTotal.Add(float64(inserted))
	StampsSkippedTotal.Add(float64(skipped))
}

// RecordReconciliation records a parcel reconciliation outcome.
func RecordReconciliation(operation string, duration time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	ParcelReconciliationsTotal.WithLabelValues(operation, status).Inc()
	ParcelReconciliationDuration.Observe(duration.Seconds())
}

// RecordNegativeStockWarnings bumps the warning counter.
func RecordNegativeStockWarnings(count int) {
	if count > 0 {
		NegativeStockWarningsTotal.Add(float64(count))
	}
}
