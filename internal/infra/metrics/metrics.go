// Package metrics exposes ingestion and report counters to Prometheus.
package metrics

import (
	"net/http"
	"time"

	"insulink/internal/domain/entity"
	"insulink/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// UploadsTotal counts device uploads by outcome.
	UploadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "insulink_uploads_total",
			Help: "Total number of device uploads",
		},
		[]string{"outcome"},
	)

	// UploadDuration tracks how long an upload transaction takes.
	UploadDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "insulink_upload_duration_seconds",
			Help:    "Duration of device uploads in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"outcome"},
	)

	// ReadingsInsertedTotal counts samples stored per series.
	ReadingsInsertedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "insulink_readings_inserted_total",
			Help: "Total number of readings stored",
		},
		[]string{"series"},
	)

	// ReadingsSkippedTotal counts duplicate samples ignored per series.
	ReadingsSkippedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "insulink_readings_skipped_total",
			Help: "Total number of duplicate readings skipped",
		},
		[]string{"series"},
	)

	// ReportsTotal counts dashboard queries by report and status.
	ReportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "insulink_reports_total",
			Help: "Total number of dashboard report queries",
		},
		[]string{"report", "status"},
	)
)

type prometheusRecorder struct{}

// NewRecorder returns a UsageRecorder backed by the package collectors.
func NewRecorder() service.UsageRecorder {
	return prometheusRecorder{}
}

// RecordUpload records one device upload.
func (prometheusRecorder) RecordUpload(outcome string, elapsed time.Duration) {
	UploadsTotal.WithLabelValues(outcome).Inc()
	UploadDuration.WithLabelValues(outcome).Observe(elapsed.Seconds())
}

// RecordReadings records one series of an upload.
func (prometheusRecorder) RecordReadings(series entity.Series, inserted, skipped int) {
	if inserted > 0 {
		ReadingsInsertedTotal.WithLabelValues(series.String()).Add(float64(inserted))
	}
	if skipped > 0 {
		ReadingsSkippedTotal.WithLabelValues(series.String()).Add(float64(skipped))
	}
}

// RecordReport records one dashboard query.
func (prometheusRecorder) RecordReport(name string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	ReportsTotal.WithLabelValues(name, status).Inc()
}

// Handler serves the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
