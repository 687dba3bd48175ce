// Package metrics defines the Prometheus metrics exported by the pipeline.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the pipeline's Prometheus collectors.
//
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	ColumnsFitted *prometheus.CounterVec
	FitFailures   *prometheus.CounterVec
	FitDuration   *prometheus.HistogramVec
	Categories    *prometheus.GaugeVec
	RowsEncoded   *prometheus.CounterVec
	UnseenValues  *prometheus.CounterVec
}

// New creates the metrics and registers them with registerer.
// A nil registerer creates unregistered collectors.
func New(registerer prometheus.Registerer) *Metrics {
	factory := promauto.With(registerer)

	return &Metrics{
		ColumnsFitted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catenc_columns_fitted_total",
				Help: "Total number of columns fitted successfully",
			},
			[]string{"column"},
		),
		FitFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catenc_fit_failures_total",
				Help: "Total number of failed column fits",
			},
			[]string{"column"},
		),
		FitDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "catenc_fit_duration_seconds",
				Help:    "Duration of a complete estimator fit",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"status"},
		),
		Categories: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "catenc_categories",
				Help: "Number of categories in the fitted encoder of a column",
			},
			[]string{"column"},
		),
		RowsEncoded: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catenc_rows_encoded_total",
				Help: "Total number of values encoded",
			},
			[]string{"column"},
		),
		UnseenValues: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catenc_unseen_values_total",
				Help: "Total number of encoded values that were not seen during fit",
			},
			[]string{"column"},
		),
	}
}

// ColumnFitted records a successful fit of column with n categories.
func (m *Metrics) ColumnFitted(column string, n int) {
	if m == nil {
		return
	}
	m.ColumnsFitted.WithLabelValues(column).Inc()
	m.Categories.WithLabelValues(column).Set(float64(n))
}

// ColumnLoaded records a column restored from a saved model.
func (m *Metrics) ColumnLoaded(column string, n int) {
	if m == nil {
		return
	}
	m.Categories.WithLabelValues(column).Set(float64(n))
}

// FitFailed records a failed fit of column.
func (m *Metrics) FitFailed(column string) {
	if m == nil {
		return
	}
	m.FitFailures.WithLabelValues(column).Inc()
}

// ObserveFit records the duration of a whole estimator fit.
func (m *Metrics) ObserveFit(d time.Duration, err error) {
	if m == nil {
		return
	}
	status := "success"
	if err != nil {
		status = "failure"
	}
	m.FitDuration.WithLabelValues(status).Observe(d.Seconds())
}

// Encoded records rows encoded values for column, unseen of which were unseen.
func (m *Metrics) Encoded(column string, rows, unseen int) {
	if m == nil {
		return
	}
	m.RowsEncoded.WithLabelValues(column).Add(float64(rows))
	if unseen > 0 {
		m.UnseenValues.WithLabelValues(column).Add(float64(unseen))
	}
}
