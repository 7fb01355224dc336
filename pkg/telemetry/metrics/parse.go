package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ParseMetrics tracks dataset parsing metrics.
//
// Metrics:
//   - helios_ensdf_datasets_parsed_total: Parses by status
//   - helios_ensdf_parse_errors_total: Parse errors by kind
//   - helios_ensdf_parse_duration_seconds: Parse latency histogram
//   - helios_ensdf_records_total: Records produced by type
type ParseMetrics struct {
	parsedTotal   *prometheus.CounterVec
	errorsTotal   *prometheus.CounterVec
	parseDuration prometheus.Histogram
	recordsTotal  *prometheus.CounterVec
}

// NewParseMetrics creates and registers parse metrics with the provided registry.
func NewParseMetrics(cfg Config, registry *prometheus.Registry) *ParseMetrics {
	pm := &ParseMetrics{
		parsedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "datasets_parsed_total",
				Help:      "Total number of dataset parses",
			},
			[]string{"status"},
		),

		errorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "parse_errors_total",
				Help:      "Total number of parse errors by kind",
			},
			[]string{"kind"},
		),

		parseDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "parse_duration_seconds",
				Help:      "Time spent parsing a single dataset",
				Buckets:   cfg.ParseDurationBuckets,
			},
		),

		recordsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "records_total",
				Help:      "Total number of records produced by type",
			},
			[]string{"type"},
		),
	}

	registry.MustRegister(
		pm.parsedTotal,
		pm.errorsTotal,
		pm.parseDuration,
		pm.recordsTotal,
	)

	return pm
}

// RecordParse records a completed parse.
func (pm *ParseMetrics) RecordParse(status string, duration time.Duration) {
	pm.parsedTotal.WithLabelValues(status).Inc()
	pm.parseDuration.Observe(duration.Seconds())
}

// RecordError records a parse error by kind.
func (pm *ParseMetrics) RecordError(kind string) {
	pm.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordRecords records produced records by type.
func (pm *ParseMetrics) RecordRecords(recordType string, count int) {
	pm.recordsTotal.WithLabelValues(recordType).Add(float64(count))
}
