package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// CacheMetrics tracks dataset cache performance.
//
// Metrics:
//   - helios_ensdf_cache_hits_total: Total cache hits by cache name
//   - helios_ensdf_cache_misses_total: Total cache misses by cache name
//   - helios_ensdf_cache_entries: Current number of entries in cache
//   - helios_ensdf_cache_evictions_total: Total cache evictions
type CacheMetrics struct {
	hitsTotal      *prometheus.CounterVec
	missesTotal    *prometheus.CounterVec
	entries        *prometheus.GaugeVec
	evictionsTotal *prometheus.CounterVec
}

// NewCacheMetrics creates and registers cache metrics with the provided registry.
func NewCacheMetrics(cfg Config, registry *prometheus.Registry) *CacheMetrics {
	cm := &CacheMetrics{
		hitsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "cache_hits_total",
				Help:      "Total number of cache hits",
			},
			[]string{"cache"},
		),

		missesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "cache_misses_total",
				Help:      "Total number of cache misses",
			},
			[]string{"cache"},
		),

		entries: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "cache_entries",
				Help:      "Current number of entries in cache",
			},
			[]string{"cache"},
		),

		evictionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "cache_evictions_total",
				Help:      "Total number of cache evictions",
			},
			[]string{"cache"},
		),
	}

	registry.MustRegister(
		cm.hitsTotal,
		cm.missesTotal,
		cm.entries,
		cm.evictionsTotal,
	)

	return cm
}

// RecordHit records a cache hit.
func (cm *CacheMetrics) RecordHit(cache string) {
	cm.hitsTotal.WithLabelValues(cache).Inc()
}

// RecordMiss records a cache miss.
func (cm *CacheMetrics) RecordMiss(cache string) {
	cm.missesTotal.WithLabelValues(cache).Inc()
}

// SetEntries sets the current entry count.
func (cm *CacheMetrics) SetEntries(cache string, entries int) {
	cm.entries.WithLabelValues(cache).Set(float64(entries))
}

// RecordEviction records an eviction.
func (cm *CacheMetrics) RecordEviction(cache string) {
	cm.evictionsTotal.WithLabelValues(cache).Inc()
}
