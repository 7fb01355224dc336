package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Config configures the metrics collector.
type Config struct {
	// Enabled turns metric recording on. When false, Record* calls
	// are no-ops.
	Enabled bool

	// Namespace is the Prometheus metric namespace (default "helios").
	Namespace string

	// Subsystem is the Prometheus metric subsystem (default "ensdf").
	Subsystem string

	// ParseDurationBuckets are histogram buckets for dataset parse
	// times in seconds.
	ParseDurationBuckets []float64
}

// Collector manages Prometheus metrics for the parsing pipeline and
// the dataset cache.
type Collector struct {
	config   Config
	registry *prometheus.Registry

	parseMetrics *ParseMetrics
	cacheMetrics *CacheMetrics
}

// NewCollector creates a metrics collector backed by registry. If
// registry is nil a new one is created.
func NewCollector(cfg Config, registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	if cfg.Namespace == "" {
		cfg.Namespace = "helios"
	}
	if cfg.Subsystem == "" {
		cfg.Subsystem = "ensdf"
	}
	if len(cfg.ParseDurationBuckets) == 0 {
		// Mass chains range from a handful of datasets to several
		// hundred; parses land between microseconds and a second.
		cfg.ParseDurationBuckets = []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0}
	}

	c := &Collector{
		config:   cfg,
		registry: registry,
	}

	c.parseMetrics = NewParseMetrics(cfg, registry)
	c.cacheMetrics = NewCacheMetrics(cfg, registry)

	return c
}

// RecordParse records a completed dataset parse.
//
// status is "success" or "error"; duration is the wall time spent
// parsing.
func (c *Collector) RecordParse(status string, duration time.Duration) {
	if !c.config.Enabled {
		return
	}
	c.parseMetrics.RecordParse(status, duration)
}

// RecordParseError records a parse failure by error kind
// (e.g. "malformed_line", "invalid_property").
func (c *Collector) RecordParseError(kind string) {
	if !c.config.Enabled {
		return
	}
	c.parseMetrics.RecordError(kind)
}

// RecordRecords records the number of records of a given type produced
// by a parse (e.g. "level", "gamma", "beta").
func (c *Collector) RecordRecords(recordType string, count int) {
	if !c.config.Enabled {
		return
	}
	c.parseMetrics.RecordRecords(recordType, count)
}

// RecordCacheHit records a cache hit for the named cache.
func (c *Collector) RecordCacheHit(cache string) {
	if !c.config.Enabled {
		return
	}
	c.cacheMetrics.RecordHit(cache)
}

// RecordCacheMiss records a cache miss for the named cache.
func (c *Collector) RecordCacheMiss(cache string) {
	if !c.config.Enabled {
		return
	}
	c.cacheMetrics.RecordMiss(cache)
}

// SetCacheEntries sets the current entry count for the named cache.
func (c *Collector) SetCacheEntries(cache string, entries int) {
	if !c.config.Enabled {
		return
	}
	c.cacheMetrics.SetEntries(cache, entries)
}

// RecordCacheEviction records an eviction from the named cache.
func (c *Collector) RecordCacheEviction(cache string) {
	if !c.config.Enabled {
		return
	}
	c.cacheMetrics.RecordEviction(cache)
}

// Registry returns the underlying Prometheus registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}
