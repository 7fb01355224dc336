package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func newTestCollector(t *testing.T, enabled bool) *Collector {
	t.Helper()
	return NewCollector(Config{Enabled: enabled}, prometheus.NewRegistry())
}

func TestCollectorRecordParse(t *testing.T) {
	c := newTestCollector(t, true)

	c.RecordParse("success", 5*time.Millisecond)
	c.RecordParse("success", 2*time.Millisecond)
	c.RecordParse("error", time.Millisecond)

	if got := testutil.ToFloat64(c.parseMetrics.parsedTotal.WithLabelValues("success")); got != 2 {
		t.Errorf("parsed success = %v, want 2", got)
	}
	if got := testutil.ToFloat64(c.parseMetrics.parsedTotal.WithLabelValues("error")); got != 1 {
		t.Errorf("parsed error = %v, want 1", got)
	}
}

func TestCollectorRecordParseError(t *testing.T) {
	c := newTestCollector(t, true)
	c.RecordParseError("malformed_line")
	c.RecordParseError("malformed_line")
	c.RecordParseError("invalid_property")

	if got := testutil.ToFloat64(c.parseMetrics.errorsTotal.WithLabelValues("malformed_line")); got != 2 {
		t.Errorf("malformed_line errors = %v, want 2", got)
	}
	if got := testutil.ToFloat64(c.parseMetrics.errorsTotal.WithLabelValues("invalid_property")); got != 1 {
		t.Errorf("invalid_property errors = %v, want 1", got)
	}
}

func TestCollectorRecordRecords(t *testing.T) {
	c := newTestCollector(t, true)
	c.RecordRecords("level", 12)
	c.RecordRecords("gamma", 30)
	c.RecordRecords("level", 3)

	if got := testutil.ToFloat64(c.parseMetrics.recordsTotal.WithLabelValues("level")); got != 15 {
		t.Errorf("level records = %v, want 15", got)
	}
	if got := testutil.ToFloat64(c.parseMetrics.recordsTotal.WithLabelValues("gamma")); got != 30 {
		t.Errorf("gamma records = %v, want 30", got)
	}
}

func TestCollectorCacheMetrics(t *testing.T) {
	c := newTestCollector(t, true)
	c.RecordCacheHit("dataset")
	c.RecordCacheHit("dataset")
	c.RecordCacheMiss("dataset")
	c.SetCacheEntries("dataset", 42)
	c.RecordCacheEviction("dataset")

	if got := testutil.ToFloat64(c.cacheMetrics.hitsTotal.WithLabelValues("dataset")); got != 2 {
		t.Errorf("cache hits = %v, want 2", got)
	}
	if got := testutil.ToFloat64(c.cacheMetrics.missesTotal.WithLabelValues("dataset")); got != 1 {
		t.Errorf("cache misses = %v, want 1", got)
	}
	if got := testutil.ToFloat64(c.cacheMetrics.entries.WithLabelValues("dataset")); got != 42 {
		t.Errorf("cache entries = %v, want 42", got)
	}
	if got := testutil.ToFloat64(c.cacheMetrics.evictionsTotal.WithLabelValues("dataset")); got != 1 {
		t.Errorf("cache evictions = %v, want 1", got)
	}
}

func TestCollectorDisabled(t *testing.T) {
	c := newTestCollector(t, false)
	c.RecordParse("success", time.Millisecond)
	c.RecordParseError("malformed_line")
	c.RecordRecords("level", 5)
	c.RecordCacheHit("dataset")
	c.RecordCacheMiss("dataset")
	c.SetCacheEntries("dataset", 10)
	c.RecordCacheEviction("dataset")

	if got := testutil.ToFloat64(c.parseMetrics.parsedTotal.WithLabelValues("success")); got != 0 {
		t.Errorf("parsed success = %v, want 0 when disabled", got)
	}
	if got := testutil.ToFloat64(c.cacheMetrics.hitsTotal.WithLabelValues("dataset")); got != 0 {
		t.Errorf("cache hits = %v, want 0 when disabled", got)
	}
}

func TestCollectorDefaults(t *testing.T) {
	c := NewCollector(Config{Enabled: true}, nil)
	if c.Registry() == nil {
		t.Fatal("Registry() = nil, want a registry created on demand")
	}
	if c.config.Namespace != "helios" || c.config.Subsystem != "ensdf" {
		t.Errorf("defaults = %q/%q, want helios/ensdf", c.config.Namespace, c.config.Subsystem)
	}
	if len(c.config.ParseDurationBuckets) == 0 {
		t.Error("ParseDurationBuckets empty, want defaults filled in")
	}
}

func TestRegisteredMetricNames(t *testing.T) {
	c := newTestCollector(t, true)
	c.RecordParse("success", time.Millisecond)
	c.RecordCacheHit("dataset")

	families, err := c.Registry().Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}
	names := make(map[string]bool)
	for _, mf := range families {
		names[mf.GetName()] = true
	}
	for _, want := range []string{
		"helios_ensdf_datasets_parsed_total",
		"helios_ensdf_parse_duration_seconds",
		"helios_ensdf_cache_hits_total",
	} {
		if !names[want] {
			t.Errorf("metric %q not registered; got %v", want, names)
		}
	}
}
