// Package metrics provides Prometheus metrics for dataset parsing and
// the dataset cache, exposed through a single Collector.
package metrics
