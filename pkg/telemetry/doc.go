// Package telemetry groups the observability packages of helios.
//
//   - logging: structured slog-based logging with context field extraction
//   - metrics: Prometheus metrics for parsing and the dataset cache
//   - health: liveness and readiness probes for long-running processes
//
// Library consumers that want no telemetry pay nothing: the service
// defaults to a discard logger and records metrics only when a collector
// is attached.
package telemetry
