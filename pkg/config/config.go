package config

import "time"

// Config is the root configuration structure for Helios. It covers the
// dataset provider, the dataset cache, and telemetry.
type Config struct {
	// Provider contains configuration for the mass-chain file provider,
	// including the data directory and watch mode.
	Provider ProviderConfig `yaml:"provider"`

	// Cache contains configuration for the parsed-dataset cache,
	// including backend selection and retention.
	Cache CacheConfig `yaml:"cache"`

	// Telemetry contains configuration for logging and metrics.
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ProviderConfig contains configuration for the mass-chain file provider.
type ProviderConfig struct {
	// Path is the directory containing mass-chain files (ensdf.001
	// through ensdf.300).
	// Default: "./data"
	Path string `yaml:"path"`

	// Watch enables filesystem watching of the data directory. When a
	// mass-chain file changes, cached datasets for that mass chain are
	// invalidated.
	// Default: false
	Watch bool `yaml:"watch"`

	// WatchDebounce is how long to wait after the last filesystem event
	// before invalidating, coalescing editor write bursts.
	// Default: 250ms
	WatchDebounce time.Duration `yaml:"watch_debounce"`
}

// CacheConfig contains configuration for the dataset cache.
type CacheConfig struct {
	// Enabled turns the cache on.
	// Default: true
	Enabled bool `yaml:"enabled"`

	// Backend selects the cache backend.
	// Options: "memory", "sqlite"
	// Default: "memory"
	Backend string `yaml:"backend"`

	// Path is the database file path when Backend is "sqlite".
	// Default: "data/helios-cache.db"
	Path string `yaml:"path"`

	// MaxEntries bounds the memory backend. Oldest entries are evicted
	// past this limit. Ignored by the sqlite backend.
	// Default: 1024
	MaxEntries int `yaml:"max_entries"`

	// Retention is how long cached datasets are kept before a sweep
	// removes them.
	// Default: 720h (30 days)
	Retention time.Duration `yaml:"retention"`

	// SweepSchedule is a cron expression controlling retention sweeps.
	// Empty disables sweeping.
	// Default: "0 3 * * *" (daily at 3 AM)
	SweepSchedule string `yaml:"sweep_schedule"`
}

// TelemetryConfig contains configuration for observability.
type TelemetryConfig struct {
	// Logging contains structured logging configuration.
	Logging LoggingConfig `yaml:"logging"`

	// Metrics contains Prometheus metrics configuration.
	Metrics MetricsConfig `yaml:"metrics"`
}

// LoggingConfig contains structured logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level.
	// Options: "debug", "info", "warn", "error"
	// Default: "info"
	Level string `yaml:"level"`

	// Format is the log output format.
	// Options: "json", "text"
	// Default: "json"
	Format string `yaml:"format"`

	// AddSource includes file and line number in log output.
	// Default: false
	AddSource bool `yaml:"add_source"`
}

// MetricsConfig contains Prometheus metrics configuration.
type MetricsConfig struct {
	// Enabled turns metric recording on.
	// Default: false
	Enabled bool `yaml:"enabled"`

	// Namespace is the Prometheus metric namespace.
	// Default: "helios"
	Namespace string `yaml:"namespace"`

	// Subsystem is the Prometheus metric subsystem.
	// Default: "ensdf"
	Subsystem string `yaml:"subsystem"`

	// ListenAddress is the address for the metrics HTTP endpoint.
	// Empty disables the endpoint; metrics can still be scraped through
	// an embedding server.
	// Default: ""
	ListenAddress string `yaml:"listen_address"`
}
