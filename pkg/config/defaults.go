package config

import "time"

// Default values for configuration fields.
const (
	// Provider defaults
	DefaultProviderPath  = "./data"
	DefaultProviderWatch = false
	DefaultWatchDebounce = 250 * time.Millisecond

	// Cache defaults
	DefaultCacheEnabled    = true
	DefaultCacheBackend    = "memory"
	DefaultCachePath       = "data/helios-cache.db"
	DefaultCacheMaxEntries = 1024
	DefaultCacheRetention  = 720 * time.Hour
	DefaultSweepSchedule   = "0 3 * * *"

	// Logging defaults
	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"

	// Metrics defaults
	DefaultMetricsEnabled   = false
	DefaultMetricsNamespace = "helios"
	DefaultMetricsSubsystem = "ensdf"
)

// ApplyDefaults fills in default values for any unset configuration
// fields. It modifies the configuration in place.
func ApplyDefaults(cfg *Config) {
	if cfg.Provider.Path == "" {
		cfg.Provider.Path = DefaultProviderPath
	}
	if cfg.Provider.WatchDebounce == 0 {
		cfg.Provider.WatchDebounce = DefaultWatchDebounce
	}

	if cfg.Cache.Backend == "" {
		cfg.Cache.Backend = DefaultCacheBackend
	}
	if cfg.Cache.Path == "" {
		cfg.Cache.Path = DefaultCachePath
	}
	if cfg.Cache.MaxEntries == 0 {
		cfg.Cache.MaxEntries = DefaultCacheMaxEntries
	}
	if cfg.Cache.Retention == 0 {
		cfg.Cache.Retention = DefaultCacheRetention
	}
	if cfg.Cache.SweepSchedule == "" {
		cfg.Cache.SweepSchedule = DefaultSweepSchedule
	}

	if cfg.Telemetry.Logging.Level == "" {
		cfg.Telemetry.Logging.Level = DefaultLogLevel
	}
	if cfg.Telemetry.Logging.Format == "" {
		cfg.Telemetry.Logging.Format = DefaultLogFormat
	}

	if cfg.Telemetry.Metrics.Namespace == "" {
		cfg.Telemetry.Metrics.Namespace = DefaultMetricsNamespace
	}
	if cfg.Telemetry.Metrics.Subsystem == "" {
		cfg.Telemetry.Metrics.Subsystem = DefaultMetricsSubsystem
	}
}

// NewDefault returns a configuration populated entirely with defaults.
func NewDefault() *Config {
	cfg := &Config{}
	cfg.Cache.Enabled = DefaultCacheEnabled
	ApplyDefaults(cfg)
	return cfg
}
