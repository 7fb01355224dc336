package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads configuration from a YAML file at the specified path.
// It applies default values, validates the configuration, and returns any
// errors. Environment variables are not consulted; use
// LoadConfigWithEnvOverrides for that.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// LoadConfigWithEnvOverrides loads configuration from a YAML file and applies
// environment variable overrides. Environment variables follow the naming
// convention HELIOS_SECTION_FIELD (e.g., HELIOS_PROVIDER_PATH) and always
// take precedence over file-based configuration.
//
// The loading sequence is:
// 1. Load YAML from file
// 2. Apply default values
// 3. Apply environment variable overrides
// 4. Validate final configuration
func LoadConfigWithEnvOverrides(path string) (*Config, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed after environment overrides: %w", err)
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides to the
// configuration. Environment variables use the format HELIOS_SECTION_FIELD.
func applyEnvOverrides(cfg *Config) {
	// Provider overrides
	if val := os.Getenv("HELIOS_PROVIDER_PATH"); val != "" {
		cfg.Provider.Path = val
	}
	if val := os.Getenv("HELIOS_PROVIDER_WATCH"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Provider.Watch = b
		}
	}
	if val := os.Getenv("HELIOS_PROVIDER_WATCH_DEBOUNCE"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Provider.WatchDebounce = d
		}
	}

	// Cache overrides
	if val := os.Getenv("HELIOS_CACHE_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Cache.Enabled = b
		}
	}
	if val := os.Getenv("HELIOS_CACHE_BACKEND"); val != "" {
		cfg.Cache.Backend = val
	}
	if val := os.Getenv("HELIOS_CACHE_PATH"); val != "" {
		cfg.Cache.Path = val
	}
	if val := os.Getenv("HELIOS_CACHE_MAX_ENTRIES"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			cfg.Cache.MaxEntries = i
		}
	}
	if val := os.Getenv("HELIOS_CACHE_RETENTION"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Cache.Retention = d
		}
	}
	if val := os.Getenv("HELIOS_CACHE_SWEEP_SCHEDULE"); val != "" {
		cfg.Cache.SweepSchedule = val
	}

	// Telemetry overrides
	if val := os.Getenv("HELIOS_LOG_LEVEL"); val != "" {
		cfg.Telemetry.Logging.Level = val
	}
	if val := os.Getenv("HELIOS_LOG_FORMAT"); val != "" {
		cfg.Telemetry.Logging.Format = val
	}
	if val := os.Getenv("HELIOS_METRICS_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Telemetry.Metrics.Enabled = b
		}
	}
	if val := os.Getenv("HELIOS_METRICS_LISTEN_ADDRESS"); val != "" {
		cfg.Telemetry.Metrics.ListenAddress = val
	}
}
