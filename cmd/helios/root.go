package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"nucleura/helios/pkg/cli"
	"nucleura/helios/pkg/config"
	"nucleura/helios/pkg/ensdf"
	"nucleura/helios/pkg/ensdf/cache"
	"nucleura/helios/pkg/ensdf/nuclide"
	"nucleura/helios/pkg/ensdf/provider"
	"nucleura/helios/pkg/telemetry/logging"
	"nucleura/helios/pkg/telemetry/metrics"
)

var (
	// Global flags
	cfgFile      string
	verbose      bool
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "helios",
	Short: "Helios - evaluated nuclear structure data reader",
	Long: `Helios reads evaluated nuclear structure data in the ENSDF card-image
format and answers questions about it.

It parses mass-chain distribution files into typed datasets:
  - Adopted level schemes with spins, parities, and half-lives
  - Gamma transitions with resolved origin and destination levels
  - Beta, electron-capture, alpha, and delayed-particle decay records
  - Q-values, cross references, and publication references`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "helios.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "text", "output format (text, json)")
}

// loadConfig reads the configuration file named by --config. A missing
// file is only an error when the flag was set explicitly; otherwise the
// defaults apply.
func loadConfig() (*config.Config, error) {
	if _, err := os.Stat(cfgFile); err != nil {
		if rootCmd.PersistentFlags().Changed("config") {
			return nil, fmt.Errorf("config file %q: %w", cfgFile, err)
		}
		return config.NewDefault(), nil
	}
	return config.LoadConfigWithEnvOverrides(cfgFile)
}

// buildService assembles the dataset service from configuration. The
// returned cleanup function closes the cache backend.
func buildService(cfg *config.Config) (*ensdf.Service, func(), error) {
	logger, err := buildLogger(cfg)
	if err != nil {
		return nil, nil, err
	}

	p, err := provider.NewFileProvider(cfg.Provider.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("open data directory: %w", err)
	}

	opts := []ensdf.Option{ensdf.WithLogger(logger)}
	cleanup := func() {}

	if cfg.Cache.Enabled {
		backend, err := buildCacheBackend(cfg)
		if err != nil {
			return nil, nil, err
		}
		opts = append(opts, ensdf.WithCache(backend))
		cleanup = func() { backend.Close() }
	}

	if cfg.Telemetry.Metrics.Enabled {
		collector := metrics.NewCollector(metrics.Config{
			Enabled:   true,
			Namespace: cfg.Telemetry.Metrics.Namespace,
			Subsystem: cfg.Telemetry.Metrics.Subsystem,
		}, nil)
		opts = append(opts, ensdf.WithMetrics(collector))
	}

	return ensdf.NewService(p, opts...), cleanup, nil
}

func buildLogger(cfg *config.Config) (*logging.Logger, error) {
	level := cfg.Telemetry.Logging.Level
	if verbose {
		level = "debug"
	}
	return logging.New(logging.Config{
		Level:     level,
		Format:    cfg.Telemetry.Logging.Format,
		AddSource: cfg.Telemetry.Logging.AddSource,
		Writer:    os.Stderr,
	})
}

func buildCacheBackend(cfg *config.Config) (cache.Backend, error) {
	switch cfg.Cache.Backend {
	case "sqlite":
		return cache.NewSQLiteBackend(cfg.Cache.Path)
	default:
		return cache.NewMemoryBackendWithConfig(cache.MemoryBackendConfig{
			MaxEntries: cfg.Cache.MaxEntries,
		}), nil
	}
}

// parseNuclideArg turns a command-line nuclide identifier like "60CO"
// into mass and proton numbers.
func parseNuclideArg(arg string) (mass, protons int, err error) {
	mass, protons, err = nuclide.AZ(arg)
	if err != nil {
		return 0, 0, &cli.NuclideError{Arg: arg, Message: err.Error()}
	}
	if protons < 0 {
		return 0, 0, &cli.NuclideError{Arg: arg, Message: "element symbol is required"}
	}
	return mass, protons, nil
}

// formatter returns the output formatter selected by --output.
func formatter() (cli.Formatter, error) {
	return cli.NewFormatter(cli.OutputFormat(outputFormat))
}
