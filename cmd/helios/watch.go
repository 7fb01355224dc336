package main

import (
	"context"
	"errors"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"nucleura/helios/pkg/cli"
	"nucleura/helios/pkg/ensdf"
	"nucleura/helios/pkg/ensdf/cache"
	"nucleura/helios/pkg/ensdf/provider"
	"nucleura/helios/pkg/telemetry/health"
	"nucleura/helios/pkg/telemetry/metrics"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the data directory and keep the cache fresh",
	Long: `Watch the data directory for changes to mass-chain files. When a file
changes, cached datasets for that mass chain are invalidated.

Retention sweeps run on the configured cron schedule. If metrics are
enabled with a listen address, a Prometheus endpoint is served at
/metrics along with health probes at /healthz and /readyz. The command
runs until interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		logger, err := buildLogger(cfg)
		if err != nil {
			return err
		}

		p, err := provider.NewFileProvider(cfg.Provider.Path)
		if err != nil {
			return err
		}
		watcher, err := provider.NewWatcher(p)
		if err != nil {
			return err
		}
		if cfg.Provider.WatchDebounce > 0 {
			watcher.SetDebounce(cfg.Provider.WatchDebounce)
		}

		ctx := cli.SetupSignalHandler()

		opts := []ensdf.Option{ensdf.WithLogger(logger)}

		var backend cache.Backend
		if cfg.Cache.Enabled {
			if backend, err = buildCacheBackend(cfg); err != nil {
				return err
			}
			defer backend.Close()
			opts = append(opts, ensdf.WithCache(backend))

			if cfg.Cache.SweepSchedule != "" {
				sweeper := cache.NewSweeper(backend, cache.SweepConfig{
					Schedule:  cfg.Cache.SweepSchedule,
					Retention: cfg.Cache.Retention,
				})
				if err := sweeper.Start(ctx); err != nil {
					return err
				}
				defer sweeper.Stop()
			}
		}

		if cfg.Telemetry.Metrics.Enabled {
			collector := metrics.NewCollector(metrics.Config{
				Enabled:   true,
				Namespace: cfg.Telemetry.Metrics.Namespace,
				Subsystem: cfg.Telemetry.Metrics.Subsystem,
			}, nil)
			opts = append(opts, ensdf.WithMetrics(collector))

			if addr := cfg.Telemetry.Metrics.ListenAddress; addr != "" {
				mux := http.NewServeMux()
				mux.Handle("/metrics", collector.Handler())

				checker := health.NewChecker(0)
				checker.Register("data_dir", func(ctx context.Context) error {
					_, err := os.Stat(cfg.Provider.Path)
					return err
				})
				if backend != nil {
					checker.Register("cache", func(ctx context.Context) error {
						_, _, err := backend.Get(ctx, cache.Key{Name: "probe"})
						return err
					})
				}
				mux.Handle("/healthz", checker.LivenessHandler())
				mux.Handle("/readyz", checker.ReadinessHandler())
				mux.Handle("/version", health.VersionHandler(Version, GitCommit, BuildDate))

				go func() {
					if err := http.ListenAndServe(addr, mux); err != nil {
						logger.Error("telemetry endpoint failed", "error", err)
					}
				}()
				logger.Info("telemetry endpoint started", "address", addr)
			}
		}

		svc := ensdf.NewService(p, opts...)

		logger.Info("watching data directory", "path", cfg.Provider.Path)
		err = watcher.Watch(ctx, func(mass int) {
			if err := svc.InvalidateMass(ctx, mass); err != nil {
				logger.Error("invalidation failed", "mass", mass, "error", err)
			}
		})
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
