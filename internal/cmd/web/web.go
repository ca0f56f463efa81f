// Package web parses dashboard web flags and launches the service.
package web

import (
	"context"
	"flag"
	"fmt"
	"log"

	entrypoint "github.com/louisbranch/socialcrm/internal/platform/cmd"
	"github.com/louisbranch/socialcrm/internal/services/web"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr      string `env:"SOCIALCRM_WEB_HTTP_ADDR" envDefault:"localhost:3000"`
	MetricsAddr   string `env:"SOCIALCRM_WEB_METRICS_ADDR"`
	EnableMetrics bool   `env:"SOCIALCRM_WEB_METRICS_ENABLED" envDefault:"true"`
	DefaultLocale string `env:"SOCIALCRM_WEB_DEFAULT_LOCALE" envDefault:"en-US"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.MetricsAddr, "metrics-addr", cfg.MetricsAddr, "Dedicated metrics listen address (empty serves /metrics on the HTTP address)")
	fs.BoolVar(&cfg.EnableMetrics, "enable-metrics", cfg.EnableMetrics, "Expose Prometheus request metrics")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the dashboard web server.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWeb, func(ctx context.Context) error {
		server, err := web.NewServer(ctx, web.Config{
			HTTPAddr:      cfg.HTTPAddr,
			MetricsAddr:   cfg.MetricsAddr,
			EnableMetrics: cfg.EnableMetrics,
			DefaultLocale: cfg.DefaultLocale,
			Logger:        log.Default(),
		})
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}
