package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port         int    `env:"PORT" envDefault:"10000"`
	DatabaseURL  string `env:"DATABASE_URL"`
	DatabaseType string `env:"DATABASE_TYPE" envDefault:"postgres"`

	// Reporting knobs. The timezone fixes the calendar used for the
	// daily series and for submission timestamps.
	Timezone string `env:"REPORT_TIMEZONE" envDefault:"America/Argentina/Buenos_Aires"`
	TopN     int    `env:"DASHBOARD_TOP_N" envDefault:"10"`
	RecentK  int    `env:"DASHBOARD_RECENT_K" envDefault:"100"`

	// Optional. When set, GET /export requires a matching X-Export-Key.
	ExportKeySalt string `env:"EXPORT_KEY_SALT"`
}

// ParseFlags builds the configuration from environment variables and
// CLI flags. Flags override the environment.
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	// Environment first; flag defaults below pick up whatever it set
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs := flag.NewFlagSet("ship-check", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", cfg.Port, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", cfg.DatabaseURL, "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", cfg.DatabaseType, "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.Timezone, "tz", cfg.Timezone, "Reporting timezone (IANA name)")
	fs.IntVar(&cfg.TopN, "top-n", cfg.TopN, "Leaderboard size")
	fs.IntVar(&cfg.RecentK, "recent-k", cfg.RecentK, "Recency feed size")
	fs.StringVar(&cfg.ExportKeySalt, "export-salt", cfg.ExportKeySalt, "Export key salt (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}
	if cfg.DatabaseType != "postgres" && cfg.DatabaseType != "sqlite" {
		return Config{}, fmt.Errorf("unknown database type %q (want sqlite or postgres)", cfg.DatabaseType)
	}
	if cfg.TopN <= 0 || cfg.RecentK <= 0 {
		return Config{}, errors.New("top-n and recent-k must be positive")
	}
	if _, err := time.LoadLocation(cfg.Timezone); err != nil {
		return Config{}, fmt.Errorf("invalid timezone %q: %w", cfg.Timezone, err)
	}

	return cfg, nil
}

// Location resolves the configured reporting timezone. ParseFlags has
// already validated the name, so failures only happen for hand-built
// configs.
func (c Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}
