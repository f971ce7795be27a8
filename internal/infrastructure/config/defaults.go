package config

import (
	"time"

	"github.com/andrescamacho/starlanes-go/internal/domain/galaxy"
)

// SetDefaults sets default values for all configuration fields
func SetDefaults(cfg *Config) {
	// Database defaults: a local sqlite file unless postgres is configured
	if cfg.Database.Type == "" {
		cfg.Database.Type = "sqlite"
	}
	if cfg.Database.Type == "sqlite" && cfg.Database.Path == "" {
		cfg.Database.Path = "starlanes.db"
	}
	if cfg.Database.Postgres.Host == "" {
		cfg.Database.Postgres.Host = "localhost"
	}
	if cfg.Database.Postgres.Port == 0 {
		cfg.Database.Postgres.Port = 5432
	}
	if cfg.Database.Postgres.User == "" {
		cfg.Database.Postgres.User = "starlanes"
	}
	if cfg.Database.Postgres.Name == "" {
		cfg.Database.Postgres.Name = "starlanes"
	}
	if cfg.Database.Postgres.SSLMode == "" {
		cfg.Database.Postgres.SSLMode = "disable"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 5 * time.Minute
	}

	// Game defaults
	if cfg.Game.DefaultGovernor == "" {
		cfg.Game.DefaultGovernor = string(galaxy.GovernorBalanced)
	}
	if cfg.Game.MaxFleetsPerOwner == 0 {
		cfg.Game.MaxFleetsPerOwner = galaxy.DefaultMaxFleetsPerOwner
	}
	if cfg.Game.MaxShipsPerStack == 0 {
		cfg.Game.MaxShipsPerStack = galaxy.DefaultMaxShipsPerStack
	}
	if cfg.Game.WarpDistancePerTurn == 0 {
		cfg.Game.WarpDistancePerTurn = galaxy.DefaultDistancePerWarp
	}
	if cfg.Game.ArrivalSnapRadius == 0 {
		cfg.Game.ArrivalSnapRadius = galaxy.DefaultArrivalSnapRadius
	}

	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stderr"
	}

	// Metrics defaults
	if cfg.Metrics.TextfilePath == "" {
		cfg.Metrics.TextfilePath = "starlanes.prom"
	}
}
