package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/starlanes-go/internal/domain/galaxy"
	"github.com/andrescamacho/starlanes-go/internal/infrastructure/config"
)

func TestSetDefaults(t *testing.T) {
	cfg := &config.Config{}

	config.SetDefaults(cfg)

	assert.Equal(t, "sqlite", cfg.Database.Type)
	assert.Equal(t, "starlanes.db", cfg.Database.Path)
	assert.Equal(t, "starlanes.db", cfg.Database.DSN())
	assert.Equal(t, "balanced", cfg.Game.DefaultGovernor)
	assert.Equal(t, galaxy.DefaultRules(), cfg.Game.Rules())
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "stderr", cfg.Logging.Output)
	assert.False(t, cfg.Metrics.Enabled)
	assert.NoError(t, config.ValidateConfig(cfg))
}

func TestValidateConfig_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *config.Config)
		field  string
	}{
		{"unknown database", func(cfg *config.Config) { cfg.Database.Type = "mysql" }, "database.type"},
		{"unknown governor", func(cfg *config.Config) { cfg.Game.DefaultGovernor = "anarchy" }, "game.default_governor"},
		{"negative snap radius", func(cfg *config.Config) { cfg.Game.ArrivalSnapRadius = -1 }, "game.arrival_snap_radius"},
		{"file output without path", func(cfg *config.Config) { cfg.Logging.Output = "file" }, "logging.file_path"},
		{"metrics without textfile", func(cfg *config.Config) {
			cfg.Metrics.Enabled = true
			cfg.Metrics.TextfilePath = ""
		}, "metrics.textfile_path"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			config.SetDefaults(cfg)
			tt.mutate(cfg)

			err := config.ValidateConfig(cfg)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := &config.Config{Database: config.DatabaseConfig{Type: "postgres"}}
	config.SetDefaults(cfg)

	assert.Equal(t, "host=localhost port=5432 user=starlanes password= dbname=starlanes sslmode=disable", cfg.Database.DSN())

	cfg.Database.URL = "postgresql://pilot:secret@db:5432/lanes"
	assert.Equal(t, "postgresql://pilot:secret@db:5432/lanes", cfg.Database.DSN())
}

func TestLoadConfig_FileAndEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "starlanes.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
game:
  default_governor: mining
  warp_distance_per_turn: 25
logging:
  level: debug
`), 0644))
	t.Setenv("SL_GAME_ARRIVAL_SNAP_RADIUS", "3.5")
	t.Setenv("SL_METRICS_ENABLED", "true")

	cfg, err := config.LoadConfig(path)

	require.NoError(t, err)
	rules := cfg.Game.Rules()
	assert.Equal(t, 25.0, rules.DistancePerWarp)
	assert.Equal(t, 3.5, rules.ArrivalSnapRadius)
	assert.Equal(t, galaxy.GovernorMining, cfg.Game.Governor().Current())
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "starlanes.prom", cfg.Metrics.TextfilePath)
}

func TestLoadConfig_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "starlanes.yaml")
	require.NoError(t, os.WriteFile(path, []byte("game:\n  default_governor: anarchy\n"), 0644))

	_, err := config.LoadConfig(path)

	assert.ErrorContains(t, err, "invalid configuration")
}
