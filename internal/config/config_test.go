package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DYNASTY_DATA_DIR", filepath.Join(t.TempDir(), "data"))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 20, cfg.Seasons)
	assert.Equal(t, int64(0), cfg.Seed)
	assert.Equal(t, 12, cfg.RosterSize)
	assert.Equal(t, 140, cfg.TotalGames)
	assert.Equal(t, 8000, cfg.StadiumCapacity)
	assert.DirExists(t, cfg.DataDir)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DYNASTY_DATA_DIR", t.TempDir())
	t.Setenv("DYNASTY_LOG_LEVEL", "debug")
	t.Setenv("DYNASTY_SEASONS", "5")
	t.Setenv("DYNASTY_SEED", "1234")
	t.Setenv("DYNASTY_ROSTER_SIZE", "25")
	t.Setenv("DYNASTY_TOTAL_GAMES", "162")
	t.Setenv("DYNASTY_STADIUM_CAPACITY", "45000")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 5, cfg.Seasons)
	assert.Equal(t, int64(1234), cfg.Seed)
	assert.Equal(t, 25, cfg.RosterSize)
	assert.Equal(t, 162, cfg.TotalGames)
	assert.Equal(t, 45000, cfg.StadiumCapacity)
}

func TestLoad_MalformedIntFallsBackToDefault(t *testing.T) {
	t.Setenv("DYNASTY_DATA_DIR", t.TempDir())
	t.Setenv("DYNASTY_SEASONS", "twenty")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.Seasons)
}

func TestValidate(t *testing.T) {
	valid := Config{Seasons: 1, RosterSize: 1, TotalGames: 1, StadiumCapacity: 1}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero seasons", func(c *Config) { c.Seasons = 0 }},
		{"negative roster", func(c *Config) { c.RosterSize = -1 }},
		{"zero games", func(c *Config) { c.TotalGames = 0 }},
		{"zero capacity", func(c *Config) { c.StadiumCapacity = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
