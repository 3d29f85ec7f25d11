// Package config provides configuration management for the simulator.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds simulator configuration. Values come from environment
// variables, optionally via a .env file in the working directory.
type Config struct {
	DataDir         string // directory for the career history database
	LogLevel        string
	Seasons         int   // seasons to fast-forward
	Seed            int64 // RNG seed; 0 means randomize
	RosterSize      int
	TotalGames      int // regular-season length
	StadiumCapacity int
}

// Load reads configuration from environment variables, loading a .env file
// first if one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	dataDir := getEnv("DYNASTY_DATA_DIR", "./data")
	absDataDir, err := filepath.Abs(dataDir)
	if err != nil {
		return nil, fmt.Errorf("resolve data directory: %w", err)
	}
	if err := os.MkdirAll(absDataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	cfg := &Config{
		DataDir:         absDataDir,
		LogLevel:        getEnv("DYNASTY_LOG_LEVEL", "info"),
		Seasons:         getEnvAsInt("DYNASTY_SEASONS", 20),
		Seed:            int64(getEnvAsInt("DYNASTY_SEED", 0)),
		RosterSize:      getEnvAsInt("DYNASTY_ROSTER_SIZE", 12),
		TotalGames:      getEnvAsInt("DYNASTY_TOTAL_GAMES", 140),
		StadiumCapacity: getEnvAsInt("DYNASTY_STADIUM_CAPACITY", 8000),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate fails fast on values the engines would otherwise have to guard
// against every call.
func (c *Config) Validate() error {
	if c.Seasons <= 0 {
		return fmt.Errorf("seasons must be positive, got %d", c.Seasons)
	}
	if c.RosterSize <= 0 {
		return fmt.Errorf("roster size must be positive, got %d", c.RosterSize)
	}
	if c.TotalGames <= 0 {
		return fmt.Errorf("total games must be positive, got %d", c.TotalGames)
	}
	if c.StadiumCapacity <= 0 {
		return fmt.Errorf("stadium capacity must be positive, got %d", c.StadiumCapacity)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
