package config

import (
	"os"
	"path/filepath"
	"strconv"

	"claimstat/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Paths PathConfig
	Run   RunConfig
}

// PathConfig holds file system paths for inputs and outputs
type PathConfig struct {
	DataDir     string
	FiguresDir  string
	OutputDir   string
	ClaimsFile  string
	RevenueFile string
}

// RunConfig holds analysis run settings
type RunConfig struct {
	Seed   int64
	Trials int
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Paths: loadPathConfig(),
		Run:   loadRunConfig(),
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func loadPathConfig() PathConfig {
	dataDir := getEnvOrDefault("DATA_DIR", "data")
	return PathConfig{
		DataDir:     dataDir,
		FiguresDir:  getEnvOrDefault("FIGURES_DIR", "figures"),
		OutputDir:   getEnvOrDefault("OUTPUT_DIR", "outputs"),
		ClaimsFile:  getEnvOrDefault("CLAIMS_FILE", filepath.Join(dataDir, "claims.csv")),
		RevenueFile: getEnvOrDefault("REVENUE_FILE", filepath.Join(dataDir, "revenue_monthly.csv")),
	}
}

func loadRunConfig() RunConfig {
	return RunConfig{
		Seed:   getEnvInt64OrDefault("SEED", 42),
		Trials: getEnvIntOrDefault("TRIALS", 10000),
	}
}

func validateConfig(config *Config) error {
	if config.Paths.ClaimsFile == "" {
		return errors.ConfigInvalid("claims file path is required")
	}
	if config.Paths.RevenueFile == "" {
		return errors.ConfigInvalid("revenue file path is required")
	}
	if config.Run.Trials <= 0 {
		return errors.ConfigInvalid("trial count must be positive")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}
