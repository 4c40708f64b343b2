package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	Storage StorageConfig
	Roster  RosterConfig
	CORS    CORSConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// StorageConfig locates the JSON documents on disk.
type StorageConfig struct {
	DataDir string
}

// RosterConfig points at the external worker roster service.
type RosterConfig struct {
	BaseURL         string
	Timeout         time.Duration
	RefreshInterval time.Duration
}

type CORSConfig struct {
	AllowedOrigin string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file, using process environment")
	}

	config := &Config{}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	config.Storage = StorageConfig{
		DataDir: getEnv("DATA_DIR", "data"),
	}

	// Roster configuration
	rosterTimeout, err := time.ParseDuration(getEnv("ROSTER_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid ROSTER_TIMEOUT: %w", err)
	}
	refreshInterval, err := time.ParseDuration(getEnv("ROSTER_REFRESH_INTERVAL", "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid ROSTER_REFRESH_INTERVAL: %w", err)
	}

	config.Roster = RosterConfig{
		BaseURL:         getEnv("ROSTER_BASE_URL", "http://localhost:9090"),
		Timeout:         rosterTimeout,
		RefreshInterval: refreshInterval,
	}

	config.CORS = CORSConfig{
		AllowedOrigin: getEnv("CORS_ALLOWED_ORIGIN", "*"),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Storage.DataDir == "" {
		return fmt.Errorf("DATA_DIR is required")
	}
	if c.Roster.BaseURL == "" {
		return fmt.Errorf("ROSTER_BASE_URL is required")
	}
	if c.Roster.Timeout <= 0 {
		return fmt.Errorf("ROSTER_TIMEOUT must be positive")
	}
	if c.Roster.RefreshInterval <= 0 {
		return fmt.Errorf("ROSTER_REFRESH_INTERVAL must be positive")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
