package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Store driver names accepted in STORE_DRIVER.
const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
)

type AppConfig struct {
	Port string

	// HTTPTimeout bounds each outbound provider call.
	HTTPTimeout time.Duration

	// Base URL overrides, mainly for tests; empty selects the defaults.
	GeocodingBaseURL string
	WeatherBaseURL   string

	// Transcript persistence.
	StoreDriver string
	SQLitePath  string

	// Recent-search list.
	RecentLimit   int
	SearchMaxAge  time.Duration
	SweepInterval time.Duration
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.Port = getenvDefault("PORT", "8080")

	timeoutStr := getenvDefault("HTTP_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	cfg.GeocodingBaseURL = os.Getenv("GEOCODING_BASE_URL")
	cfg.WeatherBaseURL = os.Getenv("WEATHER_BASE_URL")

	cfg.StoreDriver = getenvDefault("STORE_DRIVER", DriverMemory)
	if cfg.StoreDriver != DriverMemory && cfg.StoreDriver != DriverSQLite {
		return nil, fmt.Errorf("invalid STORE_DRIVER %q: must be %q or %q",
			cfg.StoreDriver, DriverMemory, DriverSQLite)
	}
	cfg.SQLitePath = getenvDefault("SQLITE_PATH", "weather-chat.db")

	cfg.RecentLimit = getenvInt("RECENT_SEARCHES_LIMIT", 5)

	maxAgeStr := getenvDefault("SEARCH_MAX_AGE", "168h") // one week
	maxAge, err := time.ParseDuration(maxAgeStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SEARCH_MAX_AGE: %w", err)
	}
	cfg.SearchMaxAge = maxAge

	sweepStr := getenvDefault("SWEEP_INTERVAL", "1h")
	sweep, err := time.ParseDuration(sweepStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SWEEP_INTERVAL: %w", err)
	}
	cfg.SweepInterval = sweep

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}
