package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the configuration for the lost-and-found service
type Config struct {
	Server   ServerConfig
	Storage  StorageConfig
	Matching MatchingConfig
}

type ServerConfig struct {
	Addr            string
	ShutdownTimeout time.Duration
	LogLevel        string
}

// StorageConfig selects and configures the report store
type StorageConfig struct {
	// Driver is "memory" or "postgres"
	Driver      string
	DatabaseURL string
}

// MatchingConfig holds the two ranking thresholds. They are
// configuration constants, not algorithmic differences: ranked matches
// use a low floor on the [0,1] similarity, free-text search a near-zero
// floor on the percentage score.
type MatchingConfig struct {
	MinSimilarity   float64
	MinScorePercent float64
}

// Load loads configuration from environment variables with defaults.
// A .env file in the working directory is read first when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Addr:            GetStringEnv("SERVER_ADDR", ":8080"),
			ShutdownTimeout: GetDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
			LogLevel:        GetStringEnv("LOG_LEVEL", "info"),
		},
		Storage: StorageConfig{
			Driver:      GetStringEnv("STORAGE_DRIVER", "memory"),
			DatabaseURL: GetStringEnv("DATABASE_URL", ""),
		},
		Matching: MatchingConfig{
			MinSimilarity:   GetFloatEnv("MATCHING_MIN_SIMILARITY", 0.1),
			MinScorePercent: GetFloatEnv("SEARCH_MIN_SCORE_PERCENT", 0.001),
		},
	}
}

func GetStringEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func GetIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func GetFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func GetDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
