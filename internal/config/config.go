package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Access code webhook
	WebhookSecret string `env:"WEBHOOK_SECRET"`

	// Firebase Cloud Messaging
	FirebaseCredentials     string        `env:"FIREBASE_CREDENTIALS"`
	FirebaseCredentialsPath string        `env:"FIREBASE_CREDENTIALS_PATH" envDefault:"secrets/firebase-service-account.json"`
	FCMTimeout              time.Duration `env:"FCM_TIMEOUT" envDefault:"10s"`
	FCMSendConcurrency      int           `env:"FCM_SEND_CONCURRENCY" envDefault:"8"`

	// Cache Config
	CacheTTL    time.Duration `env:"CACHE_TTL" envDefault:"24h"`
	CachePrefix string        `env:"CACHE_PREFIX" envDefault:"stepchallenge_cache:"`

	// Tracking Config
	MinMovementMeters float64 `env:"MIN_MOVEMENT_METERS" envDefault:"5"`
	LeaderboardLimit  int     `env:"LEADERBOARD_LIMIT" envDefault:"20"`

	// Device permission flow
	PermissionDelay   time.Duration `env:"PERMISSION_DELAY" envDefault:"800ms"`
	PermissionTimeout time.Duration `env:"PERMISSION_TIMEOUT" envDefault:"10s"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig loads the configuration from the environment and an optional .env file
func LoadConfig() (*Config, error) {
	cfg, err := LoadBaseConfig()
	if err != nil {
		return nil, err
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	return cfg, nil
}

// LoadBaseConfig loads the configuration without requiring a database.
// The device simulator runs without one.
func LoadBaseConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := &Config{
		DatabaseURL:             os.Getenv("DATABASE_URL"),
		HTTPPort:                getEnv("HTTP_PORT", "8080"),
		LogLevel:                getEnv("LOG_LEVEL", "info"),
		RedisAddr:               getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:               os.Getenv("REDIS_PASSWORD"),
		RedisDB:                 getEnvAsInt("REDIS_DB", 0),
		WebhookSecret:           os.Getenv("WEBHOOK_SECRET"),
		FirebaseCredentials:     os.Getenv("FIREBASE_CREDENTIALS"),
		FirebaseCredentialsPath: getEnv("FIREBASE_CREDENTIALS_PATH", "secrets/firebase-service-account.json"),
		FCMTimeout:              getEnvAsDuration("FCM_TIMEOUT", 10*time.Second),
		FCMSendConcurrency:      getEnvAsInt("FCM_SEND_CONCURRENCY", 8),
		CacheTTL:                getEnvAsDuration("CACHE_TTL", 24*time.Hour),
		CachePrefix:             getEnv("CACHE_PREFIX", "stepchallenge_cache:"),
		MinMovementMeters:       getEnvAsFloat("MIN_MOVEMENT_METERS", 5),
		LeaderboardLimit:        getEnvAsInt("LEADERBOARD_LIMIT", 20),
		PermissionDelay:         getEnvAsDuration("PERMISSION_DELAY", 800*time.Millisecond),
		PermissionTimeout:       getEnvAsDuration("PERMISSION_TIMEOUT", 10*time.Second),
	}

	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if cfg.FCMSendConcurrency < 1 {
		cfg.FCMSendConcurrency = 1
	}

	return cfg, nil
}

// MinMovementKm returns the accumulator threshold in kilometers
func (c *Config) MinMovementKm() float64 {
	return c.MinMovementMeters / 1000
}

// getEnv returns the environment variable or the default value
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt returns the environment variable as int or the default value
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsDuration returns the environment variable as time.Duration or the default value
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
