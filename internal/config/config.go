package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds application configuration
type Config struct {
	// Server
	Port         string
	Environment  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// Storage. Empty URIs disable the matching backend.
	PostgresURI string
	RedisURI    string

	// Generation
	GenerationDelay time.Duration

	// Rate limiting
	RateLimitRPS   float64
	RateLimitBurst int

	// Usage statistics
	StatsTTL time.Duration

	// Logging
	LogLevel  string
	LogFormat string
}

// NewConfig creates a new configuration from environment variables
func NewConfig() *Config {
	readTimeoutSec := getEnvInt("READ_TIMEOUT", 5)
	writeTimeoutSec := getEnvInt("WRITE_TIMEOUT", 10)
	delayMs := getEnvInt("GENERATION_DELAY_MS", 2000)
	statsTTLDays := getEnvInt("STATS_TTL_DAYS", 30)

	rps, err := strconv.ParseFloat(getEnv("RATE_LIMIT_RPS", "5"), 64)
	if err != nil || rps <= 0 {
		rps = 5
	}

	return &Config{
		// Server
		Port:         getEnv("PORT", "8080"),
		Environment:  getEnv("ENVIRONMENT", "development"),
		ReadTimeout:  time.Duration(readTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(writeTimeoutSec) * time.Second,

		// Storage
		PostgresURI: getEnv("POSTGRES_URI", ""),
		RedisURI:    getEnv("REDIS_URI", ""),

		// Generation
		GenerationDelay: time.Duration(delayMs) * time.Millisecond,

		// Rate limiting
		RateLimitRPS:   rps,
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 10),

		// Usage statistics
		StatsTTL: time.Duration(statsTTLDays) * 24 * time.Hour,

		// Logging
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
	}
}

// IsProduction reports whether the service runs in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an integer environment variable. Negative or
// unparsable values fall back to the default.
func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, strconv.Itoa(defaultValue)))
	if err != nil || value < 0 {
		return defaultValue
	}
	return value
}
