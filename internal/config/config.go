package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Fallback secrets used when the environment leaves them unset. Running with
// either of these in production is unsafe; main logs a warning when they are
// in effect.
const (
	DefaultAPIKey    = "vh_api_key_2025_secure_access"
	DefaultJWTSecret = "your-secret-key"
)

type Config struct {
	Port    string
	GinMode string

	MongoURI string
	DBName   string

	APIKey    string
	JWTSecret string

	RateLimitWindow time.Duration
	RateLimitMax    int

	CORSOrigins []string
}

// Load reads the configuration from environment variables, falling back to
// development defaults for anything unset.
func Load() *Config {
	return &Config{
		Port:    getEnvOrDefault("PORT", "3000"),
		GinMode: getEnvOrDefault("GIN_MODE", "debug"),

		MongoURI: getEnvOrDefault("MONGODB_URI", "mongodb://localhost:27017"),
		DBName:   getEnvOrDefault("DB_NAME", "volunteerhub"),

		APIKey:    getEnvOrDefault("API_KEY", DefaultAPIKey),
		JWTSecret: getEnvOrDefault("JWT_SECRET", DefaultJWTSecret),

		RateLimitWindow: getDurationEnvOrDefault("RATE_LIMIT_WINDOW", 15*time.Minute),
		RateLimitMax:    getIntEnvOrDefault("RATE_LIMIT_MAX", 100),

		CORSOrigins: getListEnvOrDefault("CORS_ORIGINS", defaultCORSOrigins),
	}
}

// Local dev front-ends (web dev servers, Expo) plus deployed app origins.
var defaultCORSOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5500",
	"http://localhost:8080",
	"http://localhost:8081",
	"http://localhost:19000",
	"http://localhost:19006",
	"http://127.0.0.1:8081",
	"http://127.0.0.1:19006",
}

// getEnvOrDefault returns the value of an environment variable or a default value
func getEnvOrDefault(key, defaultValue string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value != "" {
		return value
	}
	return defaultValue
}

func getIntEnvOrDefault(key string, defaultValue int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return defaultValue
	}

	return value
}

func getDurationEnvOrDefault(key string, defaultValue time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(raw)
	if err != nil || value <= 0 {
		return defaultValue
	}

	return value
}

func getListEnvOrDefault(key string, defaultValue []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue
	}

	var values []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			values = append(values, part)
		}
	}
	if len(values) == 0 {
		return defaultValue
	}
	return values
}
