package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// Redis
	RedisURL string

	// Sessions
	JWTSecret          string
	SessionTTL         time.Duration
	SessionRememberTTL time.Duration

	// CORS
	AllowedOrigins []string

	// Upstream Holidaze API
	NoroffBaseURL        string
	NoroffAPIKey         string
	NoroffTimeoutSeconds int

	// Venue search
	SearchDebounce   time.Duration
	SearchTimeout    time.Duration
	SearchSessionTTL time.Duration

	// Venue cache
	VenueCacheTTL       time.Duration
	VenueDetailCacheTTL time.Duration

	// Logging
	LogLevel string
}

func Load() *Config {
	// Load .env file in development
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		// Server
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),

		// Redis
		RedisURL: getEnv("REDIS_URL", "redis://localhost:6379/0"),

		// Sessions
		JWTSecret:          getEnv("JWT_SECRET", "super-secret-key-change-me"),
		SessionTTL:         parseDuration(getEnv("SESSION_TTL", "24h"), 24*time.Hour),
		SessionRememberTTL: parseDuration(getEnv("SESSION_REMEMBER_TTL", "168h"), 168*time.Hour),

		// CORS
		AllowedOrigins: parseStringSlice(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),

		// Upstream Holidaze API
		NoroffBaseURL:        getEnv("NOROFF_BASE_URL", "https://v2.api.noroff.dev"),
		NoroffAPIKey:         getEnv("NOROFF_API_KEY", ""),
		NoroffTimeoutSeconds: parseInt(getEnv("NOROFF_TIMEOUT_SECONDS", "15"), 15),

		// Venue search
		SearchDebounce:   parseDuration(getEnv("SEARCH_DEBOUNCE", "300ms"), 300*time.Millisecond),
		SearchTimeout:    parseDuration(getEnv("SEARCH_TIMEOUT", "15s"), 15*time.Second),
		SearchSessionTTL: parseDuration(getEnv("SEARCH_SESSION_TTL", "30m"), 30*time.Minute),

		// Venue cache
		VenueCacheTTL:       parseDuration(getEnv("VENUE_CACHE_TTL", "5m"), 5*time.Minute),
		VenueDetailCacheTTL: parseDuration(getEnv("VENUE_DETAIL_CACHE_TTL", "1m"), time.Minute),

		// Logging
		LogLevel: getEnv("LOG_LEVEL", "debug"),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func parseDuration(s string, defaultValue time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return defaultValue
	}
	return d
}

func parseInt(s string, defaultValue int) int {
	value, err := strconv.Atoi(s)
	if err != nil {
		return defaultValue
	}
	return value
}

func parseStringSlice(s string) []string {
	if s == "" {
		return []string{}
	}
	// Simple split by comma
	var result []string
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == ',' {
			if start < i {
				result = append(result, s[start:i])
			}
			start = i + 1
		}
	}
	return result
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
