package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Server
	Env        string
	Port       string
	CORSOrigin string

	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Shared household key for /api/v1. Required in production; elsewhere an
	// empty key leaves the API open.
	FamilyAPIKey string

	// Insight generation
	GeminiAPIKey      string
	GeminiBaseURL     string
	GeminiModel       string
	InsightTimeout    time.Duration
	InsightCacheTTL   time.Duration
	InsightRatePerSec float64
	InsightBurst      int
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		Env:        getEnv("ENV", "development"),
		Port:       getEnv("PORT", "8080"),
		CORSOrigin: getEnv("CORS_ORIGIN", "*"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "familia"),
		DBPassword: getEnv("DB_PASSWORD", "familia"),
		DBName:     getEnv("DB_NAME", "familia"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		FamilyAPIKey: getEnv("FAMILY_API_KEY", ""),

		GeminiAPIKey:  getEnv("GEMINI_API_KEY", ""),
		GeminiBaseURL: getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta/openai"),
		GeminiModel:   getEnv("GEMINI_MODEL", "gemini-2.5-flash"),

		InsightTimeout:    getDuration("INSIGHT_TIMEOUT", 30*time.Second),
		InsightCacheTTL:   getDuration("INSIGHT_CACHE_TTL", 10*time.Minute),
		InsightRatePerSec: getFloat("INSIGHT_RATE_PER_SEC", 1),
		InsightBurst:      getInt("INSIGHT_BURST", 3),
	}

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// APIKeyRequired reports whether /api/v1 must be guarded by FamilyAPIKey.
func (c *Config) APIKeyRequired() bool {
	return c.FamilyAPIKey != "" || c.Env == "production"
}

// InsightsEnabled reports whether an API key for the insight generator is set.
func (c *Config) InsightsEnabled() bool {
	return c.GeminiAPIKey != ""
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Printf("Warning: invalid %s value '%s', falling back to %s\n", key, raw, defaultValue)
		return defaultValue
	}
	return d
}

func getInt(key string, defaultValue int) int {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		log.Printf("Warning: invalid %s value '%s', falling back to %d\n", key, raw, defaultValue)
		return defaultValue
	}
	return n
}

func getFloat(key string, defaultValue float64) float64 {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f <= 0 {
		log.Printf("Warning: invalid %s value '%s', falling back to %g\n", key, raw, defaultValue)
		return defaultValue
	}
	return f
}
