package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Environment string
	Server      ServerConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	Places      PlacesConfig
	Geocoding   GeocodingConfig
	Reports     ReportsConfig
	Discovery   DiscoveryConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host string
	Port int
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// PlacesConfig holds live facility provider configuration
type PlacesConfig struct {
	APIKey            string
	RequestsPerSecond float64
}

// GeocodingConfig holds geocoder configuration
type GeocodingConfig struct {
	Provider string
	APIKey   string
}

// ReportsConfig holds community report store configuration.
// Backend is "file" (single-device default) or "postgres".
type ReportsConfig struct {
	Backend string
	Dir     string
}

// DiscoveryConfig holds discovery engine configuration
type DiscoveryConfig struct {
	LiveTimeout        time.Duration
	DefaultRadiusM     int
	ResultCacheSeconds int
}

// Load loads configuration from the environment. A .env file in the working
// directory is applied first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	return &Config{
		Environment: getEnv("APP_ENV", "development"),
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvAsInt("SERVER_PORT", 8080),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "medicare"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnvAsInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Places: PlacesConfig{
			APIKey:            getEnv("PLACES_API_KEY", ""),
			RequestsPerSecond: getEnvAsFloat("PLACES_RPS", 5),
		},
		Geocoding: GeocodingConfig{
			Provider: getEnv("GEOCODING_PROVIDER", "mock"),
			APIKey:   getEnv("GEOCODING_API_KEY", ""),
		},
		Reports: ReportsConfig{
			Backend: getEnv("REPORTS_BACKEND", "file"),
			Dir:     getEnv("REPORTS_DIR", "./data/reports"),
		},
		Discovery: DiscoveryConfig{
			LiveTimeout:        getEnvAsDuration("DISCOVERY_LIVE_TIMEOUT", 5*time.Second),
			DefaultRadiusM:     getEnvAsInt("DISCOVERY_DEFAULT_RADIUS_M", 5000),
			ResultCacheSeconds: getEnvAsInt("DISCOVERY_RESULT_CACHE_SECONDS", 60),
		},
	}, nil
}

// DatabaseDSN returns the PostgreSQL connection string
func (c *DatabaseConfig) DatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}

// RedisAddr returns the Redis address
func (c *RedisConfig) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
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

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
