// Package config loads application configuration from the environment.
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	// Application
	AppEnv   string
	LogLevel string
	UserID   string

	// Database. DatabaseURL selects Postgres when set; otherwise the
	// embedded SQLite database at SQLitePath is used.
	DatabaseURL string
	SQLitePath  string

	// Redis. Empty disables the weather cache.
	RedisURL string

	// RabbitMQ. Empty keeps events on the in-process bus.
	RabbitMQURL string

	// Calendar (CalDAV)
	CalDAVURL          string
	CalDAVUsername     string
	CalDAVPassword     string
	CalDAVCalendarPath string
	CalDAVHolidayPath  string

	// Weather. Condition and temperature feed the static provider when
	// no live source is configured.
	WeatherLocation  string
	WeatherCondition string
	WeatherTempC     float64
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:   getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		UserID:   getEnv("SERENDIP_USER_ID", "local"),

		DatabaseURL: getEnv("DATABASE_URL", ""),
		SQLitePath:  getEnv("SERENDIP_DB_PATH", defaultSQLitePath()),

		RedisURL:    getEnv("REDIS_URL", ""),
		RabbitMQURL: getEnv("RABBITMQ_URL", ""),

		CalDAVURL:          getEnv("CALDAV_URL", ""),
		CalDAVUsername:     getEnv("CALDAV_USERNAME", ""),
		CalDAVPassword:     getEnv("CALDAV_PASSWORD", ""),
		CalDAVCalendarPath: getEnv("CALDAV_CALENDAR_PATH", ""),
		CalDAVHolidayPath:  getEnv("CALDAV_HOLIDAY_PATH", ""),

		WeatherLocation:  getEnv("WEATHER_LOCATION", ""),
		WeatherCondition: getEnv("WEATHER_CONDITION", "clear"),
		WeatherTempC:     getFloatEnv("WEATHER_TEMP_C", 20),
	}

	return cfg, nil
}

// UsesPostgres reports whether a Postgres connection string is configured.
func (c *Config) UsesPostgres() bool {
	return c.DatabaseURL != ""
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func defaultSQLitePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "serendip.db"
	}
	return filepath.Join(home, ".serendip", "serendip.db")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}
