package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var (
	ErrEmptyEnvironmentVariable = errors.New("empty environment variable")
	ErrUnsupportedDriver        = errors.New("unsupported database driver")
)

const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite"
)

// Config holds all application configuration
type Config struct {
	Database  DatabaseConfig
	Auth      AuthConfig
	Server    ServerConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Log       LogConfig
}

// DatabaseConfig holds database connection settings.
// Driver is either "pgx" (PostgreSQL) or "sqlite".
type DatabaseConfig struct {
	Driver   string
	Host     string
	Username string
	Password string
	Name     string
	Path     string
}

// AuthConfig holds authentication-related configuration
type AuthConfig struct {
	JWTSecret string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port           int
	AllowedOrigins []string
}

// RedisConfig holds the optional redis connection used for rate limiting.
// An empty Addr disables redis.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// RateLimitConfig holds per-operator request limits
type RateLimitConfig struct {
	RequestsPerMinute int
}

// LogConfig controls where logs go. An empty File means stdout only.
type LogConfig struct {
	File       string
	MaxSizeMB  int
	MaxBackups int
}

// Load reads and validates all required environment variables
func Load() (*Config, error) {
	// Load env.local in non-production environments
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env.local: %w", err)
		}
	}

	cfg := &Config{}
	var err error

	// Database configuration
	cfg.Database.Driver = getEnvWithDefault("DB_DRIVER", DriverPostgres)
	switch cfg.Database.Driver {
	case DriverPostgres:
		if cfg.Database.Host, err = requireEnv("DB_HOST"); err != nil {
			return nil, err
		}
		if cfg.Database.Username, err = requireEnv("DB_USERNAME"); err != nil {
			return nil, err
		}
		if cfg.Database.Password, err = requireEnv("DB_PASSWORD"); err != nil {
			return nil, err
		}
		if cfg.Database.Name, err = requireEnv("DB_NAME"); err != nil {
			return nil, err
		}
	case DriverSQLite:
		cfg.Database.Path = getEnvWithDefault("DB_PATH", "crm.db")
	default:
		return nil, fmt.Errorf("DB_DRIVER=%q: %w", cfg.Database.Driver, ErrUnsupportedDriver)
	}

	// Auth configuration
	if cfg.Auth.JWTSecret, err = requireEnv("JWT_SECRET"); err != nil {
		return nil, err
	}

	// Server configuration
	serverPort, err := requireEnv("SERVER_PORT")
	if err != nil {
		return nil, err
	}
	cfg.Server.Port, err = strconv.Atoi(serverPort)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SERVER_PORT: %w", err)
	}
	cfg.Server.AllowedOrigins = splitList(getEnvWithDefault("ALLOWED_ORIGINS", "http://localhost:3000"))

	// Redis configuration
	cfg.Redis.Addr = os.Getenv("REDIS_ADDR")
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
	if cfg.Redis.DB, err = getIntWithDefault("REDIS_DB", 0); err != nil {
		return nil, err
	}

	if cfg.RateLimit.RequestsPerMinute, err = getIntWithDefault("RATE_LIMIT_PER_MINUTE", 120); err != nil {
		return nil, err
	}

	// Log configuration
	cfg.Log.File = os.Getenv("LOG_FILE")
	if cfg.Log.MaxSizeMB, err = getIntWithDefault("LOG_MAX_SIZE_MB", 100); err != nil {
		return nil, err
	}
	if cfg.Log.MaxBackups, err = getIntWithDefault("LOG_MAX_BACKUPS", 5); err != nil {
		return nil, err
	}

	return cfg, nil
}

// DataSourceName returns the DSN for the configured driver
func (c *DatabaseConfig) DataSourceName() string {
	if c.Driver == DriverSQLite {
		return c.Path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	}
	return fmt.Sprintf("postgres://%s:%s@%s/%s",
		c.Username, c.Password, c.Host, c.Name)
}

// requireEnv retrieves an environment variable or returns an error if empty
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

// getEnvWithDefault retrieves an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getIntWithDefault(key string, defaultValue int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return v, nil
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
