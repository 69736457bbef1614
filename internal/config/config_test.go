package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("GO_ENV", "production")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("SERVER_PORT", "8080")
}

func TestLoad_SQLite(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_PATH", "/tmp/crm-test.db")
	t.Setenv("ALLOWED_ORIGINS", "http://a.test, http://b.test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "/tmp/crm-test.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", cfg.Database.DataSourceName())
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 120, cfg.RateLimit.RequestsPerMinute)
	assert.Empty(t, cfg.Redis.Addr)
}

func TestLoad_PostgresRequiresCredentials(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("DB_DRIVER", "pgx")
	t.Setenv("DB_HOST", "")

	_, err := Load()
	assert.ErrorIs(t, err, ErrEmptyEnvironmentVariable)
}

func TestLoad_PostgresConnectionString(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("DB_DRIVER", "pgx")
	t.Setenv("DB_HOST", "localhost:5432")
	t.Setenv("DB_USERNAME", "crm")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("DB_NAME", "crm")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres://crm:pw@localhost:5432/crm", cfg.Database.DataSourceName())
}

func TestLoad_UnknownDriver(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("DB_DRIVER", "mysql")

	_, err := Load()
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}

func TestLoad_BadInteger(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "lots")

	_, err := Load()
	assert.Error(t, err)
}
