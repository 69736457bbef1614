package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/rekarton-ge/client-crm/internal/observability"

	"github.com/jmoiron/sqlx"
)

// TestDBType represents the type of database to use for testing
type TestDBType string

const (
	TestDBTypeSQLite   TestDBType = "sqlite"
	TestDBTypePostgres TestDBType = "postgres"
)

// TestDB wraps a migrated test database instance
type TestDB struct {
	db     *sqlx.DB
	logger *observability.Logger
	Store  Store
	dbType TestDBType
}

// SetupTestDB creates a migrated test database. SQLite files live in a
// per-test temp dir; postgres is used when TEST_DB_TYPE=postgres and expects
// a reachable, empty database.
func SetupTestDB(t *testing.T, dbType TestDBType) *TestDB {
	t.Helper()

	if dbType == "" {
		dbType = TestDBType(os.Getenv("TEST_DB_TYPE"))
		if dbType == "" {
			dbType = TestDBTypeSQLite
		}
	}

	logger := observability.NewNopLogger()

	var (
		s   Store
		err error
	)
	switch dbType {
	case TestDBTypeSQLite:
		dsn := filepath.Join(t.TempDir(), "crm_test.db") + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
		s, err = New(DriverSQLite, dsn, logger)
	case TestDBTypePostgres:
		s, err = New(DriverPostgres, postgresTestDSN(), logger)
	default:
		t.Fatalf("unsupported database type: %s", dbType)
	}
	if err != nil {
		t.Fatalf("failed to setup test database: %v", err)
	}
	t.Cleanup(func() {
		_ = s.Close()
	})

	if _, err := s.Migrate(context.Background()); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return &TestDB{
		db:     s.db,
		logger: logger,
		Store:  s,
		dbType: dbType,
	}
}

func postgresTestDSN() string {
	get := func(key, fallback string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return fallback
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		get("TEST_DB_USER", "crm_user"), get("TEST_DB_PASSWORD", "crm_password"),
		get("TEST_DB_HOST", "localhost"), get("TEST_DB_PORT", "5432"), get("TEST_DB_NAME", "crm_test"))
}

// Close closes the database connection
func (tdb *TestDB) Close() error {
	return tdb.db.Close()
}

// GetDB returns the underlying sqlx.DB for direct access if needed
func (tdb *TestDB) GetDB() *sqlx.DB {
	return tdb.db
}

// ExecSQL executes raw SQL for test setup. Placeholders are written as '?'.
func (tdb *TestDB) ExecSQL(t *testing.T, query string, args ...interface{}) sql.Result {
	t.Helper()
	result, err := tdb.db.Exec(tdb.db.Rebind(query), args...)
	if err != nil {
		t.Fatalf("failed to execute SQL: %v", err)
	}
	return result
}
