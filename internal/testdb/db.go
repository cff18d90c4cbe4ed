// Package testdb provides utilities for database testing. It depends only on
// the store interfaces and the embedded migrations, not on specific store
// implementations.
package testdb

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"

	"github.com/fintrack/fintrack-api/migrations"
)

// TestTimeout defines a default timeout for test database operations.
const TestTimeout = 5 * time.Second

// IsIntegrationTestEnvironment returns true if a test database URL is
// configured, indicating that integration tests can run.
func IsIntegrationTestEnvironment() bool {
	return GetTestDatabaseURL() != ""
}

// GetTestDatabaseURL returns the database URL for tests. TEST_DATABASE_URL
// takes precedence over DATABASE_URL.
func GetTestDatabaseURL() string {
	if dbURL := os.Getenv("TEST_DATABASE_URL"); dbURL != "" {
		return dbURL
	}
	return os.Getenv("DATABASE_URL")
}

// SkipIfNoDatabase skips the calling test when no test database is configured.
func SkipIfNoDatabase(t *testing.T) {
	t.Helper()
	if !IsIntegrationTestEnvironment() {
		t.Skip("skipping integration test: TEST_DATABASE_URL not set")
	}
}

// Open connects to the configured test database, applies the embedded
// migrations and registers cleanup. The calling test fails on any setup error.
func Open(t *testing.T) *sql.DB {
	t.Helper()
	SkipIfNoDatabase(t)

	db, err := sql.Open("pgx", GetTestDatabaseURL())
	require.NoError(t, err, "failed to open test database")
	t.Cleanup(func() {
		require.NoError(t, db.Close())
	})

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()
	require.NoError(t, db.PingContext(ctx), "failed to ping test database")

	goose.SetBaseFS(migrations.FS)
	require.NoError(t, goose.SetDialect("pgx"))
	require.NoError(t, goose.UpContext(ctx, db, "."), "failed to apply migrations")

	return db
}

// Truncate removes all rows from the given tables, restarting identity
// sequences, so tests start from a clean slate.
func Truncate(t *testing.T, db *sql.DB, tables ...string) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()
	for _, table := range tables {
		_, err := db.ExecContext(ctx, "TRUNCATE TABLE "+table+" RESTART IDENTITY CASCADE")
		require.NoError(t, err, "failed to truncate %s", table)
	}
}
