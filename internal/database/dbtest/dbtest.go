// Package dbtest opens isolated PostgreSQL databases for integration tests.
// Each caller gets its own schema so packages tested in parallel never see
// each other's rows. Tests are skipped when PostgreSQL is unreachable.
package dbtest

import (
	"database/sql"
	"os"
	"testing"

	_ "github.com/jackc/pgx/v5/stdlib"

	"trivia/internal/database"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// DSN returns the connection string for the test database, built from the
// same environment variables as the application config.
func DSN() string {
	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "trivia")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_TEST_DB", "trivia_test")
	return "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"
}

// Open connects to the test database using the given schema, creating it
// if needed, and applies migrations. The connection is closed on cleanup.
func Open(t *testing.T, schema string) *sql.DB {
	t.Helper()

	admin, err := sql.Open("pgx", DSN())
	if err != nil {
		t.Skipf("skipping integration test: cannot open DB: %v", err)
	}
	if err := admin.Ping(); err != nil {
		admin.Close()
		t.Skipf("skipping integration test: DB not reachable: %v", err)
	}
	_, err = admin.Exec("CREATE SCHEMA IF NOT EXISTS " + schema)
	admin.Close()
	if err != nil {
		t.Fatalf("create schema %s: %v", schema, err)
	}

	db, err := sql.Open("pgx", DSN()+"&search_path="+schema)
	if err != nil {
		t.Fatalf("open schema %s: %v", schema, err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() { db.Close() })
	return db
}
