package service_test

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/J4sp3rd3v/fitcoach-cli/internal/db"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	conn, err := db.Open(path)
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	if err := db.ApplyMigrations(conn); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return conn
}

func ptr[T any](v T) *T { return &v }
