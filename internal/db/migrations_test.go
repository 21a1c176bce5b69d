package db_test

import (
	"path/filepath"
	"testing"

	"github.com/J4sp3rd3v/fitcoach-cli/internal/db"
)

func TestApplyMigrationsIdempotent(t *testing.T) {
	t.Parallel()
	conn, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.ApplyMigrations(conn); err != nil {
		t.Fatalf("first ApplyMigrations: %v", err)
	}
	if err := db.ApplyMigrations(conn); err != nil {
		t.Fatalf("second ApplyMigrations: %v", err)
	}

	var n int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM schema_migrations`).Scan(&n); err != nil {
		t.Fatalf("count migrations: %v", err)
	}
	if n != 2 {
		t.Errorf("applied %d migrations, want 2", n)
	}

	for _, table := range []string{"daily_logs", "user_profile", "user_settings", "app_config", "meal_plans", "meal_plan_days"} {
		var name string
		err := conn.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		if err != nil {
			t.Errorf("table %s missing: %v", table, err)
		}
	}
}

func TestForeignKeysEnforced(t *testing.T) {
	t.Parallel()
	conn, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	if err := db.ApplyMigrations(conn); err != nil {
		t.Fatalf("ApplyMigrations: %v", err)
	}

	_, err = conn.Exec(`
INSERT INTO meal_plan_days (plan_id, day_index, day, breakfast_id, lunch_id,
                            snack_id, dinner_id, calories, protein_g, carb_g, fat_g)
VALUES ('missing-plan', 0, 'Lun', 'n1', 'n2', 's1', 'n3', 1, 1, 1, 1)`)
	if err == nil {
		t.Error("insert with dangling plan_id should fail")
	}
}
