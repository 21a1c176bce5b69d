package db

import (
	"database/sql"
	"fmt"
)

type migration struct {
	version int
	name    string
	sql     string
}

var migrations = []migration{
	{
		version: 1,
		name:    "initial_schema",
		sql: `
CREATE TABLE IF NOT EXISTS schema_migrations (
  version INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS daily_logs (
  date TEXT PRIMARY KEY,
  weight_kg REAL CHECK(weight_kg > 0),
  sleep_hours REAL NOT NULL DEFAULT 7 CHECK(sleep_hours >= 0),
  soreness INTEGER NOT NULL DEFAULT 2 CHECK(soreness BETWEEN 1 AND 5),
  energy_level INTEGER NOT NULL DEFAULT 3 CHECK(energy_level BETWEEN 1 AND 5),
  water_intake_ml INTEGER NOT NULL DEFAULT 0 CHECK(water_intake_ml >= 0),
  water_goal_ml INTEGER NOT NULL DEFAULT 2500 CHECK(water_goal_ml >= 0),
  workout_completed INTEGER NOT NULL DEFAULT 0,
  notes TEXT NOT NULL DEFAULT '',
  created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
  updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS user_profile (
  id INTEGER PRIMARY KEY CHECK(id = 1),
  name TEXT NOT NULL,
  age INTEGER NOT NULL CHECK(age > 0),
  height_cm REAL NOT NULL CHECK(height_cm > 0),
  weight_kg REAL NOT NULL CHECK(weight_kg > 0),
  gender TEXT NOT NULL CHECK(gender IN ('male', 'female')),
  goal TEXT NOT NULL CHECK(goal IN ('fat_loss', 'muscle_gain', 'maintenance')),
  activity_level TEXT NOT NULL,
  avatar_seed TEXT NOT NULL DEFAULT '',
  xp INTEGER NOT NULL DEFAULT 0 CHECK(xp >= 0),
  level INTEGER NOT NULL DEFAULT 1 CHECK(level >= 1),
  badges_json TEXT NOT NULL DEFAULT '[]',
  favorites_json TEXT NOT NULL DEFAULT '[]',
  updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS user_settings (
  id INTEGER PRIMARY KEY CHECK(id = 1),
  name TEXT NOT NULL,
  height_cm REAL NOT NULL CHECK(height_cm > 0),
  target_weight_kg REAL NOT NULL CHECK(target_weight_kg > 0),
  activity_level TEXT NOT NULL,
  active_plan TEXT NOT NULL DEFAULT '',
  updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS app_config (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`,
	},
	{
		version: 2,
		name:    "meal_plans",
		sql: `
CREATE TABLE IF NOT EXISTS meal_plans (
  id TEXT PRIMARY KEY,
  season TEXT NOT NULL,
  created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS meal_plan_days (
  plan_id TEXT NOT NULL,
  day_index INTEGER NOT NULL CHECK(day_index BETWEEN 0 AND 6),
  day TEXT NOT NULL,
  breakfast_id TEXT NOT NULL,
  lunch_id TEXT NOT NULL,
  snack_id TEXT NOT NULL,
  dinner_id TEXT NOT NULL,
  calories INTEGER NOT NULL CHECK(calories >= 0),
  protein_g INTEGER NOT NULL CHECK(protein_g >= 0),
  carb_g INTEGER NOT NULL CHECK(carb_g >= 0),
  fat_g INTEGER NOT NULL CHECK(fat_g >= 0),
  PRIMARY KEY(plan_id, day_index),
  FOREIGN KEY(plan_id) REFERENCES meal_plans(id) ON DELETE CASCADE
);
`,
	},
}

func ApplyMigrations(db *sql.DB) error {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS schema_migrations (
  version INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`); err != nil {
		return fmt.Errorf("ensure schema_migrations table: %w", err)
	}

	for _, m := range migrations {
		var exists int
		err := db.QueryRow(`SELECT 1 FROM schema_migrations WHERE version = ?`, m.version).Scan(&exists)
		if err == nil {
			continue
		}
		if err != sql.ErrNoRows {
			return fmt.Errorf("check migration version %d: %w", m.version, err)
		}

		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("begin migration tx: %w", err)
		}

		if _, err := tx.Exec(m.sql); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply migration version %d (%s): %w", m.version, m.name, err)
		}
		if _, err := tx.Exec(`INSERT INTO schema_migrations(version, name) VALUES(?, ?)`, m.version, m.name); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record migration version %d: %w", m.version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration version %d: %w", m.version, err)
		}
	}

	return nil
}
