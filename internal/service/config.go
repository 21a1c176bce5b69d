package service

import (
	"database/sql"
	"fmt"
)

// GetConfigValue reads one app_config entry. ErrNotFound when the key has
// never been set.
func GetConfigValue(db *sql.DB, key string) (string, error) {
	if key == "" {
		return "", fmt.Errorf("%w: config key required", ErrInvalidInput)
	}
	var value string
	err := db.QueryRow(`SELECT value FROM app_config WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", fmt.Errorf("config key %q: %w", key, ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("load config key %q: %w", key, err)
	}
	return value, nil
}

func SetConfigValue(db *sql.DB, key, value string) error {
	if key == "" {
		return fmt.Errorf("%w: config key required", ErrInvalidInput)
	}
	_, err := db.Exec(`
INSERT INTO app_config (key, value) VALUES (?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value)
	if err != nil {
		return fmt.Errorf("set config key %q: %w", key, err)
	}
	return nil
}

// ConfigEntry is one app_config row.
type ConfigEntry struct {
	Key   string
	Value string
}

func ListConfig(db *sql.DB) ([]ConfigEntry, error) {
	rows, err := db.Query(`SELECT key, value FROM app_config ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("list config: %w", err)
	}
	defer rows.Close()
	var out []ConfigEntry
	for rows.Next() {
		var e ConfigEntry
		if err := rows.Scan(&e.Key, &e.Value); err != nil {
			return nil, fmt.Errorf("scan config entry: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
