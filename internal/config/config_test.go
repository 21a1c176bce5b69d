package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/J4sp3rd3v/fitcoach-cli/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DBPath != "" || cfg.DefaultSeason != "" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.Water.BaseMlPerKg != 35 || cfg.Water.MlPerBlock != 500 {
		t.Errorf("water defaults = %+v", cfg.Water)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	yaml := "db_path: /tmp/custom.db\ndefault_season: winter\nwater:\n  base_ml_per_kg: 30\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := config.Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DBPath != "/tmp/custom.db" || cfg.DefaultSeason != "winter" {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.Water.BaseMlPerKg != 30 {
		t.Errorf("water.base_ml_per_kg = %v, want 30", cfg.Water.BaseMlPerKg)
	}
	// Unset keys keep their defaults.
	if cfg.Water.MlPerBlock != 500 {
		t.Errorf("water.ml_per_block = %v, want 500", cfg.Water.MlPerBlock)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("FITCOACH_DEFAULT_SEASON", "summer")
	cfg, err := config.Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DefaultSeason != "summer" {
		t.Errorf("env override not applied: %q", cfg.DefaultSeason)
	}
}
