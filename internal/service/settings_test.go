package service_test

import (
	"errors"
	"testing"

	"github.com/J4sp3rd3v/fitcoach-cli/internal/catalog"
	"github.com/J4sp3rd3v/fitcoach-cli/internal/model"
	"github.com/J4sp3rd3v/fitcoach-cli/internal/service"
)

func TestGetSettingsDefaults(t *testing.T) {
	t.Parallel()
	conn := newTestDB(t)
	s, err := service.GetSettings(conn)
	if err != nil {
		t.Fatalf("GetSettings: %v", err)
	}
	if s.Name != "Atleta" || s.ActivePlan != catalog.DefaultCreator {
		t.Errorf("defaults = %+v", s)
	}
}

func TestUpdateSettings(t *testing.T) {
	t.Parallel()
	conn := newTestDB(t)
	s, err := service.UpdateSettings(conn, model.SettingsPatch{
		Name:       ptr("Marco"),
		ActivePlan: ptr("Midas Movement"),
	})
	if err != nil {
		t.Fatalf("UpdateSettings: %v", err)
	}
	if s.Name != "Marco" || s.ActivePlan != "Midas Movement" {
		t.Errorf("patched settings = %+v", s)
	}
	// Untouched fields keep their defaults.
	if s.HeightCm != 175 {
		t.Errorf("height = %v, want 175", s.HeightCm)
	}

	reloaded, err := service.GetSettings(conn)
	if err != nil {
		t.Fatalf("GetSettings after save: %v", err)
	}
	if reloaded.ActivePlan != "Midas Movement" {
		t.Errorf("reloaded plan = %q", reloaded.ActivePlan)
	}
}

func TestUpdateSettingsRejectsUnknownPlan(t *testing.T) {
	t.Parallel()
	conn := newTestDB(t)
	_, err := service.UpdateSettings(conn, model.SettingsPatch{ActivePlan: ptr("Nonexistent Coach")})
	if !errors.Is(err, service.ErrInvalidInput) {
		t.Errorf("err = %v, want ErrInvalidInput", err)
	}
}
