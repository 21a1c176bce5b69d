package service_test

import (
	"errors"
	"testing"

	"github.com/J4sp3rd3v/fitcoach-cli/internal/model"
	"github.com/J4sp3rd3v/fitcoach-cli/internal/service"
)

func TestGetProfileDefaults(t *testing.T) {
	t.Parallel()
	conn := newTestDB(t)
	p, err := service.GetProfile(conn)
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if p.Name != "Utente" || p.Age != 30 || p.Gender != "male" {
		t.Errorf("defaults = %+v", p)
	}
	if p.Goal != model.GoalFatLoss || p.ActivityLevel != model.ActivityModerate {
		t.Errorf("goal/activity = %s/%s", p.Goal, p.ActivityLevel)
	}
	if p.XP != 0 || p.Level != 1 {
		t.Errorf("xp/level = %d/%d", p.XP, p.Level)
	}
}

func TestUpdateProfile(t *testing.T) {
	t.Parallel()
	conn := newTestDB(t)
	p, err := service.UpdateProfile(conn, model.ProfilePatch{
		Name:     ptr("Giulia"),
		Age:      ptr(27),
		Gender:   ptr("female"),
		WeightKg: ptr(58.0),
		Goal:     ptr(model.GoalMaintenance),
	})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if p.Name != "Giulia" || p.Age != 27 || p.Gender != "female" || p.WeightKg != 58 {
		t.Errorf("patched profile = %+v", p)
	}
	if p.Goal != model.GoalMaintenance {
		t.Errorf("goal = %s", p.Goal)
	}
	// Untouched fields keep their previous values.
	if p.HeightCm != 175 {
		t.Errorf("height = %v, want 175", p.HeightCm)
	}

	if _, err := service.UpdateProfile(conn, model.ProfilePatch{Gender: ptr("other")}); !errors.Is(err, service.ErrInvalidInput) {
		t.Errorf("bad gender: err = %v, want ErrInvalidInput", err)
	}
	if _, err := service.UpdateProfile(conn, model.ProfilePatch{Goal: ptr(model.Goal("bulk"))}); !errors.Is(err, service.ErrInvalidInput) {
		t.Errorf("bad goal: err = %v, want ErrInvalidInput", err)
	}
	if _, err := service.UpdateProfile(conn, model.ProfilePatch{Age: ptr(-1)}); !errors.Is(err, service.ErrInvalidInput) {
		t.Errorf("bad age: err = %v, want ErrInvalidInput", err)
	}
}

func TestAddXPLevels(t *testing.T) {
	t.Parallel()
	conn := newTestDB(t)
	p, err := service.AddXP(conn, 450)
	if err != nil {
		t.Fatalf("AddXP: %v", err)
	}
	if p.XP != 450 || p.Level != 1 {
		t.Errorf("after 450 xp: xp=%d level=%d", p.XP, p.Level)
	}
	p, err = service.AddXP(conn, 600)
	if err != nil {
		t.Fatalf("AddXP: %v", err)
	}
	if p.XP != 1050 || p.Level != 2 {
		t.Errorf("after 1050 xp: xp=%d level=%d", p.XP, p.Level)
	}
	if _, err := service.AddXP(conn, -10); !errors.Is(err, service.ErrInvalidInput) {
		t.Errorf("negative xp: err = %v, want ErrInvalidInput", err)
	}
}

func TestUnlockBadgeIdempotent(t *testing.T) {
	t.Parallel()
	conn := newTestDB(t)
	p, err := service.UnlockBadge(conn, "Ercole Moderno")
	if err != nil {
		t.Fatalf("UnlockBadge: %v", err)
	}
	if len(p.Badges) != 1 || p.Badges[0] != "Ercole Moderno" {
		t.Errorf("badges = %v", p.Badges)
	}
	p, err = service.UnlockBadge(conn, "Ercole Moderno")
	if err != nil {
		t.Fatalf("UnlockBadge repeat: %v", err)
	}
	if len(p.Badges) != 1 {
		t.Errorf("badge duplicated: %v", p.Badges)
	}
}

func TestToggleFavorite(t *testing.T) {
	t.Parallel()
	conn := newTestDB(t)
	p, on, err := service.ToggleFavorite(conn, "ch1")
	if err != nil {
		t.Fatalf("ToggleFavorite: %v", err)
	}
	if !on || len(p.Favorites) != 1 || p.Favorites[0] != "ch1" {
		t.Errorf("after first toggle: on=%v favorites=%v", on, p.Favorites)
	}
	p, on, err = service.ToggleFavorite(conn, "ch1")
	if err != nil {
		t.Fatalf("ToggleFavorite off: %v", err)
	}
	if on || len(p.Favorites) != 0 {
		t.Errorf("after second toggle: on=%v favorites=%v", on, p.Favorites)
	}
	if _, _, err := service.ToggleFavorite(conn, "nope"); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("unknown workout: err = %v, want ErrNotFound", err)
	}
}
