package service_test

import (
	"testing"

	"github.com/J4sp3rd3v/fitcoach-cli/internal/service"
)

func TestRunDoctorCleanDatabase(t *testing.T) {
	t.Parallel()
	conn := newTestDB(t)
	if _, err := service.SaveDailyLog(conn, "2026-01-05", service.DailyLogPatch{}, service.DefaultWaterParams); err != nil {
		t.Fatalf("SaveDailyLog: %v", err)
	}
	issues, err := service.RunDoctor(conn, false)
	if err != nil {
		t.Fatalf("RunDoctor: %v", err)
	}
	if len(issues) != 0 {
		t.Errorf("clean database reported issues: %+v", issues)
	}
}

func TestRunDoctorFindsAndFixesBadLogs(t *testing.T) {
	t.Parallel()
	conn := newTestDB(t)
	// Write a row the schema would normally reject, the way a hand-edited
	// database could leave it. The pool holds a single connection, so the
	// pragma covers the insert.
	if _, err := conn.Exec(`PRAGMA ignore_check_constraints = ON`); err != nil {
		t.Fatal(err)
	}
	if _, err := conn.Exec(`
INSERT INTO daily_logs (date, soreness, energy_level, water_intake_ml)
VALUES ('2026-01-05', 9, 0, -200)`); err != nil {
		t.Fatalf("seed bad row: %v", err)
	}
	if _, err := conn.Exec(`PRAGMA ignore_check_constraints = OFF`); err != nil {
		t.Fatal(err)
	}

	issues, err := service.RunDoctor(conn, false)
	if err != nil {
		t.Fatalf("RunDoctor: %v", err)
	}
	kinds := map[string]bool{}
	for _, i := range issues {
		kinds[i.Kind] = true
		if !i.Fixable {
			t.Errorf("issue %q should be fixable", i.Kind)
		}
	}
	for _, want := range []string{"soreness-range", "energy-range", "negative-water"} {
		if !kinds[want] {
			t.Errorf("missing issue kind %q in %+v", want, issues)
		}
	}

	// Dry run leaves the row untouched.
	var soreness int
	if err := conn.QueryRow(`SELECT soreness FROM daily_logs WHERE date = '2026-01-05'`).Scan(&soreness); err != nil {
		t.Fatal(err)
	}
	if soreness != 9 {
		t.Errorf("dry run changed soreness to %d", soreness)
	}

	if _, err := service.RunDoctor(conn, true); err != nil {
		t.Fatalf("RunDoctor fix: %v", err)
	}
	l, err := service.GetDailyLog(conn, "2026-01-05")
	if err != nil {
		t.Fatalf("GetDailyLog: %v", err)
	}
	if l.Soreness != 5 || l.EnergyLevel != 1 || l.WaterIntakeMl != 0 {
		t.Errorf("after fix: soreness=%d energy=%d water=%d", l.Soreness, l.EnergyLevel, l.WaterIntakeMl)
	}
	issues, err = service.RunDoctor(conn, false)
	if err != nil {
		t.Fatalf("RunDoctor after fix: %v", err)
	}
	if len(issues) != 0 {
		t.Errorf("issues remain after fix: %+v", issues)
	}
}

func TestRunDoctorOrphanFavorite(t *testing.T) {
	t.Parallel()
	conn := newTestDB(t)
	if _, _, err := service.ToggleFavorite(conn, "ch1"); err != nil {
		t.Fatalf("ToggleFavorite: %v", err)
	}
	// Corrupt the favorites list directly.
	if _, err := conn.Exec(`UPDATE user_profile SET favorites_json = '["ch1","gone"]' WHERE id = 1`); err != nil {
		t.Fatal(err)
	}

	issues, err := service.RunDoctor(conn, true)
	if err != nil {
		t.Fatalf("RunDoctor: %v", err)
	}
	found := false
	for _, i := range issues {
		if i.Kind == "orphan-favorite" {
			found = true
		}
	}
	if !found {
		t.Fatalf("orphan favorite not reported: %+v", issues)
	}
	p, err := service.GetProfile(conn)
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if len(p.Favorites) != 1 || p.Favorites[0] != "ch1" {
		t.Errorf("favorites after fix = %v, want [ch1]", p.Favorites)
	}
}
