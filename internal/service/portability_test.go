package service_test

import (
	"encoding/json"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/J4sp3rd3v/fitcoach-cli/internal/catalog"
	"github.com/J4sp3rd3v/fitcoach-cli/internal/model"
	"github.com/J4sp3rd3v/fitcoach-cli/internal/service"
)

func TestExportImportRoundTrip(t *testing.T) {
	t.Parallel()
	src := newTestDB(t)

	if _, err := service.UpdateProfile(src, model.ProfilePatch{
		Name:     ptr("Giulia"),
		WeightKg: ptr(62.0),
	}); err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if _, err := service.AddXP(src, 1500); err != nil {
		t.Fatalf("AddXP: %v", err)
	}
	if _, err := service.UpdateSettings(src, model.SettingsPatch{
		ActivePlan: ptr("WildMoose"),
	}); err != nil {
		t.Fatalf("UpdateSettings: %v", err)
	}
	if _, err := service.SaveDailyLog(src, "2026-01-05", service.DailyLogPatch{
		SleepHours: ptr(8.0),
		Soreness:   ptr(3),
	}, service.DefaultWaterParams); err != nil {
		t.Fatalf("SaveDailyLog: %v", err)
	}
	plan, err := service.GenerateMealPlan(catalog.SeasonSpring, rand.New(rand.NewSource(11)))
	if err != nil {
		t.Fatalf("GenerateMealPlan: %v", err)
	}
	saved, err := service.SaveMealPlan(src, plan)
	if err != nil {
		t.Fatalf("SaveMealPlan: %v", err)
	}

	now := time.Date(2026, time.January, 10, 9, 0, 0, 0, time.UTC)
	data, err := service.Export(src, now)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	var payload service.ExportPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		t.Fatalf("export payload is not valid JSON: %v", err)
	}
	if payload.Version != service.ExportVersion {
		t.Errorf("version = %d", payload.Version)
	}
	if payload.ExportedAt != "2026-01-10T09:00:00Z" {
		t.Errorf("exported_at = %q", payload.ExportedAt)
	}

	dst := newTestDB(t)
	if err := service.Import(dst, data); err != nil {
		t.Fatalf("Import: %v", err)
	}

	p, err := service.GetProfile(dst)
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if p.Name != "Giulia" || p.WeightKg != 62 || p.XP != 1500 || p.Level != 2 {
		t.Errorf("restored profile = %+v", p)
	}
	s, err := service.GetSettings(dst)
	if err != nil {
		t.Fatalf("GetSettings: %v", err)
	}
	if s.ActivePlan != "WildMoose" {
		t.Errorf("restored plan = %q", s.ActivePlan)
	}
	l, err := service.GetDailyLog(dst, "2026-01-05")
	if err != nil {
		t.Fatalf("GetDailyLog: %v", err)
	}
	if l.SleepHours != 8 || l.Soreness != 3 {
		t.Errorf("restored log = %+v", l)
	}
	active, err := service.ActiveMealPlan(dst)
	if err != nil {
		t.Fatalf("ActiveMealPlan: %v", err)
	}
	if active.ID != saved.ID {
		t.Errorf("restored active plan = %s, want %s", active.ID, saved.ID)
	}
	for i := range active.Days {
		if active.Days[i].Total != saved.Days[i].Total {
			t.Errorf("day %d macros = %+v, want %+v", i, active.Days[i].Total, saved.Days[i].Total)
		}
	}
}

func TestImportRejectsBadPayload(t *testing.T) {
	t.Parallel()
	conn := newTestDB(t)
	if err := service.Import(conn, []byte("not json")); !errors.Is(err, service.ErrInvalidInput) {
		t.Errorf("garbage: err = %v, want ErrInvalidInput", err)
	}
	bad, _ := json.Marshal(service.ExportPayload{Version: 99})
	if err := service.Import(conn, bad); !errors.Is(err, service.ErrInvalidInput) {
		t.Errorf("bad version: err = %v, want ErrInvalidInput", err)
	}
}
