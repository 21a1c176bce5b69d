package service_test

import (
	"errors"
	"testing"

	"github.com/J4sp3rd3v/fitcoach-cli/internal/service"
)

func TestGetDailyLogDefaults(t *testing.T) {
	t.Parallel()
	conn := newTestDB(t)
	l, err := service.GetDailyLog(conn, "2026-01-05")
	if err != nil {
		t.Fatalf("GetDailyLog: %v", err)
	}
	if l.SleepHours != 7 || l.Soreness != 2 || l.EnergyLevel != 3 {
		t.Errorf("defaults = %+v", l)
	}
	if l.WaterGoalMl != 2500 || l.WaterIntakeMl != 0 {
		t.Errorf("water defaults = goal %d intake %d", l.WaterGoalMl, l.WaterIntakeMl)
	}
	if l.WeightKg != nil {
		t.Error("default log should have no weight")
	}
}

func TestSaveDailyLogPatchAndWaterGoal(t *testing.T) {
	t.Parallel()
	conn := newTestDB(t)
	l, err := service.SaveDailyLog(conn, "2026-01-05", service.DailyLogPatch{
		WeightKg:   ptr(80.0),
		SleepHours: ptr(6.5),
		Soreness:   ptr(4),
	}, service.DefaultWaterParams)
	if err != nil {
		t.Fatalf("SaveDailyLog: %v", err)
	}
	if l.WeightKg == nil || *l.WeightKg != 80 {
		t.Errorf("weight = %v, want 80", l.WeightKg)
	}
	if l.SleepHours != 6.5 || l.Soreness != 4 {
		t.Errorf("patched log = %+v", l)
	}
	// 80 kg, no completed workout: goal = 80*35 = 2800.
	if l.WaterGoalMl != 2800 {
		t.Errorf("water goal = %d, want 2800", l.WaterGoalMl)
	}

	// Unpatched fields survive a second save.
	l, err = service.SaveDailyLog(conn, "2026-01-05", service.DailyLogPatch{
		EnergyLevel: ptr(5),
	}, service.DefaultWaterParams)
	if err != nil {
		t.Fatalf("SaveDailyLog second patch: %v", err)
	}
	if l.SleepHours != 6.5 || l.Soreness != 4 || l.EnergyLevel != 5 {
		t.Errorf("merged log = %+v", l)
	}
}

func TestSaveDailyLogRejectsOutOfRange(t *testing.T) {
	t.Parallel()
	conn := newTestDB(t)
	cases := []service.DailyLogPatch{
		{Soreness: ptr(0)},
		{Soreness: ptr(6)},
		{EnergyLevel: ptr(0)},
		{EnergyLevel: ptr(9)},
		{WeightKg: ptr(-1.0)},
		{SleepHours: ptr(-2.0)},
	}
	for i, patch := range cases {
		if _, err := service.SaveDailyLog(conn, "2026-01-05", patch, service.DefaultWaterParams); !errors.Is(err, service.ErrInvalidInput) {
			t.Errorf("case %d: err = %v, want ErrInvalidInput", i, err)
		}
	}
	if _, err := service.GetDailyLog(conn, "not-a-date"); !errors.Is(err, service.ErrInvalidInput) {
		t.Errorf("bad date: err = %v, want ErrInvalidInput", err)
	}
}

func TestAddWaterAccumulates(t *testing.T) {
	t.Parallel()
	conn := newTestDB(t)
	if _, err := service.AddWater(conn, "2026-01-05", 500, service.DefaultWaterParams); err != nil {
		t.Fatalf("AddWater: %v", err)
	}
	l, err := service.AddWater(conn, "2026-01-05", 250, service.DefaultWaterParams)
	if err != nil {
		t.Fatalf("AddWater: %v", err)
	}
	if l.WaterIntakeMl != 750 {
		t.Errorf("intake = %d, want 750", l.WaterIntakeMl)
	}
	if _, err := service.AddWater(conn, "2026-01-05", 0, service.DefaultWaterParams); !errors.Is(err, service.ErrInvalidInput) {
		t.Errorf("zero ml: err = %v, want ErrInvalidInput", err)
	}
}

func TestMarkWorkoutDoneRaisesWaterGoal(t *testing.T) {
	t.Parallel()
	conn := newTestDB(t)
	// 2026-01-05 is a Monday: the default plan schedules ch1 (15 min).
	if _, err := service.SaveDailyLog(conn, "2026-01-05", service.DailyLogPatch{
		WeightKg: ptr(80.0),
	}, service.DefaultWaterParams); err != nil {
		t.Fatalf("SaveDailyLog: %v", err)
	}
	l, err := service.MarkWorkoutDone(conn, "2026-01-05", service.DefaultWaterParams)
	if err != nil {
		t.Fatalf("MarkWorkoutDone: %v", err)
	}
	if !l.WorkoutCompleted {
		t.Error("workout not marked completed")
	}
	// 80*35 + 15/30*500 = 3050.
	if l.WaterGoalMl != 3050 {
		t.Errorf("water goal = %d, want 3050", l.WaterGoalMl)
	}
}

func TestListDailyLogs(t *testing.T) {
	t.Parallel()
	conn := newTestDB(t)
	for _, date := range []string{"2026-01-05", "2026-01-07", "2026-01-06"} {
		if _, err := service.SaveDailyLog(conn, date, service.DailyLogPatch{}, service.DefaultWaterParams); err != nil {
			t.Fatalf("SaveDailyLog %s: %v", date, err)
		}
	}
	logs, err := service.ListDailyLogs(conn, 2)
	if err != nil {
		t.Fatalf("ListDailyLogs: %v", err)
	}
	if len(logs) != 2 {
		t.Fatalf("got %d logs, want 2", len(logs))
	}
	if logs[0].Date != "2026-01-07" || logs[1].Date != "2026-01-06" {
		t.Errorf("order = %s, %s; want newest first", logs[0].Date, logs[1].Date)
	}
}
