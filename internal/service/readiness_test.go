package service_test

import (
	"testing"

	"github.com/J4sp3rd3v/fitcoach-cli/internal/model"
	"github.com/J4sp3rd3v/fitcoach-cli/internal/service"
)

func TestComputeReadiness(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name                  string
		sleep                 float64
		soreness, energy      int
		wantScore             int
		wantStatus, wantColor string
	}{
		{"rested", 8, 1, 3, 100, "Optimal", "green"},
		{"wrecked", 4, 5, 1, 5, "Recovery Needed", "red"},
		{"oversleep", 10, 1, 3, 95, "Optimal", "green"},
		{"short sleep", 6, 2, 3, 68, "Moderate", "yellow"},
		{"boundary optimal", 7, 3, 4, 80, "Optimal", "green"},
		{"high energy clamps at 100", 9, 1, 5, 100, "Optimal", "green"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			r := service.ComputeReadiness(model.DailyLog{
				SleepHours:  tc.sleep,
				Soreness:    tc.soreness,
				EnergyLevel: tc.energy,
			})
			if r.Score != tc.wantScore {
				t.Errorf("score = %d, want %d", r.Score, tc.wantScore)
			}
			if r.Status != tc.wantStatus || r.Color != tc.wantColor {
				t.Errorf("status/color = %s/%s, want %s/%s", r.Status, r.Color, tc.wantStatus, tc.wantColor)
			}
		})
	}
}

func TestWaterGoalMl(t *testing.T) {
	t.Parallel()
	p := service.DefaultWaterParams
	if got := service.WaterGoalMl(ptr(80.0), 60, p); got != 3800 {
		t.Errorf("80kg + 60min = %d ml, want 3800", got)
	}
	if got := service.WaterGoalMl(nil, 0, p); got != 2450 {
		t.Errorf("default weight, rest day = %d ml, want 2450", got)
	}
	// 45 minutes scales proportionally: 70*35 + 1.5*500 = 3200.
	if got := service.WaterGoalMl(ptr(70.0), 45, p); got != 3200 {
		t.Errorf("70kg + 45min = %d ml, want 3200", got)
	}
	custom := service.WaterParams{BaseMlPerKg: 30, MlPerBlock: 250}
	if got := service.WaterGoalMl(ptr(80.0), 30, custom); got != 2650 {
		t.Errorf("custom params = %d ml, want 2650", got)
	}
}
