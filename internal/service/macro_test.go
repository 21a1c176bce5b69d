package service_test

import (
	"errors"
	"testing"

	"github.com/J4sp3rd3v/fitcoach-cli/internal/model"
	"github.com/J4sp3rd3v/fitcoach-cli/internal/service"
)

func baseProfile() model.UserProfile {
	return model.UserProfile{
		Name:          "Test",
		Age:           31,
		HeightCm:      172,
		WeightKg:      78,
		Gender:        "male",
		Goal:          model.GoalFatLoss,
		ActivityLevel: model.ActivityModerate,
	}
}

func TestCalculateMacrosFatLoss(t *testing.T) {
	t.Parallel()
	got, err := service.CalculateMacros(baseProfile())
	if err != nil {
		t.Fatalf("CalculateMacros: %v", err)
	}
	want := service.MacroTargets{
		BMR:            1705,
		TDEE:           2643,
		TargetCalories: 2143,
		ProteinG:       156,
		CarbG:          222,
		FatG:           70,
	}
	if got != want {
		t.Errorf("CalculateMacros = %+v, want %+v", got, want)
	}
}

func TestCalculateMacrosMuscleGain(t *testing.T) {
	t.Parallel()
	p := baseProfile()
	p.Goal = model.GoalMuscleGain
	got, err := service.CalculateMacros(p)
	if err != nil {
		t.Fatalf("CalculateMacros: %v", err)
	}
	if got.TargetCalories != got.TDEE+300 {
		t.Errorf("muscle gain target = %d, want TDEE+300 = %d", got.TargetCalories, got.TDEE+300)
	}
	// 78 * 2.2 = 171.6, rounded.
	if got.ProteinG != 172 {
		t.Errorf("protein = %d, want 172", got.ProteinG)
	}
}

func TestCalculateMacrosFemaleMaintenance(t *testing.T) {
	t.Parallel()
	p := model.UserProfile{
		Age: 28, HeightCm: 165, WeightKg: 60,
		Gender: "female", Goal: model.GoalMaintenance, ActivityLevel: model.ActivityLight,
	}
	got, err := service.CalculateMacros(p)
	if err != nil {
		t.Fatalf("CalculateMacros: %v", err)
	}
	// BMR = 600 + 1031.25 - 140 - 161 = 1330.25; TDEE = 1829.09..., rounded.
	if got.BMR != 1330 {
		t.Errorf("BMR = %d, want 1330", got.BMR)
	}
	if got.TargetCalories != got.TDEE {
		t.Errorf("maintenance target = %d, want TDEE = %d", got.TargetCalories, got.TDEE)
	}
}

func TestCalculateMacrosCarbFloor(t *testing.T) {
	t.Parallel()
	// A light, sedentary profile on fat loss lands below the 50 g carb floor.
	p := model.UserProfile{
		Age: 60, HeightCm: 150, WeightKg: 45,
		Gender: "female", Goal: model.GoalFatLoss, ActivityLevel: model.ActivitySedentary,
	}
	got, err := service.CalculateMacros(p)
	if err != nil {
		t.Fatalf("CalculateMacros: %v", err)
	}
	if got.CarbG != 50 {
		t.Errorf("carbs = %d, want floor 50", got.CarbG)
	}
}

func TestCalculateMacrosRejectsBadInput(t *testing.T) {
	t.Parallel()
	p := baseProfile()
	p.Gender = "other"
	if _, err := service.CalculateMacros(p); !errors.Is(err, service.ErrInvalidInput) {
		t.Errorf("bad gender: err = %v, want ErrInvalidInput", err)
	}
	p = baseProfile()
	p.Goal = "bulk"
	if _, err := service.CalculateMacros(p); !errors.Is(err, service.ErrInvalidInput) {
		t.Errorf("bad goal: err = %v, want ErrInvalidInput", err)
	}
	p = baseProfile()
	p.ActivityLevel = "extreme"
	if _, err := service.CalculateMacros(p); !errors.Is(err, service.ErrInvalidInput) {
		t.Errorf("bad activity: err = %v, want ErrInvalidInput", err)
	}
}

func TestCalculateOverviewStats(t *testing.T) {
	t.Parallel()
	got := service.CalculateOverviewStats(baseProfile())
	// The dashboard snapshot uses a fixed 1.35 multiplier and -500 deficit.
	want := service.OverviewStats{
		TDEE:           2302,
		TargetCalories: 1802,
		ProteinG:       156,
		WaterGoalMl:    2730,
	}
	if got != want {
		t.Errorf("CalculateOverviewStats = %+v, want %+v", got, want)
	}
}
