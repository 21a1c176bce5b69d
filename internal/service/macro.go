package service

import (
	"fmt"
	"math"

	"github.com/J4sp3rd3v/fitcoach-cli/internal/model"
)

// MacroTargets are the daily calorie and macro goals derived from a profile.
type MacroTargets struct {
	BMR            int
	TDEE           int
	TargetCalories int
	ProteinG       int
	CarbG          int
	FatG           int
}

var activityMultipliers = map[model.ActivityLevel]float64{
	model.ActivitySedentary: 1.2,
	model.ActivityLight:     1.375,
	model.ActivityModerate:  1.55,
	model.ActivityActive:    1.725,
	model.ActivityAthlete:   1.9,
}

// CalculateMacros derives daily targets with the Mifflin-St Jeor equation.
// Intermediate values stay floating point; rounding happens once per output
// field. Carbs fill the calories left after protein and fat, floored at 50 g.
func CalculateMacros(p model.UserProfile) (MacroTargets, error) {
	if err := validateGender(p.Gender); err != nil {
		return MacroTargets{}, err
	}
	if err := validateGoal(string(p.Goal)); err != nil {
		return MacroTargets{}, err
	}
	mult, ok := activityMultipliers[p.ActivityLevel]
	if !ok {
		return MacroTargets{}, fmt.Errorf("%w: unknown activity level %q", ErrInvalidInput, p.ActivityLevel)
	}

	bmr := 10*p.WeightKg + 6.25*p.HeightCm - 5*float64(p.Age)
	if p.Gender == "male" {
		bmr += 5
	} else {
		bmr -= 161
	}

	tdee := bmr * mult

	target := tdee
	switch p.Goal {
	case model.GoalFatLoss:
		target = tdee - 500
	case model.GoalMuscleGain:
		target = tdee + 300
	}

	proteinPerKg := 2.0
	if p.Goal == model.GoalMuscleGain {
		proteinPerKg = 2.2
	}
	protein := p.WeightKg * proteinPerKg
	fat := p.WeightKg * 0.9
	carb := math.Max(50, math.Round((target-protein*4-fat*9)/4))

	return MacroTargets{
		BMR:            int(math.Round(bmr)),
		TDEE:           int(math.Round(tdee)),
		TargetCalories: int(math.Round(target)),
		ProteinG:       int(math.Round(protein)),
		CarbG:          int(math.Round(carb)),
		FatG:           int(math.Round(fat)),
	}, nil
}

// OverviewStats is the simplified calorie snapshot shown on the dashboard.
// It uses a fixed activity multiplier and deficit, independent of the goal
// and activity level stored in the profile.
type OverviewStats struct {
	TDEE           int
	TargetCalories int
	ProteinG       int
	WaterGoalMl    int
}

func CalculateOverviewStats(p model.UserProfile) OverviewStats {
	bmr := 10*p.WeightKg + 6.25*p.HeightCm - 5*float64(p.Age)
	if p.Gender == "male" {
		bmr += 5
	} else {
		bmr -= 161
	}
	tdee := bmr * 1.35
	return OverviewStats{
		TDEE:           int(math.Round(tdee)),
		TargetCalories: int(math.Round(tdee - 500)),
		ProteinG:       int(math.Round(p.WeightKg * 2.0)),
		WaterGoalMl:    WaterGoalMl(&p.WeightKg, 0, DefaultWaterParams),
	}
}
