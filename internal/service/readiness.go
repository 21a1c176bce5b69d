package service

import (
	"math"

	"github.com/J4sp3rd3v/fitcoach-cli/internal/model"
)

// Readiness is a 0-100 recovery score derived from a daily log.
type Readiness struct {
	Score  int
	Status string
	Color  string
}

// ComputeReadiness scores sleep and soreness on a 0-100 scale, averages
// them, then shifts the result by the reported energy level. 7-9 hours of
// sleep scores full marks; oversleeping is penalized slightly.
func ComputeReadiness(log model.DailyLog) Readiness {
	var sleep float64
	switch {
	case log.SleepHours >= 7 && log.SleepHours <= 9:
		sleep = 100
	case log.SleepHours > 9:
		sleep = 90
	case log.SleepHours >= 5:
		sleep = 60
	default:
		sleep = 30
	}

	soreness := 100 - float64(log.Soreness-1)*25

	score := (sleep + soreness) / 2
	score += float64(log.EnergyLevel-3) * 5

	score = math.Round(math.Max(0, math.Min(100, score)))

	r := Readiness{Score: int(score)}
	switch {
	case r.Score < 40:
		r.Status, r.Color = "Recovery Needed", "red"
	case r.Score < 70:
		r.Status, r.Color = "Moderate", "yellow"
	default:
		r.Status, r.Color = "Optimal", "green"
	}
	return r
}

// WaterParams are the tunable constants of the hydration formula.
type WaterParams struct {
	BaseMlPerKg float64
	MlPerBlock  float64
}

// DefaultWaterParams matches 35 ml per kg of body weight plus 500 ml per
// 30 minutes of training.
var DefaultWaterParams = WaterParams{BaseMlPerKg: 35, MlPerBlock: 500}

// WaterGoalMl computes the daily hydration target in ml. A nil weight falls
// back to 70 kg; workout minutes scale the extra allowance proportionally.
func WaterGoalMl(weightKg *float64, workoutMinutes int, p WaterParams) int {
	w := 70.0
	if weightKg != nil {
		w = *weightKg
	}
	goal := w*p.BaseMlPerKg + float64(workoutMinutes)/30*p.MlPerBlock
	return int(math.Round(goal))
}
