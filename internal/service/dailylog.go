package service

import (
	"database/sql"
	"fmt"

	"github.com/J4sp3rd3v/fitcoach-cli/internal/model"
)

// DefaultDailyLog returns the log used for days with no saved entry.
func DefaultDailyLog(date string) model.DailyLog {
	return model.DailyLog{
		Date:        date,
		SleepHours:  7,
		Soreness:    2,
		EnergyLevel: 3,
		WaterGoalMl: 2500,
	}
}

// GetDailyLog loads the log for the given date, or the defaults when none
// has been saved yet.
func GetDailyLog(db *sql.DB, date string) (model.DailyLog, error) {
	if err := validateDate(date); err != nil {
		return model.DailyLog{}, err
	}
	var l model.DailyLog
	var completed int
	err := db.QueryRow(`
SELECT date, weight_kg, sleep_hours, soreness, energy_level,
       water_intake_ml, water_goal_ml, workout_completed, notes
FROM daily_logs WHERE date = ?`, date).Scan(
		&l.Date, &l.WeightKg, &l.SleepHours, &l.Soreness, &l.EnergyLevel,
		&l.WaterIntakeMl, &l.WaterGoalMl, &completed, &l.Notes,
	)
	if err == sql.ErrNoRows {
		return DefaultDailyLog(date), nil
	}
	if err != nil {
		return model.DailyLog{}, fmt.Errorf("load daily log %s: %w", date, err)
	}
	l.WorkoutCompleted = completed != 0
	return l, nil
}

// DailyLogPatch carries the fields a `log set` command may change.
type DailyLogPatch struct {
	WeightKg    *float64
	SleepHours  *float64
	Soreness    *int
	EnergyLevel *int
	Notes       *string
}

// SaveDailyLog applies a patch to a day's log and recomputes the water goal
// from the effective weight (the log's, falling back to the profile's) and
// the active plan's workout minutes when the workout is marked done.
func SaveDailyLog(db *sql.DB, date string, patch DailyLogPatch, water WaterParams) (model.DailyLog, error) {
	l, err := GetDailyLog(db, date)
	if err != nil {
		return model.DailyLog{}, err
	}

	if patch.WeightKg != nil {
		if *patch.WeightKg <= 0 {
			return model.DailyLog{}, fmt.Errorf("%w: weight must be positive", ErrInvalidInput)
		}
		l.WeightKg = patch.WeightKg
	}
	if patch.SleepHours != nil {
		if *patch.SleepHours < 0 {
			return model.DailyLog{}, fmt.Errorf("%w: sleep hours must not be negative", ErrInvalidInput)
		}
		l.SleepHours = *patch.SleepHours
	}
	if patch.Soreness != nil {
		if err := validateSoreness(*patch.Soreness); err != nil {
			return model.DailyLog{}, err
		}
		l.Soreness = *patch.Soreness
	}
	if patch.EnergyLevel != nil {
		if err := validateEnergy(*patch.EnergyLevel); err != nil {
			return model.DailyLog{}, err
		}
		l.EnergyLevel = *patch.EnergyLevel
	}
	if patch.Notes != nil {
		l.Notes = *patch.Notes
	}

	if err := recomputeWaterGoal(db, &l, water); err != nil {
		return model.DailyLog{}, err
	}
	if err := upsertDailyLog(db, l); err != nil {
		return model.DailyLog{}, err
	}
	return l, nil
}

// AddWater adds ml to the day's intake. Updates are additive so repeated
// invocations accumulate within the day.
func AddWater(db *sql.DB, date string, ml int, water WaterParams) (model.DailyLog, error) {
	if ml <= 0 {
		return model.DailyLog{}, fmt.Errorf("%w: water amount must be positive", ErrInvalidInput)
	}
	l, err := GetDailyLog(db, date)
	if err != nil {
		return model.DailyLog{}, err
	}
	l.WaterIntakeMl += ml
	if err := recomputeWaterGoal(db, &l, water); err != nil {
		return model.DailyLog{}, err
	}
	if err := upsertDailyLog(db, l); err != nil {
		return model.DailyLog{}, err
	}
	return l, nil
}

// MarkWorkoutDone flags the day's workout as completed and bumps the water
// goal to cover the session.
func MarkWorkoutDone(db *sql.DB, date string, water WaterParams) (model.DailyLog, error) {
	l, err := GetDailyLog(db, date)
	if err != nil {
		return model.DailyLog{}, err
	}
	l.WorkoutCompleted = true
	if err := recomputeWaterGoal(db, &l, water); err != nil {
		return model.DailyLog{}, err
	}
	if err := upsertDailyLog(db, l); err != nil {
		return model.DailyLog{}, err
	}
	return l, nil
}

func recomputeWaterGoal(db *sql.DB, l *model.DailyLog, water WaterParams) error {
	weight := l.WeightKg
	if weight == nil {
		p, err := GetProfile(db)
		if err != nil {
			return err
		}
		if p.WeightKg > 0 {
			w := p.WeightKg
			weight = &w
		}
	}
	minutes := 0
	if l.WorkoutCompleted {
		m, err := workoutMinutesForDate(db, l.Date)
		if err != nil {
			return err
		}
		minutes = m
	}
	l.WaterGoalMl = WaterGoalMl(weight, minutes, water)
	return nil
}

func upsertDailyLog(db *sql.DB, l model.DailyLog) error {
	completed := 0
	if l.WorkoutCompleted {
		completed = 1
	}
	_, err := db.Exec(`
INSERT INTO daily_logs (date, weight_kg, sleep_hours, soreness, energy_level,
                        water_intake_ml, water_goal_ml, workout_completed, notes)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(date) DO UPDATE SET
  weight_kg = excluded.weight_kg,
  sleep_hours = excluded.sleep_hours,
  soreness = excluded.soreness,
  energy_level = excluded.energy_level,
  water_intake_ml = excluded.water_intake_ml,
  water_goal_ml = excluded.water_goal_ml,
  workout_completed = excluded.workout_completed,
  notes = excluded.notes,
  updated_at = CURRENT_TIMESTAMP`,
		l.Date, l.WeightKg, l.SleepHours, l.Soreness, l.EnergyLevel,
		l.WaterIntakeMl, l.WaterGoalMl, completed, l.Notes)
	if err != nil {
		return fmt.Errorf("save daily log %s: %w", l.Date, err)
	}
	return nil
}

// ListDailyLogs returns saved logs ordered by date descending, capped at
// limit (0 means all).
func ListDailyLogs(db *sql.DB, limit int) ([]model.DailyLog, error) {
	q := `
SELECT date, weight_kg, sleep_hours, soreness, energy_level,
       water_intake_ml, water_goal_ml, workout_completed, notes
FROM daily_logs ORDER BY date DESC`
	var rows *sql.Rows
	var err error
	if limit > 0 {
		rows, err = db.Query(q+` LIMIT ?`, limit)
	} else {
		rows, err = db.Query(q)
	}
	if err != nil {
		return nil, fmt.Errorf("list daily logs: %w", err)
	}
	defer rows.Close()

	var out []model.DailyLog
	for rows.Next() {
		var l model.DailyLog
		var completed int
		if err := rows.Scan(&l.Date, &l.WeightKg, &l.SleepHours, &l.Soreness, &l.EnergyLevel,
			&l.WaterIntakeMl, &l.WaterGoalMl, &completed, &l.Notes); err != nil {
			return nil, fmt.Errorf("scan daily log: %w", err)
		}
		l.WorkoutCompleted = completed != 0
		out = append(out, l)
	}
	return out, rows.Err()
}
