package service

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/J4sp3rd3v/fitcoach-cli/internal/catalog"
	"github.com/J4sp3rd3v/fitcoach-cli/internal/model"
)

// TodayPlanEntry pairs a weekly-plan day with its resolved workout.
type TodayPlanEntry struct {
	Day     catalog.PlanDay
	Workout catalog.Workout
}

// planDayIndex maps a weekday to the plan slot, Monday first.
func planDayIndex(d time.Weekday) int {
	if d == time.Sunday {
		return 6
	}
	return int(d) - 1
}

// WorkoutForDate resolves the active plan's workout for the given date.
func WorkoutForDate(db *sql.DB, date time.Time) (TodayPlanEntry, error) {
	s, err := GetSettings(db)
	if err != nil {
		return TodayPlanEntry{}, err
	}
	plan := catalog.PlanForCreator(s.ActivePlan)
	day := plan[planDayIndex(date.Weekday())]
	w, ok := catalog.WorkoutByID(day.WorkoutID)
	if !ok {
		return TodayPlanEntry{}, fmt.Errorf("plan references unknown workout %q", day.WorkoutID)
	}
	return TodayPlanEntry{Day: day, Workout: w}, nil
}

// TodayWorkout resolves the workout scheduled for today.
func TodayWorkout(db *sql.DB, now time.Time) (TodayPlanEntry, error) {
	return WorkoutForDate(db, now)
}

// workoutMinutesForDate returns the duration of the active plan's workout
// for the date, used by the hydration goal.
func workoutMinutesForDate(db *sql.DB, date string) (int, error) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return 0, fmt.Errorf("%w: date %q must be YYYY-MM-DD", ErrInvalidInput, date)
	}
	entry, err := WorkoutForDate(db, t)
	if err != nil {
		return 0, err
	}
	return entry.Workout.DurationMin, nil
}

// CompleteResult reports the outcome of finishing a workout.
type CompleteResult struct {
	Workout  catalog.Workout
	Log      model.DailyLog
	Profile  model.UserProfile
	XPGained int
	Badge    string
}

// CompleteWorkout marks the workout done for the date, awards any attached
// XP and badge, and refreshes the day's water goal.
func CompleteWorkout(db *sql.DB, workoutID, date string, water WaterParams) (CompleteResult, error) {
	w, ok := catalog.WorkoutByID(workoutID)
	if !ok {
		return CompleteResult{}, fmt.Errorf("workout %s: %w", workoutID, ErrNotFound)
	}
	log, err := MarkWorkoutDone(db, date, water)
	if err != nil {
		return CompleteResult{}, err
	}

	res := CompleteResult{Workout: w, Log: log}
	p, err := GetProfile(db)
	if err != nil {
		return CompleteResult{}, err
	}
	if w.Gamify != nil {
		res.XPGained = w.Gamify.XP
		p, err = AddXP(db, w.Gamify.XP)
		if err != nil {
			return CompleteResult{}, err
		}
		if w.Gamify.Badge != "" {
			res.Badge = w.Gamify.Badge
			p, err = UnlockBadge(db, w.Gamify.Badge)
			if err != nil {
				return CompleteResult{}, err
			}
		}
	}
	res.Profile = p
	return res, nil
}

// WorkoutFilter narrows workout listings.
type WorkoutFilter struct {
	Creator  string
	Category string
	Level    string
}

// ListWorkouts returns the approved workouts matching the filter.
func ListWorkouts(f WorkoutFilter) []catalog.Workout {
	var out []catalog.Workout
	for _, w := range catalog.ApprovedWorkouts() {
		if f.Creator != "" && w.Creator != f.Creator {
			continue
		}
		if f.Category != "" && w.Category != f.Category {
			continue
		}
		if f.Level != "" && w.Level != f.Level {
			continue
		}
		out = append(out, w)
	}
	return out
}
