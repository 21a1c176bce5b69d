package service

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/J4sp3rd3v/fitcoach-cli/internal/catalog"
	"github.com/J4sp3rd3v/fitcoach-cli/internal/model"
)

// ExportVersion identifies the export payload layout.
const ExportVersion = 1

// ExportPayload is the portable snapshot of all user data. Catalog content
// is bundled with the binary and never exported.
type ExportPayload struct {
	Version    int                `json:"version"`
	ExportedAt string             `json:"exported_at"`
	Profile    model.UserProfile  `json:"profile"`
	Settings   model.UserSettings `json:"settings"`
	DailyLogs  []model.DailyLog   `json:"daily_logs"`
	MealPlans  []ExportedMealPlan `json:"meal_plans"`
	ActivePlan string             `json:"active_meal_plan,omitempty"`
}

// ExportedMealPlan stores a plan by recipe id so the payload stays small and
// survives catalog updates that keep ids stable.
type ExportedMealPlan struct {
	ID     string            `json:"id"`
	Season string            `json:"season"`
	Days   []ExportedMealDay `json:"days"`
}

type ExportedMealDay struct {
	Day       string `json:"day"`
	Breakfast string `json:"breakfast"`
	Lunch     string `json:"lunch"`
	Snack     string `json:"snack"`
	Dinner    string `json:"dinner"`
}

// Export serializes all user data to JSON.
func Export(db *sql.DB, now time.Time) ([]byte, error) {
	p, err := GetProfile(db)
	if err != nil {
		return nil, err
	}
	s, err := GetSettings(db)
	if err != nil {
		return nil, err
	}
	logs, err := ListDailyLogs(db, 0)
	if err != nil {
		return nil, err
	}

	payload := ExportPayload{
		Version:    ExportVersion,
		ExportedAt: now.UTC().Format(time.RFC3339),
		Profile:    p,
		Settings:   s,
		DailyLogs:  logs,
	}

	infos, err := ListMealPlans(db)
	if err != nil {
		return nil, err
	}
	for _, info := range infos {
		plan, err := LoadMealPlan(db, info.ID)
		if err != nil {
			return nil, err
		}
		exp := ExportedMealPlan{ID: plan.ID, Season: string(plan.Season)}
		for _, day := range plan.Days {
			exp.Days = append(exp.Days, ExportedMealDay{
				Day:       day.Label,
				Breakfast: day.Breakfast.ID,
				Lunch:     day.Lunch.ID,
				Snack:     day.Snack.ID,
				Dinner:    day.Dinner.ID,
			})
		}
		payload.MealPlans = append(payload.MealPlans, exp)
	}

	var active string
	err = db.QueryRow(`SELECT value FROM app_config WHERE key = ?`, activePlanKey).Scan(&active)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("load active meal plan id: %w", err)
	}
	payload.ActivePlan = active

	return json.MarshalIndent(payload, "", "  ")
}

// Import restores a snapshot produced by Export, replacing current user
// data. Unknown payload versions are rejected.
func Import(db *sql.DB, data []byte) error {
	var payload ExportPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return fmt.Errorf("%w: parse export payload: %v", ErrInvalidInput, err)
	}
	if payload.Version != ExportVersion {
		return fmt.Errorf("%w: unsupported export version %d", ErrInvalidInput, payload.Version)
	}

	if err := saveProfile(db, payload.Profile); err != nil {
		return err
	}
	if _, err := db.Exec(`
INSERT INTO user_settings (id, name, height_cm, target_weight_kg, activity_level, active_plan)
VALUES (1, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  name = excluded.name,
  height_cm = excluded.height_cm,
  target_weight_kg = excluded.target_weight_kg,
  activity_level = excluded.activity_level,
  active_plan = excluded.active_plan,
  updated_at = CURRENT_TIMESTAMP`,
		payload.Settings.Name, payload.Settings.HeightCm, payload.Settings.TargetWeightKg,
		payload.Settings.ActivityLevel, payload.Settings.ActivePlan); err != nil {
		return fmt.Errorf("restore settings: %w", err)
	}

	for _, l := range payload.DailyLogs {
		if err := validateDate(l.Date); err != nil {
			return err
		}
		if err := upsertDailyLog(db, l); err != nil {
			return err
		}
	}

	for _, exp := range payload.MealPlans {
		if len(exp.Days) != 7 {
			return fmt.Errorf("%w: meal plan %s has %d days", ErrInvalidInput, exp.ID, len(exp.Days))
		}
		if _, err := db.Exec(`INSERT OR IGNORE INTO meal_plans (id, season) VALUES (?, ?)`,
			exp.ID, exp.Season); err != nil {
			return fmt.Errorf("restore meal plan %s: %w", exp.ID, err)
		}
		for i, day := range exp.Days {
			total, err := dayMacros(day)
			if err != nil {
				return fmt.Errorf("meal plan %s: %w", exp.ID, err)
			}
			if _, err := db.Exec(`
INSERT OR REPLACE INTO meal_plan_days (plan_id, day_index, day, breakfast_id, lunch_id,
                                       snack_id, dinner_id, calories, protein_g, carb_g, fat_g)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				exp.ID, i, day.Day, day.Breakfast, day.Lunch, day.Snack, day.Dinner,
				total.Cal, total.Protein, total.Carb, total.Fat); err != nil {
				return fmt.Errorf("restore meal plan %s day %d: %w", exp.ID, i, err)
			}
		}
	}

	if payload.ActivePlan != "" {
		if _, err := db.Exec(`
INSERT INTO app_config (key, value) VALUES (?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
			activePlanKey, payload.ActivePlan); err != nil {
			return fmt.Errorf("restore active meal plan: %w", err)
		}
	}
	return nil
}

func dayMacros(day ExportedMealDay) (catalog.Macros, error) {
	var total catalog.Macros
	for _, id := range []string{day.Breakfast, day.Lunch, day.Snack, day.Dinner} {
		r, ok := catalog.RecipeByID(id)
		if !ok {
			return catalog.Macros{}, fmt.Errorf("%w: unknown recipe %q", ErrInvalidInput, id)
		}
		total = total.Add(r.Macros)
	}
	return total, nil
}
