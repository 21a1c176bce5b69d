package service

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/J4sp3rd3v/fitcoach-cli/internal/catalog"
)

const activePlanKey = "active_meal_plan"

// SaveMealPlan stores a generated plan and marks it active, so plan show and
// shopping commands work across invocations.
func SaveMealPlan(db *sql.DB, plan MealPlan) (MealPlan, error) {
	plan.ID = uuid.NewString()

	tx, err := db.Begin()
	if err != nil {
		return MealPlan{}, fmt.Errorf("begin save meal plan: %w", err)
	}
	if _, err := tx.Exec(`INSERT INTO meal_plans (id, season) VALUES (?, ?)`,
		plan.ID, string(plan.Season)); err != nil {
		_ = tx.Rollback()
		return MealPlan{}, fmt.Errorf("insert meal plan: %w", err)
	}
	for i, day := range plan.Days {
		if _, err := tx.Exec(`
INSERT INTO meal_plan_days (plan_id, day_index, day, breakfast_id, lunch_id,
                            snack_id, dinner_id, calories, protein_g, carb_g, fat_g)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			plan.ID, i, day.Label, day.Breakfast.ID, day.Lunch.ID,
			day.Snack.ID, day.Dinner.ID,
			day.Total.Cal, day.Total.Protein, day.Total.Carb, day.Total.Fat); err != nil {
			_ = tx.Rollback()
			return MealPlan{}, fmt.Errorf("insert meal plan day %d: %w", i, err)
		}
	}
	if _, err := tx.Exec(`
INSERT INTO app_config (key, value) VALUES (?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		activePlanKey, plan.ID); err != nil {
		_ = tx.Rollback()
		return MealPlan{}, fmt.Errorf("set active meal plan: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return MealPlan{}, fmt.Errorf("commit save meal plan: %w", err)
	}
	return plan, nil
}

// LoadMealPlan rehydrates a stored plan, resolving recipe ids against the
// catalog. A stored id missing from the catalog fails the load.
func LoadMealPlan(db *sql.DB, id string) (MealPlan, error) {
	var plan MealPlan
	var season string
	err := db.QueryRow(`SELECT id, season FROM meal_plans WHERE id = ?`, id).
		Scan(&plan.ID, &season)
	if err == sql.ErrNoRows {
		return MealPlan{}, fmt.Errorf("meal plan %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return MealPlan{}, fmt.Errorf("load meal plan %s: %w", id, err)
	}
	plan.Season = catalog.Season(season)

	rows, err := db.Query(`
SELECT day_index, day, breakfast_id, lunch_id, snack_id, dinner_id
FROM meal_plan_days WHERE plan_id = ? ORDER BY day_index`, id)
	if err != nil {
		return MealPlan{}, fmt.Errorf("load meal plan days: %w", err)
	}
	defer rows.Close()

	n := 0
	for rows.Next() {
		var idx int
		var label, bID, lID, sID, dID string
		if err := rows.Scan(&idx, &label, &bID, &lID, &sID, &dID); err != nil {
			return MealPlan{}, fmt.Errorf("scan meal plan day: %w", err)
		}
		if idx < 0 || idx > 6 {
			return MealPlan{}, fmt.Errorf("meal plan %s: day index %d out of range", id, idx)
		}
		day := &plan.Days[idx]
		day.Label = label
		for _, pair := range []struct {
			recipeID string
			dst      *catalog.Recipe
		}{
			{bID, &day.Breakfast},
			{lID, &day.Lunch},
			{sID, &day.Snack},
			{dID, &day.Dinner},
		} {
			r, ok := catalog.RecipeByID(pair.recipeID)
			if !ok {
				return MealPlan{}, fmt.Errorf("meal plan %s references unknown recipe %q", id, pair.recipeID)
			}
			*pair.dst = r
			day.Total = day.Total.Add(r.Macros)
		}
		n++
	}
	if err := rows.Err(); err != nil {
		return MealPlan{}, err
	}
	if n != 7 {
		return MealPlan{}, fmt.Errorf("meal plan %s has %d days, want 7", id, n)
	}
	return plan, nil
}

// ActiveMealPlan loads the most recently generated plan. ErrNotFound means
// no plan has been generated yet.
func ActiveMealPlan(db *sql.DB) (MealPlan, error) {
	var id string
	err := db.QueryRow(`SELECT value FROM app_config WHERE key = ?`, activePlanKey).Scan(&id)
	if err == sql.ErrNoRows {
		return MealPlan{}, fmt.Errorf("no meal plan generated: %w", ErrNotFound)
	}
	if err != nil {
		return MealPlan{}, fmt.Errorf("load active meal plan id: %w", err)
	}
	return LoadMealPlan(db, id)
}

// ListMealPlans returns stored plan ids with season and creation time,
// newest first.
type MealPlanInfo struct {
	ID        string
	Season    string
	CreatedAt string
}

func ListMealPlans(db *sql.DB) ([]MealPlanInfo, error) {
	rows, err := db.Query(`SELECT id, season, created_at FROM meal_plans ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("list meal plans: %w", err)
	}
	defer rows.Close()
	var out []MealPlanInfo
	for rows.Next() {
		var info MealPlanInfo
		if err := rows.Scan(&info.ID, &info.Season, &info.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan meal plan: %w", err)
		}
		out = append(out, info)
	}
	return out, rows.Err()
}
