package service

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/J4sp3rd3v/fitcoach-cli/internal/catalog"
)

// ErrEmptyCandidatePool is returned when no recipe can fill a meal slot.
// A catalog that passes Validate always has at least one recipe per slot,
// so generation over the bundled catalog never hits this.
var ErrEmptyCandidatePool = errors.New("no candidate recipes for meal slot")

// MealDay is one generated day of a weekly plan.
type MealDay struct {
	Label     string
	Breakfast catalog.Recipe
	Lunch     catalog.Recipe
	Snack     catalog.Recipe
	Dinner    catalog.Recipe
	Total     catalog.Macros
}

// Meal returns the recipe filling the given slot.
func (d MealDay) Meal(t catalog.MealType) catalog.Recipe {
	switch t {
	case catalog.MealBreakfast:
		return d.Breakfast
	case catalog.MealLunch:
		return d.Lunch
	case catalog.MealSnack:
		return d.Snack
	default:
		return d.Dinner
	}
}

// MealPlan is a full generated week, Monday first.
type MealPlan struct {
	ID     string
	Season catalog.Season
	Days   [7]MealDay
}

// GenerateMealPlan builds a 7-day plan for the given season. Each day gets
// one recipe per slot, preferring seasonal recipes not already used that day.
// When that pool is empty the repeat restriction is dropped first, then the
// season restriction, so a slot is always filled if any recipe serves it.
// Randomness comes from rng so callers can seed for reproducible plans.
func GenerateMealPlan(season catalog.Season, rng *rand.Rand) (MealPlan, error) {
	var plan MealPlan
	plan.Season = season
	for i := range plan.Days {
		day := &plan.Days[i]
		day.Label = catalog.DayLabels[i]
		used := map[string]bool{}
		for _, slot := range catalog.MealTypes {
			r, err := pickRecipe(slot, season, used, rng)
			if err != nil {
				return MealPlan{}, fmt.Errorf("day %s slot %s: %w", day.Label, slot, err)
			}
			used[r.ID] = true
			switch slot {
			case catalog.MealBreakfast:
				day.Breakfast = r
			case catalog.MealLunch:
				day.Lunch = r
			case catalog.MealSnack:
				day.Snack = r
			case catalog.MealDinner:
				day.Dinner = r
			}
			day.Total = day.Total.Add(r.Macros)
		}
	}
	return plan, nil
}

func pickRecipe(slot catalog.MealType, season catalog.Season, used map[string]bool, rng *rand.Rand) (catalog.Recipe, error) {
	pool := candidates(slot, season, used)
	if len(pool) == 0 {
		pool = candidates(slot, season, nil)
	}
	if len(pool) == 0 {
		pool = candidates(slot, "", nil)
	}
	if len(pool) == 0 {
		return catalog.Recipe{}, ErrEmptyCandidatePool
	}
	return pool[rng.Intn(len(pool))], nil
}

// candidates filters the recipe table by slot, season and the used set.
// An empty season means any; a nil used set disables the repeat check.
func candidates(slot catalog.MealType, season catalog.Season, used map[string]bool) []catalog.Recipe {
	var out []catalog.Recipe
	for _, r := range catalog.Recipes {
		if !r.ServesMeal(slot) {
			continue
		}
		if season != "" && !r.InSeason(season) {
			continue
		}
		if used != nil && used[r.ID] {
			continue
		}
		out = append(out, r)
	}
	return out
}
