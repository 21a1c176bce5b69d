package service_test

import (
	"math/rand"
	"testing"

	"github.com/J4sp3rd3v/fitcoach-cli/internal/catalog"
	"github.com/J4sp3rd3v/fitcoach-cli/internal/service"
)

func TestGenerateMealPlanShape(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(1))
	plan, err := service.GenerateMealPlan(catalog.SeasonWinter, rng)
	if err != nil {
		t.Fatalf("GenerateMealPlan: %v", err)
	}
	if plan.Season != catalog.SeasonWinter {
		t.Errorf("season = %v, want Winter", plan.Season)
	}
	wantLabels := []string{"Lunedì", "Martedì", "Mercoledì", "Giovedì", "Venerdì", "Sabato", "Domenica"}
	for i, day := range plan.Days {
		if day.Label != wantLabels[i] {
			t.Errorf("day %d label = %q, want %q", i, day.Label, wantLabels[i])
		}
		for _, slot := range catalog.MealTypes {
			if day.Meal(slot).ID == "" {
				t.Errorf("day %s slot %s left empty", day.Label, slot)
			}
		}
	}
}

func TestGenerateMealPlanMacroSums(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(7))
	plan, err := service.GenerateMealPlan(catalog.SeasonSummer, rng)
	if err != nil {
		t.Fatalf("GenerateMealPlan: %v", err)
	}
	for _, day := range plan.Days {
		want := day.Breakfast.Macros.
			Add(day.Lunch.Macros).
			Add(day.Snack.Macros).
			Add(day.Dinner.Macros)
		if day.Total != want {
			t.Errorf("day %s total = %+v, want %+v", day.Label, day.Total, want)
		}
	}
}

func TestGenerateMealPlanSlotTypes(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(42))
	plan, err := service.GenerateMealPlan(catalog.SeasonAutumn, rng)
	if err != nil {
		t.Fatalf("GenerateMealPlan: %v", err)
	}
	for _, day := range plan.Days {
		for _, slot := range catalog.MealTypes {
			if r := day.Meal(slot); !r.ServesMeal(slot) {
				t.Errorf("day %s: recipe %s does not serve slot %s", day.Label, r.ID, slot)
			}
		}
	}
}

func TestGenerateMealPlanNoRepeatWithinDay(t *testing.T) {
	t.Parallel()
	// Every season has enough distinct recipes per slot, so the preferred
	// pool should always yield four distinct recipes per day.
	for _, season := range []catalog.Season{catalog.SeasonWinter, catalog.SeasonSpring, catalog.SeasonSummer, catalog.SeasonAutumn} {
		for seed := int64(0); seed < 5; seed++ {
			rng := rand.New(rand.NewSource(seed))
			plan, err := service.GenerateMealPlan(season, rng)
			if err != nil {
				t.Fatalf("GenerateMealPlan(%v): %v", season, err)
			}
			for _, day := range plan.Days {
				ids := map[string]int{}
				for _, slot := range catalog.MealTypes {
					ids[day.Meal(slot).ID]++
				}
				for id, n := range ids {
					if n > 1 {
						t.Errorf("season %v day %s: recipe %s appears %d times", season, day.Label, id, n)
					}
				}
			}
		}
	}
}

func TestGenerateMealPlanDeterministicWithSeed(t *testing.T) {
	t.Parallel()
	a, err := service.GenerateMealPlan(catalog.SeasonSpring, rand.New(rand.NewSource(99)))
	if err != nil {
		t.Fatalf("GenerateMealPlan: %v", err)
	}
	b, err := service.GenerateMealPlan(catalog.SeasonSpring, rand.New(rand.NewSource(99)))
	if err != nil {
		t.Fatalf("GenerateMealPlan: %v", err)
	}
	for i := range a.Days {
		for _, slot := range catalog.MealTypes {
			if a.Days[i].Meal(slot).ID != b.Days[i].Meal(slot).ID {
				t.Fatalf("same seed produced different plans at day %d slot %s", i, slot)
			}
		}
	}
}
