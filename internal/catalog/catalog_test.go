package catalog_test

import (
	"testing"
	"time"

	"github.com/J4sp3rd3v/fitcoach-cli/internal/catalog"
)

func TestValidate(t *testing.T) {
	t.Parallel()
	if err := catalog.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestSeasonForMonth(t *testing.T) {
	t.Parallel()
	cases := []struct {
		month time.Month
		want  catalog.Season
	}{
		{time.January, catalog.SeasonWinter},
		{time.February, catalog.SeasonWinter},
		{time.March, catalog.SeasonSpring},
		{time.May, catalog.SeasonSpring},
		{time.June, catalog.SeasonSummer},
		{time.August, catalog.SeasonSummer},
		{time.September, catalog.SeasonAutumn},
		{time.November, catalog.SeasonAutumn},
		{time.December, catalog.SeasonWinter},
	}
	for _, tc := range cases {
		if got := catalog.SeasonForMonth(tc.month); got != tc.want {
			t.Errorf("SeasonForMonth(%v) = %v, want %v", tc.month, got, tc.want)
		}
	}
}

func TestRecipeInSeason(t *testing.T) {
	t.Parallel()
	r, ok := catalog.RecipeByID("bi2")
	if !ok {
		t.Fatal("recipe bi2 not found")
	}
	if !r.InSeason(catalog.SeasonWinter) {
		t.Error("bi2 should be in season in Winter")
	}
	if r.InSeason(catalog.SeasonSummer) {
		t.Error("bi2 should not be in season in Summer")
	}

	all, ok := catalog.RecipeByID("bi1")
	if !ok {
		t.Fatal("recipe bi1 not found")
	}
	for _, s := range []catalog.Season{catalog.SeasonWinter, catalog.SeasonSpring, catalog.SeasonSummer, catalog.SeasonAutumn} {
		if !all.InSeason(s) {
			t.Errorf("bi1 tagged All should match season %v", s)
		}
	}
}

func TestEveryMealTypeServed(t *testing.T) {
	t.Parallel()
	for _, mt := range catalog.MealTypes {
		n := 0
		for _, r := range catalog.Recipes {
			if r.ServesMeal(mt) {
				n++
			}
		}
		if n == 0 {
			t.Errorf("no recipe serves meal type %q", mt)
		}
	}
}

func TestSeasonalFoods(t *testing.T) {
	t.Parallel()
	// January (month 0): Zucchine (summer-only) must be excluded, Broccoli
	// included.
	veg := catalog.SeasonalFoods(catalog.FoodVeg, 0)
	names := map[string]bool{}
	for _, f := range veg {
		names[f.Name] = true
	}
	if !names["Broccoli"] {
		t.Error("Broccoli should be in season in January")
	}
	if names["Zucchine"] {
		t.Error("Zucchine should not be in season in January")
	}
}

func TestPlanForCreatorFallback(t *testing.T) {
	t.Parallel()
	plan := catalog.PlanForCreator("nobody")
	if len(plan) != 7 {
		t.Fatalf("fallback plan has %d days, want 7", len(plan))
	}
	def := catalog.WeeklyPlans[catalog.DefaultCreator]
	if plan[0].WorkoutID != def[0].WorkoutID {
		t.Errorf("unknown creator should fall back to %s plan", catalog.DefaultCreator)
	}
}

func TestApprovedWorkouts(t *testing.T) {
	t.Parallel()
	ws := catalog.ApprovedWorkouts()
	if len(ws) == 0 {
		t.Fatal("no approved workouts")
	}
	for _, w := range ws {
		ok := false
		for _, c := range catalog.ApprovedCreators {
			if w.Creator == c {
				ok = true
				break
			}
		}
		if !ok {
			t.Errorf("workout %s has unapproved creator %q", w.ID, w.Creator)
		}
	}
}

func TestMacrosAdd(t *testing.T) {
	t.Parallel()
	a := catalog.Macros{Cal: 100, Protein: 10, Carb: 20, Fat: 5}
	b := catalog.Macros{Cal: 200, Protein: 15, Carb: 5, Fat: 10}
	got := a.Add(b)
	want := catalog.Macros{Cal: 300, Protein: 25, Carb: 25, Fat: 15}
	if got != want {
		t.Errorf("Add = %+v, want %+v", got, want)
	}
}
