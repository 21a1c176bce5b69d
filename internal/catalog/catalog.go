// Package catalog holds the bundled reference data: foods, recipes,
// supplements, workouts and the per-creator weekly workout plans. All tables
// are immutable after load; Validate guards the invariants the planner
// depends on.
package catalog

import (
	"errors"
	"fmt"
	"time"
)

type Season string

const (
	SeasonWinter Season = "Winter"
	SeasonSpring Season = "Spring"
	SeasonSummer Season = "Summer"
	SeasonAutumn Season = "Autumn"
	SeasonAll    Season = "All"
)

type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealSnack     MealType = "snack"
	MealDinner    MealType = "dinner"
)

// MealTypes lists the meal slots in the order they are filled each day.
var MealTypes = [4]MealType{MealBreakfast, MealLunch, MealSnack, MealDinner}

type Macros struct {
	Cal     int
	Protein int
	Carb    int
	Fat     int
}

func (m Macros) Add(o Macros) Macros {
	return Macros{
		Cal:     m.Cal + o.Cal,
		Protein: m.Protein + o.Protein,
		Carb:    m.Carb + o.Carb,
		Fat:     m.Fat + o.Fat,
	}
}

type FoodCategory string

const (
	FoodProtein FoodCategory = "protein"
	FoodCarb    FoodCategory = "carb"
	FoodFat     FoodCategory = "fat"
	FoodVeg     FoodCategory = "veg"
	FoodFruit   FoodCategory = "fruit"
)

// FoodItem is one raw ingredient, with the months (0-11) it is in season and
// the supermarket section used to order shopping lists.
type FoodItem struct {
	ID         string
	Name       string
	Category   FoodCategory
	Months     []int
	Benefits   []string
	Unit       string
	DefaultQty float64
	Section    string
}

func (f FoodItem) InSeasonMonth(month int) bool {
	for _, m := range f.Months {
		if m == month {
			return true
		}
	}
	return false
}

// Ingredient is a recipe line item. SearchQuery, when set, links the
// ingredient to an external recipe-lookup service.
type Ingredient struct {
	Name        string
	Qty         float64
	Unit        string
	Category    string
	SearchQuery string
}

type Recipe struct {
	ID          string
	Title       string
	Description string
	Category    string
	Device      string
	Brand       string
	PrepMinutes int
	MealTypes   []MealType
	Ingredients []Ingredient
	Steps       []string
	Macros      Macros
	Tags        []string
	Seasons     []Season
}

func (r Recipe) ServesMeal(t MealType) bool {
	for _, mt := range r.MealTypes {
		if mt == t {
			return true
		}
	}
	return false
}

// InSeason reports whether the recipe applies to the given season, treating
// the "All" sentinel as a match for every season.
func (r Recipe) InSeason(s Season) bool {
	for _, rs := range r.Seasons {
		if rs == s || rs == SeasonAll {
			return true
		}
	}
	return false
}

type Supplement struct {
	ID          string
	Name        string
	Description string
	Dosage      string
	Timing      string
	Goal        string
	Warning     string
}

type Exercise struct {
	ID      string
	Name    string
	Sets    int
	Reps    string
	RestSec int
	Notes   string
	VideoID string
}

type WorkoutSection struct {
	Title     string
	Exercises []Exercise
}

type Gamification struct {
	XP    int
	Badge string
}

type Workout struct {
	ID          string
	Title       string
	Description string
	Creator     string
	DurationMin int
	Level       string
	Category    string
	Calories    int
	Equipment   []string
	Sections    []WorkoutSection
	VideoID     string
	Gamify      *Gamification
}

// PlanDay is one entry of a creator's fixed 7-day workout plan, Monday first.
type PlanDay struct {
	Day       string
	WorkoutID string
	Focus     string
}

// DayLabels are the fixed labels of a generated week, Monday first.
var DayLabels = [7]string{"Lunedì", "Martedì", "Mercoledì", "Giovedì", "Venerdì", "Sabato", "Domenica"}

// ErrCatalogIncomplete marks a catalog that cannot satisfy plan generation.
var ErrCatalogIncomplete = errors.New("catalog incomplete")

// SeasonForMonth maps a calendar month to its season tag.
func SeasonForMonth(m time.Month) Season {
	switch {
	case m >= time.March && m <= time.May:
		return SeasonSpring
	case m >= time.June && m <= time.August:
		return SeasonSummer
	case m >= time.September && m <= time.November:
		return SeasonAutumn
	default:
		return SeasonWinter
	}
}

func CurrentSeason(now time.Time) Season {
	return SeasonForMonth(now.Month())
}

func RecipeByID(id string) (Recipe, bool) {
	for _, r := range Recipes {
		if r.ID == id {
			return r, true
		}
	}
	return Recipe{}, false
}

func WorkoutByID(id string) (Workout, bool) {
	for _, w := range Workouts {
		if w.ID == id {
			return w, true
		}
	}
	return Workout{}, false
}

func FoodByID(id string) (FoodItem, bool) {
	for _, f := range Foods {
		if f.ID == id {
			return f, true
		}
	}
	return FoodItem{}, false
}

// SeasonalFoods returns the foods of a category active in the given month
// (0-11, January = 0).
func SeasonalFoods(cat FoodCategory, month int) []FoodItem {
	out := make([]FoodItem, 0)
	for _, f := range Foods {
		if f.Category == cat && f.InSeasonMonth(month) {
			out = append(out, f)
		}
	}
	return out
}

// ApprovedWorkouts filters the workout table down to approved creators.
func ApprovedWorkouts() []Workout {
	out := make([]Workout, 0, len(Workouts))
	for _, w := range Workouts {
		for _, c := range ApprovedCreators {
			if w.Creator == c {
				out = append(out, w)
				break
			}
		}
	}
	return out
}

// PlanForCreator returns the weekly workout plan for a creator, falling back
// to the default plan when the creator is unknown or empty.
func PlanForCreator(creator string) []PlanDay {
	if plan, ok := WeeklyPlans[creator]; ok {
		return plan
	}
	return WeeklyPlans[DefaultCreator]
}

// Validate checks the invariants plan generation and plan playback rely on:
// at least one recipe per meal slot, unique identifiers, resolvable weekly
// plans and well-formed season tags. It runs at startup so generation itself
// stays total.
func Validate() error {
	seen := map[string]bool{}
	for _, r := range Recipes {
		if r.ID == "" {
			return fmt.Errorf("%w: recipe %q has no id", ErrCatalogIncomplete, r.Title)
		}
		if seen[r.ID] {
			return fmt.Errorf("%w: duplicate recipe id %q", ErrCatalogIncomplete, r.ID)
		}
		seen[r.ID] = true
		if len(r.MealTypes) == 0 {
			return fmt.Errorf("%w: recipe %q serves no meal type", ErrCatalogIncomplete, r.ID)
		}
		if len(r.Seasons) == 0 {
			return fmt.Errorf("%w: recipe %q has no seasons", ErrCatalogIncomplete, r.ID)
		}
		for _, s := range r.Seasons {
			switch s {
			case SeasonWinter, SeasonSpring, SeasonSummer, SeasonAutumn, SeasonAll:
			default:
				return fmt.Errorf("%w: recipe %q has unknown season %q", ErrCatalogIncomplete, r.ID, s)
			}
		}
	}
	for _, mt := range MealTypes {
		found := false
		for _, r := range Recipes {
			if r.ServesMeal(mt) {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("%w: no recipe serves meal type %q", ErrCatalogIncomplete, mt)
		}
	}

	seen = map[string]bool{}
	for _, w := range Workouts {
		if w.ID == "" || seen[w.ID] {
			return fmt.Errorf("%w: bad workout id %q", ErrCatalogIncomplete, w.ID)
		}
		seen[w.ID] = true
	}
	for creator, plan := range WeeklyPlans {
		if len(plan) != 7 {
			return fmt.Errorf("%w: weekly plan for %q has %d days", ErrCatalogIncomplete, creator, len(plan))
		}
		for _, day := range plan {
			if _, ok := WorkoutByID(day.WorkoutID); !ok {
				return fmt.Errorf("%w: weekly plan for %q references unknown workout %q", ErrCatalogIncomplete, creator, day.WorkoutID)
			}
		}
	}

	seen = map[string]bool{}
	for _, f := range Foods {
		if f.ID == "" || seen[f.ID] {
			return fmt.Errorf("%w: bad food id %q", ErrCatalogIncomplete, f.ID)
		}
		seen[f.ID] = true
		for _, m := range f.Months {
			if m < 0 || m > 11 {
				return fmt.Errorf("%w: food %q has month %d out of range", ErrCatalogIncomplete, f.ID, m)
			}
		}
	}
	return nil
}
