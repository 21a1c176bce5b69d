package service_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/J4sp3rd3v/fitcoach-cli/internal/catalog"
	"github.com/J4sp3rd3v/fitcoach-cli/internal/service"
)

func TestSaveAndLoadMealPlan(t *testing.T) {
	t.Parallel()
	conn := newTestDB(t)
	plan, err := service.GenerateMealPlan(catalog.SeasonWinter, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("GenerateMealPlan: %v", err)
	}
	saved, err := service.SaveMealPlan(conn, plan)
	if err != nil {
		t.Fatalf("SaveMealPlan: %v", err)
	}
	if saved.ID == "" {
		t.Fatal("saved plan has no id")
	}

	loaded, err := service.LoadMealPlan(conn, saved.ID)
	if err != nil {
		t.Fatalf("LoadMealPlan: %v", err)
	}
	if loaded.Season != catalog.SeasonWinter {
		t.Errorf("season = %q, want winter", loaded.Season)
	}
	for i, day := range loaded.Days {
		want := saved.Days[i]
		if day.Breakfast.ID != want.Breakfast.ID || day.Lunch.ID != want.Lunch.ID ||
			day.Snack.ID != want.Snack.ID || day.Dinner.ID != want.Dinner.ID {
			t.Errorf("day %d recipes differ after reload", i)
		}
		if day.Total != want.Total {
			t.Errorf("day %d macros = %+v, want %+v", i, day.Total, want.Total)
		}
	}
}

func TestActiveMealPlan(t *testing.T) {
	t.Parallel()
	conn := newTestDB(t)
	if _, err := service.ActiveMealPlan(conn); !errors.Is(err, service.ErrNotFound) {
		t.Fatalf("before generation: err = %v, want ErrNotFound", err)
	}

	rng := rand.New(rand.NewSource(1))
	first, err := service.GenerateMealPlan(catalog.SeasonSummer, rng)
	if err != nil {
		t.Fatalf("GenerateMealPlan: %v", err)
	}
	if _, err := service.SaveMealPlan(conn, first); err != nil {
		t.Fatalf("SaveMealPlan: %v", err)
	}
	second, err := service.GenerateMealPlan(catalog.SeasonAutumn, rng)
	if err != nil {
		t.Fatalf("GenerateMealPlan: %v", err)
	}
	savedSecond, err := service.SaveMealPlan(conn, second)
	if err != nil {
		t.Fatalf("SaveMealPlan: %v", err)
	}

	active, err := service.ActiveMealPlan(conn)
	if err != nil {
		t.Fatalf("ActiveMealPlan: %v", err)
	}
	if active.ID != savedSecond.ID {
		t.Errorf("active plan = %s, want the most recent %s", active.ID, savedSecond.ID)
	}
	if active.Season != catalog.SeasonAutumn {
		t.Errorf("active season = %q", active.Season)
	}
}

func TestListMealPlans(t *testing.T) {
	t.Parallel()
	conn := newTestDB(t)
	rng := rand.New(rand.NewSource(3))
	for _, season := range []catalog.Season{catalog.SeasonWinter, catalog.SeasonSpring} {
		plan, err := service.GenerateMealPlan(season, rng)
		if err != nil {
			t.Fatalf("GenerateMealPlan: %v", err)
		}
		if _, err := service.SaveMealPlan(conn, plan); err != nil {
			t.Fatalf("SaveMealPlan: %v", err)
		}
	}
	infos, err := service.ListMealPlans(conn)
	if err != nil {
		t.Fatalf("ListMealPlans: %v", err)
	}
	if len(infos) != 2 {
		t.Fatalf("got %d plans, want 2", len(infos))
	}
	for _, info := range infos {
		if info.ID == "" || info.CreatedAt == "" {
			t.Errorf("incomplete info: %+v", info)
		}
	}
}

func TestLoadMealPlanUnknownID(t *testing.T) {
	t.Parallel()
	conn := newTestDB(t)
	if _, err := service.LoadMealPlan(conn, "no-such-plan"); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
