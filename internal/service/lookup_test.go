package service_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/J4sp3rd3v/fitcoach-cli/internal/catalog"
	"github.com/J4sp3rd3v/fitcoach-cli/internal/service"
)

func TestIngredientLookupURL(t *testing.T) {
	t.Parallel()
	u, ok := service.IngredientLookupURL(catalog.Ingredient{
		Name:        "Hummus",
		SearchQuery: "hummus di ceci",
	})
	if !ok {
		t.Fatal("expected a lookup url")
	}
	if u != "https://cookidoo.it/search/it-IT?q=hummus+di+ceci" {
		t.Errorf("url = %q", u)
	}

	if _, ok := service.IngredientLookupURL(catalog.Ingredient{Name: "Sale"}); ok {
		t.Error("ingredient without query should have no url")
	}
}

func TestRecipeLookups(t *testing.T) {
	t.Parallel()
	urls, err := service.RecipeLookups("n2")
	if err != nil {
		t.Fatalf("RecipeLookups: %v", err)
	}
	if len(urls) == 0 {
		t.Fatal("n2 should have linked ingredients")
	}
	for name, u := range urls {
		if !strings.HasPrefix(u, "https://cookidoo.it/search/it-IT?q=") {
			t.Errorf("%s: url = %q", name, u)
		}
	}

	if _, err := service.RecipeLookups("missing"); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
