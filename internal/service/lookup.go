package service

import (
	"fmt"
	"net/url"

	"github.com/J4sp3rd3v/fitcoach-cli/internal/catalog"
)

const recipeSearchBase = "https://cookidoo.it/search/it-IT"

// IngredientLookupURL builds the external recipe-search URL for an
// ingredient that carries a search query. Ingredients without one return
// ok = false.
func IngredientLookupURL(ing catalog.Ingredient) (string, bool) {
	if ing.SearchQuery == "" {
		return "", false
	}
	return recipeSearchBase + "?q=" + url.QueryEscape(ing.SearchQuery), true
}

// RecipeLookups returns the lookup URLs of a recipe's linked ingredients.
func RecipeLookups(recipeID string) (map[string]string, error) {
	r, ok := catalog.RecipeByID(recipeID)
	if !ok {
		return nil, fmt.Errorf("recipe %s: %w", recipeID, ErrNotFound)
	}
	out := map[string]string{}
	for _, ing := range r.Ingredients {
		if u, ok := IngredientLookupURL(ing); ok {
			out[ing.Name] = u
		}
	}
	return out, nil
}
