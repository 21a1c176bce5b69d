package service

import (
	"sort"
	"strings"

	"github.com/J4sp3rd3v/fitcoach-cli/internal/catalog"
)

func dayRecipes(day MealDay) []catalog.Recipe {
	return []catalog.Recipe{day.Breakfast, day.Lunch, day.Snack, day.Dinner}
}

// ShoppingItem is one aggregated ingredient line. Name keeps the spelling of
// the first occurrence; quantities are only merged when the unit matches.
type ShoppingItem struct {
	Name     string
	Qty      float64
	Unit     string
	Category string
}

// BuildShoppingList aggregates all ingredients of a weekly plan into one
// list, summing quantities of the same ingredient and unit. The result is
// sorted by category, name and unit so repeated runs over the same plan
// produce identical output.
func BuildShoppingList(plan MealPlan) []ShoppingItem {
	acc := map[string]*ShoppingItem{}
	for _, day := range plan.Days {
		for _, rec := range dayRecipes(day) {
			for _, ing := range rec.Ingredients {
				key := strings.ToLower(ing.Name) + "_" + ing.Unit
				if it, ok := acc[key]; ok {
					it.Qty += ing.Qty
				} else {
					acc[key] = &ShoppingItem{
						Name:     ing.Name,
						Qty:      ing.Qty,
						Unit:     ing.Unit,
						Category: ing.Category,
					}
				}
			}
		}
	}
	out := make([]ShoppingItem, 0, len(acc))
	for _, it := range acc {
		out = append(out, *it)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].Unit < out[j].Unit
	})
	return out
}
