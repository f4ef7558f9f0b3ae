// Package services contains stateless domain services for the fridge bounded
// context. They operate purely on domain types and have no dependencies
// beyond stdlib and the domain layer.
package services

import (
	"slices"
	"strings"

	"github.com/ghuser/fridgepal/services/fridge/domain/models"
)

// pluralToSingular maps the plural item names the recipe catalog cares about
// to their singular form. Anything else is only lowercased.
var pluralToSingular = map[string]string{
	"eggs":      "egg",
	"tomatoes":  "tomato",
	"bananas":   "banana",
	"potatoes":  "potato",
	"onions":    "onion",
	"cucumbers": "cucumber",
	"carrots":   "carrot",
	"apples":    "apple",
}

var recipeCatalog = []models.Recipe{
	{
		Name:         "Omelette",
		Ingredients:  []string{"egg", "milk"},
		Instructions: "Beat eggs with milk and cook in a pan.",
	},
	{
		Name:         "Fruit Smoothie",
		Ingredients:  []string{"banana", "milk"},
		Instructions: "Blend banana with chilled milk.",
	},
	{
		Name:         "Salad",
		Ingredients:  []string{"lettuce", "tomato", "cucumber"},
		Instructions: "Chop and toss everything with salt.",
	},
}

// NormalizeIngredient lowercases name and singularizes it when it is one of
// the known plurals. "Eggs" becomes "egg"; "Grapes" becomes "grapes".
func NormalizeIngredient(name string) string {
	lower := strings.ToLower(name)
	if singular, ok := pluralToSingular[lower]; ok {
		return singular
	}
	return lower
}

// NormalizeIngredients normalizes every item name, keeping order and duplicates.
func NormalizeIngredients(items []*models.Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, NormalizeIngredient(it.Name))
	}
	return out
}

// RecipeCatalog returns a copy of the built-in recipes.
func RecipeCatalog() []models.Recipe {
	out := make([]models.Recipe, len(recipeCatalog))
	for i, r := range recipeCatalog {
		r.Ingredients = slices.Clone(r.Ingredients)
		out[i] = r
	}
	return out
}

// MatchRecipes returns the catalog recipes whose every ingredient appears in
// available. Matching is exact on normalized names.
func MatchRecipes(available []string) []models.Recipe {
	have := make(map[string]struct{}, len(available))
	for _, a := range available {
		have[a] = struct{}{}
	}

	matched := make([]models.Recipe, 0, len(recipeCatalog))
	for _, r := range RecipeCatalog() {
		if containsAll(have, r.Ingredients) {
			matched = append(matched, r)
		}
	}
	return matched
}

func containsAll(have map[string]struct{}, want []string) bool {
	for _, w := range want {
		if _, ok := have[w]; !ok {
			return false
		}
	}
	return true
}
