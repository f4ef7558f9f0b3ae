package models

// Recipe is a dish that can be suggested when all of its ingredients are in
// the fridge. Ingredient names are singular and lowercase.
type Recipe struct {
	Name         string
	Ingredients  []string
	Instructions string
}
