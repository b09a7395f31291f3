package mealplan

import "github.com/forkful/v2/internal/domain/shopping"

// Seed populates the store with a two-week demo plan. The dish titled
// "Grandma's Casserole" deliberately references a recipe id with no stored
// ingredients so a generated list shows a placeholder line.
func (s *Store) Seed() {
	s.SetRecipe("lasagna", []shopping.IngredientLine{
		{Name: "Lasagna noodles", Quantity: 250, Unit: "g", Category: "pantry"},
		{Name: "Mozzarella", Quantity: 200, Unit: "g", Category: "dairy"},
		{Name: "Ground beef", Quantity: 400, Unit: "g", Category: "meat"},
		{Name: "Tomato sauce", Quantity: 500, Unit: "ml", Category: "pantry"},
	})
	s.SetRecipe("caprese-salad", []shopping.IngredientLine{
		{Name: "Mozzarella", Quantity: 125, Unit: "g", Category: "dairy"},
		{Name: "Tomatoes", Quantity: 3, Unit: "piece", Category: "produce"},
		{Name: "Basil", Quantity: 1, Unit: "bunch", Category: "produce", Note: "fresh"},
		{Name: "Olive oil", Quantity: 2, Unit: "tbsp", Category: "pantry"},
	})
	s.SetRecipe("overnight-oats", []shopping.IngredientLine{
		{Name: "Rolled oats", Quantity: 80, Unit: "g", Category: "pantry"},
		{Name: "Milk", Quantity: 200, Unit: "ml", Category: "dairy"},
		{Name: "Blueberries", Quantity: 100, Unit: "g", Category: "produce"},
	})
	s.SetRecipe("coq-au-vin", []shopping.IngredientLine{
		{Name: "Chicken thighs", Quantity: 600, Unit: "g", Category: "meat"},
		{Name: "Red wine", Quantity: 350, Unit: "ml", Category: "pantry"},
		{Name: "Mushrooms", Quantity: 200, Unit: "g", Category: "produce"},
		{Name: "Carrots", Quantity: 2, Unit: "piece", Category: "produce"},
	})
	s.SetRecipe("garlic-bread", []shopping.IngredientLine{
		{Name: "Baguette", Quantity: 1, Unit: "piece", Category: "bakery"},
		{Name: "Butter", Quantity: 50, Unit: "g", Category: "dairy"},
		{Name: "Garlic", Quantity: 3, Unit: "clove", Category: "produce"},
	})

	s.SetPlan(shopping.PlanSnapshot{
		1: shopping.DayPlan{
			"monday": shopping.MealSlots{
				"breakfast": {
					{RecipeID: "overnight-oats", Title: "Overnight Oats", ServingsMultiplier: 1},
				},
				"dinner": {
					{RecipeID: "lasagna", Title: "Lasagna", ServingsMultiplier: 1},
					{RecipeID: "garlic-bread", Title: "Garlic Bread", ServingsMultiplier: 1},
				},
			},
			"tuesday": shopping.MealSlots{
				"lunch": {
					{RecipeID: "caprese-salad", Title: "Caprese Salad", ServingsMultiplier: 2},
				},
				"dinner": {
					{RecipeID: "coq-au-vin", Title: "Coq au Vin", ServingsMultiplier: 1},
				},
			},
			"saturday": shopping.MealSlots{
				"dinner": {
					{RecipeID: "lasagna", Title: "Lasagna", ServingsMultiplier: 2},
				},
			},
		},
		2: shopping.DayPlan{
			"monday": shopping.MealSlots{
				"dinner": {
					{RecipeID: "grandmas-casserole", Title: "Grandma's Casserole", ServingsMultiplier: 1},
				},
			},
			"wednesday": shopping.MealSlots{
				"breakfast": {
					{RecipeID: "overnight-oats", Title: "Overnight Oats", ServingsMultiplier: 2},
				},
			},
		},
	})
}
