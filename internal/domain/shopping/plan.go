// Package shopping contains the core domain logic for shopping list
// aggregation: meal-plan snapshots, shopping scopes and the quantity-summed
// list entries derived from them.
package shopping

import "strings"

// IngredientLine is a single ingredient line as published by a recipe.
// Lines are owned by the recipe source and are read-only to this engine.
type IngredientLine struct {
	Name     string
	Quantity float64
	Unit     string
	Category string
	Note     string
}

// Validate coerces a line into a usable shape. Lines arrive from a
// loosely-typed content store, so the boundary normalizes rather than
// rejects: blank categories bucket into CategoryOther and negative
// quantities clamp to zero.
func (l *IngredientLine) Validate() error {
	if strings.TrimSpace(l.Name) == "" {
		return ErrEmptyIngredientName
	}
	if l.Quantity < 0 {
		l.Quantity = 0
	}
	if strings.TrimSpace(l.Category) == "" {
		l.Category = CategoryOther
	}
	return nil
}

// CategoryOther is the bucket for lines whose recipe carries no category,
// and for placeholder lines of dishes with no resolvable recipe.
const CategoryOther = "other"

// PlannedDish is a dish occupying a meal slot in the plan snapshot.
type PlannedDish struct {
	RecipeID           string
	Title              string
	ServingsMultiplier float64
}

// MealSlots maps a meal name ("breakfast", "lunch", "dinner", "snack") to
// the dishes planned for it.
type MealSlots map[string][]PlannedDish

// DayPlan maps a lowercase weekday name to its meal slots.
type DayPlan map[string]MealSlots

// PlanSnapshot is a read-only snapshot of the meal plan, keyed by week
// index. The snapshot is owned by the caller; aggregation never mutates it.
type PlanSnapshot map[int]DayPlan

// weekdayOrder fixes the visit order for deterministic slot labels.
var weekdayOrder = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// mealOrder fixes the visit order of meal slots within a day.
var mealOrder = []string{"breakfast", "lunch", "dinner", "snack"}
