// Package mealplan provides the in-memory meal plan snapshot store and
// recipe ingredient source backing the demo deployment. A production
// deployment swaps these for adapters over the planning and recipe
// services.
package mealplan

import (
	"context"
	"sync"

	"github.com/forkful/v2/internal/domain/shopping"
	"github.com/forkful/v2/internal/ports/outbound"
)

// Store holds a plan snapshot and the ingredient lines of the recipes it
// references. It implements both the MealPlanStore and RecipeSource ports.
type Store struct {
	mu      sync.RWMutex
	plan    shopping.PlanSnapshot
	recipes map[string][]shopping.IngredientLine
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		plan:    shopping.PlanSnapshot{},
		recipes: make(map[string][]shopping.IngredientLine),
	}
}

// NewSeededStore creates a store populated with the demo meal plan.
func NewSeededStore() *Store {
	s := NewStore()
	s.Seed()
	return s
}

var _ outbound.MealPlanStore = (*Store)(nil)
var _ outbound.RecipeSource = (*Store)(nil)

// Snapshot returns a deep copy of the current plan so callers can never
// mutate the stored plan through the snapshot.
func (s *Store) Snapshot(ctx context.Context) (shopping.PlanSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make(shopping.PlanSnapshot, len(s.plan))
	for week, days := range s.plan {
		dayCopy := make(shopping.DayPlan, len(days))
		for day, meals := range days {
			mealCopy := make(shopping.MealSlots, len(meals))
			for meal, dishes := range meals {
				dishCopy := make([]shopping.PlannedDish, len(dishes))
				copy(dishCopy, dishes)
				mealCopy[meal] = dishCopy
			}
			dayCopy[day] = mealCopy
		}
		snapshot[week] = dayCopy
	}

	return snapshot, nil
}

// GetIngredients returns the ingredient lines of a recipe. Unknown recipe
// ids report found=false; the caller decides whether that degrades to a
// placeholder line or an error.
func (s *Store) GetIngredients(ctx context.Context, recipeID string) ([]shopping.IngredientLine, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lines, ok := s.recipes[recipeID]
	if !ok {
		return nil, false, nil
	}

	out := make([]shopping.IngredientLine, len(lines))
	copy(out, lines)
	return out, true, nil
}

// SetPlan replaces the stored plan snapshot.
func (s *Store) SetPlan(plan shopping.PlanSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.plan = plan
}

// SetRecipe stores the ingredient lines for one recipe.
func (s *Store) SetRecipe(recipeID string, lines []shopping.IngredientLine) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recipes[recipeID] = lines
}
