// Package shopping provides the application layer for shopping list
// aggregation: it walks the meal plan snapshot, pulls ingredient lines from
// the recipe source and folds them into summed, deduplicated entries.
package shopping

import (
	"context"
	stderrors "errors"

	"github.com/forkful/v2/internal/domain/shopping"
	"github.com/forkful/v2/internal/ports/inbound"
	"github.com/forkful/v2/internal/ports/outbound"
	"github.com/forkful/v2/pkg/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ShoppingService implements the shopping list use cases.
type ShoppingService struct {
	plans   outbound.MealPlanStore
	recipes outbound.RecipeSource
	lists   outbound.ShoppingListRepository
	logger  *zap.Logger
}

// NewShoppingService creates a new shopping service.
func NewShoppingService(
	plans outbound.MealPlanStore,
	recipes outbound.RecipeSource,
	lists outbound.ShoppingListRepository,
	logger *zap.Logger,
) inbound.ShoppingService {
	return &ShoppingService{
		plans:   plans,
		recipes: recipes,
		lists:   lists,
		logger:  logger.Named("shopping-service"),
	}
}

// GenerateList aggregates every dish in scope into shopping list entries.
// The service holds no state between calls: each invocation recomputes from
// the current plan snapshot, so repeated calls on an unchanged plan yield
// identical results.
func (s *ShoppingService) GenerateList(ctx context.Context, cmd inbound.GenerateListCommand) ([]shopping.AggregatedItem, error) {
	plan, err := s.plans.Snapshot(ctx)
	if err != nil {
		return nil, errors.NewPlanStoreError(err)
	}

	acc := shopping.NewAccumulator()
	plan.Walk(cmd.Scope, func(week int, day, meal, slot string, dish shopping.PlannedDish) {
		lines, found, err := s.recipes.GetIngredients(ctx, dish.RecipeID)
		if err != nil || !found {
			// A dish without a resolvable recipe degrades to a single
			// placeholder line instead of failing the aggregation.
			if err != nil {
				s.logger.Warn("Recipe source lookup failed, using placeholder",
					zap.String("recipe_id", dish.RecipeID),
					zap.Error(err),
				)
			}
			acc.FoldPlaceholder(dish, slot)
			return
		}

		for _, line := range lines {
			acc.Fold(line, dish.ServingsMultiplier, dish.Title, slot)
		}
	})

	items := acc.Items()
	s.logger.Info("Generated shopping list",
		zap.String("scope", string(cmd.Scope.Kind)),
		zap.Int("items", len(items)),
	)

	return items, nil
}

// PersistList saves an aggregation under a name so the flow can advance to
// matching.
func (s *ShoppingService) PersistList(ctx context.Context, cmd inbound.PersistListCommand) (uuid.UUID, error) {
	list, err := shopping.NewList(cmd.Name)
	if err != nil {
		return uuid.Nil, errors.NewValidationError(err.Error())
	}

	for _, item := range cmd.Items {
		if err := list.AddItem(shopping.FromAggregated(item)); err != nil {
			return uuid.Nil, errors.NewValidationError(err.Error())
		}
	}

	if err := s.lists.Create(ctx, list); err != nil {
		return uuid.Nil, errors.NewDatabaseError("create shopping list", err)
	}

	s.logger.Info("Persisted shopping list",
		zap.String("list_id", list.ID.String()),
		zap.Int("items", len(list.Items)),
	)

	return list.ID, nil
}

// GetList loads a persisted list.
func (s *ShoppingService) GetList(ctx context.Context, listID uuid.UUID) (*shopping.List, error) {
	list, err := s.lists.FindByID(ctx, listID)
	if err != nil {
		if stderrors.Is(err, shopping.ErrListNotFound) {
			return nil, errors.NewListNotFoundError(listID.String())
		}
		return nil, errors.NewDatabaseError("find shopping list", err)
	}
	if list == nil {
		return nil, errors.NewListNotFoundError(listID.String())
	}
	return list, nil
}
