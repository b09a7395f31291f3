// Package outbound defines the interfaces for outbound ports (secondary/driven adapters)
// These are the interfaces the shopping and fulfillment engine uses to reach
// external collaborators: recipe content, the meal plan store, vendor
// catalogs and persistence.
package outbound

import (
	"context"
	"time"

	"github.com/forkful/v2/internal/domain/grocer"
	"github.com/forkful/v2/internal/domain/shopping"
	"github.com/google/uuid"
)

// RecipeSource provides ingredient lines for a recipe. A recipe with no
// entry returns (nil, false, nil); errors are reserved for transport
// failures at the content store boundary.
type RecipeSource interface {
	GetIngredients(ctx context.Context, recipeID string) ([]shopping.IngredientLine, bool, error)
}

// MealPlanStore exposes a read-only snapshot of the user's meal plan.
type MealPlanStore interface {
	Snapshot(ctx context.Context) (shopping.PlanSnapshot, error)
}

// Canonicalizer maps a free-text ingredient name to a canonical product
// lookup key. It is an interface boundary so the string-heuristic matcher
// can be swapped for a real catalog search without touching callers.
type Canonicalizer interface {
	Canonicalize(name string) (string, bool)
}

// VendorRegistry is the static catalog of grocery vendors.
type VendorRegistry interface {
	List() []grocer.Vendor
	Get(id string) (grocer.Vendor, bool)
}

// ProductCatalog resolves canonical keys and category buckets to candidate
// products. An empty pool is (nil, nil); errors mean the lookup itself
// failed (network, malformed response) and are recoverable at the caller.
type ProductCatalog interface {
	// Candidates returns the product pool for a canonical key, falling back
	// to the category pool and then the generic pantry pool.
	Candidates(ctx context.Context, canonicalKey, category string) ([]grocer.VendorProduct, error)

	// SubstitutionHint returns a curated alternate ingredient name for an
	// ingredient no pool covers.
	SubstitutionHint(name string) (string, bool)
}

// ShoppingListRepository persists shopping lists.
type ShoppingListRepository interface {
	Create(ctx context.Context, list *shopping.List) error
	AddItem(ctx context.Context, listID uuid.UUID, item shopping.ListItem) error
	FindByID(ctx context.Context, listID uuid.UUID) (*shopping.List, error)
}

// OrderRepository persists best-effort order records after checkout.
type OrderRepository interface {
	Create(ctx context.Context, order *grocer.Order) error
}

// CacheRepository defines the interface for caching operations.
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
