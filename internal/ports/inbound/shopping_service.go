// Package inbound defines the interfaces for inbound ports (primary/driving adapters)
// These are the use cases the HTTP layer drives. The shopping flow is
// caller-driven: Generate produces items, the caller edits and optionally
// persists a list, then matches and checks out; restarting at Generate
// discards in-flight match and checkout state.
package inbound

import (
	"context"

	"github.com/forkful/v2/internal/domain/grocer"
	"github.com/forkful/v2/internal/domain/shopping"
	"github.com/google/uuid"
)

// ShoppingService aggregates planned dishes into shopping lists.
type ShoppingService interface {
	// GenerateList collapses all dishes in scope into deduplicated,
	// quantity-summed entries. Empty scopes yield empty lists, not errors.
	GenerateList(ctx context.Context, cmd GenerateListCommand) ([]shopping.AggregatedItem, error)

	// PersistList saves an edited aggregation as a named list.
	PersistList(ctx context.Context, cmd PersistListCommand) (uuid.UUID, error)

	// GetList loads a persisted list.
	GetList(ctx context.Context, listID uuid.UUID) (*shopping.List, error)
}

// FulfillmentService resolves aggregated items to vendor products and
// builds checkout artifacts.
type FulfillmentService interface {
	// MatchAll resolves every item against one vendor's pools for a tier.
	// Per-item misses and lookup failures degrade to nil products; the
	// batch itself only fails on context cancellation.
	MatchAll(ctx context.Context, cmd MatchCommand) (*MatchResult, error)

	// Checkout builds the vendor-specific fulfillment artifact for a cart.
	Checkout(ctx context.Context, cmd CheckoutCommand) (*grocer.CartResult, error)

	// Vendors lists registry vendors ranked for the tier.
	Vendors(tier grocer.BudgetTier) []grocer.Vendor
}

// GenerateListCommand selects the plan slice to aggregate.
type GenerateListCommand struct {
	Scope shopping.Scope
}

// PersistListCommand saves aggregated items under a name.
type PersistListCommand struct {
	Name  string
	Items []shopping.AggregatedItem
}

// MatchCommand resolves items at one vendor for one tier.
type MatchCommand struct {
	Items    []shopping.AggregatedItem
	VendorID string
	Tier     grocer.BudgetTier
}

// MatchResult is the batch outcome: one match per input item, in input
// order, plus the estimated total over matched products.
type MatchResult struct {
	Matches        []grocer.IngredientMatch `json:"matches"`
	EstimatedTotal float64                  `json:"estimatedTotal"`
	Currency       string                   `json:"currency"`
}

// CheckoutCommand dispatches a cart to a vendor.
type CheckoutCommand struct {
	VendorID string
	Items    []grocer.CartItem
	Tier     grocer.BudgetTier
	Config   grocer.CheckoutConfig
}
