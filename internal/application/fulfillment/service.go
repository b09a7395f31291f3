// Package fulfillment provides the application layer for vendor fulfillment:
// matching aggregated ingredients to vendor products and dispatching carts
// into vendor-specific checkout artifacts.
package fulfillment

import (
	"context"

	"github.com/forkful/v2/internal/domain/grocer"
	"github.com/forkful/v2/internal/domain/shopping"
	"github.com/forkful/v2/internal/ports/inbound"
	"github.com/forkful/v2/internal/ports/outbound"
	"github.com/forkful/v2/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// defaultMatchConcurrency caps the fan-out of per-item catalog lookups when
// no limit is configured.
const defaultMatchConcurrency = 8

// Settings tunes the fulfillment service.
type Settings struct {
	// MatchConcurrency caps concurrent per-item catalog lookups.
	MatchConcurrency int
	// CheckoutDefaults fill in checkout preferences the request omits.
	CheckoutDefaults grocer.CheckoutConfig
}

// FulfillmentService implements the fulfillment use cases.
type FulfillmentService struct {
	registry  outbound.VendorRegistry
	catalog   outbound.ProductCatalog
	canonical outbound.Canonicalizer
	orders    outbound.OrderRepository
	settings  Settings
	logger    *zap.Logger
}

// NewFulfillmentService creates a new fulfillment service.
func NewFulfillmentService(
	registry outbound.VendorRegistry,
	catalog outbound.ProductCatalog,
	canonical outbound.Canonicalizer,
	orders outbound.OrderRepository,
	settings Settings,
	logger *zap.Logger,
) inbound.FulfillmentService {
	if settings.MatchConcurrency < 1 {
		settings.MatchConcurrency = defaultMatchConcurrency
	}
	return &FulfillmentService{
		registry:  registry,
		catalog:   catalog,
		canonical: canonical,
		orders:    orders,
		settings:  settings,
		logger:    logger.Named("fulfillment-service"),
	}
}

// Match resolves one aggregated item against a vendor's pools. A miss is a
// valid outcome: the match comes back with a nil product and, when the
// catalog curates one, a substitution hint. Lookup failures degrade the same
// way so a flaky catalog never fails a caller.
func (s *FulfillmentService) Match(ctx context.Context, item shopping.AggregatedItem, vendorID string, tier grocer.BudgetTier) grocer.IngredientMatch {
	match := grocer.IngredientMatch{IngredientRef: item.Name}

	key, _ := s.canonical.Canonicalize(item.Name)
	candidates, err := s.catalog.Candidates(ctx, key, item.Category)
	if err != nil {
		s.logger.Warn("Product lookup failed, item left unmatched",
			zap.String("ingredient", item.Name),
			zap.String("vendor_id", vendorID),
			zap.Error(err),
		)
		candidates = nil
	}

	if len(candidates) == 0 {
		if substitute, ok := s.catalog.SubstitutionHint(item.Name); ok {
			match.Substitution = &grocer.Substitution{Substitute: substitute}
		}
		return match
	}

	ordered := grocer.OrderByTier(candidates, tier)
	product := ordered[0]
	product.VendorID = vendorID
	match.Product = &product
	return match
}

// MatchAll resolves every item concurrently against one vendor. Items are
// independent, so lookups fan out and join before the total is computed; a
// canceled context (the caller superseded this request) aborts the batch so
// stale results are discarded rather than merged.
func (s *FulfillmentService) MatchAll(ctx context.Context, cmd inbound.MatchCommand) (*inbound.MatchResult, error) {
	matches := make([]grocer.IngredientMatch, len(cmd.Items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.settings.MatchConcurrency)
	for i, item := range cmd.Items {
		i, item := i, item
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			matches[i] = s.Match(gctx, item, cmd.VendorID, cmd.Tier)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.NewRequestSupersededError(err)
	}

	var total float64
	currency := ""
	matched := 0
	for _, m := range matches {
		if m.Product == nil {
			continue
		}
		total += m.Product.PricePerUnit
		matched++
		if currency == "" {
			currency = m.Product.Currency
		}
	}
	if currency == "" {
		currency = "USD"
	}

	s.logger.Info("Matched shopping list against vendor",
		zap.String("vendor_id", cmd.VendorID),
		zap.String("tier", string(cmd.Tier)),
		zap.Int("items", len(cmd.Items)),
		zap.Int("matched", matched),
	)

	return &inbound.MatchResult{
		Matches:        matches,
		EstimatedTotal: grocer.RoundPrice(total),
		Currency:       currency,
	}, nil
}

// Checkout builds the fulfillment artifact for a cart. Unknown vendor ids
// fall back to a search URL; the order record write afterwards is
// best-effort and never fails the artifact already built.
func (s *FulfillmentService) Checkout(ctx context.Context, cmd inbound.CheckoutCommand) (*grocer.CartResult, error) {
	if len(cmd.Items) == 0 {
		return nil, errors.NewValidationError(grocer.ErrEmptyCart.Error())
	}

	if cmd.Config.PreferredStore == "" {
		cmd.Config.PreferredStore = s.settings.CheckoutDefaults.PreferredStore
	}
	if cmd.Config.PreferredCity == "" {
		cmd.Config.PreferredCity = s.settings.CheckoutDefaults.PreferredCity
	}

	var vendorRef *grocer.Vendor
	vendor, known := s.registry.Get(cmd.VendorID)
	if known {
		vendorRef = &vendor
	} else {
		s.logger.Warn("Unknown vendor id, using search fallback",
			zap.String("vendor_id", cmd.VendorID),
		)
	}

	result := grocer.BuildCheckout(vendorRef, cmd.Items, cmd.Config)

	order := grocer.NewOrder(cmd.VendorID, known, cmd.Tier, cmd.Items, result)
	if err := s.orders.Create(ctx, order); err != nil {
		s.logger.Warn("Failed to persist order record",
			zap.String("order_id", order.ID.String()),
			zap.Error(err),
		)
	}

	s.logger.Info("Checkout dispatched",
		zap.String("vendor_id", cmd.VendorID),
		zap.String("artifact", string(order.Artifact)),
		zap.Float64("estimated_total", result.EstimatedTotal),
	)

	return &result, nil
}

// Vendors returns the registry ranked for a tier.
func (s *FulfillmentService) Vendors(tier grocer.BudgetTier) []grocer.Vendor {
	return grocer.RankByTier(s.registry.List(), tier)
}
