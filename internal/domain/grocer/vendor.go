// Package grocer contains the core domain logic for multi-vendor grocery
// fulfillment: vendor descriptors, budget tiers, product matching data and
// checkout artifact construction.
package grocer

import "sort"

// BudgetTier is the user-selected price preference. It controls both vendor
// ranking and the ordering of product candidates within a vendor.
type BudgetTier string

const (
	TierBudget  BudgetTier = "budget"
	TierNormal  BudgetTier = "normal"
	TierPremium BudgetTier = "premium"
)

// ParseBudgetTier validates a wire-format tier, defaulting to normal.
func ParseBudgetTier(s string) BudgetTier {
	switch BudgetTier(s) {
	case TierBudget, TierPremium:
		return BudgetTier(s)
	default:
		return TierNormal
	}
}

// IntegrationMode is the contract a vendor offers for handing over a cart.
type IntegrationMode string

const (
	// IntegrationAPI vendors accept carts through a live product API.
	IntegrationAPI IntegrationMode = "api"
	// IntegrationDeeplink vendors are reached through a storefront URL,
	// optionally carrying a product hint query parameter.
	IntegrationDeeplink IntegrationMode = "deeplink"
	// IntegrationManual vendors have no programmatic surface at all; the
	// cart becomes copy-paste text for a third-party ordering app.
	IntegrationManual IntegrationMode = "manual"
)

// DeliveryModel describes how ordered goods reach the customer.
type DeliveryModel string

const (
	DeliveryCourier         DeliveryModel = "courier"
	DeliveryPickup          DeliveryModel = "pickup"
	DeliveryPersonalShopper DeliveryModel = "personal_shopper"
)

// unrankedSentinel sorts vendors without a rank for a tier after every
// ranked vendor.
const unrankedSentinel = 1 << 20

// Vendor is a static, seeded grocery vendor descriptor. Registry content is
// immutable; there is deliberately no mutation API.
type Vendor struct {
	ID            string                 `json:"id"`
	Name          string                 `json:"name"`
	Integration   IntegrationMode        `json:"integrationMode"`
	Delivery      DeliveryModel          `json:"deliveryModel"`
	TierRank      map[BudgetTier]int     `json:"tierRank"`
	StorefrontURL string                 `json:"storefrontUrl,omitempty"`
	// ProductHintParam names the query parameter a deeplink vendor accepts
	// for a single product hint. Empty means the vendor has none.
	ProductHintParam string `json:"productHintParam,omitempty"`
	Currency         string `json:"currency"`
}

// RankFor returns the vendor's preference rank for a tier, or the sentinel
// when the vendor is unranked for it.
func (v Vendor) RankFor(tier BudgetTier) int {
	if rank, ok := v.TierRank[tier]; ok {
		return rank
	}
	return unrankedSentinel
}

// RankByTier sorts vendors ascending by their rank for the tier. Unranked
// vendors keep their relative order at the end.
func RankByTier(vendors []Vendor, tier BudgetTier) []Vendor {
	ranked := make([]Vendor, len(vendors))
	copy(ranked, vendors)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].RankFor(tier) < ranked[j].RankFor(tier)
	})
	return ranked
}
