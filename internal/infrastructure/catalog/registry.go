// Package catalog provides the static vendor registry and the seeded
// product pools the matcher draws candidates from. Registry content ships
// with the binary and is immutable at runtime; the pools stand in for live
// vendor product APIs behind the outbound.ProductCatalog port.
package catalog

import (
	"github.com/forkful/v2/internal/domain/grocer"
	"github.com/forkful/v2/internal/ports/outbound"
)

// vendorSeed is the static vendor catalog. Tier ranks are ascending
// preference per budget tier; a vendor without a rank for a tier sorts
// after every ranked one.
var vendorSeed = []grocer.Vendor{
	{
		ID:            "greenbasket",
		Name:          "GreenBasket",
		Integration:   grocer.IntegrationAPI,
		Delivery:      grocer.DeliveryCourier,
		StorefrontURL: "https://www.greenbasket.example/checkout",
		Currency:      "USD",
		TierRank: map[grocer.BudgetTier]int{
			grocer.TierBudget:  2,
			grocer.TierNormal:  1,
			grocer.TierPremium: 2,
		},
	},
	{
		ID:               "cartwheel",
		Name:             "Cartwheel Market",
		Integration:      grocer.IntegrationDeeplink,
		Delivery:         grocer.DeliveryPickup,
		StorefrontURL:    "https://shop.cartwheel.example/storefront",
		ProductHintParam: "search",
		Currency:         "USD",
		TierRank: map[grocer.BudgetTier]int{
			grocer.TierBudget:  1,
			grocer.TierNormal:  2,
			grocer.TierPremium: 3,
		},
	},
	{
		ID:            "maisonmarche",
		Name:          "Maison Marché",
		Integration:   grocer.IntegrationDeeplink,
		Delivery:      grocer.DeliveryCourier,
		StorefrontURL: "https://www.maisonmarche.example/",
		Currency:      "USD",
		// No budget rank: the vendor only serves the upper tiers.
		TierRank: map[grocer.BudgetTier]int{
			grocer.TierNormal:  3,
			grocer.TierPremium: 1,
		},
	},
	{
		ID:          "errandly",
		Name:        "Errandly Personal Shoppers",
		Integration: grocer.IntegrationManual,
		Delivery:    grocer.DeliveryPersonalShopper,
		Currency:    "USD",
		TierRank: map[grocer.BudgetTier]int{
			grocer.TierBudget:  3,
			grocer.TierNormal:  4,
			grocer.TierPremium: 4,
		},
	},
}

// Registry is the static, read-only vendor registry. It is safe to share
// across concurrent requests.
type Registry struct {
	vendors []grocer.Vendor
	byID    map[string]grocer.Vendor
}

// NewRegistry creates the registry from the seed data.
func NewRegistry() outbound.VendorRegistry {
	byID := make(map[string]grocer.Vendor, len(vendorSeed))
	for _, v := range vendorSeed {
		byID[v.ID] = v
	}
	return &Registry{vendors: vendorSeed, byID: byID}
}

// List returns all vendors in seed order.
func (r *Registry) List() []grocer.Vendor {
	out := make([]grocer.Vendor, len(r.vendors))
	copy(out, r.vendors)
	return out
}

// Get returns a vendor by id.
func (r *Registry) Get(id string) (grocer.Vendor, bool) {
	v, ok := r.byID[id]
	return v, ok
}
