package grocer

import (
	"math"
	"sort"
)

// VendorProduct is a concrete purchasable product at one vendor.
type VendorProduct struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	PricePerUnit     float64 `json:"pricePerUnit"`
	Currency         string  `json:"currency"`
	PackageSize      string  `json:"packageSize"`
	PricePerBaseUnit float64 `json:"pricePerBaseUnit,omitempty"`
	BaseUnitLabel    string  `json:"baseUnitLabel,omitempty"`
	VendorID         string  `json:"vendorId"`
}

// Substitution is a manually curated alternate ingredient suggestion for an
// ingredient no pool could match.
type Substitution struct {
	Substitute string `json:"substitute"`
}

// IngredientMatch pairs an aggregated ingredient with the product selected
// for it. A nil Product is a valid outcome, not a failure.
type IngredientMatch struct {
	IngredientRef string         `json:"ingredientRef"`
	Product       *VendorProduct `json:"product"`
	Substitution  *Substitution  `json:"substitution,omitempty"`
}

// CartItem is a matched product with the quantity to order.
type CartItem struct {
	Product       VendorProduct `json:"product"`
	Quantity      float64       `json:"quantity"`
	IngredientRef string        `json:"ingredientRef"`
}

// OrderByTier orders candidate products for a tier: budget prefers the
// cheapest first, premium the most expensive first, and normal keeps the
// catalog's curated order. The input slice is not modified.
func OrderByTier(candidates []VendorProduct, tier BudgetTier) []VendorProduct {
	ordered := make([]VendorProduct, len(candidates))
	copy(ordered, candidates)

	switch tier {
	case TierBudget:
		sort.SliceStable(ordered, func(i, j int) bool {
			return ordered[i].PricePerUnit < ordered[j].PricePerUnit
		})
	case TierPremium:
		sort.SliceStable(ordered, func(i, j int) bool {
			return ordered[i].PricePerUnit > ordered[j].PricePerUnit
		})
	}

	return ordered
}

// RoundPrice rounds a monetary amount to two decimal places.
func RoundPrice(amount float64) float64 {
	return math.Round(amount*100) / 100
}
