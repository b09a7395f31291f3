package catalog

import (
	"context"
	"strings"

	"github.com/forkful/v2/internal/domain/grocer"
	"github.com/forkful/v2/internal/ports/outbound"
)

// keyPools are product pools keyed by canonical key. Slice order is the
// curated "balanced" ordering served for the normal tier.
var keyPools = map[string][]grocer.VendorProduct{
	"mozzarella": {
		{ID: "moz-classic", Name: "Mozzarella Classic", PricePerUnit: 9.99, Currency: "USD", PackageSize: "400 g", PricePerBaseUnit: 2.50, BaseUnitLabel: "100 g"},
		{ID: "moz-value", Name: "Mozzarella Value Pack", PricePerUnit: 7.49, Currency: "USD", PackageSize: "400 g", PricePerBaseUnit: 1.87, BaseUnitLabel: "100 g"},
		{ID: "moz-bufala", Name: "Mozzarella di Bufala DOP", PricePerUnit: 24.99, Currency: "USD", PackageSize: "3 × 125 g", PricePerBaseUnit: 6.66, BaseUnitLabel: "100 g"},
	},
	"chicken": {
		{ID: "chk-breast", Name: "Chicken Breast Fillets", PricePerUnit: 11.49, Currency: "USD", PackageSize: "1 kg"},
		{ID: "chk-whole", Name: "Whole Chicken", PricePerUnit: 8.99, Currency: "USD", PackageSize: "1.4 kg"},
		{ID: "chk-organic", Name: "Organic Free-Range Chicken Breast", PricePerUnit: 18.99, Currency: "USD", PackageSize: "900 g"},
	},
	"flour": {
		{ID: "flr-allpurpose", Name: "All-Purpose Flour", PricePerUnit: 3.29, Currency: "USD", PackageSize: "1 kg"},
		{ID: "flr-tipo00", Name: "Tipo 00 Pizza Flour", PricePerUnit: 5.99, Currency: "USD", PackageSize: "1 kg"},
	},
	"tomato": {
		{ID: "tom-vine", Name: "Vine Tomatoes", PricePerUnit: 4.49, Currency: "USD", PackageSize: "500 g"},
		{ID: "tom-cherry", Name: "Cherry Tomatoes", PricePerUnit: 3.79, Currency: "USD", PackageSize: "250 g"},
		{ID: "tom-sanmarzano", Name: "San Marzano Tomatoes DOP", PricePerUnit: 7.99, Currency: "USD", PackageSize: "400 g can"},
	},
	"basil": {
		{ID: "bsl-fresh", Name: "Fresh Basil Bunch", PricePerUnit: 2.49, Currency: "USD", PackageSize: "30 g"},
		{ID: "bsl-potted", Name: "Potted Basil Plant", PricePerUnit: 4.99, Currency: "USD", PackageSize: "1 plant"},
	},
	"olive oil": {
		{ID: "oil-evoo", Name: "Extra Virgin Olive Oil", PricePerUnit: 12.99, Currency: "USD", PackageSize: "750 ml"},
		{ID: "oil-light", Name: "Light Olive Oil", PricePerUnit: 8.49, Currency: "USD", PackageSize: "1 l"},
		{ID: "oil-estate", Name: "Single-Estate Cold Press Olive Oil", PricePerUnit: 29.99, Currency: "USD", PackageSize: "500 ml"},
	},
	"egg": {
		{ID: "egg-dozen", Name: "Free-Range Eggs", PricePerUnit: 4.99, Currency: "USD", PackageSize: "12 pieces"},
		{ID: "egg-organic", Name: "Organic Eggs", PricePerUnit: 7.49, Currency: "USD", PackageSize: "10 pieces"},
	},
	"milk": {
		{ID: "mlk-whole", Name: "Whole Milk", PricePerUnit: 2.19, Currency: "USD", PackageSize: "1 l"},
		{ID: "mlk-oat", Name: "Barista Oat Drink", PricePerUnit: 3.99, Currency: "USD", PackageSize: "1 l"},
	},
	"pasta": {
		{ID: "pst-penne", Name: "Penne Rigate", PricePerUnit: 1.99, Currency: "USD", PackageSize: "500 g"},
		{ID: "pst-bronze", Name: "Bronze-Cut Artisan Pasta", PricePerUnit: 5.49, Currency: "USD", PackageSize: "500 g"},
	},
	"garlic": {
		{ID: "grl-bulb", Name: "Garlic Bulbs", PricePerUnit: 1.49, Currency: "USD", PackageSize: "3 pieces"},
	},
	"onion": {
		{ID: "onn-yellow", Name: "Yellow Onions", PricePerUnit: 2.29, Currency: "USD", PackageSize: "1 kg"},
		{ID: "onn-red", Name: "Red Onions", PricePerUnit: 2.79, Currency: "USD", PackageSize: "750 g"},
	},
	// Known ingredient, no sellable products: none of the seeded vendors
	// carries alcohol.
	"wine": {},
}

// categoryPools back up ingredients whose canonical key is unknown but
// whose recipe category is.
var categoryPools = map[string][]grocer.VendorProduct{
	"dairy": {
		{ID: "cat-dairy-butter", Name: "Butter", PricePerUnit: 3.99, Currency: "USD", PackageSize: "250 g"},
		{ID: "cat-dairy-cream", Name: "Heavy Cream", PricePerUnit: 2.99, Currency: "USD", PackageSize: "250 ml"},
	},
	"produce": {
		{ID: "cat-prod-mixed", Name: "Seasonal Vegetable Box", PricePerUnit: 14.99, Currency: "USD", PackageSize: "3 kg"},
		{ID: "cat-prod-herbs", Name: "Mixed Herb Pack", PricePerUnit: 3.49, Currency: "USD", PackageSize: "60 g"},
	},
	"meat": {
		{ID: "cat-meat-mince", Name: "Ground Beef", PricePerUnit: 6.99, Currency: "USD", PackageSize: "500 g"},
	},
	"bakery": {
		{ID: "cat-bak-sourdough", Name: "Sourdough Loaf", PricePerUnit: 4.49, Currency: "USD", PackageSize: "800 g"},
	},
	"pantry": {
		{ID: "cat-pan-stock", Name: "Vegetable Stock Cubes", PricePerUnit: 1.99, Currency: "USD", PackageSize: "10 cubes"},
		{ID: "cat-pan-spice", Name: "Everyday Spice Mix", PricePerUnit: 2.99, Currency: "USD", PackageSize: "45 g"},
	},
}

// pantryPool is the last-resort pool when even the category is unknown.
var pantryPool = categoryPools["pantry"]

// substitutions are manually curated alternate ingredient names offered
// when no pool covers an ingredient.
var substitutions = map[string]string{
	"creme fraiche": "sour cream",
	"crème fraîche": "sour cream",
	"mascarpone":    "cream cheese",
	"shallot":       "onion",
	"pancetta":      "bacon",
	"cavolo nero":   "kale",
	"red wine":      "red grape juice",
}

// ProductPools serves candidate products from the seeded pools.
type ProductPools struct{}

// NewProductPools creates the seeded product catalog.
func NewProductPools() outbound.ProductCatalog {
	return &ProductPools{}
}

// Candidates resolves a canonical key to its pool, falling back to the
// category pool, then the generic pantry pool. Copies are returned so
// callers can tag and reorder freely.
func (p *ProductPools) Candidates(ctx context.Context, canonicalKey, category string) ([]grocer.VendorProduct, error) {
	if pool, ok := keyPools[canonicalKey]; ok {
		return clonePool(pool), nil
	}
	if pool, ok := categoryPools[strings.ToLower(category)]; ok {
		return clonePool(pool), nil
	}
	if category != "" {
		return clonePool(pantryPool), nil
	}
	return nil, nil
}

// SubstitutionHint returns the curated alternate for an unmatched name.
func (p *ProductPools) SubstitutionHint(name string) (string, bool) {
	sub, ok := substitutions[strings.ToLower(strings.TrimSpace(name))]
	return sub, ok
}

func clonePool(pool []grocer.VendorProduct) []grocer.VendorProduct {
	out := make([]grocer.VendorProduct, len(pool))
	copy(out, pool)
	return out
}
