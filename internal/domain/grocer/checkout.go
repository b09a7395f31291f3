package grocer

import (
	"fmt"
	"net/url"
	"strings"
)

// searchFallbackURL is where carts for unrecognized vendors are sent: a
// plain web search over the cart contents, so checkout never dead-ends.
const searchFallbackURL = "https://www.google.com/search"

// handoffSeparator closes a hand-off message so it pastes cleanly into a
// third-party ordering app.
const handoffSeparator = "------------------------------"

// CheckoutConfig carries optional caller preferences for the artifact.
type CheckoutConfig struct {
	PreferredStore string `json:"preferredStore,omitempty"`
	PreferredCity  string `json:"preferredCity,omitempty"`
}

// CartResult is the fulfillment artifact for a cart. It is pure output: the
// caller opens the URL, copies the hand-off text or persists an order record
// as best-effort side effects after the fact.
type CartResult struct {
	CheckoutURL        string  `json:"checkoutUrl,omitempty"`
	RequiresAppHandoff bool    `json:"requiresAppHandoff,omitempty"`
	HandoffMessage     string  `json:"handoffMessage,omitempty"`
	EstimatedTotal     float64 `json:"estimatedTotal"`
	Currency           string  `json:"currency"`
}

// BuildCheckout builds the fulfillment artifact for a cart at the given
// vendor. A nil vendor (unknown id) falls back to a generic search URL; no
// branch ever fails. One handler per integration mode, vendor specifics
// passed as data on the Vendor itself.
func BuildCheckout(vendor *Vendor, items []CartItem, cfg CheckoutConfig) CartResult {
	result := CartResult{
		EstimatedTotal: estimateTotal(items),
		Currency:       cartCurrency(vendor, items),
	}

	if vendor == nil {
		result.CheckoutURL = buildSearchFallback(items)
		return result
	}

	switch vendor.Integration {
	case IntegrationManual:
		result.RequiresAppHandoff = true
		result.HandoffMessage = buildHandoffMessage(items, cfg)
	case IntegrationDeeplink, IntegrationAPI:
		// API vendors submit the cart upstream through the catalog
		// integration; the artifact is still their checkout page.
		result.CheckoutURL = buildVendorURL(*vendor, items)
	default:
		result.CheckoutURL = buildSearchFallback(items)
	}

	return result
}

// estimateTotal is Σ price × quantity rounded to two decimals, computed
// identically for every dispatch branch.
func estimateTotal(items []CartItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Product.PricePerUnit * item.Quantity
	}
	return RoundPrice(total)
}

func cartCurrency(vendor *Vendor, items []CartItem) string {
	if vendor != nil && vendor.Currency != "" {
		return vendor.Currency
	}
	for _, item := range items {
		if item.Product.Currency != "" {
			return item.Product.Currency
		}
	}
	return "USD"
}

// buildVendorURL returns the vendor storefront URL, hinting the first cart
// item's product when the vendor supports a product hint parameter.
func buildVendorURL(vendor Vendor, items []CartItem) string {
	base := vendor.StorefrontURL
	if base == "" {
		return buildSearchFallback(items)
	}
	if vendor.ProductHintParam == "" || len(items) == 0 {
		return base
	}

	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	q := u.Query()
	q.Set(vendor.ProductHintParam, items[0].Product.Name)
	u.RawQuery = q.Encode()
	return u.String()
}

// buildSearchFallback builds a web-search URL over all cart item names.
func buildSearchFallback(items []CartItem) string {
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Product.Name)
	}
	query := url.Values{}
	query.Set("q", strings.Join(names, " "))
	return searchFallbackURL + "?" + query.Encode()
}

// buildHandoffMessage renders the cart as copy-paste text for vendors with
// no programmatic cart: a header naming the preferred store when known, one
// bullet per item, and a closing separator.
func buildHandoffMessage(items []CartItem, cfg CheckoutConfig) string {
	var b strings.Builder

	switch {
	case cfg.PreferredStore != "" && cfg.PreferredCity != "":
		fmt.Fprintf(&b, "Shopping list for %s (%s):\n", cfg.PreferredStore, cfg.PreferredCity)
	case cfg.PreferredStore != "":
		fmt.Fprintf(&b, "Shopping list for %s:\n", cfg.PreferredStore)
	default:
		b.WriteString("Shopping list:\n")
	}

	for _, item := range items {
		if item.Quantity > 1 {
			fmt.Fprintf(&b, "\u2022 \u00d7%g %s (%s)\n", item.Quantity, item.Product.Name, item.Product.PackageSize)
		} else {
			fmt.Fprintf(&b, "\u2022 %s (%s)\n", item.Product.Name, item.Product.PackageSize)
		}
	}

	b.WriteString(handoffSeparator)
	return b.String()
}
