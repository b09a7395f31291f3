package grocer

import "errors"

// Domain errors for fulfillment operations. "Vendor unknown" and "no match"
// are deliberately not errors; they degrade to fallback artifacts and nil
// products respectively.

var (
	ErrEmptyCart     = errors.New("cart must contain at least one item")
	ErrInvalidTier   = errors.New("unknown budget tier")
	ErrCatalogLookup = errors.New("product catalog lookup failed")
)
