package grocer

import (
	"time"

	"github.com/google/uuid"
)

// ArtifactKind labels which fulfillment artifact a checkout produced.
type ArtifactKind string

const (
	ArtifactCheckoutURL ArtifactKind = "checkout_url"
	ArtifactHandoff     ArtifactKind = "handoff"
	ArtifactSearch      ArtifactKind = "search_fallback"
)

// Order is a best-effort record of a dispatched checkout. It exists for the
// user's order history; failing to write one never fails the checkout whose
// artifact was already returned.
type Order struct {
	ID             uuid.UUID
	VendorID       string
	Tier           BudgetTier
	ItemCount      int
	EstimatedTotal float64
	Currency       string
	Artifact       ArtifactKind
	CreatedAt      time.Time
}

// NewOrder records the outcome of a checkout dispatch. vendorKnown is false
// when the id missed the registry and the cart fell back to a search URL.
func NewOrder(vendorID string, vendorKnown bool, tier BudgetTier, items []CartItem, result CartResult) *Order {
	artifact := ArtifactCheckoutURL
	switch {
	case result.RequiresAppHandoff:
		artifact = ArtifactHandoff
	case !vendorKnown:
		artifact = ArtifactSearch
	}

	return &Order{
		ID:             uuid.New(),
		VendorID:       vendorID,
		Tier:           tier,
		ItemCount:      len(items),
		EstimatedTotal: result.EstimatedTotal,
		Currency:       result.Currency,
		Artifact:       artifact,
		CreatedAt:      time.Now(),
	}
}
