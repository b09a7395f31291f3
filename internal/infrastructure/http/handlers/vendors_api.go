package handlers

import (
	"net/http"

	"github.com/forkful/v2/internal/domain/grocer"
	"github.com/forkful/v2/internal/ports/inbound"
	"go.uber.org/zap"
)

// VendorHandlers serves the vendor registry for the vendor picker.
type VendorHandlers struct {
	fulfillment inbound.FulfillmentService
	logger      *zap.Logger
}

// NewVendorHandlers creates a new vendor handlers instance
func NewVendorHandlers(fulfillmentService inbound.FulfillmentService, logger *zap.Logger) *VendorHandlers {
	return &VendorHandlers{
		fulfillment: fulfillmentService,
		logger:      logger.Named("vendors-api"),
	}
}

type vendorsResponse struct {
	Tier    grocer.BudgetTier `json:"tier"`
	Vendors []grocer.Vendor   `json:"vendors"`
}

// List handles GET /api/v1/vendors?tier=
func (h *VendorHandlers) List(w http.ResponseWriter, r *http.Request) {
	tier := grocer.ParseBudgetTier(r.URL.Query().Get("tier"))
	vendors := h.fulfillment.Vendors(tier)

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    vendorsResponse{Tier: tier, Vendors: vendors},
	})
}
