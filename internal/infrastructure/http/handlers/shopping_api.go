package handlers

import (
	"net/http"

	"github.com/forkful/v2/internal/domain/grocer"
	"github.com/forkful/v2/internal/domain/shopping"
	"github.com/forkful/v2/internal/infrastructure/monitoring"
	"github.com/forkful/v2/internal/ports/inbound"
	"github.com/forkful/v2/pkg/errors"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// ShoppingHandlers handles list generation, product matching and checkout
// dispatch requests.
type ShoppingHandlers struct {
	shopping    inbound.ShoppingService
	fulfillment inbound.FulfillmentService
	metrics     *monitoring.MetricsCollector
	validate    *validator.Validate
	logger      *zap.Logger
}

// NewShoppingHandlers creates a new shopping handlers instance
func NewShoppingHandlers(
	shoppingService inbound.ShoppingService,
	fulfillmentService inbound.FulfillmentService,
	metrics *monitoring.MetricsCollector,
	logger *zap.Logger,
) *ShoppingHandlers {
	return &ShoppingHandlers{
		shopping:    shoppingService,
		fulfillment: fulfillmentService,
		metrics:     metrics,
		validate:    validator.New(),
		logger:      logger.Named("shopping-api"),
	}
}

// scopeRequest is the wire form of a shopping scope.
type scopeRequest struct {
	Kind     string `json:"kind" validate:"required,oneof=day week range"`
	Week     int    `json:"week,omitempty" validate:"min=0"`
	Day      string `json:"day,omitempty"`
	FromWeek int    `json:"fromWeek,omitempty" validate:"min=0"`
	ToWeek   int    `json:"toWeek,omitempty" validate:"min=0"`
}

func (s scopeRequest) toScope() shopping.Scope {
	switch shopping.ScopeKind(s.Kind) {
	case shopping.ScopeKindDay:
		return shopping.DayScope(s.Week, s.Day)
	case shopping.ScopeKindWeek:
		return shopping.WeekScope(s.Week)
	default:
		return shopping.RangeScope(s.FromWeek, s.ToWeek)
	}
}

type generateRequest struct {
	Scope scopeRequest `json:"scope" validate:"required"`
}

type generateResponse struct {
	Items []shopping.AggregatedItem `json:"items"`
}

// Generate handles POST /api/v1/shopping/generate
func (h *ShoppingHandlers) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if appErr := decodeJSON(r, &req); appErr != nil {
		writeError(w, r, h.logger, appErr)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, r, h.logger, errors.NewValidationError(err.Error()))
		return
	}

	items, err := h.shopping.GenerateList(r.Context(), inbound.GenerateListCommand{
		Scope: req.Scope.toScope(),
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	h.metrics.ListGenerated(len(items))

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    generateResponse{Items: items},
	})
}

type matchRequest struct {
	Items      []shopping.AggregatedItem `json:"items" validate:"required,min=1"`
	VendorID   string                    `json:"vendorId" validate:"required"`
	BudgetTier string                    `json:"budgetTier" validate:"omitempty,oneof=budget normal premium"`
}

// Match handles POST /api/v1/shopping/match
func (h *ShoppingHandlers) Match(w http.ResponseWriter, r *http.Request) {
	var req matchRequest
	if appErr := decodeJSON(r, &req); appErr != nil {
		writeError(w, r, h.logger, appErr)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, r, h.logger, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.fulfillment.MatchAll(r.Context(), inbound.MatchCommand{
		Items:    req.Items,
		VendorID: req.VendorID,
		Tier:     grocer.ParseBudgetTier(req.BudgetTier),
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	for _, match := range result.Matches {
		switch {
		case match.Product != nil:
			h.metrics.ItemMatched("matched")
		case match.Substitution != nil:
			h.metrics.ItemMatched("substitution")
		default:
			h.metrics.ItemMatched("unmatched")
		}
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    result,
	})
}

type checkoutRequest struct {
	VendorID   string                `json:"vendorId" validate:"required"`
	Items      []grocer.CartItem     `json:"items" validate:"required,min=1"`
	BudgetTier string                `json:"budgetTier" validate:"omitempty,oneof=budget normal premium"`
	Config     grocer.CheckoutConfig `json:"config"`
}

// Checkout handles POST /api/v1/shopping/checkout
func (h *ShoppingHandlers) Checkout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if appErr := decodeJSON(r, &req); appErr != nil {
		writeError(w, r, h.logger, appErr)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, r, h.logger, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.fulfillment.Checkout(r.Context(), inbound.CheckoutCommand{
		VendorID: req.VendorID,
		Items:    req.Items,
		Tier:     grocer.ParseBudgetTier(req.BudgetTier),
		Config:   req.Config,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	artifact := "checkout_url"
	if result.RequiresAppHandoff {
		artifact = "handoff"
	}
	h.metrics.CheckoutDispatched(req.VendorID, artifact, result.EstimatedTotal)

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    result,
	})
}
