package handlers

import (
	"net/http"

	"github.com/forkful/v2/internal/domain/shopping"
	"github.com/forkful/v2/internal/ports/inbound"
	"github.com/forkful/v2/pkg/errors"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ListHandlers persists and retrieves saved shopping lists.
type ListHandlers struct {
	shopping inbound.ShoppingService
	validate *validator.Validate
	logger   *zap.Logger
}

// NewListHandlers creates a new list handlers instance
func NewListHandlers(shoppingService inbound.ShoppingService, logger *zap.Logger) *ListHandlers {
	return &ListHandlers{
		shopping: shoppingService,
		validate: validator.New(),
		logger:   logger.Named("lists-api"),
	}
}

type createListRequest struct {
	Name  string                    `json:"name" validate:"required,min=1,max=255"`
	Items []shopping.AggregatedItem `json:"items"`
}

type createListResponse struct {
	ListID uuid.UUID `json:"listId"`
}

// Create handles POST /api/v1/lists
func (h *ListHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req createListRequest
	if appErr := decodeJSON(r, &req); appErr != nil {
		writeError(w, r, h.logger, appErr)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, r, h.logger, errors.NewValidationError(err.Error()))
		return
	}

	listID, err := h.shopping.PersistList(r.Context(), inbound.PersistListCommand{
		Name:  req.Name,
		Items: req.Items,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, APIResponse{
		Success: true,
		Data:    createListResponse{ListID: listID},
		Message: "List created",
	})
}

type listItemResponse struct {
	Name    string  `json:"name"`
	Amount  float64 `json:"amount"`
	Unit    string  `json:"unit"`
	Notes   string  `json:"notes,omitempty"`
	Checked bool    `json:"checked"`
}

type listResponse struct {
	ID    uuid.UUID          `json:"id"`
	Name  string             `json:"name"`
	Items []listItemResponse `json:"items"`
}

// Get handles GET /api/v1/lists/{id}
func (h *ListHandlers) Get(w http.ResponseWriter, r *http.Request) {
	listID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, h.logger, errors.NewBadRequestError("Invalid list id"))
		return
	}

	list, err := h.shopping.GetList(r.Context(), listID)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	resp := listResponse{
		ID:    list.ID,
		Name:  list.Name,
		Items: make([]listItemResponse, 0, len(list.Items)),
	}
	for _, item := range list.Items {
		resp.Items = append(resp.Items, listItemResponse{
			Name:    item.Name,
			Amount:  item.Amount,
			Unit:    item.Unit,
			Notes:   item.Notes,
			Checked: item.Checked,
		})
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    resp,
	})
}
