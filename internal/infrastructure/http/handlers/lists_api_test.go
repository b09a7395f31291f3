package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/forkful/v2/internal/domain/shopping"
	"github.com/forkful/v2/pkg/errors"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func listsRouter(h *ListHandlers) http.Handler {
	r := chi.NewRouter()
	r.Post("/api/v1/lists", h.Create)
	r.Get("/api/v1/lists/{id}", h.Get)
	return r
}

func TestListHandlers_Create(t *testing.T) {
	t.Run("ValidRequest_Returns201WithListID", func(t *testing.T) {
		// Arrange
		listID := uuid.New()
		shoppingSvc := &fakeShoppingService{persistedID: listID}
		h := NewListHandlers(shoppingSvc, zap.NewNop())

		// Act
		rec := postJSON(t, listsRouter(h).ServeHTTP, "/api/v1/lists",
			`{"name":"Week 1 groceries","items":[{"name":"Mozzarella","totalQuantity":450,"unit":"g"}]}`)

		// Assert
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "Week 1 groceries", shoppingSvc.persistedName)
		envelope := decodeEnvelope(t, rec)
		data := envelope["data"].(map[string]interface{})
		assert.Equal(t, listID.String(), data["listId"])
	})

	t.Run("MissingName_Rejected", func(t *testing.T) {
		h := NewListHandlers(&fakeShoppingService{}, zap.NewNop())

		rec := postJSON(t, listsRouter(h).ServeHTTP, "/api/v1/lists", `{"items":[]}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", errorCode(t, rec))
	})
}

func TestListHandlers_Get(t *testing.T) {
	t.Run("KnownList_ReturnsItemsInOrder", func(t *testing.T) {
		// Arrange
		now := time.Now()
		list := &shopping.List{
			ID:        uuid.New(),
			Name:      "Week 1 groceries",
			CreatedAt: now,
			UpdatedAt: now,
			Items: []shopping.ListItem{
				{Name: "Mozzarella", Amount: 450, Unit: "g"},
				{Name: "Basil", Amount: 1, Unit: "bunch", Notes: "fresh", Checked: true},
			},
		}
		h := NewListHandlers(&fakeShoppingService{list: list}, zap.NewNop())

		// Act
		req := httptest.NewRequest(http.MethodGet, "/api/v1/lists/"+list.ID.String(), nil)
		rec := httptest.NewRecorder()
		listsRouter(h).ServeHTTP(rec, req)

		// Assert
		assert.Equal(t, http.StatusOK, rec.Code)
		envelope := decodeEnvelope(t, rec)
		data := envelope["data"].(map[string]interface{})
		items := data["items"].([]interface{})
		require.Len(t, items, 2)
		first := items[0].(map[string]interface{})
		assert.Equal(t, "Mozzarella", first["name"])
	})

	t.Run("MalformedID_Returns400", func(t *testing.T) {
		h := NewListHandlers(&fakeShoppingService{}, zap.NewNop())

		req := httptest.NewRequest(http.MethodGet, "/api/v1/lists/not-a-uuid", nil)
		rec := httptest.NewRecorder()
		listsRouter(h).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "BAD_REQUEST", errorCode(t, rec))
	})

	t.Run("UnknownList_Returns404", func(t *testing.T) {
		listID := uuid.New()
		h := NewListHandlers(&fakeShoppingService{
			getErr: errors.NewListNotFoundError(listID.String()),
		}, zap.NewNop())

		req := httptest.NewRequest(http.MethodGet, "/api/v1/lists/"+listID.String(), nil)
		rec := httptest.NewRecorder()
		listsRouter(h).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "LIST_NOT_FOUND", errorCode(t, rec))
	})
}
