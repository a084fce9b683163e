package in

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/catalogsvc/catalog/internal/adapters/inmemory"
	"github.com/catalogsvc/catalog/internal/deletion"
	"github.com/catalogsvc/catalog/internal/domain/item"
	"github.com/catalogsvc/catalog/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newItemTestHandler() (*ItemHandler, *inmemory.ItemRepository) {
	repo := inmemory.NewItemRepository()
	service := services.NewItemService(repo)
	facade := deletion.NewFacade(deletion.NewItemStrategy(repo), nil, nil)

	return NewItemHandler(service, facade), repo
}

func newItemTestApp(h *ItemHandler) *fiber.App {
	app := fiber.New()
	app.Get("/api/items", h.FindAll)
	app.Get("/api/items/:id", h.FindByID)
	app.Post("/api/items", h.Create)
	app.Put("/api/items/:id", h.Update)
	app.Get("/api/items/:id/deletion-check", h.ValidateDeletion)
	app.Delete("/api/items/:id", h.Delete)

	return app
}

func TestItemHandler_Create(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedStatus int
	}{
		{
			name:           "valid name returns 201",
			body:           `{"name":"Widget"}`,
			expectedStatus: fiber.StatusCreated,
		},
		{
			name:           "empty name returns 422",
			body:           `{"name":""}`,
			expectedStatus: fiber.StatusUnprocessableEntity,
		},
		{
			name:           "malformed body returns 400",
			body:           `not json`,
			expectedStatus: fiber.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newItemTestHandler()
			app := newItemTestApp(h)

			req := httptest.NewRequest("POST", "/api/items", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}

func TestItemHandler_FindByID(t *testing.T) {
	h, repo := newItemTestHandler()
	app := newItemTestApp(h)

	created, err := repo.Create(t.Context(), item.Item{Name: "Widget"})
	require.NoError(t, err)

	t.Run("found returns 200", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/items/"+strconv.FormatUint(created.ID, 10), nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)

		var got item.Item
		require.NoError(t, json.Unmarshal(body, &got))
		assert.Equal(t, "Widget", got.Name)
	})

	t.Run("missing returns 404", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/items/999999", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run("non-numeric id returns 400", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/items/abc", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestItemHandler_Delete(t *testing.T) {
	tests := []struct {
		name           string
		kindQuery      string
		expectedStatus int
	}{
		{name: "logical delete returns 204", kindQuery: "", expectedStatus: fiber.StatusNoContent},
		{name: "physical delete returns 204", kindQuery: "?kind=physical", expectedStatus: fiber.StatusNoContent},
		{name: "bad kind returns 400", kindQuery: "?kind=nonsense", expectedStatus: fiber.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, repo := newItemTestHandler()
			app := newItemTestApp(h)

			created, err := repo.Create(t.Context(), item.Item{Name: "Widget"})
			require.NoError(t, err)

			req := httptest.NewRequest("DELETE", "/api/items/"+strconv.FormatUint(created.ID, 10)+tt.kindQuery, nil)
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}

func TestItemHandler_ValidateDeletion(t *testing.T) {
	h, repo := newItemTestHandler()
	app := newItemTestApp(h)

	created, err := repo.Create(t.Context(), item.Item{Name: "Widget"})
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/api/items/"+strconv.FormatUint(created.ID, 10)+"/deletion-check", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var check item.DeletionCheck
	require.NoError(t, json.Unmarshal(body, &check))
	assert.True(t, check.CanDelete)
}
