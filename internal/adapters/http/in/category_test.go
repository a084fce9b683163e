package in

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/catalogsvc/catalog/internal/adapters/inmemory"
	"github.com/catalogsvc/catalog/internal/deletion"
	"github.com/catalogsvc/catalog/internal/domain/category"
	"github.com/catalogsvc/catalog/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCategoryTestHandler() (*CategoryHandler, *inmemory.CategoryRepository) {
	repo := inmemory.NewCategoryRepository()
	service := services.NewCategoryService(repo)
	facade := deletion.NewFacade(nil, deletion.NewCategoryStrategy(repo), nil)

	return NewCategoryHandler(service, facade), repo
}

func newCategoryTestApp(h *CategoryHandler) *fiber.App {
	app := fiber.New()
	app.Get("/api/categories", h.FindAll)
	app.Get("/api/categories/:id", h.FindByID)
	app.Post("/api/categories", h.Create)
	app.Put("/api/categories/:id", h.Update)
	app.Get("/api/categories/:id/children", h.FindChildren)
	app.Get("/api/categories/:id/path", h.FindPath)
	app.Post("/api/categories/:id/move", h.Move)
	app.Get("/api/categories/:id/deletion-check", h.ValidateDeletion)
	app.Delete("/api/categories/:id", h.Delete)

	return app
}

func TestCategoryHandler_CreateAndFindByID(t *testing.T) {
	h, _ := newCategoryTestHandler()
	app := newCategoryTestApp(h)

	req := httptest.NewRequest("POST", "/api/categories", bytes.NewBufferString(`{"name":"Electronics","isActive":true}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var created category.Category
	require.NoError(t, json.Unmarshal(body, &created))
	assert.Equal(t, "Electronics", created.Name)
	assert.NotEmpty(t, created.ID)

	getReq := httptest.NewRequest("GET", "/api/categories/"+created.ID, nil)
	getResp, err := app.Test(getReq)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, getResp.StatusCode)
}

func TestCategoryHandler_MoveCyclePrevention(t *testing.T) {
	h, repo := newCategoryTestHandler()
	app := newCategoryTestApp(h)

	parent, err := repo.Create(t.Context(), category.Category{Name: "Parent", IsActive: true})
	require.NoError(t, err)

	childID := parent.ID

	req := httptest.NewRequest("POST", "/api/categories/"+childID+"/move", bytes.NewBufferString(`{"newParentId":"`+childID+`","newSortOrder":0}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.NotEqual(t, fiber.StatusOK, resp.StatusCode)
}

func TestCategoryHandler_Delete(t *testing.T) {
	h, repo := newCategoryTestHandler()
	app := newCategoryTestApp(h)

	created, err := repo.Create(t.Context(), category.Category{Name: "Electronics", IsActive: true})
	require.NoError(t, err)

	req := httptest.NewRequest("DELETE", "/api/categories/"+created.ID, nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	getReq := httptest.NewRequest("GET", "/api/categories/"+created.ID, nil)
	getResp, err := app.Test(getReq)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, getResp.StatusCode)
}

func TestCategoryHandler_FindChildrenAndPath(t *testing.T) {
	h, repo := newCategoryTestHandler()
	app := newCategoryTestApp(h)

	parent, err := repo.Create(t.Context(), category.Category{Name: "Parent", IsActive: true})
	require.NoError(t, err)

	child, err := repo.Create(t.Context(), category.Category{Name: "Child", IsActive: true, ParentID: &parent.ID})
	require.NoError(t, err)

	childrenReq := httptest.NewRequest("GET", "/api/categories/"+parent.ID+"/children", nil)
	childrenResp, err := app.Test(childrenReq)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, childrenResp.StatusCode)

	body, err := io.ReadAll(childrenResp.Body)
	require.NoError(t, err)

	var children []category.Category
	require.NoError(t, json.Unmarshal(body, &children))
	require.Len(t, children, 1)
	assert.Equal(t, child.ID, children[0].ID)

	pathReq := httptest.NewRequest("GET", "/api/categories/"+child.ID+"/path", nil)
	pathResp, err := app.Test(pathReq)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, pathResp.StatusCode)
}
