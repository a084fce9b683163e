package in

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/catalogsvc/catalog/internal/adapters/inmemory"
	"github.com/catalogsvc/catalog/internal/deletion"
	"github.com/catalogsvc/catalog/internal/domain/product"
	"github.com/catalogsvc/catalog/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProductTestHandler() (*ProductHandler, *inmemory.ProductRepository) {
	productRepo := inmemory.NewProductRepository()
	metadataRepo := inmemory.NewMetadataRepository()
	deletionLogRepo := inmemory.NewDeletionLogRepository()

	service := services.NewProductService(productRepo, metadataRepo)
	facade := deletion.NewFacade(nil, nil, deletion.NewProductStrategy(productRepo, deletionLogRepo))

	return NewProductHandler(service, facade), productRepo
}

func newProductTestApp(h *ProductHandler) *fiber.App {
	app := fiber.New()
	app.Get("/api/products", h.FindAll)
	app.Get("/api/products/deleted", h.FindDeleted)
	app.Get("/api/products/:id", h.FindByID)
	app.Post("/api/products", h.Create)
	app.Put("/api/products/:id", h.Update)
	app.Get("/api/products/:id/metadata", h.GetMetadata)
	app.Put("/api/products/:id/metadata", h.SetMetadata)
	app.Put("/api/products/:id/price", h.SetPrice)
	app.Put("/api/products/:id/inventory", h.SetInventory)
	app.Post("/api/products/:id/images", h.AddImage)
	app.Delete("/api/products/:id/images/:imageId", h.RemoveImage)
	app.Put("/api/products/:id/tags", h.SetTags)
	app.Put("/api/products/:id/attributes", h.SetAttributes)
	app.Get("/api/products/:id/history", h.FindHistory)
	app.Post("/api/products/:id/history", h.AppendHistory)
	app.Get("/api/products/:id/deletion-check", h.ValidateDeletion)
	app.Delete("/api/products/batch", h.DeleteBatch)
	app.Delete("/api/products/:id", h.Delete)

	return app
}

const createProductBody = `{
	"sku":"SKU-001",
	"name":"Widget",
	"status":"Draft",
	"dimensions":{"length":"1","width":"1","height":"1"},
	"shipping":{"weight":"1"}
}`

func TestProductHandler_CreateAndFindByID(t *testing.T) {
	h, _ := newProductTestHandler()
	app := newProductTestApp(h)

	req := httptest.NewRequest("POST", "/api/products", bytes.NewBufferString(createProductBody))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var created product.Product
	require.NoError(t, json.Unmarshal(body, &created))
	assert.Equal(t, "Widget", created.Name)

	getReq := httptest.NewRequest("GET", "/api/products/"+created.ID, nil)
	getResp, err := app.Test(getReq)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, getResp.StatusCode)
}

func TestProductHandler_SetPriceRejectsInvalidOrdering(t *testing.T) {
	h, _ := newProductTestHandler()
	app := newProductTestApp(h)

	createReq := httptest.NewRequest("POST", "/api/products", bytes.NewBufferString(createProductBody))
	createReq.Header.Set("Content-Type", "application/json")
	createResp, err := app.Test(createReq)
	require.NoError(t, err)

	body, err := io.ReadAll(createResp.Body)
	require.NoError(t, err)

	var created product.Product
	require.NoError(t, json.Unmarshal(body, &created))

	priceReq := httptest.NewRequest("PUT", "/api/products/"+created.ID+"/price", bytes.NewBufferString(`{"selling":"100","list":"50","currency":"USD"}`))
	priceReq.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(priceReq)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestProductHandler_SetTagsAndMetadata(t *testing.T) {
	h, _ := newProductTestHandler()
	app := newProductTestApp(h)

	createReq := httptest.NewRequest("POST", "/api/products", bytes.NewBufferString(createProductBody))
	createReq.Header.Set("Content-Type", "application/json")
	createResp, err := app.Test(createReq)
	require.NoError(t, err)

	body, err := io.ReadAll(createResp.Body)
	require.NoError(t, err)

	var created product.Product
	require.NoError(t, json.Unmarshal(body, &created))

	tagsReq := httptest.NewRequest("PUT", "/api/products/"+created.ID+"/tags", bytes.NewBufferString(`{"tags":["featured","new"]}`))
	tagsReq.Header.Set("Content-Type", "application/json")
	tagsResp, err := app.Test(tagsReq)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, tagsResp.StatusCode)

	metaReq := httptest.NewRequest("PUT", "/api/products/"+created.ID+"/metadata", bytes.NewBufferString(`{"color":"red"}`))
	metaReq.Header.Set("Content-Type", "application/json")
	metaResp, err := app.Test(metaReq)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, metaResp.StatusCode)

	getMetaReq := httptest.NewRequest("GET", "/api/products/"+created.ID+"/metadata", nil)
	getMetaResp, err := app.Test(getMetaReq)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, getMetaResp.StatusCode)

	metaBody, err := io.ReadAll(getMetaResp.Body)
	require.NoError(t, err)

	var data map[string]any
	require.NoError(t, json.Unmarshal(metaBody, &data))
	assert.Equal(t, "red", data["color"])
}

func TestProductHandler_LogicalDeleteThenNotFound(t *testing.T) {
	h, _ := newProductTestHandler()
	app := newProductTestApp(h)

	createReq := httptest.NewRequest("POST", "/api/products", bytes.NewBufferString(createProductBody))
	createReq.Header.Set("Content-Type", "application/json")
	createResp, err := app.Test(createReq)
	require.NoError(t, err)

	body, err := io.ReadAll(createResp.Body)
	require.NoError(t, err)

	var created product.Product
	require.NoError(t, json.Unmarshal(body, &created))

	deleteReq := httptest.NewRequest("DELETE", "/api/products/"+created.ID+"?kind=logical", nil)
	deleteResp, err := app.Test(deleteReq)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, deleteResp.StatusCode)

	getReq := httptest.NewRequest("GET", "/api/products/"+created.ID, nil)
	getResp, err := app.Test(getReq)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, getResp.StatusCode)
}

func TestProductHandler_PhysicalDeleteAppendsDeletionLog(t *testing.T) {
	h, _ := newProductTestHandler()
	app := newProductTestApp(h)

	createReq := httptest.NewRequest("POST", "/api/products", bytes.NewBufferString(createProductBody))
	createReq.Header.Set("Content-Type", "application/json")
	createResp, err := app.Test(createReq)
	require.NoError(t, err)

	body, err := io.ReadAll(createResp.Body)
	require.NoError(t, err)

	var created product.Product
	require.NoError(t, json.Unmarshal(body, &created))

	deleteReq := httptest.NewRequest("DELETE", "/api/products/"+created.ID+"?kind=physical&reason=duplicate&actor=alice", nil)
	deleteResp, err := app.Test(deleteReq)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, deleteResp.StatusCode)

	getReq := httptest.NewRequest("GET", "/api/products/"+created.ID, nil)
	getResp, err := app.Test(getReq)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, getResp.StatusCode)
}

func TestProductHandler_DeleteBatchReportsPerItemOutcome(t *testing.T) {
	h, _ := newProductTestHandler()
	app := newProductTestApp(h)

	createReq := httptest.NewRequest("POST", "/api/products", bytes.NewBufferString(createProductBody))
	createReq.Header.Set("Content-Type", "application/json")
	createResp, err := app.Test(createReq)
	require.NoError(t, err)

	body, err := io.ReadAll(createResp.Body)
	require.NoError(t, err)

	var created product.Product
	require.NoError(t, json.Unmarshal(body, &created))

	batchBody, err := json.Marshal(map[string]any{
		"ids":        []string{created.ID, "does-not-exist"},
		"isPhysical": false,
	})
	require.NoError(t, err)

	batchReq := httptest.NewRequest("DELETE", "/api/products/batch", bytes.NewBuffer(batchBody))
	batchReq.Header.Set("Content-Type", "application/json")

	batchResp, err := app.Test(batchReq)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, batchResp.StatusCode)

	respBody, err := io.ReadAll(batchResp.Body)
	require.NoError(t, err)

	var report deletion.BatchReport
	require.NoError(t, json.Unmarshal(respBody, &report))

	assert.Equal(t, 1, report.SuccessCount)
	assert.Equal(t, 1, report.FailureCount)
	require.Len(t, report.Results, 2)
}

func TestProductHandler_DeleteBatchRejectsEmptyIDs(t *testing.T) {
	h, _ := newProductTestHandler()
	app := newProductTestApp(h)

	batchBody, err := json.Marshal(map[string]any{"ids": []string{}})
	require.NoError(t, err)

	req := httptest.NewRequest("DELETE", "/api/products/batch", bytes.NewBuffer(batchBody))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
