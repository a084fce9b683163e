package in

import (
	"net/http/httptest"
	"testing"

	"github.com/catalogsvc/catalog/internal/adapters/inmemory"
	"github.com/catalogsvc/catalog/internal/deletion"
	"github.com/catalogsvc/catalog/internal/platform/logging"
	"github.com/catalogsvc/catalog/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
)

func newTestRouter() *fiber.App {
	itemRepo := inmemory.NewItemRepository()
	userRepo := inmemory.NewUserRepository()
	categoryRepo := inmemory.NewCategoryRepository()
	productRepo := inmemory.NewProductRepository()
	metadataRepo := inmemory.NewMetadataRepository()
	deletionLogRepo := inmemory.NewDeletionLogRepository()

	facade := deletion.NewFacade(
		deletion.NewItemStrategy(itemRepo),
		deletion.NewCategoryStrategy(categoryRepo),
		deletion.NewProductStrategy(productRepo, deletionLogRepo),
	)

	return NewRouter(
		&logging.NoneLogger{},
		trace.NewNoopTracerProvider(),
		nil,
		NewItemHandler(services.NewItemService(itemRepo), facade),
		NewUserHandler(services.NewUserService(userRepo)),
		NewCategoryHandler(services.NewCategoryService(categoryRepo), facade),
		NewProductHandler(services.NewProductService(productRepo, metadataRepo), facade),
		NewDeletionLogHandler(services.NewDeletionLogService(deletionLogRepo)),
		NewHealthHandler(nil, nil, nil, nil, nil),
	)
}

func TestNewRouter_HealthAndMetricsUnprotected(t *testing.T) {
	app := newTestRouter()

	for _, path := range []string{"/health/live", "/health/ready", "/api/health", "/metrics"} {
		resp, err := app.Test(httptest.NewRequest("GET", path, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, "path %s", path)
	}
}

func TestNewRouter_ItemsListEmpty(t *testing.T) {
	app := newTestRouter()

	resp, err := app.Test(httptest.NewRequest("GET", "/api/items", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestNewRouter_NoAuthMiddlewareLeavesAPIOpen(t *testing.T) {
	app := newTestRouter()

	resp, err := app.Test(httptest.NewRequest("GET", "/api/users", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
