package in

import (
	"github.com/catalogsvc/catalog/internal/platform/auth"
	"github.com/catalogsvc/catalog/internal/platform/logging"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.opentelemetry.io/otel/trace"

	"github.com/gofiber/fiber/v2"
)

// NewRouter wires every handler into a fiber.App. authMiddleware is nil
// when auth is disabled, in which case routes are mounted unprotected.
func NewRouter(
	logger logging.Logger,
	tracerProvider trace.TracerProvider,
	authMiddleware *auth.Middleware,
	itemHandler *ItemHandler,
	userHandler *UserHandler,
	categoryHandler *CategoryHandler,
	productHandler *ProductHandler,
	deletionLogHandler *DeletionLogHandler,
	healthHandler *HealthHandler,
) *fiber.App {
	f := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return WithError(c, err)
		},
	})

	f.Use(cors.New())
	f.Use(WithRequestContext(logger, tracerProvider))

	f.Get("/health/live", healthHandler.Live)
	f.Get("/health/ready", healthHandler.Ready)
	f.Get("/api/health", healthHandler.Ready)
	f.Get("/metrics", MetricsHandler())
	f.Get("/api/metrics", MetricsHandler())

	protect := func(c *fiber.Ctx) error { return c.Next() }
	if authMiddleware != nil {
		protect = authMiddleware.Protect()
	}

	api := f.Group("/api", protect)

	items := api.Group("/items")
	items.Get("/", itemHandler.FindAll)
	items.Post("/", itemHandler.Create)
	items.Get("/:id", itemHandler.FindByID)
	items.Put("/:id", itemHandler.Update)
	items.Get("/:id/deletion-check", itemHandler.ValidateDeletion)
	items.Delete("/:id", itemHandler.Delete)

	users := api.Group("/users")
	users.Get("/", userHandler.FindAll)
	users.Post("/", userHandler.Create)
	users.Get("/:id", userHandler.FindByID)
	users.Patch("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	categories := api.Group("/categories")
	categories.Get("/", categoryHandler.FindAll)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/:id", categoryHandler.FindByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Get("/:id/children", categoryHandler.FindChildren)
	categories.Get("/:id/path", categoryHandler.FindPath)
	categories.Post("/:id/move", categoryHandler.Move)
	categories.Get("/:id/deletion-check", categoryHandler.ValidateDeletion)
	categories.Delete("/:id", categoryHandler.Delete)

	products := api.Group("/products")
	products.Get("/", productHandler.FindAll)
	products.Post("/", productHandler.Create)
	products.Get("/deleted", productHandler.FindDeleted)
	products.Get("/:id", productHandler.FindByID)
	products.Put("/:id", productHandler.Update)
	products.Get("/:id/metadata", productHandler.GetMetadata)
	products.Put("/:id/metadata", productHandler.SetMetadata)
	products.Put("/:id/price", productHandler.SetPrice)
	products.Put("/:id/inventory", productHandler.SetInventory)
	products.Post("/:id/images", productHandler.AddImage)
	products.Delete("/:id/images/:imageId", productHandler.RemoveImage)
	products.Put("/:id/tags", productHandler.SetTags)
	products.Put("/:id/attributes", productHandler.SetAttributes)
	products.Get("/:id/history", productHandler.FindHistory)
	products.Post("/:id/history", productHandler.AppendHistory)
	products.Get("/:id/deletion-check", productHandler.ValidateDeletion)
	products.Delete("/batch", productHandler.DeleteBatch)
	products.Delete("/:id", productHandler.Delete)

	api.Get("/deletion-log", deletionLogHandler.FindAll)

	return f
}
