package in

import (
	"github.com/catalogsvc/catalog/internal/domain/deletionlog"
	"github.com/catalogsvc/catalog/internal/platform/telemetry"
	"github.com/catalogsvc/catalog/internal/services"
	"github.com/gofiber/fiber/v2"
)

// DeletionLogHandler exposes the append-only deletion-log audit trail
// read-only; entries are written only by the deletion strategies.
type DeletionLogHandler struct {
	service *services.DeletionLogService
}

// NewDeletionLogHandler builds a DeletionLogHandler bound to service.
func NewDeletionLogHandler(service *services.DeletionLogService) *DeletionLogHandler {
	return &DeletionLogHandler{service: service}
}

// FindAll handles GET /api/deletion-log, optionally scoped by ?productId.
func (h *DeletionLogHandler) FindAll(c *fiber.Ctx) error {
	ctx := c.UserContext()
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "handler.deletionlog.find_all")
	defer span.End()

	limit, offset := limitOffset(c)

	var productID *string
	if p := c.Query("productId"); p != "" {
		productID = &p
	}

	entries, err := h.service.FindAll(ctx, deletionlog.Filter{
		ProductID: productID,
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to list deletion log entries", err)
		return WithError(c, err)
	}

	return OK(c, entries)
}
