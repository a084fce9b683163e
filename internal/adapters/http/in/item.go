package in

import (
	"strconv"

	"github.com/catalogsvc/catalog/internal/apperr"
	"github.com/catalogsvc/catalog/internal/deletion"
	"github.com/catalogsvc/catalog/internal/domain/item"
	"github.com/catalogsvc/catalog/internal/platform/telemetry"
	"github.com/catalogsvc/catalog/internal/services"
	"github.com/gofiber/fiber/v2"
)

// ItemHandler adapts HTTP requests to ItemService. Deletion dispatches
// through the unified deletion facade, never through the service.
type ItemHandler struct {
	service *services.ItemService
	facade  *deletion.Facade
}

// NewItemHandler builds an ItemHandler bound to service and facade.
func NewItemHandler(service *services.ItemService, facade *deletion.Facade) *ItemHandler {
	return &ItemHandler{service: service, facade: facade}
}

func parseItemID(c *fiber.Ctx) (uint64, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return 0, apperr.BadRequest("id must be a positive integer")
	}

	return id, nil
}

// FindAll handles GET /api/items.
//
//	@Summary		List Items
//	@Description	List all items
//	@Tags			Items
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	any
//	@Router			/api/items [get]
func (h *ItemHandler) FindAll(c *fiber.Ctx) error {
	ctx := c.UserContext()
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "handler.item.find_all")
	defer span.End()

	limit, offset := limitOffset(c)

	items, err := h.service.FindAll(ctx, item.Filter{
		IncludeDeleted: c.QueryBool("includeDeleted", false),
		Limit:          limit,
		Offset:         offset,
	})
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to list items", err)
		return WithError(c, err)
	}

	return OK(c, items)
}

// FindByID handles GET /api/items/:id.
//
//	@Summary		Get an Item
//	@Description	Get an item by ID
//	@Tags			Items
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	any
//	@Router			/api/items/{id} [get]
func (h *ItemHandler) FindByID(c *fiber.Ctx) error {
	ctx := c.UserContext()
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "handler.item.find_by_id")
	defer span.End()

	id, err := parseItemID(c)
	if err != nil {
		return WithError(c, err)
	}

	found, err := h.service.FindByID(ctx, id, c.QueryBool("includeDeleted", false))
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to find item", err)
		return WithError(c, err)
	}

	return OK(c, found)
}

// Create handles POST /api/items.
//
//	@Summary		Create an Item
//	@Description	Create a new item
//	@Tags			Items
//	@Accept			json
//	@Produce		json
//	@Success		201	{object}	any
//	@Router			/api/items [post]
func (h *ItemHandler) Create(c *fiber.Ctx) error {
	ctx := c.UserContext()
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "handler.item.create")
	defer span.End()

	var input item.CreateInput
	if err := c.BodyParser(&input); err != nil {
		return WithError(c, apperr.BadRequest("request body is not valid JSON"))
	}

	created, err := h.service.Create(ctx, input)
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to create item", err)
		return WithError(c, err)
	}

	return Created(c, created)
}

// Update handles PUT /api/items/:id.
//
//	@Summary		Update an Item
//	@Description	Update an existing item
//	@Tags			Items
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	any
//	@Router			/api/items/{id} [put]
func (h *ItemHandler) Update(c *fiber.Ctx) error {
	ctx := c.UserContext()
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "handler.item.update")
	defer span.End()

	id, err := parseItemID(c)
	if err != nil {
		return WithError(c, err)
	}

	var input item.UpdateInput
	if err := c.BodyParser(&input); err != nil {
		return WithError(c, apperr.BadRequest("request body is not valid JSON"))
	}

	updated, err := h.service.Update(ctx, id, input)
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to update item", err)
		return WithError(c, err)
	}

	return OK(c, updated)
}

// ValidateDeletion handles GET /api/items/:id/deletion-check.
//
//	@Summary		Validate Item Deletion
//	@Description	Report whether an item can be deleted
//	@Tags			Items
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	any
//	@Router			/api/items/{id}/deletion-check [get]
func (h *ItemHandler) ValidateDeletion(c *fiber.Ctx) error {
	ctx := c.UserContext()
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "handler.item.validate_deletion")
	defer span.End()

	id, err := parseItemID(c)
	if err != nil {
		return WithError(c, err)
	}

	check, err := h.service.ValidateDeletion(ctx, id)
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to validate item deletion", err)
		return WithError(c, err)
	}

	return OK(c, check)
}

// Delete handles DELETE /api/items/:id, dispatching through the unified
// deletion facade with the kind selected by the "kind" query param.
//
//	@Summary		Delete an Item
//	@Description	Delete an item logically or physically
//	@Tags			Items
//	@Accept			json
//	@Produce		json
//	@Success		204	"No Content"
//	@Router			/api/items/{id} [delete]
func (h *ItemHandler) Delete(c *fiber.Ctx) error {
	ctx := c.UserContext()
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "handler.item.delete")
	defer span.End()

	id, err := parseItemID(c)
	if err != nil {
		return WithError(c, err)
	}

	kind, err := parseDeletionKind(c)
	if err != nil {
		return WithError(c, err)
	}

	if err := h.facade.DeleteItem(ctx, id, kind); err != nil {
		telemetry.HandleSpanError(&span, "failed to delete item", err)
		return WithError(c, err)
	}

	return NoContent(c)
}
