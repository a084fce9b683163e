package in

import (
	"github.com/catalogsvc/catalog/internal/apperr"
	"github.com/catalogsvc/catalog/internal/deletion"
	"github.com/catalogsvc/catalog/internal/domain/category"
	"github.com/catalogsvc/catalog/internal/platform/telemetry"
	"github.com/catalogsvc/catalog/internal/services"
	"github.com/gofiber/fiber/v2"
)

// CategoryHandler adapts HTTP requests to CategoryService and, for
// deletion, to the unified deletion facade.
type CategoryHandler struct {
	service *services.CategoryService
	facade  *deletion.Facade
}

// NewCategoryHandler builds a CategoryHandler bound to service and facade.
func NewCategoryHandler(service *services.CategoryService, facade *deletion.Facade) *CategoryHandler {
	return &CategoryHandler{service: service, facade: facade}
}

// FindAll handles GET /api/categories.
//
//	@Summary		List Categories
//	@Description	List all categories
//	@Tags			Categories
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	any
//	@Router			/api/categories [get]
func (h *CategoryHandler) FindAll(c *fiber.Ctx) error {
	ctx := c.UserContext()
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "handler.category.find_all")
	defer span.End()

	limit, offset := limitOffset(c)

	var parentID *string
	if p := c.Query("parentId"); p != "" {
		parentID = &p
	}

	categories, err := h.service.FindAll(ctx, category.Filter{
		IncludeDeleted: c.QueryBool("includeDeleted", false),
		ParentID:       parentID,
		Limit:          limit,
		Offset:         offset,
	})
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to list categories", err)
		return WithError(c, err)
	}

	return OK(c, categories)
}

// FindByID handles GET /api/categories/:id.
//
//	@Summary		Get a Category
//	@Description	Get a category by ID
//	@Tags			Categories
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	any
//	@Router			/api/categories/{id} [get]
func (h *CategoryHandler) FindByID(c *fiber.Ctx) error {
	ctx := c.UserContext()
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "handler.category.find_by_id")
	defer span.End()

	found, err := h.service.FindByID(ctx, c.Params("id"), c.QueryBool("includeDeleted", false))
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to find category", err)
		return WithError(c, err)
	}

	return OK(c, found)
}

// Create handles POST /api/categories.
//
//	@Summary		Create a Category
//	@Description	Create a new category
//	@Tags			Categories
//	@Accept			json
//	@Produce		json
//	@Success		201	{object}	any
//	@Router			/api/categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	ctx := c.UserContext()
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "handler.category.create")
	defer span.End()

	var input category.CreateInput
	if err := c.BodyParser(&input); err != nil {
		return WithError(c, apperr.BadRequest("request body is not valid JSON"))
	}

	created, err := h.service.Create(ctx, input)
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to create category", err)
		return WithError(c, err)
	}

	return Created(c, created)
}

// Update handles PUT /api/categories/:id.
//
//	@Summary		Update a Category
//	@Description	Update an existing category
//	@Tags			Categories
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	any
//	@Router			/api/categories/{id} [put]
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	ctx := c.UserContext()
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "handler.category.update")
	defer span.End()

	var input category.UpdateInput
	if err := c.BodyParser(&input); err != nil {
		return WithError(c, apperr.BadRequest("request body is not valid JSON"))
	}

	updated, err := h.service.Update(ctx, c.Params("id"), input)
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to update category", err)
		return WithError(c, err)
	}

	return OK(c, updated)
}

// FindChildren handles GET /api/categories/:id/children.
//
//	@Summary		List Category Children
//	@Description	List a category's direct children
//	@Tags			Categories
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	any
//	@Router			/api/categories/{id}/children [get]
func (h *CategoryHandler) FindChildren(c *fiber.Ctx) error {
	ctx := c.UserContext()
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "handler.category.find_children")
	defer span.End()

	children, err := h.service.FindChildren(ctx, c.Params("id"))
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to list category children", err)
		return WithError(c, err)
	}

	return OK(c, children)
}

// FindPath handles GET /api/categories/:id/path.
//
//	@Summary		Get Category Path
//	@Description	Get a category's ancestor path
//	@Tags			Categories
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	any
//	@Router			/api/categories/{id}/path [get]
func (h *CategoryHandler) FindPath(c *fiber.Ctx) error {
	ctx := c.UserContext()
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "handler.category.find_path")
	defer span.End()

	path, err := h.service.FindPath(ctx, c.Params("id"))
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to resolve category path", err)
		return WithError(c, err)
	}

	return OK(c, path)
}

type moveRequest struct {
	NewParentID  *string `json:"newParentId,omitempty"`
	NewSortOrder int     `json:"newSortOrder"`
}

// Move handles POST /api/categories/:id/move.
//
//	@Summary		Move a Category
//	@Description	Reparent a category to a new parent
//	@Tags			Categories
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	any
//	@Router			/api/categories/{id}/move [post]
func (h *CategoryHandler) Move(c *fiber.Ctx) error {
	ctx := c.UserContext()
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "handler.category.move")
	defer span.End()

	var req moveRequest
	if err := c.BodyParser(&req); err != nil {
		return WithError(c, apperr.BadRequest("request body is not valid JSON"))
	}

	moved, err := h.service.Move(ctx, c.Params("id"), req.NewParentID, req.NewSortOrder)
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to move category", err)
		return WithError(c, err)
	}

	return OK(c, moved)
}

// ValidateDeletion handles GET /api/categories/:id/deletion-check.
//
//	@Summary		Validate Category Deletion
//	@Description	Report whether a category can be deleted
//	@Tags			Categories
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	any
//	@Router			/api/categories/{id}/deletion-check [get]
func (h *CategoryHandler) ValidateDeletion(c *fiber.Ctx) error {
	ctx := c.UserContext()
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "handler.category.validate_deletion")
	defer span.End()

	check, err := h.service.ValidateDeletion(ctx, c.Params("id"))
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to validate category deletion", err)
		return WithError(c, err)
	}

	return OK(c, check)
}

// Delete handles DELETE /api/categories/:id, dispatching through the
// unified deletion facade with the kind selected by the "kind" query
// param.
//
//	@Summary		Delete a Category
//	@Description	Delete a category
//	@Tags			Categories
//	@Accept			json
//	@Produce		json
//	@Success		204	"No Content"
//	@Router			/api/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	ctx := c.UserContext()
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "handler.category.delete")
	defer span.End()

	kind, err := parseDeletionKind(c)
	if err != nil {
		return WithError(c, err)
	}

	if err := h.facade.DeleteCategory(ctx, c.Params("id"), kind); err != nil {
		telemetry.HandleSpanError(&span, "failed to delete category", err)
		return WithError(c, err)
	}

	return NoContent(c)
}
