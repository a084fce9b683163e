package in

import (
	"github.com/catalogsvc/catalog/internal/apperr"
	"github.com/catalogsvc/catalog/internal/domain/user"
	"github.com/catalogsvc/catalog/internal/platform/telemetry"
	"github.com/catalogsvc/catalog/internal/services"
	"github.com/gofiber/fiber/v2"
)

// UserHandler adapts HTTP requests to UserService. Users sit outside
// the unified deletion subsystem, so Delete is a plain hard delete
// here rather than routed through the deletion facade.
type UserHandler struct {
	service *services.UserService
}

// NewUserHandler builds a UserHandler bound to service.
func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// FindAll handles GET /api/users.
//
//	@Summary		List Users
//	@Description	List all users
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	any
//	@Router			/api/users [get]
func (h *UserHandler) FindAll(c *fiber.Ctx) error {
	ctx := c.UserContext()
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "handler.user.find_all")
	defer span.End()

	limit, offset := limitOffset(c)

	users, err := h.service.FindAll(ctx, user.Filter{Limit: limit, Offset: offset})
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to list users", err)
		return WithError(c, err)
	}

	return OK(c, users)
}

// FindByID handles GET /api/users/:id.
//
//	@Summary		Get a User
//	@Description	Get a user by ID
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	any
//	@Router			/api/users/{id} [get]
func (h *UserHandler) FindByID(c *fiber.Ctx) error {
	ctx := c.UserContext()
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "handler.user.find_by_id")
	defer span.End()

	found, err := h.service.FindByID(ctx, c.Params("id"))
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to find user", err)
		return WithError(c, err)
	}

	return OK(c, found)
}

// Create handles POST /api/users.
//
//	@Summary		Create a User
//	@Description	Create a new user
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Success		201	{object}	any
//	@Router			/api/users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	ctx := c.UserContext()
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "handler.user.create")
	defer span.End()

	var input user.CreateInput
	if err := c.BodyParser(&input); err != nil {
		return WithError(c, apperr.BadRequest("request body is not valid JSON"))
	}

	created, err := h.service.Create(ctx, input)
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to create user", err)
		return WithError(c, err)
	}

	return Created(c, created)
}

// Update handles PATCH /api/users/:id.
//
//	@Summary		Update a User
//	@Description	Partially update an existing user
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	any
//	@Router			/api/users/{id} [patch]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	ctx := c.UserContext()
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "handler.user.update")
	defer span.End()

	var input user.UpdateInput
	if err := c.BodyParser(&input); err != nil {
		return WithError(c, apperr.BadRequest("request body is not valid JSON"))
	}

	updated, err := h.service.Update(ctx, c.Params("id"), input)
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to update user", err)
		return WithError(c, err)
	}

	return OK(c, updated)
}

// Delete handles DELETE /api/users/:id. Users support only a hard
// delete; there is no logical/restore variant and no deletion-check.
//
//	@Summary		Delete a User
//	@Description	Delete a user
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Success		204	"No Content"
//	@Router			/api/users/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	ctx := c.UserContext()
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "handler.user.delete")
	defer span.End()

	if err := h.service.Delete(ctx, c.Params("id")); err != nil {
		telemetry.HandleSpanError(&span, "failed to delete user", err)
		return WithError(c, err)
	}

	return NoContent(c)
}
