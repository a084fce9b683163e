package in

import (
	"github.com/catalogsvc/catalog/internal/apperr"
	"github.com/catalogsvc/catalog/internal/deletion"
	"github.com/catalogsvc/catalog/internal/domain/metadata"
	"github.com/catalogsvc/catalog/internal/domain/product"
	"github.com/catalogsvc/catalog/internal/platform/auth"
	"github.com/catalogsvc/catalog/internal/platform/telemetry"
	"github.com/catalogsvc/catalog/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// ProductHandler adapts HTTP requests to ProductService, including its
// sub-aggregate operations, and to the unified deletion facade for
// delete/restore.
type ProductHandler struct {
	service *services.ProductService
	facade  *deletion.Facade
}

// NewProductHandler builds a ProductHandler bound to service and facade.
func NewProductHandler(service *services.ProductService, facade *deletion.Facade) *ProductHandler {
	return &ProductHandler{service: service, facade: facade}
}

func decimalQuery(c *fiber.Ctx, key string) (*decimal.Decimal, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, apperr.BadRequest(key + " must be a valid decimal")
	}

	return &d, nil
}

func buildProductFilter(c *fiber.Ctx) (product.Filter, error) {
	limit, offset := limitOffset(c)

	var categoryID *string
	if v := c.Query("categoryId"); v != "" {
		categoryID = &v
	}

	minPrice, err := decimalQuery(c, "minPrice")
	if err != nil {
		return product.Filter{}, err
	}

	maxPrice, err := decimalQuery(c, "maxPrice")
	if err != nil {
		return product.Filter{}, err
	}

	var isActive *bool
	if v := c.Query("isActive"); v != "" {
		b := c.QueryBool("isActive")
		isActive = &b
	}

	return product.Filter{
		IncludeDeleted: c.QueryBool("includeDeleted", false),
		Query:          c.Query("q"),
		CategoryID:     categoryID,
		MinPrice:       minPrice,
		MaxPrice:       maxPrice,
		IsActive:       isActive,
		Sort:           c.Query("sort"),
		Order:          c.Query("order"),
		Limit:          limit,
		Offset:         offset,
	}, nil
}

// FindAll handles GET /api/products.
//
//	@Summary		List Products
//	@Description	List all products
//	@Tags			Products
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	any
//	@Router			/api/products [get]
func (h *ProductHandler) FindAll(c *fiber.Ctx) error {
	ctx := c.UserContext()
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "handler.product.find_all")
	defer span.End()

	filter, err := buildProductFilter(c)
	if err != nil {
		return WithError(c, err)
	}

	products, err := h.service.FindAll(ctx, filter)
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to list products", err)
		return WithError(c, err)
	}

	return OK(c, products)
}

// FindDeleted handles GET /api/products/deleted.
//
//	@Summary		List Deleted Products
//	@Description	List logically-deleted products
//	@Tags			Products
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	any
//	@Router			/api/products/deleted [get]
func (h *ProductHandler) FindDeleted(c *fiber.Ctx) error {
	ctx := c.UserContext()
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "handler.product.find_deleted")
	defer span.End()

	filter, err := buildProductFilter(c)
	if err != nil {
		return WithError(c, err)
	}

	products, err := h.service.FindDeleted(ctx, filter)
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to list deleted products", err)
		return WithError(c, err)
	}

	return OK(c, products)
}

// FindByID handles GET /api/products/:id.
//
//	@Summary		Get a Product
//	@Description	Get a product by ID
//	@Tags			Products
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	any
//	@Router			/api/products/{id} [get]
func (h *ProductHandler) FindByID(c *fiber.Ctx) error {
	ctx := c.UserContext()
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "handler.product.find_by_id")
	defer span.End()

	found, err := h.service.FindByID(ctx, c.Params("id"), c.QueryBool("includeDeleted", false))
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to find product", err)
		return WithError(c, err)
	}

	return OK(c, found)
}

// Create handles POST /api/products.
//
//	@Summary		Create a Product
//	@Description	Create a new product
//	@Tags			Products
//	@Accept			json
//	@Produce		json
//	@Success		201	{object}	any
//	@Router			/api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	ctx := c.UserContext()
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "handler.product.create")
	defer span.End()

	var input product.CreateInput
	if err := c.BodyParser(&input); err != nil {
		return WithError(c, apperr.BadRequest("request body is not valid JSON"))
	}

	created, err := h.service.Create(ctx, input)
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to create product", err)
		return WithError(c, err)
	}

	return Created(c, created)
}

// Update handles PUT /api/products/:id.
//
//	@Summary		Update a Product
//	@Description	Update an existing product
//	@Tags			Products
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	any
//	@Router			/api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	ctx := c.UserContext()
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "handler.product.update")
	defer span.End()

	var input product.UpdateInput
	if err := c.BodyParser(&input); err != nil {
		return WithError(c, apperr.BadRequest("request body is not valid JSON"))
	}

	updated, err := h.service.Update(ctx, c.Params("id"), input)
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to update product", err)
		return WithError(c, err)
	}

	return OK(c, updated)
}

// GetMetadata handles GET /api/products/:id/metadata.
//
//	@Summary		Get Product Metadata
//	@Description	Get a product's free-form metadata
//	@Tags			Products
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	any
//	@Router			/api/products/{id}/metadata [get]
func (h *ProductHandler) GetMetadata(c *fiber.Ctx) error {
	ctx := c.UserContext()
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "handler.product.get_metadata")
	defer span.End()

	data, err := h.service.GetMetadata(ctx, c.Params("id"))
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to read product metadata", err)
		return WithError(c, err)
	}

	return OK(c, data)
}

// SetMetadata handles PUT /api/products/:id/metadata.
//
//	@Summary		Set Product Metadata
//	@Description	Replace a product's free-form metadata
//	@Tags			Products
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	any
//	@Router			/api/products/{id}/metadata [put]
func (h *ProductHandler) SetMetadata(c *fiber.Ctx) error {
	ctx := c.UserContext()
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "handler.product.set_metadata")
	defer span.End()

	var data metadata.JSON
	if err := c.BodyParser(&data); err != nil {
		return WithError(c, apperr.BadRequest("request body is not valid JSON"))
	}

	saved, err := h.service.SetMetadata(ctx, c.Params("id"), data)
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to set product metadata", err)
		return WithError(c, err)
	}

	return OK(c, saved)
}

// SetPrice handles PUT /api/products/:id/price.
//
//	@Summary		Set Product Price
//	@Description	Set a product's selling and list price
//	@Tags			Products
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	any
//	@Router			/api/products/{id}/price [put]
func (h *ProductHandler) SetPrice(c *fiber.Ctx) error {
	ctx := c.UserContext()
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "handler.product.set_price")
	defer span.End()

	var price product.Price
	if err := c.BodyParser(&price); err != nil {
		return WithError(c, apperr.BadRequest("request body is not valid JSON"))
	}

	price.ProductID = c.Params("id")

	saved, err := h.service.SetPrice(ctx, price)
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to set product price", err)
		return WithError(c, err)
	}

	return OK(c, saved)
}

// SetInventory handles PUT /api/products/:id/inventory.
//
//	@Summary		Set Product Inventory
//	@Description	Set a product's on-hand inventory count
//	@Tags			Products
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	any
//	@Router			/api/products/{id}/inventory [put]
func (h *ProductHandler) SetInventory(c *fiber.Ctx) error {
	ctx := c.UserContext()
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "handler.product.set_inventory")
	defer span.End()

	var inv product.Inventory
	if err := c.BodyParser(&inv); err != nil {
		return WithError(c, apperr.BadRequest("request body is not valid JSON"))
	}

	inv.ProductID = c.Params("id")

	saved, err := h.service.SetInventory(ctx, inv)
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to set product inventory", err)
		return WithError(c, err)
	}

	return OK(c, saved)
}

// AddImage handles POST /api/products/:id/images.
//
//	@Summary		Add a Product Image
//	@Description	Attach an image to a product
//	@Tags			Products
//	@Accept			json
//	@Produce		json
//	@Success		201	{object}	any
//	@Router			/api/products/{id}/images [post]
func (h *ProductHandler) AddImage(c *fiber.Ctx) error {
	ctx := c.UserContext()
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "handler.product.add_image")
	defer span.End()

	var img product.Image
	if err := c.BodyParser(&img); err != nil {
		return WithError(c, apperr.BadRequest("request body is not valid JSON"))
	}

	img.ProductID = c.Params("id")

	saved, err := h.service.AddImage(ctx, img)
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to add product image", err)
		return WithError(c, err)
	}

	return Created(c, saved)
}

// RemoveImage handles DELETE /api/products/:id/images/:imageId.
//
//	@Summary		Remove a Product Image
//	@Description	Detach an image from a product
//	@Tags			Products
//	@Accept			json
//	@Produce		json
//	@Success		204	"No Content"
//	@Router			/api/products/{id}/images/{imageId} [delete]
func (h *ProductHandler) RemoveImage(c *fiber.Ctx) error {
	ctx := c.UserContext()
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "handler.product.remove_image")
	defer span.End()

	if err := h.service.RemoveImage(ctx, c.Params("id"), c.Params("imageId")); err != nil {
		telemetry.HandleSpanError(&span, "failed to remove product image", err)
		return WithError(c, err)
	}

	return NoContent(c)
}

type tagsRequest struct {
	Tags []string `json:"tags"`
}

// SetTags handles PUT /api/products/:id/tags.
//
//	@Summary		Set Product Tags
//	@Description	Replace a product's tags
//	@Tags			Products
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	any
//	@Router			/api/products/{id}/tags [put]
func (h *ProductHandler) SetTags(c *fiber.Ctx) error {
	ctx := c.UserContext()
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "handler.product.set_tags")
	defer span.End()

	var req tagsRequest
	if err := c.BodyParser(&req); err != nil {
		return WithError(c, apperr.BadRequest("request body is not valid JSON"))
	}

	saved, err := h.service.SetTags(ctx, c.Params("id"), req.Tags)
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to set product tags", err)
		return WithError(c, err)
	}

	return OK(c, saved)
}

// SetAttributes handles PUT /api/products/:id/attributes.
//
//	@Summary		Set Product Attributes
//	@Description	Replace a product's variant attributes
//	@Tags			Products
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	any
//	@Router			/api/products/{id}/attributes [put]
func (h *ProductHandler) SetAttributes(c *fiber.Ctx) error {
	ctx := c.UserContext()
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "handler.product.set_attributes")
	defer span.End()

	var attrs map[string]string
	if err := c.BodyParser(&attrs); err != nil {
		return WithError(c, apperr.BadRequest("request body is not valid JSON"))
	}

	saved, err := h.service.SetAttributes(ctx, c.Params("id"), attrs)
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to set product attributes", err)
		return WithError(c, err)
	}

	return OK(c, saved)
}

// FindHistory handles GET /api/products/:id/history.
//
//	@Summary		List Product History
//	@Description	List a product's change history
//	@Tags			Products
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	any
//	@Router			/api/products/{id}/history [get]
func (h *ProductHandler) FindHistory(c *fiber.Ctx) error {
	ctx := c.UserContext()
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "handler.product.find_history")
	defer span.End()

	history, err := h.service.FindHistory(ctx, c.Params("id"))
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to list product history", err)
		return WithError(c, err)
	}

	return OK(c, history)
}

type appendHistoryRequest struct {
	Field    string `json:"field"`
	OldValue string `json:"oldValue"`
	NewValue string `json:"newValue"`
}

// AppendHistory handles POST /api/products/:id/history.
//
//	@Summary		Append Product History
//	@Description	Append an entry to a product's change history
//	@Tags			Products
//	@Accept			json
//	@Produce		json
//	@Success		201	{object}	any
//	@Router			/api/products/{id}/history [post]
func (h *ProductHandler) AppendHistory(c *fiber.Ctx) error {
	ctx := c.UserContext()
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "handler.product.append_history")
	defer span.End()

	var req appendHistoryRequest
	if err := c.BodyParser(&req); err != nil {
		return WithError(c, apperr.BadRequest("request body is not valid JSON"))
	}

	event, err := h.service.AppendHistory(ctx, c.Params("id"), req.Field, req.OldValue, req.NewValue, requestActor(c))
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to append product history", err)
		return WithError(c, err)
	}

	return Created(c, event)
}

// ValidateDeletion handles GET /api/products/:id/deletion-check.
//
//	@Summary		Validate Product Deletion
//	@Description	Report whether a product can be deleted
//	@Tags			Products
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	any
//	@Router			/api/products/{id}/deletion-check [get]
func (h *ProductHandler) ValidateDeletion(c *fiber.Ctx) error {
	ctx := c.UserContext()
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "handler.product.validate_deletion")
	defer span.End()

	check, err := h.service.ValidateDeletion(ctx, c.Params("id"))
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to validate product deletion", err)
		return WithError(c, err)
	}

	return OK(c, check)
}

type batchDeleteRequest struct {
	IDs        []string `json:"ids"`
	IsPhysical bool     `json:"isPhysical"`
}

// DeleteBatch handles DELETE /api/products/batch, running the unified
// deletion facade against each id independently — per-item atomic, no
// cross-item transaction — and reporting each item's own outcome.
//
//	@Summary		Batch Delete Products
//	@Description	Delete multiple products independently, reporting each item's own outcome
//	@Tags			Products
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	any
//	@Router			/api/products/batch [delete]
func (h *ProductHandler) DeleteBatch(c *fiber.Ctx) error {
	ctx := c.UserContext()
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "handler.product.delete_batch")
	defer span.End()

	var req batchDeleteRequest
	if err := c.BodyParser(&req); err != nil {
		return WithError(c, apperr.BadRequest("request body is not valid JSON"))
	}

	if len(req.IDs) == 0 {
		return WithError(c, apperr.BadRequest("ids must not be empty"))
	}

	kind := deletion.KindLogical
	if req.IsPhysical {
		kind = deletion.KindPhysical
	}

	report := h.facade.DeleteProductsBatch(ctx, req.IDs, kind, requestActor(c), c.Query("reason"), c.QueryBool("force", false))

	return OK(c, report)
}

// requestActor resolves the acting principal for audit trails: the
// authenticated subject if present, else the "actor" query param, else
// "unknown".
func requestActor(c *fiber.Ctx) string {
	if claims, ok := auth.FromContext(c); ok && claims.Subject != "" {
		return claims.Subject
	}

	if actor := c.Query("actor"); actor != "" {
		return actor
	}

	return "unknown"
}

// Delete handles DELETE /api/products/:id, dispatching through the
// unified deletion facade. "reason" is recorded on the deletion-log
// snapshot for a physical delete; "force" bypasses a validate_deletion
// blocker.
//
//	@Summary		Delete a Product
//	@Description	Delete a product logically or physically
//	@Tags			Products
//	@Accept			json
//	@Produce		json
//	@Success		204	"No Content"
//	@Router			/api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	ctx := c.UserContext()
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "handler.product.delete")
	defer span.End()

	kind, err := parseDeletionKind(c)
	if err != nil {
		return WithError(c, err)
	}

	reason := c.Query("reason")
	force := c.QueryBool("force", false)

	if err := h.facade.DeleteProduct(ctx, c.Params("id"), kind, requestActor(c), reason, force); err != nil {
		telemetry.HandleSpanError(&span, "failed to delete product", err)
		return WithError(c, err)
	}

	return NoContent(c)
}
