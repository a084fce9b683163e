package postgres

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/bxcodec/dbresolver/v2"
	"github.com/catalogsvc/catalog/internal/apperr"
	"github.com/catalogsvc/catalog/internal/domain/product"
	"github.com/catalogsvc/catalog/internal/domain/shared"
	"github.com/catalogsvc/catalog/internal/platform/telemetry"
	"github.com/google/uuid"
)

// ProductRepository is the Postgres-backed implementation of
// product.Repository and its owned sub-aggregates.
type ProductRepository struct {
	db dbresolver.DB
}

// NewProductRepository builds a ProductRepository over an
// already-connected pool.
func NewProductRepository(db dbresolver.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

const productColumns = "id, sku, name, description, status, category_id, length, width, height, weight, requires_box, freight_class, deleted, created_at, updated_at"

func scanProduct(row interface{ Scan(...any) error }) (product.Product, error) {
	var (
		p            product.Product
		sku          string
		desc         *string
		categoryID   *string
		freightClass *string
	)

	if err := row.Scan(&p.ID, &sku, &p.Name, &desc, &p.Status, &categoryID,
		&p.Dimensions.Length, &p.Dimensions.Width, &p.Dimensions.Height,
		&p.Shipping.Weight, &p.Shipping.RequiresBox, &freightClass,
		&p.Deleted, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return product.Product{}, err
	}

	s, err := shared.NewSKU(sku)
	if err != nil {
		return product.Product{}, err
	}

	p.SKU = s
	p.Description = desc
	p.CategoryID = categoryID
	p.Shipping.FreightClass = freightClass

	return p, nil
}

func (r *ProductRepository) loadAggregate(ctx context.Context, p product.Product) (product.Aggregate, error) {
	agg := product.Aggregate{Product: p}

	price, err := r.loadPrice(ctx, p.ID)
	if err != nil {
		return product.Aggregate{}, err
	}
	agg.Price = price

	inv, err := r.loadInventory(ctx, p.ID)
	if err != nil {
		return product.Aggregate{}, err
	}
	agg.Inventory = inv

	images, err := r.loadImages(ctx, p.ID)
	if err != nil {
		return product.Aggregate{}, err
	}
	agg.Images = images

	tags, err := r.loadTags(ctx, p.ID)
	if err != nil {
		return product.Aggregate{}, err
	}
	agg.Tags = tags

	attrs, err := r.loadAttributes(ctx, p.ID)
	if err != nil {
		return product.Aggregate{}, err
	}
	agg.Attributes = attrs

	return agg, nil
}

func (r *ProductRepository) loadPrice(ctx context.Context, productID string) (*product.Price, error) {
	query, args, err := squirrel.Select("product_id", "selling", "list_price", "discount", "currency", "tax_included", "effective_from", "effective_until").
		From("product_prices").
		Where(squirrel.Eq{"product_id": productID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, apperr.Internal("product", err)
	}

	var price product.Price

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&price.ProductID, &price.Selling, &price.List, &price.Discount,
		&price.Currency, &price.TaxIncluded, &price.EffectiveFrom, &price.EffectiveUntil)
	if err != nil {
		if errSQLNoRows(err) {
			return nil, nil
		}

		return nil, apperr.Internal("product", err)
	}

	return &price, nil
}

func (r *ProductRepository) loadInventory(ctx context.Context, productID string) (*product.Inventory, error) {
	query, args, err := squirrel.Select("product_id", "quantity", "reserved", "alert_threshold", "track", "backorder").
		From("product_inventory").
		Where(squirrel.Eq{"product_id": productID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, apperr.Internal("product", err)
	}

	var inv product.Inventory

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&inv.ProductID, &inv.Quantity, &inv.Reserved, &inv.AlertThreshold, &inv.Track, &inv.Backorder)
	if err != nil {
		if errSQLNoRows(err) {
			return nil, nil
		}

		return nil, apperr.Internal("product", err)
	}

	return &inv, nil
}

func (r *ProductRepository) loadImages(ctx context.Context, productID string) ([]product.Image, error) {
	query, args, err := squirrel.Select("id", "product_id", "url", "alt", "sort_order", "is_main").
		From("product_images").
		Where(squirrel.Eq{"product_id": productID}).
		OrderBy("sort_order ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, apperr.Internal("product", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperr.Internal("product", err)
	}
	defer rows.Close()

	images := make([]product.Image, 0)

	for rows.Next() {
		var img product.Image
		if err := rows.Scan(&img.ID, &img.ProductID, &img.URL, &img.Alt, &img.SortOrder, &img.IsMain); err != nil {
			return nil, apperr.Internal("product", err)
		}

		images = append(images, img)
	}

	return images, rows.Err()
}

func (r *ProductRepository) loadTags(ctx context.Context, productID string) ([]product.Tag, error) {
	query, args, err := squirrel.Select("product_id", "value").
		From("product_tags").
		Where(squirrel.Eq{"product_id": productID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, apperr.Internal("product", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperr.Internal("product", err)
	}
	defer rows.Close()

	tags := make([]product.Tag, 0)

	for rows.Next() {
		var t product.Tag
		if err := rows.Scan(&t.ProductID, &t.Value); err != nil {
			return nil, apperr.Internal("product", err)
		}

		tags = append(tags, t)
	}

	return tags, rows.Err()
}

func (r *ProductRepository) loadAttributes(ctx context.Context, productID string) ([]product.Attribute, error) {
	query, args, err := squirrel.Select("product_id", "key", "value").
		From("product_attributes").
		Where(squirrel.Eq{"product_id": productID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, apperr.Internal("product", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperr.Internal("product", err)
	}
	defer rows.Close()

	attrs := make([]product.Attribute, 0)

	for rows.Next() {
		var a product.Attribute
		if err := rows.Scan(&a.ProductID, &a.Key, &a.Value); err != nil {
			return nil, apperr.Internal("product", err)
		}

		attrs = append(attrs, a)
	}

	return attrs, rows.Err()
}

func errSQLNoRows(err error) bool {
	return err == sql.ErrNoRows
}

// FindAll implements product.Repository.
func (r *ProductRepository) FindAll(ctx context.Context, filter product.Filter) ([]product.Aggregate, error) {
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "postgres.product.find_all")
	defer span.End()

	builder := squirrel.Select(prefixColumns("p", productColumns)).
		From("products p").
		PlaceholderFormat(squirrel.Dollar)

	if !filter.IncludeDeleted {
		builder = builder.Where(squirrel.Eq{"p.deleted": false})
	}

	if filter.CategoryID != nil {
		builder = builder.Where(squirrel.Eq{"p.category_id": *filter.CategoryID})
	}

	if filter.IsActive != nil {
		if *filter.IsActive {
			builder = builder.Where(squirrel.Eq{"p.status": "Active"})
		} else {
			builder = builder.Where(squirrel.NotEq{"p.status": "Active"})
		}
	}

	if filter.Query != "" {
		builder = builder.Where(squirrel.ILike{"p.name": "%" + filter.Query + "%"})
	}

	if filter.MinPrice != nil || filter.MaxPrice != nil {
		builder = builder.Join("product_prices pp ON pp.product_id = p.id")

		if filter.MinPrice != nil {
			builder = builder.Where(squirrel.GtOrEq{"pp.selling": filter.MinPrice})
		}

		if filter.MaxPrice != nil {
			builder = builder.Where(squirrel.LtOrEq{"pp.selling": filter.MaxPrice})
		}
	}

	sortColumn := "p.name"
	if filter.Sort == "created_at" {
		sortColumn = "p.created_at"
	}

	order := "ASC"
	if filter.Order == "desc" {
		order = "DESC"
	}

	builder = builder.OrderBy(sortColumn + " " + order)

	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}

	if filter.Offset > 0 {
		builder = builder.Offset(uint64(filter.Offset))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to build query", err)
		return nil, apperr.Internal("product", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to execute query", err)
		return nil, translatePGError(err, "product", "")
	}
	defer rows.Close()

	products := make([]product.Product, 0)

	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			telemetry.HandleSpanError(&span, "failed to scan row", err)
			return nil, apperr.Internal("product", err)
		}

		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		telemetry.HandleSpanError(&span, "failed to iterate rows", err)
		return nil, apperr.Internal("product", err)
	}

	aggregates := make([]product.Aggregate, 0, len(products))

	for _, p := range products {
		agg, err := r.loadAggregate(ctx, p)
		if err != nil {
			telemetry.HandleSpanError(&span, "failed to load sub-aggregates", err)
			return nil, err
		}

		aggregates = append(aggregates, agg)
	}

	return aggregates, nil
}

// FindByID implements product.Repository.
func (r *ProductRepository) FindByID(ctx context.Context, id string, includeDeleted bool) (*product.Aggregate, error) {
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "postgres.product.find_by_id")
	defer span.End()

	builder := squirrel.Select(productColumns).
		From("products").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	if !includeDeleted {
		builder = builder.Where(squirrel.Eq{"deleted": false})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to build query", err)
		return nil, apperr.Internal("product", err)
	}

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to scan row", err)
		return nil, translatePGError(err, "product", id)
	}

	agg, err := r.loadAggregate(ctx, p)
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to load sub-aggregates", err)
		return nil, err
	}

	return &agg, nil
}

// Create implements product.Repository.
func (r *ProductRepository) Create(ctx context.Context, agg product.Aggregate) (product.Aggregate, error) {
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "postgres.product.create")
	defer span.End()

	id := uuid.NewString()
	p := agg.Product

	query, args, err := squirrel.Insert("products").
		Columns("id", "sku", "name", "description", "status", "category_id", "length", "width", "height", "weight", "requires_box", "freight_class").
		Values(id, p.SKU.String(), p.Name, p.Description, p.Status, p.CategoryID,
			p.Dimensions.Length, p.Dimensions.Width, p.Dimensions.Height,
			p.Shipping.Weight, p.Shipping.RequiresBox, p.Shipping.FreightClass).
		Suffix("RETURNING " + productColumns).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to build query", err)
		return product.Aggregate{}, apperr.Internal("product", err)
	}

	created, err := scanProduct(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to execute insert", err)
		return product.Aggregate{}, translatePGError(err, "product", "")
	}

	return product.Aggregate{Product: created}, nil
}

// Update implements product.Repository.
func (r *ProductRepository) Update(ctx context.Context, p product.Product) (product.Product, error) {
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "postgres.product.update")
	defer span.End()

	query, args, err := squirrel.Update("products").
		Set("name", p.Name).
		Set("description", p.Description).
		Set("status", p.Status).
		Set("category_id", p.CategoryID).
		Set("length", p.Dimensions.Length).
		Set("width", p.Dimensions.Width).
		Set("height", p.Dimensions.Height).
		Set("weight", p.Shipping.Weight).
		Set("requires_box", p.Shipping.RequiresBox).
		Set("freight_class", p.Shipping.FreightClass).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": p.ID, "deleted": false}).
		Suffix("RETURNING " + productColumns).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to build query", err)
		return product.Product{}, apperr.Internal("product", err)
	}

	updated, err := scanProduct(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to execute update", err)
		return product.Product{}, translatePGError(err, "product", p.ID)
	}

	return updated, nil
}

func (r *ProductRepository) setDeleted(ctx context.Context, id string, deleted, fromDeleted bool) error {
	query, args, err := squirrel.Update("products").
		Set("deleted", deleted).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id, "deleted": fromDeleted}).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return apperr.Internal("product", err)
	}

	var returnedID string
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&returnedID); err != nil {
		return translatePGError(err, "product", id)
	}

	return nil
}

// LogicalDelete implements product.Repository.
func (r *ProductRepository) LogicalDelete(ctx context.Context, id string) error {
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "postgres.product.logical_delete")
	defer span.End()

	if err := r.setDeleted(ctx, id, true, false); err != nil {
		telemetry.HandleSpanError(&span, "failed to logically delete product", err)
		return err
	}

	return nil
}

// Restore implements product.Repository.
func (r *ProductRepository) Restore(ctx context.Context, id string) error {
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "postgres.product.restore")
	defer span.End()

	if err := r.setDeleted(ctx, id, false, true); err != nil {
		telemetry.HandleSpanError(&span, "failed to restore product", err)
		return err
	}

	return nil
}

// PhysicalDelete implements product.Repository. The sub-aggregate tables
// carry ON DELETE CASCADE, so a single delete on products removes history,
// attributes, tags, images, inventory and prices along with the row,
// consistent with the removal order documented on the interface.
func (r *ProductRepository) PhysicalDelete(ctx context.Context, id string) error {
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "postgres.product.physical_delete")
	defer span.End()

	query, args, err := squirrel.Delete("products").
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to build query", err)
		return apperr.Internal("product", err)
	}

	var returnedID string
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&returnedID); err != nil {
		telemetry.HandleSpanError(&span, "failed to execute delete", err)
		return translatePGError(err, "product", id)
	}

	return nil
}

// ValidateDeletion implements product.Repository.
func (r *ProductRepository) ValidateDeletion(ctx context.Context, id string) (product.DeletionCheck, error) {
	agg, err := r.FindByID(ctx, id, true)
	if err != nil {
		return product.DeletionCheck{}, err
	}

	return product.DeletionCheck{
		CanDelete: true,
		RelatedCounts: map[string]int{
			"images":     len(agg.Images),
			"tags":       len(agg.Tags),
			"attributes": len(agg.Attributes),
		},
	}, nil
}

// SetPrice implements product.Repository.
func (r *ProductRepository) SetPrice(ctx context.Context, price product.Price) (product.Price, error) {
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "postgres.product.set_price")
	defer span.End()

	query, args, err := squirrel.Insert("product_prices").
		Columns("product_id", "selling", "list_price", "discount", "currency", "tax_included", "effective_from", "effective_until").
		Values(price.ProductID, price.Selling, price.List, price.Discount, price.Currency, price.TaxIncluded, price.EffectiveFrom, price.EffectiveUntil).
		Suffix(`ON CONFLICT (product_id) DO UPDATE SET
			selling = EXCLUDED.selling,
			list_price = EXCLUDED.list_price,
			discount = EXCLUDED.discount,
			currency = EXCLUDED.currency,
			tax_included = EXCLUDED.tax_included,
			effective_from = EXCLUDED.effective_from,
			effective_until = EXCLUDED.effective_until
		RETURNING product_id, selling, list_price, discount, currency, tax_included, effective_from, effective_until`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to build query", err)
		return product.Price{}, apperr.Internal("product", err)
	}

	var result product.Price

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&result.ProductID, &result.Selling, &result.List, &result.Discount,
		&result.Currency, &result.TaxIncluded, &result.EffectiveFrom, &result.EffectiveUntil)
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to execute upsert", err)
		return product.Price{}, translatePGError(err, "product", price.ProductID)
	}

	return result, nil
}

// SetInventory implements product.Repository.
func (r *ProductRepository) SetInventory(ctx context.Context, inv product.Inventory) (product.Inventory, error) {
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "postgres.product.set_inventory")
	defer span.End()

	query, args, err := squirrel.Insert("product_inventory").
		Columns("product_id", "quantity", "reserved", "alert_threshold", "track", "backorder").
		Values(inv.ProductID, inv.Quantity, inv.Reserved, inv.AlertThreshold, inv.Track, inv.Backorder).
		Suffix(`ON CONFLICT (product_id) DO UPDATE SET
			quantity = EXCLUDED.quantity,
			reserved = EXCLUDED.reserved,
			alert_threshold = EXCLUDED.alert_threshold,
			track = EXCLUDED.track,
			backorder = EXCLUDED.backorder
		RETURNING product_id, quantity, reserved, alert_threshold, track, backorder`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to build query", err)
		return product.Inventory{}, apperr.Internal("product", err)
	}

	var result product.Inventory

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&result.ProductID, &result.Quantity, &result.Reserved, &result.AlertThreshold, &result.Track, &result.Backorder)
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to execute upsert", err)
		return product.Inventory{}, translatePGError(err, "product", inv.ProductID)
	}

	return result, nil
}

// AddImage implements product.Repository.
func (r *ProductRepository) AddImage(ctx context.Context, img product.Image) (product.Image, error) {
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "postgres.product.add_image")
	defer span.End()

	id := uuid.NewString()

	query, args, err := squirrel.Insert("product_images").
		Columns("id", "product_id", "url", "alt", "sort_order", "is_main").
		Values(id, img.ProductID, img.URL, img.Alt, img.SortOrder, img.IsMain).
		Suffix("RETURNING id, product_id, url, alt, sort_order, is_main").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to build query", err)
		return product.Image{}, apperr.Internal("product", err)
	}

	var result product.Image

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&result.ID, &result.ProductID, &result.URL, &result.Alt, &result.SortOrder, &result.IsMain)
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to execute insert", err)
		return product.Image{}, translatePGError(err, "product", img.ProductID)
	}

	return result, nil
}

// RemoveImage implements product.Repository.
func (r *ProductRepository) RemoveImage(ctx context.Context, productID, imageID string) error {
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "postgres.product.remove_image")
	defer span.End()

	query, args, err := squirrel.Delete("product_images").
		Where(squirrel.Eq{"id": imageID, "product_id": productID}).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to build query", err)
		return apperr.Internal("product", err)
	}

	var returnedID string
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&returnedID); err != nil {
		telemetry.HandleSpanError(&span, "failed to execute delete", err)
		return translatePGError(err, "image", imageID)
	}

	return nil
}

// SetTags implements product.Repository, replacing the full tag set for
// productID inside a transaction.
func (r *ProductRepository) SetTags(ctx context.Context, productID string, tags []string) ([]product.Tag, error) {
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "postgres.product.set_tags")
	defer span.End()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to begin transaction", err)
		return nil, apperr.Internal("product", err)
	}
	defer tx.Rollback() //nolint:errcheck

	delQuery, delArgs, err := squirrel.Delete("product_tags").
		Where(squirrel.Eq{"product_id": productID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, apperr.Internal("product", err)
	}

	if _, err := tx.ExecContext(ctx, delQuery, delArgs...); err != nil {
		telemetry.HandleSpanError(&span, "failed to clear tags", err)
		return nil, translatePGError(err, "product", productID)
	}

	result := make([]product.Tag, 0, len(tags))

	for _, value := range tags {
		insQuery, insArgs, err := squirrel.Insert("product_tags").
			Columns("product_id", "value").
			Values(productID, value).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return nil, apperr.Internal("product", err)
		}

		if _, err := tx.ExecContext(ctx, insQuery, insArgs...); err != nil {
			telemetry.HandleSpanError(&span, "failed to insert tag", err)
			return nil, translatePGError(err, "product", productID)
		}

		result = append(result, product.Tag{ProductID: productID, Value: value})
	}

	if err := tx.Commit(); err != nil {
		telemetry.HandleSpanError(&span, "failed to commit transaction", err)
		return nil, apperr.Internal("product", err)
	}

	return result, nil
}

// SetAttributes implements product.Repository, replacing the full
// attribute set for productID inside a transaction.
func (r *ProductRepository) SetAttributes(ctx context.Context, productID string, attrs map[string]string) ([]product.Attribute, error) {
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "postgres.product.set_attributes")
	defer span.End()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to begin transaction", err)
		return nil, apperr.Internal("product", err)
	}
	defer tx.Rollback() //nolint:errcheck

	delQuery, delArgs, err := squirrel.Delete("product_attributes").
		Where(squirrel.Eq{"product_id": productID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, apperr.Internal("product", err)
	}

	if _, err := tx.ExecContext(ctx, delQuery, delArgs...); err != nil {
		telemetry.HandleSpanError(&span, "failed to clear attributes", err)
		return nil, translatePGError(err, "product", productID)
	}

	result := make([]product.Attribute, 0, len(attrs))

	for key, value := range attrs {
		insQuery, insArgs, err := squirrel.Insert("product_attributes").
			Columns("product_id", "key", "value").
			Values(productID, key, value).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return nil, apperr.Internal("product", err)
		}

		if _, err := tx.ExecContext(ctx, insQuery, insArgs...); err != nil {
			telemetry.HandleSpanError(&span, "failed to insert attribute", err)
			return nil, translatePGError(err, "product", productID)
		}

		result = append(result, product.Attribute{ProductID: productID, Key: key, Value: value})
	}

	if err := tx.Commit(); err != nil {
		telemetry.HandleSpanError(&span, "failed to commit transaction", err)
		return nil, apperr.Internal("product", err)
	}

	return result, nil
}

// AppendHistory implements product.Repository.
func (r *ProductRepository) AppendHistory(ctx context.Context, event product.HistoryEvent) (product.HistoryEvent, error) {
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "postgres.product.append_history")
	defer span.End()

	id := uuid.NewString()

	query, args, err := squirrel.Insert("product_history").
		Columns("id", "product_id", "field", "old_value", "new_value", "actor").
		Values(id, event.ProductID, event.Field, event.OldValue, event.NewValue, event.Actor).
		Suffix("RETURNING id, product_id, field, old_value, new_value, actor, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to build query", err)
		return product.HistoryEvent{}, apperr.Internal("product", err)
	}

	var result product.HistoryEvent

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&result.ID, &result.ProductID, &result.Field, &result.OldValue, &result.NewValue, &result.Actor, &result.CreatedAt)
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to execute insert", err)
		return product.HistoryEvent{}, translatePGError(err, "product", event.ProductID)
	}

	return result, nil
}

// FindHistory implements product.Repository.
func (r *ProductRepository) FindHistory(ctx context.Context, productID string) ([]product.HistoryEvent, error) {
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "postgres.product.find_history")
	defer span.End()

	query, args, err := squirrel.Select("id", "product_id", "field", "old_value", "new_value", "actor", "created_at").
		From("product_history").
		Where(squirrel.Eq{"product_id": productID}).
		OrderBy("created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to build query", err)
		return nil, apperr.Internal("product", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to execute query", err)
		return nil, translatePGError(err, "product", productID)
	}
	defer rows.Close()

	events := make([]product.HistoryEvent, 0)

	for rows.Next() {
		var e product.HistoryEvent
		if err := rows.Scan(&e.ID, &e.ProductID, &e.Field, &e.OldValue, &e.NewValue, &e.Actor, &e.CreatedAt); err != nil {
			telemetry.HandleSpanError(&span, "failed to scan row", err)
			return nil, apperr.Internal("product", err)
		}

		events = append(events, e)
	}

	return events, rows.Err()
}

// FindDeleted implements product.Repository.
func (r *ProductRepository) FindDeleted(ctx context.Context, filter product.Filter) ([]product.Aggregate, error) {
	f := filter
	f.IncludeDeleted = true

	all, err := r.FindAll(ctx, f)
	if err != nil {
		return nil, err
	}

	deleted := make([]product.Aggregate, 0, len(all))

	for _, agg := range all {
		if agg.Product.Deleted {
			deleted = append(deleted, agg)
		}
	}

	return deleted, nil
}

func prefixColumns(alias, columns string) []string {
	parts := splitColumns(columns)
	out := make([]string, len(parts))

	for i, c := range parts {
		out[i] = alias + "." + c
	}

	return out
}

func splitColumns(columns string) []string {
	var out []string

	start := 0

	for i := 0; i <= len(columns); i++ {
		if i == len(columns) || columns[i] == ',' {
			field := columns[start:i]
			for len(field) > 0 && field[0] == ' ' {
				field = field[1:]
			}
			out = append(out, field)
			start = i + 1
		}
	}

	return out
}
