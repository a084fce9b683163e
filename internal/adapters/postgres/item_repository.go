package postgres

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/bxcodec/dbresolver/v2"
	"github.com/catalogsvc/catalog/internal/apperr"
	"github.com/catalogsvc/catalog/internal/domain/item"
	"github.com/catalogsvc/catalog/internal/platform/telemetry"
)

// ItemRepository is the Postgres-backed implementation of
// item.Repository.
type ItemRepository struct {
	db dbresolver.DB
}

// NewItemRepository builds an ItemRepository over an already-connected
// pool.
func NewItemRepository(db dbresolver.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

func scanItem(row interface{ Scan(...any) error }) (item.Item, error) {
	var (
		i   item.Item
		desc sql.NullString
	)

	if err := row.Scan(&i.ID, &i.Name, &desc, &i.Deleted, &i.CreatedAt, &i.UpdatedAt); err != nil {
		return item.Item{}, err
	}

	if desc.Valid {
		i.Description = &desc.String
	}

	return i, nil
}

// FindAll implements item.Repository.
func (r *ItemRepository) FindAll(ctx context.Context, filter item.Filter) ([]item.Item, error) {
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "postgres.item.find_all")
	defer span.End()

	builder := squirrel.Select("id", "name", "description", "deleted", "created_at", "updated_at").
		From("items").
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if !filter.IncludeDeleted {
		builder = builder.Where(squirrel.Eq{"deleted": false})
	}

	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}

	if filter.Offset > 0 {
		builder = builder.Offset(uint64(filter.Offset))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to build query", err)
		return nil, apperr.Internal("item", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to execute query", err)
		return nil, translatePGError(err, "item", "")
	}
	defer rows.Close()

	items := make([]item.Item, 0)

	for rows.Next() {
		i, err := scanItem(rows)
		if err != nil {
			telemetry.HandleSpanError(&span, "failed to scan row", err)
			return nil, apperr.Internal("item", err)
		}

		items = append(items, i)
	}

	if err := rows.Err(); err != nil {
		telemetry.HandleSpanError(&span, "failed to iterate rows", err)
		return nil, apperr.Internal("item", err)
	}

	return items, nil
}

// FindByID implements item.Repository.
func (r *ItemRepository) FindByID(ctx context.Context, id uint64, includeDeleted bool) (*item.Item, error) {
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "postgres.item.find_by_id")
	defer span.End()

	builder := squirrel.Select("id", "name", "description", "deleted", "created_at", "updated_at").
		From("items").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	if !includeDeleted {
		builder = builder.Where(squirrel.Eq{"deleted": false})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to build query", err)
		return nil, apperr.Internal("item", err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	i, err := scanItem(row)
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to scan row", err)
		return nil, translatePGError(err, "item", formatUint(id))
	}

	return &i, nil
}

// Create implements item.Repository.
func (r *ItemRepository) Create(ctx context.Context, i item.Item) (item.Item, error) {
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "postgres.item.create")
	defer span.End()

	query, args, err := squirrel.Insert("items").
		Columns("name", "description").
		Values(i.Name, i.Description).
		Suffix("RETURNING id, name, description, deleted, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to build query", err)
		return item.Item{}, apperr.Internal("item", err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	created, err := scanItem(row)
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to execute insert", err)
		return item.Item{}, translatePGError(err, "item", "")
	}

	return created, nil
}

// Update implements item.Repository.
func (r *ItemRepository) Update(ctx context.Context, i item.Item) (item.Item, error) {
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "postgres.item.update")
	defer span.End()

	query, args, err := squirrel.Update("items").
		Set("name", i.Name).
		Set("description", i.Description).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": i.ID, "deleted": false}).
		Suffix("RETURNING id, name, description, deleted, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to build query", err)
		return item.Item{}, apperr.Internal("item", err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	updated, err := scanItem(row)
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to execute update", err)
		return item.Item{}, translatePGError(err, "item", formatUint(i.ID))
	}

	return updated, nil
}

func (r *ItemRepository) setDeleted(ctx context.Context, id uint64, deleted, fromDeleted bool) error {
	query, args, err := squirrel.Update("items").
		Set("deleted", deleted).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id, "deleted": fromDeleted}).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return apperr.Internal("item", err)
	}

	var returnedID uint64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&returnedID); err != nil {
		return translatePGError(err, "item", formatUint(id))
	}

	return nil
}

// LogicalDelete implements item.Repository.
func (r *ItemRepository) LogicalDelete(ctx context.Context, id uint64) error {
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "postgres.item.logical_delete")
	defer span.End()

	if err := r.setDeleted(ctx, id, true, false); err != nil {
		telemetry.HandleSpanError(&span, "failed to logically delete item", err)
		return err
	}

	return nil
}

// Restore implements item.Repository.
func (r *ItemRepository) Restore(ctx context.Context, id uint64) error {
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "postgres.item.restore")
	defer span.End()

	if err := r.setDeleted(ctx, id, false, true); err != nil {
		telemetry.HandleSpanError(&span, "failed to restore item", err)
		return err
	}

	return nil
}

// PhysicalDelete implements item.Repository.
func (r *ItemRepository) PhysicalDelete(ctx context.Context, id uint64) error {
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "postgres.item.physical_delete")
	defer span.End()

	query, args, err := squirrel.Delete("items").
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to build query", err)
		return apperr.Internal("item", err)
	}

	var returnedID uint64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&returnedID); err != nil {
		telemetry.HandleSpanError(&span, "failed to execute delete", err)
		return translatePGError(err, "item", formatUint(id))
	}

	return nil
}

// ValidateDeletion implements item.Repository. Items own no
// sub-aggregates, so every existing item can be deleted freely.
func (r *ItemRepository) ValidateDeletion(ctx context.Context, id uint64) (item.DeletionCheck, error) {
	if _, err := r.FindByID(ctx, id, true); err != nil {
		return item.DeletionCheck{}, err
	}

	return item.DeletionCheck{CanDelete: true}, nil
}
