package postgres

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/bxcodec/dbresolver/v2"
	"github.com/catalogsvc/catalog/internal/apperr"
	"github.com/catalogsvc/catalog/internal/domain/category"
	"github.com/catalogsvc/catalog/internal/platform/telemetry"
	"github.com/google/uuid"
)

// CategoryRepository is the Postgres-backed implementation of
// category.Repository, including the TreeReader methods the shared
// ValidateMove algorithm runs against.
type CategoryRepository struct {
	db dbresolver.DB
}

// NewCategoryRepository builds a CategoryRepository over an
// already-connected pool.
func NewCategoryRepository(db dbresolver.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func scanCategory(row interface{ Scan(...any) error }) (category.Category, error) {
	var (
		c        category.Category
		desc     *string
		parentID *string
	)

	if err := row.Scan(&c.ID, &c.Name, &desc, &parentID, &c.SortOrder, &c.IsActive, &c.Deleted, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return category.Category{}, err
	}

	c.Description = desc
	c.ParentID = parentID

	return c, nil
}

const categoryColumns = "id, name, description, parent_id, sort_order, is_active, deleted, created_at, updated_at"

// FindAll implements category.Repository.
func (r *CategoryRepository) FindAll(ctx context.Context, filter category.Filter) ([]category.Category, error) {
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "postgres.category.find_all")
	defer span.End()

	builder := squirrel.Select(categoryColumns).
		From("categories").
		OrderBy("sort_order ASC", "name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if !filter.IncludeDeleted {
		builder = builder.Where(squirrel.Eq{"deleted": false})
	}

	if filter.ParentID != nil {
		builder = builder.Where(squirrel.Eq{"parent_id": *filter.ParentID})
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
		return nil, apperr.Internal("category", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to execute query", err)
		return nil, translatePGError(err, "category", "")
	}
	defer rows.Close()

	categories := make([]category.Category, 0)

	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			telemetry.HandleSpanError(&span, "failed to scan row", err)
			return nil, apperr.Internal("category", err)
		}

		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		telemetry.HandleSpanError(&span, "failed to iterate rows", err)
		return nil, apperr.Internal("category", err)
	}

	return categories, nil
}

// FindByID implements category.Repository.
func (r *CategoryRepository) FindByID(ctx context.Context, id string, includeDeleted bool) (*category.Category, error) {
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "postgres.category.find_by_id")
	defer span.End()

	builder := squirrel.Select(categoryColumns).
		From("categories").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	if !includeDeleted {
		builder = builder.Where(squirrel.Eq{"deleted": false})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to build query", err)
		return nil, apperr.Internal("category", err)
	}

	c, err := scanCategory(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to scan row", err)
		return nil, translatePGError(err, "category", id)
	}

	return &c, nil
}

// Create implements category.Repository.
func (r *CategoryRepository) Create(ctx context.Context, c category.Category) (category.Category, error) {
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "postgres.category.create")
	defer span.End()

	id := uuid.NewString()

	query, args, err := squirrel.Insert("categories").
		Columns("id", "name", "description", "parent_id", "sort_order", "is_active").
		Values(id, c.Name, c.Description, c.ParentID, c.SortOrder, c.IsActive).
		Suffix("RETURNING " + categoryColumns).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to build query", err)
		return category.Category{}, apperr.Internal("category", err)
	}

	created, err := scanCategory(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to execute insert", err)
		return category.Category{}, translatePGError(err, "category", "")
	}

	return created, nil
}

// Update implements category.Repository. Re-parenting is Move-only, so
// parent_id is left untouched here.
func (r *CategoryRepository) Update(ctx context.Context, c category.Category) (category.Category, error) {
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "postgres.category.update")
	defer span.End()

	query, args, err := squirrel.Update("categories").
		Set("name", c.Name).
		Set("description", c.Description).
		Set("sort_order", c.SortOrder).
		Set("is_active", c.IsActive).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": c.ID, "deleted": false}).
		Suffix("RETURNING " + categoryColumns).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to build query", err)
		return category.Category{}, apperr.Internal("category", err)
	}

	updated, err := scanCategory(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to execute update", err)
		return category.Category{}, translatePGError(err, "category", c.ID)
	}

	return updated, nil
}

func (r *CategoryRepository) setDeleted(ctx context.Context, id string, deleted, fromDeleted bool) error {
	query, args, err := squirrel.Update("categories").
		Set("deleted", deleted).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id, "deleted": fromDeleted}).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return apperr.Internal("category", err)
	}

	var returnedID string
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&returnedID); err != nil {
		return translatePGError(err, "category", id)
	}

	return nil
}

// LogicalDelete implements category.Repository.
func (r *CategoryRepository) LogicalDelete(ctx context.Context, id string) error {
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "postgres.category.logical_delete")
	defer span.End()

	if err := r.setDeleted(ctx, id, true, false); err != nil {
		telemetry.HandleSpanError(&span, "failed to logically delete category", err)
		return err
	}

	return nil
}

// Restore implements category.Repository.
func (r *CategoryRepository) Restore(ctx context.Context, id string) error {
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "postgres.category.restore")
	defer span.End()

	if err := r.setDeleted(ctx, id, false, true); err != nil {
		telemetry.HandleSpanError(&span, "failed to restore category", err)
		return err
	}

	return nil
}

func (r *CategoryRepository) childCount(ctx context.Context, id string) (int, error) {
	query, args, err := squirrel.Select("count(*)").
		From("categories").
		Where(squirrel.Eq{"parent_id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, apperr.Internal("category", err)
	}

	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, apperr.Internal("category", err)
	}

	return count, nil
}

// PhysicalDelete implements category.Repository. A category with
// children cannot be physically deleted.
func (r *CategoryRepository) PhysicalDelete(ctx context.Context, id string) error {
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "postgres.category.physical_delete")
	defer span.End()

	count, err := r.childCount(ctx, id)
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to count children", err)
		return err
	}

	if count > 0 {
		return apperr.Validation("category", "category has children and cannot be physically deleted")
	}

	query, args, err := squirrel.Delete("categories").
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to build query", err)
		return apperr.Internal("category", err)
	}

	var returnedID string
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&returnedID); err != nil {
		telemetry.HandleSpanError(&span, "failed to execute delete", err)
		return translatePGError(err, "category", id)
	}

	return nil
}

// ValidateDeletion implements category.Repository.
func (r *CategoryRepository) ValidateDeletion(ctx context.Context, id string) (category.DeletionCheck, error) {
	if _, err := r.FindByID(ctx, id, true); err != nil {
		return category.DeletionCheck{}, err
	}

	count, err := r.childCount(ctx, id)
	if err != nil {
		return category.DeletionCheck{}, err
	}

	check := category.DeletionCheck{
		CanDelete:     count == 0,
		RelatedCounts: map[string]int{"children": count},
	}

	if count > 0 {
		check.Blockers = []string{"category has children"}
	}

	return check, nil
}

// FindChildren implements category.Repository.
func (r *CategoryRepository) FindChildren(ctx context.Context, id string) ([]category.Category, error) {
	return r.FindAll(ctx, category.Filter{ParentID: &id})
}

// FindPath implements category.Repository, walking the parent chain from
// id to its root.
func (r *CategoryRepository) FindPath(ctx context.Context, id string) ([]category.PathEntry, error) {
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "postgres.category.find_path")
	defer span.End()

	var reversed []category.PathEntry

	cursor := id

	for {
		c, err := r.FindByID(ctx, cursor, true)
		if err != nil {
			telemetry.HandleSpanError(&span, "failed to walk category path", err)
			return nil, err
		}

		reversed = append(reversed, category.PathEntry{ID: c.ID, Name: c.Name})

		if c.ParentID == nil {
			break
		}

		cursor = *c.ParentID
	}

	path := make([]category.PathEntry, len(reversed))
	for i, e := range reversed {
		path[len(reversed)-1-i] = e
	}

	return path, nil
}

// Move implements category.Repository, persisting the new parent/sort
// order after the caller has already run ValidateMove successfully.
func (r *CategoryRepository) Move(ctx context.Context, id string, newParentID *string, newSortOrder int) (category.Category, error) {
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "postgres.category.move")
	defer span.End()

	query, args, err := squirrel.Update("categories").
		Set("parent_id", newParentID).
		Set("sort_order", newSortOrder).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id, "deleted": false}).
		Suffix("RETURNING " + categoryColumns).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to build query", err)
		return category.Category{}, apperr.Internal("category", err)
	}

	moved, err := scanCategory(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to execute move", err)
		return category.Category{}, translatePGError(err, "category", id)
	}

	return moved, nil
}

// ParentOf implements category.TreeReader.
func (r *CategoryRepository) ParentOf(ctx context.Context, id string) (*string, error) {
	c, err := r.FindByID(ctx, id, true)
	if err != nil {
		return nil, err
	}

	return c.ParentID, nil
}

// DepthOf implements category.TreeReader, walking the parent chain from
// id to its root and counting steps.
func (r *CategoryRepository) DepthOf(ctx context.Context, id string) (int, error) {
	depth := 0
	cursor := id

	for {
		c, err := r.FindByID(ctx, cursor, true)
		if err != nil {
			return 0, err
		}

		if c.ParentID == nil {
			return depth, nil
		}

		depth++
		cursor = *c.ParentID
	}
}

// SiblingNameExists implements category.TreeReader.
func (r *CategoryRepository) SiblingNameExists(ctx context.Context, parentID *string, name string, excludeID string) (bool, error) {
	builder := squirrel.Select("count(*)").
		From("categories").
		Where(squirrel.Eq{"name": name, "deleted": false}).
		PlaceholderFormat(squirrel.Dollar)

	if parentID != nil {
		builder = builder.Where(squirrel.Eq{"parent_id": *parentID})
	} else {
		builder = builder.Where("parent_id IS NULL")
	}

	if excludeID != "" {
		builder = builder.Where(squirrel.NotEq{"id": excludeID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return false, apperr.Internal("category", err)
	}

	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, apperr.Internal("category", err)
	}

	return count > 0, nil
}
