package postgres

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/bxcodec/dbresolver/v2"
	"github.com/catalogsvc/catalog/internal/apperr"
	"github.com/catalogsvc/catalog/internal/domain/deletionlog"
	"github.com/catalogsvc/catalog/internal/platform/telemetry"
	"github.com/google/uuid"
)

// DeletionLogRepository is the Postgres-backed implementation of
// deletionlog.Repository. The deletion_log table is append-only: this
// repository exposes no update or delete method.
type DeletionLogRepository struct {
	db dbresolver.DB
}

// NewDeletionLogRepository builds a DeletionLogRepository over an
// already-connected pool.
func NewDeletionLogRepository(db dbresolver.DB) *DeletionLogRepository {
	return &DeletionLogRepository{db: db}
}

const deletionLogColumns = "id, product_id, kind, actor, reason, snapshot, created_at"

func scanDeletionLogEntry(row interface{ Scan(...any) error }) (deletionlog.Entry, error) {
	var (
		e      deletionlog.Entry
		actor  sql.NullString
		reason sql.NullString
	)

	if err := row.Scan(&e.ID, &e.ProductID, &e.Kind, &actor, &reason, &e.Snapshot, &e.CreatedAt); err != nil {
		return deletionlog.Entry{}, err
	}

	e.Actor = actor.String
	e.Reason = reason.String

	return e, nil
}

// Append implements deletionlog.Repository.
func (r *DeletionLogRepository) Append(ctx context.Context, entry deletionlog.Entry) (deletionlog.Entry, error) {
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "postgres.deletionlog.append")
	defer span.End()

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}

	query, args, err := squirrel.Insert("deletion_log").
		Columns("id", "product_id", "kind", "actor", "reason", "snapshot").
		Values(entry.ID, entry.ProductID, entry.Kind, entry.Actor, entry.Reason, entry.Snapshot).
		Suffix("RETURNING " + deletionLogColumns).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to build query", err)
		return deletionlog.Entry{}, apperr.Internal("deletionlog", err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	created, err := scanDeletionLogEntry(row)
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to execute insert", err)
		return deletionlog.Entry{}, translatePGError(err, "deletionlog", entry.ID)
	}

	return created, nil
}

// FindAll implements deletionlog.Repository.
func (r *DeletionLogRepository) FindAll(ctx context.Context, filter deletionlog.Filter) ([]deletionlog.Entry, error) {
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "postgres.deletionlog.find_all")
	defer span.End()

	builder := squirrel.Select(deletionLogColumns).
		From("deletion_log").
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if filter.ProductID != nil {
		builder = builder.Where(squirrel.Eq{"product_id": *filter.ProductID})
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
		return nil, apperr.Internal("deletionlog", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to execute query", err)
		return nil, translatePGError(err, "deletionlog", "")
	}
	defer rows.Close()

	entries := make([]deletionlog.Entry, 0)

	for rows.Next() {
		e, err := scanDeletionLogEntry(rows)
		if err != nil {
			telemetry.HandleSpanError(&span, "failed to scan row", err)
			return nil, apperr.Internal("deletionlog", err)
		}

		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		telemetry.HandleSpanError(&span, "failed to iterate rows", err)
		return nil, apperr.Internal("deletionlog", err)
	}

	return entries, nil
}
