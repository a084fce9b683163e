package postgres

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/bxcodec/dbresolver/v2"
	"github.com/catalogsvc/catalog/internal/apperr"
	"github.com/catalogsvc/catalog/internal/domain/shared"
	"github.com/catalogsvc/catalog/internal/domain/user"
	"github.com/catalogsvc/catalog/internal/platform/telemetry"
	"github.com/google/uuid"
)

// UserRepository is the Postgres-backed implementation of user.Repository.
type UserRepository struct {
	db dbresolver.DB
}

// NewUserRepository builds a UserRepository over an already-connected
// pool.
func NewUserRepository(db dbresolver.DB) *UserRepository {
	return &UserRepository{db: db}
}

func scanUser(row interface{ Scan(...any) error }) (user.User, error) {
	var (
		u         user.User
		email     string
		id        string
	)

	if err := row.Scan(&id, &u.Username, &email, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return user.User{}, err
	}

	u.ID = id

	e, err := shared.NewEmail(email)
	if err != nil {
		return user.User{}, err
	}

	u.Email = e

	return u, nil
}

// FindAll implements user.Repository.
func (r *UserRepository) FindAll(ctx context.Context, filter user.Filter) ([]user.User, error) {
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "postgres.user.find_all")
	defer span.End()

	builder := squirrel.Select("id", "username", "email", "created_at", "updated_at").
		From("users").
		OrderBy("created_at ASC").
		PlaceholderFormat(squirrel.Dollar)

	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}

	if filter.Offset > 0 {
		builder = builder.Offset(uint64(filter.Offset))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to build query", err)
		return nil, apperr.Internal("user", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to execute query", err)
		return nil, translatePGError(err, "user", "")
	}
	defer rows.Close()

	users := make([]user.User, 0)

	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			telemetry.HandleSpanError(&span, "failed to scan row", err)
			return nil, apperr.Internal("user", err)
		}

		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		telemetry.HandleSpanError(&span, "failed to iterate rows", err)
		return nil, apperr.Internal("user", err)
	}

	return users, nil
}

// FindByID implements user.Repository.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*user.User, error) {
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "postgres.user.find_by_id")
	defer span.End()

	query, args, err := squirrel.Select("id", "username", "email", "created_at", "updated_at").
		From("users").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to build query", err)
		return nil, apperr.Internal("user", err)
	}

	u, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to scan row", err)
		return nil, translatePGError(err, "user", id)
	}

	return &u, nil
}

// FindByEmail implements user.Repository.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "postgres.user.find_by_email")
	defer span.End()

	query, args, err := squirrel.Select("id", "username", "email", "created_at", "updated_at").
		From("users").
		Where(squirrel.Eq{"email": email}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to build query", err)
		return nil, apperr.Internal("user", err)
	}

	u, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to scan row", err)
		return nil, translatePGError(err, "user", email)
	}

	return &u, nil
}

// Create implements user.Repository.
func (r *UserRepository) Create(ctx context.Context, u user.User) (user.User, error) {
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "postgres.user.create")
	defer span.End()

	id := uuid.NewString()

	query, args, err := squirrel.Insert("users").
		Columns("id", "username", "email").
		Values(id, u.Username, u.Email.String()).
		Suffix("RETURNING id, username, email, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to build query", err)
		return user.User{}, apperr.Internal("user", err)
	}

	created, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to execute insert", err)
		return user.User{}, translatePGError(err, "user", "")
	}

	return created, nil
}

// Update implements user.Repository.
func (r *UserRepository) Update(ctx context.Context, u user.User) (user.User, error) {
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "postgres.user.update")
	defer span.End()

	query, args, err := squirrel.Update("users").
		Set("username", u.Username).
		Set("email", u.Email.String()).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": u.ID}).
		Suffix("RETURNING id, username, email, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to build query", err)
		return user.User{}, apperr.Internal("user", err)
	}

	updated, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to execute update", err)
		return user.User{}, translatePGError(err, "user", u.ID)
	}

	return updated, nil
}

// Delete implements user.Repository.
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "postgres.user.delete")
	defer span.End()

	query, args, err := squirrel.Delete("users").
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to build query", err)
		return apperr.Internal("user", err)
	}

	var returnedID string
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&returnedID); err != nil {
		telemetry.HandleSpanError(&span, "failed to execute delete", err)
		return translatePGError(err, "user", id)
	}

	return nil
}
