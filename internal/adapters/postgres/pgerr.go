// Package postgres implements the repository contracts of
// internal/domain/* against a primary/replica Postgres pool, built with
// Masterminds/squirrel query building over a jackc/pgx/v5 +
// bxcodec/dbresolver/v2 connection.
package postgres

import (
	"database/sql"
	"errors"

	"github.com/catalogsvc/catalog/internal/apperr"
	"github.com/jackc/pgx/v5/pgconn"
)

// constraintError maps a Postgres constraint name to the business
// meaning it encodes, the way services.ValidatePGError does for the
// teacher's ledger constraints.
var constraintError = map[string]apperr.AppError{
	"products_sku_key":                   apperr.Conflict("product", "a product with this SKU already exists"),
	"products_category_id_fkey":           apperr.Validation("categoryId", "category does not exist"),
	"categories_parent_id_fkey":           apperr.Validation("parentId", "parent category does not exist"),
	"categories_parent_id_name_key":       apperr.Conflict("category", "a sibling category with this name already exists under the target parent"),
	"users_email_key":                     apperr.Conflict("user", "a user with this email already exists"),
	"product_tags_product_id_value_key":   apperr.Conflict("product", "duplicate tag for this product"),
	"product_attributes_product_id_key_key": apperr.Conflict("product", "duplicate attribute key for this product"),
}

// translatePGError maps a raw error from a query/exec call into an
// AppError: sql.ErrNoRows becomes NotFound, a recognized pgconn.PgError
// constraint becomes its mapped business error, anything else becomes an
// opaque InternalError.
func translatePGError(err error, entityType, id string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return apperr.NotFound(entityType, id)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if mapped, ok := constraintError[pgErr.ConstraintName]; ok {
			return mapped
		}
	}

	return apperr.Internal(entityType, err)
}
