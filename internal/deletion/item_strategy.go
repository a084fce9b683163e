package deletion

import (
	"context"
	"errors"
	"strconv"

	"github.com/catalogsvc/catalog/internal/apperr"
	"github.com/catalogsvc/catalog/internal/domain/item"
)

// ItemStrategy maps each Kind to the corresponding Item repository call.
type ItemStrategy struct {
	repo item.Repository
}

// NewItemStrategy builds an ItemStrategy bound to repo.
func NewItemStrategy(repo item.Repository) *ItemStrategy {
	return &ItemStrategy{repo: repo}
}

// Delete implements Strategy.
func (s *ItemStrategy) Delete(ctx context.Context, id string, kind Kind) error {
	parsed, err := strconv.ParseUint(id, 10, 64)
	if err != nil {
		return ValidationFailed("id must be a positive integer")
	}

	switch kind {
	case KindLogical:
		return translate(s.repo.LogicalDelete(ctx, parsed))
	case KindPhysical:
		return translate(s.repo.PhysicalDelete(ctx, parsed))
	case KindRestore:
		return translate(s.repo.Restore(ctx, parsed))
	default:
		return ValidationFailed("unknown deletion kind: " + string(kind))
	}
}

// translate maps a repository-layer AppError into the DeletionError
// taxonomy the facade expects from every Strategy.
func translate(err error) error {
	if err == nil {
		return nil
	}

	var ae apperr.AppError
	if errors.As(err, &ae) {
		switch ae.Kind {
		case apperr.KindNotFound:
			return NotFound()
		case apperr.KindValidationError, apperr.KindConflict:
			return ValidationFailed(ae.Error())
		default:
			return Other(ae.Error())
		}
	}

	return Other(err.Error())
}
