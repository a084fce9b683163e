package deletion

import (
	"context"

	"github.com/catalogsvc/catalog/internal/domain/category"
)

// CategoryStrategy maps each Kind to the corresponding Category
// repository call. The precondition that a category with children
// cannot be physically deleted is enforced by the repository's
// PhysicalDelete itself, since it alone can cheaply query children.
type CategoryStrategy struct {
	repo category.Repository
}

// NewCategoryStrategy builds a CategoryStrategy bound to repo.
func NewCategoryStrategy(repo category.Repository) *CategoryStrategy {
	return &CategoryStrategy{repo: repo}
}

// Delete implements Strategy.
func (s *CategoryStrategy) Delete(ctx context.Context, id string, kind Kind) error {
	switch kind {
	case KindLogical:
		return translate(s.repo.LogicalDelete(ctx, id))
	case KindPhysical:
		return translate(s.repo.PhysicalDelete(ctx, id))
	case KindRestore:
		return translate(s.repo.Restore(ctx, id))
	default:
		return ValidationFailed("unknown deletion kind: " + string(kind))
	}
}
