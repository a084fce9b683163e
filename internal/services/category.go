package services

import (
	"context"

	"github.com/catalogsvc/catalog/internal/apperr"
	"github.com/catalogsvc/catalog/internal/domain/category"
	"github.com/catalogsvc/catalog/internal/metrics"
)

const categoryServiceName = "category"

// CategoryService orchestrates Category use cases, including the tree
// operations (FindChildren, FindPath, Move) that have no counterpart on
// the other entities.
type CategoryService struct {
	repo category.Repository
}

// NewCategoryService builds a CategoryService bound to repo.
func NewCategoryService(repo category.Repository) *CategoryService {
	return &CategoryService{repo: repo}
}

// FindAll lists categories, applying filter.
func (s *CategoryService) FindAll(ctx context.Context, filter category.Filter) ([]category.Category, error) {
	return metrics.WithMetricsResult(ctx, categoryServiceName, "find_all", func(ctx context.Context) ([]category.Category, error) {
		return s.repo.FindAll(ctx, filter)
	})
}

// FindByID looks up a single category by id.
func (s *CategoryService) FindByID(ctx context.Context, id string, includeDeleted bool) (*category.Category, error) {
	return metrics.WithMetricsResult(ctx, categoryServiceName, "find_by_id", func(ctx context.Context) (*category.Category, error) {
		return s.repo.FindByID(ctx, id, includeDeleted)
	})
}

// Create validates input, enforces that sibling category names are
// unique under a parent, and persists a new Category.
func (s *CategoryService) Create(ctx context.Context, input category.CreateInput) (category.Category, error) {
	return metrics.WithMetricsResult(ctx, categoryServiceName, "create", func(ctx context.Context) (category.Category, error) {
		newCategory, err := category.New(input)
		if err != nil {
			return category.Category{}, err
		}

		if newCategory.ParentID != nil {
			if _, err := s.repo.FindByID(ctx, *newCategory.ParentID, false); err != nil {
				return category.Category{}, err
			}
		}

		exists, err := s.repo.SiblingNameExists(ctx, newCategory.ParentID, newCategory.Name, "")
		if err != nil {
			return category.Category{}, err
		}

		if exists {
			return category.Category{}, apperr.Conflict("category", "a sibling category with this name already exists under this parent")
		}

		return s.repo.Create(ctx, *newCategory)
	})
}

// Update validates input and replaces a Category's mutable fields
// (re-parenting goes through Move, not Update).
func (s *CategoryService) Update(ctx context.Context, id string, input category.UpdateInput) (category.Category, error) {
	return metrics.WithMetricsResult(ctx, categoryServiceName, "update", func(ctx context.Context) (category.Category, error) {
		existing, err := s.repo.FindByID(ctx, id, false)
		if err != nil {
			return category.Category{}, err
		}

		if input.Name != existing.Name {
			exists, err := s.repo.SiblingNameExists(ctx, existing.ParentID, input.Name, id)
			if err != nil {
				return category.Category{}, err
			}

			if exists {
				return category.Category{}, apperr.Conflict("category", "a sibling category with this name already exists under this parent")
			}
		}

		updated, err := existing.ApplyUpdate(input)
		if err != nil {
			return category.Category{}, err
		}

		return s.repo.Update(ctx, updated)
	})
}

// FindChildren lists id's direct children.
func (s *CategoryService) FindChildren(ctx context.Context, id string) ([]category.Category, error) {
	return metrics.WithMetricsResult(ctx, categoryServiceName, "find_children", func(ctx context.Context) ([]category.Category, error) {
		return s.repo.FindChildren(ctx, id)
	})
}

// FindPath returns id's root-to-leaf ancestor chain.
func (s *CategoryService) FindPath(ctx context.Context, id string) ([]category.PathEntry, error) {
	return metrics.WithMetricsResult(ctx, categoryServiceName, "find_path", func(ctx context.Context) ([]category.PathEntry, error) {
		return s.repo.FindPath(ctx, id)
	})
}

// Move validates a re-parent/reorder request (depth limit, cycle
// prevention, sibling name uniqueness) and, on success, persists the
// new parent/sort order atomically.
func (s *CategoryService) Move(ctx context.Context, id string, newParentID *string, newSortOrder int) (category.Category, error) {
	return metrics.WithMetricsResult(ctx, categoryServiceName, "move", func(ctx context.Context) (category.Category, error) {
		existing, err := s.repo.FindByID(ctx, id, false)
		if err != nil {
			return category.Category{}, err
		}

		if err := category.ValidateMove(ctx, s.repo, id, existing.Name, newParentID, newSortOrder); err != nil {
			return category.Category{}, err
		}

		return s.repo.Move(ctx, id, newParentID, newSortOrder)
	})
}

// ValidateDeletion returns whether id can be deleted without mutating it.
func (s *CategoryService) ValidateDeletion(ctx context.Context, id string) (category.DeletionCheck, error) {
	return metrics.WithMetricsResult(ctx, categoryServiceName, "validate_deletion", func(ctx context.Context) (category.DeletionCheck, error) {
		return s.repo.ValidateDeletion(ctx, id)
	})
}
