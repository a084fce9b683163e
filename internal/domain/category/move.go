package category

import (
	"context"

	"github.com/catalogsvc/catalog/internal/apperr"
)

// TreeReader is the minimal ancestry/sibling query surface ValidateMove
// needs. Both the Postgres and in-memory Category repositories implement
// it against their own storage so the move validation runs identically
// over either backend.
type TreeReader interface {
	// ParentOf returns the parent id of id, or nil if id is a root.
	// Returns apperr NotFound if id does not exist.
	ParentOf(ctx context.Context, id string) (*string, error)
	// DepthOf returns id's depth below its forest root (root is depth 0).
	DepthOf(ctx context.Context, id string) (int, error)
	// SiblingNameExists reports whether a category named name already
	// exists under parentID, excluding excludeID itself.
	SiblingNameExists(ctx context.Context, parentID *string, name string, excludeID string) (bool, error)
}

// ValidateMove checks a re-parent/reorder request: self-parent check,
// cycle check by walking newParentID upward, depth-bound check, and
// sibling-name uniqueness check. It mutates nothing; callers persist the
// move atomically only after ValidateMove returns nil.
func ValidateMove(ctx context.Context, tree TreeReader, id, name string, newParentID *string, newSortOrder int) error {
	if newSortOrder < 0 {
		return apperr.Validation("sortOrder", "sortOrder must not be negative")
	}

	if newParentID != nil {
		if *newParentID == id {
			return apperr.Validation("parentId", "a category cannot become its own parent")
		}

		cursor := *newParentID

		for {
			if cursor == id {
				return apperr.Validation("parentId", "move would create a cycle")
			}

			parent, err := tree.ParentOf(ctx, cursor)
			if err != nil {
				return err
			}

			if parent == nil {
				break
			}

			cursor = *parent
		}

		parentDepth, err := tree.DepthOf(ctx, *newParentID)
		if err != nil {
			return err
		}

		if parentDepth+1 > MaxDepth {
			return apperr.Validation("parentId", "move would exceed the maximum category depth")
		}
	}

	exists, err := tree.SiblingNameExists(ctx, newParentID, name, id)
	if err != nil {
		return err
	}

	if exists {
		return apperr.Conflict("category", "a sibling category with this name already exists under the target parent")
	}

	return nil
}
