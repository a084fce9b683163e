package category

import "context"

// Filter narrows a FindAll listing.
type Filter struct {
	IncludeDeleted bool
	ParentID       *string
	Limit          int
	Offset         int
}

// DeletionCheck is the read-only result of ValidateDeletion.
type DeletionCheck struct {
	CanDelete     bool
	Warnings      []string
	Blockers      []string
	RelatedCounts map[string]int
}

// Repository is the storage contract for Category. It extends the
// common deletable-entity shape with tree-specific operations
// (FindChildren, FindPath, Move) and implements TreeReader so the
// shared ValidateMove algorithm can run against either backend.
type Repository interface {
	TreeReader

	FindAll(ctx context.Context, filter Filter) ([]Category, error)
	FindByID(ctx context.Context, id string, includeDeleted bool) (*Category, error)
	Create(ctx context.Context, c Category) (Category, error)
	Update(ctx context.Context, c Category) (Category, error)
	LogicalDelete(ctx context.Context, id string) error
	PhysicalDelete(ctx context.Context, id string) error
	Restore(ctx context.Context, id string) error
	ValidateDeletion(ctx context.Context, id string) (DeletionCheck, error)

	FindChildren(ctx context.Context, id string) ([]Category, error)
	FindPath(ctx context.Context, id string) ([]PathEntry, error)
	// Move persists the new parent/sort order atomically, after the
	// caller has already run ValidateMove successfully.
	Move(ctx context.Context, id string, newParentID *string, newSortOrder int) (Category, error)
}
