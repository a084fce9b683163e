package item

import "context"

// Filter narrows a FindAll listing.
type Filter struct {
	IncludeDeleted bool
	Limit          int
	Offset         int
}

// Repository is the storage contract for Item, implemented identically
// (in externally observable behavior) by both the SQL and in-memory
// adapters, per the single contract-test suite that exercises both.
type Repository interface {
	FindAll(ctx context.Context, filter Filter) ([]Item, error)
	FindByID(ctx context.Context, id uint64, includeDeleted bool) (*Item, error)
	Create(ctx context.Context, item Item) (Item, error)
	Update(ctx context.Context, item Item) (Item, error)
	LogicalDelete(ctx context.Context, id uint64) error
	PhysicalDelete(ctx context.Context, id uint64) error
	Restore(ctx context.Context, id uint64) error
	ValidateDeletion(ctx context.Context, id uint64) (DeletionCheck, error)
}

// DeletionCheck is the read-only result of ValidateDeletion.
type DeletionCheck struct {
	CanDelete     bool
	Warnings      []string
	Blockers      []string
	RelatedCounts map[string]int
}
