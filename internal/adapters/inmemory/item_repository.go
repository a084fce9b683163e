// Package inmemory implements every repository contract over plain Go
// maps guarded by a single coarse sync.RWMutex per entity, satisfying
// REP-1 (identical externally observable behavior to the SQL
// implementations) without a database. It is the fixture the contract
// test suite and the handler tests run against.
package inmemory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/catalogsvc/catalog/internal/apperr"
	"github.com/catalogsvc/catalog/internal/domain/item"
)

// ItemRepository is the in-memory Item repository.
type ItemRepository struct {
	mu     sync.RWMutex
	nextID uint64
	items  map[uint64]item.Item
}

// NewItemRepository builds an empty ItemRepository.
func NewItemRepository() *ItemRepository {
	return &ItemRepository{items: make(map[uint64]item.Item)}
}

// FindAll implements item.Repository.
func (r *ItemRepository) FindAll(ctx context.Context, filter item.Filter) ([]item.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]item.Item, 0, len(r.items))

	for _, it := range r.items {
		if it.Deleted && !filter.IncludeDeleted {
			continue
		}

		result = append(result, it)
	}

	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })

	return paginate(result, filter.Offset, filter.Limit), nil
}

// FindByID implements item.Repository.
func (r *ItemRepository) FindByID(ctx context.Context, id uint64, includeDeleted bool) (*item.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	it, ok := r.items[id]
	if !ok || (it.Deleted && !includeDeleted) {
		return nil, apperr.NotFound("item", formatUint(id))
	}

	copied := it

	return &copied, nil
}

// Create implements item.Repository.
func (r *ItemRepository) Create(ctx context.Context, it item.Item) (item.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	it.ID = r.nextID
	now := time.Now().UTC()
	it.CreatedAt = now
	it.UpdatedAt = now

	r.items[it.ID] = it

	return it, nil
}

// Update implements item.Repository.
func (r *ItemRepository) Update(ctx context.Context, it item.Item) (item.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.items[it.ID]
	if !ok || existing.Deleted {
		return item.Item{}, apperr.NotFound("item", formatUint(it.ID))
	}

	it.CreatedAt = existing.CreatedAt
	it.Deleted = existing.Deleted
	it.UpdatedAt = time.Now().UTC()

	r.items[it.ID] = it

	return it, nil
}

// LogicalDelete implements item.Repository.
func (r *ItemRepository) LogicalDelete(ctx context.Context, id uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	it, ok := r.items[id]
	if !ok || it.Deleted {
		return apperr.NotFound("item", formatUint(id))
	}

	it.Deleted = true
	it.UpdatedAt = time.Now().UTC()
	r.items[id] = it

	return nil
}

// PhysicalDelete implements item.Repository.
func (r *ItemRepository) PhysicalDelete(ctx context.Context, id uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return apperr.NotFound("item", formatUint(id))
	}

	delete(r.items, id)

	return nil
}

// Restore implements item.Repository.
func (r *ItemRepository) Restore(ctx context.Context, id uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	it, ok := r.items[id]
	if !ok || !it.Deleted {
		return apperr.NotFound("item", formatUint(id))
	}

	it.Deleted = false
	it.UpdatedAt = time.Now().UTC()
	r.items[id] = it

	return nil
}

// ValidateDeletion implements item.Repository. Items have no owned
// sub-aggregates, so deletion is always unblocked.
func (r *ItemRepository) ValidateDeletion(ctx context.Context, id uint64) (item.DeletionCheck, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.items[id]; !ok {
		return item.DeletionCheck{}, apperr.NotFound("item", formatUint(id))
	}

	return item.DeletionCheck{CanDelete: true, RelatedCounts: map[string]int{}}, nil
}
