package inmemory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/catalogsvc/catalog/internal/apperr"
	"github.com/catalogsvc/catalog/internal/domain/category"
	"github.com/google/uuid"
)

// CategoryRepository is the in-memory Category repository. It implements
// category.TreeReader directly against its own map so the shared
// ValidateMove algorithm runs identically to the Postgres adapter.
type CategoryRepository struct {
	mu         sync.RWMutex
	categories map[string]category.Category
}

// NewCategoryRepository builds an empty CategoryRepository.
func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{categories: make(map[string]category.Category)}
}

// FindAll implements category.Repository.
func (r *CategoryRepository) FindAll(ctx context.Context, filter category.Filter) ([]category.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]category.Category, 0, len(r.categories))

	for _, c := range r.categories {
		if !isLive(c) && !filter.IncludeDeleted {
			continue
		}

		if filter.ParentID != nil && !samePtr(c.ParentID, filter.ParentID) {
			continue
		}

		result = append(result, c)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].SortOrder != result[j].SortOrder {
			return result[i].SortOrder < result[j].SortOrder
		}
		return result[i].Name < result[j].Name
	})

	return paginate(result, filter.Offset, filter.Limit), nil
}

// FindByID implements category.Repository.
func (r *CategoryRepository) FindByID(ctx context.Context, id string, includeDeleted bool) (*category.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.categories[id]
	if !ok || (!isLive(c) && !includeDeleted) {
		return nil, apperr.NotFound("category", id)
	}

	copied := c

	return &copied, nil
}

// Create implements category.Repository.
func (r *CategoryRepository) Create(ctx context.Context, c category.Category) (category.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c.ID = uuid.NewString()
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now

	r.categories[c.ID] = c

	return c, nil
}

// Update implements category.Repository.
func (r *CategoryRepository) Update(ctx context.Context, c category.Category) (category.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.categories[c.ID]
	if !ok || !isLive(existing) {
		return category.Category{}, apperr.NotFound("category", c.ID)
	}

	c.ParentID = existing.ParentID
	c.CreatedAt = existing.CreatedAt
	c.UpdatedAt = time.Now().UTC()

	r.categories[c.ID] = c

	return c, nil
}

// LogicalDelete implements category.Repository.
func (r *CategoryRepository) LogicalDelete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.categories[id]
	if !ok || !isLive(c) {
		return apperr.NotFound("category", id)
	}

	c.UpdatedAt = time.Now().UTC()
	r.categories[id] = markDeleted(c)

	return nil
}

// PhysicalDelete implements category.Repository. A category with
// children cannot be physically deleted.
func (r *CategoryRepository) PhysicalDelete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.categories[id]; !ok {
		return apperr.NotFound("category", id)
	}

	for _, c := range r.categories {
		if c.ParentID != nil && *c.ParentID == id {
			return apperr.Validation("category", "category has children and cannot be physically deleted")
		}
	}

	delete(r.categories, id)

	return nil
}

// Restore implements category.Repository.
func (r *CategoryRepository) Restore(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.categories[id]
	if !ok || isLive(c) {
		return apperr.NotFound("category", id)
	}

	c = unmarkDeleted(c)
	c.UpdatedAt = time.Now().UTC()
	r.categories[id] = c

	return nil
}

// ValidateDeletion implements category.Repository.
func (r *CategoryRepository) ValidateDeletion(ctx context.Context, id string) (category.DeletionCheck, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.categories[id]; !ok {
		return category.DeletionCheck{}, apperr.NotFound("category", id)
	}

	childCount := 0

	for _, c := range r.categories {
		if c.ParentID != nil && *c.ParentID == id {
			childCount++
		}
	}

	check := category.DeletionCheck{
		CanDelete:     childCount == 0,
		RelatedCounts: map[string]int{"children": childCount},
	}

	if childCount > 0 {
		check.Blockers = []string{"category has children"}
	}

	return check, nil
}

// FindChildren implements category.Repository.
func (r *CategoryRepository) FindChildren(ctx context.Context, id string) ([]category.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var children []category.Category

	for _, c := range r.categories {
		if c.ParentID != nil && *c.ParentID == id && isLive(c) {
			children = append(children, c)
		}
	}

	sort.Slice(children, func(i, j int) bool { return children[i].SortOrder < children[j].SortOrder })

	return children, nil
}

// FindPath implements category.Repository.
func (r *CategoryRepository) FindPath(ctx context.Context, id string) ([]category.PathEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var reversed []category.PathEntry

	cursor := id

	for {
		c, ok := r.categories[cursor]
		if !ok {
			return nil, apperr.NotFound("category", id)
		}

		reversed = append(reversed, category.PathEntry{ID: c.ID, Name: c.Name})

		if c.ParentID == nil {
			break
		}

		cursor = *c.ParentID
	}

	path := make([]category.PathEntry, len(reversed))
	for i, e := range reversed {
		path[len(reversed)-1-i] = e
	}

	return path, nil
}

// Move implements category.Repository, persisting atomically under the
// repository's single coarse lock.
func (r *CategoryRepository) Move(ctx context.Context, id string, newParentID *string, newSortOrder int) (category.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.categories[id]
	if !ok || !isLive(c) {
		return category.Category{}, apperr.NotFound("category", id)
	}

	c.ParentID = newParentID
	c.SortOrder = newSortOrder
	c.UpdatedAt = time.Now().UTC()

	r.categories[id] = c

	return c, nil
}

// ParentOf implements category.TreeReader.
func (r *CategoryRepository) ParentOf(ctx context.Context, id string) (*string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.categories[id]
	if !ok {
		return nil, apperr.NotFound("category", id)
	}

	return c.ParentID, nil
}

// DepthOf implements category.TreeReader.
func (r *CategoryRepository) DepthOf(ctx context.Context, id string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	depth := 0
	cursor := id

	for {
		c, ok := r.categories[cursor]
		if !ok {
			return 0, apperr.NotFound("category", id)
		}

		if c.ParentID == nil {
			return depth, nil
		}

		depth++
		cursor = *c.ParentID
	}
}

// SiblingNameExists implements category.TreeReader.
func (r *CategoryRepository) SiblingNameExists(ctx context.Context, parentID *string, name string, excludeID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.categories {
		if c.ID == excludeID {
			continue
		}

		if samePtr(c.ParentID, parentID) && c.Name == name && isLive(c) {
			return true, nil
		}
	}

	return false, nil
}

func isLive(c category.Category) bool { return !c.Deleted }

func markDeleted(c category.Category) category.Category {
	c.Deleted = true
	return c
}

func unmarkDeleted(c category.Category) category.Category {
	c.Deleted = false
	return c
}

func samePtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}

	return *a == *b
}
