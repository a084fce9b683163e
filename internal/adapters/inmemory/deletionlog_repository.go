package inmemory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/catalogsvc/catalog/internal/domain/deletionlog"
	"github.com/google/uuid"
)

// DeletionLogRepository is the in-memory deletion-log repository. Like
// its Postgres counterpart, Append is the only mutation it exposes.
type DeletionLogRepository struct {
	mu      sync.RWMutex
	entries []deletionlog.Entry
}

// NewDeletionLogRepository builds an empty DeletionLogRepository.
func NewDeletionLogRepository() *DeletionLogRepository {
	return &DeletionLogRepository{}
}

// Append implements deletionlog.Repository.
func (r *DeletionLogRepository) Append(ctx context.Context, entry deletionlog.Entry) (deletionlog.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}

	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	r.entries = append(r.entries, entry)

	return entry, nil
}

// FindAll implements deletionlog.Repository.
func (r *DeletionLogRepository) FindAll(ctx context.Context, filter deletionlog.Filter) ([]deletionlog.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]deletionlog.Entry, 0, len(r.entries))

	for _, e := range r.entries {
		if filter.ProductID != nil && e.ProductID != *filter.ProductID {
			continue
		}

		result = append(result, e)
	}

	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })

	return paginate(result, filter.Offset, filter.Limit), nil
}
