package inmemory

import (
	"context"
	"sync"
	"time"

	"github.com/catalogsvc/catalog/internal/apperr"
	"github.com/catalogsvc/catalog/internal/domain/metadata"
	"github.com/google/uuid"
)

// MetadataRepository is the in-memory metadata.Repository, keyed by
// collection + entity id.
type MetadataRepository struct {
	mu   sync.RWMutex
	docs map[string]metadata.Metadata
}

// NewMetadataRepository builds an empty MetadataRepository.
func NewMetadataRepository() *MetadataRepository {
	return &MetadataRepository{docs: make(map[string]metadata.Metadata)}
}

func metadataKey(collection, entityID string) string {
	return collection + ":" + entityID
}

// Upsert implements metadata.Repository.
func (r *MetadataRepository) Upsert(ctx context.Context, collection, entityID string, data metadata.JSON) (metadata.Metadata, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := metadataKey(collection, entityID)
	now := time.Now().UTC()

	existing, ok := r.docs[key]
	if !ok {
		existing = metadata.Metadata{
			ID:         uuid.NewString(),
			EntityName: collection,
			EntityID:   entityID,
			CreatedAt:  now,
		}
	}

	existing.Data = data
	existing.UpdatedAt = now
	r.docs[key] = existing

	return existing, nil
}

// FindByEntity implements metadata.Repository.
func (r *MetadataRepository) FindByEntity(ctx context.Context, collection, entityID string) (*metadata.Metadata, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	doc, ok := r.docs[metadataKey(collection, entityID)]
	if !ok {
		return nil, nil
	}

	copied := doc

	return &copied, nil
}

// Delete implements metadata.Repository.
func (r *MetadataRepository) Delete(ctx context.Context, collection, entityID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := metadataKey(collection, entityID)
	if _, ok := r.docs[key]; !ok {
		return apperr.NotFound("metadata", entityID)
	}

	delete(r.docs, key)

	return nil
}
