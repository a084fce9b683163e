// Package metadata holds the freeform key/value sidecar attached to any
// entity, stored outside the relational store.
package metadata

import (
	"context"
	"time"
)

// JSON is an arbitrary document attached to an entity.
type JSON map[string]any

// Metadata is one entity's metadata document.
type Metadata struct {
	ID         string
	EntityName string
	EntityID   string
	Data       JSON
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Repository is the storage contract for metadata documents, keyed by
// (collection, entity id) where collection names the owning entity kind
// ("item", "user", "category", "product").
type Repository interface {
	Upsert(ctx context.Context, collection, entityID string, data JSON) (Metadata, error)
	FindByEntity(ctx context.Context, collection, entityID string) (*Metadata, error)
	Delete(ctx context.Context, collection, entityID string) error
}
