// Package mongodb implements the metadata sidecar contract
// (internal/domain/metadata) against a mongo-driver client, one
// collection per owning entity kind.
package mongodb

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/catalogsvc/catalog/internal/domain/metadata"
	"github.com/catalogsvc/catalog/internal/platform/mongo"
	"github.com/catalogsvc/catalog/internal/platform/telemetry"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// metadataDocument is the bson shape stored per collection, keyed by
// entity_id.
type metadataDocument struct {
	ID         string                 `bson:"_id"`
	EntityID   string                 `bson:"entity_id"`
	EntityName string                 `bson:"entity_name"`
	Data       map[string]interface{} `bson:"metadata"`
	CreatedAt  time.Time              `bson:"created_at"`
	UpdatedAt  time.Time              `bson:"updated_at"`
}

func (d metadataDocument) toEntity() metadata.Metadata {
	return metadata.Metadata{
		ID:         d.ID,
		EntityName: d.EntityName,
		EntityID:   d.EntityID,
		Data:       metadata.JSON(d.Data),
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

// MetadataRepository is the mongo-backed implementation of
// metadata.Repository.
type MetadataRepository struct {
	conn     *mongo.Connection
	database string
}

// NewMetadataRepository builds a MetadataRepository over an
// already-configured connection.
func NewMetadataRepository(conn *mongo.Connection, database string) *MetadataRepository {
	return &MetadataRepository{conn: conn, database: database}
}

func (r *MetadataRepository) collection(ctx context.Context, name string) (*mongodriver.Collection, error) {
	client, err := r.conn.Client(ctx)
	if err != nil {
		return nil, err
	}

	return client.Database(strings.ToLower(r.database)).Collection(strings.ToLower(name)), nil
}

// Upsert implements metadata.Repository, creating or replacing the
// document for (collection, entityID).
func (r *MetadataRepository) Upsert(ctx context.Context, collection, entityID string, data metadata.JSON) (metadata.Metadata, error) {
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "mongodb.metadata.upsert")
	defer span.End()

	coll, err := r.collection(ctx, collection)
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to resolve collection", err)
		return metadata.Metadata{}, err
	}

	now := time.Now()

	filter := bson.M{"entity_id": entityID}
	update := bson.M{
		"$set": bson.M{
			"entity_name": collection,
			"metadata":    data,
			"updated_at":  now,
		},
		"$setOnInsert": bson.M{
			"_id":        uuid.NewString(),
			"entity_id":  entityID,
			"created_at": now,
		},
	}

	if _, err := coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil {
		telemetry.HandleSpanError(&span, "failed to upsert document", err)
		return metadata.Metadata{}, err
	}

	var doc metadataDocument
	if err := coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		telemetry.HandleSpanError(&span, "failed to read back document", err)
		return metadata.Metadata{}, err
	}

	return doc.toEntity(), nil
}

// FindByEntity implements metadata.Repository, returning nil (not an
// error) when no document exists yet for the entity.
func (r *MetadataRepository) FindByEntity(ctx context.Context, collection, entityID string) (*metadata.Metadata, error) {
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "mongodb.metadata.find_by_entity")
	defer span.End()

	coll, err := r.collection(ctx, collection)
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to resolve collection", err)
		return nil, err
	}

	var doc metadataDocument

	err = coll.FindOne(ctx, bson.M{"entity_id": entityID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, nil
		}

		telemetry.HandleSpanError(&span, "failed to find document", err)

		return nil, err
	}

	found := doc.toEntity()

	return &found, nil
}

// Delete implements metadata.Repository. Deleting a document that does
// not exist is not an error, mirroring the entity's own absence of
// metadata.
func (r *MetadataRepository) Delete(ctx context.Context, collection, entityID string) error {
	tracer := telemetry.TracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "mongodb.metadata.delete")
	defer span.End()

	coll, err := r.collection(ctx, collection)
	if err != nil {
		telemetry.HandleSpanError(&span, "failed to resolve collection", err)
		return err
	}

	if _, err := coll.DeleteOne(ctx, bson.M{"entity_id": entityID}); err != nil {
		telemetry.HandleSpanError(&span, "failed to delete document", err)
		return err
	}

	return nil
}
