//go:build integration

package mongodb

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/catalogsvc/catalog/internal/domain/metadata"
	platmongo "github.com/catalogsvc/catalog/internal/platform/mongo"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupMongo(t *testing.T) *MetadataRepository {
	t.Helper()

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "mongo:8",
		ExposedPorts: []string{"27017/tcp"},
		WaitingFor: wait.ForAll(
			wait.ForLog("Waiting for connections"),
			wait.ForListeningPort("27017/tcp"),
		).WithDeadline(60 * time.Second),
	}

	ctr, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err, "failed to start mongo container")

	t.Cleanup(func() {
		if err := ctr.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate mongo container: %v", err)
		}
	})

	host, err := ctr.Host(ctx)
	require.NoError(t, err)

	port, err := ctr.MappedPort(ctx, "27017")
	require.NoError(t, err)

	uri := fmt.Sprintf("mongodb://%s:%s", host, port.Port())

	conn := &platmongo.Connection{ConnectionStringSource: uri, Database: "catalog_metadata_test"}

	return NewMetadataRepository(conn, "catalog_metadata_test")
}

func TestMetadataRepository_UpsertFindDelete(t *testing.T) {
	repo := setupMongo(t)
	ctx := context.Background()

	saved, err := repo.Upsert(ctx, "product", "product-1", metadata.JSON{"color": "red"})
	require.NoError(t, err)
	require.Equal(t, "product-1", saved.EntityID)

	found, err := repo.FindByEntity(ctx, "product", "product-1")
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Equal(t, "red", found.Data["color"])

	_, err = repo.Upsert(ctx, "product", "product-1", metadata.JSON{"color": "blue"})
	require.NoError(t, err)

	found, err = repo.FindByEntity(ctx, "product", "product-1")
	require.NoError(t, err)
	require.Equal(t, "blue", found.Data["color"])

	require.NoError(t, repo.Delete(ctx, "product", "product-1"))

	found, err = repo.FindByEntity(ctx, "product", "product-1")
	require.NoError(t, err)
	require.Nil(t, found)
}

func TestMetadataRepository_FindByEntity_NotFound(t *testing.T) {
	repo := setupMongo(t)
	ctx := context.Background()

	found, err := repo.FindByEntity(ctx, "product", "does-not-exist")
	require.NoError(t, err)
	require.Nil(t, found)
}
