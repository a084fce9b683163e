//go:build integration

package postgres

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/bxcodec/dbresolver/v2"
	"github.com/catalogsvc/catalog/internal/platform/postgres"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	testDBUser = "catalog"
	testDBPass = "catalog"
	testDBName = "catalog_test"
)

// setupDB starts a disposable Postgres container, runs migrations against
// it and returns a connected pool for the lifetime of the test.
func setupDB(t *testing.T) dbresolver.DB {
	t.Helper()

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     testDBUser,
			"POSTGRES_PASSWORD": testDBPass,
			"POSTGRES_DB":       testDBName,
		},
		WaitingFor: wait.ForAll(
			wait.ForLog("database system is ready to accept connections"),
			wait.ForListeningPort("5432/tcp"),
		).WithDeadline(60 * time.Second),
	}

	ctr, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err, "failed to start postgres container")

	t.Cleanup(func() {
		if err := ctr.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate postgres container: %v", err)
		}
	})

	host, err := ctr.Host(ctx)
	require.NoError(t, err)

	port, err := ctr.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", testDBUser, testDBPass, host, port.Port(), testDBName)

	conn := &postgres.Connection{
		ConnectionStringPrimary: dsn,
		ConnectionStringReplica: dsn,
		PrimaryDBName:           testDBName,
		MigrationsPath:          migrationsPath(t),
	}

	db, err := conn.DB()
	require.NoError(t, err, "failed to connect and migrate test database")

	return db
}

// migrationsPath locates the migrations directory relative to this
// package, walking up from the current file rather than the working
// directory so it resolves the same regardless of how `go test` is
// invoked.
func migrationsPath(t *testing.T) string {
	t.Helper()

	_, file, _, ok := runtime.Caller(0)
	require.True(t, ok, "failed to determine caller for migrations path")

	return filepath.Join(filepath.Dir(file), "..", "..", "..", "migrations")
}

// truncateAll clears every table between contract subtests so each one
// observes an empty schema, mirroring the fresh map a new in-memory
// repository starts with.
func truncateAll(t *testing.T, db dbresolver.DB) {
	t.Helper()

	_, err := db.ExecContext(context.Background(), `TRUNCATE TABLE
		product_history, product_attributes, product_tags, product_images,
		product_inventory, product_prices, products, categories, users, items
		RESTART IDENTITY CASCADE`)
	require.NoError(t, err, "failed to truncate tables between contract subtests")
}
