// Package contracttest holds one parametrized contract-test suite per
// entity, run once per Repository implementation (in-memory, Postgres)
// so both backends are held to the same externally observable behavior.
package contracttest

import (
	"context"
	"testing"

	"github.com/catalogsvc/catalog/internal/apperr"
	"github.com/catalogsvc/catalog/internal/domain/item"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunItemContract exercises item.Repository's full lifecycle against the
// repository built by newRepo. Call this once per backend.
func RunItemContract(t *testing.T, newRepo func() item.Repository) {
	t.Helper()

	t.Run("create and find by id", func(t *testing.T) {
		repo := newRepo()
		ctx := context.Background()

		desc := "a description"
		created, err := repo.Create(ctx, item.Item{Name: "widget", Description: &desc})
		require.NoError(t, err)
		assert.NotZero(t, created.ID)
		assert.False(t, created.Deleted)

		found, err := repo.FindByID(ctx, created.ID, false)
		require.NoError(t, err)
		assert.Equal(t, created.Name, found.Name)
	})

	t.Run("find by id not found", func(t *testing.T) {
		repo := newRepo()

		_, err := repo.FindByID(context.Background(), 999999, false)
		require.Error(t, err)
		assert.Equal(t, apperr.KindNotFound, apperr.As(err).Kind)
	})

	t.Run("update preserves id and created at", func(t *testing.T) {
		repo := newRepo()
		ctx := context.Background()

		created, err := repo.Create(ctx, item.Item{Name: "widget"})
		require.NoError(t, err)

		updated, err := repo.Update(ctx, item.Item{ID: created.ID, Name: "gadget"})
		require.NoError(t, err)
		assert.Equal(t, created.ID, updated.ID)
		assert.Equal(t, created.CreatedAt, updated.CreatedAt)
		assert.Equal(t, "gadget", updated.Name)
	})

	t.Run("logical delete then find by id excludes it by default", func(t *testing.T) {
		repo := newRepo()
		ctx := context.Background()

		created, err := repo.Create(ctx, item.Item{Name: "widget"})
		require.NoError(t, err)

		require.NoError(t, repo.LogicalDelete(ctx, created.ID))

		_, err = repo.FindByID(ctx, created.ID, false)
		assert.Equal(t, apperr.KindNotFound, apperr.As(err).Kind)

		found, err := repo.FindByID(ctx, created.ID, true)
		require.NoError(t, err)
		assert.True(t, found.Deleted)
	})

	t.Run("logical delete of already-deleted item is not found", func(t *testing.T) {
		repo := newRepo()
		ctx := context.Background()

		created, err := repo.Create(ctx, item.Item{Name: "widget"})
		require.NoError(t, err)
		require.NoError(t, repo.LogicalDelete(ctx, created.ID))

		err = repo.LogicalDelete(ctx, created.ID)
		assert.Equal(t, apperr.KindNotFound, apperr.As(err).Kind)
	})

	t.Run("restore of a live item is not found", func(t *testing.T) {
		repo := newRepo()
		ctx := context.Background()

		created, err := repo.Create(ctx, item.Item{Name: "widget"})
		require.NoError(t, err)

		err = repo.Restore(ctx, created.ID)
		assert.Equal(t, apperr.KindNotFound, apperr.As(err).Kind)
	})

	t.Run("restore brings a logically deleted item back", func(t *testing.T) {
		repo := newRepo()
		ctx := context.Background()

		created, err := repo.Create(ctx, item.Item{Name: "widget"})
		require.NoError(t, err)
		require.NoError(t, repo.LogicalDelete(ctx, created.ID))
		require.NoError(t, repo.Restore(ctx, created.ID))

		found, err := repo.FindByID(ctx, created.ID, false)
		require.NoError(t, err)
		assert.False(t, found.Deleted)
	})

	t.Run("physical delete removes it entirely", func(t *testing.T) {
		repo := newRepo()
		ctx := context.Background()

		created, err := repo.Create(ctx, item.Item{Name: "widget"})
		require.NoError(t, err)
		require.NoError(t, repo.PhysicalDelete(ctx, created.ID))

		_, err = repo.FindByID(ctx, created.ID, true)
		assert.Equal(t, apperr.KindNotFound, apperr.As(err).Kind)
	})

	t.Run("find all excludes deleted unless requested", func(t *testing.T) {
		repo := newRepo()
		ctx := context.Background()

		a, err := repo.Create(ctx, item.Item{Name: "a"})
		require.NoError(t, err)
		_, err = repo.Create(ctx, item.Item{Name: "b"})
		require.NoError(t, err)
		require.NoError(t, repo.LogicalDelete(ctx, a.ID))

		live, err := repo.FindAll(ctx, item.Filter{Limit: 50})
		require.NoError(t, err)
		assert.Len(t, live, 1)

		all, err := repo.FindAll(ctx, item.Filter{IncludeDeleted: true, Limit: 50})
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("validate deletion reports no blockers", func(t *testing.T) {
		repo := newRepo()
		ctx := context.Background()

		created, err := repo.Create(ctx, item.Item{Name: "widget"})
		require.NoError(t, err)

		check, err := repo.ValidateDeletion(ctx, created.ID)
		require.NoError(t, err)
		assert.True(t, check.CanDelete)
	})
}
