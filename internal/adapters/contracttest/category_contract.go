package contracttest

import (
	"context"
	"testing"

	"github.com/catalogsvc/catalog/internal/apperr"
	"github.com/catalogsvc/catalog/internal/domain/category"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunCategoryContract exercises category.Repository's full lifecycle,
// including the forest-specific operations (FindChildren, FindPath, Move)
// and the TreeReader methods ValidateMove depends on.
func RunCategoryContract(t *testing.T, newRepo func() category.Repository) {
	t.Helper()

	t.Run("create and find by id", func(t *testing.T) {
		repo := newRepo()
		ctx := context.Background()

		created, err := repo.Create(ctx, category.Category{Name: "root"})
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)

		found, err := repo.FindByID(ctx, created.ID, false)
		require.NoError(t, err)
		assert.Equal(t, "root", found.Name)
	})

	t.Run("find children and path", func(t *testing.T) {
		repo := newRepo()
		ctx := context.Background()

		root, err := repo.Create(ctx, category.Category{Name: "root"})
		require.NoError(t, err)

		child, err := repo.Create(ctx, category.Category{Name: "child", ParentID: &root.ID})
		require.NoError(t, err)

		children, err := repo.FindChildren(ctx, root.ID)
		require.NoError(t, err)
		require.Len(t, children, 1)
		assert.Equal(t, child.ID, children[0].ID)

		path, err := repo.FindPath(ctx, child.ID)
		require.NoError(t, err)
		require.Len(t, path, 2)
		assert.Equal(t, root.ID, path[0].ID)
		assert.Equal(t, child.ID, path[1].ID)
	})

	t.Run("depth of and parent of", func(t *testing.T) {
		repo := newRepo()
		ctx := context.Background()

		root, err := repo.Create(ctx, category.Category{Name: "root"})
		require.NoError(t, err)
		child, err := repo.Create(ctx, category.Category{Name: "child", ParentID: &root.ID})
		require.NoError(t, err)

		rootDepth, err := repo.DepthOf(ctx, root.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, rootDepth)

		childDepth, err := repo.DepthOf(ctx, child.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, childDepth)

		parent, err := repo.ParentOf(ctx, child.ID)
		require.NoError(t, err)
		require.NotNil(t, parent)
		assert.Equal(t, root.ID, *parent)
	})

	t.Run("sibling name exists among live categories only", func(t *testing.T) {
		repo := newRepo()
		ctx := context.Background()

		root, err := repo.Create(ctx, category.Category{Name: "root"})
		require.NoError(t, err)
		sibling, err := repo.Create(ctx, category.Category{Name: "electronics", ParentID: &root.ID})
		require.NoError(t, err)

		exists, err := repo.SiblingNameExists(ctx, &root.ID, "electronics", "")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.SiblingNameExists(ctx, &root.ID, "electronics", sibling.ID)
		require.NoError(t, err)
		assert.False(t, exists)

		require.NoError(t, repo.LogicalDelete(ctx, sibling.ID))

		exists, err = repo.SiblingNameExists(ctx, &root.ID, "electronics", "")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("move persists new parent and sort order", func(t *testing.T) {
		repo := newRepo()
		ctx := context.Background()

		a, err := repo.Create(ctx, category.Category{Name: "a"})
		require.NoError(t, err)
		b, err := repo.Create(ctx, category.Category{Name: "b"})
		require.NoError(t, err)

		moved, err := repo.Move(ctx, b.ID, &a.ID, 3)
		require.NoError(t, err)
		require.NotNil(t, moved.ParentID)
		assert.Equal(t, a.ID, *moved.ParentID)
		assert.Equal(t, 3, moved.SortOrder)
	})

	t.Run("physical delete blocked by children", func(t *testing.T) {
		repo := newRepo()
		ctx := context.Background()

		root, err := repo.Create(ctx, category.Category{Name: "root"})
		require.NoError(t, err)
		_, err = repo.Create(ctx, category.Category{Name: "child", ParentID: &root.ID})
		require.NoError(t, err)

		err = repo.PhysicalDelete(ctx, root.ID)
		require.Error(t, err)
		assert.Equal(t, apperr.KindValidationError, apperr.As(err).Kind)
	})

	t.Run("validate deletion reports children as blockers", func(t *testing.T) {
		repo := newRepo()
		ctx := context.Background()

		root, err := repo.Create(ctx, category.Category{Name: "root"})
		require.NoError(t, err)
		_, err = repo.Create(ctx, category.Category{Name: "child", ParentID: &root.ID})
		require.NoError(t, err)

		check, err := repo.ValidateDeletion(ctx, root.ID)
		require.NoError(t, err)
		assert.False(t, check.CanDelete)
		assert.NotEmpty(t, check.Blockers)
	})

	t.Run("logical delete then restore", func(t *testing.T) {
		repo := newRepo()
		ctx := context.Background()

		c, err := repo.Create(ctx, category.Category{Name: "leaf"})
		require.NoError(t, err)

		require.NoError(t, repo.LogicalDelete(ctx, c.ID))
		_, err = repo.FindByID(ctx, c.ID, false)
		assert.Equal(t, apperr.KindNotFound, apperr.As(err).Kind)

		require.NoError(t, repo.Restore(ctx, c.ID))
		found, err := repo.FindByID(ctx, c.ID, false)
		require.NoError(t, err)
		assert.False(t, found.Deleted)
	})
}
