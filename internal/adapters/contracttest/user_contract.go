package contracttest

import (
	"context"
	"testing"

	"github.com/catalogsvc/catalog/internal/apperr"
	"github.com/catalogsvc/catalog/internal/domain/shared"
	"github.com/catalogsvc/catalog/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunUserContract exercises user.Repository against the repository built
// by newRepo. User supports only a hard delete, so this suite has no
// logical-delete/restore cases.
func RunUserContract(t *testing.T, newRepo func() user.Repository) {
	t.Helper()

	newUser := func(username, email string) user.User {
		e, err := shared.NewEmail(email)
		require.NoError(t, err)
		return user.User{Username: username, Email: e}
	}

	t.Run("create and find by id", func(t *testing.T) {
		repo := newRepo()
		ctx := context.Background()

		created, err := repo.Create(ctx, newUser("alice", "alice@example.com"))
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)

		found, err := repo.FindByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.Username, found.Username)
	})

	t.Run("find by email", func(t *testing.T) {
		repo := newRepo()
		ctx := context.Background()

		_, err := repo.Create(ctx, newUser("bob", "bob@example.com"))
		require.NoError(t, err)

		found, err := repo.FindByEmail(ctx, "bob@example.com")
		require.NoError(t, err)
		assert.Equal(t, "bob", found.Username)
	})

	t.Run("find by email not found", func(t *testing.T) {
		repo := newRepo()

		_, err := repo.FindByEmail(context.Background(), "nobody@example.com")
		require.Error(t, err)
		assert.Equal(t, apperr.KindNotFound, apperr.As(err).Kind)
	})

	t.Run("update preserves id and created at", func(t *testing.T) {
		repo := newRepo()
		ctx := context.Background()

		created, err := repo.Create(ctx, newUser("carol", "carol@example.com"))
		require.NoError(t, err)

		updated, err := repo.Update(ctx, user.User{ID: created.ID, Username: "carolyn", Email: created.Email})
		require.NoError(t, err)
		assert.Equal(t, created.ID, updated.ID)
		assert.Equal(t, created.CreatedAt, updated.CreatedAt)
		assert.Equal(t, "carolyn", updated.Username)
	})

	t.Run("delete removes it entirely", func(t *testing.T) {
		repo := newRepo()
		ctx := context.Background()

		created, err := repo.Create(ctx, newUser("dave", "dave@example.com"))
		require.NoError(t, err)

		require.NoError(t, repo.Delete(ctx, created.ID))

		_, err = repo.FindByID(ctx, created.ID)
		assert.Equal(t, apperr.KindNotFound, apperr.As(err).Kind)
	})

	t.Run("delete of unknown id is not found", func(t *testing.T) {
		repo := newRepo()

		err := repo.Delete(context.Background(), "does-not-exist")
		assert.Equal(t, apperr.KindNotFound, apperr.As(err).Kind)
	})

	t.Run("find all paginates", func(t *testing.T) {
		repo := newRepo()
		ctx := context.Background()

		for i := 0; i < 3; i++ {
			_, err := repo.Create(ctx, newUser("user", "u"+string(rune('a'+i))+"@example.com"))
			require.NoError(t, err)
		}

		page, err := repo.FindAll(ctx, user.Filter{Limit: 2, Offset: 0})
		require.NoError(t, err)
		assert.Len(t, page, 2)
	})
}
