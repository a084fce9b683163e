package in

import (
	"testing"

	"github.com/catalogsvc/catalog/internal/adapters/inmemory"
	"github.com/catalogsvc/catalog/internal/domain/user"
	"github.com/catalogsvc/catalog/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserTestServer() *UserServer {
	repo := inmemory.NewUserRepository()
	return NewUserServer(services.NewUserService(repo))
}

func TestUserServer_CreateGetUpdateDelete(t *testing.T) {
	srv := newUserTestServer()
	ctx := t.Context()

	created, err := srv.Create(ctx, &UserCreateRequest{Input: user.CreateInput{Username: "alice", Email: "alice@example.com"}})
	require.NoError(t, err)
	assert.Equal(t, "alice", created.User.Username)

	newName := "alice2"
	updated, err := srv.Update(ctx, &UserUpdateRequest{ID: created.User.ID, Input: user.UpdateInput{Username: &newName}})
	require.NoError(t, err)
	assert.Equal(t, "alice2", updated.User.Username)
	assert.Equal(t, "alice@example.com", updated.User.Email.String())

	_, err = srv.Delete(ctx, &UserDeleteRequest{ID: created.User.ID})
	require.NoError(t, err)

	_, err = srv.Get(ctx, &UserGetRequest{ID: created.User.ID})
	assert.Error(t, err)
}

func TestUserServer_CreateRejectsInvalidEmail(t *testing.T) {
	srv := newUserTestServer()
	ctx := t.Context()

	_, err := srv.Create(ctx, &UserCreateRequest{Input: user.CreateInput{Username: "alice", Email: "not-an-email"}})
	assert.Error(t, err)
}
