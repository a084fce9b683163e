package services

import (
	"errors"
	"testing"

	"github.com/catalogsvc/catalog/internal/apperr"
	"github.com/catalogsvc/catalog/internal/domain/user"
	"github.com/catalogsvc/catalog/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUserService_CreateRejectsInvalidEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)

	svc := NewUserService(repo)

	_, err := svc.Create(t.Context(), user.CreateInput{Username: "alice", Email: "not-an-email"})
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidationError, apperr.As(err).Kind)
}

func TestUserService_CreateConflictsOnExistingEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)

	existing := &user.User{ID: "u1", Username: "bob"}
	repo.EXPECT().FindByEmail(gomock.Any(), "alice@example.com").Return(existing, nil)

	svc := NewUserService(repo)

	_, err := svc.Create(t.Context(), user.CreateInput{Username: "alice", Email: "alice@example.com"})
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.As(err).Kind)
}

func TestUserService_CreatePropagatesStorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)

	repo.EXPECT().FindByEmail(gomock.Any(), "alice@example.com").Return(nil, apperr.NotFound("user", "alice@example.com"))
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(user.User{}, apperr.Internal("user", errors.New("write failed")))

	svc := NewUserService(repo)

	_, err := svc.Create(t.Context(), user.CreateInput{Username: "alice", Email: "alice@example.com"})
	require.Error(t, err)
	assert.Equal(t, apperr.KindInternalError, apperr.As(err).Kind)
}

func TestUserService_DeleteDelegatesToRepository(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)

	repo.EXPECT().Delete(gomock.Any(), "u1").Return(nil)

	svc := NewUserService(repo)

	err := svc.Delete(t.Context(), "u1")
	require.NoError(t, err)
}
