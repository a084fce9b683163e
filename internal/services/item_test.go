package services

import (
	"errors"
	"testing"

	"github.com/catalogsvc/catalog/internal/apperr"
	"github.com/catalogsvc/catalog/internal/domain/item"
	"github.com/catalogsvc/catalog/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestItemService_CreateRejectsEmptyName(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockItemRepository(ctrl)

	svc := NewItemService(repo)

	_, err := svc.Create(t.Context(), item.CreateInput{Name: "  "})
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidationError, apperr.As(err).Kind)
}

func TestItemService_CreatePropagatesStorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockItemRepository(ctrl)

	storageErr := apperr.Internal("item", errors.New("connection refused"))
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(item.Item{}, storageErr)

	svc := NewItemService(repo)

	_, err := svc.Create(t.Context(), item.CreateInput{Name: "Widget"})
	require.Error(t, err)
	assert.Equal(t, apperr.KindInternalError, apperr.As(err).Kind)
}

func TestItemService_UpdateNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockItemRepository(ctrl)

	repo.EXPECT().FindByID(gomock.Any(), uint64(7), false).Return(nil, apperr.NotFound("item", "7"))

	svc := NewItemService(repo)

	_, err := svc.Update(t.Context(), 7, item.UpdateInput{Name: "Gadget"})
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.As(err).Kind)
}

func TestItemService_FindAllDelegatesToRepository(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockItemRepository(ctrl)

	want := []item.Item{{ID: 1, Name: "Widget"}}
	repo.EXPECT().FindAll(gomock.Any(), item.Filter{Limit: 10}).Return(want, nil)

	svc := NewItemService(repo)

	got, err := svc.FindAll(t.Context(), item.Filter{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
