package in

import (
	"testing"

	"github.com/catalogsvc/catalog/internal/adapters/inmemory"
	"github.com/catalogsvc/catalog/internal/deletion"
	"github.com/catalogsvc/catalog/internal/domain/category"
	"github.com/catalogsvc/catalog/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCategoryTestServer() *CategoryServer {
	repo := inmemory.NewCategoryRepository()
	service := services.NewCategoryService(repo)
	facade := deletion.NewFacade(nil, deletion.NewCategoryStrategy(repo), nil)

	return NewCategoryServer(service, facade)
}

func TestCategoryServer_CreateGetDelete(t *testing.T) {
	srv := newCategoryTestServer()
	ctx := t.Context()

	created, err := srv.Create(ctx, &CategoryCreateRequest{Input: category.CreateInput{Name: "Electronics", IsActive: true}})
	require.NoError(t, err)
	assert.Equal(t, "Electronics", created.Category.Name)

	got, err := srv.Get(ctx, &CategoryGetRequest{ID: created.Category.ID})
	require.NoError(t, err)
	assert.Equal(t, created.Category.ID, got.Category.ID)

	_, err = srv.Delete(ctx, &CategoryDeleteRequest{ID: created.Category.ID, Kind: deletion.KindLogical})
	require.NoError(t, err)

	_, err = srv.Get(ctx, &CategoryGetRequest{ID: created.Category.ID})
	assert.Error(t, err)
}

func TestCategoryServer_MoveRejectsSelfParent(t *testing.T) {
	srv := newCategoryTestServer()
	ctx := t.Context()

	created, err := srv.Create(ctx, &CategoryCreateRequest{Input: category.CreateInput{Name: "Parent", IsActive: true}})
	require.NoError(t, err)

	selfID := created.Category.ID
	_, err = srv.Move(ctx, &CategoryMoveRequest{ID: selfID, NewParentID: &selfID, NewSortOrder: 0})
	assert.Error(t, err)
}
