package in

import (
	"testing"

	"github.com/catalogsvc/catalog/internal/adapters/inmemory"
	"github.com/catalogsvc/catalog/internal/deletion"
	"github.com/catalogsvc/catalog/internal/domain/item"
	"github.com/catalogsvc/catalog/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newItemTestServer() *ItemServer {
	repo := inmemory.NewItemRepository()
	service := services.NewItemService(repo)
	facade := deletion.NewFacade(deletion.NewItemStrategy(repo), nil, nil)

	return NewItemServer(service, facade)
}

func TestItemServer_CreateGetUpdateDelete(t *testing.T) {
	srv := newItemTestServer()
	ctx := t.Context()

	created, err := srv.Create(ctx, &ItemCreateRequest{Input: item.CreateInput{Name: "Widget"}})
	require.NoError(t, err)
	assert.Equal(t, "Widget", created.Item.Name)

	got, err := srv.Get(ctx, &ItemGetRequest{ID: created.Item.ID})
	require.NoError(t, err)
	assert.Equal(t, created.Item.ID, got.Item.ID)

	updated, err := srv.Update(ctx, &ItemUpdateRequest{ID: created.Item.ID, Input: item.UpdateInput{Name: "Gadget"}})
	require.NoError(t, err)
	assert.Equal(t, "Gadget", updated.Item.Name)

	_, err = srv.Delete(ctx, &ItemDeleteRequest{ID: created.Item.ID, Kind: deletion.KindLogical})
	require.NoError(t, err)

	_, err = srv.Get(ctx, &ItemGetRequest{ID: created.Item.ID})
	assert.Error(t, err)
}

func TestItemServer_List(t *testing.T) {
	srv := newItemTestServer()
	ctx := t.Context()

	_, err := srv.Create(ctx, &ItemCreateRequest{Input: item.CreateInput{Name: "One"}})
	require.NoError(t, err)
	_, err = srv.Create(ctx, &ItemCreateRequest{Input: item.CreateInput{Name: "Two"}})
	require.NoError(t, err)

	listed, err := srv.List(ctx, &ItemListRequest{})
	require.NoError(t, err)
	assert.Len(t, listed.Items, 2)
}
