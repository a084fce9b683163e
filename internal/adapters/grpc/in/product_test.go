package in

import (
	"testing"

	"github.com/catalogsvc/catalog/internal/adapters/inmemory"
	"github.com/catalogsvc/catalog/internal/deletion"
	"github.com/catalogsvc/catalog/internal/domain/product"
	"github.com/catalogsvc/catalog/internal/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProductTestServer() *ProductServer {
	productRepo := inmemory.NewProductRepository()
	metadataRepo := inmemory.NewMetadataRepository()
	deletionLogRepo := inmemory.NewDeletionLogRepository()

	service := services.NewProductService(productRepo, metadataRepo)
	facade := deletion.NewFacade(nil, nil, deletion.NewProductStrategy(productRepo, deletionLogRepo))

	return NewProductServer(service, facade)
}

func newProductCreateInput() product.CreateInput {
	return product.CreateInput{
		SKU:    "SKU-001",
		Name:   "Widget",
		Status: product.StatusDraft,
		Dimensions: product.Dimensions{
			Length: decimal.NewFromInt(1),
			Width:  decimal.NewFromInt(1),
			Height: decimal.NewFromInt(1),
		},
		Shipping: product.ShippingInfo{Weight: decimal.NewFromInt(1)},
	}
}

func TestProductServer_CreateGetDelete(t *testing.T) {
	srv := newProductTestServer()
	ctx := t.Context()

	created, err := srv.Create(ctx, &ProductCreateRequest{Input: newProductCreateInput()})
	require.NoError(t, err)
	assert.Equal(t, "Widget", created.Product.Name)

	got, err := srv.Get(ctx, &ProductGetRequest{ID: created.Product.ID})
	require.NoError(t, err)
	assert.Equal(t, created.Product.ID, got.Product.Product.ID)

	_, err = srv.Delete(ctx, &ProductDeleteRequest{ID: created.Product.ID, Kind: deletion.KindLogical})
	require.NoError(t, err)

	_, err = srv.Get(ctx, &ProductGetRequest{ID: created.Product.ID})
	assert.Error(t, err)
}

func TestProductServer_List(t *testing.T) {
	srv := newProductTestServer()
	ctx := t.Context()

	_, err := srv.Create(ctx, &ProductCreateRequest{Input: newProductCreateInput()})
	require.NoError(t, err)

	listed, err := srv.List(ctx, &ProductListRequest{})
	require.NoError(t, err)
	assert.Len(t, listed.Products, 1)
}
