package services

import (
	"errors"
	"testing"

	"github.com/catalogsvc/catalog/internal/apperr"
	"github.com/catalogsvc/catalog/internal/domain/product"
	"github.com/catalogsvc/catalog/internal/mock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestProductService_SetPriceRejectsNegativeSelling(t *testing.T) {
	ctrl := gomock.NewController(t)
	productRepo := mock.NewMockProductRepository(ctrl)
	metadataRepo := mock.NewMockMetadataRepository(ctrl)

	svc := NewProductService(productRepo, metadataRepo)

	_, err := svc.SetPrice(t.Context(), product.Price{
		ProductID: "p1",
		Selling:   decimal.NewFromInt(-5),
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidationError, apperr.As(err).Kind)
}

func TestProductService_SetPriceDelegatesToRepository(t *testing.T) {
	ctrl := gomock.NewController(t)
	productRepo := mock.NewMockProductRepository(ctrl)
	metadataRepo := mock.NewMockMetadataRepository(ctrl)

	want := product.Price{ProductID: "p1", Selling: decimal.NewFromInt(10)}
	productRepo.EXPECT().SetPrice(gomock.Any(), want).Return(want, nil)

	svc := NewProductService(productRepo, metadataRepo)

	got, err := svc.SetPrice(t.Context(), want)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestProductService_FindByIDPropagatesMetadataError(t *testing.T) {
	ctrl := gomock.NewController(t)
	productRepo := mock.NewMockProductRepository(ctrl)
	metadataRepo := mock.NewMockMetadataRepository(ctrl)

	agg := &product.Aggregate{Product: product.Product{ID: "p1", Name: "Widget"}}
	productRepo.EXPECT().FindByID(gomock.Any(), "p1", false).Return(agg, nil)
	metadataRepo.EXPECT().FindByEntity(gomock.Any(), productMetadataKind, "p1").
		Return(nil, apperr.Internal("metadata", errors.New("connection refused")))

	svc := NewProductService(productRepo, metadataRepo)

	_, err := svc.FindByID(t.Context(), "p1", false)
	require.Error(t, err)
	assert.Equal(t, apperr.KindInternalError, apperr.As(err).Kind)
}

func TestProductService_CreateRejectsInvalidSKU(t *testing.T) {
	ctrl := gomock.NewController(t)
	productRepo := mock.NewMockProductRepository(ctrl)
	metadataRepo := mock.NewMockMetadataRepository(ctrl)

	svc := NewProductService(productRepo, metadataRepo)

	_, err := svc.Create(t.Context(), product.CreateInput{SKU: "!!", Name: "Widget"})
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidationError, apperr.As(err).Kind)
}
