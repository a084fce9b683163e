package contracttest

import (
	"context"
	"testing"

	"github.com/catalogsvc/catalog/internal/apperr"
	"github.com/catalogsvc/catalog/internal/domain/shared"
	"github.com/catalogsvc/catalog/internal/domain/product"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunProductContract exercises product.Repository's full lifecycle,
// including the owned sub-aggregates (price, inventory, images, tags,
// attributes, history).
func RunProductContract(t *testing.T, newRepo func() product.Repository) {
	t.Helper()

	newProduct := func(sku string) product.Aggregate {
		s, err := shared.NewSKU(sku)
		require.NoError(t, err)
		return product.Aggregate{Product: product.Product{SKU: s, Name: "widget", Status: product.StatusDraft}}
	}

	t.Run("create and find by id", func(t *testing.T) {
		repo := newRepo()
		ctx := context.Background()

		created, err := repo.Create(ctx, newProduct("widget-1"))
		require.NoError(t, err)
		assert.NotEmpty(t, created.Product.ID)

		found, err := repo.FindByID(ctx, created.Product.ID, false)
		require.NoError(t, err)
		assert.Equal(t, created.Product.Name, found.Product.Name)
	})

	t.Run("create rejects duplicate sku", func(t *testing.T) {
		repo := newRepo()
		ctx := context.Background()

		_, err := repo.Create(ctx, newProduct("dup-sku"))
		require.NoError(t, err)

		_, err = repo.Create(ctx, newProduct("dup-sku"))
		require.Error(t, err)
		assert.Equal(t, apperr.KindConflict, apperr.As(err).Kind)
	})

	t.Run("set price and read it back on the aggregate", func(t *testing.T) {
		repo := newRepo()
		ctx := context.Background()

		created, err := repo.Create(ctx, newProduct("priced"))
		require.NoError(t, err)

		price := product.Price{ProductID: created.Product.ID, Selling: decimal.NewFromInt(10), Currency: "USD"}
		_, err = repo.SetPrice(ctx, price)
		require.NoError(t, err)

		found, err := repo.FindByID(ctx, created.Product.ID, false)
		require.NoError(t, err)
		require.NotNil(t, found.Price)
		assert.True(t, found.Price.Selling.Equal(decimal.NewFromInt(10)))
	})

	t.Run("set inventory and read it back", func(t *testing.T) {
		repo := newRepo()
		ctx := context.Background()

		created, err := repo.Create(ctx, newProduct("stocked"))
		require.NoError(t, err)

		_, err = repo.SetInventory(ctx, product.Inventory{ProductID: created.Product.ID, Quantity: 5})
		require.NoError(t, err)

		found, err := repo.FindByID(ctx, created.Product.ID, false)
		require.NoError(t, err)
		require.NotNil(t, found.Inventory)
		assert.Equal(t, 5, found.Inventory.Quantity)
	})

	t.Run("add and remove image", func(t *testing.T) {
		repo := newRepo()
		ctx := context.Background()

		created, err := repo.Create(ctx, newProduct("imaged"))
		require.NoError(t, err)

		img, err := repo.AddImage(ctx, product.Image{ProductID: created.Product.ID, URL: "http://example.com/a.png", IsMain: true})
		require.NoError(t, err)
		assert.NotEmpty(t, img.ID)

		found, err := repo.FindByID(ctx, created.Product.ID, false)
		require.NoError(t, err)
		assert.Len(t, found.Images, 1)

		require.NoError(t, repo.RemoveImage(ctx, created.Product.ID, img.ID))

		found, err = repo.FindByID(ctx, created.Product.ID, false)
		require.NoError(t, err)
		assert.Len(t, found.Images, 0)
	})

	t.Run("set tags replaces the set", func(t *testing.T) {
		repo := newRepo()
		ctx := context.Background()

		created, err := repo.Create(ctx, newProduct("tagged"))
		require.NoError(t, err)

		_, err = repo.SetTags(ctx, created.Product.ID, []string{"sale", "new"})
		require.NoError(t, err)

		_, err = repo.SetTags(ctx, created.Product.ID, []string{"clearance"})
		require.NoError(t, err)

		found, err := repo.FindByID(ctx, created.Product.ID, false)
		require.NoError(t, err)
		require.Len(t, found.Tags, 1)
		assert.Equal(t, "clearance", found.Tags[0].Value)
	})

	t.Run("set attributes replaces the set", func(t *testing.T) {
		repo := newRepo()
		ctx := context.Background()

		created, err := repo.Create(ctx, newProduct("attributed"))
		require.NoError(t, err)

		_, err = repo.SetAttributes(ctx, created.Product.ID, map[string]string{"color": "red"})
		require.NoError(t, err)

		found, err := repo.FindByID(ctx, created.Product.ID, false)
		require.NoError(t, err)
		require.Len(t, found.Attributes, 1)
	})

	t.Run("append and find history, append-only", func(t *testing.T) {
		repo := newRepo()
		ctx := context.Background()

		created, err := repo.Create(ctx, newProduct("historied"))
		require.NoError(t, err)

		_, err = repo.AppendHistory(ctx, product.HistoryEvent{ProductID: created.Product.ID, Field: "status", OldValue: "Draft", NewValue: "Active"})
		require.NoError(t, err)

		history, err := repo.FindHistory(ctx, created.Product.ID)
		require.NoError(t, err)
		require.Len(t, history, 1)
		assert.Equal(t, "status", history[0].Field)
	})

	t.Run("logical delete then find deleted", func(t *testing.T) {
		repo := newRepo()
		ctx := context.Background()

		created, err := repo.Create(ctx, newProduct("deletable"))
		require.NoError(t, err)

		require.NoError(t, repo.LogicalDelete(ctx, created.Product.ID))

		_, err = repo.FindByID(ctx, created.Product.ID, false)
		assert.Equal(t, apperr.KindNotFound, apperr.As(err).Kind)

		deleted, err := repo.FindDeleted(ctx, product.Filter{Limit: 50})
		require.NoError(t, err)
		require.Len(t, deleted, 1)
		assert.Equal(t, created.Product.ID, deleted[0].Product.ID)
	})

	t.Run("physical delete removes the product and every sub-aggregate", func(t *testing.T) {
		repo := newRepo()
		ctx := context.Background()

		created, err := repo.Create(ctx, newProduct("fully-deletable"))
		require.NoError(t, err)

		_, err = repo.SetPrice(ctx, product.Price{ProductID: created.Product.ID, Selling: decimal.NewFromInt(1), Currency: "USD"})
		require.NoError(t, err)

		require.NoError(t, repo.PhysicalDelete(ctx, created.Product.ID))

		_, err = repo.FindByID(ctx, created.Product.ID, true)
		assert.Equal(t, apperr.KindNotFound, apperr.As(err).Kind)
	})
}
