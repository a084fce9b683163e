//go:build integration

package postgres

import (
	"testing"

	"github.com/catalogsvc/catalog/internal/adapters/contracttest"
	"github.com/catalogsvc/catalog/internal/domain/product"
)

func TestProductRepository_Contract(t *testing.T) {
	db := setupDB(t)

	contracttest.RunProductContract(t, func() product.Repository {
		truncateAll(t, db)
		return NewProductRepository(db)
	})
}
