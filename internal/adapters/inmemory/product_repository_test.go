package inmemory_test

import (
	"testing"

	"github.com/catalogsvc/catalog/internal/adapters/contracttest"
	"github.com/catalogsvc/catalog/internal/adapters/inmemory"
	"github.com/catalogsvc/catalog/internal/domain/product"
)

func TestProductRepository_Contract(t *testing.T) {
	contracttest.RunProductContract(t, func() product.Repository {
		return inmemory.NewProductRepository()
	})
}
