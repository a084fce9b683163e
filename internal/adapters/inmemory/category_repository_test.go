package inmemory_test

import (
	"testing"

	"github.com/catalogsvc/catalog/internal/adapters/contracttest"
	"github.com/catalogsvc/catalog/internal/adapters/inmemory"
	"github.com/catalogsvc/catalog/internal/domain/category"
)

func TestCategoryRepository_Contract(t *testing.T) {
	contracttest.RunCategoryContract(t, func() category.Repository {
		return inmemory.NewCategoryRepository()
	})
}
