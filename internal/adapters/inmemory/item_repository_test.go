package inmemory_test

import (
	"testing"

	"github.com/catalogsvc/catalog/internal/adapters/contracttest"
	"github.com/catalogsvc/catalog/internal/adapters/inmemory"
	"github.com/catalogsvc/catalog/internal/domain/item"
)

func TestItemRepository_Contract(t *testing.T) {
	contracttest.RunItemContract(t, func() item.Repository {
		return inmemory.NewItemRepository()
	})
}
