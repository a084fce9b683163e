//go:build integration

package postgres

import (
	"testing"

	"github.com/catalogsvc/catalog/internal/adapters/contracttest"
	"github.com/catalogsvc/catalog/internal/domain/item"
)

func TestItemRepository_Contract(t *testing.T) {
	db := setupDB(t)

	contracttest.RunItemContract(t, func() item.Repository {
		truncateAll(t, db)
		return NewItemRepository(db)
	})
}
