//go:build integration

package postgres

import (
	"testing"

	"github.com/catalogsvc/catalog/internal/adapters/contracttest"
	"github.com/catalogsvc/catalog/internal/domain/category"
)

func TestCategoryRepository_Contract(t *testing.T) {
	db := setupDB(t)

	contracttest.RunCategoryContract(t, func() category.Repository {
		truncateAll(t, db)
		return NewCategoryRepository(db)
	})
}
