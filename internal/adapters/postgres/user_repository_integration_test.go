//go:build integration

package postgres

import (
	"testing"

	"github.com/catalogsvc/catalog/internal/adapters/contracttest"
	"github.com/catalogsvc/catalog/internal/domain/user"
)

func TestUserRepository_Contract(t *testing.T) {
	db := setupDB(t)

	contracttest.RunUserContract(t, func() user.Repository {
		truncateAll(t, db)
		return NewUserRepository(db)
	})
}
