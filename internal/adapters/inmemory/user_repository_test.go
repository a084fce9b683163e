package inmemory_test

import (
	"testing"

	"github.com/catalogsvc/catalog/internal/adapters/contracttest"
	"github.com/catalogsvc/catalog/internal/adapters/inmemory"
	"github.com/catalogsvc/catalog/internal/domain/user"
)

func TestUserRepository_Contract(t *testing.T) {
	contracttest.RunUserContract(t, func() user.Repository {
		return inmemory.NewUserRepository()
	})
}
