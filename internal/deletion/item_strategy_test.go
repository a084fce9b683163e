package deletion

import (
	"testing"

	"github.com/catalogsvc/catalog/internal/apperr"
	"github.com/catalogsvc/catalog/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestItemStrategy_DeleteRejectsNonNumericID(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockItemRepository(ctrl)

	strategy := NewItemStrategy(repo)

	err := strategy.Delete(t.Context(), "not-a-number", KindLogical)
	require.Error(t, err)

	de, ok := err.(Error)
	require.True(t, ok)
	assert.Equal(t, ErrorKindValidationFailed, de.Kind)
}

func TestItemStrategy_DeleteLogicalDelegatesToRepository(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockItemRepository(ctrl)

	repo.EXPECT().LogicalDelete(gomock.Any(), uint64(42)).Return(nil)

	strategy := NewItemStrategy(repo)

	err := strategy.Delete(t.Context(), "42", KindLogical)
	require.NoError(t, err)
}

func TestItemStrategy_DeleteTranslatesNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockItemRepository(ctrl)

	repo.EXPECT().PhysicalDelete(gomock.Any(), uint64(42)).Return(apperr.NotFound("item", "42"))

	strategy := NewItemStrategy(repo)

	err := strategy.Delete(t.Context(), "42", KindPhysical)
	require.Error(t, err)

	de, ok := err.(Error)
	require.True(t, ok)
	assert.Equal(t, ErrorKindNotFound, de.Kind)
}

func TestItemStrategy_DeleteRestoreDelegatesToRepository(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockItemRepository(ctrl)

	repo.EXPECT().Restore(gomock.Any(), uint64(42)).Return(nil)

	strategy := NewItemStrategy(repo)

	err := strategy.Delete(t.Context(), "42", KindRestore)
	require.NoError(t, err)
}

func TestItemStrategy_DeleteUnknownKind(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockItemRepository(ctrl)

	strategy := NewItemStrategy(repo)

	err := strategy.Delete(t.Context(), "42", Kind("bogus"))
	require.Error(t, err)

	de, ok := err.(Error)
	require.True(t, ok)
	assert.Equal(t, ErrorKindValidationFailed, de.Kind)
}
