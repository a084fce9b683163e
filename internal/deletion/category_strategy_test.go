package deletion

import (
	"testing"

	"github.com/catalogsvc/catalog/internal/apperr"
	"github.com/catalogsvc/catalog/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCategoryStrategy_DeletePhysicalBlockedByChildren(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockCategoryRepository(ctrl)

	repo.EXPECT().PhysicalDelete(gomock.Any(), "c1").
		Return(apperr.Validation("category", "category has child categories"))

	strategy := NewCategoryStrategy(repo)

	err := strategy.Delete(t.Context(), "c1", KindPhysical)
	require.Error(t, err)

	de, ok := err.(Error)
	require.True(t, ok)
	assert.Equal(t, ErrorKindValidationFailed, de.Kind)
}

func TestCategoryStrategy_DeleteLogicalDelegatesToRepository(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockCategoryRepository(ctrl)

	repo.EXPECT().LogicalDelete(gomock.Any(), "c1").Return(nil)

	strategy := NewCategoryStrategy(repo)

	err := strategy.Delete(t.Context(), "c1", KindLogical)
	require.NoError(t, err)
}

func TestCategoryStrategy_DeleteUnknownKind(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockCategoryRepository(ctrl)

	strategy := NewCategoryStrategy(repo)

	err := strategy.Delete(t.Context(), "c1", Kind("bogus"))
	require.Error(t, err)

	de, ok := err.(Error)
	require.True(t, ok)
	assert.Equal(t, ErrorKindValidationFailed, de.Kind)
}
