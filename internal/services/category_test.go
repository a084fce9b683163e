package services

import (
	"testing"

	"github.com/catalogsvc/catalog/internal/apperr"
	"github.com/catalogsvc/catalog/internal/domain/category"
	"github.com/catalogsvc/catalog/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCategoryService_CreateRejectsDuplicateSiblingName(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockCategoryRepository(ctrl)

	repo.EXPECT().SiblingNameExists(gomock.Any(), (*string)(nil), "Shoes", "").Return(true, nil)

	svc := NewCategoryService(repo)

	_, err := svc.Create(t.Context(), category.CreateInput{Name: "Shoes"})
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.As(err).Kind)
}

func TestCategoryService_CreatePropagatesParentLookupError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockCategoryRepository(ctrl)

	parentID := "missing-parent"
	repo.EXPECT().FindByID(gomock.Any(), parentID, false).Return(nil, apperr.NotFound("category", parentID))

	svc := NewCategoryService(repo)

	_, err := svc.Create(t.Context(), category.CreateInput{Name: "Shoes", ParentID: &parentID})
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.As(err).Kind)
}

func TestCategoryService_MoveRejectsSelfParent(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockCategoryRepository(ctrl)

	existing := &category.Category{ID: "c1", Name: "Shoes"}
	repo.EXPECT().FindByID(gomock.Any(), "c1", false).Return(existing, nil)

	svc := NewCategoryService(repo)

	selfID := "c1"
	_, err := svc.Move(t.Context(), "c1", &selfID, 0)
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidationError, apperr.As(err).Kind)
}

func TestCategoryService_FindChildrenDelegatesToRepository(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockCategoryRepository(ctrl)

	want := []category.Category{{ID: "c2", Name: "Sneakers"}}
	repo.EXPECT().FindChildren(gomock.Any(), "c1").Return(want, nil)

	svc := NewCategoryService(repo)

	got, err := svc.FindChildren(t.Context(), "c1")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
