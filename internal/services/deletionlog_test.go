package services

import (
	"errors"
	"testing"

	"github.com/catalogsvc/catalog/internal/apperr"
	"github.com/catalogsvc/catalog/internal/domain/deletionlog"
	"github.com/catalogsvc/catalog/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDeletionLogService_FindAllDelegatesToRepository(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockDeletionLogRepository(ctrl)

	productID := "p1"
	filter := deletionlog.Filter{ProductID: &productID, Limit: 10}
	want := []deletionlog.Entry{{ID: "e1", ProductID: "p1", Kind: deletionlog.KindPhysical}}
	repo.EXPECT().FindAll(gomock.Any(), filter).Return(want, nil)

	svc := NewDeletionLogService(repo)

	got, err := svc.FindAll(t.Context(), filter)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestDeletionLogService_FindAllPropagatesStorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockDeletionLogRepository(ctrl)

	repo.EXPECT().FindAll(gomock.Any(), gomock.Any()).
		Return(nil, apperr.Internal("deletionlog", errors.New("query timeout")))

	svc := NewDeletionLogService(repo)

	_, err := svc.FindAll(t.Context(), deletionlog.Filter{})
	require.Error(t, err)
	assert.Equal(t, apperr.KindInternalError, apperr.As(err).Kind)
}
