package deletion

import (
	"testing"

	"github.com/catalogsvc/catalog/internal/domain/deletionlog"
	"github.com/catalogsvc/catalog/internal/domain/product"
	"github.com/catalogsvc/catalog/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestProductStrategy_PhysicalDeleteBlockedWithoutForce(t *testing.T) {
	ctrl := gomock.NewController(t)
	productRepo := mock.NewMockProductRepository(ctrl)
	logRepo := mock.NewMockDeletionLogRepository(ctrl)

	productRepo.EXPECT().ValidateDeletion(gomock.Any(), "p1").
		Return(product.DeletionCheck{Blockers: []string{"has open orders"}}, nil)

	strategy := NewProductStrategy(productRepo, logRepo)

	err := strategy.DeleteWithForce(t.Context(), "p1", KindPhysical, "alice", "duplicate", false)
	require.Error(t, err)

	de, ok := err.(Error)
	require.True(t, ok)
	assert.Equal(t, ErrorKindValidationFailed, de.Kind)
}

func TestProductStrategy_PhysicalDeleteProceedsWithForce(t *testing.T) {
	ctrl := gomock.NewController(t)
	productRepo := mock.NewMockProductRepository(ctrl)
	logRepo := mock.NewMockDeletionLogRepository(ctrl)

	agg := &product.Aggregate{Product: product.Product{ID: "p1", Name: "Widget"}}

	productRepo.EXPECT().ValidateDeletion(gomock.Any(), "p1").
		Return(product.DeletionCheck{Blockers: []string{"has open orders"}}, nil)
	productRepo.EXPECT().FindByID(gomock.Any(), "p1", true).Return(agg, nil)
	logRepo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(deletionlog.Entry{}, nil)
	productRepo.EXPECT().PhysicalDelete(gomock.Any(), "p1").Return(nil)

	strategy := NewProductStrategy(productRepo, logRepo)

	err := strategy.DeleteWithForce(t.Context(), "p1", KindPhysical, "alice", "duplicate", true)
	require.NoError(t, err)
}

func TestProductStrategy_PhysicalDeleteWithNoBlockers(t *testing.T) {
	ctrl := gomock.NewController(t)
	productRepo := mock.NewMockProductRepository(ctrl)
	logRepo := mock.NewMockDeletionLogRepository(ctrl)

	agg := &product.Aggregate{Product: product.Product{ID: "p1", Name: "Widget"}}

	productRepo.EXPECT().ValidateDeletion(gomock.Any(), "p1").Return(product.DeletionCheck{}, nil)
	productRepo.EXPECT().FindByID(gomock.Any(), "p1", true).Return(agg, nil)
	logRepo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(deletionlog.Entry{}, nil)
	productRepo.EXPECT().PhysicalDelete(gomock.Any(), "p1").Return(nil)

	strategy := NewProductStrategy(productRepo, logRepo)

	err := strategy.DeleteWithForce(t.Context(), "p1", KindPhysical, "", "", false)
	require.NoError(t, err)
}

func TestProductStrategy_DeleteDefaultsForceFalse(t *testing.T) {
	ctrl := gomock.NewController(t)
	productRepo := mock.NewMockProductRepository(ctrl)
	logRepo := mock.NewMockDeletionLogRepository(ctrl)

	productRepo.EXPECT().ValidateDeletion(gomock.Any(), "p1").
		Return(product.DeletionCheck{Blockers: []string{"has open orders"}}, nil)

	strategy := NewProductStrategy(productRepo, logRepo)

	err := strategy.Delete(t.Context(), "p1", KindPhysical)
	require.Error(t, err)
}
