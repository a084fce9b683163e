package deletion

import (
	"context"
	"errors"
	"testing"

	"github.com/catalogsvc/catalog/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type recordingPublisher struct {
	events []Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, event Event) error {
	p.events = append(p.events, event)
	return p.err
}

func TestFacade_DeleteItemPublishesEventOnSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	itemRepo := mock.NewMockItemRepository(ctrl)
	itemRepo.EXPECT().LogicalDelete(gomock.Any(), uint64(42)).Return(nil)

	pub := &recordingPublisher{}
	facade := NewFacade(NewItemStrategy(itemRepo), nil, nil).WithPublisher(pub)

	err := facade.DeleteItem(t.Context(), 42, KindLogical)
	require.NoError(t, err)

	require.Len(t, pub.events, 1)
	assert.Equal(t, Event{EntityType: "item", EntityID: "42", Kind: KindLogical}, pub.events[0])
}

func TestFacade_DeleteItemSkipsPublishOnFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	itemRepo := mock.NewMockItemRepository(ctrl)

	pub := &recordingPublisher{}
	facade := NewFacade(NewItemStrategy(itemRepo), nil, nil).WithPublisher(pub)

	err := facade.DeleteItem(t.Context(), 42, Kind("bogus"))
	require.Error(t, err)
	assert.Empty(t, pub.events)
}

func TestFacade_DeleteItemWithoutPublisherIsANoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	itemRepo := mock.NewMockItemRepository(ctrl)
	itemRepo.EXPECT().LogicalDelete(gomock.Any(), uint64(42)).Return(nil)

	facade := NewFacade(NewItemStrategy(itemRepo), nil, nil)

	err := facade.DeleteItem(t.Context(), 42, KindLogical)
	require.NoError(t, err)
}

func TestFacade_DeleteCategoryDispatchesToStrategy(t *testing.T) {
	ctrl := gomock.NewController(t)
	categoryRepo := mock.NewMockCategoryRepository(ctrl)
	categoryRepo.EXPECT().Restore(gomock.Any(), "c1").Return(nil)

	facade := NewFacade(nil, NewCategoryStrategy(categoryRepo), nil)

	err := facade.DeleteCategory(t.Context(), "c1", KindRestore)
	require.NoError(t, err)
}

func TestFacade_DeleteProductPassesActorReasonForce(t *testing.T) {
	ctrl := gomock.NewController(t)
	productRepo := mock.NewMockProductRepository(ctrl)
	logRepo := mock.NewMockDeletionLogRepository(ctrl)

	productRepo.EXPECT().LogicalDelete(gomock.Any(), "p1").Return(nil)

	facade := NewFacade(nil, nil, NewProductStrategy(productRepo, logRepo))

	err := facade.DeleteProduct(t.Context(), "p1", KindLogical, "alice", "duplicate", false)
	require.NoError(t, err)
}

func TestFacade_DeleteProductsBatchReportsPerItemOutcome(t *testing.T) {
	ctrl := gomock.NewController(t)
	productRepo := mock.NewMockProductRepository(ctrl)
	logRepo := mock.NewMockDeletionLogRepository(ctrl)

	productRepo.EXPECT().LogicalDelete(gomock.Any(), "p-ok").Return(nil)
	productRepo.EXPECT().LogicalDelete(gomock.Any(), "p-missing").Return(errors.New("not found"))

	facade := NewFacade(nil, nil, NewProductStrategy(productRepo, logRepo))

	report := facade.DeleteProductsBatch(t.Context(), []string{"p-ok", "p-missing"}, KindLogical, "alice", "", false)

	assert.Equal(t, 1, report.SuccessCount)
	assert.Equal(t, 1, report.FailureCount)
	require.Len(t, report.Results, 2)
	assert.Equal(t, BatchResult{ID: "p-ok", Status: "success"}, report.Results[0])
	assert.Equal(t, "p-missing", report.Results[1].ID)
	assert.Equal(t, "failed", report.Results[1].Status)
	assert.NotEmpty(t, report.Results[1].Error)
}

func TestFacade_DeleteProductsBatchContinuesAfterFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	productRepo := mock.NewMockProductRepository(ctrl)
	logRepo := mock.NewMockDeletionLogRepository(ctrl)

	productRepo.EXPECT().LogicalDelete(gomock.Any(), "p-first").Return(errors.New("boom"))
	productRepo.EXPECT().LogicalDelete(gomock.Any(), "p-second").Return(nil)

	facade := NewFacade(nil, nil, NewProductStrategy(productRepo, logRepo))

	report := facade.DeleteProductsBatch(t.Context(), []string{"p-first", "p-second"}, KindLogical, "alice", "", false)

	assert.Equal(t, 1, report.SuccessCount)
	assert.Equal(t, 1, report.FailureCount)
}

func TestFacade_PublisherErrorDoesNotFailRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	itemRepo := mock.NewMockItemRepository(ctrl)
	itemRepo.EXPECT().LogicalDelete(gomock.Any(), uint64(42)).Return(nil)

	pub := &recordingPublisher{err: errors.New("broker unreachable")}
	facade := NewFacade(NewItemStrategy(itemRepo), nil, nil).WithPublisher(pub)

	err := facade.DeleteItem(t.Context(), 42, KindLogical)
	require.NoError(t, err)
	require.Len(t, pub.events, 1)
}
