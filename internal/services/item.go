// Package services holds the per-entity application services: each
// orchestrates a single use case (validate, convert, call the
// repository, convert back) wrapped uniformly by the metrics facade.
// Item, Category and Product deletion is not exposed here — it routes
// exclusively through internal/deletion; only UserService has a Delete.
package services

import (
	"context"

	"github.com/catalogsvc/catalog/internal/domain/item"
	"github.com/catalogsvc/catalog/internal/metrics"
	"github.com/catalogsvc/catalog/internal/platform/logging"
)

const itemServiceName = "item"

// ItemService orchestrates Item use cases.
type ItemService struct {
	repo item.Repository
}

// NewItemService builds an ItemService bound to repo.
func NewItemService(repo item.Repository) *ItemService {
	return &ItemService{repo: repo}
}

// FindAll lists items, applying filter.
func (s *ItemService) FindAll(ctx context.Context, filter item.Filter) ([]item.Item, error) {
	return metrics.WithMetricsResult(ctx, itemServiceName, "find_all", func(ctx context.Context) ([]item.Item, error) {
		return s.repo.FindAll(ctx, filter)
	})
}

// FindByID looks up a single item by id.
func (s *ItemService) FindByID(ctx context.Context, id uint64, includeDeleted bool) (*item.Item, error) {
	return metrics.WithMetricsResult(ctx, itemServiceName, "find_by_id", func(ctx context.Context) (*item.Item, error) {
		return s.repo.FindByID(ctx, id, includeDeleted)
	})
}

// Create validates input and persists a new Item.
func (s *ItemService) Create(ctx context.Context, input item.CreateInput) (item.Item, error) {
	return metrics.WithMetricsResult(ctx, itemServiceName, "create", func(ctx context.Context) (item.Item, error) {
		logger := logging.FromContext(ctx)
		logger.Debugf("creating item: %+v", input)

		newItem, err := item.New(input)
		if err != nil {
			logger.Warnf("item creation rejected: %v", err)
			return item.Item{}, err
		}

		return s.repo.Create(ctx, *newItem)
	})
}

// Update validates input and replaces an existing Item's mutable fields.
func (s *ItemService) Update(ctx context.Context, id uint64, input item.UpdateInput) (item.Item, error) {
	return metrics.WithMetricsResult(ctx, itemServiceName, "update", func(ctx context.Context) (item.Item, error) {
		logger := logging.FromContext(ctx)

		existing, err := s.repo.FindByID(ctx, id, false)
		if err != nil {
			return item.Item{}, err
		}

		updated, err := existing.ApplyUpdate(input)
		if err != nil {
			logger.Warnf("item update rejected: %v", err)
			return item.Item{}, err
		}

		return s.repo.Update(ctx, updated)
	})
}

// ValidateDeletion returns whether id can be deleted without mutating it.
func (s *ItemService) ValidateDeletion(ctx context.Context, id uint64) (item.DeletionCheck, error) {
	return metrics.WithMetricsResult(ctx, itemServiceName, "validate_deletion", func(ctx context.Context) (item.DeletionCheck, error) {
		return s.repo.ValidateDeletion(ctx, id)
	})
}
