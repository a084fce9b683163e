package services

import (
	"context"
	"time"

	"github.com/catalogsvc/catalog/internal/domain/metadata"
	"github.com/catalogsvc/catalog/internal/domain/product"
	"github.com/catalogsvc/catalog/internal/metrics"
)

const (
	productServiceName  = "product"
	productMetadataKind = "product"
)

// ProductService orchestrates Product use cases, including its
// sub-aggregate operations (price, inventory, images, tags, attributes,
// history) and the metadata sidecar merged onto every Aggregate it
// returns.
type ProductService struct {
	repo     product.Repository
	metadata metadata.Repository
}

// NewProductService builds a ProductService bound to repo and the
// metadata sidecar store.
func NewProductService(repo product.Repository, metadataRepo metadata.Repository) *ProductService {
	return &ProductService{repo: repo, metadata: metadataRepo}
}

func (s *ProductService) attachMetadata(ctx context.Context, agg *product.Aggregate) error {
	doc, err := s.metadata.FindByEntity(ctx, productMetadataKind, agg.Product.ID)
	if err != nil {
		return err
	}

	if doc != nil {
		agg.Metadata = doc.Data
	}

	return nil
}

// FindAll lists products, applying filter, with each aggregate's
// metadata document merged in.
func (s *ProductService) FindAll(ctx context.Context, filter product.Filter) ([]product.Aggregate, error) {
	return metrics.WithMetricsResult(ctx, productServiceName, "find_all", func(ctx context.Context) ([]product.Aggregate, error) {
		aggs, err := s.repo.FindAll(ctx, filter)
		if err != nil {
			return nil, err
		}

		for i := range aggs {
			if err := s.attachMetadata(ctx, &aggs[i]); err != nil {
				return nil, err
			}
		}

		return aggs, nil
	})
}

// FindByID looks up a single product aggregate by id, with its metadata
// document merged in.
func (s *ProductService) FindByID(ctx context.Context, id string, includeDeleted bool) (*product.Aggregate, error) {
	return metrics.WithMetricsResult(ctx, productServiceName, "find_by_id", func(ctx context.Context) (*product.Aggregate, error) {
		agg, err := s.repo.FindByID(ctx, id, includeDeleted)
		if err != nil {
			return nil, err
		}

		if err := s.attachMetadata(ctx, agg); err != nil {
			return nil, err
		}

		return agg, nil
	})
}

// GetMetadata returns the metadata document attached to a product, or
// nil if none has been set.
func (s *ProductService) GetMetadata(ctx context.Context, id string) (metadata.JSON, error) {
	return metrics.WithMetricsResult(ctx, productServiceName, "get_metadata", func(ctx context.Context) (metadata.JSON, error) {
		doc, err := s.metadata.FindByEntity(ctx, productMetadataKind, id)
		if err != nil {
			return nil, err
		}

		if doc == nil {
			return nil, nil
		}

		return doc.Data, nil
	})
}

// SetMetadata replaces the metadata document attached to a product.
func (s *ProductService) SetMetadata(ctx context.Context, id string, data metadata.JSON) (metadata.JSON, error) {
	return metrics.WithMetricsResult(ctx, productServiceName, "set_metadata", func(ctx context.Context) (metadata.JSON, error) {
		if _, err := s.repo.FindByID(ctx, id, false); err != nil {
			return nil, err
		}

		doc, err := s.metadata.Upsert(ctx, productMetadataKind, id, data)
		if err != nil {
			return nil, err
		}

		return doc.Data, nil
	})
}

// Create validates input and persists a new Product.
func (s *ProductService) Create(ctx context.Context, input product.CreateInput) (product.Product, error) {
	result, err := metrics.WithMetricsResult(ctx, productServiceName, "create", func(ctx context.Context) (product.Aggregate, error) {
		newProduct, err := product.New(input)
		if err != nil {
			return product.Aggregate{}, err
		}

		return s.repo.Create(ctx, product.Aggregate{Product: *newProduct})
	})

	return result.Product, err
}

// Update validates input and replaces a Product's mutable fields.
func (s *ProductService) Update(ctx context.Context, id string, input product.UpdateInput) (product.Product, error) {
	return metrics.WithMetricsResult(ctx, productServiceName, "update", func(ctx context.Context) (product.Product, error) {
		agg, err := s.repo.FindByID(ctx, id, false)
		if err != nil {
			return product.Product{}, err
		}

		updated, err := agg.Product.ApplyUpdate(input)
		if err != nil {
			return product.Product{}, err
		}

		return s.repo.Update(ctx, updated)
	})
}

// SetPrice validates and persists a Product's Price.
func (s *ProductService) SetPrice(ctx context.Context, price product.Price) (product.Price, error) {
	return metrics.WithMetricsResult(ctx, productServiceName, "set_price", func(ctx context.Context) (product.Price, error) {
		if err := price.Validate(); err != nil {
			return product.Price{}, err
		}

		return s.repo.SetPrice(ctx, price)
	})
}

// SetInventory validates and persists a Product's Inventory.
func (s *ProductService) SetInventory(ctx context.Context, inv product.Inventory) (product.Inventory, error) {
	return metrics.WithMetricsResult(ctx, productServiceName, "set_inventory", func(ctx context.Context) (product.Inventory, error) {
		if err := inv.Validate(); err != nil {
			return product.Inventory{}, err
		}

		return s.repo.SetInventory(ctx, inv)
	})
}

// AddImage validates the product's existing image set plus the new image
// (at most one may be marked main), then persists it.
func (s *ProductService) AddImage(ctx context.Context, img product.Image) (product.Image, error) {
	return metrics.WithMetricsResult(ctx, productServiceName, "add_image", func(ctx context.Context) (product.Image, error) {
		agg, err := s.repo.FindByID(ctx, img.ProductID, false)
		if err != nil {
			return product.Image{}, err
		}

		if err := product.ValidateImageSet(append(append([]product.Image{}, agg.Images...), img)); err != nil {
			return product.Image{}, err
		}

		return s.repo.AddImage(ctx, img)
	})
}

// RemoveImage removes one image from a product.
func (s *ProductService) RemoveImage(ctx context.Context, productID, imageID string) error {
	return metrics.WithMetrics(ctx, productServiceName, "remove_image", func(ctx context.Context) error {
		return s.repo.RemoveImage(ctx, productID, imageID)
	})
}

// SetTags validates tag uniqueness and replaces a product's tag set.
func (s *ProductService) SetTags(ctx context.Context, productID string, tags []string) ([]product.Tag, error) {
	return metrics.WithMetricsResult(ctx, productServiceName, "set_tags", func(ctx context.Context) ([]product.Tag, error) {
		candidate := make([]product.Tag, 0, len(tags))
		for _, t := range tags {
			candidate = append(candidate, product.Tag{ProductID: productID, Value: t})
		}

		if err := product.ValidateTagSet(candidate); err != nil {
			return nil, err
		}

		return s.repo.SetTags(ctx, productID, tags)
	})
}

// SetAttributes validates attribute-key uniqueness and replaces a
// product's attribute set.
func (s *ProductService) SetAttributes(ctx context.Context, productID string, attrs map[string]string) ([]product.Attribute, error) {
	return metrics.WithMetricsResult(ctx, productServiceName, "set_attributes", func(ctx context.Context) ([]product.Attribute, error) {
		candidate := make([]product.Attribute, 0, len(attrs))
		for k, v := range attrs {
			candidate = append(candidate, product.Attribute{ProductID: productID, Key: k, Value: v})
		}

		if err := product.ValidateAttributeSet(candidate); err != nil {
			return nil, err
		}

		return s.repo.SetAttributes(ctx, productID, attrs)
	})
}

// FindHistory lists a product's append-only change log.
func (s *ProductService) FindHistory(ctx context.Context, productID string) ([]product.HistoryEvent, error) {
	return metrics.WithMetricsResult(ctx, productServiceName, "find_history", func(ctx context.Context) ([]product.HistoryEvent, error) {
		return s.repo.FindHistory(ctx, productID)
	})
}

// AppendHistory records one change-log entry.
func (s *ProductService) AppendHistory(ctx context.Context, productID, field, oldValue, newValue, actor string) (product.HistoryEvent, error) {
	return metrics.WithMetricsResult(ctx, productServiceName, "append_history", func(ctx context.Context) (product.HistoryEvent, error) {
		return s.repo.AppendHistory(ctx, product.HistoryEvent{
			ProductID: productID,
			Field:     field,
			OldValue:  oldValue,
			NewValue:  newValue,
			Actor:     actor,
			CreatedAt: time.Now().UTC(),
		})
	})
}

// FindDeleted lists logically deleted products, with each aggregate's
// metadata document merged in.
func (s *ProductService) FindDeleted(ctx context.Context, filter product.Filter) ([]product.Aggregate, error) {
	return metrics.WithMetricsResult(ctx, productServiceName, "find_deleted", func(ctx context.Context) ([]product.Aggregate, error) {
		aggs, err := s.repo.FindDeleted(ctx, filter)
		if err != nil {
			return nil, err
		}

		for i := range aggs {
			if err := s.attachMetadata(ctx, &aggs[i]); err != nil {
				return nil, err
			}
		}

		return aggs, nil
	})
}

// ValidateDeletion returns whether id can be deleted without mutating it.
func (s *ProductService) ValidateDeletion(ctx context.Context, id string) (product.DeletionCheck, error) {
	return metrics.WithMetricsResult(ctx, productServiceName, "validate_deletion", func(ctx context.Context) (product.DeletionCheck, error) {
		return s.repo.ValidateDeletion(ctx, id)
	})
}
