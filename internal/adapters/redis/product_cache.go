// Package redis decorates the durable Product repository with a
// read-through cache: FindByID checks redis before falling back to the
// wrapped repository, and every mutation invalidates the cached entry.
// A cache miss or a redis outage always falls back to the wrapped
// repository transparently — the cache is never a correctness
// dependency, only a latency optimization.
package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/catalogsvc/catalog/internal/domain/product"
	"github.com/catalogsvc/catalog/internal/platform/logging"
	goredis "github.com/redis/go-redis/v9"
)

// ProductCache wraps a product.Repository, caching FindByID results.
type ProductCache struct {
	product.Repository
	client *goredis.Client
	ttl    time.Duration
}

// NewProductCache builds a ProductCache wrapping repo, with entries
// expiring after ttl.
func NewProductCache(repo product.Repository, client *goredis.Client, ttl time.Duration) *ProductCache {
	return &ProductCache{Repository: repo, client: client, ttl: ttl}
}

func cacheKey(id string) string {
	return "product:" + id
}

// FindByID serves a non-deleted lookup from the cache when present,
// falling back to (and populating from) the wrapped repository on a
// miss. Lookups that request deleted entities bypass the cache, since a
// deleted product is never written to it.
func (c *ProductCache) FindByID(ctx context.Context, id string, includeDeleted bool) (*product.Aggregate, error) {
	logger := logging.FromContext(ctx)

	if !includeDeleted {
		raw, err := c.client.Get(ctx, cacheKey(id)).Result()
		if err == nil {
			var agg product.Aggregate
			if err := json.Unmarshal([]byte(raw), &agg); err == nil {
				return &agg, nil
			}
		} else if err != goredis.Nil {
			logger.Warnf("product cache read failed for %s, falling back to repository: %v", id, err)
		}
	}

	agg, err := c.Repository.FindByID(ctx, id, includeDeleted)
	if err != nil {
		return nil, err
	}

	if !includeDeleted {
		c.set(ctx, *agg)
	}

	return agg, nil
}

func (c *ProductCache) set(ctx context.Context, agg product.Aggregate) {
	logger := logging.FromContext(ctx)

	encoded, err := json.Marshal(agg)
	if err != nil {
		return
	}

	if err := c.client.Set(ctx, cacheKey(agg.Product.ID), encoded, c.ttl).Err(); err != nil {
		logger.Warnf("product cache write failed for %s: %v", agg.Product.ID, err)
	}
}

func (c *ProductCache) invalidate(ctx context.Context, id string) {
	logger := logging.FromContext(ctx)

	if err := c.client.Del(ctx, cacheKey(id)).Err(); err != nil {
		logger.Warnf("product cache invalidation failed for %s: %v", id, err)
	}
}

// Update invalidates the cached entry before delegating.
func (c *ProductCache) Update(ctx context.Context, p product.Product) (product.Product, error) {
	c.invalidate(ctx, p.ID)
	return c.Repository.Update(ctx, p)
}

// LogicalDelete invalidates the cached entry before delegating.
func (c *ProductCache) LogicalDelete(ctx context.Context, id string) error {
	c.invalidate(ctx, id)
	return c.Repository.LogicalDelete(ctx, id)
}

// PhysicalDelete invalidates the cached entry before delegating.
func (c *ProductCache) PhysicalDelete(ctx context.Context, id string) error {
	c.invalidate(ctx, id)
	return c.Repository.PhysicalDelete(ctx, id)
}

// Restore invalidates the cached entry before delegating, since the
// cache never holds a deleted aggregate that a restore would need to
// refresh in place.
func (c *ProductCache) Restore(ctx context.Context, id string) error {
	c.invalidate(ctx, id)
	return c.Repository.Restore(ctx, id)
}

// SetPrice invalidates the cached entry before delegating.
func (c *ProductCache) SetPrice(ctx context.Context, price product.Price) (product.Price, error) {
	c.invalidate(ctx, price.ProductID)
	return c.Repository.SetPrice(ctx, price)
}

// SetInventory invalidates the cached entry before delegating.
func (c *ProductCache) SetInventory(ctx context.Context, inv product.Inventory) (product.Inventory, error) {
	c.invalidate(ctx, inv.ProductID)
	return c.Repository.SetInventory(ctx, inv)
}
