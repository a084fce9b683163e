package inmemory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/catalogsvc/catalog/internal/apperr"
	"github.com/catalogsvc/catalog/internal/domain/product"
	"github.com/google/uuid"
)

// ProductRepository is the in-memory Product repository. A single
// coarse lock guards the product row and every owned sub-aggregate
// table, giving composite operations (create, physical delete) the
// same observable atomicity the Postgres adapter gets from a
// transaction.
type ProductRepository struct {
	mu         sync.RWMutex
	products   map[string]product.Product
	prices     map[string]product.Price
	inventory  map[string]product.Inventory
	images     map[string][]product.Image
	tags       map[string][]product.Tag
	attributes map[string][]product.Attribute
	history    map[string][]product.HistoryEvent
}

// NewProductRepository builds an empty ProductRepository.
func NewProductRepository() *ProductRepository {
	return &ProductRepository{
		products:   make(map[string]product.Product),
		prices:     make(map[string]product.Price),
		inventory:  make(map[string]product.Inventory),
		images:     make(map[string][]product.Image),
		tags:       make(map[string][]product.Tag),
		attributes: make(map[string][]product.Attribute),
		history:    make(map[string][]product.HistoryEvent),
	}
}

func (r *ProductRepository) aggregateLocked(id string) product.Aggregate {
	agg := product.Aggregate{
		Product:    r.products[id],
		Images:     append([]product.Image{}, r.images[id]...),
		Tags:       append([]product.Tag{}, r.tags[id]...),
		Attributes: append([]product.Attribute{}, r.attributes[id]...),
	}

	if price, ok := r.prices[id]; ok {
		p := price
		agg.Price = &p
	}

	if inv, ok := r.inventory[id]; ok {
		i := inv
		agg.Inventory = &i
	}

	return agg
}

// FindAll implements product.Repository.
func (r *ProductRepository) FindAll(ctx context.Context, filter product.Filter) ([]product.Aggregate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]product.Aggregate, 0, len(r.products))

	for id, p := range r.products {
		if p.Deleted && !filter.IncludeDeleted {
			continue
		}

		if filter.CategoryID != nil && (p.CategoryID == nil || *p.CategoryID != *filter.CategoryID) {
			continue
		}

		if filter.IsActive != nil && (*filter.IsActive) != (p.Status == product.StatusActive) {
			continue
		}

		if filter.Query != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(filter.Query)) {
			continue
		}

		if price, ok := r.prices[id]; ok {
			if filter.MinPrice != nil && price.Selling.LessThan(*filter.MinPrice) {
				continue
			}

			if filter.MaxPrice != nil && price.Selling.GreaterThan(*filter.MaxPrice) {
				continue
			}
		}

		result = append(result, r.aggregateLocked(id))
	}

	sort.Slice(result, func(i, j int) bool {
		less := result[i].Product.Name < result[j].Product.Name
		if strings.EqualFold(filter.Order, "desc") {
			return !less
		}
		return less
	})

	return paginate(result, filter.Offset, filter.Limit), nil
}

// FindByID implements product.Repository.
func (r *ProductRepository) FindByID(ctx context.Context, id string, includeDeleted bool) (*product.Aggregate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[id]
	if !ok || (p.Deleted && !includeDeleted) {
		return nil, apperr.NotFound("product", id)
	}

	agg := r.aggregateLocked(id)

	return &agg, nil
}

// Create implements product.Repository.
func (r *ProductRepository) Create(ctx context.Context, agg product.Aggregate) (product.Aggregate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.products {
		if p.SKU.String() == agg.Product.SKU.String() {
			return product.Aggregate{}, apperr.Conflict("product", "a product with this SKU already exists")
		}
	}

	agg.Product.ID = uuid.NewString()
	now := time.Now().UTC()
	agg.Product.CreatedAt = now
	agg.Product.UpdatedAt = now

	r.products[agg.Product.ID] = agg.Product

	return r.aggregateLocked(agg.Product.ID), nil
}

// Update implements product.Repository.
func (r *ProductRepository) Update(ctx context.Context, p product.Product) (product.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.products[p.ID]
	if !ok || existing.Deleted {
		return product.Product{}, apperr.NotFound("product", p.ID)
	}

	p.SKU = existing.SKU
	p.CreatedAt = existing.CreatedAt
	p.Deleted = existing.Deleted
	p.UpdatedAt = time.Now().UTC()

	r.products[p.ID] = p

	return p, nil
}

// LogicalDelete implements product.Repository.
func (r *ProductRepository) LogicalDelete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[id]
	if !ok || p.Deleted {
		return apperr.NotFound("product", id)
	}

	p.Deleted = true
	p.UpdatedAt = time.Now().UTC()
	r.products[id] = p

	return nil
}

// PhysicalDelete implements product.Repository, removing the product row
// and every owned sub-aggregate in the order history, attributes, tags,
// images, inventory, prices, product.
func (r *ProductRepository) PhysicalDelete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return apperr.NotFound("product", id)
	}

	delete(r.history, id)
	delete(r.attributes, id)
	delete(r.tags, id)
	delete(r.images, id)
	delete(r.inventory, id)
	delete(r.prices, id)
	delete(r.products, id)

	return nil
}

// Restore implements product.Repository.
func (r *ProductRepository) Restore(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[id]
	if !ok || !p.Deleted {
		return apperr.NotFound("product", id)
	}

	p.Deleted = false
	p.UpdatedAt = time.Now().UTC()
	r.products[id] = p

	return nil
}

// ValidateDeletion implements product.Repository.
func (r *ProductRepository) ValidateDeletion(ctx context.Context, id string) (product.DeletionCheck, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.products[id]; !ok {
		return product.DeletionCheck{}, apperr.NotFound("product", id)
	}

	related := map[string]int{
		"images":     len(r.images[id]),
		"tags":       len(r.tags[id]),
		"attributes": len(r.attributes[id]),
		"history":    len(r.history[id]),
	}

	return product.DeletionCheck{CanDelete: true, RelatedCounts: related}, nil
}

// SetPrice implements product.Repository.
func (r *ProductRepository) SetPrice(ctx context.Context, price product.Price) (product.Price, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[price.ProductID]; !ok {
		return product.Price{}, apperr.NotFound("product", price.ProductID)
	}

	r.prices[price.ProductID] = price

	return price, nil
}

// SetInventory implements product.Repository.
func (r *ProductRepository) SetInventory(ctx context.Context, inv product.Inventory) (product.Inventory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[inv.ProductID]; !ok {
		return product.Inventory{}, apperr.NotFound("product", inv.ProductID)
	}

	r.inventory[inv.ProductID] = inv

	return inv, nil
}

// AddImage implements product.Repository.
func (r *ProductRepository) AddImage(ctx context.Context, img product.Image) (product.Image, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[img.ProductID]; !ok {
		return product.Image{}, apperr.NotFound("product", img.ProductID)
	}

	img.ID = uuid.NewString()
	r.images[img.ProductID] = append(r.images[img.ProductID], img)

	return img, nil
}

// RemoveImage implements product.Repository.
func (r *ProductRepository) RemoveImage(ctx context.Context, productID, imageID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	images := r.images[productID]

	for i, img := range images {
		if img.ID == imageID {
			r.images[productID] = append(images[:i], images[i+1:]...)
			return nil
		}
	}

	return apperr.NotFound("image", imageID)
}

// SetTags implements product.Repository.
func (r *ProductRepository) SetTags(ctx context.Context, productID string, tags []string) ([]product.Tag, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[productID]; !ok {
		return nil, apperr.NotFound("product", productID)
	}

	result := make([]product.Tag, 0, len(tags))
	for _, t := range tags {
		result = append(result, product.Tag{ProductID: productID, Value: t})
	}

	r.tags[productID] = result

	return result, nil
}

// SetAttributes implements product.Repository.
func (r *ProductRepository) SetAttributes(ctx context.Context, productID string, attrs map[string]string) ([]product.Attribute, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[productID]; !ok {
		return nil, apperr.NotFound("product", productID)
	}

	result := make([]product.Attribute, 0, len(attrs))
	for k, v := range attrs {
		result = append(result, product.Attribute{ProductID: productID, Key: k, Value: v})
	}

	r.attributes[productID] = result

	return result, nil
}

// AppendHistory implements product.Repository.
func (r *ProductRepository) AppendHistory(ctx context.Context, event product.HistoryEvent) (product.HistoryEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[event.ProductID]; !ok {
		return product.HistoryEvent{}, apperr.NotFound("product", event.ProductID)
	}

	event.ID = uuid.NewString()
	r.history[event.ProductID] = append(r.history[event.ProductID], event)

	return event, nil
}

// FindHistory implements product.Repository.
func (r *ProductRepository) FindHistory(ctx context.Context, productID string) ([]product.HistoryEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.products[productID]; !ok {
		return nil, apperr.NotFound("product", productID)
	}

	return append([]product.HistoryEvent{}, r.history[productID]...), nil
}

// FindDeleted implements product.Repository.
func (r *ProductRepository) FindDeleted(ctx context.Context, filter product.Filter) ([]product.Aggregate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]product.Aggregate, 0)

	for id, p := range r.products {
		if !p.Deleted {
			continue
		}

		result = append(result, r.aggregateLocked(id))
	}

	sort.Slice(result, func(i, j int) bool { return result[i].Product.Name < result[j].Product.Name })

	return paginate(result, filter.Offset, filter.Limit), nil
}
