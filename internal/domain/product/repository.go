package product

import (
	"context"

	"github.com/catalogsvc/catalog/internal/domain/metadata"
	"github.com/shopspring/decimal"
)

// Filter narrows GET /api/products's listing: full-text query, category
// scope, price bounds, active flag and sort order, plus pagination.
type Filter struct {
	IncludeDeleted bool
	Query          string
	CategoryID     *string
	MinPrice       *decimal.Decimal
	MaxPrice       *decimal.Decimal
	IsActive       *bool
	Sort           string
	Order          string
	Limit          int
	Offset         int
}

// DeletionCheck is the read-only result of ValidateDeletion.
type DeletionCheck struct {
	CanDelete     bool
	Warnings      []string
	Blockers      []string
	RelatedCounts map[string]int
}

// Aggregate is a Product plus its owned sub-aggregates, the shape
// returned by FindByID and used to build deletion-log snapshots.
// Metadata is populated by the service layer from the metadata sidecar,
// never by the repository itself.
type Aggregate struct {
	Product    Product
	Price      *Price
	Inventory  *Inventory
	Images     []Image
	Tags       []Tag
	Attributes []Attribute
	Metadata   metadata.JSON
}

// Repository is the storage contract for Product and its sub-aggregates.
type Repository interface {
	FindAll(ctx context.Context, filter Filter) ([]Aggregate, error)
	FindByID(ctx context.Context, id string, includeDeleted bool) (*Aggregate, error)
	Create(ctx context.Context, agg Aggregate) (Aggregate, error)
	Update(ctx context.Context, p Product) (Product, error)
	LogicalDelete(ctx context.Context, id string) error
	// PhysicalDelete removes the product row and all owned sub-aggregates
	// in order: history, attributes, tags, images, inventory, prices,
	// product. Callers must have already captured a deletion-log snapshot
	// before calling this.
	PhysicalDelete(ctx context.Context, id string) error
	Restore(ctx context.Context, id string) error
	ValidateDeletion(ctx context.Context, id string) (DeletionCheck, error)

	SetPrice(ctx context.Context, price Price) (Price, error)
	SetInventory(ctx context.Context, inv Inventory) (Inventory, error)
	AddImage(ctx context.Context, img Image) (Image, error)
	RemoveImage(ctx context.Context, productID, imageID string) error
	SetTags(ctx context.Context, productID string, tags []string) ([]Tag, error)
	SetAttributes(ctx context.Context, productID string, attrs map[string]string) ([]Attribute, error)
	AppendHistory(ctx context.Context, event HistoryEvent) (HistoryEvent, error)
	FindHistory(ctx context.Context, productID string) ([]HistoryEvent, error)
	FindDeleted(ctx context.Context, filter Filter) ([]Aggregate, error)
}
