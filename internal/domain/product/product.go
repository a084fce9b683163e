// Package product holds the Product aggregate and its owned
// sub-aggregates: Price, Inventory, Image, Tag, Attribute and History.
package product

import (
	"strings"
	"time"

	"github.com/catalogsvc/catalog/internal/apperr"
	"github.com/catalogsvc/catalog/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Status is the lifecycle state of a product.
type Status string

const (
	StatusDraft        Status = "Draft"
	StatusActive       Status = "Active"
	StatusInactive     Status = "Inactive"
	StatusDiscontinued Status = "Discontinued"
)

func (s Status) valid() bool {
	switch s {
	case StatusDraft, StatusActive, StatusInactive, StatusDiscontinued:
		return true
	default:
		return false
	}
}

// Dimensions holds the product's physical size, all non-negative.
type Dimensions struct {
	Length decimal.Decimal `json:"length"`
	Width  decimal.Decimal `json:"width"`
	Height decimal.Decimal `json:"height"`
}

// ShippingInfo holds freight-relevant attributes.
type ShippingInfo struct {
	Weight       decimal.Decimal `json:"weight"`
	RequiresBox  bool            `json:"requiresBox"`
	FreightClass *string         `json:"freightClass,omitempty"`
}

// Product is the aggregate root. Sub-aggregates (Price, Inventory,
// Images, Tags, Attributes, History) are stored and loaded separately by
// the repository but travel together on read through the Aggregate type.
type Product struct {
	ID           string
	SKU          shared.SKU
	Name         string
	Description  *string
	Status       Status
	CategoryID   *string
	Dimensions   Dimensions
	Shipping     ShippingInfo
	Deleted      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CreateInput is the payload accepted by ProductService.Create.
type CreateInput struct {
	SKU         string       `json:"sku"`
	Name        string       `json:"name"`
	Description *string      `json:"description,omitempty"`
	Status      Status       `json:"status"`
	CategoryID  *string      `json:"categoryId,omitempty"`
	Dimensions  Dimensions   `json:"dimensions"`
	Shipping    ShippingInfo `json:"shipping"`
}

// UpdateInput is a full replacement of the mutable fields.
type UpdateInput struct {
	Name        string       `json:"name"`
	Description *string      `json:"description,omitempty"`
	Status      Status       `json:"status"`
	CategoryID  *string      `json:"categoryId,omitempty"`
	Dimensions  Dimensions   `json:"dimensions"`
	Shipping    ShippingInfo `json:"shipping"`
}

func validateDimensions(d Dimensions) error {
	if d.Length.IsNegative() || d.Width.IsNegative() || d.Height.IsNegative() {
		return apperr.Validation("dimensions", "dimensions must not be negative")
	}

	return nil
}

func validateShipping(s ShippingInfo) error {
	if s.Weight.IsNegative() {
		return apperr.Validation("shipping.weight", "weight must not be negative")
	}

	return nil
}

// New validates input and constructs a new Product in Draft status by
// default when Status is left unset.
func New(input CreateInput) (*Product, error) {
	sku, err := shared.NewSKU(input.SKU)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperr.Validation("name", "name must not be empty")
	}

	if len(name) > 255 {
		return nil, apperr.Validation("name", "name must be at most 255 characters")
	}

	if input.Description != nil && len(*input.Description) > 1000 {
		return nil, apperr.Validation("description", "description must be at most 1000 characters")
	}

	status := input.Status
	if status == "" {
		status = StatusDraft
	}

	if !status.valid() {
		return nil, apperr.Validation("status", "status must be one of Draft, Active, Inactive, Discontinued")
	}

	if err := validateDimensions(input.Dimensions); err != nil {
		return nil, err
	}

	if err := validateShipping(input.Shipping); err != nil {
		return nil, err
	}

	return &Product{
		SKU:         sku,
		Name:        name,
		Description: input.Description,
		Status:      status,
		CategoryID:  input.CategoryID,
		Dimensions:  input.Dimensions,
		Shipping:    input.Shipping,
	}, nil
}

// ApplyUpdate validates input and returns the updated copy, preserving
// identifier, SKU and timestamps (SKU is immutable after creation).
func (p Product) ApplyUpdate(input UpdateInput) (Product, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return Product{}, apperr.Validation("name", "name must not be empty")
	}

	if len(name) > 255 {
		return Product{}, apperr.Validation("name", "name must be at most 255 characters")
	}

	if input.Description != nil && len(*input.Description) > 1000 {
		return Product{}, apperr.Validation("description", "description must be at most 1000 characters")
	}

	if !input.Status.valid() {
		return Product{}, apperr.Validation("status", "status must be one of Draft, Active, Inactive, Discontinued")
	}

	if err := validateDimensions(input.Dimensions); err != nil {
		return Product{}, err
	}

	if err := validateShipping(input.Shipping); err != nil {
		return Product{}, err
	}

	p.Name = name
	p.Description = input.Description
	p.Status = input.Status
	p.CategoryID = input.CategoryID
	p.Dimensions = input.Dimensions
	p.Shipping = input.Shipping

	return p, nil
}
