// Package item holds the Item aggregate: an identifier, a name, an
// optional description, a soft-delete flag and timestamps.
package item

import (
	"strings"
	"time"

	"github.com/catalogsvc/catalog/internal/apperr"
	"github.com/catalogsvc/catalog/internal/domain/metadata"
)

// Item is the aggregate root. Deleted is true once logically deleted;
// a physically deleted Item no longer exists in any repository. Metadata
// is populated by the service layer from the metadata sidecar, never by
// the repository itself.
type Item struct {
	ID          uint64
	Name        string
	Description *string
	Deleted     bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Metadata    metadata.JSON
}

// CreateInput is the payload accepted by ItemService.Create.
type CreateInput struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// UpdateInput is the payload accepted by ItemService.Update. It is a full
// replacement of the mutable fields, not a partial patch.
type UpdateInput struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// New validates input and constructs a new Item with zero ID and
// timestamps, left for the repository to assign on Create.
func New(input CreateInput) (*Item, error) {
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

	return &Item{
		Name:        name,
		Description: input.Description,
	}, nil
}

// ApplyUpdate validates input and returns a copy of it with the mutable
// fields replaced, preserving identifier and timestamps.
func (i Item) ApplyUpdate(input UpdateInput) (Item, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return Item{}, apperr.Validation("name", "name must not be empty")
	}

	if len(name) > 255 {
		return Item{}, apperr.Validation("name", "name must be at most 255 characters")
	}

	if input.Description != nil && len(*input.Description) > 1000 {
		return Item{}, apperr.Validation("description", "description must be at most 1000 characters")
	}

	i.Name = name
	i.Description = input.Description

	return i, nil
}
