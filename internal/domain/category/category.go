// Package category holds the Category aggregate: a forest of named nodes
// with a bounded depth, enforced uniqueness per parent, and cycle-free
// moves.
package category

import (
	"strings"
	"time"

	"github.com/catalogsvc/catalog/internal/apperr"
	"github.com/catalogsvc/catalog/internal/domain/metadata"
)

// MaxDepth is the deepest a category may sit below a root.
const MaxDepth = 5

// Category is the aggregate root. Deleted is the soft-delete flag the
// deletion subsystem toggles; IsActive is an independent business flag
// callers manage directly through Update. Metadata is populated by the
// service layer from the metadata sidecar, never by the repository
// itself.
type Category struct {
	ID          string
	Name        string
	Description *string
	ParentID    *string
	SortOrder   int
	IsActive    bool
	Deleted     bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Metadata    metadata.JSON
}

// CreateInput is the payload accepted by CategoryService.Create.
type CreateInput struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	ParentID    *string `json:"parentId,omitempty"`
	SortOrder   int     `json:"sortOrder"`
	IsActive    bool    `json:"isActive"`
}

// UpdateInput is a full replacement of the mutable fields (name,
// description, sort order, active flag). Re-parenting goes through Move,
// not Update, per the repository contract's `move` operation.
type UpdateInput struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	SortOrder   int     `json:"sortOrder"`
	IsActive    bool    `json:"isActive"`
}

func validateName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", apperr.Validation("name", "name must not be empty")
	}

	if len(trimmed) > 100 {
		return "", apperr.Validation("name", "name must be at most 100 characters")
	}

	return trimmed, nil
}

// New validates input and constructs a new Category.
func New(input CreateInput) (*Category, error) {
	name, err := validateName(input.Name)
	if err != nil {
		return nil, err
	}

	if input.SortOrder < 0 {
		return nil, apperr.Validation("sortOrder", "sortOrder must not be negative")
	}

	return &Category{
		Name:        name,
		Description: input.Description,
		ParentID:    input.ParentID,
		SortOrder:   input.SortOrder,
		IsActive:    input.IsActive,
	}, nil
}

// ApplyUpdate validates input and returns the updated copy, preserving
// identifier, parent and timestamps.
func (c Category) ApplyUpdate(input UpdateInput) (Category, error) {
	name, err := validateName(input.Name)
	if err != nil {
		return Category{}, err
	}

	if input.SortOrder < 0 {
		return Category{}, apperr.Validation("sortOrder", "sortOrder must not be negative")
	}

	c.Name = name
	c.Description = input.Description
	c.SortOrder = input.SortOrder
	c.IsActive = input.IsActive

	return c, nil
}

// PathEntry is one node along FindPath's root-to-leaf chain.
type PathEntry struct {
	ID   string
	Name string
}
