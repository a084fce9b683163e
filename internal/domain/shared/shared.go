// Package shared holds the small value objects and pagination primitives
// reused across the Item, User, Category and Product aggregates.
package shared

import (
	"strings"

	"github.com/catalogsvc/catalog/internal/apperr"
)

// Email is a validated email address. It is constructed only via NewEmail
// so an Email value is always well-formed.
type Email struct {
	value string
}

// NewEmail validates raw and, if valid, returns an Email wrapping it.
func NewEmail(raw string) (Email, error) {
	trimmed := strings.TrimSpace(raw)

	if len(trimmed) < 3 || len(trimmed) > 255 {
		return Email{}, apperr.Validation("email", "email must be between 3 and 255 characters")
	}

	if !strings.Contains(trimmed, "@") {
		return Email{}, apperr.Validation("email", "email must contain '@'")
	}

	return Email{value: trimmed}, nil
}

// String returns the underlying address.
func (e Email) String() string { return e.value }

// SKU is a validated stock-keeping unit: 3-50 alphanumeric characters or
// hyphens.
type SKU struct {
	value string
}

// NewSKU validates raw and, if valid, returns a SKU wrapping it.
func NewSKU(raw string) (SKU, error) {
	trimmed := strings.TrimSpace(raw)

	if len(trimmed) < 3 || len(trimmed) > 50 {
		return SKU{}, apperr.Validation("sku", "sku must be between 3 and 50 characters")
	}

	for _, r := range trimmed {
		isAlnum := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
		if !isAlnum && r != '-' {
			return SKU{}, apperr.Validation("sku", "sku must be alphanumeric with hyphens only")
		}
	}

	return SKU{value: trimmed}, nil
}

// String returns the underlying SKU.
func (s SKU) String() string { return s.value }

// Page describes an offset/limit pagination window over a listing.
type Page struct {
	Limit  int
	Offset int
}

// DefaultPage is used when a caller supplies no pagination parameters.
func DefaultPage() Page {
	return Page{Limit: 50, Offset: 0}
}

// Normalize clamps Limit/Offset to sane bounds.
func (p Page) Normalize() Page {
	if p.Limit <= 0 {
		p.Limit = 50
	}

	if p.Limit > 500 {
		p.Limit = 500
	}

	if p.Offset < 0 {
		p.Offset = 0
	}

	return p
}
