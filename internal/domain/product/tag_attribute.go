package product

import "github.com/catalogsvc/catalog/internal/apperr"

// Tag is a free-text label attached to a product. Tags are unique per
// product — enforced by ValidateTagSet, not by the Tag value itself.
type Tag struct {
	ProductID string
	Value     string
}

// ValidateTagSet rejects a set containing a duplicate tag value.
func ValidateTagSet(tags []Tag) error {
	seen := make(map[string]struct{}, len(tags))

	for _, t := range tags {
		if t.Value == "" {
			return apperr.Validation("tag.value", "tag value must not be empty")
		}

		if _, ok := seen[t.Value]; ok {
			return apperr.Conflict("tag", "duplicate tag: "+t.Value)
		}

		seen[t.Value] = struct{}{}
	}

	return nil
}

// Attribute is a key/value pair attached to a product. Keys are unique
// per product — enforced by ValidateAttributeSet.
type Attribute struct {
	ProductID string
	Key       string
	Value     string
}

// ValidateAttributeSet rejects a set containing a duplicate key.
func ValidateAttributeSet(attrs []Attribute) error {
	seen := make(map[string]struct{}, len(attrs))

	for _, a := range attrs {
		if a.Key == "" {
			return apperr.Validation("attribute.key", "attribute key must not be empty")
		}

		if _, ok := seen[a.Key]; ok {
			return apperr.Conflict("attribute", "duplicate attribute key: "+a.Key)
		}

		seen[a.Key] = struct{}{}
	}

	return nil
}
