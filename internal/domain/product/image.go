package product

import "github.com/catalogsvc/catalog/internal/apperr"

// Image is one product image. At most one main image per product is
// enforced across a product's full image set, not on a single Image
// value — see ValidateImageSet.
type Image struct {
	ID        string
	ProductID string
	URL       string
	Alt       string
	SortOrder int
	IsMain    bool
}

// ValidateImageSet enforces the at-most-one-main-image rule over the
// full set of a product's images.
func ValidateImageSet(images []Image) error {
	mainCount := 0

	for _, img := range images {
		if img.URL == "" {
			return apperr.Validation("image.url", "image url must not be empty")
		}

		if img.IsMain {
			mainCount++
		}
	}

	if mainCount > 1 {
		return apperr.Validation("image.isMain", "at most one image may be marked as main")
	}

	return nil
}
