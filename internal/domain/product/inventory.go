package product

import "github.com/catalogsvc/catalog/internal/apperr"

// Inventory is a product's stock sub-aggregate: reserved must not exceed
// quantity.
type Inventory struct {
	ProductID      string
	Quantity       int
	Reserved       int
	AlertThreshold int
	Track          bool
	Backorder      bool
}

// Validate enforces that reserved never exceeds quantity and that every
// counter stays non-negative.
func (i Inventory) Validate() error {
	if i.Quantity < 0 {
		return apperr.Validation("inventory.quantity", "quantity must not be negative")
	}

	if i.Reserved < 0 {
		return apperr.Validation("inventory.reserved", "reserved must not be negative")
	}

	if i.AlertThreshold < 0 {
		return apperr.Validation("inventory.alertThreshold", "alertThreshold must not be negative")
	}

	if i.Reserved > i.Quantity {
		return apperr.Validation("inventory.reserved", "reserved must not exceed quantity")
	}

	return nil
}

// Available is the quantity not already reserved.
func (i Inventory) Available() int {
	return i.Quantity - i.Reserved
}
