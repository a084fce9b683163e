package product

import (
	"time"

	"github.com/catalogsvc/catalog/internal/apperr"
	"github.com/shopspring/decimal"
)

// Price is a product's price sub-aggregate. Discount, when set, must not
// exceed selling, which must not exceed list, when those are set.
// effective_from must not be after effective_until when both are set.
type Price struct {
	ProductID     string
	Selling       decimal.Decimal
	List          *decimal.Decimal
	Discount      *decimal.Decimal
	Currency      string
	TaxIncluded   bool
	EffectiveFrom *time.Time
	EffectiveUntil *time.Time
}

// Validate enforces the discount/selling/list ordering and the
// effective-window bound.
func (p Price) Validate() error {
	if p.Selling.IsNegative() {
		return apperr.Validation("price.selling", "selling price must not be negative")
	}

	if p.List != nil && p.Selling.GreaterThan(*p.List) {
		return apperr.Validation("price.selling", "selling price must not exceed list price")
	}

	if p.Discount != nil {
		if p.Discount.IsNegative() {
			return apperr.Validation("price.discount", "discount price must not be negative")
		}

		if p.Discount.GreaterThan(p.Selling) {
			return apperr.Validation("price.discount", "discount price must not exceed selling price")
		}
	}

	if p.EffectiveFrom != nil && p.EffectiveUntil != nil && p.EffectiveFrom.After(*p.EffectiveUntil) {
		return apperr.Validation("price.effectiveFrom", "effective_from must not be after effective_until")
	}

	if len(p.Currency) == 0 {
		return apperr.Validation("price.currency", "currency must not be empty")
	}

	return nil
}
