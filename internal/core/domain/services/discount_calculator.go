package services

import (
	"time"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/promotion"
	"laundry/internal/pkg/errs"
)

// DiscountCalculator is a domain service that applies a promotion to a fresh
// order: it checks redeemability, computes the discount from the order's item
// total, records the redemption on the promotion, and applies the discount to
// the order.
//
// Business rules:
//   - The promotion must be redeemable at the given time
//   - The discount is computed from the order's item total, honoring the
//     promotion's minimum order amount and percentage cap
//   - Redemption and application happen together; a failed application
//     never consumes a redemption
type DiscountCalculator struct{}

// NewDiscountCalculator creates a new DiscountCalculator instance.
func NewDiscountCalculator() DiscountCalculator {
	return DiscountCalculator{}
}

// Apply redeems the promotion against the order at the given time.
// Returns the discount amount applied.
func (dc DiscountCalculator) Apply(o *order.Order, p *promotion.Promotion, now time.Time) (float64, error) {
	if err := o.Validate(); err != nil {
		return 0, err
	}
	if err := p.Validate(); err != nil {
		return 0, err
	}

	if !p.IsRedeemableAt(now) {
		return 0, errs.NewInvalidStateError("promotion", p.Code())
	}

	discount := p.DiscountFor(o.ItemsTotal())
	if err := o.ApplyPromotion(p.ID(), discount); err != nil {
		return 0, err
	}

	if err := p.Redeem(now); err != nil {
		return 0, err
	}

	return discount, nil
}
