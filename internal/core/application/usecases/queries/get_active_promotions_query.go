package queries

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var (
	ErrGetActivePromotionsQueryIsNotConstructed = errors.New(
		"GetActivePromotionsQuery must be created via NewGetActivePromotionsQuery constructor",
	)
)

// GetActivePromotionsQuery retrieves promotions customers can redeem right
// now: active, inside their validity window, and not exhausted.
type GetActivePromotionsQuery struct {
	now time.Time

	guard guard.ConstructorGuard
}

// NewGetActivePromotionsQuery creates a query for redeemable promotions as of
// the given instant.
func NewGetActivePromotionsQuery(now time.Time) GetActivePromotionsQuery {
	return GetActivePromotionsQuery{
		now:   now,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetActivePromotionsQuery) Validate() error {
	return q.guard.Validate(ErrGetActivePromotionsQueryIsNotConstructed)
}

// Now returns the instant the redeemable window is evaluated at.
func (q GetActivePromotionsQuery) Now() time.Time {
	return q.now
}

// GetActivePromotionsQueryResponse represents one redeemable promotion.
type GetActivePromotionsQueryResponse struct {
	ID             kernel.UUID
	Code           string
	Description    string
	DiscountType   string
	DiscountValue  float64
	MaxDiscount    float64
	MinOrderAmount float64
	ValidTill      time.Time
}
