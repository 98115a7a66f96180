package ports

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/promotion"
)

// PromotionRepository defines the persistence contract for promotion aggregates.
type PromotionRepository interface {
	// Add persists a new promotion aggregate to storage.
	Add(ctx context.Context, aggregate *promotion.Promotion) error

	// Update persists changes to an existing promotion aggregate.
	Update(ctx context.Context, aggregate *promotion.Promotion) error

	// Get retrieves a promotion by its unique identifier.
	// Returns an ObjectNotFoundError when no such promotion exists.
	Get(ctx context.Context, id kernel.UUID) (*promotion.Promotion, error)

	// GetByCode retrieves a promotion by its coupon code.
	// Returns an ObjectNotFoundError when no such promotion exists.
	GetByCode(ctx context.Context, code string) (*promotion.Promotion, error)

	// GetAllActiveExpired retrieves promotions still flagged active whose
	// validity window has passed at the given time. Used by the expiry job.
	GetAllActiveExpired(ctx context.Context, now time.Time) ([]*promotion.Promotion, error)
}
