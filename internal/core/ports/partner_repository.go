package ports

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/partner"
)

// PartnerRepository defines the persistence contract for delivery partner aggregates.
type PartnerRepository interface {
	// Add persists a new delivery partner aggregate to storage.
	Add(ctx context.Context, aggregate *partner.DeliveryPartner) error

	// Update persists changes to an existing delivery partner aggregate.
	Update(ctx context.Context, aggregate *partner.DeliveryPartner) error

	// Get retrieves a delivery partner by its unique identifier.
	// Returns an ObjectNotFoundError when no such partner exists.
	Get(ctx context.Context, id kernel.UUID) (*partner.DeliveryPartner, error)

	// GetByEmail retrieves a delivery partner by login email.
	// Returns an ObjectNotFoundError when no such partner exists.
	GetByEmail(ctx context.Context, email string) (*partner.DeliveryPartner, error)
}
