package ports

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns an ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete removes an order from storage. Callers must first check the
	// order is in a deletable status; the repository only removes rows.
	Delete(ctx context.Context, id kernel.UUID) error

	// ClaimForPartner atomically assigns the order to the partner with a
	// single conditional write: the row is updated only if it is still in
	// pending status with no delivery partner. When another partner won the
	// race (or the order moved on), a VersionConflictError is returned and
	// nothing is written. Exactly one concurrent claim can succeed.
	ClaimForPartner(ctx context.Context, orderID, partnerID kernel.UUID) error
}
