package ports

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/store"
)

// StoreRepository defines the persistence contract for store aggregates.
type StoreRepository interface {
	// Add persists a new store aggregate, including its service catalog.
	Add(ctx context.Context, aggregate *store.Store) error

	// Update persists changes to an existing store aggregate. The service
	// catalog is replaced wholesale to match the aggregate.
	Update(ctx context.Context, aggregate *store.Store) error

	// Get retrieves a store by its unique identifier, catalog included.
	// Returns an ObjectNotFoundError when no such store exists.
	Get(ctx context.Context, id kernel.UUID) (*store.Store, error)

	// GetByEmail retrieves a store by login email.
	// Returns an ObjectNotFoundError when no such store exists.
	GetByEmail(ctx context.Context, email string) (*store.Store, error)
}
