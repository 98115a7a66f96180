// Package queries contains read-side operations of the CQRS architecture.
// Query handlers read denormalized rows straight from the database with raw
// SQL, bypassing the domain aggregates and the unit of work.
package queries

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var (
	ErrGetAvailableOrdersQueryIsNotConstructed = errors.New(
		"GetAvailableOrdersQuery must be created via NewGetAvailableOrdersQuery constructor",
	)
)

// GetAvailableOrdersQuery retrieves the claimable order feed for delivery
// partners: orders in pending status with no assigned partner, oldest first.
//
// Example:
//
//	query := NewGetAvailableOrdersQuery()
//	handler := NewGetAvailableOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get available orders: %w", err)
//	}
type GetAvailableOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAvailableOrdersQuery creates a query to retrieve claimable orders.
// This is a parameterless query: the feed is shared by all partners.
func NewGetAvailableOrdersQuery() GetAvailableOrdersQuery {
	return GetAvailableOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableOrdersQueryIsNotConstructed)
}

// GetAvailableOrdersQueryResponse represents one claimable order in the feed.
// Store and customer names are joined in so the partner app can render the
// feed without extra lookups.
type GetAvailableOrdersQueryResponse struct {
	ID                kernel.UUID
	StoreName         string
	UserName          string
	TotalAmount       float64
	PickupAddressText string
	PickupDate        time.Time
	CreatedAt         time.Time
}
