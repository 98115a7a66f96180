package queries

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var (
	ErrGetStoreOrdersQueryIsNotConstructed = errors.New(
		"GetStoreOrdersQuery must be created via NewGetStoreOrdersQuery constructor",
	)
)

// GetStoreOrdersQuery retrieves the orders belonging to one store, optionally
// filtered by lifecycle status.
//
// Example:
//
//	query, err := NewGetStoreOrdersQuery(storeID, "pending")
//	if err != nil {
//	    return err
//	}
//	orders, err := NewGetStoreOrdersQueryHandler(db).Handle(ctx, query)
type GetStoreOrdersQuery struct {
	storeID kernel.UUID
	status  *order.Status

	guard guard.ConstructorGuard
}

// NewGetStoreOrdersQuery creates a query for one store's orders. statusFilter
// is a wire status string ("pending", "accepted", ...) or empty for all
// statuses.
func NewGetStoreOrdersQuery(storeID kernel.UUID, statusFilter string) (GetStoreOrdersQuery, error) {
	if err := storeID.Validate(); err != nil {
		return GetStoreOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause("storeId", err)
	}

	var status *order.Status
	if statusFilter != "" {
		parsed, err := order.StatusFromString(statusFilter)
		if err != nil {
			return GetStoreOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause("status", err)
		}
		status = &parsed
	}

	return GetStoreOrdersQuery{
		storeID: storeID,
		status:  status,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStoreOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetStoreOrdersQueryIsNotConstructed)
}

// StoreID returns the owning store identifier.
func (q GetStoreOrdersQuery) StoreID() kernel.UUID {
	return q.storeID
}

// Status returns the optional status filter; nil means all statuses.
func (q GetStoreOrdersQuery) Status() *order.Status {
	return q.status
}

// GetStoreOrdersQueryResponse represents one order row in a store's order
// list.
type GetStoreOrdersQueryResponse struct {
	ID            kernel.UUID
	UserName      string
	Status        string
	PaymentStatus string
	TotalAmount   float64
	PickupDate    time.Time
	CreatedAt     time.Time
}
