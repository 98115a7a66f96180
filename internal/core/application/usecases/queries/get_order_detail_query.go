package queries

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var (
	ErrGetOrderDetailQueryIsNotConstructed = errors.New(
		"GetOrderDetailQuery must be created via NewGetOrderDetailQuery constructor",
	)
)

// GetOrderDetailQuery retrieves one order with its lines, scoped to the
// requesting store. A store asking for another store's order gets the same
// ObjectNotFoundError as for a nonexistent order, so order IDs cannot be
// probed across stores.
type GetOrderDetailQuery struct {
	orderID kernel.UUID
	storeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderDetailQuery creates a query for one order's detail view.
func NewGetOrderDetailQuery(orderID, storeID kernel.UUID) (GetOrderDetailQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderDetailQuery{}, errs.NewValueIsInvalidErrorWithCause("orderId", err)
	}
	if err := storeID.Validate(); err != nil {
		return GetOrderDetailQuery{}, errs.NewValueIsInvalidErrorWithCause("storeId", err)
	}

	return GetOrderDetailQuery{
		orderID: orderID,
		storeID: storeID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderDetailQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderDetailQueryIsNotConstructed)
}

// OrderID returns the requested order identifier.
func (q GetOrderDetailQuery) OrderID() kernel.UUID {
	return q.orderID
}

// StoreID returns the requesting store identifier.
func (q GetOrderDetailQuery) StoreID() kernel.UUID {
	return q.storeID
}

// GetOrderDetailQueryResponse represents the full order detail view.
type GetOrderDetailQueryResponse struct {
	ID                  kernel.UUID
	UserName            string
	DeliveryPartnerName *string
	Status              string
	PaymentStatus       string
	PaymentMethod       string
	DiscountAmount      float64
	TotalAmount         float64
	PickupAddressText   string
	DeliveryAddressText string
	PickupDate          time.Time
	DeliveryDate        *time.Time
	Notes               string
	Items               []OrderItemResponse
}

// OrderItemResponse represents one priced line in the order detail view.
type OrderItemResponse struct {
	ServiceName string
	Quantity    int
	Price       float64
	Subtotal    float64
}
