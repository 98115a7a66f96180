package ports

import (
	"context"

	"laundry/internal/core/domain/model/order"
)

// OrderEventPublisher publishes order lifecycle changes to interested
// consumers (notifications, analytics). Publishing happens after the owning
// transaction commits; a failed publish must not fail the command.
type OrderEventPublisher interface {
	// PublishOrderChanged emits the order's current state.
	PublishOrderChanged(ctx context.Context, aggregate *order.Order) error
}
