package commands

import (
	"context"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/user"
	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"
)

// CancelOrderCommandHandler handles aborting an order from any non-terminal
// status. The customer who placed the order, the owning store, or an admin
// may cancel; delivery partners may not.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
// The publisher may be nil when event publishing is disabled.
func NewCancelOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the cancellation command.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	target, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = h.authorize(target, cmd); err != nil {
		return err
	}

	if err = target.Cancel(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, target); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if h.publisher != nil {
		_ = h.publisher.PublishOrderChanged(ctx, target)
	}

	return nil
}

func (h CancelOrderCommandHandler) authorize(target *order.Order, cmd CancelOrderCommand) error {
	switch cmd.ActorRole() {
	case user.RoleAdmin:
		return nil
	case user.RoleCustomer:
		if target.IsPlacedByUser(cmd.ActorID()) {
			return nil
		}
	case user.RoleStore:
		if target.IsOwnedByStore(cmd.ActorID()) {
			return nil
		}
	}
	return errs.NewNotAuthorizedError("order")
}
