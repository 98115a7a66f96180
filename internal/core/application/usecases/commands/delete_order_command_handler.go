package commands

import (
	"context"

	"laundry/internal/pkg/errs"
)

// DeleteOrderCommandHandler handles a store removing one of its own orders.
//
// Deletion is allowed only while the order has not entered fulfillment
// (created or pending status). A store can delete only orders it owns; a
// non-owning store gets a NotAuthorizedError even when the order exists.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDeleteOrderCommandHandler creates a handler for order deletion operations.
func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order deletion command.
func (h DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
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

	if !target.IsOwnedByStore(cmd.StoreID()) {
		return errs.NewNotAuthorizedError("order")
	}

	if !target.Status().IsDeletable() {
		return errs.NewInvalidStateError("order", target.Status().String())
	}

	if err = orderRepo.Delete(ctx, cmd.OrderID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
