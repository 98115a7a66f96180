package commands

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"
)

// AdvanceOrderCommandHandler handles forward lifecycle steps on an order.
//
// Authorization is per step: pickup and delivery belong to the assigned
// delivery partner, processing steps belong to the owning store. The domain
// aggregate enforces the legal transition for each step; this handler only
// matches the actor to the step.
type AdvanceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewAdvanceOrderCommandHandler creates a handler for lifecycle advancement.
// The publisher may be nil when event publishing is disabled.
func NewAdvanceOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the lifecycle advancement command.
func (h AdvanceOrderCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderCommand) error {
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

	switch cmd.Action() {
	case AdvanceActionPickUp:
		err = target.MarkPickedUp()
	case AdvanceActionStartProcessing:
		err = target.StartProcessing()
	case AdvanceActionMarkReady:
		err = target.MarkReady()
	case AdvanceActionDeliver:
		err = target.Complete(time.Now())
	default:
		err = cmd.Action().Validate()
	}
	if err != nil {
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

func (h AdvanceOrderCommandHandler) authorize(target *order.Order, cmd AdvanceOrderCommand) error {
	switch cmd.Action() {
	case AdvanceActionPickUp, AdvanceActionDeliver:
		if !target.IsAssignedTo(cmd.ActorID()) {
			return errs.NewNotAuthorizedError("order")
		}
	case AdvanceActionStartProcessing, AdvanceActionMarkReady:
		if !target.IsOwnedByStore(cmd.ActorID()) {
			return errs.NewNotAuthorizedError("order")
		}
	}
	return nil
}
