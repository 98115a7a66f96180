package commands

import (
	"context"

	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"
)

// AcceptOrderCommandHandler handles a delivery partner claiming an unassigned
// pending order.
//
// The precondition checks run in a fixed sequence, each with its own failure
// mode:
//
//  1. both identifiers are well-formed (command construction)
//  2. the partner exists
//  3. the partner is approved
//  4. the partner is available
//  5. the order exists
//  6. the order is pending
//  7. the order has no delivery partner
//
// The checks alone cannot make the claim safe under concurrency: between the
// read and the write another partner may claim the same order. The write is
// therefore a single conditional update (ClaimForPartner) that only succeeds
// while the order is still pending and unassigned; a lost race surfaces as a
// VersionConflictError and leaves the order untouched. Across any number of
// concurrent claims on one order, exactly one succeeds.
//
// Example:
//
//	handler := NewAcceptOrderCommandHandler(uowFactory, publisher)
//	cmd, _ := NewAcceptOrderCommand(orderID, partnerID)
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrVersionConflict) {
//	    // Another partner claimed the order first
//	}
type AcceptOrderCommandHandler struct {
	uowFactory AcceptOrderUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewAcceptOrderCommandHandler creates a handler for order claim operations.
// The publisher may be nil when event publishing is disabled.
func NewAcceptOrderCommandHandler(
	uowFactory AcceptOrderUoWFactory,
	publisher ports.OrderEventPublisher,
) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the order claim command.
func (h AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) error {
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

	claimant, err := uow.PartnerRepository().Get(ctx, cmd.PartnerID())
	if err != nil {
		return err
	}
	if !claimant.IsApproved() {
		return errs.NewNotAuthorizedError("partner")
	}
	if !claimant.IsAvailable() {
		return errs.NewInvalidStateError("partner", "not available")
	}

	orderRepo := uow.OrderRepository()

	claimed, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if err = claimed.Status().ValidateAccept(); err != nil {
		return err
	}
	if claimed.DeliveryPartner() != nil {
		return errs.NewInvalidStateError("order", "already assigned")
	}

	// Conditional write; the read checks above may already be stale.
	if err = orderRepo.ClaimForPartner(ctx, cmd.OrderID(), cmd.PartnerID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if h.publisher != nil {
		if err = claimed.Assign(cmd.PartnerID()); err == nil {
			_ = h.publisher.PublishOrderChanged(ctx, claimed)
		}
	}

	return nil
}
