package commands

import (
	"context"
)

// SetPartnerAvailabilityCommandHandler handles a delivery partner going on or
// off duty. The aggregate rejects going on duty before approval.
type SetPartnerAvailabilityCommandHandler struct {
	uowFactory PartnerUoWFactory
}

// NewSetPartnerAvailabilityCommandHandler creates a handler for availability toggles.
func NewSetPartnerAvailabilityCommandHandler(uowFactory PartnerUoWFactory) SetPartnerAvailabilityCommandHandler {
	return SetPartnerAvailabilityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the availability toggle command.
func (h SetPartnerAvailabilityCommandHandler) Handle(ctx context.Context, cmd SetPartnerAvailabilityCommand) error {
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

	partnerRepo := uow.PartnerRepository()

	target, err := partnerRepo.Get(ctx, cmd.PartnerID())
	if err != nil {
		return err
	}

	if err = target.SetAvailability(cmd.Available()); err != nil {
		return err
	}

	if err = partnerRepo.Update(ctx, target); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
