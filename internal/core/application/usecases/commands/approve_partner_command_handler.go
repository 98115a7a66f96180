package commands

import (
	"context"
)

// ApprovePartnerCommandHandler handles admin approval of a delivery partner.
type ApprovePartnerCommandHandler struct {
	uowFactory PartnerUoWFactory
}

// NewApprovePartnerCommandHandler creates a handler for partner approvals.
func NewApprovePartnerCommandHandler(uowFactory PartnerUoWFactory) ApprovePartnerCommandHandler {
	return ApprovePartnerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the approval command.
func (h ApprovePartnerCommandHandler) Handle(ctx context.Context, cmd ApprovePartnerCommand) error {
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

	target.Approve()

	if err = partnerRepo.Update(ctx, target); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
