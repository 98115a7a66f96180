package commands

import (
	"context"

	"laundry/internal/core/domain/model/partner"
	"laundry/internal/pkg/auth"
)

// CreatePartnerCommandHandler handles delivery partner registration.
// The new account is persisted unapproved and unavailable.
type CreatePartnerCommandHandler struct {
	uowFactory PartnerUoWFactory
}

// NewCreatePartnerCommandHandler creates a handler for partner registration.
func NewCreatePartnerCommandHandler(uowFactory PartnerUoWFactory) CreatePartnerCommandHandler {
	return CreatePartnerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the partner registration command.
func (h CreatePartnerCommandHandler) Handle(ctx context.Context, cmd CreatePartnerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	passwordHash, err := auth.HashPassword(cmd.Password())
	if err != nil {
		return err
	}

	newPartner, err := partner.NewDeliveryPartner(
		cmd.PartnerID(), cmd.Name(), cmd.Phone(), cmd.Email(), passwordHash, cmd.VehicleType())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.PartnerRepository().Add(ctx, newPartner); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
