package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var ErrApprovePartnerCommandIsNotConstructed = errors.New(
	"ApprovePartnerCommand must be created via NewApprovePartnerCommand constructor",
)

// ApprovePartnerCommand represents an admin vetting a delivery partner
// account, allowing it to go on duty.
type ApprovePartnerCommand struct { //nolint:recvcheck //using for validation
	partnerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewApprovePartnerCommand creates a command to approve a partner account.
func NewApprovePartnerCommand(partnerID kernel.UUID) (ApprovePartnerCommand, error) {
	cmd := ApprovePartnerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setPartnerID(partnerID); err != nil {
		return ApprovePartnerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApprovePartnerCommand) Validate() error {
	return c.guard.Validate(ErrApprovePartnerCommandIsNotConstructed)
}

// PartnerID returns the partner being approved.
func (c ApprovePartnerCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

func (c *ApprovePartnerCommand) setPartnerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.partnerID = id
	return nil
}
