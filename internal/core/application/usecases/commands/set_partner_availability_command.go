package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var ErrSetPartnerAvailabilityCommandIsNotConstructed = errors.New(
	"SetPartnerAvailabilityCommand must be created via NewSetPartnerAvailabilityCommand constructor",
)

// SetPartnerAvailabilityCommand represents a delivery partner going on or off
// duty.
type SetPartnerAvailabilityCommand struct { //nolint:recvcheck //using for validation
	partnerID kernel.UUID
	available bool

	guard guard.ConstructorGuard
}

// NewSetPartnerAvailabilityCommand creates a command to toggle a partner's
// availability.
func NewSetPartnerAvailabilityCommand(partnerID kernel.UUID, available bool) (SetPartnerAvailabilityCommand, error) {
	cmd := SetPartnerAvailabilityCommand{
		available: available,
		guard:     guard.NewConstructorGuard(),
	}

	if err := cmd.setPartnerID(partnerID); err != nil {
		return SetPartnerAvailabilityCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetPartnerAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrSetPartnerAvailabilityCommandIsNotConstructed)
}

// PartnerID returns the partner toggling availability.
func (c SetPartnerAvailabilityCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

// Available returns the desired availability state.
func (c SetPartnerAvailabilityCommand) Available() bool {
	return c.available
}

func (c *SetPartnerAvailabilityCommand) setPartnerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.partnerID = id
	return nil
}
