package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var ErrCreatePartnerCommandIsNotConstructed = errors.New(
	"CreatePartnerCommand must be created via NewCreatePartnerCommand constructor",
)

// CreatePartnerCommand represents a delivery partner signing up. The account
// starts unapproved; an admin approves it separately.
type CreatePartnerCommand struct { //nolint:recvcheck //using for validation
	partnerID   kernel.UUID
	name        string
	phone       string
	email       string
	password    string
	vehicleType string

	guard guard.ConstructorGuard
}

// NewCreatePartnerCommand creates a command to register a delivery partner.
// The password is carried in plain text and hashed by the handler.
func NewCreatePartnerCommand(
	partnerID kernel.UUID,
	name, phone, email, password, vehicleType string,
) (CreatePartnerCommand, error) {
	cmd := CreatePartnerCommand{
		vehicleType: vehicleType,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPartnerID(partnerID),
		cmd.setName(name),
		cmd.setPhone(phone),
		cmd.setEmail(email),
		cmd.setPassword(password),
	); err != nil {
		return CreatePartnerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePartnerCommand) Validate() error {
	return c.guard.Validate(ErrCreatePartnerCommandIsNotConstructed)
}

// PartnerID returns the identifier for the new partner.
func (c CreatePartnerCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

// Name returns the partner's display name.
func (c CreatePartnerCommand) Name() string {
	return c.name
}

// Phone returns the partner's contact number.
func (c CreatePartnerCommand) Phone() string {
	return c.phone
}

// Email returns the partner's login email.
func (c CreatePartnerCommand) Email() string {
	return c.email
}

// Password returns the plain-text password to be hashed by the handler.
func (c CreatePartnerCommand) Password() string {
	return c.password
}

// VehicleType returns how the partner moves orders; may be empty.
func (c CreatePartnerCommand) VehicleType() string {
	return c.vehicleType
}

func (c *CreatePartnerCommand) setPartnerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.partnerID = id
	return nil
}

func (c *CreatePartnerCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *CreatePartnerCommand) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	c.phone = phone
	return nil
}

func (c *CreatePartnerCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}

func (c *CreatePartnerCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	c.password = password
	return nil
}
