package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/store"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var ErrCreateStoreCommandIsNotConstructed = errors.New(
	"CreateStoreCommand must be created via NewCreateStoreCommand constructor",
)

// CreateStoreCommandParams carries the inputs for NewCreateStoreCommand.
// Services may be empty; the catalog can be filled later.
type CreateStoreCommandParams struct {
	StoreID  kernel.UUID
	Name     string
	Email    string
	Phone    string
	Password string
	Address  kernel.Address
	Services []store.Service
}

// CreateStoreCommand represents a laundry store signing up for the marketplace.
type CreateStoreCommand struct { //nolint:recvcheck //using for validation
	storeID  kernel.UUID
	name     string
	email    string
	phone    string
	password string
	address  kernel.Address
	services []store.Service

	guard guard.ConstructorGuard
}

// NewCreateStoreCommand creates a command to register a store.
// The password is carried in plain text and hashed by the handler.
func NewCreateStoreCommand(params CreateStoreCommandParams) (CreateStoreCommand, error) {
	cmd := CreateStoreCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setStoreID(params.StoreID),
		cmd.setName(params.Name),
		cmd.setEmail(params.Email),
		cmd.setPhone(params.Phone),
		cmd.setPassword(params.Password),
		cmd.setAddress(params.Address),
		cmd.setServices(params.Services),
	); err != nil {
		return CreateStoreCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateStoreCommand) Validate() error {
	return c.guard.Validate(ErrCreateStoreCommandIsNotConstructed)
}

// StoreID returns the identifier for the new store.
func (c CreateStoreCommand) StoreID() kernel.UUID {
	return c.storeID
}

// Name returns the store's display name.
func (c CreateStoreCommand) Name() string {
	return c.name
}

// Email returns the store's login email.
func (c CreateStoreCommand) Email() string {
	return c.email
}

// Phone returns the store's contact number.
func (c CreateStoreCommand) Phone() string {
	return c.phone
}

// Password returns the plain-text password to be hashed by the handler.
func (c CreateStoreCommand) Password() string {
	return c.password
}

// Address returns the store's physical location.
func (c CreateStoreCommand) Address() kernel.Address {
	return c.address
}

// Services returns the store's initial catalog.
func (c CreateStoreCommand) Services() []store.Service {
	services := make([]store.Service, len(c.services))
	copy(services, c.services)
	return services
}

func (c *CreateStoreCommand) setStoreID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.storeID = id
	return nil
}

func (c *CreateStoreCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *CreateStoreCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}

func (c *CreateStoreCommand) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	c.phone = phone
	return nil
}

func (c *CreateStoreCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	c.password = password
	return nil
}

func (c *CreateStoreCommand) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("address", err)
	}
	c.address = address
	return nil
}

func (c *CreateStoreCommand) setServices(services []store.Service) error {
	for _, service := range services {
		if err := service.Validate(); err != nil {
			return err
		}
	}
	c.services = make([]store.Service, len(services))
	copy(c.services, services)
	return nil
}
