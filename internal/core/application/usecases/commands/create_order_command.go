package commands

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/services"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrLinesAreRequired = errors.New("at least one order line is required")
)

// CreateOrderCommandParams carries the inputs for NewCreateOrderCommand.
// Notes and PromoCode are optional.
type CreateOrderCommandParams struct {
	OrderID         kernel.UUID
	UserID          kernel.UUID
	StoreID         kernel.UUID
	Lines           []services.RequestedLine
	PickupAddress   kernel.Address
	DeliveryAddress kernel.Address
	PickupDate      time.Time
	PaymentMethod   order.PaymentMethod
	Notes           string
	PromoCode       string
}

// CreateOrderCommand represents a customer's request to place a laundry order
// with a store. Line prices are not part of the command; they are resolved
// from the store catalog when the command is handled.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	userID          kernel.UUID
	storeID         kernel.UUID
	lines           []services.RequestedLine
	pickupAddress   kernel.Address
	deliveryAddress kernel.Address
	pickupDate      time.Time
	paymentMethod   order.PaymentMethod
	notes           string
	promoCode       string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates identifiers, addresses, the pickup date, the payment method, and
// that every line has a positive quantity.
func NewCreateOrderCommand(params CreateOrderCommandParams) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		notes:     params.Notes,
		promoCode: params.PromoCode,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(params.OrderID),
		cmd.setUserID(params.UserID),
		cmd.setStoreID(params.StoreID),
		cmd.setLines(params.Lines),
		cmd.setPickupAddress(params.PickupAddress),
		cmd.setDeliveryAddress(params.DeliveryAddress),
		cmd.setPickupDate(params.PickupDate),
		cmd.setPaymentMethod(params.PaymentMethod),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// UserID returns the placing customer's identifier.
func (c CreateOrderCommand) UserID() kernel.UUID {
	return c.userID
}

// StoreID returns the fulfilling store's identifier.
func (c CreateOrderCommand) StoreID() kernel.UUID {
	return c.storeID
}

// Lines returns the requested order lines.
func (c CreateOrderCommand) Lines() []services.RequestedLine {
	lines := make([]services.RequestedLine, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// PickupAddress returns where garments are collected.
func (c CreateOrderCommand) PickupAddress() kernel.Address {
	return c.pickupAddress
}

// DeliveryAddress returns where the finished order is returned.
func (c CreateOrderCommand) DeliveryAddress() kernel.Address {
	return c.deliveryAddress
}

// PickupDate returns the requested collection date.
func (c CreateOrderCommand) PickupDate() time.Time {
	return c.pickupDate
}

// PaymentMethod returns how the customer chose to pay.
func (c CreateOrderCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

// Notes returns the optional customer instructions.
func (c CreateOrderCommand) Notes() string {
	return c.notes
}

// PromoCode returns the optional coupon code; empty when none was supplied.
func (c CreateOrderCommand) PromoCode() string {
	return c.promoCode
}

func (c *CreateOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *CreateOrderCommand) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userId", err)
	}
	c.userID = id
	return nil
}

func (c *CreateOrderCommand) setStoreID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("storeId", err)
	}
	c.storeID = id
	return nil
}

func (c *CreateOrderCommand) setLines(lines []services.RequestedLine) error {
	if len(lines) == 0 {
		return ErrLinesAreRequired
	}
	for _, line := range lines {
		if err := line.ServiceID.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause("serviceId", err)
		}
		if err := line.ClothingTypeID.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause("clothingTypeId", err)
		}
		if line.Quantity <= 0 {
			return errs.NewValueIsInvalidError("quantity")
		}
	}
	c.lines = make([]services.RequestedLine, len(lines))
	copy(c.lines, lines)
	return nil
}

func (c *CreateOrderCommand) setPickupAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("pickupAddress", err)
	}
	c.pickupAddress = address
	return nil
}

func (c *CreateOrderCommand) setDeliveryAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("deliveryAddress", err)
	}
	c.deliveryAddress = address
	return nil
}

func (c *CreateOrderCommand) setPickupDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("pickupDate")
	}
	c.pickupDate = date
	return nil
}

func (c *CreateOrderCommand) setPaymentMethod(method order.PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	c.paymentMethod = method
	return nil
}
