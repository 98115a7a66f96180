package commands

import (
	"errors"
	"fmt"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var ErrAdvanceOrderCommandIsNotConstructed = errors.New(
	"AdvanceOrderCommand must be created via NewAdvanceOrderCommand constructor",
)

// AdvanceAction is a single forward step along the order lifecycle.
type AdvanceAction int

const (
	// AdvanceActionUnknown represents an invalid or undefined action.
	AdvanceActionUnknown AdvanceAction = iota

	// AdvanceActionPickUp records garment collection; performed by the
	// assigned delivery partner on an accepted order.
	AdvanceActionPickUp

	// AdvanceActionStartProcessing records the start of washing; performed
	// by the owning store on a picked up order.
	AdvanceActionStartProcessing

	// AdvanceActionMarkReady records the end of processing; performed by the
	// owning store on an in process order.
	AdvanceActionMarkReady

	// AdvanceActionDeliver records return to the customer; performed by the
	// assigned delivery partner on a ready order.
	AdvanceActionDeliver
)

func getAdvanceActionStrings() map[AdvanceAction]string {
	return map[AdvanceAction]string{
		AdvanceActionUnknown:         "unknown",
		AdvanceActionPickUp:          "pick_up",
		AdvanceActionStartProcessing: "start_processing",
		AdvanceActionMarkReady:       "mark_ready",
		AdvanceActionDeliver:         "deliver",
	}
}

// AdvanceActionFromString parses an AdvanceAction from its wire representation.
func AdvanceActionFromString(s string) (AdvanceAction, error) {
	for action, str := range getAdvanceActionStrings() {
		if action != AdvanceActionUnknown && str == s {
			return action, nil
		}
	}
	return AdvanceActionUnknown, errs.NewValueIsInvalidErrorWithCause("action",
		fmt.Errorf("%q is not a valid action", s))
}

// Validate checks that the action is one of the defined values.
func (a AdvanceAction) Validate() error {
	if a <= AdvanceActionUnknown || a > AdvanceActionDeliver {
		return errs.NewValueIsInvalidErrorWithCause("action",
			fmt.Errorf("%d is not a valid action", a))
	}
	return nil
}

// String returns the wire representation of the action.
func (a AdvanceAction) String() string {
	if s, ok := getAdvanceActionStrings()[a]; ok {
		return s
	}
	return getAdvanceActionStrings()[AdvanceActionUnknown]
}

// AdvanceOrderCommand represents a request by the store or the assigned
// delivery partner to move an order one step forward along its lifecycle.
type AdvanceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actorID kernel.UUID
	action  AdvanceAction

	guard guard.ConstructorGuard
}

// NewAdvanceOrderCommand creates a command to advance an order's status.
// The actor is the store (for processing steps) or the delivery partner (for
// pickup and delivery).
func NewAdvanceOrderCommand(orderID, actorID kernel.UUID, action AdvanceAction) (AdvanceOrderCommand, error) {
	cmd := AdvanceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActorID(actorID),
		cmd.setAction(action),
	); err != nil {
		return AdvanceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceOrderCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderCommandIsNotConstructed)
}

// OrderID returns the order being advanced.
func (c AdvanceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the store or partner performing the step.
func (c AdvanceOrderCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Action returns the lifecycle step being performed.
func (c AdvanceOrderCommand) Action() AdvanceAction {
	return c.action
}

func (c *AdvanceOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	c.orderID = id
	return nil
}

func (c *AdvanceOrderCommand) setActorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("actorId", err)
	}
	c.actorID = id
	return nil
}

func (c *AdvanceOrderCommand) setAction(action AdvanceAction) error {
	if err := action.Validate(); err != nil {
		return err
	}
	c.action = action
	return nil
}
