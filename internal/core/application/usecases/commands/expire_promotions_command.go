package commands

import (
	"errors"
	"time"

	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var ErrExpirePromotionsCommandIsNotConstructed = errors.New(
	"ExpirePromotionsCommand must be created via NewExpirePromotionsCommand constructor",
)

// ExpirePromotionsCommand represents the periodic sweep that deactivates
// promotions whose validity window has passed.
type ExpirePromotionsCommand struct { //nolint:recvcheck //using for validation
	now time.Time

	guard guard.ConstructorGuard
}

// NewExpirePromotionsCommand creates a command to expire promotions as of the
// given time.
func NewExpirePromotionsCommand(now time.Time) (ExpirePromotionsCommand, error) {
	if now.IsZero() {
		return ExpirePromotionsCommand{}, errs.NewValueIsRequiredError("now")
	}

	return ExpirePromotionsCommand{
		now:   now,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ExpirePromotionsCommand) Validate() error {
	return c.guard.Validate(ErrExpirePromotionsCommandIsNotConstructed)
}

// Now returns the reference time for the sweep.
func (c ExpirePromotionsCommand) Now() time.Time {
	return c.now
}
