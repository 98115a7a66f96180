package commands

import (
	"errors"

	"laundry/internal/core/domain/model/promotion"
	"laundry/internal/pkg/guard"
)

var ErrCreatePromotionCommandIsNotConstructed = errors.New(
	"CreatePromotionCommand must be created via NewCreatePromotionCommand constructor",
)

// CreatePromotionCommand represents an admin launching a discount campaign.
// The promotion aggregate's constructor owns the field validation; the
// command only carries the validated parameters.
type CreatePromotionCommand struct { //nolint:recvcheck //using for validation
	params promotion.NewPromotionParams

	guard guard.ConstructorGuard
}

// NewCreatePromotionCommand creates a command to launch a promotion.
// The parameters are validated by constructing the aggregate up front.
func NewCreatePromotionCommand(params promotion.NewPromotionParams) (CreatePromotionCommand, error) {
	if _, err := promotion.NewPromotion(params); err != nil {
		return CreatePromotionCommand{}, err
	}

	return CreatePromotionCommand{
		params: params,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePromotionCommand) Validate() error {
	return c.guard.Validate(ErrCreatePromotionCommandIsNotConstructed)
}

// Params returns the validated promotion parameters.
func (c CreatePromotionCommand) Params() promotion.NewPromotionParams {
	return c.params
}
