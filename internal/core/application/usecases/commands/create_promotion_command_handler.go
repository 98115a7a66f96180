package commands

import (
	"context"

	"laundry/internal/core/domain/model/promotion"
)

// CreatePromotionCommandHandler handles launching a discount campaign.
type CreatePromotionCommandHandler struct {
	uowFactory PromotionUoWFactory
}

// NewCreatePromotionCommandHandler creates a handler for promotion launches.
func NewCreatePromotionCommandHandler(uowFactory PromotionUoWFactory) CreatePromotionCommandHandler {
	return CreatePromotionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the promotion launch command.
func (h CreatePromotionCommandHandler) Handle(ctx context.Context, cmd CreatePromotionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newPromotion, err := promotion.NewPromotion(cmd.Params())
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

	if err = uow.PromotionRepository().Add(ctx, newPromotion); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
