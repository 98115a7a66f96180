package commands

import (
	"context"
)

// ExpirePromotionsCommandHandler deactivates promotions whose validity window
// has passed. Invoked periodically by the job scheduler.
type ExpirePromotionsCommandHandler struct {
	uowFactory PromotionUoWFactory
}

// NewExpirePromotionsCommandHandler creates a handler for the expiry sweep.
func NewExpirePromotionsCommandHandler(uowFactory PromotionUoWFactory) ExpirePromotionsCommandHandler {
	return ExpirePromotionsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the expiry sweep. Returns the handler's first persistence
// error; promotions already swept in this run stay deactivated only if the
// transaction commits.
func (h ExpirePromotionsCommandHandler) Handle(ctx context.Context, cmd ExpirePromotionsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	promotionRepo := uow.PromotionRepository()

	expired, err := promotionRepo.GetAllActiveExpired(ctx, cmd.Now())
	if err != nil {
		return err
	}

	for _, promo := range expired {
		promo.Deactivate()
		if err = promotionRepo.Update(ctx, promo); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
