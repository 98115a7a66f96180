package commands

import (
	"context"
	"errors"
	"time"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/services"
	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"
)

// ErrStoreNotAcceptingOrders is returned when the target store is offline or
// suspended at placement time.
var ErrStoreNotAcceptingOrders = errs.NewInvalidStateError("store", "not accepting orders")

// CreateOrderCommandHandler handles the business logic for order placement.
// Resolves line prices from the store catalog, computes the total server-side,
// optionally redeems a promotion, and persists the order in pending status.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, publisher)
//	cmd, _ := NewCreateOrderCommand(params)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory CreateOrderUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewCreateOrderCommandHandler creates a handler for order placement operations.
// The publisher may be nil when event publishing is disabled.
func NewCreateOrderCommandHandler(
	uowFactory CreateOrderUoWFactory,
	publisher ports.OrderEventPublisher,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the order placement command.
//
// The store must exist and be accepting orders, and the user must exist.
// Prices come from the store catalog, never from the client. When a promo
// code is supplied the promotion is redeemed in the same transaction, so a
// usage-limited coupon cannot be over-redeemed by concurrent placements.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	fulfillingStore, err := uow.StoreRepository().Get(ctx, cmd.StoreID())
	if err != nil {
		return err
	}
	if !fulfillingStore.IsAcceptingOrders() {
		return ErrStoreNotAcceptingOrders
	}

	if _, err = uow.UserRepository().Get(ctx, cmd.UserID()); err != nil {
		return err
	}

	items, err := services.NewOrderPricer().Price(fulfillingStore, cmd.Lines())
	if err != nil {
		return err
	}

	newOrder, err := order.NewOrder(order.NewOrderParams{
		ID:              cmd.OrderID(),
		UserID:          cmd.UserID(),
		StoreID:         cmd.StoreID(),
		Items:           items,
		PickupAddress:   cmd.PickupAddress(),
		DeliveryAddress: cmd.DeliveryAddress(),
		PickupDate:      cmd.PickupDate(),
		PaymentMethod:   cmd.PaymentMethod(),
		Notes:           cmd.Notes(),
	})
	if err != nil {
		return err
	}

	if cmd.PromoCode() != "" {
		if err = h.redeemPromotion(ctx, uow, newOrder, cmd.PromoCode()); err != nil {
			return err
		}
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if h.publisher != nil {
		_ = h.publisher.PublishOrderChanged(ctx, newOrder)
	}

	return nil
}

func (h CreateOrderCommandHandler) redeemPromotion(
	ctx context.Context,
	uow CreateOrderUoW,
	newOrder *order.Order,
	code string,
) error {
	promotionRepo := uow.PromotionRepository()

	promo, err := promotionRepo.GetByCode(ctx, code)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return errs.NewValueIsInvalidError("promoCode")
	}
	if err != nil {
		return err
	}

	if _, err = services.NewDiscountCalculator().Apply(newOrder, promo, time.Now()); err != nil {
		return err
	}

	return promotionRepo.Update(ctx, promo)
}
