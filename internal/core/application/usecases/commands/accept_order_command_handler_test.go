package commands_test

import (
	"testing"
	"time"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/partner"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func fixtureAddress(t *testing.T) kernel.Address {
	t.Helper()
	location, err := kernel.NewGeoPoint(12.9716, 77.5946)
	require.NoError(t, err)
	address, err := kernel.NewAddress("42 MG Road, Bengaluru", location)
	require.NoError(t, err)
	return address
}

func fixturePendingOrder(t *testing.T) *order.Order {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), "Wash & Fold", kernel.NewUUID(), 2, 40)
	require.NoError(t, err)

	o, err := order.NewOrder(order.NewOrderParams{
		ID:              kernel.NewUUID(),
		UserID:          kernel.NewUUID(),
		StoreID:         kernel.NewUUID(),
		Items:           []order.Item{item},
		PickupAddress:   fixtureAddress(t),
		DeliveryAddress: fixtureAddress(t),
		PickupDate:      time.Date(2026, 9, 2, 10, 0, 0, 0, time.UTC),
		PaymentMethod:   order.PaymentMethodCash,
	})
	require.NoError(t, err)
	return o
}

func fixturePartner(t *testing.T, approved, available bool) *partner.DeliveryPartner {
	t.Helper()
	p, err := partner.RestoreDeliveryPartner(
		kernel.NewUUID(), "Ravi Kumar", "+91-9876543210", "ravi@example.com", "$2a$10$hash", "bike",
		approved, available, 0, nil)
	require.NoError(t, err)
	return p
}

func TestNewAcceptOrderCommand(t *testing.T) {
	t.Run("should create valid command", func(t *testing.T) {
		orderID := kernel.NewUUID()
		partnerID := kernel.NewUUID()

		cmd, err := commands.NewAcceptOrderCommand(orderID, partnerID)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.OrderID().IsEqual(orderID))
		assert.True(t, cmd.PartnerID().IsEqual(partnerID))
	})

	t.Run("should fail with malformed order ID", func(t *testing.T) {
		_, err := commands.NewAcceptOrderCommand(kernel.UUID{}, kernel.NewUUID())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "orderId")
	})

	t.Run("should fail with malformed partner ID", func(t *testing.T) {
		_, err := commands.NewAcceptOrderCommand(kernel.NewUUID(), kernel.UUID{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "partnerId")
	})

	t.Run("unconstructed command fails validation", func(t *testing.T) {
		var cmd commands.AcceptOrderCommand

		assert.Equal(t, commands.ErrAcceptOrderCommandIsNotConstructed, cmd.Validate())
	})
}

func TestAcceptOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	claimable := fixturePendingOrder(t)
	claimant := fixturePartner(t, true, true)
	cmd, _ := commands.NewAcceptOrderCommand(claimable.ID(), claimant.ID())

	orderRepo := new(MockOrderRepository)
	partnerRepo := new(MockPartnerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PartnerRepository").Return(partnerRepo).Once(),
		partnerRepo.On("Get", mock.Anything, claimant.ID()).Return(claimant, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, claimable.ID()).Return(claimable, nil).Once(),
		orderRepo.On("ClaimForPartner", mock.Anything, claimable.ID(), claimant.ID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAcceptOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAcceptOrderCommandHandler(factory, nil)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	orderRepo.AssertExpectations(t)
	partnerRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAcceptOrderCommandHandler_Handle_PartnerNotFound(t *testing.T) {
	ctx := t.Context()
	partnerID := kernel.NewUUID()
	cmd, _ := commands.NewAcceptOrderCommand(kernel.NewUUID(), partnerID)

	partnerRepo := new(MockPartnerRepository)
	partnerRepo.On("Get", mock.Anything, partnerID).
		Return(nil, errs.NewObjectNotFoundError("partnerId", partnerID)).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("PartnerRepository").Return(partnerRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockAcceptOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAcceptOrderCommandHandler(factory, nil)
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "OrderRepository")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestAcceptOrderCommandHandler_Handle_UnapprovedPartner(t *testing.T) {
	ctx := t.Context()
	claimant := fixturePartner(t, false, false)
	cmd, _ := commands.NewAcceptOrderCommand(kernel.NewUUID(), claimant.ID())

	partnerRepo := new(MockPartnerRepository)
	partnerRepo.On("Get", mock.Anything, claimant.ID()).Return(claimant, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("PartnerRepository").Return(partnerRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockAcceptOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAcceptOrderCommandHandler(factory, nil)
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrNotAuthorized)
	// The order is never even read for an unapproved partner
	uow.AssertNotCalled(t, "OrderRepository")
}

func TestAcceptOrderCommandHandler_Handle_UnavailablePartner(t *testing.T) {
	ctx := t.Context()
	claimant := fixturePartner(t, true, false)
	cmd, _ := commands.NewAcceptOrderCommand(kernel.NewUUID(), claimant.ID())

	partnerRepo := new(MockPartnerRepository)
	partnerRepo.On("Get", mock.Anything, claimant.ID()).Return(claimant, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("PartnerRepository").Return(partnerRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockAcceptOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAcceptOrderCommandHandler(factory, nil)
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidState)
	assert.Contains(t, err.Error(), "not available")
}

func TestAcceptOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	claimant := fixturePartner(t, true, true)
	cmd, _ := commands.NewAcceptOrderCommand(orderID, claimant.ID())

	partnerRepo := new(MockPartnerRepository)
	partnerRepo.On("Get", mock.Anything, claimant.ID()).Return(claimant, nil).Once()

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", mock.Anything, orderID).
		Return(nil, errs.NewObjectNotFoundError("orderId", orderID)).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("PartnerRepository").Return(partnerRepo).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockAcceptOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAcceptOrderCommandHandler(factory, nil)
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	orderRepo.AssertNotCalled(t, "ClaimForPartner", mock.Anything, mock.Anything, mock.Anything)
}

func TestAcceptOrderCommandHandler_Handle_OrderNotPending(t *testing.T) {
	ctx := t.Context()
	claimed := fixturePendingOrder(t)
	require.NoError(t, claimed.Assign(kernel.NewUUID()))
	claimant := fixturePartner(t, true, true)
	cmd, _ := commands.NewAcceptOrderCommand(claimed.ID(), claimant.ID())

	partnerRepo := new(MockPartnerRepository)
	partnerRepo.On("Get", mock.Anything, claimant.ID()).Return(claimant, nil).Once()

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", mock.Anything, claimed.ID()).Return(claimed, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("PartnerRepository").Return(partnerRepo).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockAcceptOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAcceptOrderCommandHandler(factory, nil)
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidState)
	// Current status is reported back to the caller
	assert.Contains(t, err.Error(), "accepted")
	orderRepo.AssertNotCalled(t, "ClaimForPartner", mock.Anything, mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestAcceptOrderCommandHandler_Handle_LostRace(t *testing.T) {
	ctx := t.Context()
	claimable := fixturePendingOrder(t)
	claimant := fixturePartner(t, true, true)
	cmd, _ := commands.NewAcceptOrderCommand(claimable.ID(), claimant.ID())

	partnerRepo := new(MockPartnerRepository)
	partnerRepo.On("Get", mock.Anything, claimant.ID()).Return(claimant, nil).Once()

	// The read sees a claimable order but the conditional write loses the race
	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", mock.Anything, claimable.ID()).Return(claimable, nil).Once()
	orderRepo.On("ClaimForPartner", mock.Anything, claimable.ID(), claimant.ID()).
		Return(errs.NewVersionConflictError("order", claimable.ID())).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("PartnerRepository").Return(partnerRepo).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockAcceptOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAcceptOrderCommandHandler(factory, nil)
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrVersionConflict)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestAcceptOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	var cmd commands.AcceptOrderCommand

	factory := new(MockAcceptOrderUoWFactory)
	h := commands.NewAcceptOrderCommandHandler(factory, nil)

	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}
