package services_test

import (
	"testing"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/store"
	"laundry/internal/core/domain/services"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAddress(t *testing.T) kernel.Address {
	t.Helper()
	location, err := kernel.NewGeoPoint(12.9716, 77.5946)
	require.NoError(t, err)
	address, err := kernel.NewAddress("12 Brigade Road, Bengaluru", location)
	require.NoError(t, err)
	return address
}

func testStore(t *testing.T, services ...store.Service) *store.Store {
	t.Helper()
	s, err := store.NewStore(
		kernel.NewUUID(), "Sparkle Laundry", "sparkle@example.com", "+91-8001", "$2a$10$hash",
		testAddress(t))
	require.NoError(t, err)
	for _, service := range services {
		require.NoError(t, s.AddService(service))
	}
	return s
}

func TestOrderPricer_Price(t *testing.T) {
	pricer := services.NewOrderPricer()
	shirtTypeID := kernel.NewUUID()
	trouserTypeID := kernel.NewUUID()

	washFold, err := store.NewService(kernel.NewUUID(), "Wash & Fold", "", []store.ClothingPrice{
		{ClothingTypeID: shirtTypeID, Price: 30},
		{ClothingTypeID: trouserTypeID, Price: 45},
	})
	require.NoError(t, err)

	t.Run("should price lines from the catalog", func(t *testing.T) {
		s := testStore(t, washFold)

		items, err := pricer.Price(s, []services.RequestedLine{
			{ServiceID: washFold.ID(), ClothingTypeID: shirtTypeID, Quantity: 3},
			{ServiceID: washFold.ID(), ClothingTypeID: trouserTypeID, Quantity: 2},
		})

		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "Wash & Fold", items[0].ServiceName())
		assert.InDelta(t, 90.0, items[0].Subtotal(), 1e-9)
		assert.InDelta(t, 90.0, items[1].Subtotal(), 1e-9)
	})

	t.Run("should fail for service the store does not offer", func(t *testing.T) {
		s := testStore(t, washFold)

		_, err := pricer.Price(s, []services.RequestedLine{
			{ServiceID: kernel.NewUUID(), ClothingTypeID: shirtTypeID, Quantity: 1},
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Contains(t, err.Error(), "serviceId")
	})

	t.Run("should fail for unpriced clothing type", func(t *testing.T) {
		s := testStore(t, washFold)

		_, err := pricer.Price(s, []services.RequestedLine{
			{ServiceID: washFold.ID(), ClothingTypeID: kernel.NewUUID(), Quantity: 1},
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "object not found")
	})

	t.Run("should fail for non-positive quantity", func(t *testing.T) {
		s := testStore(t, washFold)

		_, err := pricer.Price(s, []services.RequestedLine{
			{ServiceID: washFold.ID(), ClothingTypeID: shirtTypeID, Quantity: 0},
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "quantity")
	})

	t.Run("should fail for unconstructed store", func(t *testing.T) {
		var s store.Store

		_, err := pricer.Price(&s, nil)

		require.Error(t, err)
		assert.Equal(t, store.ErrStoreIsNotConstructed, err)
	})

	t.Run("priced items build a valid order", func(t *testing.T) {
		s := testStore(t, washFold)

		items, err := pricer.Price(s, []services.RequestedLine{
			{ServiceID: washFold.ID(), ClothingTypeID: shirtTypeID, Quantity: 3},
		})
		require.NoError(t, err)

		o, err := order.NewOrder(order.NewOrderParams{
			ID:              kernel.NewUUID(),
			UserID:          kernel.NewUUID(),
			StoreID:         s.ID(),
			Items:           items,
			PickupAddress:   testAddress(t),
			DeliveryAddress: testAddress(t),
			PickupDate:      time.Date(2026, 9, 2, 10, 0, 0, 0, time.UTC),
			PaymentMethod:   order.PaymentMethodCash,
		})
		require.NoError(t, err)
		assert.InDelta(t, 90.0, o.TotalAmount(), 1e-9)
	})
}
