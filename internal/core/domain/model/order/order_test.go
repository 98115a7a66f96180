package order_test

import (
	"testing"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validItems(t *testing.T) []order.Item {
	t.Helper()
	washFold, err := order.NewItem(kernel.NewUUID(), "Wash & Fold", kernel.NewUUID(), 3, 50)
	require.NoError(t, err)
	dryClean, err := order.NewItem(kernel.NewUUID(), "Dry Cleaning", kernel.NewUUID(), 1, 120)
	require.NoError(t, err)
	return []order.Item{washFold, dryClean}
}

func validAddress(t *testing.T) kernel.Address {
	t.Helper()
	location, err := kernel.NewGeoPoint(12.9716, 77.5946)
	require.NoError(t, err)
	address, err := kernel.NewAddress("42 MG Road, Bengaluru", location)
	require.NoError(t, err)
	return address
}

func validOrderParams(t *testing.T) order.NewOrderParams {
	t.Helper()
	return order.NewOrderParams{
		ID:              kernel.NewUUID(),
		UserID:          kernel.NewUUID(),
		StoreID:         kernel.NewUUID(),
		Items:           validItems(t),
		PickupAddress:   validAddress(t),
		DeliveryAddress: validAddress(t),
		PickupDate:      time.Date(2026, 9, 2, 10, 0, 0, 0, time.UTC),
		PaymentMethod:   order.PaymentMethodCash,
		Notes:           "ring the bell twice",
	}
}

func TestNewOrder(t *testing.T) {
	t.Run("should create valid order with all valid parameters", func(t *testing.T) {
		params := validOrderParams(t)

		o, err := order.NewOrder(params)

		require.NoError(t, err)
		assert.NotNil(t, o)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(params.ID))
		assert.True(t, o.UserID().IsEqual(params.UserID))
		assert.True(t, o.StoreID().IsEqual(params.StoreID))
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, order.PaymentPending, o.PaymentStatus())
		assert.Equal(t, order.PaymentMethodCash, o.PaymentMethod())
		assert.Nil(t, o.DeliveryPartner())
		assert.Nil(t, o.DeliveryDate())
		assert.Nil(t, o.Promotion())
		assert.Equal(t, "ring the bell twice", o.Notes())
	})

	t.Run("should compute total from item subtotals", func(t *testing.T) {
		params := validOrderParams(t)

		o, err := order.NewOrder(params)

		require.NoError(t, err)
		// 3*50 + 1*120
		assert.InDelta(t, 270.0, o.TotalAmount(), 1e-9)
		assert.InDelta(t, 270.0, o.ItemsTotal(), 1e-9)
		assert.Zero(t, o.DiscountAmount())
	})

	t.Run("should fail with empty items", func(t *testing.T) {
		params := validOrderParams(t)
		params.Items = nil

		o, err := order.NewOrder(params)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, order.ErrItemsAreRequired)
	})

	t.Run("should fail with zero-value item", func(t *testing.T) {
		params := validOrderParams(t)
		params.Items = append(params.Items, order.Item{})

		o, err := order.NewOrder(params)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, order.ErrItemIsNotConstructed)
	})

	t.Run("should fail with invalid order ID", func(t *testing.T) {
		params := validOrderParams(t)
		params.ID = kernel.UUID{}

		o, err := order.NewOrder(params)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("should fail with missing user ID", func(t *testing.T) {
		params := validOrderParams(t)
		params.UserID = kernel.UUID{}

		o, err := order.NewOrder(params)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "userId")
	})

	t.Run("should fail with missing store ID", func(t *testing.T) {
		params := validOrderParams(t)
		params.StoreID = kernel.UUID{}

		o, err := order.NewOrder(params)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "storeId")
	})

	t.Run("should fail with zero pickup date", func(t *testing.T) {
		params := validOrderParams(t)
		params.PickupDate = time.Time{}

		o, err := order.NewOrder(params)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, order.ErrPickupDateIsRequired)
	})

	t.Run("should fail with unknown payment method", func(t *testing.T) {
		params := validOrderParams(t)
		params.PaymentMethod = order.PaymentMethodUnknown

		o, err := order.NewOrder(params)

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("should handle multiple validation errors", func(t *testing.T) {
		params := validOrderParams(t)
		params.ID = kernel.UUID{}
		params.Items = nil
		params.PickupDate = time.Time{}

		o, err := order.NewOrder(params)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "items")
		assert.Contains(t, err.Error(), "pickupDate")
	})

	t.Run("should copy items defensively", func(t *testing.T) {
		params := validOrderParams(t)
		original := params.Items[0]

		o, err := order.NewOrder(params)
		require.NoError(t, err)

		params.Items[0] = order.Item{}
		items := o.Items()
		assert.True(t, items[0].ServiceID().IsEqual(original.ServiceID()))

		items[0] = order.Item{}
		assert.True(t, o.Items()[0].ServiceID().IsEqual(original.ServiceID()))
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should pass validation for properly constructed order", func(t *testing.T) {
		o, _ := order.NewOrder(validOrderParams(t))

		require.NoError(t, o.Validate())
	})

	t.Run("should fail validation for nil order", func(t *testing.T) {
		var o *order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})

	t.Run("should fail validation for zero value order", func(t *testing.T) {
		var o order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})
}

func TestOrder_IsEqual(t *testing.T) {
	t.Run("should return true for orders with same ID", func(t *testing.T) {
		params1 := validOrderParams(t)
		params2 := validOrderParams(t)
		params2.ID = params1.ID

		o1, _ := order.NewOrder(params1)
		o2, _ := order.NewOrder(params2)

		assert.True(t, o1.IsEqual(o2))
		assert.True(t, o2.IsEqual(o1))
	})

	t.Run("should return false for orders with different IDs", func(t *testing.T) {
		o1, _ := order.NewOrder(validOrderParams(t))
		o2, _ := order.NewOrder(validOrderParams(t))

		assert.False(t, o1.IsEqual(o2))
	})

	t.Run("should return false when comparing with nil", func(t *testing.T) {
		o1, _ := order.NewOrder(validOrderParams(t))

		assert.False(t, o1.IsEqual(nil))
	})
}

func TestOrder_Assign(t *testing.T) {
	t.Run("should assign partner to pending order", func(t *testing.T) {
		o, _ := order.NewOrder(validOrderParams(t))
		partnerID := kernel.NewUUID()

		err := o.Assign(partnerID)

		require.NoError(t, err)
		assert.Equal(t, order.Accepted, o.Status())
		require.NotNil(t, o.DeliveryPartner())
		assert.True(t, o.DeliveryPartner().IsEqual(partnerID))
		assert.True(t, o.IsAssignedTo(partnerID))
	})

	t.Run("should fail to assign already assigned order", func(t *testing.T) {
		o, _ := order.NewOrder(validOrderParams(t))
		first := kernel.NewUUID()
		second := kernel.NewUUID()

		require.NoError(t, o.Assign(first))

		err := o.Assign(second)

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrOrderAlreadyAssigned)
		assert.True(t, o.DeliveryPartner().IsEqual(first)) // First partner kept
		assert.Equal(t, order.Accepted, o.Status())
	})

	t.Run("should fail to assign with invalid partner ID", func(t *testing.T) {
		o, _ := order.NewOrder(validOrderParams(t))

		err := o.Assign(kernel.UUID{})

		require.Error(t, err)
		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, err)
		assert.Equal(t, order.Pending, o.Status())
		assert.Nil(t, o.DeliveryPartner())
	})

	t.Run("should fail to assign cancelled order", func(t *testing.T) {
		o, _ := order.NewOrder(validOrderParams(t))
		require.NoError(t, o.Cancel())

		err := o.Assign(kernel.NewUUID())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid state")
		assert.Nil(t, o.DeliveryPartner())
	})
}

func TestOrder_Lifecycle(t *testing.T) {
	t.Run("should walk the full happy path", func(t *testing.T) {
		o, _ := order.NewOrder(validOrderParams(t))
		deliveredAt := time.Date(2026, 9, 4, 18, 30, 0, 0, time.UTC)

		require.NoError(t, o.Assign(kernel.NewUUID()))
		require.NoError(t, o.MarkPickedUp())
		assert.Equal(t, order.PickedUp, o.Status())

		require.NoError(t, o.StartProcessing())
		assert.Equal(t, order.InProcess, o.Status())

		require.NoError(t, o.MarkReady())
		assert.Equal(t, order.Ready, o.Status())

		require.NoError(t, o.Complete(deliveredAt))
		assert.Equal(t, order.Delivered, o.Status())
		require.NotNil(t, o.DeliveryDate())
		assert.Equal(t, deliveredAt, *o.DeliveryDate())
	})

	t.Run("should reject skipping steps", func(t *testing.T) {
		o, _ := order.NewOrder(validOrderParams(t))

		require.Error(t, o.MarkPickedUp())
		require.Error(t, o.StartProcessing())
		require.Error(t, o.MarkReady())
		require.Error(t, o.Complete(time.Now()))
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("should reject completing with zero delivery time", func(t *testing.T) {
		o, _ := order.NewOrder(validOrderParams(t))
		require.NoError(t, o.Assign(kernel.NewUUID()))
		require.NoError(t, o.MarkPickedUp())
		require.NoError(t, o.StartProcessing())
		require.NoError(t, o.MarkReady())

		err := o.Complete(time.Time{})

		require.Error(t, err)
		assert.Equal(t, order.Ready, o.Status())
		assert.Nil(t, o.DeliveryDate())
	})

	t.Run("should cancel from any non-terminal status", func(t *testing.T) {
		o, _ := order.NewOrder(validOrderParams(t))
		require.NoError(t, o.Assign(kernel.NewUUID()))
		require.NoError(t, o.MarkPickedUp())

		require.NoError(t, o.Cancel())
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("should not cancel delivered order", func(t *testing.T) {
		o, _ := order.NewOrder(validOrderParams(t))
		require.NoError(t, o.Assign(kernel.NewUUID()))
		require.NoError(t, o.MarkPickedUp())
		require.NoError(t, o.StartProcessing())
		require.NoError(t, o.MarkReady())
		require.NoError(t, o.Complete(time.Now()))

		require.Error(t, o.Cancel())
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("should not cancel twice", func(t *testing.T) {
		o, _ := order.NewOrder(validOrderParams(t))
		require.NoError(t, o.Cancel())

		require.Error(t, o.Cancel())
	})
}

func TestOrder_ApplyPromotion(t *testing.T) {
	t.Run("should apply discount to pending order", func(t *testing.T) {
		o, _ := order.NewOrder(validOrderParams(t))
		promotionID := kernel.NewUUID()

		err := o.ApplyPromotion(promotionID, 70)

		require.NoError(t, err)
		require.NotNil(t, o.Promotion())
		assert.True(t, o.Promotion().IsEqual(promotionID))
		assert.InDelta(t, 70.0, o.DiscountAmount(), 1e-9)
		assert.InDelta(t, 200.0, o.TotalAmount(), 1e-9)
	})

	t.Run("should allow discount equal to items total", func(t *testing.T) {
		o, _ := order.NewOrder(validOrderParams(t))

		err := o.ApplyPromotion(kernel.NewUUID(), o.ItemsTotal())

		require.NoError(t, err)
		assert.Zero(t, o.TotalAmount())
	})

	t.Run("should reject negative discount", func(t *testing.T) {
		o, _ := order.NewOrder(validOrderParams(t))

		err := o.ApplyPromotion(kernel.NewUUID(), -10)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "discountAmount")
		assert.Nil(t, o.Promotion())
		assert.InDelta(t, 270.0, o.TotalAmount(), 1e-9)
	})

	t.Run("should reject discount above items total", func(t *testing.T) {
		o, _ := order.NewOrder(validOrderParams(t))

		err := o.ApplyPromotion(kernel.NewUUID(), 1000)

		require.Error(t, err)
		assert.Nil(t, o.Promotion())
	})

	t.Run("should reject second promotion", func(t *testing.T) {
		o, _ := order.NewOrder(validOrderParams(t))
		require.NoError(t, o.ApplyPromotion(kernel.NewUUID(), 10))

		err := o.ApplyPromotion(kernel.NewUUID(), 20)

		require.Error(t, err)
		assert.InDelta(t, 10.0, o.DiscountAmount(), 1e-9)
	})

	t.Run("should reject promotion on accepted order", func(t *testing.T) {
		o, _ := order.NewOrder(validOrderParams(t))
		require.NoError(t, o.Assign(kernel.NewUUID()))

		err := o.ApplyPromotion(kernel.NewUUID(), 10)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid state")
	})
}

func TestOrder_Payment(t *testing.T) {
	t.Run("should complete pending payment", func(t *testing.T) {
		o, _ := order.NewOrder(validOrderParams(t))

		require.NoError(t, o.MarkPaymentCompleted())
		assert.Equal(t, order.PaymentCompleted, o.PaymentStatus())
	})

	t.Run("should fail pending payment", func(t *testing.T) {
		o, _ := order.NewOrder(validOrderParams(t))

		require.NoError(t, o.MarkPaymentFailed())
		assert.Equal(t, order.PaymentFailed, o.PaymentStatus())
	})

	t.Run("should not change settled payment", func(t *testing.T) {
		o, _ := order.NewOrder(validOrderParams(t))
		require.NoError(t, o.MarkPaymentCompleted())

		require.Error(t, o.MarkPaymentCompleted())
		require.Error(t, o.MarkPaymentFailed())
		assert.Equal(t, order.PaymentCompleted, o.PaymentStatus())
	})
}

func TestOrder_Ownership(t *testing.T) {
	params := validOrderParams(t)
	o, _ := order.NewOrder(params)

	t.Run("should report store ownership", func(t *testing.T) {
		assert.True(t, o.IsOwnedByStore(params.StoreID))
		assert.False(t, o.IsOwnedByStore(kernel.NewUUID()))
	})

	t.Run("should report placing user", func(t *testing.T) {
		assert.True(t, o.IsPlacedByUser(params.UserID))
		assert.False(t, o.IsPlacedByUser(kernel.NewUUID()))
	})

	t.Run("should report no assignment before claim", func(t *testing.T) {
		assert.False(t, o.IsAssignedTo(kernel.NewUUID()))
	})
}

func TestRestoreOrder(t *testing.T) {
	restoreParams := func(t *testing.T) order.RestoreOrderParams {
		t.Helper()
		return order.RestoreOrderParams{
			ID:              kernel.NewUUID(),
			UserID:          kernel.NewUUID(),
			StoreID:         kernel.NewUUID(),
			Items:           validItems(t),
			PickupAddress:   validAddress(t),
			DeliveryAddress: validAddress(t),
			PickupDate:      time.Date(2026, 9, 2, 10, 0, 0, 0, time.UTC),
			Status:          order.Pending,
			PaymentStatus:   order.PaymentPending,
			PaymentMethod:   order.PaymentMethodOnline,
		}
	}

	t.Run("should restore pending unassigned order", func(t *testing.T) {
		o, err := order.RestoreOrder(restoreParams(t))

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.Pending, o.Status())
		assert.Nil(t, o.DeliveryPartner())
		assert.InDelta(t, 270.0, o.TotalAmount(), 1e-9)
	})

	t.Run("should restore assigned order with discount", func(t *testing.T) {
		params := restoreParams(t)
		partnerID := kernel.NewUUID()
		promotionID := kernel.NewUUID()
		deliveredAt := time.Date(2026, 9, 4, 18, 0, 0, 0, time.UTC)
		params.Status = order.Delivered
		params.DeliveryPartnerID = &partnerID
		params.PromotionID = &promotionID
		params.DiscountAmount = 50
		params.DeliveryDate = &deliveredAt
		params.PaymentStatus = order.PaymentCompleted

		o, err := order.RestoreOrder(params)

		require.NoError(t, err)
		assert.Equal(t, order.Delivered, o.Status())
		assert.True(t, o.IsAssignedTo(partnerID))
		assert.InDelta(t, 220.0, o.TotalAmount(), 1e-9)
		require.NotNil(t, o.DeliveryDate())
		assert.Equal(t, deliveredAt, *o.DeliveryDate())
	})

	t.Run("should reject pending order with a partner", func(t *testing.T) {
		params := restoreParams(t)
		partnerID := kernel.NewUUID()
		params.DeliveryPartnerID = &partnerID

		o, err := order.RestoreOrder(params)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "invalid state")
	})

	t.Run("should reject accepted order without a partner", func(t *testing.T) {
		params := restoreParams(t)
		params.Status = order.Accepted

		o, err := order.RestoreOrder(params)

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		params := restoreParams(t)
		params.Status = order.Unknown

		o, err := order.RestoreOrder(params)

		require.Error(t, err)
		assert.Nil(t, o)
	})
}
