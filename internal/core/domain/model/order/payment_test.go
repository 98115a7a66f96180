package order_test

import (
	"testing"

	"laundry/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentStatusFromString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected order.PaymentStatus
		wantErr  bool
	}{
		{"pending", "pending", order.PaymentPending, false},
		{"completed", "completed", order.PaymentCompleted, false},
		{"failed", "failed", order.PaymentFailed, false},
		{"empty string", "", order.PaymentUnknown, true},
		{"unknown is not parseable", "unknown", order.PaymentUnknown, true},
		{"arbitrary string", "refunded", order.PaymentUnknown, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, err := order.PaymentStatusFromString(tt.input)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, order.PaymentUnknown, status)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, status)
			}
		})
	}
}

func TestPaymentMethodFromString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected order.PaymentMethod
		wantErr  bool
	}{
		{"cash", "cash", order.PaymentMethodCash, false},
		{"online", "online", order.PaymentMethodOnline, false},
		{"empty string", "", order.PaymentMethodUnknown, true},
		{"arbitrary string", "card", order.PaymentMethodUnknown, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			method, err := order.PaymentMethodFromString(tt.input)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, order.PaymentMethodUnknown, method)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, method)
			}
		})
	}
}

func TestPayment_Validate(t *testing.T) {
	t.Run("payment status", func(t *testing.T) {
		for _, s := range []order.PaymentStatus{
			order.PaymentPending, order.PaymentCompleted, order.PaymentFailed,
		} {
			assert.NoError(t, s.Validate(), s.String())
		}
		require.Error(t, order.PaymentUnknown.Validate())
		require.Error(t, order.PaymentStatus(99).Validate())
	})

	t.Run("payment method", func(t *testing.T) {
		assert.NoError(t, order.PaymentMethodCash.Validate())
		assert.NoError(t, order.PaymentMethodOnline.Validate())
		require.Error(t, order.PaymentMethodUnknown.Validate())
		require.Error(t, order.PaymentMethod(99).Validate())
	})
}
