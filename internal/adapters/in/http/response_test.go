package http

import (
	"errors"
	"net/http"
	"testing"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/store"
	"laundry/internal/core/domain/services"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"object not found", errs.NewObjectNotFoundError("order", "abc"), http.StatusNotFound},
		{"not authorized", errs.NewNotAuthorizedError("store"), http.StatusForbidden},
		{"invalid state", errs.NewInvalidStateError("order", "delivered"), http.StatusConflict},
		{"version conflict", errs.NewVersionConflictError("order", "abc"), http.StatusConflict},
		{"value is invalid", errs.NewValueIsInvalidError("status"), http.StatusBadRequest},
		{"value is required", errs.NewValueIsRequiredError("email"), http.StatusBadRequest},
		{"value out of range", errs.NewValueIsOutOfRangeError("radiusKm", 99, 0, 50), http.StatusBadRequest},
		{"version is invalid", errs.NewVersionIsInvalidError("order", errors.New("stale")), http.StatusBadRequest},
		{"unknown error", errors.New("database exploded"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestStatusFromError_WrappedErrors(t *testing.T) {
	wrapped := errs.NewObjectNotFoundError("order", "abc")
	assert.Equal(t, http.StatusNotFound, statusFromError(wrapped))
	assert.True(t, errors.Is(wrapped, errs.ErrObjectNotFound))
}

func TestStatusFromError_UnknownServicePricing(t *testing.T) {
	location, err := kernel.NewGeoPoint(12.9716, 77.5946)
	require.NoError(t, err)
	address, err := kernel.NewAddress("12 Brigade Road, Bengaluru", location)
	require.NoError(t, err)
	s, err := store.NewStore(
		kernel.NewUUID(), "Sparkle Laundry", "sparkle@example.com", "+91-8001", "$2a$10$hash",
		address)
	require.NoError(t, err)

	_, err = services.NewOrderPricer().Price(s, []services.RequestedLine{
		{ServiceID: kernel.NewUUID(), ClothingTypeID: kernel.NewUUID(), Quantity: 1},
	})

	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, statusFromError(err))
}
