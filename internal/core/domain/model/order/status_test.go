package order_test

import (
	"testing"

	"laundry/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFromString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected order.Status
		wantErr  bool
	}{
		{"created", "created", order.Created, false},
		{"pending", "pending", order.Pending, false},
		{"accepted", "accepted", order.Accepted, false},
		{"picked up", "picked_up", order.PickedUp, false},
		{"in process", "in_process", order.InProcess, false},
		{"ready", "ready", order.Ready, false},
		{"delivered", "delivered", order.Delivered, false},
		{"cancelled", "cancelled", order.Cancelled, false},
		{"empty string", "", order.Unknown, true},
		{"unknown is not parseable", "unknown", order.Unknown, true},
		{"uppercase is rejected", "PENDING", order.Unknown, true},
		{"legacy vocabulary is rejected", "washing", order.Unknown, true},
		{"arbitrary string", "shipped", order.Unknown, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, err := order.StatusFromString(tt.input)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, order.Unknown, status)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, status)
			}
		})
	}
}

func TestStatus_String(t *testing.T) {
	tests := []struct {
		status   order.Status
		expected string
	}{
		{order.Unknown, "unknown"},
		{order.Created, "created"},
		{order.Pending, "pending"},
		{order.Accepted, "accepted"},
		{order.PickedUp, "picked_up"},
		{order.InProcess, "in_process"},
		{order.Ready, "ready"},
		{order.Delivered, "delivered"},
		{order.Cancelled, "cancelled"},
		{order.Status(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.status.String())
		})
	}
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should accept all defined statuses", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Created, order.Pending, order.Accepted, order.PickedUp,
			order.InProcess, order.Ready, order.Delivered, order.Cancelled,
		} {
			assert.NoError(t, s.Validate(), s.String())
		}
	})

	t.Run("should reject unknown and out-of-range values", func(t *testing.T) {
		require.Error(t, order.Unknown.Validate())
		require.Error(t, order.Status(-1).Validate())
		require.Error(t, order.Status(100).Validate())
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.Delivered.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())

	for _, s := range []order.Status{
		order.Created, order.Pending, order.Accepted,
		order.PickedUp, order.InProcess, order.Ready,
	} {
		assert.False(t, s.IsTerminal(), s.String())
	}
}

func TestStatus_IsDeletable(t *testing.T) {
	assert.True(t, order.Created.IsDeletable())
	assert.True(t, order.Pending.IsDeletable())

	for _, s := range []order.Status{
		order.Accepted, order.PickedUp, order.InProcess,
		order.Ready, order.Delivered, order.Cancelled,
	} {
		assert.False(t, s.IsDeletable(), s.String())
	}
}

func TestStatus_Transitions(t *testing.T) {
	t.Run("accept only from pending", func(t *testing.T) {
		next, err := order.Pending.Accept()
		require.NoError(t, err)
		assert.Equal(t, order.Accepted, next)

		for _, s := range []order.Status{
			order.Created, order.Accepted, order.PickedUp, order.InProcess,
			order.Ready, order.Delivered, order.Cancelled,
		} {
			_, err := s.Accept()
			require.Error(t, err, s.String())
		}
	})

	t.Run("place only from created", func(t *testing.T) {
		next, err := order.Created.Place()
		require.NoError(t, err)
		assert.Equal(t, order.Pending, next)

		_, err = order.Pending.Place()
		require.Error(t, err)
	})

	t.Run("pick up only from accepted", func(t *testing.T) {
		next, err := order.Accepted.PickUp()
		require.NoError(t, err)
		assert.Equal(t, order.PickedUp, next)

		_, err = order.Pending.PickUp()
		require.Error(t, err)
	})

	t.Run("start processing only from picked up", func(t *testing.T) {
		next, err := order.PickedUp.StartProcessing()
		require.NoError(t, err)
		assert.Equal(t, order.InProcess, next)

		_, err = order.Ready.StartProcessing()
		require.Error(t, err)
	})

	t.Run("mark ready only from in process", func(t *testing.T) {
		next, err := order.InProcess.MarkReady()
		require.NoError(t, err)
		assert.Equal(t, order.Ready, next)

		_, err = order.Accepted.MarkReady()
		require.Error(t, err)
	})

	t.Run("complete only from ready", func(t *testing.T) {
		next, err := order.Ready.Complete()
		require.NoError(t, err)
		assert.Equal(t, order.Delivered, next)

		_, err = order.InProcess.Complete()
		require.Error(t, err)
	})

	t.Run("cancel from any non-terminal status", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Created, order.Pending, order.Accepted,
			order.PickedUp, order.InProcess, order.Ready,
		} {
			next, err := s.Cancel()
			require.NoError(t, err, s.String())
			assert.Equal(t, order.Cancelled, next)
		}

		_, err := order.Delivered.Cancel()
		require.Error(t, err)
		_, err = order.Cancelled.Cancel()
		require.Error(t, err)
	})
}

func TestStatus_ValidateCanHavePartner(t *testing.T) {
	t.Run("pre-claim statuses must have no partner", func(t *testing.T) {
		require.NoError(t, order.Created.ValidateCanHavePartner(false))
		require.NoError(t, order.Pending.ValidateCanHavePartner(false))
		require.Error(t, order.Created.ValidateCanHavePartner(true))
		require.Error(t, order.Pending.ValidateCanHavePartner(true))
	})

	t.Run("post-claim statuses must have a partner", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Accepted, order.PickedUp, order.InProcess,
			order.Ready, order.Delivered,
		} {
			require.NoError(t, s.ValidateCanHavePartner(true), s.String())
			require.Error(t, s.ValidateCanHavePartner(false), s.String())
		}
	})

	t.Run("cancelled allows both", func(t *testing.T) {
		require.NoError(t, order.Cancelled.ValidateCanHavePartner(true))
		require.NoError(t, order.Cancelled.ValidateCanHavePartner(false))
	})
}

func TestStatus_ValidateAccept(t *testing.T) {
	require.NoError(t, order.Pending.ValidateAccept())

	for _, s := range []order.Status{
		order.Created, order.Accepted, order.PickedUp, order.InProcess,
		order.Ready, order.Delivered, order.Cancelled,
	} {
		err := s.ValidateAccept()
		require.Error(t, err, s.String())
		assert.Contains(t, err.Error(), "invalid state")
		assert.Contains(t, err.Error(), s.String())
	}
}
