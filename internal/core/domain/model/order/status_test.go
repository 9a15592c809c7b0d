package order_test

import (
	"fmt"
	"testing"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.Pending))
		assert.Equal(t, 2, int(order.Preparing))
		assert.Equal(t, 3, int(order.OutForDelivery))
		assert.Equal(t, 4, int(order.Delivered))
		assert.Equal(t, 5, int(order.Cancelled))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []order.Status{
			order.Pending,
			order.Preparing,
			order.OutForDelivery,
			order.Delivered,
			order.Cancelled,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := order.Unknown.Validate()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "0 is not a valid status")
	})

	t.Run("should reject out-of-range status values", func(t *testing.T) {
		for _, status := range []order.Status{order.Status(-1), order.Status(6), order.Status(100)} {
			require.Error(t, status.Validate())
		}
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Pending", order.Pending.String())
	assert.Equal(t, "OutForDelivery", order.OutForDelivery.String())
	assert.Equal(t, "Unknown", order.Status(42).String())
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse valid names", func(t *testing.T) {
		status, err := order.StatusFromString("Preparing")

		require.NoError(t, err)
		assert.Equal(t, order.Preparing, status)
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		_, err := order.StatusFromString("Shipped")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.Delivered.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
	assert.False(t, order.Pending.IsTerminal())
	assert.False(t, order.Preparing.IsTerminal())
	assert.False(t, order.OutForDelivery.IsTerminal())
}

func TestStatus_TransitionTo(t *testing.T) {
	t.Run("should permit transitions between non-terminal states", func(t *testing.T) {
		cases := []struct {
			from order.Status
			to   order.Status
		}{
			{order.Pending, order.Preparing},
			{order.Preparing, order.OutForDelivery},
			{order.OutForDelivery, order.Delivered},
			{order.Pending, order.Cancelled},
			// Non-adjacent jumps are legal: the lifecycle locks terminal
			// states but does not force linear progression.
			{order.Pending, order.Delivered},
			{order.OutForDelivery, order.Preparing},
			{order.Preparing, order.Pending},
		}

		for _, tc := range cases {
			t.Run(fmt.Sprintf("%s to %s", tc.from, tc.to), func(t *testing.T) {
				next, err := tc.from.TransitionTo(tc.to)

				require.NoError(t, err)
				assert.Equal(t, tc.to, next)
			})
		}
	})

	t.Run("should reject any transition out of Delivered", func(t *testing.T) {
		for _, to := range []order.Status{
			order.Pending, order.Preparing, order.OutForDelivery, order.Cancelled,
		} {
			next, err := order.Delivered.TransitionTo(to)

			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrInvalidTransition)
			assert.Equal(t, order.Delivered, next, "prior status must be preserved")
		}
	})

	t.Run("should reject any transition out of Cancelled", func(t *testing.T) {
		for _, to := range []order.Status{
			order.Pending, order.Preparing, order.OutForDelivery, order.Delivered,
		} {
			_, err := order.Cancelled.TransitionTo(to)

			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrInvalidTransition)
		}
	})

	t.Run("should reject transition to an invalid status", func(t *testing.T) {
		_, err := order.Pending.TransitionTo(order.Unknown)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
