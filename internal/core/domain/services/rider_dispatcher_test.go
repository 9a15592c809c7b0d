package services_test

import (
	"testing"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/rider"
	"fooddelivery/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)
	return o
}

func newTestRider(t *testing.T, name string) *rider.Rider {
	t.Helper()
	r, err := rider.NewRider(kernel.NewUUID(), name, "+15550000001", rider.Bicycle)
	require.NoError(t, err)
	return r
}

func TestRiderDispatcher_Dispatch(t *testing.T) {
	t.Run("should assign the first available rider and mark it busy", func(t *testing.T) {
		o := newTestOrder(t)
		busy := newTestRider(t, "Busy")
		require.NoError(t, busy.MarkBusy())
		free := newTestRider(t, "Free")
		dispatcher := services.NewRiderDispatcher()

		result, err := dispatcher.Dispatch(o, []*rider.Rider{busy, free})

		require.NoError(t, err)
		assert.True(t, result.IsEqual(free))
		assert.False(t, result.IsAvailable())
		require.NotNil(t, o.RiderID())
		assert.True(t, o.RiderID().IsEqual(free.ID()))
	})

	t.Run("should return ErrRiderNotFound when all riders are busy", func(t *testing.T) {
		o := newTestOrder(t)
		busy := newTestRider(t, "Busy")
		require.NoError(t, busy.MarkBusy())
		dispatcher := services.NewRiderDispatcher()

		result, err := dispatcher.Dispatch(o, []*rider.Rider{busy})

		require.ErrorIs(t, err, services.ErrRiderNotFound)
		assert.Nil(t, result)
		assert.Nil(t, o.RiderID())
	})

	t.Run("should return ErrRiderNotFound for nil or empty rider slice", func(t *testing.T) {
		o := newTestOrder(t)
		dispatcher := services.NewRiderDispatcher()

		_, err := dispatcher.Dispatch(o, nil)
		require.ErrorIs(t, err, services.ErrRiderNotFound)

		_, err = dispatcher.Dispatch(o, []*rider.Rider{})
		require.ErrorIs(t, err, services.ErrRiderNotFound)
	})

	t.Run("should not mark the rider busy when the order rejects assignment", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.ChangeStatus(order.Cancelled))
		free := newTestRider(t, "Free")
		dispatcher := services.NewRiderDispatcher()

		result, err := dispatcher.Dispatch(o, []*rider.Rider{free})

		require.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, free.IsAvailable(), "rider must stay available after a rejected assignment")
	})

	t.Run("should reject an already assigned order", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.AssignRider(kernel.NewUUID()))
		free := newTestRider(t, "Free")
		dispatcher := services.NewRiderDispatcher()

		_, err := dispatcher.Dispatch(o, []*rider.Rider{free})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "already has a rider")
		assert.True(t, free.IsAvailable())
	})

	t.Run("should return error when order is invalid", func(t *testing.T) {
		var invalidOrder *order.Order
		free := newTestRider(t, "Free")
		dispatcher := services.NewRiderDispatcher()

		result, err := dispatcher.Dispatch(invalidOrder, []*rider.Rider{free})

		require.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
		assert.Nil(t, result)
	})

	t.Run("should return error when rider slice contains an invalid rider", func(t *testing.T) {
		o := newTestOrder(t)
		var invalid rider.Rider
		dispatcher := services.NewRiderDispatcher()

		_, err := dispatcher.Dispatch(o, []*rider.Rider{&invalid})

		require.ErrorIs(t, err, rider.ErrRiderIsNotConstructed)
		assert.Nil(t, o.RiderID())
	})
}
