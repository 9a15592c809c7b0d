package order_test

import (
	"testing"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)
	return o
}

func money(t *testing.T, subunits int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewPositiveMoney(subunits)
	require.NoError(t, err)
	return m
}

func TestNewOrder(t *testing.T) {
	t.Run("should create order in Pending status with zero total", func(t *testing.T) {
		o := newTestOrder(t)

		assert.Equal(t, order.Pending, o.Status())
		assert.True(t, o.TotalAmount().IsZero())
		assert.Nil(t, o.RiderID())
		assert.Empty(t, o.Items())
		require.NoError(t, o.Validate())
	})

	t.Run("should reject invalid identifiers", func(t *testing.T) {
		var zero kernel.UUID

		_, err := order.NewOrder(kernel.NewUUID(), zero, kernel.NewUUID(), kernel.NewUUID())

		require.Error(t, err)
	})

	t.Run("zero value order fails validation", func(t *testing.T) {
		var o order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_AddItem(t *testing.T) {
	t.Run("should keep total equal to item sum across additions", func(t *testing.T) {
		o := newTestOrder(t)

		// qty 2 × 10.00 -> 20.00
		_, err := o.AddItem(kernel.NewUUID(), kernel.NewUUID(), 2, money(t, 1000))
		require.NoError(t, err)
		assert.Equal(t, int64(2000), o.TotalAmount().Subunits())

		// + qty 1 × 5.00 -> 25.00
		_, err = o.AddItem(kernel.NewUUID(), kernel.NewUUID(), 1, money(t, 500))
		require.NoError(t, err)
		assert.Equal(t, int64(2500), o.TotalAmount().Subunits())

		require.NoError(t, o.Validate())
		assert.Len(t, o.Items(), 2)
	})

	t.Run("should reject non-positive quantity without touching total", func(t *testing.T) {
		o := newTestOrder(t)

		_, err := o.AddItem(kernel.NewUUID(), kernel.NewUUID(), 0, money(t, 1000))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.True(t, o.TotalAmount().IsZero())
		assert.Empty(t, o.Items())
	})

	t.Run("should reject items on a terminal order", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.ChangeStatus(order.Cancelled))

		_, err := o.AddItem(kernel.NewUUID(), kernel.NewUUID(), 1, money(t, 1000))

		require.Error(t, err)
		assert.True(t, o.TotalAmount().IsZero())
	})
}

func TestOrder_RemoveItem(t *testing.T) {
	t.Run("should decrement total by the removed line", func(t *testing.T) {
		o := newTestOrder(t)
		first, err := o.AddItem(kernel.NewUUID(), kernel.NewUUID(), 2, money(t, 1000))
		require.NoError(t, err)
		_, err = o.AddItem(kernel.NewUUID(), kernel.NewUUID(), 1, money(t, 500))
		require.NoError(t, err)
		require.Equal(t, int64(2500), o.TotalAmount().Subunits())

		require.NoError(t, o.RemoveItem(first.ID()))

		assert.Equal(t, int64(500), o.TotalAmount().Subunits())
		assert.Len(t, o.Items(), 1)
		require.NoError(t, o.Validate())
	})

	t.Run("removing the same item twice fails and does not double-decrement", func(t *testing.T) {
		o := newTestOrder(t)
		item, err := o.AddItem(kernel.NewUUID(), kernel.NewUUID(), 1, money(t, 1000))
		require.NoError(t, err)
		_, err = o.AddItem(kernel.NewUUID(), kernel.NewUUID(), 3, money(t, 200))
		require.NoError(t, err)

		require.NoError(t, o.RemoveItem(item.ID()))
		total := o.TotalAmount()

		err = o.RemoveItem(item.ID())

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.True(t, o.TotalAmount().IsEqual(total))
	})
}

func TestOrder_UpdateItemQuantity(t *testing.T) {
	t.Run("should apply the delta between old and new line totals", func(t *testing.T) {
		o := newTestOrder(t)
		item, err := o.AddItem(kernel.NewUUID(), kernel.NewUUID(), 2, money(t, 1000))
		require.NoError(t, err)
		_, err = o.AddItem(kernel.NewUUID(), kernel.NewUUID(), 1, money(t, 500))
		require.NoError(t, err)

		require.NoError(t, o.UpdateItemQuantity(item.ID(), 5))

		assert.Equal(t, int64(5500), o.TotalAmount().Subunits())
		require.NoError(t, o.Validate())
	})

	t.Run("should lower the total when quantity shrinks", func(t *testing.T) {
		o := newTestOrder(t)
		item, err := o.AddItem(kernel.NewUUID(), kernel.NewUUID(), 4, money(t, 250))
		require.NoError(t, err)

		require.NoError(t, o.UpdateItemQuantity(item.ID(), 1))

		assert.Equal(t, int64(250), o.TotalAmount().Subunits())
	})

	t.Run("should reject unknown item", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.UpdateItemQuantity(kernel.NewUUID(), 2)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should reject non-positive quantity and keep total", func(t *testing.T) {
		o := newTestOrder(t)
		item, err := o.AddItem(kernel.NewUUID(), kernel.NewUUID(), 2, money(t, 1000))
		require.NoError(t, err)

		err = o.UpdateItemQuantity(item.ID(), 0)

		require.Error(t, err)
		assert.Equal(t, int64(2000), o.TotalAmount().Subunits())
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	t.Run("should walk the delivery lifecycle", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.ChangeStatus(order.Preparing))
		require.NoError(t, o.ChangeStatus(order.OutForDelivery))
		require.NoError(t, o.ChangeStatus(order.Delivered))

		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("rejected transition preserves prior status", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.ChangeStatus(order.Delivered))

		err := o.ChangeStatus(order.Preparing)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.Delivered, o.Status())
	})
}

func TestOrder_AssignRider(t *testing.T) {
	t.Run("should record the rider reference", func(t *testing.T) {
		o := newTestOrder(t)
		riderID := kernel.NewUUID()

		require.NoError(t, o.AssignRider(riderID))

		require.NotNil(t, o.RiderID())
		assert.True(t, o.RiderID().IsEqual(riderID))
	})

	t.Run("should reject a second assignment", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.AssignRider(kernel.NewUUID()))

		err := o.AssignRider(kernel.NewUUID())

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject assignment on a terminal order", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.ChangeStatus(order.Cancelled))

		err := o.AssignRider(kernel.NewUUID())

		require.Error(t, err)
		assert.Nil(t, o.RiderID())
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore a consistent aggregate", func(t *testing.T) {
		itemA, err := order.RestoreItem(kernel.NewUUID(), kernel.NewUUID(), 2, money(t, 1000))
		require.NoError(t, err)
		itemB, err := order.RestoreItem(kernel.NewUUID(), kernel.NewUUID(), 1, money(t, 500))
		require.NoError(t, err)

		total, err := kernel.NewMoney(2500)
		require.NoError(t, err)
		riderID := kernel.NewUUID()

		o, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			&riderID,
			order.OutForDelivery,
			[]*order.Item{itemA, itemB},
			total,
			time.Now().UTC(),
			3,
		)

		require.NoError(t, err)
		assert.Equal(t, int64(3), o.Version())
		assert.Equal(t, order.OutForDelivery, o.Status())
		require.NoError(t, o.Validate())
	})

	t.Run("should reject a cached total that disagrees with items", func(t *testing.T) {
		item, err := order.RestoreItem(kernel.NewUUID(), kernel.NewUUID(), 2, money(t, 1000))
		require.NoError(t, err)
		badTotal, err := kernel.NewMoney(1999)
		require.NoError(t, err)

		_, err = order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			nil,
			order.Pending,
			[]*order.Item{item},
			badTotal,
			time.Now().UTC(),
			1,
		)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
