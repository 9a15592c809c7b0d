package kernel_test

import (
	"testing"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("should create zero and positive amounts", func(t *testing.T) {
		zero, err := kernel.NewMoney(0)
		require.NoError(t, err)
		assert.True(t, zero.IsZero())

		m, err := kernel.NewMoney(1050)
		require.NoError(t, err)
		assert.Equal(t, int64(1050), m.Subunits())
		assert.True(t, m.IsPositive())
	})

	t.Run("should reject negative amounts", func(t *testing.T) {
		_, err := kernel.NewMoney(-1)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewPositiveMoney(t *testing.T) {
	t.Run("should reject zero", func(t *testing.T) {
		_, err := kernel.NewPositiveMoney(0)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject negative", func(t *testing.T) {
		_, err := kernel.NewPositiveMoney(-100)

		require.Error(t, err)
	})

	t.Run("should accept positive", func(t *testing.T) {
		m, err := kernel.NewPositiveMoney(500)

		require.NoError(t, err)
		assert.Equal(t, int64(500), m.Subunits())
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	t.Run("add and multiply compose", func(t *testing.T) {
		price, _ := kernel.NewPositiveMoney(1000)

		total := kernel.ZeroMoney().Add(price.MulQuantity(2))
		assert.Equal(t, int64(2000), total.Subunits())

		other, _ := kernel.NewPositiveMoney(500)
		total = total.Add(other.MulQuantity(1))
		assert.Equal(t, int64(2500), total.Subunits())
	})

	t.Run("sub removes a line contribution", func(t *testing.T) {
		total, _ := kernel.NewMoney(2500)
		price, _ := kernel.NewPositiveMoney(1000)

		rest, err := total.Sub(price.MulQuantity(2))
		require.NoError(t, err)
		assert.Equal(t, int64(500), rest.Subunits())
	})

	t.Run("sub below zero fails", func(t *testing.T) {
		total, _ := kernel.NewMoney(100)
		price, _ := kernel.NewPositiveMoney(1000)

		_, err := total.Sub(price)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMoney_String(t *testing.T) {
	m, _ := kernel.NewMoney(2005)
	assert.Equal(t, "20.05", m.String())
}
