package restaurant_test

import (
	"testing"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/restaurant"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRestaurant(t *testing.T) *restaurant.Restaurant {
	t.Helper()
	r, err := restaurant.NewRestaurant(
		kernel.NewUUID(), "Pizza Corner", "orders@pizzacorner.example", "+15550000010", "2 Oven Way")
	require.NoError(t, err)
	return r
}

func price(t *testing.T, subunits int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewPositiveMoney(subunits)
	require.NoError(t, err)
	return m
}

func TestNewRestaurant(t *testing.T) {
	t.Run("should create an active restaurant with a default category", func(t *testing.T) {
		r := newTestRestaurant(t)

		assert.True(t, r.IsActive())
		assert.Equal(t, "orders@pizzacorner.example", r.Email())
		assert.Equal(t, "+15550000010", r.Phone())
		require.Len(t, r.Categories(), 1)
		assert.Equal(t, restaurant.DefaultCategoryName, r.Categories()[0].Name())
		require.NoError(t, r.Validate())
	})

	t.Run("should reject empty name", func(t *testing.T) {
		_, err := restaurant.NewRestaurant(
			kernel.NewUUID(), "", "orders@pizzacorner.example", "+15550000010", "2 Oven Way")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject malformed email", func(t *testing.T) {
		for _, email := range []string{"not-an-email", "@pizzacorner.example", "orders@"} {
			_, err := restaurant.NewRestaurant(
				kernel.NewUUID(), "Pizza Corner", email, "+15550000010", "2 Oven Way")

			require.Error(t, err, "email %q", email)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("should reject short phone", func(t *testing.T) {
		_, err := restaurant.NewRestaurant(
			kernel.NewUUID(), "Pizza Corner", "orders@pizzacorner.example", "12345", "2 Oven Way")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value restaurant fails validation", func(t *testing.T) {
		var r restaurant.Restaurant

		require.ErrorIs(t, r.Validate(), restaurant.ErrRestaurantIsNotConstructed)
	})
}

func TestRestaurant_AddCategory(t *testing.T) {
	t.Run("should add a named category", func(t *testing.T) {
		r := newTestRestaurant(t)

		category, err := r.AddCategory(kernel.NewUUID(), "Desserts")

		require.NoError(t, err)
		assert.Equal(t, "Desserts", category.Name())
		assert.Len(t, r.Categories(), 2)
	})

	t.Run("should reject a duplicate category name", func(t *testing.T) {
		r := newTestRestaurant(t)
		_, err := r.AddCategory(kernel.NewUUID(), "Desserts")
		require.NoError(t, err)

		_, err = r.AddCategory(kernel.NewUUID(), "Desserts")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRestaurant_AddMenuItem(t *testing.T) {
	t.Run("should place items without a category into the default one", func(t *testing.T) {
		r := newTestRestaurant(t)
		var noCategory kernel.UUID

		item, err := r.AddMenuItem(kernel.NewUUID(), noCategory, "Margherita", price(t, 1200))

		require.NoError(t, err)
		assert.True(t, item.IsAvailable())

		found, err := r.MenuItemByID(item.ID())
		require.NoError(t, err)
		assert.True(t, found.IsEqual(item))
		assert.Len(t, r.Categories()[0].Items(), 1)
	})

	t.Run("should place items into the requested category", func(t *testing.T) {
		r := newTestRestaurant(t)
		category, err := r.AddCategory(kernel.NewUUID(), "Desserts")
		require.NoError(t, err)

		_, err = r.AddMenuItem(kernel.NewUUID(), category.ID(), "Tiramisu", price(t, 600))

		require.NoError(t, err)

		restored, err := r.CategoryByID(category.ID())
		require.NoError(t, err)
		assert.Len(t, restored.Items(), 1)
	})

	t.Run("should reject unknown category", func(t *testing.T) {
		r := newTestRestaurant(t)

		_, err := r.AddMenuItem(kernel.NewUUID(), kernel.NewUUID(), "Tiramisu", price(t, 600))

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should reject non-positive price", func(t *testing.T) {
		r := newTestRestaurant(t)
		var noCategory kernel.UUID

		_, err := r.AddMenuItem(kernel.NewUUID(), noCategory, "Water", kernel.ZeroMoney())

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRestaurant_EnsureAcceptsOrders(t *testing.T) {
	t.Run("active restaurant accepts orders", func(t *testing.T) {
		r := newTestRestaurant(t)

		require.NoError(t, r.EnsureAcceptsOrders())
	})

	t.Run("deactivated restaurant rejects orders", func(t *testing.T) {
		r := newTestRestaurant(t)
		r.Deactivate()

		err := r.EnsureAcceptsOrders()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "restaurant is not active")
	})
}

func TestMenuItem_Availability(t *testing.T) {
	t.Run("unavailable items stay on the menu", func(t *testing.T) {
		r := newTestRestaurant(t)
		var noCategory kernel.UUID
		item, err := r.AddMenuItem(kernel.NewUUID(), noCategory, "Margherita", price(t, 1200))
		require.NoError(t, err)

		item.MakeUnavailable()

		found, err := r.MenuItemByID(item.ID())
		require.NoError(t, err)
		assert.False(t, found.IsAvailable())
	})
}

func TestRestoreRestaurant(t *testing.T) {
	t.Run("should restore categories and items", func(t *testing.T) {
		item, err := restaurant.RestoreMenuItem(kernel.NewUUID(), "Margherita", price(t, 1200), false)
		require.NoError(t, err)
		category, err := restaurant.RestoreCategory(kernel.NewUUID(), "Pizza", []*restaurant.MenuItem{item})
		require.NoError(t, err)

		r, err := restaurant.RestoreRestaurant(
			kernel.NewUUID(), "Pizza Corner", "orders@pizzacorner.example", "+15550000010",
			"2 Oven Way", false,
			[]*restaurant.Category{category},
		)

		require.NoError(t, err)
		assert.False(t, r.IsActive())
		require.Len(t, r.Categories(), 1)
		assert.False(t, r.Categories()[0].Items()[0].IsAvailable())
	})
}
