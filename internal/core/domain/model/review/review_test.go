package review_test

import (
	"testing"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/review"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReview(t *testing.T) {
	t.Run("should create a review with a valid rating", func(t *testing.T) {
		r, err := review.NewReview(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			4, "great pizza",
		)

		require.NoError(t, err)
		assert.Equal(t, 4, r.Rating())
		assert.Equal(t, "great pizza", r.Comment())
		require.NoError(t, r.Validate())
	})

	t.Run("should allow an empty comment", func(t *testing.T) {
		_, err := review.NewReview(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			5, "",
		)

		require.NoError(t, err)
	})

	t.Run("should reject out-of-range ratings", func(t *testing.T) {
		for _, rating := range []int{0, -1, 6, 100} {
			_, err := review.NewReview(
				kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
				rating, "",
			)

			require.Error(t, err, "rating %d", rating)
			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}
	})

	t.Run("should reject a missing order reference", func(t *testing.T) {
		var noOrder kernel.UUID

		_, err := review.NewReview(
			kernel.NewUUID(), noOrder, kernel.NewUUID(), kernel.NewUUID(),
			3, "",
		)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value review fails validation", func(t *testing.T) {
		var r review.Review

		require.ErrorIs(t, r.Validate(), review.ErrReviewIsNotConstructed)
	})
}
