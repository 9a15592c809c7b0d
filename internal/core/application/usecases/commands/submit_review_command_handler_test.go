package commands_test

import (
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/review"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSubmitReviewCommandHandler_Handle_DeliveredOrder(t *testing.T) {
	ctx := t.Context()

	testOrder := newUnassignedOrder(t)
	require.NoError(t, testOrder.ChangeStatus(order.Delivered))

	cmd, err := commands.NewSubmitReviewCommand(kernel.NewUUID(), testOrder.ID(), 5, "great pizza")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	reviewRepo := new(MockReviewRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("ReviewRepository").Return(reviewRepo).Once(),
		reviewRepo.On("Add", ctx, mock.AnythingOfType("*review.Review")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockReviewUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSubmitReviewCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	addCall := reviewRepo.Calls[0]
	submitted := addCall.Arguments[1].(*review.Review)
	assert.True(t, submitted.CustomerID().IsEqual(testOrder.CustomerID()))
	assert.True(t, submitted.RestaurantID().IsEqual(testOrder.RestaurantID()))
	assert.Equal(t, 5, submitted.Rating())
	assert.Equal(t, "great pizza", submitted.Comment())
	reviewRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSubmitReviewCommandHandler_Handle_UndeliveredOrder(t *testing.T) {
	ctx := t.Context()

	testOrder := newUnassignedOrder(t)

	cmd, err := commands.NewSubmitReviewCommand(kernel.NewUUID(), testOrder.ID(), 4, "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockReviewUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSubmitReviewCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "only delivered orders can be reviewed")
	uow.AssertNotCalled(t, "ReviewRepository")
}

func TestSubmitReviewCommandHandler_Handle_CancelledOrder(t *testing.T) {
	ctx := t.Context()

	testOrder := newUnassignedOrder(t)
	require.NoError(t, testOrder.ChangeStatus(order.Cancelled))

	cmd, err := commands.NewSubmitReviewCommand(kernel.NewUUID(), testOrder.ID(), 1, "never arrived")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockReviewUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSubmitReviewCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewSubmitReviewCommand_RatingOutOfRange(t *testing.T) {
	for _, rating := range []int{0, 6, -1} {
		_, err := commands.NewSubmitReviewCommand(kernel.NewUUID(), kernel.NewUUID(), rating, "")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	}
}
