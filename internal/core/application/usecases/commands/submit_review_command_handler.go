package commands

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/review"
	"fooddelivery/internal/pkg/errs"
)

// ErrOrderIsNotDelivered is returned when reviewing an order that has not
// been delivered yet.
var ErrOrderIsNotDelivered = errors.New("only delivered orders can be reviewed")

// SubmitReviewCommandHandler handles the business logic for review
// submission.
type SubmitReviewCommandHandler struct {
	uowFactory ReviewUoWFactory
}

// NewSubmitReviewCommandHandler creates a handler for review submission.
func NewSubmitReviewCommandHandler(uowFactory ReviewUoWFactory) SubmitReviewCommandHandler {
	return SubmitReviewCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the review command. The reviewed order must be
// delivered; its customer and restaurant references are copied onto the
// review.
func (h SubmitReviewCommandHandler) Handle(ctx context.Context, cmd SubmitReviewCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	reviewedOrder, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if reviewedOrder.Status() != order.Delivered {
		return errs.NewValueIsInvalidErrorWithCause("review", ErrOrderIsNotDelivered)
	}

	newReview, err := review.NewReview(
		cmd.ReviewID(),
		reviewedOrder.ID(),
		reviewedOrder.CustomerID(),
		reviewedOrder.RestaurantID(),
		cmd.Rating(),
		cmd.Comment(),
	)
	if err != nil {
		return err
	}

	if err = uow.ReviewRepository().Add(ctx, newReview); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
