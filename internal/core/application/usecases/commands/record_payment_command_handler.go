package commands

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/payment"
	"fooddelivery/internal/pkg/errs"
)

// ErrOrderHasNoItems is returned when settling an order with a zero total.
var ErrOrderHasNoItems = errors.New("order has no items to pay for")

// RecordPaymentCommandHandler handles the business logic for settling
// orders. Each order is settled at most once for exactly its current total;
// the one-payment-per-order rule is enforced by the repository on Add.
type RecordPaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
}

// NewRecordPaymentCommandHandler creates a handler for payment recording.
func NewRecordPaymentCommandHandler(uowFactory PaymentUoWFactory) RecordPaymentCommandHandler {
	return RecordPaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payment command. The amount is read from the order
// inside the transaction, so a concurrent item change cannot desync the
// settled amount from the order total.
func (h RecordPaymentCommandHandler) Handle(ctx context.Context, cmd RecordPaymentCommand) error {
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

	loadedOrder, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !loadedOrder.TotalAmount().IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("payment amount", ErrOrderHasNoItems)
	}

	newPayment, err := payment.NewPayment(
		cmd.PaymentID(),
		loadedOrder.ID(),
		loadedOrder.TotalAmount(),
		cmd.Method(),
		payment.Completed,
	)
	if err != nil {
		return err
	}

	if err = uow.PaymentRepository().Add(ctx, newPayment); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
