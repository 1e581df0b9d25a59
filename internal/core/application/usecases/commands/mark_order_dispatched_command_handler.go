package commands

import (
	"context"

	"pos/internal/core/domain/model/order"
)

// MarkOrderDispatchedCommandHandler moves an order to DISPATCHED and records
// the confirmation time, with a compare-and-swap guarded write.
type MarkOrderDispatchedCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewMarkOrderDispatchedCommandHandler creates a handler for dispatch confirmations.
func NewMarkOrderDispatchedCommandHandler(uowFactory OrderUoWFactory) MarkOrderDispatchedCommandHandler {
	return MarkOrderDispatchedCommandHandler{uowFactory: uowFactory}
}

// Handle marks the order dispatched. A terminal order (e.g. already cancelled
// by a webhook event) rejects the transition; the caller decides whether that
// is an error or just a lost race.
func (h MarkOrderDispatchedCommandHandler) Handle(ctx context.Context, cmd MarkOrderDispatchedCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return changeOrderStatus(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		return o.MarkDispatched(cmd.ConfirmedAt())
	})
}
