package commands

import (
	"context"

	"pos/internal/core/domain/model/order"
)

// UpdateOrderStatusCommandHandler applies an explicit status change.
// The transition must be allowed by the status policy table; the write is
// compare-and-swap guarded against concurrent writers.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderStatusCommandHandler creates a handler for explicit status updates.
func NewUpdateOrderStatusCommandHandler(uowFactory OrderUoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{uowFactory: uowFactory}
}

// Handle processes the status update and returns the updated order.
// Unknown order ids surface as ObjectNotFoundError; disallowed transitions
// as ValueIsInvalidError, leaving the stored status untouched.
func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return changeOrderStatus(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		return o.ChangeStatus(cmd.Status())
	})
}
