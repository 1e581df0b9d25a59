package commands

import (
	"errors"
	"fmt"

	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/errs"
	"pos/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand represents an explicit status change request,
// typically the kitchen or counter staff advancing an order.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID int64
	status  order.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a status update command.
// The status string must parse into the closed status set.
func NewUpdateOrderStatusCommand(orderID int64, status string) (UpdateOrderStatusCommand, error) {
	if orderID <= 0 {
		return UpdateOrderStatusCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"orderId",
			fmt.Errorf("%d is not a valid order id", orderID),
		)
	}

	parsedStatus, err := order.StatusFromString(status)
	if err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return UpdateOrderStatusCommand{
		orderID: orderID,
		status:  parsedStatus,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the order to update.
func (c UpdateOrderStatusCommand) OrderID() int64 {
	return c.orderID
}

// Status returns the parsed target status.
func (c UpdateOrderStatusCommand) Status() order.Status {
	return c.status
}
