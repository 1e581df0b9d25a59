package commands

import (
	"errors"
	"fmt"

	"pos/internal/pkg/errs"
	"pos/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand cancels an order, either because the delivery attempt
// budget was exhausted or because the partner pushed a CANCELLED event.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID int64

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a cancellation command.
func NewCancelOrderCommand(orderID int64) (CancelOrderCommand, error) {
	if orderID <= 0 {
		return CancelOrderCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"orderId",
			fmt.Errorf("%d is not a valid order id", orderID),
		)
	}

	return CancelOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// OrderID returns the order to cancel.
func (c CancelOrderCommand) OrderID() int64 {
	return c.orderID
}
