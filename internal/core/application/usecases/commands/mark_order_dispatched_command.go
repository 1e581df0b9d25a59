package commands

import (
	"errors"
	"fmt"
	"time"

	"pos/internal/pkg/errs"
	"pos/internal/pkg/guard"
)

var ErrMarkOrderDispatchedCommandIsNotConstructed = errors.New(
	"MarkOrderDispatchedCommand must be created via NewMarkOrderDispatchedCommand constructor",
)

// MarkOrderDispatchedCommand records that the delivery partner confirmed the
// handoff of an order, either through a successful delivery attempt or a
// CONFIRMED webhook event.
type MarkOrderDispatchedCommand struct { //nolint:recvcheck //using for validation
	orderID     int64
	confirmedAt time.Time

	guard guard.ConstructorGuard
}

// NewMarkOrderDispatchedCommand creates the command with the partner
// confirmation time.
func NewMarkOrderDispatchedCommand(orderID int64, confirmedAt time.Time) (MarkOrderDispatchedCommand, error) {
	if orderID <= 0 {
		return MarkOrderDispatchedCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"orderId",
			fmt.Errorf("%d is not a valid order id", orderID),
		)
	}
	if confirmedAt.IsZero() {
		return MarkOrderDispatchedCommand{}, errs.NewValueIsRequiredError("confirmedAt")
	}

	return MarkOrderDispatchedCommand{
		orderID:     orderID,
		confirmedAt: confirmedAt,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkOrderDispatchedCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderDispatchedCommandIsNotConstructed)
}

// OrderID returns the order to mark dispatched.
func (c MarkOrderDispatchedCommand) OrderID() int64 {
	return c.orderID
}

// ConfirmedAt returns when the partner confirmed.
func (c MarkOrderDispatchedCommand) ConfirmedAt() time.Time {
	return c.confirmedAt
}
