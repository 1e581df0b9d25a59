package commands

import (
	"errors"
	"fmt"

	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/errs"
	"pos/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderItem is one requested order line. Prices are not part of the
// request; they are resolved from the catalog at creation time.
type CreateOrderItem struct {
	ProductID int64
	Quantity  int
	Note      string
}

// CreateOrderCommand represents a request to create a new order.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("COUNTER", "", nil, []CreateOrderItem{
//	    {ProductID: 7, Quantity: 2},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	channel      order.Channel
	customerName string
	tableID      *int64
	items        []CreateOrderItem

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates the channel against the closed channel set, rejects an empty
// item list and any non-positive quantity.
func NewCreateOrderCommand(
	channel string,
	customerName string,
	tableID *int64,
	items []CreateOrderItem,
) (CreateOrderCommand, error) {
	parsedChannel, err := order.ChannelFromString(channel)
	if err != nil {
		return CreateOrderCommand{}, err
	}

	if len(items) == 0 {
		return CreateOrderCommand{}, errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if item.ProductID <= 0 {
			return CreateOrderCommand{}, errs.NewValueIsInvalidErrorWithCause(
				"productId",
				fmt.Errorf("%d is not a valid product id", item.ProductID),
			)
		}
		if item.Quantity < 1 {
			return CreateOrderCommand{}, errs.NewValueIsInvalidErrorWithCause(
				"quantity",
				fmt.Errorf("%d is not greater than 0", item.Quantity),
			)
		}
	}

	return CreateOrderCommand{
		channel:      parsedChannel,
		customerName: customerName,
		tableID:      tableID,
		items:        items,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Channel returns the parsed origin channel.
func (c CreateOrderCommand) Channel() order.Channel {
	return c.channel
}

// CustomerName returns the customer name, empty if not provided.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// TableID returns the dine-in table id, nil if not provided.
func (c CreateOrderCommand) TableID() *int64 {
	return c.tableID
}

// Items returns the requested order lines.
func (c CreateOrderCommand) Items() []CreateOrderItem {
	return c.items
}
