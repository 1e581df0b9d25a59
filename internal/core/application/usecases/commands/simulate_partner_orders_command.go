package commands

import (
	"errors"
	"fmt"

	"pos/internal/pkg/errs"
	"pos/internal/pkg/guard"
)

var ErrSimulatePartnerOrdersCommandIsNotConstructed = errors.New(
	"SimulatePartnerOrdersCommand must be created via NewSimulatePartnerOrdersCommand constructor",
)

// maxSimulatedOrders caps a single simulation request.
const maxSimulatedOrders = 50

// SimulatePartnerOrdersCommand requests synthetic partner orders for
// exercising the dispatch pipeline without partner traffic. Each simulated
// order gets a generated partner order id and the given item lines.
type SimulatePartnerOrdersCommand struct { //nolint:recvcheck //using for validation
	count int
	items []CreateOrderItem

	guard guard.ConstructorGuard
}

// NewSimulatePartnerOrdersCommand creates a simulation command.
func NewSimulatePartnerOrdersCommand(count int, items []CreateOrderItem) (SimulatePartnerOrdersCommand, error) {
	if count < 1 || count > maxSimulatedOrders {
		return SimulatePartnerOrdersCommand{}, errs.NewValueIsOutOfRangeError("count", count, 1, maxSimulatedOrders)
	}
	if len(items) == 0 {
		return SimulatePartnerOrdersCommand{}, errs.NewValueIsRequiredError("items")
	}
	for i, item := range items {
		if item.ProductID <= 0 {
			return SimulatePartnerOrdersCommand{}, errs.NewValueIsInvalidErrorWithCause(
				"items",
				fmt.Errorf("item %d has invalid product id %d", i, item.ProductID),
			)
		}
		if item.Quantity < 1 {
			return SimulatePartnerOrdersCommand{}, errs.NewValueIsInvalidErrorWithCause(
				"items",
				fmt.Errorf("item %d has invalid quantity %d", i, item.Quantity),
			)
		}
	}

	return SimulatePartnerOrdersCommand{
		count: count,
		items: items,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SimulatePartnerOrdersCommand) Validate() error {
	return c.guard.Validate(ErrSimulatePartnerOrdersCommandIsNotConstructed)
}

// Count returns how many synthetic orders to create.
func (c SimulatePartnerOrdersCommand) Count() int {
	return c.count
}

// Items returns the item lines every synthetic order carries.
func (c SimulatePartnerOrdersCommand) Items() []CreateOrderItem {
	return c.items
}
