package commands

import (
	"context"

	"pos/internal/core/domain/model/order"
	"pos/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order creation.
//
// Product resolution runs inside the creation transaction: every item's
// product id is resolved against the catalog, its current price is
// snapshotted onto the item line, and the total is computed once. Any
// unresolved product aborts the whole operation with nothing persisted.
//
// Orders on the delivery-partner channel are submitted to the dispatch queue
// right after commit, so the periodic reconciler sweep is only a safety net
// for orders created while the process was down.
type CreateOrderCommandHandler struct {
	uowFactory    OrderUoWFactory
	dispatchQueue ports.DispatchQueue
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// dispatchQueue may be nil when no dispatch pipeline is running (tests, tools).
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, dispatchQueue ports.DispatchQueue) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:    uowFactory,
		dispatchQueue: dispatchQueue,
	}
}

// Handle processes the order creation command and returns the persisted order
// with its items and storage-assigned identifiers.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	catalog := uow.CatalogLookup()
	items := make([]order.Item, 0, len(cmd.Items()))
	for _, requested := range cmd.Items() {
		product, err := catalog.ResolveProduct(ctx, requested.ProductID)
		if err != nil {
			return nil, err
		}

		item, err := order.NewItem(product.ID, requested.Quantity, product.PriceCents, requested.Note)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	newOrder, err := order.NewOrder(cmd.Channel(), cmd.CustomerName(), cmd.TableID(), items)
	if err != nil {
		return nil, err
	}

	persisted, err := uow.OrderRepository().Add(ctx, newOrder)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if persisted.Channel() == order.ChannelDeliveryPartner && h.dispatchQueue != nil {
		h.dispatchQueue.Submit(persisted.ID())
	}

	return persisted, nil
}
