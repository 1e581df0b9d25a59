package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"pos/internal/core/domain/model/order"
	"pos/internal/core/domain/model/partner"
	"pos/internal/pkg/errs"
)

// IngestResult summarizes the outcome of one webhook batch. Failures are
// isolated per event: the batch always runs to the end and the endpoint
// always acknowledges, so the partner never retries the whole batch over
// one bad event.
type IngestResult struct {
	OrdersCreated    int
	OrdersDispatched int
	OrdersCancelled  int
	Skipped          int
	Failed           int
}

// IngestPartnerEventsCommandHandler maps partner-pushed events onto local
// order state.
//
// PLACED creates a local order plus its partner correlation in one
// transaction; the correlation lookup makes replays a no-op. CONFIRMED and
// CANCELLED resolve the correlation and move the local order, which may lose
// against the delivery attempt loop writing the same row - the CAS write and
// the transition policy decide the winner instead of last-write-wins.
type IngestPartnerEventsCommandHandler struct {
	uowFactory PartnerUoWFactory
	logger     *slog.Logger
}

// NewIngestPartnerEventsCommandHandler creates a handler for webhook batches.
func NewIngestPartnerEventsCommandHandler(uowFactory PartnerUoWFactory, logger *slog.Logger) IngestPartnerEventsCommandHandler {
	return IngestPartnerEventsCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "partner_event_ingestor"),
	}
}

// Handle iterates the batch. Per-event failures are logged and counted but
// never returned: the only error out of here is a malformed command.
func (h IngestPartnerEventsCommandHandler) Handle(ctx context.Context, cmd IngestPartnerEventsCommand) (IngestResult, error) {
	if err := cmd.Validate(); err != nil {
		return IngestResult{}, err
	}

	var result IngestResult
	for _, raw := range cmd.Events() {
		if raw.PartnerOrderID == "" {
			result.Skipped++
			h.logger.DebugContext(ctx, "Skipping partner event without order id", "code", raw.Code)
			continue
		}

		event, err := partner.NewEvent(raw.Code, raw.PartnerOrderID, raw.CustomerName, eventItems(raw.Items))
		if err != nil {
			result.Failed++
			h.logger.WarnContext(ctx, "Rejecting unrecognized partner event",
				"code", raw.Code, "partner_order_id", raw.PartnerOrderID, "error", err)
			continue
		}

		if err := h.processEvent(ctx, event, raw.Items, &result); err != nil {
			result.Failed++
			h.logger.ErrorContext(ctx, "Partner event failed",
				"type", event.Type.String(), "partner_order_id", event.PartnerOrderID, "error", err)
		}
	}

	return result, nil
}

func (h IngestPartnerEventsCommandHandler) processEvent(
	ctx context.Context,
	event partner.Event,
	items []CreateOrderItem,
	result *IngestResult,
) error {
	switch event.Type {
	case partner.EventPlaced:
		return h.processPlaced(ctx, event, items, result)
	case partner.EventConfirmed:
		return h.processConfirmed(ctx, event, result)
	case partner.EventCancelled:
		return h.processCancelled(ctx, event, result)
	default:
		return errs.NewValueIsInvalidError("eventType")
	}
}

// processPlaced creates the local order and its correlation atomically.
// A correlation hit means the event is a replay and nothing happens.
func (h IngestPartnerEventsCommandHandler) processPlaced(
	ctx context.Context,
	event partner.Event,
	items []CreateOrderItem,
	result *IngestResult,
) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	_, err := uow.CorrelationRepository().GetByPartnerOrderID(ctx, event.PartnerOrderID)
	if err == nil {
		result.Skipped++
		return nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	catalog := uow.CatalogLookup()
	orderItems := make([]order.Item, 0, len(items))
	for _, requested := range items {
		product, resolveErr := catalog.ResolveProduct(ctx, requested.ProductID)
		if resolveErr != nil {
			return resolveErr
		}

		item, itemErr := order.NewItem(product.ID, requested.Quantity, product.PriceCents, requested.Note)
		if itemErr != nil {
			return itemErr
		}
		orderItems = append(orderItems, item)
	}

	newOrder, err := order.NewOrder(order.ChannelDeliveryPartner, event.CustomerName, nil, orderItems)
	if err != nil {
		return err
	}

	persisted, err := uow.OrderRepository().Add(ctx, newOrder)
	if err != nil {
		return err
	}

	correlation, err := partner.NewCorrelation(event.PartnerOrderID, persisted.ID())
	if err != nil {
		return err
	}

	if err = uow.CorrelationRepository().Add(ctx, correlation); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	result.OrdersCreated++
	return nil
}

func (h IngestPartnerEventsCommandHandler) processConfirmed(
	ctx context.Context,
	event partner.Event,
	result *IngestResult,
) error {
	orderID, found, err := h.lookupCorrelation(ctx, event.PartnerOrderID)
	if err != nil {
		return err
	}
	if !found {
		result.Skipped++
		return nil
	}

	_, err = changeOrderStatus(ctx, h.orderUoWFactory(), orderID, func(o *order.Order) error {
		return o.MarkDispatched(time.Now().UTC())
	})
	if err != nil {
		return err
	}

	result.OrdersDispatched++
	return nil
}

func (h IngestPartnerEventsCommandHandler) processCancelled(
	ctx context.Context,
	event partner.Event,
	result *IngestResult,
) error {
	orderID, found, err := h.lookupCorrelation(ctx, event.PartnerOrderID)
	if err != nil {
		return err
	}
	if !found {
		result.Skipped++
		return nil
	}

	_, err = changeOrderStatus(ctx, h.orderUoWFactory(), orderID, func(o *order.Order) error {
		return o.Cancel()
	})
	if err != nil {
		return err
	}

	result.OrdersCancelled++
	return nil
}

func (h IngestPartnerEventsCommandHandler) lookupCorrelation(ctx context.Context, partnerOrderID string) (int64, bool, error) {
	uow := h.uowFactory.Create()
	correlation, err := uow.CorrelationRepository().GetByPartnerOrderID(ctx, partnerOrderID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return correlation.OrderID(), true, nil
}

// orderUoWFactory narrows the partner factory so status writes reuse the
// shared compare-and-swap path.
func (h IngestPartnerEventsCommandHandler) orderUoWFactory() OrderUoWFactory {
	return partnerAsOrderUoWFactory{inner: h.uowFactory}
}

type partnerAsOrderUoWFactory struct {
	inner PartnerUoWFactory
}

func (f partnerAsOrderUoWFactory) Create() OrderUoW {
	return f.inner.Create()
}

func eventItems(items []CreateOrderItem) []partner.EventItem {
	out := make([]partner.EventItem, 0, len(items))
	for _, item := range items {
		out = append(out, partner.EventItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Note:      item.Note,
		})
	}
	return out
}
