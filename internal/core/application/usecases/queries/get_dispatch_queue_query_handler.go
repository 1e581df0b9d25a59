package queries

import (
	"context"

	"pos/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetDispatchQueueQueryHandler reads the delivery-partner queue view.
// The partner order id comes from the correlation table when the order
// originated at the partner; locally created partner-channel orders have
// no correlation yet and show an empty partner order id.
type GetDispatchQueueQueryHandler struct {
	db *gorm.DB
}

// NewGetDispatchQueueQueryHandler creates a handler for dispatch queue queries.
func NewGetDispatchQueueQueryHandler(db *gorm.DB) GetDispatchQueueQueryHandler {
	return GetDispatchQueueQueryHandler{db: db}
}

// Handle executes the query.
func (h GetDispatchQueueQueryHandler) Handle(
	ctx context.Context,
	query GetDispatchQueueQuery,
) (GetDispatchQueueQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDispatchQueueQueryResponse{}, err
	}

	awaiting, err := h.loadSection(ctx, order.StatusPending, `o.created_at ASC, o.id ASC`)
	if err != nil {
		return GetDispatchQueueQueryResponse{}, err
	}

	dispatched, err := h.loadSection(ctx, order.StatusDispatched, `o.dispatched_at DESC, o.id DESC`)
	if err != nil {
		return GetDispatchQueueQueryResponse{}, err
	}

	return GetDispatchQueueQueryResponse{
		Awaiting:   awaiting,
		Dispatched: dispatched,
	}, nil
}

func (h GetDispatchQueueQueryHandler) loadSection(
	ctx context.Context,
	status order.Status,
	ordering string,
) ([]DispatchQueueEntry, error) {
	entries := make([]DispatchQueueEntry, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			COALESCE(c.partner_order_id, ''),
			o.status,
			o.customer_name,
			o.total_cents,
			o.created_at,
			o.dispatched_at
		FROM orders o
		LEFT JOIN partner_correlations c ON c.order_id = o.id
		WHERE o.channel = ? AND o.status = ?
		ORDER BY `+ordering,
		order.ChannelDeliveryPartner.String(), status.String(),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry DispatchQueueEntry
		err = rows.Scan(
			&entry.OrderID,
			&entry.PartnerOrderID,
			&entry.Status,
			&entry.CustomerName,
			&entry.TotalCents,
			&entry.CreatedAt,
			&entry.DispatchedAt,
		)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}
