package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListOrdersQueryHandler retrieves order read models from the database.
// Items and payments are loaded with one batched query each, keyed by the
// page's order ids, never one query per order.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order listing queries.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the query. Orders come back newest-first.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]OrderResponse, 0)

	sql := `
		SELECT
			id,
			channel,
			status,
			customer_name,
			table_id,
			total_cents,
			version,
			created_at,
			dispatched_at
		FROM orders
	`
	args := make([]any, 0, 1)
	if query.Status() != nil {
		sql += ` WHERE status = ?`
		args = append(args, query.Status().String())
	}
	sql += ` ORDER BY created_at DESC, id DESC`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	index := make(map[int64]int)
	for rows.Next() {
		var resp OrderResponse
		err = rows.Scan(
			&resp.ID,
			&resp.Channel,
			&resp.Status,
			&resp.CustomerName,
			&resp.TableID,
			&resp.TotalCents,
			&resp.Version,
			&resp.CreatedAt,
			&resp.DispatchedAt,
		)
		if err != nil {
			return nil, err
		}

		resp.Items = make([]OrderItemResponse, 0)
		resp.Payments = make([]OrderPaymentResponse, 0)
		index[resp.ID] = len(orders)
		orders = append(orders, resp)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return orders, nil
	}

	orderIDs := make([]int64, 0, len(orders))
	for _, resp := range orders {
		orderIDs = append(orderIDs, resp.ID)
	}

	if err = h.loadItems(ctx, orderIDs, index, orders); err != nil {
		return nil, err
	}
	if err = h.loadPayments(ctx, orderIDs, index, orders); err != nil {
		return nil, err
	}

	return orders, nil
}

func (h ListOrdersQueryHandler) loadItems(
	ctx context.Context,
	orderIDs []int64,
	index map[int64]int,
	orders []OrderResponse,
) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			product_id,
			quantity,
			unit_price_cents,
			note
		FROM order_items
		WHERE order_id IN ?
		ORDER BY id
	`, orderIDs).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var item OrderItemResponse
		var orderID int64

		err = rows.Scan(
			&item.ID,
			&orderID,
			&item.ProductID,
			&item.Quantity,
			&item.UnitPriceCents,
			&item.Note,
		)
		if err != nil {
			return err
		}

		if i, ok := index[orderID]; ok {
			orders[i].Items = append(orders[i].Items, item)
		}
	}

	return rows.Err()
}

func (h ListOrdersQueryHandler) loadPayments(
	ctx context.Context,
	orderIDs []int64,
	index map[int64]int,
	orders []OrderResponse,
) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			method,
			amount_cents,
			change_cents
		FROM order_payments
		WHERE order_id IN ?
		ORDER BY id
	`, orderIDs).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var payment OrderPaymentResponse
		var orderID int64

		err = rows.Scan(
			&payment.ID,
			&orderID,
			&payment.Method,
			&payment.AmountCents,
			&payment.ChangeCents,
		)
		if err != nil {
			return err
		}

		if i, ok := index[orderID]; ok {
			orders[i].Payments = append(orders[i].Payments, payment)
		}
	}

	return rows.Err()
}
