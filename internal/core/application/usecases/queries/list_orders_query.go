package queries

import (
	"errors"
	"time"

	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery retrieves orders newest-first, optionally filtered by
// status. The status string must parse into the closed status set; an
// unknown value is rejected here, before touching the database.
//
// Example:
//
//	query, err := NewListOrdersQuery("PENDING")
//	if err != nil {
//	    return err
//	}
//	handler := NewListOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
type ListOrdersQuery struct {
	status *order.Status

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates an order listing query. An empty status string
// means no filter.
func NewListOrdersQuery(status string) (ListOrdersQuery, error) {
	var filter *order.Status
	if status != "" {
		parsed, err := order.StatusFromString(status)
		if err != nil {
			return ListOrdersQuery{}, err
		}
		filter = &parsed
	}

	return ListOrdersQuery{
		status: filter,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Status returns the optional status filter.
func (q ListOrdersQuery) Status() *order.Status {
	return q.status
}

// OrderItemResponse is one item line of an order read model.
type OrderItemResponse struct {
	ID             int64
	ProductID      int64
	Quantity       int
	UnitPriceCents int64
	Note           string
}

// OrderPaymentResponse is one payment of an order read model.
type OrderPaymentResponse struct {
	ID          int64
	Method      string
	AmountCents int64
	ChangeCents int64
}

// OrderResponse is the full order read model with nested items and payments.
type OrderResponse struct {
	ID           int64
	Channel      string
	Status       string
	CustomerName string
	TableID      *int64
	TotalCents   int64
	Version      int64
	CreatedAt    time.Time
	DispatchedAt *time.Time
	Items        []OrderItemResponse
	Payments     []OrderPaymentResponse
}
