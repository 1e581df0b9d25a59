package ports

import (
	"context"

	"pos/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order with all its item lines in one write and
	// returns the aggregate restored with storage-assigned identifiers.
	Add(ctx context.Context, aggregate *order.Order) (*order.Order, error)

	// Get retrieves an order by id with its items and payments.
	// Returns ObjectNotFoundError for an unknown id.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// List retrieves orders newest-first, optionally filtered by status.
	// Items (insertion order) and payments are loaded in batched lookups
	// keyed by the matching order ids, never one query per order.
	List(ctx context.Context, status *order.Status) ([]*order.Order, error)

	// ListAwaitingDispatch retrieves delivery-partner orders still PENDING,
	// oldest first for queue fairness.
	ListAwaitingDispatch(ctx context.Context) ([]*order.Order, error)

	// ListDispatched retrieves delivery-partner orders already DISPATCHED,
	// most recently dispatched first.
	ListDispatched(ctx context.Context) ([]*order.Order, error)

	// UpdateStatus writes the aggregate's status, dispatch time and bumped
	// version, guarded by a compare-and-swap on the version the aggregate
	// was loaded with. Returns VersionConflictError if a concurrent writer
	// got there first and ObjectNotFoundError for an unknown id.
	UpdateStatus(ctx context.Context, aggregate *order.Order) error
}
