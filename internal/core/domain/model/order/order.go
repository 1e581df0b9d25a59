package order

import (
	"errors"
	"time"

	"pos/internal/pkg/errs"
	"pos/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder. This ensures all orders are validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order is the aggregate root for a point-of-sale order. It owns the ordered
// item lines and any payment rows, and carries the total computed once at
// creation time.
//
// Invariants:
//   - totalCents equals the sum of unitPriceCents * quantity over all items,
//     computed at creation and immutable thereafter
//   - status always belongs to the closed Status set and only changes along
//     the transition policy table
//   - at least one item line exists
//
// The version field supports compare-and-swap status writes: the reconciler
// sweep, delivery attempt tasks, webhook ingestion and explicit status updates
// are independent writers, and CAS keeps them from silently overwriting each
// other.
type Order struct {
	id           int64
	channel      Channel
	status       Status
	customerName string
	tableID      *int64
	totalCents   int64
	version      int64
	createdAt    time.Time
	dispatchedAt *time.Time
	items        []Item
	payments     []Payment

	guard guard.ConstructorGuard
}

// NewOrder creates a pending order from validated item lines.
// The total is computed here, once, from the item price snapshots.
// Rejects an empty item list and an invalid channel.
func NewOrder(channel Channel, customerName string, tableID *int64, items []Item) (*Order, error) {
	if err := channel.Validate(); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}

	var totalCents int64
	for _, item := range items {
		totalCents += item.LineTotalCents()
	}

	return &Order{
		channel:      channel,
		status:       StatusPending,
		customerName: customerName,
		tableID:      tableID,
		totalCents:   totalCents,
		version:      1,
		createdAt:    time.Now().UTC(),
		items:        items,
		payments:     []Payment{},
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// RestoreOrder rebuilds an order from persistence. The stored total is taken
// as-is and never recomputed; it was fixed at creation time.
func RestoreOrder(
	id int64,
	channel Channel,
	status Status,
	customerName string,
	tableID *int64,
	totalCents int64,
	version int64,
	createdAt time.Time,
	dispatchedAt *time.Time,
	items []Item,
	payments []Payment,
) (*Order, error) {
	if err := channel.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if payments == nil {
		payments = []Payment{}
	}

	return &Order{
		id:           id,
		channel:      channel,
		status:       status,
		customerName: customerName,
		tableID:      tableID,
		totalCents:   totalCents,
		version:      version,
		createdAt:    createdAt,
		dispatchedAt: dispatchedAt,
		items:        items,
		payments:     payments,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Order was built through NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// ID returns the storage-assigned identifier, zero before first persistence.
func (o *Order) ID() int64 {
	return o.id
}

// Channel returns the order's origin channel.
func (o *Order) Channel() Channel {
	return o.channel
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// CustomerName returns the customer name, empty if not provided.
func (o *Order) CustomerName() string {
	return o.customerName
}

// TableID returns the dine-in table, nil for counter and partner orders.
func (o *Order) TableID() *int64 {
	return o.tableID
}

// TotalCents returns the total fixed at creation time.
func (o *Order) TotalCents() int64 {
	return o.totalCents
}

// Version returns the row version used for compare-and-swap writes.
func (o *Order) Version() int64 {
	return o.version
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// DispatchedAt returns when the partner confirmed the handoff, nil if never.
func (o *Order) DispatchedAt() *time.Time {
	return o.dispatchedAt
}

// Items returns the item lines in insertion order.
func (o *Order) Items() []Item {
	return o.items
}

// Payments returns the payment rows, possibly empty.
func (o *Order) Payments() []Payment {
	return o.payments
}

// ChangeStatus moves the order to target if the transition policy allows it.
// Moving to DISPATCHED records the dispatch time as a side effect.
func (o *Order) ChangeStatus(target Status) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	if newStatus == StatusDispatched && o.dispatchedAt == nil {
		now := time.Now().UTC()
		o.dispatchedAt = &now
	}
	return nil
}

// MarkDispatched moves the order to DISPATCHED and records the given
// confirmation time. Used by delivery attempt tasks and webhook ingestion,
// which carry their own notion of when the partner confirmed.
func (o *Order) MarkDispatched(at time.Time) error {
	newStatus, err := o.status.TransitionTo(StatusDispatched)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.dispatchedAt = &at
	return nil
}

// Cancel moves the order to CANCELLED.
func (o *Order) Cancel() error {
	newStatus, err := o.status.TransitionTo(StatusCancelled)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}
