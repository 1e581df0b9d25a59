package ports

// DispatchQueue accepts orders for delivery attempt processing.
// Implementations keep an in-flight registry keyed by order id, so submitting
// an order that already has a running attempt task is a no-op. Both the
// creation-time trigger and the periodic reconciler sweep go through this
// interface.
type DispatchQueue interface {
	// Submit starts a delivery attempt task for the order unless one is
	// already in flight. Returns true if a new task was started.
	Submit(orderID int64) bool
}
