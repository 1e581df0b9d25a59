package queries

import (
	"errors"
	"time"

	"pos/internal/pkg/guard"
)

var ErrGetDispatchQueueQueryIsNotConstructed = errors.New(
	"GetDispatchQueueQuery must be created via NewGetDispatchQueueQuery constructor",
)

// GetDispatchQueueQuery retrieves the delivery-partner dispatch queue in two
// sections: orders still awaiting dispatch and orders already handed off.
type GetDispatchQueueQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDispatchQueueQuery creates a parameterless dispatch queue query.
func NewGetDispatchQueueQuery() GetDispatchQueueQuery {
	return GetDispatchQueueQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDispatchQueueQuery) Validate() error {
	return q.guard.Validate(ErrGetDispatchQueueQueryIsNotConstructed)
}

// DispatchQueueEntry is one delivery-partner order in the queue view.
type DispatchQueueEntry struct {
	OrderID        int64
	PartnerOrderID string
	Status         string
	CustomerName   string
	TotalCents     int64
	CreatedAt      time.Time
	DispatchedAt   *time.Time
}

// GetDispatchQueueQueryResponse groups the queue into awaiting and
// dispatched sections. Awaiting is oldest-first (queue fairness),
// dispatched is most recent first.
type GetDispatchQueueQueryResponse struct {
	Awaiting   []DispatchQueueEntry
	Dispatched []DispatchQueueEntry
}
