package commands

import (
	"errors"

	"pos/internal/pkg/guard"
)

var ErrIngestPartnerEventsCommandIsNotConstructed = errors.New(
	"IngestPartnerEventsCommand must be created via NewIngestPartnerEventsCommand constructor",
)

// RawPartnerEvent is one webhook notification before classification.
// The partner posts either a single event object or an array of them;
// the HTTP adapter normalizes both shapes into this type.
type RawPartnerEvent struct {
	Code           string
	PartnerOrderID string
	CustomerName   string
	Items          []CreateOrderItem
}

// IngestPartnerEventsCommand carries one webhook batch.
// An empty batch is valid; the endpoint acknowledges it like any other.
type IngestPartnerEventsCommand struct { //nolint:recvcheck //using for validation
	events []RawPartnerEvent

	guard guard.ConstructorGuard
}

// NewIngestPartnerEventsCommand creates the command for a webhook batch.
func NewIngestPartnerEventsCommand(events []RawPartnerEvent) IngestPartnerEventsCommand {
	return IngestPartnerEventsCommand{
		events: events,
		guard:  guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c IngestPartnerEventsCommand) Validate() error {
	return c.guard.Validate(ErrIngestPartnerEventsCommandIsNotConstructed)
}

// Events returns the raw events in batch order.
func (c IngestPartnerEventsCommand) Events() []RawPartnerEvent {
	return c.events
}
